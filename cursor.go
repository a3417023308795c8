package trilist

// Cursor is a position within a List. Cursors are values: Next and Prev
// return new cursors and leave the receiver untouched.
//
// A Cursor is invalidated by any push made to its List after the cursor was
// obtained. Dereferencing an invalidated cursor, or one positioned at or past
// End, is a precondition violation: Value does not check for it. Valid can be
// used to test for invalidation.
type Cursor[T1, T2, T3 any] struct {
	list       *List[T1, T2, T3]
	pos        int
	generation uint64
}

// Next returns a cursor positioned at the element following c.
func (c Cursor[T1, T2, T3]) Next() Cursor[T1, T2, T3] {
	c.pos++
	return c
}

// Prev returns a cursor positioned at the element preceding c.
func (c Cursor[T1, T2, T3]) Prev() Cursor[T1, T2, T3] {
	c.pos--
	return c
}

// Value returns the element at c, transformed by the pipeline currently
// registered for its slot.
func (c Cursor[T1, T2, T3]) Value() Element[T1, T2, T3] {
	return c.list.evaluate(c.list.elements[c.pos])
}

// Pos returns the storage index c is positioned at.
func (c Cursor[T1, T2, T3]) Pos() int { return c.pos }

// Equal reports whether c and o point to the same position of the same list.
// Values are never compared.
func (c Cursor[T1, T2, T3]) Equal(o Cursor[T1, T2, T3]) bool {
	return c.list == o.list && c.pos == o.pos
}

// Valid reports whether c belongs to a list, has not been invalidated by a
// push, and is positioned between Begin and End, inclusive.
func (c Cursor[T1, T2, T3]) Valid() bool {
	return c.list != nil &&
		c.generation == c.list.generation &&
		c.pos >= 0 && c.pos <= len(c.list.elements)
}
