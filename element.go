package trilist

import "fmt"

// Element is a tagged union holding exactly one value of either T1, T2 or T3.
// The slot an Element holds is fixed upon creation. Elements are created
// through First, Second, Third or Wrap; the zero value holds no slot and is
// rejected by List.
type Element[T1, T2, T3 any] struct {
	slot   Slot
	first  T1
	second T2
	third  T3
}

// First returns an Element holding v in its first slot.
func First[T1, T2, T3 any](v T1) Element[T1, T2, T3] {
	return Element[T1, T2, T3]{slot: SlotFirst, first: v}
}

// Second returns an Element holding v in its second slot.
func Second[T1, T2, T3 any](v T2) Element[T1, T2, T3] {
	return Element[T1, T2, T3]{slot: SlotSecond, second: v}
}

// Third returns an Element holding v in its third slot.
func Third[T1, T2, T3 any](v T3) Element[T1, T2, T3] {
	return Element[T1, T2, T3]{slot: SlotThird, third: v}
}

// Wrap returns an Element holding v in the slot whose type is identical to
// T, which is inferred from v:
//
//	e := trilist.Wrap[int, string, float64]("hello") // Second slot
//
// Wrap panics with a *TypeMismatchError in case T is none of T1, T2 or T3,
// and with a *DuplicateTypeError when two of T1, T2 and T3 are identical.
func Wrap[T1, T2, T3, T any](v T) Element[T1, T2, T3] {
	return wrap[T1, T2, T3](mustSlotOf[T](mustTypesOf[T1, T2, T3]()), v)
}

func wrap[T1, T2, T3, T any](slot Slot, v T) Element[T1, T2, T3] {
	switch slot {
	case SlotFirst:
		return First[T1, T2, T3](cast[T1](v))
	case SlotSecond:
		return Second[T1, T2, T3](cast[T2](v))
	default:
		return Third[T1, T2, T3](cast[T3](v))
	}
}

// As returns the value held by e in case its slot type is identical to T.
// The boolean result reports whether e holds a T. As panics with a
// *TypeMismatchError when T is none of T1, T2 or T3.
func As[T, T1, T2, T3 any](e Element[T1, T2, T3]) (T, bool) {
	slot := mustSlotOf[T](mustTypesOf[T1, T2, T3]())
	if slot != e.slot {
		var zero T
		return zero, false
	}
	return unwrap[T](e), true
}

func unwrap[T, T1, T2, T3 any](e Element[T1, T2, T3]) T {
	switch e.slot {
	case SlotFirst:
		return cast[T](e.first)
	case SlotSecond:
		return cast[T](e.second)
	default:
		return cast[T](e.third)
	}
}

// Slot returns which slot e holds.
func (e Element[T1, T2, T3]) Slot() Slot { return e.slot }

// First returns the value held in the first slot, and whether e holds it.
func (e Element[T1, T2, T3]) First() (T1, bool) { return e.first, e.slot == SlotFirst }

// Second returns the value held in the second slot, and whether e holds it.
func (e Element[T1, T2, T3]) Second() (T2, bool) { return e.second, e.slot == SlotSecond }

// Third returns the value held in the third slot, and whether e holds it.
func (e Element[T1, T2, T3]) Third() (T3, bool) { return e.third, e.slot == SlotThird }

// Value returns the held value as an interface, or nil for the zero Element.
func (e Element[T1, T2, T3]) Value() any {
	switch e.slot {
	case SlotFirst:
		return e.first
	case SlotSecond:
		return e.second
	case SlotThird:
		return e.third
	}
	return nil
}

// Match invokes the function corresponding to the slot held by e with its
// value. Nil functions are skipped.
func (e Element[T1, T2, T3]) Match(first func(T1), second func(T2), third func(T3)) {
	switch {
	case e.slot == SlotFirst && first != nil:
		first(e.first)
	case e.slot == SlotSecond && second != nil:
		second(e.second)
	case e.slot == SlotThird && third != nil:
		third(e.third)
	}
}

func (e Element[T1, T2, T3]) String() string {
	return fmt.Sprintf("%s(%v)", e.slot, e.Value())
}

// mapElement returns a new Element in the same slot as e, with its value
// replaced by the result of the function matching that slot.
func mapElement[T1, T2, T3 any](e Element[T1, T2, T3], first func(T1) T1, second func(T2) T2, third func(T3) T3) Element[T1, T2, T3] {
	switch e.slot {
	case SlotFirst:
		return First[T1, T2, T3](first(e.first))
	case SlotSecond:
		return Second[T1, T2, T3](second(e.second))
	case SlotThird:
		return Third[T1, T2, T3](third(e.third))
	}
	return e
}
