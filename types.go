package trilist

import "reflect"

// typeSet holds the element types of a List, indexed by Slot.index.
type typeSet [3]reflect.Type

func typesOf[T1, T2, T3 any]() typeSet {
	return typeSet{reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]()}
}

// mustTypesOf returns the typeSet for T1, T2 and T3, panicking with a
// *DuplicateTypeError when any two of them are identical.
func mustTypesOf[T1, T2, T3 any]() typeSet {
	t := typesOf[T1, T2, T3]()
	if err := t.validate(); err != nil {
		panic(err)
	}
	return t
}

func (t typeSet) validate() error {
	for i := range t {
		for j := i + 1; j < len(t); j++ {
			if t[i] == t[j] {
				return &DuplicateTypeError{Type: t[i], Slots: [2]Slot{Slot(i + 1), Slot(j + 1)}}
			}
		}
	}
	return nil
}

func (t typeSet) slotOf(typ reflect.Type) Slot {
	for i, candidate := range t {
		if candidate == typ {
			return Slot(i + 1)
		}
	}
	return SlotInvalid
}

// mustSlotOf resolves the slot whose type is identical to T, panicking with a
// *TypeMismatchError when there is none.
func mustSlotOf[T any](t typeSet) Slot {
	typ := reflect.TypeFor[T]()
	s := t.slotOf(typ)
	if s == SlotInvalid {
		panic(&TypeMismatchError{Type: typ, Accepted: t})
	}
	return s
}

// cast converts v to To. Callers only use it once T has been resolved to a
// slot, meaning To and From are the same type; the comma-ok form keeps nil
// interface values from panicking.
func cast[To, From any](v From) To {
	out, _ := any(v).(To)
	return out
}
