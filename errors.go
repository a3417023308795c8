package trilist

import (
	"fmt"
	"reflect"
)

// ErrNilModifier is raised (through panic) when a nil function is registered
// as a modifier.
var ErrNilModifier = fmt.Errorf("modifier must not be nil")

// ErrInvalidElement is raised (through panic) when a zero-valued Element,
// which holds no slot, is stored in a List.
var ErrInvalidElement = fmt.Errorf("element holds no value")

// TypeMismatchError indicates that a type-parameterised operation was invoked
// with a type that is not one of the three element types of a List. It is a
// programming error, and is always raised through panic before the operation
// takes any effect.
type TypeMismatchError struct {
	// Type is the offending type argument.
	Type reflect.Type

	// Accepted lists the element types of the List, in slot order.
	Accepted [3]reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type %s is not an element type of this list (expected one of %s, %s or %s)",
		e.Type, e.Accepted[0], e.Accepted[1], e.Accepted[2])
}

// DuplicateTypeError indicates that a List was instantiated with the same
// type in more than one slot, making type-based dispatch ambiguous.
type DuplicateTypeError struct {
	Type  reflect.Type
	Slots [2]Slot
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("type %s is used by both the %s and %s slots", e.Type, e.Slots[0], e.Slots[1])
}
