package trilist

import (
	"github.com/heyvito/trilist/internal/containers"
	"github.com/heyvito/trilist/internal/pipeline"
	"iter"
)

// The functions below are parameterised on the element type T they operate
// on. Go cannot constrain T to be one of a List's type arguments, so every
// one of them resolves T against the List before doing anything else, and
// panics with a *TypeMismatchError when T is none of T1, T2 or T3. Callers
// wanting that check at compile time may use the Push*, Modify* and Reset*
// methods of List instead.

// PushBack appends v to the end of l, in the slot whose type is T.
func PushBack[T, T1, T2, T3 any](l *List[T1, T2, T3], v T) {
	l.PushElement(wrap[T1, T2, T3](mustSlotOf[T](l.types), v))
}

// ModifyOnly appends m to the pipeline of T. Pipelines are applied in
// registration order: registering f and then g makes values of T read as
// g(f(x)). Other types are never affected. ModifyOnly panics with
// ErrNilModifier in case m is nil.
func ModifyOnly[T, T1, T2, T3 any](l *List[T1, T2, T3], m func(T) T) {
	slot := mustSlotOf[T](l.types)
	modify(l, slot, pipelineFor[T](l, slot), m)
}

// Reset clears the pipeline of T, making values of T read as stored.
func Reset[T, T1, T2, T3 any](l *List[T1, T2, T3]) {
	slot := mustSlotOf[T](l.types)
	reset(l, slot, pipelineFor[T](l, slot))
}

// Apply returns v transformed by the pipeline currently registered for T.
// With no modifiers registered, v is returned unchanged.
func Apply[T, T1, T2, T3 any](l *List[T1, T2, T3], v T) T {
	slot := mustSlotOf[T](l.types)
	return pipelineFor[T](l, slot).Apply(v)
}

// RangeOver returns a sequence over the values of l whose type is T, in
// insertion order, each transformed by the pipeline of T at the time it is
// yielded. Values of other types are skipped without being evaluated. The
// sequence may be ranged over several times; each pass reads l anew.
func RangeOver[T, T1, T2, T3 any](l *List[T1, T2, T3]) iter.Seq[T] {
	slot := mustSlotOf[T](l.types)
	p := pipelineFor[T](l, slot)

	matching := containers.Filter(l.stored(), func(e Element[T1, T2, T3]) bool {
		return e.slot == slot
	})
	return containers.Map(matching, func(e Element[T1, T2, T3]) T {
		return p.Apply(unwrap[T](e))
	})
}

// pipelineFor returns the pipeline of slot. slot must have been resolved from
// T, which makes T identical to that slot's type argument.
func pipelineFor[T, T1, T2, T3 any](l *List[T1, T2, T3], slot Slot) *pipeline.Pipeline[T] {
	var p any
	switch slot {
	case SlotFirst:
		p = &l.modifiers.First
	case SlotSecond:
		p = &l.modifiers.Second
	default:
		p = &l.modifiers.Third
	}
	return p.(*pipeline.Pipeline[T])
}
