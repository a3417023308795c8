package trilist

import (
	"github.com/heyvito/trilist/internal/containers"
	"github.com/heyvito/trilist/internal/logutil"
	"github.com/heyvito/trilist/internal/pipeline"
	"go.uber.org/zap"
	"iter"
)

// List stores values of three distinct types T1, T2 and T3 in insertion
// order, and keeps one modifier pipeline per type. Stored values are never
// changed: every read applies the pipeline registered for the value's type
// at the time of the read.
//
// A List is not safe for concurrent use; callers sharing a List must ensure
// readers and writers never overlap.
type List[T1, T2, T3 any] struct {
	elements  []Element[T1, T2, T3]
	modifiers containers.Triple[pipeline.Pipeline[T1], pipeline.Pipeline[T2], pipeline.Pipeline[T3]]
	types     typeSet

	// generation is incremented by every push, and is used by Cursor to
	// detect it has been invalidated.
	generation uint64

	logger *zap.Logger
}

// New returns a new List containing the provided elements, in order. Calling
// New without elements returns an empty List. New panics with a
// *DuplicateTypeError when T1, T2 and T3 are not distinct, and with
// ErrInvalidElement when a zero-valued Element is provided.
func New[T1, T2, T3 any](elements ...Element[T1, T2, T3]) *List[T1, T2, T3] {
	return NewWithOptions(nil, elements...)
}

// NewWithOptions works like New, but takes a set of Options. A nil opts is
// equivalent to an empty Options value.
func NewWithOptions[T1, T2, T3 any](opts *Options, elements ...Element[T1, T2, T3]) *List[T1, T2, T3] {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o.normalize(len(elements))

	l := &List[T1, T2, T3]{
		elements: make([]Element[T1, T2, T3], 0, o.Capacity),
		types:    mustTypesOf[T1, T2, T3](),
		logger:   o.LogHandler.With(zap.String("facility", "trilist")),
	}
	for _, e := range elements {
		l.PushElement(e)
	}

	l.logger.Debug("Created list",
		logutil.StringerArr("types", l.types[:]),
		zap.Int("elements", len(l.elements)))
	return l
}

// Len returns the amount of elements stored in the list.
func (l *List[T1, T2, T3]) Len() int { return len(l.elements) }

// PushElement appends e to the end of the list. It panics with
// ErrInvalidElement if e is the zero Element.
func (l *List[T1, T2, T3]) PushElement(e Element[T1, T2, T3]) {
	if !e.slot.Valid() {
		panic(ErrInvalidElement)
	}
	l.elements = append(l.elements, e)
	l.generation++
}

// PushFirst appends v to the end of the list, in the first slot.
func (l *List[T1, T2, T3]) PushFirst(v T1) { l.PushElement(First[T1, T2, T3](v)) }

// PushSecond appends v to the end of the list, in the second slot.
func (l *List[T1, T2, T3]) PushSecond(v T2) { l.PushElement(Second[T1, T2, T3](v)) }

// PushThird appends v to the end of the list, in the third slot.
func (l *List[T1, T2, T3]) PushThird(v T3) { l.PushElement(Third[T1, T2, T3](v)) }

// ModifyFirst appends m to the pipeline of the first slot. See ModifyOnly.
func (l *List[T1, T2, T3]) ModifyFirst(m func(T1) T1) {
	modify(l, SlotFirst, &l.modifiers.First, m)
}

// ModifySecond appends m to the pipeline of the second slot. See ModifyOnly.
func (l *List[T1, T2, T3]) ModifySecond(m func(T2) T2) {
	modify(l, SlotSecond, &l.modifiers.Second, m)
}

// ModifyThird appends m to the pipeline of the third slot. See ModifyOnly.
func (l *List[T1, T2, T3]) ModifyThird(m func(T3) T3) {
	modify(l, SlotThird, &l.modifiers.Third, m)
}

// ResetFirst clears the pipeline of the first slot.
func (l *List[T1, T2, T3]) ResetFirst() { reset(l, SlotFirst, &l.modifiers.First) }

// ResetSecond clears the pipeline of the second slot.
func (l *List[T1, T2, T3]) ResetSecond() { reset(l, SlotSecond, &l.modifiers.Second) }

// ResetThird clears the pipeline of the third slot.
func (l *List[T1, T2, T3]) ResetThird() { reset(l, SlotThird, &l.modifiers.Third) }

// All returns a sequence over every element of the list, in insertion order.
// Each yielded Element holds the same slot as the stored one, and a value
// produced by applying that slot's current pipeline to the stored value.
// Values are computed as they are yielded, and ranging over the sequence
// again reflects any modifier changed in the meantime.
func (l *List[T1, T2, T3]) All() iter.Seq[Element[T1, T2, T3]] {
	return containers.Map(l.stored(), l.evaluate)
}

// Backward works like All, but yields elements from the last to the first.
func (l *List[T1, T2, T3]) Backward() iter.Seq[Element[T1, T2, T3]] {
	return func(yield func(Element[T1, T2, T3]) bool) {
		for i := len(l.elements) - 1; i >= 0; i-- {
			if !yield(l.evaluate(l.elements[i])) {
				return
			}
		}
	}
}

// Begin returns a Cursor positioned at the first element of the list. For an
// empty list, Begin equals End.
func (l *List[T1, T2, T3]) Begin() Cursor[T1, T2, T3] { return l.cursorAt(0) }

// End returns a Cursor positioned one past the last element of the list. End
// must not be dereferenced.
func (l *List[T1, T2, T3]) End() Cursor[T1, T2, T3] { return l.cursorAt(len(l.elements)) }

func (l *List[T1, T2, T3]) cursorAt(pos int) Cursor[T1, T2, T3] {
	return Cursor[T1, T2, T3]{list: l, pos: pos, generation: l.generation}
}

// stored yields raw elements. The slice is read when ranging starts, so
// sequences derived from it observe elements pushed after their creation.
func (l *List[T1, T2, T3]) stored() iter.Seq[Element[T1, T2, T3]] {
	return func(yield func(Element[T1, T2, T3]) bool) {
		for _, e := range l.elements {
			if !yield(e) {
				return
			}
		}
	}
}

func (l *List[T1, T2, T3]) evaluate(e Element[T1, T2, T3]) Element[T1, T2, T3] {
	return mapElement(e, l.modifiers.First.Apply, l.modifiers.Second.Apply, l.modifiers.Third.Apply)
}

func modify[T, T1, T2, T3 any](l *List[T1, T2, T3], slot Slot, p *pipeline.Pipeline[T], m func(T) T) {
	if m == nil {
		panic(ErrNilModifier)
	}
	p.Append(m)
	l.logger.Debug("Registered modifier",
		zap.Stringer("slot", slot),
		zap.Stringer("type", l.types[slot.index()]),
		zap.Int("pipeline_length", p.Len()))
}

func reset[T, T1, T2, T3 any](l *List[T1, T2, T3], slot Slot, p *pipeline.Pipeline[T]) {
	dropped := p.Len()
	p.Reset()
	l.logger.Debug("Reset modifiers",
		zap.Stringer("slot", slot),
		zap.Stringer("type", l.types[slot.index()]),
		zap.Int("dropped", dropped))
}
