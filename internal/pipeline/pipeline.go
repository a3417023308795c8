// Package pipeline implements ordered sequences of same-type transformations.
// A Pipeline is applied as a left fold: the modifier appended first receives
// the input value, and every following modifier receives the output of the
// previous one.
package pipeline

// Modifier transforms a value into another value of the same type.
type Modifier[T any] func(T) T

// Pipeline is an ordered list of Modifiers for values of type T. The zero
// value is an empty pipeline, which behaves as the identity function.
type Pipeline[T any] struct {
	mods []Modifier[T]
}

// Append adds m to the end of the pipeline.
func (p *Pipeline[T]) Append(m Modifier[T]) {
	p.mods = append(p.mods, m)
}

// Reset removes every modifier from the pipeline, keeping its allocated
// storage for later Append calls.
func (p *Pipeline[T]) Reset() {
	clear(p.mods)
	p.mods = p.mods[:0]
}

// Len returns the amount of modifiers currently registered.
func (p *Pipeline[T]) Len() int { return len(p.mods) }

// Apply folds all modifiers over v in registration order and returns the
// result. Apply does not retain v nor any intermediate value.
func (p *Pipeline[T]) Apply(v T) T {
	for _, m := range p.mods {
		v = m(v)
	}
	return v
}
