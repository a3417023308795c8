package containers

import "iter"

// Filter returns a sequence yielding only the items of base for which keep
// returns true. Nothing is evaluated until the returned sequence is ranged
// over, and ranging over it again restarts from base.
func Filter[E any](base iter.Seq[E], keep func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for item := range base {
			if keep(item) && !yield(item) {
				return
			}
		}
	}
}

// Map returns a sequence yielding fn(item) for every item of base. fn is
// invoked once per yielded item, at the time it is yielded.
func Map[E, T any](base iter.Seq[E], fn func(E) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range base {
			if !yield(fn(item)) {
				return
			}
		}
	}
}
