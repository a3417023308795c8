package containers

// Triple holds three values of possibly distinct types T, U, and V, each
// addressable by its own field.
type Triple[T, U, V any] struct {
	First  T
	Second U
	Third  V
}

// Decompose returns T, U, and V objects in order. Useful for obtaining all
// values in a single call.
func (t Triple[T, U, V]) Decompose() (T, U, V) {
	return t.First, t.Second, t.Third
}

// Tri returns a new Triple with provided arguments.
func Tri[T, U, V any](first T, second U, third V) Triple[T, U, V] {
	return Triple[T, U, V]{first, second, third}
}
