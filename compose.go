package trilist

// Compose returns a function that applies g and then f to its argument, that
// is, Compose(f, g)(x) == f(g(x)). Note that this is the reverse of the order
// in which a List applies registered modifiers; Compose is a convenience for
// building a single modifier and is not used by List itself.
func Compose[T any](f, g func(T) T) func(T) T {
	return func(v T) T { return f(g(v)) }
}

// Identity returns v unchanged.
func Identity[T any](v T) T { return v }
