package containers

import "fmt"

// MapFn returns a new slice holding fn(item) for every item of set, in order.
func MapFn[S interface{ ~[]E }, E any, T any](set S, fn func(E) T) []T {
	res := make([]T, 0, len(set))
	for _, item := range set {
		res = append(res, fn(item))
	}
	return res
}

func StringerStr[T fmt.Stringer](i T) string { return i.String() }

// StrMapper returns the String() representation of every item of set.
func StrMapper[S interface{ ~[]E }, E fmt.Stringer](set S) []string {
	return MapFn(set, StringerStr[E])
}
