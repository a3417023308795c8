// Package trilist implements List, a container holding values of three
// distinct types in insertion order, with one lazily-applied modifier
// pipeline per type.
//
// Values are stored as pushed, and modifiers are only applied when values are
// read, either through the whole list (List.All, List.Backward, Cursor) or
// through a view restricted to a single type (RangeOver):
//
//	l := trilist.New(
//		trilist.First[int, string, float64](1),
//		trilist.Second[int, string, float64]("b"),
//	)
//	trilist.PushBack(l, 3)
//	trilist.ModifyOnly(l, func(i int) int { return i * 2 })
//	trilist.ModifyOnly(l, func(i int) int { return i + 1 })
//
//	for v := range trilist.RangeOver[int](l) {
//		fmt.Println(v) // 3, 7
//	}
//
//	trilist.Reset[int](l)
//	// RangeOver[int] now yields 1, 3
//
// Modifiers for a type are applied in the order they were registered, and
// are re-evaluated on every read; registering or resetting modifiers between
// two reads is reflected by the second one.
package trilist
