package trilist

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCursor_Traversal(t *testing.T) {
	l := New(
		First[int, string, float64](1),
		Second[int, string, float64]("b"),
		First[int, string, float64](3),
	)
	l.ModifyFirst(double)

	var forward []elem
	for c := l.Begin(); !c.Equal(l.End()); c = c.Next() {
		forward = append(forward, c.Value())
	}
	want := []elem{
		First[int, string, float64](2),
		Second[int, string, float64]("b"),
		First[int, string, float64](6),
	}
	if diff := elemDiff(want, forward); diff != "" {
		t.Errorf("unexpected forward traversal (-want +got):\n%s", diff)
	}

	var backward []elem
	for c := l.End(); !c.Equal(l.Begin()); {
		c = c.Prev()
		backward = append(backward, c.Value())
	}
	want = []elem{
		First[int, string, float64](6),
		Second[int, string, float64]("b"),
		First[int, string, float64](2),
	}
	if diff := elemDiff(want, backward); diff != "" {
		t.Errorf("unexpected backward traversal (-want +got):\n%s", diff)
	}
}

func TestCursor_ValueReflectsCurrentModifiers(t *testing.T) {
	l := New(Second[int, string, float64]("a"))
	c := l.Begin()
	assert.Equal(t, Second[int, string, float64]("a"), c.Value())

	l.ModifySecond(func(s string) string { return s + s })
	assert.Equal(t, Second[int, string, float64]("aa"), c.Value())

	l.ResetSecond()
	assert.Equal(t, Second[int, string, float64]("a"), c.Value())
}

func TestCursor_Equal(t *testing.T) {
	l := New(First[int, string, float64](1), First[int, string, float64](1))
	other := New(First[int, string, float64](1))

	assert.True(t, l.Begin().Equal(l.Begin()))
	assert.False(t, l.Begin().Equal(l.Begin().Next()))
	assert.True(t, l.Begin().Next().Next().Equal(l.End()))
	assert.True(t, l.End().Prev().Equal(l.Begin().Next()))

	// equal values at distinct positions are distinct cursors
	assert.Equal(t, l.Begin().Value(), l.Begin().Next().Value())
	assert.False(t, l.Begin().Equal(l.Begin().Next()))

	// positions of distinct lists never compare equal
	assert.False(t, l.Begin().Equal(other.Begin()))
}

func TestCursor_Valid(t *testing.T) {
	var zero Cursor[int, string, float64]
	assert.False(t, zero.Valid())

	l := New(First[int, string, float64](1))
	begin, end := l.Begin(), l.End()
	assert.True(t, begin.Valid())
	assert.True(t, end.Valid())
	assert.False(t, end.Next().Valid())
	assert.False(t, begin.Prev().Valid())
	assert.Equal(t, 0, begin.Pos())
	assert.Equal(t, 1, end.Pos())

	l.ModifyFirst(inc)
	assert.True(t, begin.Valid())

	PushBack(l, 2)
	assert.False(t, begin.Valid())
	assert.False(t, end.Valid())
	assert.True(t, l.Begin().Valid())
}
