package config

import (
	"github.com/heyvito/trilist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

const sample = `
int:
  - op: mul
    arg: 2
  - op: add
    arg: 1
float:
  - op: abs
  - op: round
string:
  - op: upper
  - op: prefix
    text: "> "
`

func newList() *List {
	return trilist.New(
		trilist.First[int64, float64, string](3),
		trilist.Third[int64, float64, string]("hi"),
		trilist.Second[int64, float64, string](-2.4),
	)
}

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, p.Int, 2)
	assert.Equal(t, "mul", p.Int[0].Op)
	require.NotNil(t, p.Int[0].Arg)
	assert.Equal(t, 2.0, *p.Int[0].Arg)
	assert.Len(t, p.Float, 2)
	require.Len(t, p.String, 2)
	require.NotNil(t, p.String[1].Text)
	assert.Equal(t, "> ", *p.String[1].Text)
}

func TestParse_Empty(t *testing.T) {
	p, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, p.Int)
	assert.Empty(t, p.Float)
	assert.Empty(t, p.String)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown op", "int: [{op: pow, arg: 2}]", ErrUnknownOp},
		{"missing arg", "float: [{op: add}]", ErrMissingArg},
		{"missing text", "string: [{op: suffix}]", ErrMissingArg},
		{"fractional int arg", "int: [{op: add, arg: 1.5}]", ErrInvalidArg},
		{"zero divisor", "int: [{op: div, arg: 0}]", ErrInvalidArg},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, c.want)

			var stepErr *StepError
			require.ErrorAs(t, err, &stepErr)
			assert.Zero(t, stepErr.Index)
		})
	}
}

func TestParse_StepErrorMessage(t *testing.T) {
	_, err := Parse([]byte("string: [{op: upper}, {op: shout}]"))
	require.Error(t, err)
	assert.Equal(t, "string step #1 (shout): unknown op", err.Error())
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("bool: [{op: not}]"))
	assert.Error(t, err)
}

func TestPipelines_Register(t *testing.T) {
	p, err := Parse([]byte(sample))
	require.NoError(t, err)

	l := newList()
	require.NoError(t, p.Register(l))

	assert.Equal(t, []int64{7}, slices.Collect(trilist.RangeOver[int64](l)))
	assert.Equal(t, []float64{2}, slices.Collect(trilist.RangeOver[float64](l)))
	assert.Equal(t, []string{"> HI"}, slices.Collect(trilist.RangeOver[string](l)))
}

func TestPipelines_RegisterIsAllOrNothing(t *testing.T) {
	p := &Pipelines{
		Int:    []Step{{Op: "neg"}},
		String: []Step{{Op: "explode"}},
	}

	l := newList()
	assert.ErrorIs(t, p.Register(l), ErrUnknownOp)
	assert.Equal(t, []int64{3}, slices.Collect(trilist.RangeOver[int64](l)))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipelines.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Int, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOps(t *testing.T) {
	arg := func(f float64) *float64 { return &f }
	text := func(s string) *string { return &s }

	intCases := []struct {
		step Step
		in   int64
		want int64
	}{
		{Step{Op: "sub", Arg: arg(4)}, 10, 6},
		{Step{Op: "div", Arg: arg(3)}, 10, 3},
		{Step{Op: "mod", Arg: arg(3)}, 10, 1},
		{Step{Op: "neg"}, 10, -10},
		{Step{Op: "abs"}, -10, 10},
	}
	for _, c := range intCases {
		fn, err := intOps[c.step.Op](c.step)
		require.NoError(t, err)
		assert.Equal(t, c.want, fn(c.in), c.step.Op)
	}

	floatCases := []struct {
		step Step
		in   float64
		want float64
	}{
		{Step{Op: "mul", Arg: arg(0.5)}, 3, 1.5},
		{Step{Op: "div", Arg: arg(4)}, 1, 0.25},
		{Step{Op: "floor"}, 1.7, 1},
		{Step{Op: "ceil"}, 1.2, 2},
		{Step{Op: "neg"}, 1.5, -1.5},
	}
	for _, c := range floatCases {
		fn, err := floatOps[c.step.Op](c.step)
		require.NoError(t, err)
		assert.Equal(t, c.want, fn(c.in), c.step.Op)
	}

	stringCases := []struct {
		step Step
		in   string
		want string
	}{
		{Step{Op: "lower"}, "ABC", "abc"},
		{Step{Op: "trim"}, "  x ", "x"},
		{Step{Op: "suffix", Text: text("!")}, "hey", "hey!"},
		{Step{Op: "reverse"}, "héllo", "olléh"},
	}
	for _, c := range stringCases {
		fn, err := stringOps[c.step.Op](c.step)
		require.NoError(t, err)
		assert.Equal(t, c.want, fn(c.in), c.step.Op)
	}
}
