package digest

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"slices"
	"testing"
)

func TestSummarize_Empty(t *testing.T) {
	s, err := Summarize(slices.Values([]float64{}), 0.5)
	require.NoError(t, err)
	assert.Zero(t, s.Count)
	assert.Zero(t, s.Min)
	assert.Zero(t, s.Max)
	assert.Empty(t, s.Quantiles)
}

func TestSummarize_Uniform(t *testing.T) {
	values := make([]float64, 0, 1000)
	for i := 1; i <= 1000; i++ {
		values = append(values, float64(i))
	}

	s, err := Summarize(slices.Values(values), 0.5, 0.9)
	require.NoError(t, err)
	assert.Equal(t, 1000, s.Count)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 1000.0, s.Max)

	require.Len(t, s.Quantiles, 2)
	assert.Equal(t, 0.5, s.Quantiles[0].Q)
	assert.InDelta(t, 500, s.Quantiles[0].Value, 10)
	assert.Equal(t, 0.9, s.Quantiles[1].Q)
	assert.InDelta(t, 900, s.Quantiles[1].Value, 10)
}

func TestSummarize_SkipsNaN(t *testing.T) {
	s, err := Summarize(slices.Values([]float64{math.NaN(), -2, 4, math.NaN()}))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 2, s.Skipped)
	assert.Equal(t, -2.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Empty(t, s.Quantiles)
}

func TestSummarize_InvalidQuantile(t *testing.T) {
	for _, q := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := Summarize(slices.Values([]float64{1}), q)
		assert.ErrorIs(t, err, ErrQuantileRange)
	}
}
