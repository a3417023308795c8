// Package digest summarises sequences of floating point values through a
// t-digest, providing approximate quantiles without retaining the values.
package digest

import (
	"fmt"
	"github.com/influxdata/tdigest"
	"iter"
	"math"
)

// Compression is the t-digest compression factor used by Summarize. Higher
// values yield more accurate quantiles at the expense of memory.
const Compression = 1000

// ErrQuantileRange indicates a requested quantile lies outside [0, 1].
var ErrQuantileRange = fmt.Errorf("quantile must be within [0, 1]")

// Quantile pairs a requested quantile Q with its estimated Value.
type Quantile struct {
	Q     float64
	Value float64
}

// Summary describes a sequence of values.
type Summary struct {
	// Count is the amount of values taken into account.
	Count int

	// Skipped is the amount of NaN values found, which are not part of the
	// summary.
	Skipped int

	Min float64
	Max float64

	// Quantiles holds one entry per requested quantile, in request order. It
	// is empty when Count is zero.
	Quantiles []Quantile
}

// Summarize consumes seq once and returns its Summary, estimating each of the
// provided quantiles.
func Summarize(seq iter.Seq[float64], quantiles ...float64) (Summary, error) {
	for _, q := range quantiles {
		if math.IsNaN(q) || q < 0 || q > 1 {
			return Summary{}, fmt.Errorf("%w: got %v", ErrQuantileRange, q)
		}
	}

	td := tdigest.NewWithCompression(Compression)
	s := Summary{Min: math.Inf(1), Max: math.Inf(-1)}
	for v := range seq {
		if math.IsNaN(v) {
			s.Skipped++
			continue
		}
		td.Add(v, 1)
		s.Count++
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}

	if s.Count == 0 {
		s.Min, s.Max = 0, 0
		return s, nil
	}

	s.Quantiles = make([]Quantile, 0, len(quantiles))
	for _, q := range quantiles {
		s.Quantiles = append(s.Quantiles, Quantile{Q: q, Value: td.Quantile(q)})
	}
	return s, nil
}
