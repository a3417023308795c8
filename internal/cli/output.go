package cli

import (
	"fmt"
	"github.com/heyvito/trilist"
	"github.com/heyvito/trilist/internal/config"
	"github.com/heyvito/trilist/internal/containers"
	"github.com/heyvito/trilist/internal/digest"
	"io"
	"iter"
	"slices"
	"strconv"
)

var errNotNumeric = fmt.Errorf("quantiles require int or float values")

func formatInt(v int64) string     { return strconv.FormatInt(v, 10) }
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
func formatString(v string) string { return v }

func printAll(w io.Writer, l *config.List, reverse bool) error {
	elements := l.All()
	if reverse {
		elements = l.Backward()
	}

	for e := range elements {
		var line string
		e.Match(
			func(v int64) { line = kindInt.String() + "\t" + formatInt(v) },
			func(v float64) { line = kindFloat.String() + "\t" + formatFloat(v) },
			func(v string) { line = kindString.String() + "\t" + formatString(v) },
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func printKind(w io.Writer, l *config.List, k kind, reverse bool) error {
	var lines []string
	switch k {
	case kindInt:
		lines = slices.Collect(containers.Map(trilist.RangeOver[int64](l), formatInt))
	case kindFloat:
		lines = slices.Collect(containers.Map(trilist.RangeOver[float64](l), formatFloat))
	default:
		lines = slices.Collect(containers.Map(trilist.RangeOver[string](l), formatString))
	}
	if reverse {
		slices.Reverse(lines)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func numericView(l *config.List, only string) (iter.Seq[float64], error) {
	switch only {
	case "", kindFloat.String():
		return trilist.RangeOver[float64](l), nil
	case kindInt.String():
		return containers.Map(trilist.RangeOver[int64](l), func(v int64) float64 { return float64(v) }), nil
	}
	return nil, errNotNumeric
}

func quantileLabel(q float64) string {
	return "p" + strconv.FormatFloat(q*100, 'g', 6, 64)
}

func printSummary(w io.Writer, l *config.List, only string, quantiles []float64) error {
	view, err := numericView(l, only)
	if err != nil {
		return err
	}

	summary, err := digest.Summarize(view, quantiles...)
	if err != nil {
		return err
	}

	rows := [][2]string{{"count", strconv.Itoa(summary.Count)}}
	if summary.Count > 0 {
		rows = append(rows,
			[2]string{"min", formatFloat(summary.Min)},
			[2]string{"max", formatFloat(summary.Max)})
	}
	for _, q := range summary.Quantiles {
		rows = append(rows, [2]string{quantileLabel(q.Q), formatFloat(q.Value)})
	}

	for _, row := range rows {
		if _, err = fmt.Fprintf(w, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}
