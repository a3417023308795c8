package config

import (
	"fmt"
	"math"
	"strings"
)

func (s Step) number() (float64, error) {
	if s.Arg == nil {
		return 0, ErrMissingArg
	}
	if math.IsNaN(*s.Arg) || math.IsInf(*s.Arg, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArg, *s.Arg)
	}
	return *s.Arg, nil
}

func (s Step) integer() (int64, error) {
	f, err := s.number()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidArg, f)
	}
	return int64(f), nil
}

func (s Step) nonZeroInteger() (int64, error) {
	n, err := s.integer()
	if err == nil && n == 0 {
		err = fmt.Errorf("%w: must not be zero", ErrInvalidArg)
	}
	return n, err
}

func (s Step) text() (string, error) {
	if s.Text == nil {
		return "", ErrMissingArg
	}
	return *s.Text, nil
}

func intArg(fn func(v, n int64) int64) func(Step) (func(int64) int64, error) {
	return func(s Step) (func(int64) int64, error) {
		n, err := s.integer()
		if err != nil {
			return nil, err
		}
		return func(v int64) int64 { return fn(v, n) }, nil
	}
}

func intDivisor(fn func(v, n int64) int64) func(Step) (func(int64) int64, error) {
	return func(s Step) (func(int64) int64, error) {
		n, err := s.nonZeroInteger()
		if err != nil {
			return nil, err
		}
		return func(v int64) int64 { return fn(v, n) }, nil
	}
}

func floatArg(fn func(v, n float64) float64) func(Step) (func(float64) float64, error) {
	return func(s Step) (func(float64) float64, error) {
		n, err := s.number()
		if err != nil {
			return nil, err
		}
		return func(v float64) float64 { return fn(v, n) }, nil
	}
}

func textArg(fn func(v, text string) string) func(Step) (func(string) string, error) {
	return func(s Step) (func(string) string, error) {
		text, err := s.text()
		if err != nil {
			return nil, err
		}
		return func(v string) string { return fn(v, text) }, nil
	}
}

func plain[T any](fn func(T) T) func(Step) (func(T) T, error) {
	return func(Step) (func(T) T, error) { return fn, nil }
}

var intOps = map[string]func(Step) (func(int64) int64, error){
	"add": intArg(func(v, n int64) int64 { return v + n }),
	"sub": intArg(func(v, n int64) int64 { return v - n }),
	"mul": intArg(func(v, n int64) int64 { return v * n }),
	"div": intDivisor(func(v, n int64) int64 { return v / n }),
	"mod": intDivisor(func(v, n int64) int64 { return v % n }),
	"neg": plain(func(v int64) int64 { return -v }),
	"abs": plain(absInt),
}

var floatOps = map[string]func(Step) (func(float64) float64, error){
	"add":   floatArg(func(v, n float64) float64 { return v + n }),
	"sub":   floatArg(func(v, n float64) float64 { return v - n }),
	"mul":   floatArg(func(v, n float64) float64 { return v * n }),
	"div":   floatArg(func(v, n float64) float64 { return v / n }),
	"neg":   plain(func(v float64) float64 { return -v }),
	"abs":   plain(math.Abs),
	"round": plain(math.Round),
	"floor": plain(math.Floor),
	"ceil":  plain(math.Ceil),
}

var stringOps = map[string]func(Step) (func(string) string, error){
	"upper":   plain(strings.ToUpper),
	"lower":   plain(strings.ToLower),
	"trim":    plain(strings.TrimSpace),
	"prefix":  textArg(func(v, text string) string { return text + v }),
	"suffix":  textArg(func(v, text string) string { return v + text }),
	"reverse": plain(reverse),
}

func absInt(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func reverse(v string) string {
	r := []rune(v)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
