// Package config loads modifier pipelines for a List[int64, float64, string]
// from YAML documents such as:
//
//	int:
//	  - op: mul
//	    arg: 2
//	  - op: add
//	    arg: 1
//	float:
//	  - op: abs
//	string:
//	  - op: upper
//	  - op: prefix
//	    text: "> "
//
// Steps are registered in document order, which is also the order they are
// applied in.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/heyvito/trilist"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

// List is the concrete list type configured by this package.
type List = trilist.List[int64, float64, string]

var (
	ErrUnknownOp  = fmt.Errorf("unknown op")
	ErrMissingArg = fmt.Errorf("missing argument")
	ErrInvalidArg = fmt.Errorf("invalid argument")
)

// Step is a single modifier declaration. Arg and Text are interpreted
// according to Op.
type Step struct {
	Op   string   `yaml:"op"`
	Arg  *float64 `yaml:"arg,omitempty"`
	Text *string  `yaml:"text,omitempty"`
}

// Pipelines holds the ordered steps of each element type.
type Pipelines struct {
	Int    []Step `yaml:"int"`
	Float  []Step `yaml:"float"`
	String []Step `yaml:"string"`
}

// StepError reports a step that could not be turned into a modifier.
type StepError struct {
	Kind  string
	Index int
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step #%d (%s): %s", e.Kind, e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Load reads and parses the pipelines file at path.
func Load(path string) (*Pipelines, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed reading pipelines: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a pipelines document, rejecting unknown fields, and checks
// that every step can be built. An empty document yields empty pipelines.
func Parse(data []byte) (*Pipelines, error) {
	var p Pipelines
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed decoding pipelines: %w", err)
	}

	if _, err := p.build(); err != nil {
		return nil, err
	}
	return &p, nil
}

type modifiers struct {
	ints    []func(int64) int64
	floats  []func(float64) float64
	strings []func(string) string
}

func (p *Pipelines) build() (*modifiers, error) {
	var m modifiers
	var err error
	if m.ints, err = buildAll("int", p.Int, intOps); err != nil {
		return nil, err
	}
	if m.floats, err = buildAll("float", p.Float, floatOps); err != nil {
		return nil, err
	}
	if m.strings, err = buildAll("string", p.String, stringOps); err != nil {
		return nil, err
	}
	return &m, nil
}

// Register appends every configured modifier to l, in order. Either all
// steps are registered, or none is and an error is returned.
func (p *Pipelines) Register(l *List) error {
	m, err := p.build()
	if err != nil {
		return err
	}
	for _, fn := range m.ints {
		trilist.ModifyOnly(l, fn)
	}
	for _, fn := range m.floats {
		trilist.ModifyOnly(l, fn)
	}
	for _, fn := range m.strings {
		trilist.ModifyOnly(l, fn)
	}
	return nil
}

func buildAll[T any](kind string, steps []Step, ops map[string]func(Step) (func(T) T, error)) ([]func(T) T, error) {
	out := make([]func(T) T, 0, len(steps))
	for i, s := range steps {
		builder, ok := ops[s.Op]
		if !ok {
			return nil, &StepError{Kind: kind, Index: i, Op: s.Op, Err: ErrUnknownOp}
		}
		fn, err := builder(s)
		if err != nil {
			return nil, &StepError{Kind: kind, Index: i, Op: s.Op, Err: err}
		}
		out = append(out, fn)
	}
	return out, nil
}
