package cli

import (
	"fmt"
	"github.com/heyvito/trilist"
	"github.com/heyvito/trilist/internal/config"
)

var errUnknownKind = fmt.Errorf("unknown kind, expected int, float or string")

type kind uint8

const (
	kindInt kind = iota
	kindFloat
	kindString
)

func parseKind(s string) (kind, error) {
	switch s {
	case "int":
		return kindInt, nil
	case "float":
		return kindFloat, nil
	case "string":
		return kindString, nil
	}
	return 0, fmt.Errorf("%w: %q", errUnknownKind, s)
}

func (k kind) String() string {
	switch k {
	case kindInt:
		return "int"
	case kindFloat:
		return "float"
	default:
		return "string"
	}
}

func (k kind) reset(l *config.List) {
	switch k {
	case kindInt:
		trilist.Reset[int64](l)
	case kindFloat:
		trilist.Reset[float64](l)
	default:
		trilist.Reset[string](l)
	}
}
