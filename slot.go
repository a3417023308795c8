package trilist

// stringer can be installed from golang.org/x/tools/cmd/stringer@latest
//go:generate stringer -type=Slot -trimprefix=Slot

// Slot identifies which of a List's three element types an Element holds.
type Slot uint8

const (
	SlotInvalid Slot = iota
	SlotFirst
	SlotSecond
	SlotThird
)

// Valid returns whether s refers to one of the three element slots.
func (s Slot) Valid() bool { return s >= SlotFirst && s <= SlotThird }

func (s Slot) index() int { return int(s) - 1 }
