package models

import "fmt"

// SlotKind tells what occupies a resolved grid position.
type SlotKind int

const (
	// SlotEmpty is a position nothing has claimed.
	SlotEmpty SlotKind = iota
	// SlotAnchor is the top-left position of a cell, carrying its content.
	SlotAnchor
	// SlotPlaceholder is a position covered by another cell's span.
	SlotPlaceholder
)

func (k SlotKind) String() string {
	switch k {
	case SlotEmpty:
		return "empty"
	case SlotAnchor:
		return "anchor"
	case SlotPlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("SlotKind(%d)", int(k))
	}
}

// Slot is a resolved grid position. The zero value is an empty slot.
//
// For anchors Cell is the placed cell. For placeholders Cell points at the
// cell whose span covers the position; the cell is shared, never copied.
type Slot struct {
	Kind SlotKind
	Cell *Cell
}

// Anchor returns a slot holding c at its top-left position.
func Anchor(c *Cell) Slot {
	return Slot{Kind: SlotAnchor, Cell: c}
}

// Placeholder returns a slot covered by the span of c.
func Placeholder(c *Cell) Slot {
	return Slot{Kind: SlotPlaceholder, Cell: c}
}

// IsEmpty reports whether the slot is unoccupied.
func (s Slot) IsEmpty() bool {
	return s.Kind == SlotEmpty
}

func (s Slot) String() string {
	switch s.Kind {
	case SlotAnchor:
		return s.Cell.String()
	case SlotPlaceholder:
		return fmt.Sprintf("NullCell(%v)", s.Cell)
	default:
		return "<empty>"
	}
}
