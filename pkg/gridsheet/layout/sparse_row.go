package layout

import (
	"fmt"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
)

// SparseRow acts like an infinite row of empty slots. A slot can be
// written only while it is empty.
type SparseRow struct {
	slots *List[models.Slot]
}

// NewSparseRow creates a row holding slots, in column order.
func NewSparseRow(slots ...models.Slot) *SparseRow {
	return &SparseRow{
		slots: NewList(func() models.Slot { return models.Slot{} }, slots...),
	}
}

// Len returns the number of materialized slots.
func (r *SparseRow) Len() int {
	return r.slots.Len()
}

// Get returns the slot at index. Unmaterialized slots read as empty.
func (r *SparseRow) Get(index int) models.Slot {
	if index < 0 || index >= r.slots.Len() {
		return models.Slot{}
	}
	s, _ := r.slots.Get(index)
	return s
}

// Set claims the slot at index. It fails with ErrOccupied when the slot
// already holds a cell or a placeholder.
func (r *SparseRow) Set(index int, s models.Slot) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	if current := r.Get(index); !current.IsEmpty() {
		return fmt.Errorf("%w: column %d holds %v", ErrOccupied, index, current)
	}
	return r.slots.Set(index, s)
}

// NextEmpty returns the first empty slot index at or after from.
func (r *SparseRow) NextEmpty(from int) int {
	if from < 0 {
		from = 0
	}
	for !r.Get(from).IsEmpty() {
		from++
	}
	return from
}

// Slots returns the materialized slots in column order, empties included.
func (r *SparseRow) Slots() []models.Slot {
	return r.slots.All()
}
