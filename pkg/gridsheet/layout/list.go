// Package layout resolves sparse, span-aware table definitions into
// column-addressed grids.
package layout

import "fmt"

// List is a sequence indexable past its end. Reading or writing beyond the
// current length grows the list, filling every new slot with a fresh value
// from the producer.
type List[T any] struct {
	data     []T
	producer func() T
}

// NewList creates an empty list. A nil producer makes out-of-range reads
// and writes fail with ErrOutOfRange.
func NewList[T any](producer func() T, data ...T) *List[T] {
	return &List[T]{data: data, producer: producer}
}

// Len returns the number of materialized slots.
func (l *List[T]) Len() int {
	return len(l.data)
}

// Get returns the value at index, growing the list through index if needed.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.grow(index); err != nil {
		var zero T
		return zero, err
	}
	return l.data[index], nil
}

// Set stores v at index, growing the list through index if needed.
func (l *List[T]) Set(index int, v T) error {
	if err := l.grow(index); err != nil {
		return err
	}
	l.data[index] = v
	return nil
}

// All returns a copy of the materialized slots.
func (l *List[T]) All() []T {
	return append([]T(nil), l.data...)
}

func (l *List[T]) grow(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	if index < len(l.data) {
		return nil
	}
	if l.producer == nil {
		return fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, index, len(l.data))
	}
	for i := len(l.data); i <= index; i++ {
		l.data = append(l.data, l.producer())
	}
	return nil
}
