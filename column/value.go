package column

import (
	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/val"
)

// ValueColumn is a mutable, append-only sequence of decoded values of a
// single scalar type, ordered by insertion.
type ValueColumn[T val.Scalar] struct {
	values []T
}

// NewValueColumn returns an empty ValueColumn[T].
func NewValueColumn[T val.Scalar]() *ValueColumn[T] {
	return &ValueColumn[T]{}
}

// Append decodes v to T and appends it.
func (c *ValueColumn[T]) Append(v val.AllTypeVariant) error {
	t, err := val.Cast[T](v)
	if err != nil {
		return err
	}
	c.values = append(c.values, t)
	return nil
}

// At returns the value at row i as a variant. Prefer Values for hot paths.
func (c *ValueColumn[T]) At(i int) (val.AllTypeVariant, error) {
	if i < 0 || i >= len(c.values) {
		return nil, storeerr.New(storeerr.OutOfRange, "value column index %d out of range [0,%d)", i, len(c.values))
	}
	return c.values[i], nil
}

// Values returns the typed, ordered backing slice. Scans use this instead
// of At to avoid per-row boxing.
func (c *ValueColumn[T]) Values() []T { return c.values }

// Size returns the number of values stored.
func (c *ValueColumn[T]) Size() int { return len(c.values) }
