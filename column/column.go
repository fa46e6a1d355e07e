// Package column implements the three physical column representations a
// chunk may select per attribute: value columns (mutable, typed), dictionary
// columns (immutable, bit-width-fitted codes into a sorted dictionary), and
// reference columns (a position list projected over another table).
package column

import (
	"github.com/opossumdb/columnstore/rowid"
	"github.com/opossumdb/columnstore/val"
)

// Column is the minimal, variant-erased interface every column
// representation satisfies. Size and the slow diagnostic accessor At are
// all a caller can assume without knowing which variant it holds; scans
// and other hot paths type-assert to the concrete variant (*ValueColumn[T],
// *DictionaryColumn[T], *ReferenceColumn) to reach typed, allocation-free
// accessors instead of going through At.
type Column interface {
	// Size returns the number of rows in the column.
	Size() int
	// At returns the value at row i as a variant. This is the slow,
	// diagnostic path: it allocates and boxes the value. Typed code
	// should prefer the concrete variant's typed accessor.
	At(i int) (val.AllTypeVariant, error)
	// Append adds a row to the column. Dictionary and reference columns
	// are immutable and always fail with storeerr.ImmutableColumn.
	Append(v val.AllTypeVariant) error
}

// ChunkAccessor is the minimal view of a Chunk a ReferenceColumn needs to
// resolve a row. It exists so this package does not import the chunk
// package (which imports this one), matching the Go idiom of depending on
// a small interface rather than a concrete type from a higher layer.
type ChunkAccessor interface {
	GetColumn(id rowid.ColumnID) (Column, error)
}

// TableAccessor is the minimal view of a Table a ReferenceColumn needs to
// resolve a row, for the same reason as ChunkAccessor.
type TableAccessor interface {
	GetChunk(id rowid.ChunkID) (ChunkAccessor, error)
}
