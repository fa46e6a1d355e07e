// Package chunk implements Chunk, the horizontal partition of a table: an
// ordered sequence of columns sharing a common row count.
package chunk

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/opossumdb/columnstore/column"
	"github.com/opossumdb/columnstore/rowid"
	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/val"
)

// Logger is the package-level logger used for chunk compression
// diagnostics. It defaults to logrus's standard logger and can be
// overridden by embedding applications via SetLogger.
var Logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the package-level logger.
func SetLogger(l logrus.FieldLogger) { Logger = l }

// Chunk is an ordered sequence of columns, one per table attribute,
// sharing a common row count.
type Chunk struct {
	columns []column.Column
}

// New returns an empty Chunk.
func New() *Chunk {
	return &Chunk{}
}

// AddColumn appends col to the chunk's column list.
func (c *Chunk) AddColumn(col column.Column) {
	c.columns = append(c.columns, col)
}

// Append writes one value to each column, in column order. It fails with
// storeerr.ArityMismatch if len(values) != ColCount().
func (c *Chunk) Append(values []val.AllTypeVariant) error {
	if len(values) != len(c.columns) {
		return storeerr.New(storeerr.ArityMismatch, "row has %d values, chunk has %d columns", len(values), len(c.columns))
	}
	for i, v := range values {
		if err := c.columns[i].Append(v); err != nil {
			return err
		}
	}
	return nil
}

// GetColumn returns the column at id. It fails with storeerr.OutOfRange if
// id is out of bounds.
func (c *Chunk) GetColumn(id rowid.ColumnID) (column.Column, error) {
	if int(id) >= len(c.columns) {
		return nil, storeerr.New(storeerr.OutOfRange, "column id %d out of range [0,%d)", id, len(c.columns))
	}
	return c.columns[id], nil
}

// ColCount returns the number of columns in the chunk.
func (c *Chunk) ColCount() int { return len(c.columns) }

// Size returns the chunk's row count: column 0's size, or 0 if the chunk
// has no columns.
func (c *Chunk) Size() int {
	if len(c.columns) == 0 {
		return 0
	}
	return c.columns[0].Size()
}

// Compress replaces every column in the chunk with a dictionary column
// over its current content, keyed by the given column type tags (one per
// column, in order). Column types are preserved. Compressing a chunk that
// is already fully dictionary-encoded is a no-op that rebuilds equivalent
// dictionary columns from the existing decoded content.
func (c *Chunk) Compress(columnTypes []string) error {
	if len(columnTypes) != len(c.columns) {
		return storeerr.New(storeerr.ArityMismatch, "have %d column types for %d columns", len(columnTypes), len(c.columns))
	}

	compressed := make([]column.Column, len(c.columns))
	for i, col := range c.columns {
		if actual, err := column.TagOf(col); err == nil && actual != columnTypes[i] {
			return storeerr.New(storeerr.TypeMismatch, "column %d has type %q, compress called with tag %q", i, actual, columnTypes[i])
		}
		dict, err := column.NewDictByType(columnTypes[i], col)
		if err != nil {
			return err
		}
		compressed[i] = dict
	}

	c.columns = compressed
	Logger.WithFields(logrus.Fields{
		"columns":  len(c.columns),
		"rows":     c.Size(),
		"checksum": c.contentChecksum(),
	}).Debug("chunk compressed")
	return nil
}

// contentChecksum is a cheap, non-cryptographic fingerprint of the
// chunk's decoded content, logged on compression for diagnostic traceability
// only; it is never consulted for correctness.
func (c *Chunk) contentChecksum() uint64 {
	h := xxhash.New()
	for _, col := range c.columns {
		for i := 0; i < col.Size(); i++ {
			v, err := col.At(i)
			if err != nil {
				continue
			}
			fmt.Fprintf(h, "%v|", v)
		}
	}
	return h.Sum64()
}
