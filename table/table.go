// Package table implements Table: a schema plus an ordered sequence of
// fixed-capacity chunks, supporting append, compression, and chunk
// emplacement.
package table

import (
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opossumdb/columnstore/chunk"
	"github.com/opossumdb/columnstore/column"
	"github.com/opossumdb/columnstore/rowid"
	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/val"
)

// unboundedCapacity is the internal chunk capacity used when the caller
// requests 0 (unbounded).
const unboundedCapacity = math.MaxUint32

// Logger is the package-level logger used for table lifecycle diagnostics.
var Logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the package-level logger.
func SetLogger(l logrus.FieldLogger) { Logger = l }

// Table is a schema (column names and type tags) plus an ordered sequence
// of chunks sharing a fixed per-chunk row capacity.
type Table struct {
	id uuid.UUID

	columnNames []string
	columnTypes []string

	chunks        []*chunk.Chunk
	chunkCapacity uint32
}

// New returns a Table with no columns and one empty chunk, capped at
// chunkCapacity rows per chunk. A chunkCapacity of 0 means unbounded.
func New(chunkCapacity uint32) *Table {
	cap := chunkCapacity
	if cap == 0 {
		cap = unboundedCapacity
	}
	t := &Table{
		id:            uuid.New(),
		chunkCapacity: cap,
	}
	t.createNewChunk()
	return t
}

// AddColumnDefinition records a schema entry without touching any chunk.
// Used when constructing a fresh result table (e.g. from a scan) whose
// chunks will be emplaced directly rather than built via AddColumn.
func (t *Table) AddColumnDefinition(name, typeTag string) {
	t.columnNames = append(t.columnNames, name)
	t.columnTypes = append(t.columnTypes, typeTag)
}

// AddColumn records a schema entry and adds a value column of that type to
// every existing chunk. Intended to be called before any row is appended;
// calling it once chunks hold rows leaves those chunks with columns of
// unequal length until further appends catch the new column up (see
// SPEC_FULL.md §4.1–4.8).
func (t *Table) AddColumn(name, typeTag string) error {
	for _, c := range t.chunks {
		col, err := column.NewValueByType(typeTag)
		if err != nil {
			return err
		}
		c.AddColumn(col)
	}
	t.AddColumnDefinition(name, typeTag)
	return nil
}

// Append writes one row to the last chunk, creating a new chunk first if
// the last one is at capacity.
func (t *Table) Append(values []val.AllTypeVariant) error {
	last := t.chunks[len(t.chunks)-1]
	if uint32(last.Size()) >= t.chunkCapacity {
		t.createNewChunk()
		last = t.chunks[len(t.chunks)-1]
	}
	return last.Append(values)
}

// createNewChunk appends a new chunk populated with one empty value column
// per current schema entry.
func (t *Table) createNewChunk() {
	c := chunk.New()
	for _, typeTag := range t.columnTypes {
		col, err := column.NewValueByType(typeTag)
		if err != nil {
			// columnTypes only ever holds tags that were already
			// validated by AddColumn/AddColumnDefinition callers.
			panic(err)
		}
		c.AddColumn(col)
	}
	t.chunks = append(t.chunks, c)
	Logger.WithFields(logrus.Fields{"table": t.id, "chunk_count": len(t.chunks)}).Debug("chunk created")
}

// RowCount returns (chunk_count-1)*capacity + size_of_last_chunk.
func (t *Table) RowCount() uint64 {
	if len(t.chunks) == 0 {
		return 0
	}
	full := uint64(len(t.chunks)-1) * uint64(t.chunkCapacity)
	return full + uint64(t.chunks[len(t.chunks)-1].Size())
}

// ColCount returns the number of schema columns.
func (t *Table) ColCount() int { return len(t.columnNames) }

// ColumnName returns the name of column id. Fails with
// storeerr.OutOfRange if id is out of bounds.
func (t *Table) ColumnName(id rowid.ColumnID) (string, error) {
	if int(id) >= len(t.columnNames) {
		return "", storeerr.New(storeerr.OutOfRange, "column id %d out of range [0,%d)", id, len(t.columnNames))
	}
	return t.columnNames[id], nil
}

// ColumnType returns the type tag of column id. Fails with
// storeerr.OutOfRange if id is out of bounds.
func (t *Table) ColumnType(id rowid.ColumnID) (string, error) {
	if int(id) >= len(t.columnTypes) {
		return "", storeerr.New(storeerr.OutOfRange, "column id %d out of range [0,%d)", id, len(t.columnTypes))
	}
	return t.columnTypes[id], nil
}

// ColumnIDByName resolves a column name to its id. Fails with
// storeerr.UnknownColumn if no column has that name.
func (t *Table) ColumnIDByName(name string) (rowid.ColumnID, error) {
	for i, n := range t.columnNames {
		if n == name {
			return rowid.ColumnID(i), nil
		}
	}
	return 0, storeerr.New(storeerr.UnknownColumn, "no column named %q", name)
}

// ChunkCount returns the number of chunks in the table.
func (t *Table) ChunkCount() rowid.ChunkID { return rowid.ChunkID(len(t.chunks)) }

// ChunkSize returns the configured per-chunk row capacity, or 0 if the
// table was constructed with an unbounded capacity.
func (t *Table) ChunkSize() uint32 {
	if t.chunkCapacity == unboundedCapacity {
		return 0
	}
	return t.chunkCapacity
}

// GetChunk returns the chunk at id. Fails with storeerr.OutOfRange if id
// is out of bounds.
func (t *Table) GetChunk(id rowid.ChunkID) (*chunk.Chunk, error) {
	if int(id) >= len(t.chunks) {
		return nil, storeerr.New(storeerr.OutOfRange, "chunk id %d out of range [0,%d)", id, len(t.chunks))
	}
	return t.chunks[id], nil
}

// Accessor returns t widened to column.TableAccessor, the non-owning
// handle a ReferenceColumn holds onto its base table.
func (t *Table) Accessor() column.TableAccessor { return tableAccessor{t} }

// tableAccessor adapts *Table's concrete GetChunk (which returns *chunk.Chunk
// for callers that need the full Chunk API) to column.TableAccessor's
// interface-typed signature, without requiring the column package to import
// chunk or table.
type tableAccessor struct{ t *Table }

func (a tableAccessor) GetChunk(id rowid.ChunkID) (column.ChunkAccessor, error) {
	return a.t.GetChunk(id)
}

// CompressChunk replaces every column of the chunk at id with a dictionary
// column over its current content. Column types are preserved.
// Re-compressing an already-compressed chunk is a no-op.
func (t *Table) CompressChunk(id rowid.ChunkID) error {
	c, err := t.GetChunk(id)
	if err != nil {
		return err
	}
	return c.Compress(t.columnTypes)
}

// EmplaceChunk replaces the table's single empty chunk with c if the table
// currently has exactly one empty chunk; otherwise it appends c.
func (t *Table) EmplaceChunk(c *chunk.Chunk) {
	if len(t.chunks) == 1 && t.chunks[0].Size() == 0 {
		t.chunks[0] = c
		return
	}
	t.chunks = append(t.chunks, c)
}
