package column

import (
	"github.com/opossumdb/columnstore/rowid"
	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/val"
)

// ReferenceColumn is an immutable logical column: a (referenced table,
// referenced column id, shared position list) triple. It does not own the
// referenced table; callers ensure the table outlives the column.
type ReferenceColumn struct {
	referencedTable    TableAccessor
	referencedColumnID rowid.ColumnID
	posList            rowid.PosList
}

// NewReferenceColumn builds a reference column projecting posList over
// referencedTable's referencedColumnID. posList is shared, not copied.
func NewReferenceColumn(referencedTable TableAccessor, referencedColumnID rowid.ColumnID, posList rowid.PosList) *ReferenceColumn {
	return &ReferenceColumn{
		referencedTable:    referencedTable,
		referencedColumnID: referencedColumnID,
		posList:            posList,
	}
}

// At resolves pos_list[i] against the referenced table's referenced column
// and returns the value as a variant.
func (c *ReferenceColumn) At(i int) (val.AllTypeVariant, error) {
	if i < 0 || i >= len(c.posList) {
		return nil, storeerr.New(storeerr.OutOfRange, "reference column index %d out of range [0,%d)", i, len(c.posList))
	}
	row := c.posList[i]
	chunk, err := c.referencedTable.GetChunk(row.ChunkID)
	if err != nil {
		return nil, err
	}
	col, err := chunk.GetColumn(c.referencedColumnID)
	if err != nil {
		return nil, err
	}
	return col.At(int(row.ChunkOffset))
}

// Append always fails: reference columns are immutable.
func (c *ReferenceColumn) Append(val.AllTypeVariant) error {
	return storeerr.New(storeerr.ImmutableColumn, "cannot append to a reference column")
}

// Size returns the length of the shared position list.
func (c *ReferenceColumn) Size() int { return len(c.posList) }

// ReferencedTable returns the non-owning handle to the base table.
func (c *ReferenceColumn) ReferencedTable() TableAccessor { return c.referencedTable }

// ReferencedColumnID returns the column id this column projects.
func (c *ReferenceColumn) ReferencedColumnID() rowid.ColumnID { return c.referencedColumnID }

// PosList returns the shared position list.
func (c *ReferenceColumn) PosList() rowid.PosList { return c.posList }
