// Package scan implements the table scan operator: it reads one input
// table, a target column, a comparison predicate, and a search value, and
// produces an output table whose single chunk is made of reference columns
// over the scanned input's origin base table.
package scan

import (
	"github.com/sirupsen/logrus"

	"github.com/opossumdb/columnstore/chunk"
	"github.com/opossumdb/columnstore/column"
	"github.com/opossumdb/columnstore/rowid"
	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/table"
	"github.com/opossumdb/columnstore/val"
)

// Logger is the package-level logger used for scan diagnostics.
var Logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the package-level logger.
func SetLogger(l logrus.FieldLogger) { Logger = l }

// ScanType is one of the six supported comparison predicates.
type ScanType int

const (
	OpEquals ScanType = iota
	OpNotEquals
	OpLessThan
	OpLessThanEquals
	OpGreaterThan
	OpGreaterThanEquals
)

func (s ScanType) String() string {
	switch s {
	case OpEquals:
		return "="
	case OpNotEquals:
		return "!="
	case OpLessThan:
		return "<"
	case OpLessThanEquals:
		return "<="
	case OpGreaterThan:
		return ">"
	case OpGreaterThanEquals:
		return ">="
	default:
		return "?"
	}
}

// Operator is the minimal contract the scan depends on: something that,
// when executed, produces an output table. A fuller operator framework
// (joins, aggregates, sorts) is out of scope for this core.
type Operator interface {
	Execute() (*table.Table, error)
}

// tableOperator adapts a *table.Table to Operator, so a base table can
// serve directly as a scan's input.
type tableOperator struct{ t *table.Table }

func (o tableOperator) Execute() (*table.Table, error) { return o.t, nil }

// FromTable adapts t to the Operator contract.
func FromTable(t *table.Table) Operator { return tableOperator{t} }

// TableScan is the predicate scan operator.
type TableScan struct {
	input       Operator
	columnID    rowid.ColumnID
	scanType    ScanType
	searchValue val.AllTypeVariant
}

// New constructs a TableScan over input, filtering columnID by scanType
// against searchValue.
func New(input Operator, columnID rowid.ColumnID, scanType ScanType, searchValue val.AllTypeVariant) *TableScan {
	return &TableScan{input: input, columnID: columnID, scanType: scanType, searchValue: searchValue}
}

// ColumnID returns the scanned column.
func (s *TableScan) ColumnID() rowid.ColumnID { return s.columnID }

// Type returns the comparison predicate.
func (s *TableScan) Type() ScanType { return s.scanType }

// SearchValue returns the search value.
func (s *TableScan) SearchValue() val.AllTypeVariant { return s.searchValue }

// Execute runs the input operator, resolves the target column's scalar
// type from the input's schema, casts the search value to that type, and
// dispatches to the type-specialized scan implementation.
func (s *TableScan) Execute() (*table.Table, error) {
	input, err := s.input.Execute()
	if err != nil {
		return nil, err
	}

	typeTag, err := input.ColumnType(s.columnID)
	if err != nil {
		return nil, err
	}

	switch typeTag {
	case val.TagInt:
		return scanTyped[int32](s, input)
	case val.TagFloat:
		return scanTyped[float64](s, input)
	case val.TagString:
		return scanTyped[string](s, input)
	default:
		return nil, storeerr.New(storeerr.UnknownType, "unknown type tag %q", typeTag)
	}
}

func scanTyped[T val.Scalar](s *TableScan, input *table.Table) (*table.Table, error) {
	searchVal, err := val.Cast[T](s.searchValue)
	if err != nil {
		return nil, err
	}
	comparator, err := comparatorFor[T](s.scanType)
	if err != nil {
		return nil, err
	}

	colCount := input.ColCount()
	output := table.New(0)
	for i := 0; i < colCount; i++ {
		name, err := input.ColumnName(rowid.ColumnID(i))
		if err != nil {
			return nil, err
		}
		typ, err := input.ColumnType(rowid.ColumnID(i))
		if err != nil {
			return nil, err
		}
		output.AddColumnDefinition(name, typ)
	}

	var posList rowid.PosList
	origin := input.Accessor()
	usedReferencePath := false

	if input.ChunkCount() == 1 {
		c0, err := input.GetChunk(0)
		if err != nil {
			return nil, err
		}
		col, err := c0.GetColumn(s.columnID)
		if err != nil {
			return nil, err
		}
		if refCol, ok := col.(*column.ReferenceColumn); ok {
			posList, err = scanReferenceColumn[T](refCol, comparator, searchVal)
			if err != nil {
				return nil, err
			}
			origin = refCol.ReferencedTable()
			usedReferencePath = true
		}
	}

	if !usedReferencePath {
		posList, err = scanGeneral[T](input, s.columnID, comparator, s.scanType, searchVal)
		if err != nil {
			return nil, err
		}
	}

	resultChunk := chunk.New()
	for i := 0; i < colCount; i++ {
		resultChunk.AddColumn(column.NewReferenceColumn(origin, rowid.ColumnID(i), posList))
	}
	output.EmplaceChunk(resultChunk)

	Logger.WithFields(logrus.Fields{
		"column":          s.columnID,
		"predicate":       s.scanType,
		"rows_in":         input.RowCount(),
		"rows_out":        len(posList),
		"reference_path":  usedReferencePath,
	}).Debug("scan finished")

	return output, nil
}

// comparatorFor returns the comparator function for scanType over T.
func comparatorFor[T val.Scalar](scanType ScanType) (func(a, b T) bool, error) {
	switch scanType {
	case OpEquals:
		return func(a, b T) bool { return a == b }, nil
	case OpNotEquals:
		return func(a, b T) bool { return a != b }, nil
	case OpLessThan:
		return func(a, b T) bool { return a < b }, nil
	case OpLessThanEquals:
		return func(a, b T) bool { return a <= b }, nil
	case OpGreaterThan:
		return func(a, b T) bool { return a > b }, nil
	case OpGreaterThanEquals:
		return func(a, b T) bool { return a >= b }, nil
	default:
		return nil, storeerr.New(storeerr.UnknownType, "unknown scan type %d", scanType)
	}
}

// typedAt reads row i of col as T, preferring the concrete variant's
// allocation-free typed accessor and falling back to the variant-erased
// At plus a boundary cast for anything else.
func typedAt[T val.Scalar](col column.Column, i int) (T, error) {
	switch c := col.(type) {
	case *column.ValueColumn[T]:
		return c.Values()[i], nil
	case *column.DictionaryColumn[T]:
		return c.Get(i)
	default:
		v, err := col.At(i)
		if err != nil {
			var zero T
			return zero, err
		}
		return val.Cast[T](v)
	}
}

// scanGeneral implements scan path 2 (spec.md §4.8): every chunk of input
// is scanned in full, dispatching per chunk on the target column's variant.
func scanGeneral[T val.Scalar](input *table.Table, columnID rowid.ColumnID, comparator func(a, b T) bool, scanType ScanType, searchVal T) (rowid.PosList, error) {
	var out rowid.PosList
	chunkCount := input.ChunkCount()
	for ci := rowid.ChunkID(0); ci < chunkCount; ci++ {
		c, err := input.GetChunk(ci)
		if err != nil {
			return nil, err
		}
		col, err := c.GetColumn(columnID)
		if err != nil {
			return nil, err
		}

		switch typed := col.(type) {
		case *column.ValueColumn[T]:
			for offset, v := range typed.Values() {
				if comparator(v, searchVal) {
					out = append(out, rowid.RowID{ChunkID: ci, ChunkOffset: rowid.ChunkOffset(offset)})
				}
			}
		case *column.DictionaryColumn[T]:
			rows, err := scanDictionaryChunk(typed, scanType, searchVal, ci)
			if err != nil {
				return nil, err
			}
			out = append(out, rows...)
		default:
			n := col.Size()
			for offset := 0; offset < n; offset++ {
				v, err := typedAt[T](col, offset)
				if err != nil {
					return nil, err
				}
				if comparator(v, searchVal) {
					out = append(out, rowid.RowID{ChunkID: ci, ChunkOffset: rowid.ChunkOffset(offset)})
				}
			}
		}
	}
	return out, nil
}

// scanReferenceColumn implements scan path 1 (spec.md §4.8): the input is
// a single reference column, filtered as a view over its referenced (base)
// table. The resolved physical column is cached while consecutive RowIDs
// share a ChunkID; correctness does not depend on that grouping, only
// performance.
func scanReferenceColumn[T val.Scalar](refCol *column.ReferenceColumn, comparator func(a, b T) bool, searchVal T) (rowid.PosList, error) {
	base := refCol.ReferencedTable()
	bc := refCol.ReferencedColumnID()
	posIn := refCol.PosList()

	var out rowid.PosList
	var cachedChunkID rowid.ChunkID
	var cachedCol column.Column
	haveCache := false

	for _, r := range posIn {
		if !haveCache || r.ChunkID != cachedChunkID {
			chunkAcc, err := base.GetChunk(r.ChunkID)
			if err != nil {
				return nil, err
			}
			col, err := chunkAcc.GetColumn(bc)
			if err != nil {
				return nil, err
			}
			cachedCol = col
			cachedChunkID = r.ChunkID
			haveCache = true
		}
		v, err := typedAt[T](cachedCol, int(r.ChunkOffset))
		if err != nil {
			return nil, err
		}
		if comparator(v, searchVal) {
			out = append(out, r)
		}
	}
	return out, nil
}

// scanDictionaryChunk implements the dictionary-column threshold table
// from spec.md §4.8: a single ValueID threshold and code predicate are
// computed from LowerBound/UpperBound, then the attribute vector is
// scanned once. "All rows" shortcuts append the full chunk range without
// consulting codes.
func scanDictionaryChunk[T val.Scalar](c *column.DictionaryColumn[T], scanType ScanType, searchVal T, chunkID rowid.ChunkID) (rowid.PosList, error) {
	n := c.Size()
	lb := c.LowerBound(searchVal)
	ub := c.UpperBound(searchVal)
	present := lb != val.InvalidValueID && c.Dictionary()[lb] == searchVal

	var threshold val.ValueID
	var rowPred func(code val.ValueID) bool

	switch scanType {
	case OpEquals:
		if !present {
			return nil, nil
		}
		threshold = lb
		rowPred = func(code val.ValueID) bool { return code == threshold }
	case OpNotEquals:
		if !present {
			return allRows(n, chunkID), nil
		}
		threshold = lb
		rowPred = func(code val.ValueID) bool { return code != threshold }
	case OpLessThan:
		if lb == 0 {
			return nil, nil
		}
		if lb == val.InvalidValueID {
			return allRows(n, chunkID), nil
		}
		threshold = lb
		rowPred = func(code val.ValueID) bool { return code < threshold }
	case OpLessThanEquals:
		if ub == 0 {
			return nil, nil
		}
		if ub == val.InvalidValueID {
			return allRows(n, chunkID), nil
		}
		threshold = ub
		rowPred = func(code val.ValueID) bool { return code < threshold }
	case OpGreaterThan:
		if ub == val.InvalidValueID {
			return nil, nil
		}
		if ub == 0 {
			return allRows(n, chunkID), nil
		}
		threshold = ub
		rowPred = func(code val.ValueID) bool { return code >= threshold }
	case OpGreaterThanEquals:
		if lb == val.InvalidValueID {
			return nil, nil
		}
		if lb == 0 {
			return allRows(n, chunkID), nil
		}
		threshold = lb
		rowPred = func(code val.ValueID) bool { return code >= threshold }
	default:
		return nil, storeerr.New(storeerr.UnknownType, "unknown scan type %d", scanType)
	}

	av := c.AttributeVector()
	var out rowid.PosList
	for i := 0; i < n; i++ {
		code, err := av.Get(i)
		if err != nil {
			return nil, err
		}
		if rowPred(code) {
			out = append(out, rowid.RowID{ChunkID: chunkID, ChunkOffset: rowid.ChunkOffset(i)})
		}
	}
	return out, nil
}

func allRows(n int, chunkID rowid.ChunkID) rowid.PosList {
	out := make(rowid.PosList, n)
	for i := 0; i < n; i++ {
		out[i] = rowid.RowID{ChunkID: chunkID, ChunkOffset: rowid.ChunkOffset(i)}
	}
	return out
}
