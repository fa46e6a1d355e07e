package storage_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opossumdb/columnstore/storage"
	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/table"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New(0)
	require.NoError(t, tbl.AddColumn("a", "int"))
	require.NoError(t, tbl.Append([]any{int32(1)}))
	return tbl
}

func TestAddTableAndGetTable(t *testing.T) {
	m := storage.New()
	tbl := sampleTable(t)
	require.NoError(t, m.AddTable("people", tbl))

	got, err := m.GetTable("people")
	require.NoError(t, err)
	assert.Same(t, tbl, got)
	assert.True(t, m.HasTable("people"))
}

func TestAddTableDuplicateNameFails(t *testing.T) {
	m := storage.New()
	require.NoError(t, m.AddTable("people", sampleTable(t)))

	err := m.AddTable("people", sampleTable(t))
	assert.True(t, storeerr.Is(err, storeerr.DuplicateName))
}

func TestAddTableAcceptsEmptyName(t *testing.T) {
	m := storage.New()
	require.NoError(t, m.AddTable("", sampleTable(t)))
	assert.True(t, m.HasTable(""))
}

func TestGetTableUnknownFails(t *testing.T) {
	m := storage.New()
	_, err := m.GetTable("nope")
	assert.True(t, storeerr.Is(err, storeerr.UnknownTable))
}

func TestDropTableUnknownFails(t *testing.T) {
	m := storage.New()
	err := m.DropTable("nope")
	assert.True(t, storeerr.Is(err, storeerr.UnknownTable))
}

func TestDropTableRemovesIt(t *testing.T) {
	m := storage.New()
	require.NoError(t, m.AddTable("people", sampleTable(t)))
	require.NoError(t, m.DropTable("people"))
	assert.False(t, m.HasTable("people"))
}

func TestTableNamesNoGuaranteedOrder(t *testing.T) {
	m := storage.New()
	require.NoError(t, m.AddTable("b", sampleTable(t)))
	require.NoError(t, m.AddTable("a", sampleTable(t)))
	assert.ElementsMatch(t, []string{"a", "b"}, m.TableNames())
}

func TestPrintListsOneLinePerTableSortedByName(t *testing.T) {
	m := storage.New()
	require.NoError(t, m.AddTable("b", sampleTable(t)))
	require.NoError(t, m.AddTable("a", sampleTable(t)))

	var buf bytes.Buffer
	require.NoError(t, m.Print(&buf))

	assert.Equal(t, "'a': 1 columns, 1 rows, 1 chunks\n'b': 1 columns, 1 rows, 1 chunks\n", buf.String())
}

func TestResetReturnsToEmptyState(t *testing.T) {
	m := storage.New()
	require.NoError(t, m.AddTable("people", sampleTable(t)))
	m.Reset()
	assert.False(t, m.HasTable("people"))
	assert.Empty(t, m.TableNames())
}

func TestConcurrentAddTableOnDisjointNames(t *testing.T) {
	m := storage.New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			_ = m.AddTable(name, sampleTable(t))
		}()
	}
	wg.Wait()
	assert.Len(t, m.TableNames(), 16)
}
