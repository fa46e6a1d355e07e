// Package storage implements StorageManager: a process-wide, name-keyed
// table registry. It is an external collaborator to the storage core
// (spec.md §4.9) included here for completeness of the boundary.
package storage

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/table"
)

// StorageManager maps table names to owned tables. All writers
// (AddTable, DropTable, Reset) take an exclusive lock; all readers take a
// shared lock, per SPEC_FULL.md §5.
type StorageManager struct {
	mu     sync.RWMutex
	tables map[string]*table.Table
}

// New returns an empty StorageManager.
func New() *StorageManager {
	return &StorageManager{tables: make(map[string]*table.Table)}
}

// AddTable registers t under name. Fails with storeerr.DuplicateName if
// name is already registered. The empty string is a valid name.
func (m *StorageManager) AddTable(name string, t *table.Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[name]; ok {
		return storeerr.New(storeerr.DuplicateName, "table %q already exists", name)
	}
	m.tables[name] = t
	return nil
}

// DropTable removes the table registered under name. Fails with
// storeerr.UnknownTable if no such table exists.
func (m *StorageManager) DropTable(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[name]; !ok {
		return storeerr.New(storeerr.UnknownTable, "no table named %q", name)
	}
	delete(m.tables, name)
	return nil
}

// GetTable returns the table registered under name. Fails with
// storeerr.UnknownTable if no such table exists.
func (m *StorageManager) GetTable(name string) (*table.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[name]
	if !ok {
		return nil, storeerr.New(storeerr.UnknownTable, "no table named %q", name)
	}
	return t, nil
}

// HasTable reports whether name is registered.
func (m *StorageManager) HasTable(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.tables[name]
	return ok
}

// TableNames returns every registered name, in no guaranteed order.
func (m *StorageManager) TableNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	return names
}

// Print writes one line per table to out, sorted by name for
// deterministic output: '<name>': <C> columns, <R> rows, <K> chunks.
func (m *StorageManager) Print(out io.Writer) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := m.tables[name]
		_, err := fmt.Fprintf(out, "'%s': %s columns, %s rows, %s chunks\n",
			name,
			humanize.Comma(int64(t.ColCount())),
			humanize.Comma(int64(t.RowCount())),
			humanize.Comma(int64(t.ChunkCount())),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Reset discards every registered table, returning the manager to its
// initial empty state.
func (m *StorageManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = make(map[string]*table.Table)
}
