// Package index holds the immutable executable-name snapshot and the
// handle through which it is published to readers.
package index

import (
	"sort"
	"sync/atomic"
)

// Snapshot is a sorted, de-duplicated set of executable base names.
// A Snapshot is never modified after construction.
type Snapshot struct {
	names []string
}

var empty = &Snapshot{}

// Empty returns the snapshot with no entries
func Empty() *Snapshot {
	return empty
}

// NewSnapshot builds a snapshot from names in any order, collapsing duplicates
func NewSnapshot(names []string) *Snapshot {
	if len(names) == 0 {
		return empty
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	out := sorted[:1]
	for _, n := range sorted[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return &Snapshot{names: out}
}

// FromSet builds a snapshot from a name set as collected by a scan
func FromSet(set map[string]struct{}) *Snapshot {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	return NewSnapshot(names)
}

// Len returns the number of entries
func (s *Snapshot) Len() int {
	return len(s.names)
}

// At returns the i-th entry in ascending order
func (s *Snapshot) At(i int) string {
	return s.names[i]
}

// Names returns a copy of the entries in ascending order
func (s *Snapshot) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Contains reports whether name is indexed
func (s *Snapshot) Contains(name string) bool {
	i := s.LowerBound(name)
	return i < len(s.names) && s.names[i] == name
}

// LowerBound returns the position of the first entry >= key
func (s *Snapshot) LowerBound(key string) int {
	return sort.SearchStrings(s.names, key)
}

// Store is the single swappable reference to the current snapshot.
// The zero value is ready to use and reads as the empty snapshot.
type Store struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
}

// NewStore creates a store holding the empty snapshot
func NewStore() *Store {
	return &Store{}
}

// Load returns the published snapshot; it never blocks
func (st *Store) Load() *Snapshot {
	if s := st.current.Load(); s != nil {
		return s
	}
	return empty
}

// Publish atomically replaces the current snapshot and returns the new version
func (st *Store) Publish(s *Snapshot) uint64 {
	if s == nil {
		s = empty
	}
	st.current.Store(s)
	return st.version.Add(1)
}

// Version counts publications since creation
func (st *Store) Version() uint64 {
	return st.version.Load()
}
