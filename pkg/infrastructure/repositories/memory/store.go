package memory

import (
	"strings"
	"sync"

	"github.com/samber/lo"
)

// orderedStore keeps entries in insertion order. Entries are compared by
// reference; ids and names are read through the accessor functions.
// The mutex makes the single-writer assumption safe if a second caller
// context ever appears.
type orderedStore[ID comparable, T any] struct {
	mu      sync.RWMutex
	entries []*T
	idOf    func(*T) ID
	nameOf  func(*T) string
}

func newOrderedStore[ID comparable, T any](capacity int, idOf func(*T) ID, nameOf func(*T) string) *orderedStore[ID, T] {
	return &orderedStore[ID, T]{
		entries: make([]*T, 0, capacity),
		idOf:    idOf,
		nameOf:  nameOf,
	}
}

func (s *orderedStore[ID, T]) add(entry *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// lookup returns the first entry whose id matches
func (s *orderedStore[ID, T]) lookup(id ID) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.entries, func(e *T) bool { return s.idOf(e) == id })
}

// lookupByName returns every entry whose name contains substring.
// Matching is literal and case-sensitive; the empty string matches all.
func (s *orderedStore[ID, T]) lookupByName(substring string) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Filter(s.entries, func(e *T, _ int) bool {
		return strings.Contains(s.nameOf(e), substring)
	})
}

// replace swaps the first entry with the given id, keeping its position
func (s *orderedStore[ID, T]) replace(id ID, entry *T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, i, found := lo.FindIndexOf(s.entries, func(e *T) bool { return s.idOf(e) == id })
	if !found {
		return false
	}
	s.entries[i] = entry
	return true
}

// remove deletes the given reference if present
func (s *orderedStore[ID, T]) remove(entry *T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := lo.IndexOf(s.entries, entry)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// snapshot returns a copy of the backing slice; the entries are shared
func (s *orderedStore[ID, T]) snapshot() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*T, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *orderedStore[ID, T]) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
