// Package setutil provides generic set utilities for common ID collection patterns.
package setutil

// StringSet is a set of string values that remembers insertion order.
type StringSet struct {
	items map[string]struct{}
	order []string
}

// NewStringSet creates a new empty StringSet.
func NewStringSet() *StringSet {
	return &StringSet{
		items: make(map[string]struct{}),
	}
}

// NewStringSetWithCap creates a new StringSet with initial capacity.
func NewStringSetWithCap(cap int) *StringSet {
	return &StringSet{
		items: make(map[string]struct{}, cap),
		order: make([]string, 0, cap),
	}
}

// Add adds an id to the set. Duplicates are ignored.
func (s *StringSet) Add(id string) {
	if _, ok := s.items[id]; ok {
		return
	}
	s.items[id] = struct{}{}
	s.order = append(s.order, id)
}

// AddAll adds all ids to the set.
func (s *StringSet) AddAll(ids []string) {
	for _, id := range ids {
		s.Add(id)
	}
}

// Has returns true if the id exists in the set.
func (s *StringSet) Has(id string) bool {
	_, ok := s.items[id]
	return ok
}

// ToSlice returns all ids in insertion order.
func (s *StringSet) ToSlice() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of elements in the set.
func (s *StringSet) Len() int {
	return len(s.items)
}
