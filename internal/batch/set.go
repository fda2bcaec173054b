package batch

import "sort"

// Set holds distinct validated URLs. Insertion order is not preserved;
// Values returns a sorted snapshot so batch processing is deterministic.
type Set struct {
	members map[string]struct{}
}

// NewSet returns an empty URL set.
func NewSet() *Set {
	return &Set{members: make(map[string]struct{})}
}

// Add inserts url, reporting whether it was newly added.
func (s *Set) Add(url string) bool {
	if _, ok := s.members[url]; ok {
		return false
	}
	s.members[url] = struct{}{}
	return true
}

// Contains reports membership.
func (s *Set) Contains(url string) bool {
	_, ok := s.members[url]
	return ok
}

// Len returns the number of distinct URLs.
func (s *Set) Len() int {
	return len(s.members)
}

// Values returns the URLs sorted lexicographically.
func (s *Set) Values() []string {
	values := make([]string, 0, len(s.members))
	for url := range s.members {
		values = append(values, url)
	}
	sort.Strings(values)
	return values
}
