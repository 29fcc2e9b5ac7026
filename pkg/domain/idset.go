package domain

import "sort"

// IDSet is an immutable set of entity ids. With and Without return copies;
// when the operation is a no-op they return the receiver unchanged, so
// callers can detect "nothing happened" by reference equality.
type IDSet map[string]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Empty reports whether the set has no members.
func (s IDSet) Empty() bool { return len(s) == 0 }

// With returns a set that additionally contains id.
func (s IDSet) With(id string) IDSet {
	if s.Has(id) {
		return s
	}
	next := make(IDSet, len(s)+1)
	for k := range s {
		next[k] = struct{}{}
	}
	next[id] = struct{}{}
	return next
}

// Without returns a set that no longer contains id.
func (s IDSet) Without(id string) IDSet {
	if !s.Has(id) {
		return s
	}
	next := make(IDSet, len(s)-1)
	for k := range s {
		if k != id {
			next[k] = struct{}{}
		}
	}
	return next
}

// Equal reports whether both sets have exactly the same members.
func (s IDSet) Equal(other IDSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// Values returns the members in sorted order, for deterministic iteration.
func (s IDSet) Values() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
