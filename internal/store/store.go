package store

import (
	"fmt"
	"sort"
)

// Entry is one virtual node on the ring: a hashed position claimed by
// an owner.
type Entry struct {
	Position uint64
	Owner    string
}

// ConflictError reports an insert that would reassign a position
// already claimed by a different owner.
type ConflictError struct {
	Position uint64
	Owner    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("position %d already owned by %q", e.Position, e.Owner)
}

// Store keeps ring entries sorted ascending by position. Positions are
// unique across the store. Store is not safe for concurrent use; the
// ring façade serializes access.
type Store struct {
	entries []Entry
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: make([]Entry, 0)}
}

// Insert adds a batch of entries, maintaining sort order. The batch is
// validated before anything is written: if any position is already
// claimed by a different owner, a ConflictError is returned and the
// store is unchanged. Positions already present for the same owner, and
// duplicate positions within the batch, are skipped.
func (s *Store) Insert(batch []Entry) error {
	if len(batch) == 0 {
		return nil
	}

	sorted := make([]Entry, len(batch))
	copy(sorted, batch)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	add := make([]Entry, 0, len(sorted))
	for i, e := range sorted {
		if i > 0 && e.Position == sorted[i-1].Position {
			if e.Owner != sorted[i-1].Owner {
				return &ConflictError{Position: e.Position, Owner: sorted[i-1].Owner}
			}
			continue
		}
		if cur, ok := s.at(e.Position); ok {
			if cur.Owner != e.Owner {
				return &ConflictError{Position: e.Position, Owner: cur.Owner}
			}
			continue
		}
		add = append(add, e)
	}
	if len(add) == 0 {
		return nil
	}

	s.entries = merge(s.entries, add)
	return nil
}

// Remove deletes every entry claimed by owner and reports how many were
// deleted. Zero means the owner was not present.
func (s *Store) Remove(owner string) int {
	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if e.Owner == owner {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed
}

// Successor returns the entry with the smallest position >= pos,
// wrapping to the first entry when pos is beyond the last one. The
// second return is false only when the store is empty.
func (s *Store) Successor(pos uint64) (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	idx := s.search(pos)
	if idx == len(s.entries) {
		idx = 0
	}
	return s.entries[idx], true
}

// Walk visits entries clockwise starting at the successor of pos,
// wrapping around, until fn returns false or every entry has been
// visited once.
func (s *Store) Walk(pos uint64, fn func(Entry) bool) {
	n := len(s.entries)
	if n == 0 {
		return
	}
	start := s.search(pos)
	for i := 0; i < n; i++ {
		if !fn(s.entries[(start+i)%n]) {
			return
		}
	}
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Owners returns the distinct owners in ring order of first appearance.
func (s *Store) Owners() []string {
	owners := make([]string, 0)
	seen := make(map[string]struct{})
	for _, e := range s.entries {
		if _, ok := seen[e.Owner]; ok {
			continue
		}
		seen[e.Owner] = struct{}{}
		owners = append(owners, e.Owner)
	}
	return owners
}

// OwnerCounts reports how many entries each owner claims.
func (s *Store) OwnerCounts() map[string]int {
	counts := make(map[string]int)
	for _, e := range s.entries {
		counts[e.Owner]++
	}
	return counts
}

// search returns the index of the first entry with position >= pos,
// or len(entries) if there is none.
func (s *Store) search(pos uint64) int {
	return sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Position >= pos
	})
}

// at looks up an entry by exact position.
func (s *Store) at(pos uint64) (Entry, bool) {
	idx := s.search(pos)
	if idx < len(s.entries) && s.entries[idx].Position == pos {
		return s.entries[idx], true
	}
	return Entry{}, false
}

// merge combines two position-sorted, disjoint entry slices into one.
func merge(a, b []Entry) []Entry {
	out := make([]Entry, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Position < b[j].Position {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
