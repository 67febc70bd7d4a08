package partition

import (
	"math"

	"github.com/TheDhejavu/hashring/internal/store"
)

// Table maps each fixed partition of the hash space to its current
// owner. Partition identity depends only on the partition count;
// ownership is derived from the store and refreshed with Rebuild.
// Table is not safe for concurrent use; the ring façade serializes
// access.
type Table struct {
	count  int
	width  uint64
	owners []string
}

// NewTable creates a table of count empty partitions, each spanning an
// equal width of the 64-bit hash space.
func NewTable(count int) *Table {
	width := uint64(math.MaxUint64)
	if count > 1 {
		width = math.MaxUint64/uint64(count) + 1
	}
	return &Table{
		count:  count,
		width:  width,
		owners: make([]string, count),
	}
}

// Rebuild recomputes every partition owner from the store: partition i
// belongs to the successor of its start boundary i*width. On an empty
// store all ownership is cleared.
func (t *Table) Rebuild(s *store.Store) {
	for i := 0; i < t.count; i++ {
		start := uint64(i) * t.width
		if e, ok := s.Successor(start); ok {
			t.owners[i] = e.Owner
		} else {
			t.owners[i] = ""
		}
	}
}

// IndexOf maps a hashed key to its partition index. The mapping is a
// total function of the hash; it never depends on ownership.
func (t *Table) IndexOf(hash uint64) int {
	idx := int(hash / t.width)
	if idx >= t.count {
		idx = t.count - 1
	}
	return idx
}

// Owner returns the owner of partition id. The second return is false
// for an out-of-range id or when no owner is assigned (empty ring).
func (t *Table) Owner(id int) (string, bool) {
	if id < 0 || id >= t.count || t.owners[id] == "" {
		return "", false
	}
	return t.owners[id], true
}

// Count returns the number of partitions.
func (t *Table) Count() int {
	return t.count
}
