package hashring

import "github.com/cespare/xxhash/v2"

// Hasher computes a 64-bit digest of arbitrary bytes, including the
// empty slice. Implementations must be deterministic across processes
// (no per-process seeding) and should distribute realistic key sets
// uniformly over the output range.
type Hasher interface {
	Sum64(data []byte) uint64
}

// xxHasher is the default Hasher.
type xxHasher struct{}

func (xxHasher) Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
