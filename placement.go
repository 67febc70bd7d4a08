package hashring

import "strconv"

// positionsFor derives the virtual node positions for a member by
// hashing "{id}-{replica}" for each replica index. It is a pure
// function of (id, factor): re-adding a removed member reproduces the
// exact positions it held before.
//
// Positions that collide within the same member are dropped, so the
// result may hold fewer than factor entries. The member then simply has
// fewer effective virtual copies; this is not an error.
func positionsFor(h Hasher, id string, factor int) []uint64 {
	positions := make([]uint64, 0, factor)
	seen := make(map[uint64]struct{}, factor)
	for i := 0; i < factor; i++ {
		p := h.Sum64([]byte(id + "-" + strconv.Itoa(i)))
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		positions = append(positions, p)
	}
	return positions
}
