package hashring

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/TheDhejavu/hashring/internal/partition"
	"github.com/TheDhejavu/hashring/internal/store"
)

// Option configures a HashRing at construction time.
type Option func(*HashRing)

// WithHasher replaces the default xxhash Hasher. Rings that must agree
// on key placement have to share the same hasher.
func WithHasher(h Hasher) Option {
	return func(r *HashRing) { r.hasher = h }
}

// WithLogger sets the logger for membership events. The default logger
// discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(r *HashRing) { r.log = log }
}

// HashRing maps keys onto a dynamic set of members using consistent
// hashing with virtual nodes.
//
// All methods are safe for concurrent use. Membership changes are
// serialized and applied atomically: a concurrent lookup observes
// either the pre-mutation ring or the fully-updated one, never an
// intermediate state.
type HashRing struct {
	cfg    Config
	hasher Hasher
	log    zerolog.Logger

	mu      sync.RWMutex
	members map[string]Member
	store   *store.Store
	parts   *partition.Table
}

// New builds an empty ring from cfg. It fails with ErrInvalidConfig
// when cfg holds a zero replication factor or partition count.
func New(cfg Config, opts ...Option) (*HashRing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &HashRing{
		cfg:     cfg,
		hasher:  xxHasher{},
		log:     zerolog.Nop(),
		members: make(map[string]Member),
		store:   store.New(),
		parts:   partition.NewTable(cfg.PartitionCount),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// AddNode places the member's virtual nodes on the ring and reassigns
// partitions. It fails with ErrDuplicateNode if the member's ID is
// already present and with ErrHashCollision if one of the derived
// positions is owned by a different member. On any failure the ring is
// left unchanged.
func (r *HashRing) AddNode(m Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := m.ID()
	if _, exists := r.members[id]; exists {
		return xerrors.Errorf("add node %q: %w", id, ErrDuplicateNode)
	}

	positions := positionsFor(r.hasher, id, r.cfg.ReplicationFactor)
	batch := make([]store.Entry, len(positions))
	for i, p := range positions {
		batch[i] = store.Entry{Position: p, Owner: id}
	}

	if err := r.store.Insert(batch); err != nil {
		var conflict *store.ConflictError
		if errors.As(err, &conflict) {
			return xerrors.Errorf("add node %q: position %d owned by %q: %w",
				id, conflict.Position, conflict.Owner, ErrHashCollision)
		}
		return xerrors.Errorf("add node %q: %w", id, err)
	}

	r.members[id] = m
	r.parts.Rebuild(r.store)

	r.log.Debug().Str("node", id).Int("vnodes", len(positions)).Msg("node added to ring")
	return nil
}

// RemoveNode deletes every virtual node of the member with the given ID
// and reassigns partitions. It fails with ErrNodeNotFound for an
// unknown ID, leaving the ring unchanged.
func (r *HashRing) RemoveNode(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.members[id]; !exists {
		return xerrors.Errorf("remove node %q: %w", id, ErrNodeNotFound)
	}

	removed := r.store.Remove(id)
	delete(r.members, id)
	r.parts.Rebuild(r.store)

	r.log.Debug().Str("node", id).Int("vnodes", removed).Msg("node removed from ring")
	return nil
}

// LocateKey returns the member owning key: the holder of the nearest
// virtual node clockwise from the key's hash. The second return is
// false only when the ring has no members.
func (r *HashRing) LocateKey(key []byte) (Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.store.Successor(r.hasher.Sum64(key))
	if !ok {
		return nil, false
	}
	m, ok := r.members[e.Owner]
	return m, ok
}

// Partition returns the static partition index of key. The index
// depends only on the key's hash and the configured partition count,
// never on current membership, so it is stable across ring churn.
func (r *HashRing) Partition(key []byte) int {
	return r.parts.IndexOf(r.hasher.Sum64(key))
}

// PartitionOwner returns the member currently owning the partition with
// the given index. The second return is false for an out-of-range index
// or an empty ring.
func (r *HashRing) PartitionOwner(id int) (Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.memberOfPartition(id)
}

// LocatePartitionOwner resolves key to its partition and returns that
// partition's current owner. The owner can differ from LocateKey's for
// the same key: a partition belongs to the successor of its range
// start, the key to the successor of its own hash.
func (r *HashRing) LocatePartitionOwner(key []byte) (Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.memberOfPartition(r.parts.IndexOf(r.hasher.Sum64(key)))
}

func (r *HashRing) memberOfPartition(id int) (Member, bool) {
	owner, ok := r.parts.Owner(id)
	if !ok {
		return nil, false
	}
	m, ok := r.members[owner]
	return m, ok
}

// ReplicasFor walks clockwise from the key's position and collects up
// to n distinct members, starting with the key's owner. Fewer than n
// are returned when the ring holds fewer distinct members; n <= 0
// yields nil.
func (r *HashRing) ReplicasFor(key []byte, n int) []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 {
		return nil
	}

	replicas := make([]Member, 0, n)
	seen := make(map[string]struct{}, n)
	r.store.Walk(r.hasher.Sum64(key), func(e store.Entry) bool {
		if _, dup := seen[e.Owner]; dup {
			return true
		}
		seen[e.Owner] = struct{}{}
		replicas = append(replicas, r.members[e.Owner])
		return len(replicas) < n
	})
	return replicas
}

// Members returns every member currently on the ring, in no particular
// order.
func (r *HashRing) Members() []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]Member, 0, len(r.members))
	for _, m := range r.members {
		members = append(members, m)
	}
	return members
}

// VirtualNodesPerNode reports how many effective virtual nodes each
// member holds. A count below the replication factor means some of that
// member's derived positions collided with each other.
func (r *HashRing) VirtualNodesPerNode() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.store.OwnerCounts()
}

// VirtualNodeCount returns the total number of virtual nodes on the
// ring.
func (r *HashRing) VirtualNodeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.store.Len()
}

// PartitionCount returns the configured number of partitions.
func (r *HashRing) PartitionCount() int {
	return r.cfg.PartitionCount
}
