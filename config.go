package hashring

import "golang.org/x/xerrors"

const (
	// DefaultReplicationFactor is the number of virtual nodes each
	// member occupies when the caller does not pick one.
	DefaultReplicationFactor = 20

	// DefaultPartitionCount is the number of fixed partitions the hash
	// space is divided into when the caller does not pick one.
	DefaultPartitionCount = 271
)

// Config controls ring geometry. It is immutable once a ring is built.
type Config struct {
	// ReplicationFactor is how many virtual nodes represent each member
	// on the ring. Higher values smooth the key distribution at the
	// cost of a larger ring.
	ReplicationFactor int

	// PartitionCount is the number of fixed partitions in the partition
	// view. Pick it for the cluster's eventual size: it cannot change
	// later without reassigning every partition identity.
	PartitionCount int
}

// DefaultConfig returns the default ring geometry.
func DefaultConfig() Config {
	return Config{
		ReplicationFactor: DefaultReplicationFactor,
		PartitionCount:    DefaultPartitionCount,
	}
}

// Validate checks the geometry. Zero values are rejected rather than
// defaulted: a ring with no virtual nodes or no partitions cannot place
// anything.
func (c Config) Validate() error {
	if c.ReplicationFactor <= 0 {
		return xerrors.Errorf("replication factor must be greater than 0: %w", ErrInvalidConfig)
	}
	if c.PartitionCount <= 0 {
		return xerrors.Errorf("partition count must be greater than 0: %w", ErrInvalidConfig)
	}
	return nil
}
