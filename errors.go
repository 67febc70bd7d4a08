package hashring

import "errors"

var (
	// ErrInvalidConfig is returned by New when the config holds a zero
	// replication factor or partition count.
	ErrInvalidConfig = errors.New("invalid ring config")

	// ErrDuplicateNode is returned by AddNode when a member with the
	// same ID is already on the ring. Re-adding is not idempotent.
	ErrDuplicateNode = errors.New("node already exists")

	// ErrHashCollision is returned by AddNode when one of the member's
	// derived virtual positions is already owned by a different member.
	// The add is rejected as a whole.
	ErrHashCollision = errors.New("virtual node position collision")

	// ErrNodeNotFound is returned by RemoveNode for an unknown ID.
	ErrNodeNotFound = errors.New("node not found")
)
