// Package hashring implements a consistent-hashing ring with virtual
// nodes and a fixed partition view. It maps keys to members of a
// dynamic node set while minimizing key movement when membership
// changes, and supports selection of replica sets for a key.
package hashring
