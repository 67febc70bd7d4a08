// Package partition provides the fixed partition view over a
// consistent-hashing ring. The 64-bit hash space is divided into a
// configured number of contiguous, equal-width partitions; each
// partition is owned by whichever member holds the nearest virtual node
// clockwise from the partition's start boundary.
package partition
