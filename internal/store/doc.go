// Package store provides the sorted virtual-node store backing a
// consistent-hashing ring. It keeps (position, owner) entries in strict
// ascending position order and answers nearest-successor queries with
// wrap-around in O(log n).
package store
