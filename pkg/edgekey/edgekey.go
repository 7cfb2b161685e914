// Package edgekey packs an undirected edge identifier and a traversal
// direction into a single dense integer key.
//
// A key is edgeID*2 plus a direction bit: the two directions of the same
// edge occupy adjacent integers, and keys of distinct edges never collide.
// Routing code uses these keys wherever a directed view of an undirected
// edge must be represented as one integer, e.g. as map keys for per-edge
// bookkeeping or in serialized routing results.
package edgekey

import (
	"errors"
	"fmt"
	"math"
)

// MaxEdgeID is the largest edge identifier that fits in a key.
const MaxEdgeID = math.MaxInt64 >> 1

// ErrEdgeIDOutOfRange indicates an edge ID that cannot be represented in a key.
var ErrEdgeIDOutOfRange = errors.New("edge ID out of range")

// Encode returns the key for the given edge ID and traversal direction.
// The forward direction maps to an even key, the reverse direction to the
// odd key directly above it.
func Encode(edgeID int64, reverse bool) (int64, error) {
	if edgeID < 0 || edgeID > MaxEdgeID {
		return 0, fmt.Errorf("encode edge %d: %w", edgeID, ErrEdgeIDOutOfRange)
	}
	key := edgeID << 1
	if reverse {
		key |= 1
	}
	return key, nil
}

// MustEncode is like Encode but panics on an out-of-range edge ID.
// Intended for callers that already validated the ID.
func MustEncode(edgeID int64, reverse bool) int64 {
	key, err := Encode(edgeID, reverse)
	if err != nil {
		panic(err)
	}
	return key
}

// Decode splits a key back into its edge ID and direction. Decode is total:
// every non-negative key decodes to exactly one (edgeID, reverse) pair.
func Decode(key int64) (edgeID int64, reverse bool) {
	return key >> 1, key&1 != 0
}

// Reverse flips the direction bit of a key, keeping its edge ID.
func Reverse(key int64) int64 {
	return key ^ 1
}
