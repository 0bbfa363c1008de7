package crypto

import "errors"

// ErrEmptyMerkleTree is returned when a root is requested for zero leaves.
var ErrEmptyMerkleTree = errors.New("merkle tree has no leaves")

// MerkleRoot folds leaf hashes pairwise with Hash256d until a single root remains.
// A level with an odd number of nodes duplicates its last node.
func MerkleRoot(leaves [][HashSize]byte) ([HashSize]byte, error) {
	if len(leaves) == 0 {
		return [HashSize]byte{}, ErrEmptyMerkleTree
	}

	level := make([][HashSize]byte, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}

		next := make([][HashSize]byte, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, hashPair(level[i], level[i+1]))
		}
		level = next
	}

	return level[0], nil
}

func hashPair(left, right [HashSize]byte) [HashSize]byte {
	var combined [2 * HashSize]byte
	copy(combined[:HashSize], left[:])
	copy(combined[HashSize:], right[:])
	return Hash256d(combined[:])
}
