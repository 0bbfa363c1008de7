// Package crypto provides the hashing, signing and Merkle primitives of the ledger.
package crypto

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/blake2b"
)

// HashSize is the length of every digest produced by this package.
const HashSize = 32

// Hash256 returns SHA-256(data).
func Hash256(data []byte) [HashSize]byte {
	return chainhash.HashH(data)
}

// Hash256d returns SHA-256(SHA-256(data)).
func Hash256d(data []byte) [HashSize]byte {
	return chainhash.DoubleHashH(data)
}

// HashBlake2b256 returns BLAKE2b-256(data). It is only used for address derivation.
func HashBlake2b256(data []byte) [HashSize]byte {
	return blake2b.Sum256(data)
}
