package model

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/goodnatureofminers/pqledger/internal/crypto"
)

var hashPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// GenesisPreviousHash is the reserved all-zero parent of the genesis block.
var GenesisPreviousHash = Hash(strings.Repeat("0", 64))

// Hash is a 64 lowercase hex char identifier of a block or transaction.
type Hash string

// ParseHash validates s and returns it as a Hash.
func ParseHash(s string) (Hash, error) {
	if !hashPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHash, s)
	}
	return Hash(s), nil
}

// HashFromBytes hex-encodes a digest.
func HashFromBytes(b [crypto.HashSize]byte) Hash {
	return Hash(hex.EncodeToString(b[:]))
}

// Bytes decodes the hash back into a digest.
func (h Hash) Bytes() ([crypto.HashSize]byte, error) {
	var out [crypto.HashSize]byte
	if !h.Valid() {
		return out, fmt.Errorf("%w: %q", ErrInvalidHash, string(h))
	}
	if _, err := hex.Decode(out[:], []byte(h)); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return out, nil
}

// Valid reports whether the hash is well-formed.
func (h Hash) Valid() bool {
	return hashPattern.MatchString(string(h))
}

func (h Hash) String() string {
	return string(h)
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h), nil
}

// UnmarshalText rejects malformed hashes at decode time.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
