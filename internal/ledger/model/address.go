package model

import (
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/goodnatureofminers/pqledger/internal/crypto"
)

// AddressPrefix starts every address.
const AddressPrefix = "pqx"

var addressPattern = regexp.MustCompile(`^` + AddressPrefix + `[a-f0-9]{64}$`)

// Address identifies the owner of outputs: AddressPrefix followed by 64 lowercase hex chars.
type Address string

// ParseAddress validates s and returns it as an Address.
func ParseAddress(s string) (Address, error) {
	if !addressPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return Address(s), nil
}

// AddressFromPublicKey derives prefix || hex(blake2b256(sha256(publicKey))).
func AddressFromPublicKey(publicKey []byte) Address {
	digest := crypto.Hash256(publicKey)
	sum := crypto.HashBlake2b256(digest[:])
	return Address(AddressPrefix + hex.EncodeToString(sum[:]))
}

// Valid reports whether the address is well-formed.
func (a Address) Valid() bool {
	return addressPattern.MatchString(string(a))
}

func (a Address) String() string {
	return string(a)
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// UnmarshalText rejects malformed addresses at decode time.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
