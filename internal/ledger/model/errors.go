// Package model defines the value types and ledger entities of the node.
package model

import "errors"

var (
	// ErrInvalidAddress marks a malformed address.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidHash marks a malformed block or transaction hash.
	ErrInvalidHash = errors.New("invalid hash")
	// ErrInvalidCoin marks a malformed or out-of-bounds coin value.
	ErrInvalidCoin = errors.New("invalid coin value")
	// ErrInvalidOutputIndex marks an output index other than recipient or sender.
	ErrInvalidOutputIndex = errors.New("invalid output index")
	// ErrInsufficientFunds is returned when inputs cannot cover amount plus fee.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownKind is returned for a transaction kind outside the tagged union.
	ErrUnknownKind = errors.New("unknown transaction kind")
	// ErrNotFound is returned by persistence lookups that match nothing.
	ErrNotFound = errors.New("not found")
)
