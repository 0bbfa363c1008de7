package model

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// CoinScale is the number of decimal places carried by a Coin.
const CoinScale = 8

const (
	minimumAtoms btcutil.Amount = 1
	maximumAtoms btcutil.Amount = 99_999_999_999_999_999
)

var (
	// ZeroCoin is the only valid value below MinimumCoin.
	ZeroCoin = Coin{}
	// MinimumCoin is 0.00000001.
	MinimumCoin = Coin{atoms: minimumAtoms}
	// MaximumCoin is 999999999.99999999.
	MaximumCoin = Coin{atoms: maximumAtoms}

	maximumDecimal = decimal.New(int64(maximumAtoms), -CoinScale)
)

// Coin is a fixed-point amount with CoinScale decimals, held as atomic units.
// It is either zero or within [MinimumCoin, MaximumCoin].
type Coin struct {
	atoms btcutil.Amount
}

// NewCoin parses a decimal string. Values with non-zero digits past CoinScale are rejected.
func NewCoin(s string) (Coin, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Coin{}, fmt.Errorf("%w: %q: %v", ErrInvalidCoin, s, err)
	}
	if !d.Equal(d.Truncate(CoinScale)) {
		return Coin{}, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidCoin, s, CoinScale)
	}
	if d.IsNegative() || d.GreaterThan(maximumDecimal) {
		return Coin{}, fmt.Errorf("%w: %q out of bounds", ErrInvalidCoin, s)
	}
	return CoinFromAtoms(d.Shift(CoinScale).IntPart())
}

// MustCoin is NewCoin for constants; it panics on malformed input.
func MustCoin(s string) Coin {
	c, err := NewCoin(s)
	if err != nil {
		panic(err)
	}
	return c
}

// CoinFromAtoms builds a Coin from atomic units (1e-8).
func CoinFromAtoms(atoms int64) (Coin, error) {
	amt := btcutil.Amount(atoms)
	if amt != 0 && (amt < minimumAtoms || amt > maximumAtoms) {
		return Coin{}, fmt.Errorf("%w: %d atoms out of bounds", ErrInvalidCoin, atoms)
	}
	return Coin{atoms: amt}, nil
}

// Atoms returns the value in atomic units.
func (c Coin) Atoms() int64 {
	return int64(c.atoms)
}

// Decimal returns the value as a decimal with CoinScale exponent.
func (c Coin) Decimal() decimal.Decimal {
	return decimal.New(int64(c.atoms), -CoinScale)
}

// IsZero reports whether the coin is exactly zero.
func (c Coin) IsZero() bool {
	return c.atoms == 0
}

// Cmp compares c and o and returns -1, 0 or +1.
func (c Coin) Cmp(o Coin) int {
	switch {
	case c.atoms < o.atoms:
		return -1
	case c.atoms > o.atoms:
		return 1
	default:
		return 0
	}
}

// Add returns c+o, failing when the sum leaves the coin bounds.
func (c Coin) Add(o Coin) (Coin, error) {
	return CoinFromAtoms(int64(c.atoms + o.atoms))
}

// Sub returns c-o, failing when the difference is negative.
func (c Coin) Sub(o Coin) (Coin, error) {
	if o.atoms > c.atoms {
		return Coin{}, fmt.Errorf("%w: %s - %s is negative", ErrInvalidCoin, c, o)
	}
	return CoinFromAtoms(int64(c.atoms - o.atoms))
}

// String renders the coin with exactly CoinScale decimals.
func (c Coin) String() string {
	return c.Decimal().StringFixed(CoinScale)
}

// MarshalText implements encoding.TextMarshaler.
func (c Coin) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText rejects malformed or out-of-bounds values at decode time.
func (c *Coin) UnmarshalText(text []byte) error {
	parsed, err := NewCoin(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
