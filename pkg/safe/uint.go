// Package safe converts integers for storage columns with overflow checks.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange marks a value that does not fit the target column type.
var ErrOutOfRange = errors.New("value out of range")

// Integer is the set of integer kinds accepted by the converters.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := Uint64(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOutOfRange, v)
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOutOfRange, v)
	}
	return uint32(u), nil
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d does not fit uint64", ErrOutOfRange, v)
	}
	return uint64(v), nil
}
