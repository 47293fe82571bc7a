package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a value does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 converts a non-negative int to uint32.
func IntToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: int %d does not fit uint32", ErrOverflow, v)
	}
	return uint32(v), nil
}

// IntToUint64 converts a non-negative int to uint64.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: negative int %d", ErrOverflow, v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts a uint64 to int.
func Uint64ToInt(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, fmt.Errorf("%w: uint64 %d does not fit int", ErrOverflow, v)
	}
	return int(v), nil
}

// Uint32ToInt converts a uint32 to int.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("%w: uint32 %d does not fit int", ErrOverflow, v)
	}
	return int(v), nil
}
