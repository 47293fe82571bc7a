package bitvec

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is returned for negative counts, mismatched vector
	// lengths and undersized buffers.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when a bit index or range falls outside
	// the vector.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError reports a bit index outside [0, Length).
//
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bit index %d out of range [0, %d)", e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// RangeError reports a bit range [First, First+Count) that does not fit in a
// vector of Length bits.
//
// It unwraps to ErrIndexOutOfRange.
type RangeError struct {
	First  int
	Count  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bit range [%d, %d+%d) out of range [0, %d)", e.First, e.First, e.Count, e.Length)
}

func (e *RangeError) Unwrap() error { return ErrIndexOutOfRange }

// LengthMismatchError indicates that two vectors combined by a boolean
// operation have different lengths.
//
// It unwraps to ErrInvalidArgument.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: expected %d bits, got %d", e.Expected, e.Actual)
}

func (e *LengthMismatchError) Unwrap() error { return ErrInvalidArgument }

// BufferSizeError indicates that a caller-supplied buffer is too small.
//
// It unwraps to ErrInvalidArgument.
type BufferSizeError struct {
	Needed    int
	Available int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("buffer too small: need %d bytes, have %d", e.Needed, e.Available)
}

func (e *BufferSizeError) Unwrap() error { return ErrInvalidArgument }

// checkGrow rejects growing a vector of length bits by n bits when the result
// does not fit in an int.
func checkGrow(length, n int) error {
	if n > math.MaxInt-length {
		return fmt.Errorf("%w: growing %d bits by %d overflows the length", ErrInvalidArgument, length, n)
	}
	return nil
}

func negativeCount(name string, n int) error {
	return fmt.Errorf("%w: %s must be zero or greater, got %d", ErrInvalidArgument, name, n)
}
