// Package codec packs and unpacks fixed-width numbers in little-endian byte
// order.
//
// Every Put function writes exactly the width of its type at dst[start:] and
// every read function reads exactly that width from src[start:]. A buffer
// that cannot hold the value at the given offset is rejected with
// ErrShortBuffer before anything is written.
//
// The functions are pure and safe for concurrent use.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a buffer is too small for the value at the
// requested offset.
var ErrShortBuffer = errors.New("buffer too short")

func check(buf []byte, start, width int) error {
	if start < 0 || len(buf)-start < width {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortBuffer, width, start, len(buf))
	}
	return nil
}

// PutInt16LE writes v to dst[start:start+2].
func PutInt16LE(dst []byte, start int, v int16) error {
	return PutUint16LE(dst, start, uint16(v))
}

// PutUint16LE writes v to dst[start:start+2].
func PutUint16LE(dst []byte, start int, v uint16) error {
	if err := check(dst, start, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(dst[start:], v)
	return nil
}

// PutInt32LE writes v to dst[start:start+4].
func PutInt32LE(dst []byte, start int, v int32) error {
	return PutUint32LE(dst, start, uint32(v))
}

// PutUint32LE writes v to dst[start:start+4].
func PutUint32LE(dst []byte, start int, v uint32) error {
	if err := check(dst, start, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(dst[start:], v)
	return nil
}

// PutInt64LE writes v to dst[start:start+8].
func PutInt64LE(dst []byte, start int, v int64) error {
	return PutUint64LE(dst, start, uint64(v))
}

// PutUint64LE writes v to dst[start:start+8].
func PutUint64LE(dst []byte, start int, v uint64) error {
	if err := check(dst, start, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(dst[start:], v)
	return nil
}

// Int16LE reads an int16 from src[start:start+2].
func Int16LE(src []byte, start int) (int16, error) {
	v, err := Uint16LE(src, start)
	return int16(v), err
}

// Uint16LE reads a uint16 from src[start:start+2].
func Uint16LE(src []byte, start int) (uint16, error) {
	if err := check(src, start, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(src[start:]), nil
}

// Int32LE reads an int32 from src[start:start+4].
func Int32LE(src []byte, start int) (int32, error) {
	v, err := Uint32LE(src, start)
	return int32(v), err
}

// Uint32LE reads a uint32 from src[start:start+4].
func Uint32LE(src []byte, start int) (uint32, error) {
	if err := check(src, start, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(src[start:]), nil
}

// Int64LE reads an int64 from src[start:start+8].
func Int64LE(src []byte, start int) (int64, error) {
	v, err := Uint64LE(src, start)
	return int64(v), err
}

// Uint64LE reads a uint64 from src[start:start+8].
func Uint64LE(src []byte, start int) (uint64, error) {
	if err := check(src, start, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(src[start:]), nil
}

// Int16BytesLE returns v as 2 little-endian bytes.
func Int16BytesLE(v int16) []byte {
	return binary.LittleEndian.AppendUint16(make([]byte, 0, 2), uint16(v))
}

// Int32BytesLE returns v as 4 little-endian bytes.
func Int32BytesLE(v int32) []byte {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, 4), uint32(v))
}

// Int64BytesLE returns v as 8 little-endian bytes.
func Int64BytesLE(v int64) []byte {
	return binary.LittleEndian.AppendUint64(make([]byte, 0, 8), uint64(v))
}

// AppendUint16LE appends v to dst in little-endian order.
func AppendUint16LE(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

// AppendUint32LE appends v to dst in little-endian order.
func AppendUint32LE(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendUint64LE appends v to dst in little-endian order.
func AppendUint64LE(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}
