package bitvec

import (
	"bytes"
	"iter"
	"math/bits"
	"strings"
)

// BitVector is a growable sequence of bits.
//
// The zero value is an empty vector that allocates with DefaultBlockSize.
type BitVector struct {
	// length is the number of logical bits.
	length int

	// data holds the packed bits. len(data) is always a multiple of the
	// block size and at least bytesFor(length). Bits past length are zero.
	data []byte

	// blockSize is the allocation granularity in bytes; 0 means default.
	blockSize int
}

// New returns an empty vector.
func New(optFns ...func(*Options)) *BitVector {
	opts := applyOptions(optFns)
	return &BitVector{blockSize: opts.BlockSize}
}

// WithLength returns a zero-filled vector of n bits.
func WithLength(n int, optFns ...func(*Options)) (*BitVector, error) {
	if n < 0 {
		return nil, negativeCount("initial length", n)
	}

	v := New(optFns...)
	v.data = make([]byte, v.blockRoundedBytes(n))
	v.length = n

	return v, nil
}

// FromBytes returns a vector holding the first numBits bits of buf.
//
// buf must hold at least BitsToBytes(numBits) bytes; extra bytes are ignored.
// The bytes are copied, and bits of the last byte at positions >= numBits are
// dropped.
func FromBytes(buf []byte, numBits int, optFns ...func(*Options)) (*BitVector, error) {
	if numBits < 0 {
		return nil, negativeCount("numBits", numBits)
	}

	needed := bytesFor(numBits)
	if len(buf) < needed {
		return nil, &BufferSizeError{Needed: needed, Available: len(buf)}
	}

	v := New(optFns...)
	v.data = make([]byte, v.blockRoundedBytes(numBits))
	copy(v.data, buf[:needed])
	v.length = numBits
	v.clearPadding(numBits)

	return v, nil
}

// BitsToBytes returns the number of bytes needed to hold n bits.
func BitsToBytes(n int) (int, error) {
	if n < 0 {
		return 0, negativeCount("bit count", n)
	}
	return bytesFor(n), nil
}

// RoundUpToMultiple rounds value up to the next multiple of multiple.
// A non-positive multiple leaves value unchanged.
func RoundUpToMultiple(value, multiple int) int {
	if multiple <= 0 {
		return value
	}
	return (value + multiple - 1) / multiple * multiple
}

func bytesFor(n int) int {
	if n == 0 {
		return 0
	}
	return (n-1)/8 + 1
}

func (v *BitVector) block() int {
	if v.blockSize <= 0 {
		return DefaultBlockSize
	}
	return v.blockSize
}

func (v *BitVector) blockRoundedBytes(n int) int {
	return RoundUpToMultiple(bytesFor(n), v.block())
}

// Len returns the number of bits in the vector.
func (v *BitVector) Len() int {
	return v.length
}

// Cap returns the number of bits the current buffer can hold without
// reallocating.
func (v *BitVector) Cap() int {
	return len(v.data) * 8
}

// SetLen changes the number of bits in the vector.
//
// Growing exposes zero bits and keeps existing bits. Shrinking discards the
// bits at indices >= n; growing back later yields zeros there.
func (v *BitVector) SetLen(n int) error {
	if n < 0 {
		return negativeCount("length", n)
	}
	v.resize(n)
	return nil
}

// resize sets the length to n >= 0 and adjusts the buffer.
func (v *BitVector) resize(n int) {
	switch {
	case n == v.length:
		return
	case n > v.length:
		// Bytes past the old length are already zero.
		if need := v.blockRoundedBytes(n); need > len(v.data) {
			v.realloc(need)
		}
	default:
		v.clearPadding(n)
		if need := v.blockRoundedBytes(n); need < len(v.data) {
			v.realloc(need)
		}
	}
	v.length = n
}

// realloc replaces the buffer with one of size bytes, keeping the prefix.
func (v *BitVector) realloc(size int) {
	if size == 0 {
		v.data = nil
		return
	}
	buf := make([]byte, size)
	copy(buf, v.data)
	v.data = buf
}

// clearPadding zeroes every bit at index >= n.
func (v *BitVector) clearPadding(n int) {
	used := bytesFor(n)
	if used > len(v.data) {
		return
	}
	if r := n % 8; r != 0 {
		v.data[used-1] &= byte(1<<r) - 1
	}
	clear(v.data[used:])
}

func (v *BitVector) checkIndex(i int) error {
	if i < 0 || i >= v.length {
		return &IndexError{Index: i, Length: v.length}
	}
	return nil
}

func (v *BitVector) bit(i int) bool {
	return v.data[i>>3]&(1<<(uint(i)&7)) != 0
}

func (v *BitVector) setBit(i int, value bool) {
	mask := byte(1) << (uint(i) & 7)
	if value {
		v.data[i>>3] |= mask
	} else {
		v.data[i>>3] &^= mask
	}
}

// Get reports whether bit i is set.
func (v *BitVector) Get(i int) (bool, error) {
	if err := v.checkIndex(i); err != nil {
		return false, err
	}
	return v.bit(i), nil
}

// Set sets or clears bit i. It does not change the length.
func (v *BitVector) Set(i int, value bool) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.setBit(i, value)
	return nil
}

// Append adds one bit at index Len().
func (v *BitVector) Append(value bool) error {
	if err := checkGrow(v.length, 1); err != nil {
		return err
	}

	i := v.length
	v.resize(i + 1)
	if value {
		v.setBit(i, true)
	}
	return nil
}

// CopyTo writes the packed representation, BitsToBytes(Len()) bytes, into
// buf starting at start.
func (v *BitVector) CopyTo(buf []byte, start int) error {
	n := bytesFor(v.length)
	if start < 0 {
		return negativeCount("start", start)
	}
	if len(buf)-start < n {
		return &BufferSizeError{Needed: n, Available: max(len(buf)-start, 0)}
	}

	copy(buf[start:start+n], v.data[:n])
	return nil
}

// CopyFrom replaces the content of the vector with numBits bits read from
// buf starting at start. The buffer is grown or shrunk as SetLen would.
func (v *BitVector) CopyFrom(buf []byte, start, numBits int) error {
	if numBits < 0 {
		return negativeCount("numBits", numBits)
	}
	if start < 0 {
		return negativeCount("start", start)
	}

	n := bytesFor(numBits)
	if len(buf)-start < n {
		return &BufferSizeError{Needed: n, Available: max(len(buf)-start, 0)}
	}

	if need := v.blockRoundedBytes(numBits); need != len(v.data) {
		v.data = make([]byte, need)
	} else {
		clear(v.data[:bytesFor(v.length)])
	}

	copy(v.data, buf[start:start+n])
	v.length = numBits
	v.clearPadding(numBits)

	return nil
}

// Bytes returns a copy of the packed representation.
func (v *BitVector) Bytes() []byte {
	out := make([]byte, bytesFor(v.length))
	copy(out, v.data)
	return out
}

// Clone returns an independent copy of v.
func (v *BitVector) Clone() *BitVector {
	return &BitVector{
		length:    v.length,
		data:      bytes.Clone(v.data),
		blockSize: v.blockSize,
	}
}

// Equal reports whether v and other hold the same bits.
func (v *BitVector) Equal(other *BitVector) bool {
	if v.length != other.length {
		return false
	}
	n := bytesFor(v.length)
	return bytes.Equal(v.data[:n], other.data[:n])
}

// Count returns the number of set bits.
func (v *BitVector) Count() int {
	count := 0
	for _, b := range v.data[:bytesFor(v.length)] {
		count += bits.OnesCount8(b)
	}
	return count
}

// String returns the bits in index order as '0' and '1' characters.
func (v *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(v.length)
	for i := range v.length {
		if v.bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// All returns an iterator over (index, bit) pairs in index order.
//
// Each pass reads from a snapshot taken when the pass starts, so changes made
// to v while ranging are not observed.
func (v *BitVector) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		n := v.length
		snap := bytes.Clone(v.data[:bytesFor(n)])
		for i := range n {
			if !yield(i, snap[i>>3]&(1<<(uint(i)&7)) != 0) {
				return
			}
		}
	}
}

// Bits returns an iterator over the bits in index order.
// It has the same snapshot semantics as All.
func (v *BitVector) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, b := range v.All() {
			if !yield(b) {
				return
			}
		}
	}
}
