package interop

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitkit/bitvec"
)

// MaxRoaringLen is the longest vector ToRoaring accepts.
const MaxRoaringLen uint64 = 1 << 32

// ToRoaring returns a bitmap containing the index of every set bit of v.
func ToRoaring(v *bitvec.BitVector) (*roaring.Bitmap, error) {
	if uint64(v.Len()) > MaxRoaringLen {
		return nil, fmt.Errorf("%w: %d bits exceed the roaring range", bitvec.ErrInvalidArgument, v.Len())
	}

	rb := roaring.New()

	for i, b := range v.Bytes() {
		for b != 0 {
			rb.Add(uint32(i*8 + bits.TrailingZeros8(b)))
			b &= b - 1
		}
	}

	rb.RunOptimize()
	return rb, nil
}

// FromRoaring returns a vector of the given length with the bits in rb set.
// Every member of rb must be below length.
func FromRoaring(rb *roaring.Bitmap, length int) (*bitvec.BitVector, error) {
	n, err := bitvec.BitsToBytes(length)
	if err != nil {
		return nil, err
	}

	if !rb.IsEmpty() && int64(rb.Maximum()) >= int64(length) {
		return nil, fmt.Errorf("%w: member %d outside vector of %d bits", bitvec.ErrInvalidArgument, rb.Maximum(), length)
	}

	buf := make([]byte, n)

	it := rb.Iterator()
	for it.HasNext() {
		x := it.Next()
		buf[x>>3] |= 1 << (x & 7)
	}

	return bitvec.FromBytes(buf, length)
}
