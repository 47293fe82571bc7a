package interop

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitkit/bitvec"
	"github.com/hupe1980/bitkit/codec"
	"github.com/hupe1980/bitkit/internal/conv"
)

// ToBitSet returns a bitset of length v.Len() with the same bits set.
func ToBitSet(v *bitvec.BitVector) *bitset.BitSet {
	raw := v.Bytes()

	// Pad to whole words.
	padded := make([]byte, (len(raw)+7)/8*8)
	copy(padded, raw)

	words := make([]uint64, len(padded)/8)
	for i := range words {
		words[i], _ = codec.Uint64LE(padded, i*8)
	}

	return bitset.FromWithLength(uint(v.Len()), words)
}

// FromBitSet returns a vector of length bs.Len() with the same bits set.
func FromBitSet(bs *bitset.BitSet) (*bitvec.BitVector, error) {
	length, err := conv.Uint64ToInt(uint64(bs.Len()))
	if err != nil {
		return nil, err
	}

	n, err := bitvec.BitsToBytes(length)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(bs.Words())*8)
	for _, w := range bs.Words() {
		buf = codec.AppendUint64LE(buf, w)
	}

	// Words may be shorter than the length when trailing bits were never set.
	if len(buf) < n {
		buf = append(buf, make([]byte, n-len(buf))...)
	}

	return bitvec.FromBytes(buf, length)
}
