package bitvec

import "bytes"

func (v *BitVector) checkSameLen(other *BitVector) error {
	if other.length != v.length {
		return &LengthMismatchError{Expected: v.length, Actual: other.length}
	}
	return nil
}

// And sets v to v AND other. Both vectors must have the same length.
func (v *BitVector) And(other *BitVector) error {
	if err := v.checkSameLen(other); err != nil {
		return err
	}
	src := other.data[:bytesFor(v.length)]
	for i, b := range src {
		v.data[i] &= b
	}
	return nil
}

// Or sets v to v OR other. Both vectors must have the same length.
func (v *BitVector) Or(other *BitVector) error {
	if err := v.checkSameLen(other); err != nil {
		return err
	}
	src := other.data[:bytesFor(v.length)]
	for i, b := range src {
		v.data[i] |= b
	}
	return nil
}

// Xor sets v to v XOR other. Both vectors must have the same length.
func (v *BitVector) Xor(other *BitVector) error {
	if err := v.checkSameLen(other); err != nil {
		return err
	}
	src := other.data[:bytesFor(v.length)]
	for i, b := range src {
		v.data[i] ^= b
	}
	return nil
}

// Not inverts every bit in [0, Len()).
func (v *BitVector) Not() {
	n := bytesFor(v.length)
	for i := range n {
		v.data[i] = ^v.data[i]
	}
	v.clearPadding(v.length)
}

// ShiftUp inserts n zero bits at index 0. Bit i moves to i+n and the length
// grows by n.
func (v *BitVector) ShiftUp(n int) error {
	if n < 0 {
		return negativeCount("shift count", n)
	}
	if n == 0 {
		return nil
	}
	if err := checkGrow(v.length, n); err != nil {
		return err
	}

	oldBytes := bytesFor(v.length)
	v.resize(v.length + n)
	if oldBytes == 0 {
		return nil
	}

	byteShift := n / 8
	bitShift := uint(n % 8)

	if bitShift == 0 {
		copy(v.data[byteShift:], v.data[:oldBytes])
	} else {
		// Walk down so every source byte is read before it is overwritten.
		for i := bytesFor(v.length) - 1; i >= byteShift; i-- {
			src := i - byteShift
			var b byte
			if src < oldBytes {
				b = v.data[src] << bitShift
			}
			if src > 0 {
				b |= v.data[src-1] >> (8 - bitShift)
			}
			v.data[i] = b
		}
	}
	clear(v.data[:byteShift])

	return nil
}

// ShiftDown removes the n lowest bits. Bit i moves to i-n and the length
// shrinks by n. Shifting by Len() or more leaves an empty vector.
func (v *BitVector) ShiftDown(n int) error {
	if n < 0 {
		return negativeCount("shift count", n)
	}
	if n == 0 {
		return nil
	}
	if n >= v.length {
		v.resize(0)
		return nil
	}

	newLen := v.length - n
	oldBytes := bytesFor(v.length)
	byteShift := n / 8
	bitShift := uint(n % 8)

	if bitShift == 0 {
		copy(v.data, v.data[byteShift:oldBytes])
	} else {
		for i := range bytesFor(newLen) {
			src := i + byteShift
			b := v.data[src] >> bitShift
			if src+1 < oldBytes {
				b |= v.data[src+1] << (8 - bitShift)
			}
			v.data[i] = b
		}
	}

	// Stale high bytes are cleared by the shrink.
	v.resize(newLen)

	return nil
}

// Concatenate appends the bits of other after the bits of v.
// other is not modified; v.Concatenate(v) doubles v.
func (v *BitVector) Concatenate(other *BitVector) error {
	if other.length == 0 {
		return nil
	}
	if err := checkGrow(v.length, other.length); err != nil {
		return err
	}

	src := other.data[:bytesFor(other.length)]
	if other == v {
		src = bytes.Clone(src)
	}

	offset := v.length
	v.resize(v.length + other.length)
	orBits(v.data, offset, src)

	return nil
}

// orBits ORs the packed bits of src into dst starting at bit offset.
// Bits of src past its logical end must be zero.
func orBits(dst []byte, offset int, src []byte) {
	shift := uint(offset % 8)
	base := offset / 8

	if shift == 0 {
		for i, b := range src {
			dst[base+i] |= b
		}
		return
	}

	for i, b := range src {
		dst[base+i] |= b << shift
		if j := base + i + 1; j < len(dst) {
			dst[j] |= b >> (8 - shift)
		}
	}
}

// Substring returns a new vector holding bits [first, first+numBits) of v,
// re-indexed from 0.
func (v *BitVector) Substring(first, numBits int) (*BitVector, error) {
	if first < 0 || numBits < 0 || first > v.length-numBits {
		return nil, &RangeError{First: first, Count: numBits, Length: v.length}
	}

	out := &BitVector{blockSize: v.blockSize}
	if numBits == 0 {
		return out, nil
	}

	lo := first / 8
	hi := bytesFor(first + numBits)

	// Take the covering bytes, then drop the leading and trailing extra bits.
	out.data = make([]byte, out.blockRoundedBytes((hi-lo)*8))
	copy(out.data, v.data[lo:hi])
	out.length = (hi - lo) * 8

	if err := out.ShiftDown(first % 8); err != nil {
		return nil, err
	}
	out.resize(numBits)

	return out, nil
}
