package codec

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	// DecimalSize is the encoded size of a Decimal in bytes.
	DecimalSize = 16

	// MaxDecimalScale is the largest number of fractional digits.
	MaxDecimalScale = 28

	decimalSignBit   = 1 << 31
	decimalScaleMask = 0x00FF0000
)

// ErrInvalidDecimal is returned for a scale above MaxDecimalScale or encoded
// flags with reserved bits set.
var ErrInvalidDecimal = errors.New("invalid decimal")

// Decimal is a 96-bit unsigned integer coefficient with a sign and a power of
// ten scale: value = (-1)^Negative * (Hi:Mid:Lo) / 10^Scale.
//
// The encoding is the common 128-bit decimal layout: four little-endian
// 32-bit words lo, mid, hi, flags, where flags holds the scale in bits 16-23
// and the sign in bit 31.
type Decimal struct {
	Lo       uint32
	Mid      uint32
	Hi       uint32
	Scale    uint8
	Negative bool
}

// NewDecimal returns a Decimal, rejecting a scale above MaxDecimalScale.
func NewDecimal(lo, mid, hi uint32, scale uint8, negative bool) (Decimal, error) {
	d := Decimal{Lo: lo, Mid: mid, Hi: hi, Scale: scale, Negative: negative}
	if scale > MaxDecimalScale {
		return Decimal{}, fmt.Errorf("%w: scale %d exceeds %d", ErrInvalidDecimal, scale, MaxDecimalScale)
	}
	return d, nil
}

// Bits returns the four 32-bit words lo, mid, hi, flags.
func (d Decimal) Bits() [4]uint32 {
	flags := uint32(d.Scale) << 16
	if d.Negative {
		flags |= decimalSignBit
	}
	return [4]uint32{d.Lo, d.Mid, d.Hi, flags}
}

// Coefficient returns the unsigned 96-bit coefficient.
func (d Decimal) Coefficient() *big.Int {
	c := new(big.Int).SetUint64(uint64(d.Hi))
	c.Lsh(c, 32).Or(c, new(big.Int).SetUint64(uint64(d.Mid)))
	c.Lsh(c, 32).Or(c, new(big.Int).SetUint64(uint64(d.Lo)))
	return c
}

// String formats d in plain decimal notation, keeping trailing zeros implied
// by the scale.
func (d Decimal) String() string {
	digits := d.Coefficient().String()

	if scale := int(d.Scale); scale > 0 {
		if len(digits) <= scale {
			digits = strings.Repeat("0", scale-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	}

	if d.Negative {
		return "-" + digits
	}
	return digits
}

// PutDecimalLE writes d to dst[start:start+16].
func PutDecimalLE(dst []byte, start int, d Decimal) error {
	if err := check(dst, start, DecimalSize); err != nil {
		return err
	}
	if d.Scale > MaxDecimalScale {
		return fmt.Errorf("%w: scale %d exceeds %d", ErrInvalidDecimal, d.Scale, MaxDecimalScale)
	}

	for i, w := range d.Bits() {
		_ = PutUint32LE(dst, start+4*i, w)
	}
	return nil
}

// DecimalLE reads a Decimal from src[start:start+16].
func DecimalLE(src []byte, start int) (Decimal, error) {
	if err := check(src, start, DecimalSize); err != nil {
		return Decimal{}, err
	}

	var w [4]uint32
	for i := range w {
		w[i], _ = Uint32LE(src, start+4*i)
	}

	flags := w[3]
	if flags&^(decimalSignBit|decimalScaleMask) != 0 {
		return Decimal{}, fmt.Errorf("%w: reserved flag bits set (0x%08X)", ErrInvalidDecimal, flags)
	}

	return NewDecimal(w[0], w[1], w[2], uint8(flags>>16), flags&decimalSignBit != 0)
}

// DecimalBytesLE returns d as 16 little-endian bytes.
func DecimalBytesLE(d Decimal) ([]byte, error) {
	buf := make([]byte, DecimalSize)
	if err := PutDecimalLE(buf, 0, d); err != nil {
		return nil, err
	}
	return buf, nil
}
