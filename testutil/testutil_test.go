package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	rng := NewRNG(4711)

	bits := rng.Bits(100)

	assert.Equal(t, 100, len(bits))
}

func TestSparseBits(t *testing.T) {
	rng := NewRNG(4711)

	assert.NotContains(t, rng.SparseBits(64, 0), true)
	assert.NotContains(t, rng.SparseBits(64, 1), false)
}

func TestPack(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Pack(nil))
	})

	t.Run("lsb first", func(t *testing.T) {
		bits := make([]bool, 13)
		bits[0] = true
		bits[12] = true
		assert.Equal(t, []byte{0x01, 0x10}, Pack(bits))
	})

	t.Run("round trip", func(t *testing.T) {
		rng := NewRNG(4711)
		bits := rng.Bits(77)
		assert.Equal(t, bits, Unpack(Pack(bits), len(bits)))
	})
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	b1 := rng.Bytes(16)

	rng.Reset()
	b2 := rng.Bytes(16)

	assert.Equal(t, b1, b2)
	assert.Equal(t, int64(4711), rng.Seed())
}
