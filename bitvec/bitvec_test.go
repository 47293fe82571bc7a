package bitvec

import (
	"slices"
	"testing"

	"github.com/hupe1980/bitkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBlocks(o *Options) { o.BlockSize = 4 }

// requireInvariants checks the buffer sizing and zero-padding invariants.
func requireInvariants(t *testing.T, v *BitVector) {
	t.Helper()

	require.GreaterOrEqual(t, len(v.data), bytesFor(v.length))
	require.Zero(t, len(v.data)%v.block(), "buffer not block aligned")
	for i := v.length; i < len(v.data)*8; i++ {
		require.False(t, v.bit(i), "padding bit %d set (len %d)", i, v.length)
	}
}

func fromBits(t *testing.T, bits []bool, optFns ...func(*Options)) *BitVector {
	t.Helper()

	v, err := FromBytes(testutil.Pack(bits), len(bits), optFns...)
	require.NoError(t, err)
	return v
}

func bitsOf(v *BitVector) []bool {
	return slices.Collect(v.Bits())
}

func TestNew(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		v := New()
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Cap())
		assert.Equal(t, "", v.String())
		requireInvariants(t, v)
	})

	t.Run("zero value", func(t *testing.T) {
		var v BitVector
		require.NoError(t, v.SetLen(9))
		assert.Equal(t, DefaultBlockSize*8, v.Cap())
		requireInvariants(t, &v)
	})

	t.Run("non-positive block size falls back to default", func(t *testing.T) {
		v := New(func(o *Options) { o.BlockSize = -3 })
		assert.Equal(t, DefaultBlockSize, v.block())
	})
}

func TestWithLength(t *testing.T) {
	t.Run("zero filled", func(t *testing.T) {
		v, err := WithLength(20)
		require.NoError(t, err)
		assert.Equal(t, 20, v.Len())
		assert.Equal(t, DefaultBlockSize*8, v.Cap())
		assert.Equal(t, 0, v.Count())
		requireInvariants(t, v)
	})

	t.Run("zero length", func(t *testing.T) {
		v, err := WithLength(0)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cap())
	})

	t.Run("negative", func(t *testing.T) {
		_, err := WithLength(-1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestFromBytes(t *testing.T) {
	t.Run("masks bits past numBits", func(t *testing.T) {
		v, err := FromBytes([]byte{0xFF, 0xFF}, 10)
		require.NoError(t, err)

		got, err := v.Get(9)
		require.NoError(t, err)
		assert.True(t, got)

		_, err = v.Get(10)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		buf := make([]byte, 2)
		require.NoError(t, v.CopyTo(buf, 0))
		assert.Equal(t, []byte{0xFF, 0x03}, buf)
		requireInvariants(t, v)
	})

	t.Run("copies instead of aliasing", func(t *testing.T) {
		src := []byte{0x01}
		v, err := FromBytes(src, 8)
		require.NoError(t, err)

		src[0] = 0xFE
		got, _ := v.Get(0)
		assert.True(t, got)
	})

	t.Run("ignores excess bytes", func(t *testing.T) {
		v, err := FromBytes([]byte{0x0F, 0xFF, 0xFF}, 4)
		require.NoError(t, err)
		assert.Equal(t, "1111", v.String())
		assert.Equal(t, []byte{0x0F}, v.Bytes())
	})

	t.Run("short buffer", func(t *testing.T) {
		_, err := FromBytes([]byte{0xFF}, 9)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		var bse *BufferSizeError
		require.ErrorAs(t, err, &bse)
		assert.Equal(t, 2, bse.Needed)
		assert.Equal(t, 1, bse.Available)
	})

	t.Run("negative bits", func(t *testing.T) {
		_, err := FromBytes(nil, -1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("nil buffer zero bits", func(t *testing.T) {
		v, err := FromBytes(nil, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Len())
	})
}

func TestBitsToBytes(t *testing.T) {
	tests := []struct {
		bits  int
		bytes int
	}{
		{0, 0}, {1, 1}, {7, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3}, {8192, 1024},
	}

	for _, tt := range tests {
		got, err := BitsToBytes(tt.bits)
		require.NoError(t, err)
		assert.Equal(t, tt.bytes, got, "bits=%d", tt.bits)
	}

	_, err := BitsToBytes(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRoundUpToMultiple(t *testing.T) {
	vectors := map[int]int{0: 0, 1: 5, 4: 5, 5: 5, 6: 10, 10: 10}

	for in, want := range vectors {
		assert.Equal(t, want, RoundUpToMultiple(in, 5), "value=%d", in)
	}

	assert.Equal(t, 7, RoundUpToMultiple(7, 0))
}

func TestSetLen(t *testing.T) {
	t.Run("grow within block keeps buffer", func(t *testing.T) {
		v, err := WithLength(3, smallBlocks)
		require.NoError(t, err)
		before := v.Cap()

		require.NoError(t, v.SetLen(32))
		assert.Equal(t, before, v.Cap())
		requireInvariants(t, v)
	})

	t.Run("grow past block reallocates", func(t *testing.T) {
		v, err := WithLength(32, smallBlocks)
		require.NoError(t, err)
		require.NoError(t, v.Set(31, true))

		require.NoError(t, v.SetLen(33))
		assert.Equal(t, 64, v.Cap())

		got, _ := v.Get(31)
		assert.True(t, got)
		requireInvariants(t, v)
	})

	t.Run("shrink frees whole blocks only", func(t *testing.T) {
		v, err := WithLength(100, smallBlocks)
		require.NoError(t, err)
		assert.Equal(t, 128, v.Cap())

		require.NoError(t, v.SetLen(97))
		assert.Equal(t, 128, v.Cap())

		require.NoError(t, v.SetLen(96))
		assert.Equal(t, 96, v.Cap())

		require.NoError(t, v.SetLen(0))
		assert.Equal(t, 0, v.Cap())
		requireInvariants(t, v)
	})

	t.Run("shrink destroys bits", func(t *testing.T) {
		v, err := WithLength(40, smallBlocks)
		require.NoError(t, err)
		v.Not()

		require.NoError(t, v.SetLen(13))
		requireInvariants(t, v)
		require.NoError(t, v.SetLen(40))
		requireInvariants(t, v)

		for i := range 40 {
			got, _ := v.Get(i)
			assert.Equal(t, i < 13, got, "bit %d", i)
		}
	})

	t.Run("same length is a no-op", func(t *testing.T) {
		v := fromBits(t, []bool{true, false, true})
		require.NoError(t, v.SetLen(3))
		assert.Equal(t, "101", v.String())
	})

	t.Run("negative leaves vector unchanged", func(t *testing.T) {
		v := fromBits(t, []bool{true, true})
		err := v.SetLen(-1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, "11", v.String())
	})
}

func TestGetSet(t *testing.T) {
	v, err := WithLength(0)
	require.NoError(t, err)
	require.NoError(t, v.SetLen(13))
	require.NoError(t, v.Set(12, true))

	buf := make([]byte, 2)
	require.NoError(t, v.CopyTo(buf, 0))
	assert.Equal(t, []byte{0x00, 0x10}, buf)

	require.NoError(t, v.Set(12, false))
	assert.Equal(t, 0, v.Count())

	t.Run("out of range", func(t *testing.T) {
		for _, i := range []int{-1, 13, 100} {
			_, err := v.Get(i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)

			err = v.Set(i, true)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)

			var ie *IndexError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, i, ie.Index)
			assert.Equal(t, 13, ie.Length)
		}
		requireInvariants(t, v)
	})
}

func TestAppend(t *testing.T) {
	v := New(smallBlocks)
	pattern := []bool{true, false, false, true, true}
	for range 20 {
		for _, b := range pattern {
			require.NoError(t, v.Append(b))
		}
	}

	assert.Equal(t, 100, v.Len())
	assert.Equal(t, 60, v.Count())
	requireInvariants(t, v)
}

func TestCopyTo(t *testing.T) {
	v := fromBits(t, []bool{true, true, false, true, true, false, false, false, true})

	t.Run("with offset", func(t *testing.T) {
		buf := []byte{0xAA, 0xAA, 0xAA}
		require.NoError(t, v.CopyTo(buf, 1))
		assert.Equal(t, []byte{0xAA, 0x1B, 0x01}, buf)
	})

	t.Run("too small", func(t *testing.T) {
		err := v.CopyTo(make([]byte, 2), 1)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		err = v.CopyTo(make([]byte, 1), 5)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("negative start", func(t *testing.T) {
		err := v.CopyTo(make([]byte, 8), -1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("empty vector", func(t *testing.T) {
		require.NoError(t, New().CopyTo(nil, 0))
	})
}

func TestCopyFrom(t *testing.T) {
	t.Run("replaces content and length", func(t *testing.T) {
		v := fromBits(t, []bool{true, true, true, true, true, true, true, true, true, true, true})
		require.NoError(t, v.CopyFrom([]byte{0x00, 0xFF, 0x05}, 2, 3))

		assert.Equal(t, 3, v.Len())
		assert.Equal(t, "101", v.String())
		requireInvariants(t, v)
	})

	t.Run("grows buffer", func(t *testing.T) {
		v := New(smallBlocks)
		src := make([]byte, 10)
		src[9] = 0x80

		require.NoError(t, v.CopyFrom(src, 0, 80))
		assert.Equal(t, 96, v.Cap())

		got, _ := v.Get(79)
		assert.True(t, got)
		requireInvariants(t, v)
	})

	t.Run("shrinks buffer", func(t *testing.T) {
		v, err := WithLength(100, smallBlocks)
		require.NoError(t, err)
		v.Not()

		require.NoError(t, v.CopyFrom([]byte{0xFF}, 0, 5))
		assert.Equal(t, 32, v.Cap())
		assert.Equal(t, "11111", v.String())
		requireInvariants(t, v)
	})

	t.Run("same capacity clears old bits", func(t *testing.T) {
		v := fromBits(t, []bool{true, true, true, true, true, true, true, true, true, true})
		require.NoError(t, v.CopyFrom([]byte{0x01}, 0, 4))
		assert.Equal(t, "1000", v.String())
		requireInvariants(t, v)
	})

	t.Run("invalid arguments leave vector unchanged", func(t *testing.T) {
		v := fromBits(t, []bool{false, true})

		assert.ErrorIs(t, v.CopyFrom([]byte{0xFF}, 0, -1), ErrInvalidArgument)
		assert.ErrorIs(t, v.CopyFrom([]byte{0xFF}, -1, 1), ErrInvalidArgument)
		assert.ErrorIs(t, v.CopyFrom([]byte{0xFF}, 0, 9), ErrInvalidArgument)
		assert.ErrorIs(t, v.CopyFrom([]byte{0xFF, 0xFF}, 1, 9), ErrInvalidArgument)

		assert.Equal(t, "01", v.String())
	})
}

func TestRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, n := range []int{0, 1, 7, 8, 9, 63, 64, 65, 1000, 8193} {
		v := fromBits(t, rng.Bits(n))

		buf := make([]byte, bytesFor(n))
		require.NoError(t, v.CopyTo(buf, 0))

		w, err := FromBytes(buf, n)
		require.NoError(t, err)
		assert.True(t, v.Equal(w), "n=%d", n)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	v := fromBits(t, []bool{true, false, true})
	c := v.Clone()
	require.True(t, v.Equal(c))

	require.NoError(t, c.Set(1, true))
	require.NoError(t, c.Append(true))

	assert.Equal(t, "101", v.String())
	assert.Equal(t, "1111", c.String())
}

func TestEqual(t *testing.T) {
	a := fromBits(t, []bool{true, false})
	b := fromBits(t, []bool{true, false, false})

	assert.False(t, a.Equal(b))
	require.NoError(t, b.SetLen(2))
	assert.True(t, a.Equal(b))
}

func TestIteration(t *testing.T) {
	bits := []bool{true, false, false, true, false, true, true, false, true}
	v := fromBits(t, bits)

	t.Run("index order", func(t *testing.T) {
		assert.Equal(t, bits, bitsOf(v))

		for i, b := range v.All() {
			assert.Equal(t, bits[i], b)
		}
	})

	t.Run("restartable", func(t *testing.T) {
		assert.Equal(t, bitsOf(v), bitsOf(v))
	})

	t.Run("early stop", func(t *testing.T) {
		n := 0
		for range v.Bits() {
			n++
			if n == 3 {
				break
			}
		}
		assert.Equal(t, 3, n)
	})

	t.Run("does not observe mutation during a pass", func(t *testing.T) {
		c := v.Clone()
		var seen []bool
		for i, b := range c.All() {
			if i == 0 {
				c.Not()
				_ = c.Append(true)
			}
			seen = append(seen, b)
		}
		assert.Equal(t, bits, seen)
		assert.Equal(t, len(bits)+1, c.Len())
	})
}
