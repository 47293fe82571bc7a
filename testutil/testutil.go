package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Bytes returns n random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, n)
	r.rand.Read(buf)
	return buf
}

// Bits returns n random bits.
func (r *RNG) Bits(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.rand.Intn(2) == 1
	}
	return bits
}

// SparseBits returns n bits where each bit is set with probability density.
func (r *RNG) SparseBits(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.rand.Float64() < density
	}
	return bits
}

// Pack returns the LSB-first packed form of bits: bit i is stored in byte
// i/8 at position i%8. Unused high bits of the last byte are zero.
func Pack(bits []bool) []byte {
	buf := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			buf[i/8] |= 1 << (i % 8)
		}
	}
	return buf
}

// Unpack is the inverse of Pack for the first n bits of buf.
func Unpack(buf []byte, n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = buf[i/8]&(1<<(i%8)) != 0
	}
	return bits
}
