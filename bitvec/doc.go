// Package bitvec provides BitVector, a growable sequence of bits backed by an
// exclusively owned byte buffer.
//
// # Layout
//
// Bit i lives in byte i/8 at position i%8 (least-significant bit first):
//
//	bit index:   7 6 5 4 3 2 1 0 | 15 14 13 12 11 10 9 8 | ...
//	byte index:  0               | 1                     | ...
//
// This packed representation is what CopyTo writes and what FromBytes and
// CopyFrom read, and it must stay bit-exact across versions.
//
// # Capacity
//
// The buffer is allocated in blocks (1024 bytes unless Options.BlockSize says
// otherwise), so repeated length changes reallocate at most once per block:
//
//	|<---------- buffer = 1 block (8 bytes in this picture) ------->|
//	|<---------- Len() = 43 bits ------------->|                    |
//	+-------+-------+-------+-------+-------+-------+-------+-------+
//	|   0   |   1   |   2   |   3   |   4   |   5   |   6   |   7   |
//	+-------+-------+-------+-------+-------+-------+-------+-------+
//
// Bytes 0-4 are fully used, byte 5 holds 3 bits, bytes 6-7 are unused.
//
// # Zero padding
//
// Every allocated bit at an index >= Len() is always zero. All mutating
// operations, shrinking included, restore this before returning, which keeps
// And/Or/Xor, Equal and CopyTo well defined without extra masking.
//
// # Errors
//
// Failures wrap ErrInvalidArgument or ErrIndexOutOfRange. Validation happens
// before any mutation, so a failed call leaves the vector unchanged.
//
// # Concurrency
//
// A BitVector is not safe for concurrent use. Use Clone to hand an
// independent copy to another goroutine.
package bitvec
