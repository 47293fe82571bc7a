// Package bitkit is a toolkit for packed bit sequences.
//
// The core type is bitvec.BitVector, a growable sequence of bits stored
// LSB-first in a byte buffer:
//
//	v := bitvec.New()
//	_ = v.Append(true)
//	_ = v.ShiftUp(3)   // 0001
//	_ = v.Set(0, true) // 1001
//
// Around it:
//
//   - packed frames a vector for storage with an optional LZ4 or Zstandard
//     payload and a CRC32C checksum.
//   - interop converts to and from Roaring bitmaps and bits-and-blooms
//     bitsets.
//   - codec reads and writes little-endian fixed-width integers and 128-bit
//     decimals at buffer offsets.
//   - table is a list with secondary indexes that stay current as records
//     are added, replaced and removed.
//
// # Logging
//
// Packages that log accept a *slog.Logger through a WithLogger option and
// discard output when none is given. Their records go through the Logger
// helpers (LogEncode, LogDecode, LogIndexRebuild), so field names are the
// same everywhere:
//
//	logger := bitkit.NewJSONLogger(slog.LevelDebug)
//	data, err := packed.Marshal(v, packed.WithLogger(logger.Logger))
//
// # Errors
//
// Errors are sentinels matched with errors.Is. bitvec additionally returns
// typed errors (IndexError, LengthMismatchError, BufferSizeError) carrying
// the offending values; each unwraps to its sentinel.
package bitkit
