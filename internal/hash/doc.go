// Package hash provides the checksum used to protect packed bit frames.
//
// # CRC32-Castagnoli (CRC32C)
//
// Frames carry a CRC32C of their uncompressed packed bytes, so corruption is
// caught after decompression regardless of the codec that produced the
// payload. The polynomial (0x1EDC6F41) detects all single-bit, double-bit and
// odd-bit errors, plus burst errors up to 32 bits.
//
// # Usage
//
//	sum := hash.CRC32C(data)
//	ok := hash.Verify(data, sum)
//
// github.com/klauspost/crc32 is a drop-in for hash/crc32 that uses SSE4.2,
// PCLMULQDQ and ARM CRC instructions when available.
package hash
