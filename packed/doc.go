// Package packed frames a BitVector's packed bytes for storage or transport.
//
// A frame is a fixed 28-byte header followed by the payload:
//
//	+--------+---------+------+-------+------+--------+---------+-----+---------+
//	| "BVEC" | version | comp | flags | bits | rawLen | dataLen | crc | payload |
//	|   4    |    1    |  1   |   2   |  8   |   4    |    4    |  4  | dataLen |
//	+--------+---------+------+-------+------+--------+---------+-----+---------+
//
// All integers are little-endian. The payload holds the vector's packed
// representation (bit i at byte i/8, position i%8), optionally compressed
// with LZ4 or Zstandard. The checksum is a CRC32C over the uncompressed
// packed bytes.
//
// If compression does not shrink the payload below Options.MinCompressRatio
// of its raw size, the frame is written uncompressed and comp is 0.
//
// Unmarshal treats its input as untrusted: every header field is validated
// and the decoded bits past the logical length must be zero.
package packed
