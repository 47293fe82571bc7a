package packed

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/bitkit"
	"github.com/hupe1980/bitkit/bitvec"
	"github.com/hupe1980/bitkit/codec"
	"github.com/hupe1980/bitkit/internal/conv"
	"github.com/hupe1980/bitkit/internal/hash"
)

const (
	// Version is the frame format version written by Marshal.
	Version = 1

	// HeaderSize is the size of the frame header in bytes.
	HeaderSize = 28
)

var magic = []byte("BVEC")

// Header field offsets.
const (
	offVersion = 4
	offComp    = 5
	offFlags   = 6
	offBits    = 8
	offRawLen  = 16
	offDataLen = 20
	offCRC     = 24
)

// Header describes a frame.
type Header struct {
	Version     uint8
	Compression Compression
	Bits        int
	RawLen      int
	DataLen     int
	Checksum    uint32
}

// Marshal encodes v as a frame.
func Marshal(v *bitvec.BitVector, optFns ...func(*Options)) ([]byte, error) {
	opts := applyOptions(optFns)
	start := time.Now()

	raw := v.Bytes()

	out, used, err := marshal(v.Len(), raw, opts)
	opts.Metrics.RecordEncode(len(raw), len(out), used, time.Since(start), err)

	logger := &bitkit.Logger{Logger: opts.Logger}

	if err != nil {
		logger.LogEncode(context.Background(), v.Len(), len(raw), 0, opts.Compression.String(), err)
		return nil, err
	}

	logger.LogEncode(context.Background(), v.Len(), len(raw), len(out), used.String(), nil)

	return out, nil
}

func marshal(numBits int, raw []byte, opts Options) ([]byte, Compression, error) {
	payload, used, err := compress(raw, opts.Compression, opts.MinCompressRatio)
	if err != nil {
		return nil, CompressionNone, err
	}

	bits, err := conv.IntToUint64(numBits)
	if err != nil {
		return nil, CompressionNone, err
	}
	rawLen, err := conv.IntToUint32(len(raw))
	if err != nil {
		return nil, CompressionNone, err
	}
	dataLen, err := conv.IntToUint32(len(payload))
	if err != nil {
		return nil, CompressionNone, err
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, magic...)
	out = append(out, Version, byte(used))
	out = codec.AppendUint16LE(out, 0)
	out = codec.AppendUint64LE(out, bits)
	out = codec.AppendUint32LE(out, rawLen)
	out = codec.AppendUint32LE(out, dataLen)
	out = codec.AppendUint32LE(out, hash.CRC32C(raw))
	out = append(out, payload...)

	return out, used, nil
}

// ReadHeader parses and validates the frame header in data without touching
// the payload.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the %d byte header", ErrCorrupt, len(data), HeaderSize)
	}
	if !bytes.Equal(data[:len(magic)], magic) {
		return Header{}, fmt.Errorf("%w: bad magic %q", ErrCorrupt, data[:len(magic)])
	}

	h := Header{
		Version:     data[offVersion],
		Compression: Compression(data[offComp]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: unknown version %d", ErrCorrupt, h.Version)
	}
	switch h.Compression {
	case CompressionNone, CompressionLZ4, CompressionZSTD:
	default:
		return Header{}, fmt.Errorf("%w: id %d", ErrUnsupportedCompression, uint8(h.Compression))
	}

	// Header reads below cannot fail: len(data) >= HeaderSize.
	if flags, _ := codec.Uint16LE(data, offFlags); flags != 0 {
		return Header{}, fmt.Errorf("%w: reserved flags 0x%04X", ErrCorrupt, flags)
	}

	bits, _ := codec.Uint64LE(data, offBits)
	rawLen, _ := codec.Uint32LE(data, offRawLen)
	dataLen, _ := codec.Uint32LE(data, offDataLen)
	h.Checksum, _ = codec.Uint32LE(data, offCRC)

	var err error
	if h.Bits, err = conv.Uint64ToInt(bits); err != nil {
		return Header{}, fmt.Errorf("%w: bit length: %v", ErrCorrupt, err)
	}
	if h.RawLen, err = conv.Uint32ToInt(rawLen); err != nil {
		return Header{}, fmt.Errorf("%w: raw length: %v", ErrCorrupt, err)
	}
	if h.DataLen, err = conv.Uint32ToInt(dataLen); err != nil {
		return Header{}, fmt.Errorf("%w: data length: %v", ErrCorrupt, err)
	}

	want, err := bitvec.BitsToBytes(h.Bits)
	if err != nil || want != h.RawLen {
		return Header{}, fmt.Errorf("%w: raw length %d does not hold %d bits", ErrCorrupt, h.RawLen, h.Bits)
	}

	return h, nil
}

// Unmarshal decodes a frame produced by Marshal. Bytes after the payload are
// rejected.
func Unmarshal(data []byte, optFns ...func(*Options)) (*bitvec.BitVector, error) {
	opts := applyOptions(optFns)
	start := time.Now()

	v, err := unmarshal(data)

	bits := 0
	if v != nil {
		bits = v.Len()
	}
	opts.Metrics.RecordDecode(len(data), bits, time.Since(start), err)

	logger := &bitkit.Logger{Logger: opts.Logger}
	logger.LogDecode(context.Background(), len(data), bits, err)

	if err != nil {
		return nil, err
	}
	return v, nil
}

func unmarshal(data []byte) (*bitvec.BitVector, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data)-HeaderSize != h.DataLen {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrCorrupt, len(data)-HeaderSize, h.DataLen)
	}

	raw, err := decompress(data[HeaderSize:], h.Compression, h.RawLen)
	if err != nil {
		return nil, err
	}

	if !hash.Verify(raw, h.Checksum) {
		return nil, fmt.Errorf("%w: want 0x%08X, got 0x%08X", ErrChecksum, h.Checksum, hash.CRC32C(raw))
	}

	if used := h.Bits % 8; used != 0 {
		if pad := raw[len(raw)-1] &^ (byte(1)<<used - 1); pad != 0 {
			return nil, fmt.Errorf("%w: padding bits set in last byte (0x%02X)", ErrCorrupt, raw[len(raw)-1])
		}
	}

	return bitvec.FromBytes(raw, h.Bits)
}
