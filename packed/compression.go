package packed

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// lz4MaxRatio bounds the expansion of a single LZ4 block.
const lz4MaxRatio = 255

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	// DecodeAll never writes past cap(dst), so callers bound the output.
	dec, _ := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecodeAllCapLimit(true),
	)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress returns the payload and the codec actually used. It falls back to
// the raw bytes when the codec does not reach maxRatio.
func compress(raw []byte, c Compression, maxRatio float64) ([]byte, Compression, error) {
	if c == CompressionNone || len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	var (
		out []byte
		err error
	)

	switch c {
	case CompressionLZ4:
		out, err = compressLZ4(raw)
	case CompressionZSTD:
		out = compressZSTD(raw)
	default:
		return nil, CompressionNone, fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
	}

	if err != nil {
		return nil, CompressionNone, err
	}

	if len(out) == 0 || float64(len(out)) > float64(len(raw))*maxRatio {
		return raw, CompressionNone, nil
	}

	return out, c, nil
}

func compressLZ4(raw []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(raw)))

	n, err := lz4.CompressBlock(raw, dst, nil)
	if err != nil {
		return nil, err
	}

	// n == 0 means incompressible.
	return dst[:n], nil
}

func compressZSTD(raw []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(raw, nil)
}

// decompress expands payload into exactly rawLen bytes.
func decompress(payload []byte, c Compression, rawLen int) ([]byte, error) {
	switch c {
	case CompressionNone:
		if len(payload) != rawLen {
			return nil, fmt.Errorf("%w: payload is %d bytes, want %d", ErrCorrupt, len(payload), rawLen)
		}
		return payload, nil

	case CompressionLZ4:
		if rawLen > len(payload)*lz4MaxRatio {
			return nil, fmt.Errorf("%w: lz4 payload of %d bytes cannot expand to %d", ErrCorrupt, len(payload), rawLen)
		}
		out := make([]byte, rawLen)

		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrCorrupt, err)
		}
		if n != rawLen {
			return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", ErrCorrupt, n, rawLen)
		}
		return out, nil

	case CompressionZSTD:
		// Small frames omit the content size; when present it must match.
		var zh zstd.Header
		if err := zh.Decode(payload); err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
		}
		if zh.HasFCS && zh.FrameContentSize != uint64(rawLen) {
			return nil, fmt.Errorf("%w: zstd content size %d, want %d", ErrCorrupt, zh.FrameContentSize, rawLen)
		}

		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		out, err := dec.DecodeAll(payload, make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
		}
		if len(out) != rawLen {
			return nil, fmt.Errorf("%w: decompressed %d bytes, want %d", ErrCorrupt, len(out), rawLen)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCompression, c)
	}
}
