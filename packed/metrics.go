package packed

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives one record per Marshal or Unmarshal call.
// Implement it to feed a monitoring system.
type MetricsCollector interface {
	// RecordEncode is called after each Marshal. rawBytes is the packed size,
	// frameBytes the output size (0 on error), c the codec actually used.
	RecordEncode(rawBytes, frameBytes int, c Compression, duration time.Duration, err error)

	// RecordDecode is called after each Unmarshal. bits is the decoded
	// length (0 on error).
	RecordDecode(frameBytes, bits int, duration time.Duration, err error)
}

// NoopMetricsCollector discards all records.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(int, int, Compression, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(int, int, time.Duration, error)              {}

// BasicMetricsCollector keeps in-memory counters.
type BasicMetricsCollector struct {
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeCompressed atomic.Int64
	RawBytes         atomic.Int64
	FrameBytes       atomic.Int64
	EncodeTotalNanos atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeTotalNanos atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(rawBytes, frameBytes int, c Compression, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	if c != CompressionNone {
		b.EncodeCompressed.Add(1)
	}
	b.RawBytes.Add(int64(rawBytes))
	b.FrameBytes.Add(int64(frameBytes))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(frameBytes, bits int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecodeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		EncodeCount:      b.EncodeCount.Load(),
		EncodeErrors:     b.EncodeErrors.Load(),
		EncodeCompressed: b.EncodeCompressed.Load(),
		EncodeAvgNanos:   avg(b.EncodeTotalNanos.Load(), b.EncodeCount.Load()),
		DecodeCount:      b.DecodeCount.Load(),
		DecodeErrors:     b.DecodeErrors.Load(),
		DecodeAvgNanos:   avg(b.DecodeTotalNanos.Load(), b.DecodeCount.Load()),
	}

	if raw := b.RawBytes.Load(); raw > 0 {
		s.CompressionRatio = float64(b.FrameBytes.Load()) / float64(raw)
	}

	return s
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EncodeCount      int64
	EncodeErrors     int64
	EncodeCompressed int64
	EncodeAvgNanos   int64
	DecodeCount      int64
	DecodeErrors     int64
	DecodeAvgNanos   int64
	// CompressionRatio is total frame bytes over total raw bytes, headers
	// included.
	CompressionRatio float64
}
