package packed

import (
	"fmt"
	"log/slog"
)

// Compression selects the payload codec.
type Compression uint8

const (
	// CompressionNone stores the packed bytes as-is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses Zstandard (better ratio).
	CompressionZSTD Compression = 2
)

// String returns the codec name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Options configures Marshal and Unmarshal.
type Options struct {
	// Compression is the payload codec used by Marshal.
	Compression Compression

	// MinCompressRatio is the largest compressed/raw size ratio for which a
	// compressed payload is kept. Values outside (0, 1] use the default.
	MinCompressRatio float64

	// Logger receives debug records for every frame. Nil discards them.
	Logger *slog.Logger

	// Metrics receives one record per call. Nil discards them.
	Metrics MetricsCollector
}

// DefaultOptions contains the default configuration.
var DefaultOptions = Options{
	Compression:      CompressionNone,
	MinCompressRatio: 0.9,
}

// WithCompression returns an option that sets the payload codec.
func WithCompression(c Compression) func(*Options) {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithMetrics returns an option that sets the metrics collector.
func WithMetrics(m MetricsCollector) func(*Options) {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithLogger returns an option that sets the logger.
func WithLogger(l *slog.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = l
	}
}

func applyOptions(optFns []func(*Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MinCompressRatio <= 0 || opts.MinCompressRatio > 1 {
		opts.MinCompressRatio = DefaultOptions.MinCompressRatio
	}

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	return opts
}
