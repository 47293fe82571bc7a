package bitkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitkit-specific context.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithBits adds a bit length field to the logger.
func (l *Logger) WithBits(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", n),
	}
}

// WithIndex adds an index name field to the logger.
func (l *Logger) WithIndex(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", name),
	}
}

// LogEncode logs the encoding of a vector of bits bits into a frame.
func (l *Logger) LogEncode(ctx context.Context, bits, rawBytes, frameBytes int, compression string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"bits", bits,
			"compression", compression,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"bits", bits,
			"compression", compression,
			"raw_bytes", rawBytes,
			"frame_bytes", frameBytes,
		)
	}
}

// LogDecode logs the decoding of a frame. Frames are untrusted input, so
// failures are warnings.
func (l *Logger) LogDecode(ctx context.Context, frameBytes, bits int, err error) {
	if err != nil {
		l.WarnContext(ctx, "decode failed",
			"frame_bytes", frameBytes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"frame_bytes", frameBytes,
			"bits", bits,
		)
	}
}

// LogIndexRebuild logs an index being built from existing rows.
func (l *Logger) LogIndexRebuild(ctx context.Context, name string, rows, keys int) {
	l.DebugContext(ctx, "index rebuilt",
		"index", name,
		"rows", rows,
		"keys", keys,
	)
}
