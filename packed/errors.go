package packed

import "errors"

var (
	// ErrCorrupt is returned when a frame is truncated or its header is
	// inconsistent.
	ErrCorrupt = errors.New("corrupt frame")

	// ErrChecksum is returned when the decoded payload does not match the
	// frame checksum.
	ErrChecksum = errors.New("checksum mismatch")

	// ErrUnsupportedCompression is returned for an unknown compression id.
	ErrUnsupportedCompression = errors.New("unsupported compression")
)
