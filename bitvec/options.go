package bitvec

// DefaultBlockSize is the default allocation granularity in bytes.
const DefaultBlockSize = 1024

// Options configures a BitVector.
type Options struct {
	// BlockSize is the allocation granularity of the backing buffer in bytes.
	// The buffer length is always a multiple of it. Values <= 0 select
	// DefaultBlockSize.
	BlockSize int
}

// DefaultOptions are the options used when no option function is given.
var DefaultOptions = Options{
	BlockSize: DefaultBlockSize,
}

func applyOptions(optFns []func(*Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.BlockSize <= 0 {
		opts.BlockSize = DefaultBlockSize
	}
	return opts
}
