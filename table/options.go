package table

import "log/slog"

// Option configures a Table.
type Option func(*config)

type config struct {
	capacity int
	logger   *slog.Logger
}

// WithCapacity preallocates room for n records.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// IndexOption configures an Index.
type IndexOption func(*indexConfig)

type indexConfig struct {
	name string
}

// WithName sets the name an index is logged under. The default is "index<N>"
// where N is its creation order on the table.
func WithName(name string) IndexOption {
	return func(c *indexConfig) {
		c.name = name
	}
}

// WithLogger sets the logger used for index maintenance records.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
