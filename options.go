package ordskiplist

import "log/slog"

type config struct {
	src          BitSource
	seeded       bool
	seed1, seed2 uint64
	logger       *slog.Logger
}

// Option configures an OSkipList created by New or NewOrdered.
type Option func(*config)

// WithSource makes the OSkipList draw random bits from src. A BitSource may be
// shared between OSkipLists that are used from the same goroutine.
func WithSource(src BitSource) Option {
	return func(c *config) {
		c.src = src
	}
}

// WithSeed seeds the private generator of the OSkipList. It takes precedence
// over WithSource.
func WithSeed(seed1, seed2 uint64) Option {
	return func(c *config) {
		c.seeded = true
		c.seed1, c.seed2 = seed1, seed2
	}
}

// WithLogger sets the logger used for Debug level reports of height changes
// and preening. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
