package disjointset

import "github.com/hupe1980/rangekit"

type options struct {
	capacityHint int
	logger       *rangekit.Logger
}

// Option configures DisjointSet constructor behavior.
type Option func(*options)

// WithCapacityHint pre-sizes the internal arrays for universes whose rough
// final size is known up front. It only avoids reallocation; elements still
// have to be added with MakeSet.
func WithCapacityHint(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.capacityHint = capacity
		}
	}
}

// WithLogger sets the logger used for debug-level operation logging.
// If nil is passed, logging stays disabled.
func WithLogger(logger *rangekit.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
