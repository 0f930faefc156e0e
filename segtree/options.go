package segtree

import "github.com/hupe1980/rangekit"

type options struct {
	logger *rangekit.Logger
}

// Option configures SegmentTree constructor behavior.
type Option func(*options)

// WithLogger sets the logger used for debug-level operation logging.
// If nil is passed, logging stays disabled.
func WithLogger(logger *rangekit.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
