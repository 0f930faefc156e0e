package dheap

import "github.com/hupe1980/rangekit"

type options struct {
	arity    int
	maxHeap  bool
	capacity int
	logger   *rangekit.Logger
}

// Option configures Heap constructor behavior.
type Option func(*options)

// WithArity sets the branching factor of the heap. Values below 2 are
// ignored.
func WithArity(arity int) Option {
	return func(o *options) {
		if arity >= 2 {
			o.arity = arity
		}
	}
}

// WithMaxHeap makes the heap order by largest key first instead of
// smallest.
func WithMaxHeap() Option {
	return func(o *options) {
		o.maxHeap = true
	}
}

// WithCapacity pre-sizes the backing slice for the expected item count.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.capacity = capacity
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
