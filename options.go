package hato

import (
	"github.com/hupe1980/hato/internal/mem"
)

type options struct {
	logger          *Logger
	backend         mem.Backend
	initialCapacity int
}

// Option configures arena construction.
type Option func(*options)

// WithLogger sets the structured logger used for buffer lifecycle events
// (creation, growth). Logging is disabled by default; passing nil keeps it
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOffHeap backs shape buffers with anonymous memory mappings outside the
// Go heap, keeping large arenas out of GC mark phases. This is sound
// precisely because stored values are pointer-free.
//
// Off-heap arenas must be released with Close. A refused mapping is fatal.
func WithOffHeap() Option {
	return func(o *options) {
		o.backend = mem.OffHeap
	}
}

// WithInitialCapacity reserves at least n bytes in every shape buffer at
// creation, cutting down growth-induced reallocation for workloads whose
// per-shape volume is known up front.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}
