// SPDX-License-Identifier: MIT
// Package reduce: functional configuration for reduction runs.
// Options carry only behavior hooks — the algorithm itself has no
// tunables, by design: the Row Reduction Algorithm is fully determined
// by its input.

package reduce

// Option configures a reduction run via functional arguments.
type Option func(*Options)

// Options holds caller-supplied hooks for a reduction run.
type Options struct {
	// OnOperation is called once per elementary row operation, after the
	// operation has been applied to the grid, in application order.
	// The hook must not mutate the grid; it receives value copies only.
	OnOperation func(RowOp)
}

// DefaultOptions returns Options with a no-op operation hook.
func DefaultOptions() Options {
	return Options{
		OnOperation: func(RowOp) {},
	}
}

// WithOperationHook registers fn as the operation sink. A nil fn keeps
// the current (default no-op) hook.
func WithOperationHook(fn func(RowOp)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOperation = fn
		}
	}
}

// gatherOptions applies opts over defaults.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
