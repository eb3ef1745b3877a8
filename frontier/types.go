// Package frontier defines the operator contracts, tunable options and
// error definitions for parallel frontier dispatch.
package frontier

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned by NewOptions when an invalid Option is
// supplied (negative worker count or grain).
var ErrOptionViolation = errors.New("frontier: invalid option supplied")

// DefaultGrain is the minimum number of frontier elements a worker chunk
// carries; passes at or below one grain run on the calling goroutine.
const DefaultGrain = 512

// EdgeOperator is the per-arc contract. For every arc position of the
// frontier the engine calls Predicate with the arc's source and destination
// vertices, the shared state, the arc slot (edgeID), the frontier item that
// produced the arc (inputItem), the pass label and the frontier position;
// Apply runs, with identical arguments, only when Predicate returns true.
//
// Apply must confine its writes to the slots its contract owns: either
// slots owned by exactly one frontier element, or contended slots updated
// through atomics.
type EdgeOperator[S any] interface {
	Predicate(src, dst int32, state S, edgeID, inputItem, label, inputPos int32) bool
	Apply(src, dst int32, state S, edgeID, inputItem, label, inputPos int32)
}

// VertexOperator is the per-vertex (or per-position) contract, used both
// for vertex frontiers and for filter passes over flagged positions. The
// engine calls Predicate with the element's value (from the values slice,
// or the position itself when no values are given), the position (node),
// the shared state, the node id, the pass label and the input/output
// positions; Apply runs only when Predicate returns true.
type VertexOperator[S any] interface {
	Predicate(value, node int32, state S, nodeID, label, inputPos, outputPos int32) bool
	Apply(value, node int32, state S, nodeID, label, inputPos, outputPos int32)
}

// Options holds the tunables of one dispatch pass.
type Options struct {
	// Workers bounds the goroutine pool; 0 selects runtime.GOMAXPROCS(0).
	Workers int

	// Grain is the minimum chunk size per worker; 0 selects DefaultGrain.
	Grain int

	// Label is an opaque value threaded through to every Predicate/Apply
	// call of the pass (e.g. the round number).
	Label int32

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults: automatic worker
// count, DefaultGrain chunking, zero label.
func DefaultOptions() Options {
	return Options{Workers: 0, Grain: 0, Label: 0, err: nil}
}

// NewOptions folds opts over DefaultOptions and validates the result.
// Returns ErrOptionViolation when any Option recorded an invalid value.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// WithWorkers bounds the worker pool.
//
//	n > 0:  use exactly n workers
//	n == 0: explicit automatic sizing (GOMAXPROCS)
//	n < 0:  invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithGrain sets the minimum chunk size per worker.
//
//	g > 0:  chunks carry at least g elements
//	g == 0: explicit default (DefaultGrain)
//	g < 0:  invalid → ErrOptionViolation
func WithGrain(g int) Option {
	return func(o *Options) {
		if g < 0 {
			o.err = fmt.Errorf("%w: Grain cannot be negative (%d)", ErrOptionViolation, g)
			return
		}
		o.Grain = g
	}
}

// WithLabel threads an opaque label value through to the operators.
func WithLabel(label int32) Option {
	return func(o *Options) {
		o.Label = label
	}
}
