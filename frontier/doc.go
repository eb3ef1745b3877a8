// Package frontier dispatches stateless operator pairs over an edge or
// vertex frontier, one concurrent unit per element, with a full barrier on
// return.
//
// What & Why
//
//   - A frontier is the active working set of one parallel pass: every arc
//     position (edge frontier) or every vertex/position (vertex frontier)
//     of the current round.
//
//   - An operator is a {Predicate, Apply} pair. The engine invokes Predicate
//     for every frontier element and calls Apply only when it returns true.
//     Operators are total functions over the shared state: they never block,
//     retry or fail; all synchronization beyond the per-pass barrier is the
//     operator's own (e.g. an atomic minimum on a contended slot).
//
//   - Dispatch is static: ForEachArc and ForEachVertex are generic over the
//     operator type, so each instantiation inlines the operator body instead
//     of calling through an interface table.
//
// Scheduling model
//
//	Elements are split into contiguous chunks handed to a bounded pool of
//	goroutines. There is no ordering guarantee between elements of one pass;
//	the only guarantee is the barrier: when a ForEach call returns, every
//	Apply of that pass has completed and its writes are visible to the
//	caller. Sequencing between passes is therefore the caller's round
//	structure, not anything the operators do.
//
// Options follow the functional-option convention: WithWorkers bounds the
// pool, WithGrain sets the minimum chunk size, WithLabel threads an opaque
// label value through to the operators. Invalid values surface as
// ErrOptionViolation from NewOptions.
package frontier
