// Package frontier: the chunked fan-out loops behind ForEachArc and
// ForEachVertex.
package frontier

import (
	"runtime"
	"sync"
)

// ForEachArc applies op to every arc position in [0, n). The arc's source
// is keys[pos] and its destination cols[pos]; sentinel slots are passed
// through unchanged so the operator's Predicate can skip them. Returns
// after every Apply of the pass has completed (full barrier).
//
// Complexity: O(n / workers) per worker, no allocation beyond the pool.
func ForEachArc[S any, O EdgeOperator[S]](op O, state S, keys, cols []int32, n int32, o Options) {
	parallelFor(n, o, func(lo, hi int32) {
		for pos := lo; pos < hi; pos++ {
			s, d := keys[pos], cols[pos]
			if op.Predicate(s, d, state, pos, s, o.Label, pos) {
				op.Apply(s, d, state, pos, s, o.Label, pos)
			}
		}
	})
}

// ForEachVertex applies op to every position in [0, n) of a vertex or
// filter frontier. The element value handed to the operator is values[pos]
// when values is non-nil, otherwise the position itself. Returns after
// every Apply of the pass has completed (full barrier).
func ForEachVertex[S any, O VertexOperator[S]](op O, state S, values []int32, n int32, o Options) {
	parallelFor(n, o, func(lo, hi int32) {
		for node := lo; node < hi; node++ {
			value := node
			if values != nil {
				value = values[node]
			}
			if op.Predicate(value, node, state, node, o.Label, node, node) {
				op.Apply(value, node, state, node, o.Label, node, node)
			}
		}
	})
}

// parallelFor splits [0, n) into contiguous chunks of at least grain
// elements across the worker pool and waits for all of them. Small ranges
// (or a single worker) run inline on the calling goroutine.
func parallelFor(n int32, o Options, body func(lo, hi int32)) {
	if n <= 0 {
		return
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	grain := int32(o.Grain)
	if grain == 0 {
		grain = DefaultGrain
	}
	if workers == 1 || n <= grain {
		body(0, n)
		return
	}

	// Chunk size: an even split over the pool, but never below the grain.
	chunk := (n + int32(workers) - 1) / int32(workers)
	if chunk < grain {
		chunk = grain
	}

	var wg sync.WaitGroup
	for lo := int32(0); lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int32) {
			defer wg.Done()
			body(lo, hi)
		}(lo, hi)
	}
	wg.Wait() // the per-pass barrier
}
