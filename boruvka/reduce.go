// Package boruvka: the per-round reduction pass that precedes discovery.
package boruvka

import (
	"github.com/parlab/parmst/csr"
)

// minWeightReduce computes, for every vertex, the minimum weight among its
// live incident arcs, and re-arms the round's arbitration slots:
//
//   - MinWeight[v] ← min live weight of row v, or None when the row is
//     empty (isolated vertex or finished component carried forward).
//   - Successor[v] ← unclaimed when v has a minimum (the discovery pass is
//     then guaranteed to claim it back with a real neighbor id), or v
//     itself when it has none, so v stays its own representative.
//   - TempIndex[v] ← unclaimed, cleared for the selection pass.
//
// Runs over the vertex frontier; every slot written belongs to the vertex
// being processed, so plain stores suffice.
type minWeightReduce struct{}

func (minWeightReduce) Predicate(_, _ int32, _ *csr.GraphState, _, _, _, _ int32) bool {
	return true
}

func (minWeightReduce) Apply(_, node int32, st *csr.GraphState, _, _, _, _ int32) {
	best := csr.None
	lo, hi := st.Row(node)
	for a := lo; a < hi; a++ {
		if st.ColIndices[a] == csr.None {
			continue // invalidated slot, treat as absent
		}
		if w := st.Weights[a]; best == csr.None || w < best {
			best = w
		}
	}
	st.MinWeight[node] = best
	if best == csr.None {
		st.Successor[node] = node
	} else {
		st.Successor[node] = unclaimed
	}
	st.TempIndex[node] = unclaimed
}
