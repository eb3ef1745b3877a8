// Package csr: accessors over the arena that carry an atomicity contract.
package csr

import "sync/atomic"

// Done reports whether the last pointer-jumping pass left every successor
// pointer unchanged. The engine polls it after each pass.
func (st *GraphState) Done() bool {
	return atomic.LoadInt32(&st.done) == 1
}

// SetDone arms the convergence cell before a pointer-jumping pass; any unit
// that still moves a pointer clears it again.
func (st *GraphState) SetDone() {
	atomic.StoreInt32(&st.done, 1)
}

// ClearDone signals that a pointer moved this pass and another pass is
// required. Safe under concurrent callers: the cell only ever goes 1→0
// within a pass.
func (st *GraphState) ClearDone() {
	atomic.StoreInt32(&st.done, 0)
}

// Original returns the endpoints and weight of initial arc a, unaffected by
// any later invalidation or compaction.
func (st *GraphState) Original(a int32) (u, v, w int32) {
	return st.origSrc[a], st.origDst[a], st.origW[a]
}

// OriginalArcs returns the initial arc count (twice the number of kept
// undirected input edges). InTree is indexed by [0, OriginalArcs).
func (st *GraphState) OriginalArcs() int32 {
	return int32(len(st.origSrc))
}

// Row returns the live arc slot range [lo, hi) of vertex v in the current
// round's CSR layout.
func (st *GraphState) Row(v int32) (lo, hi int32) {
	return st.RowOffsets[v], st.RowOffsets[v+1]
}
