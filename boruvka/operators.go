// Package boruvka: the contraction operators, one {Predicate, Apply} pair
// per transformation of a round. Each operator mutates only the arrays its
// contract names; slots written by more than one concurrent unit go through
// atomics, everything else is single-owner per pass.
package boruvka

import (
	"sync/atomic"

	"github.com/parlab/parmst/csr"
)

// atomicMin lowers *addr to val when val is smaller, correct under any
// number of concurrent callers racing on the same slot.
func atomicMin(addr *int32, val int32) {
	for {
		cur := atomic.LoadInt32(addr)
		if val >= cur {
			return
		}
		if atomic.CompareAndSwapInt32(addr, cur, val) {
			return
		}
	}
}

// invalidate writes the sentinel into every per-arc array at slot pos.
// Rewriting an already-invalid slot is a no-op by construction, so removal
// passes are idempotent.
func invalidate(st *csr.GraphState, pos int32) {
	st.RowIndices[pos] = csr.None
	st.ColIndices[pos] = csr.None
	st.Weights[pos] = csr.None
	st.ArcOrigin[pos] = csr.None
}

// SuccessorDiscovery proposes, for every arc (s, d) whose weight equals s's
// minimum incident weight, d as s's successor. The atomic minimum is the
// tie-break: among equal-minimum-weight arcs the lowest destination id
// always wins, so the pass is deterministic under concurrent updates from
// many arcs sharing a source. Mutates Successor[s] only; a vertex with no
// qualifying arc keeps its slot unchanged.
type SuccessorDiscovery struct{}

func (SuccessorDiscovery) Predicate(src, _ int32, st *csr.GraphState, edgeID, _, _, _ int32) bool {
	return src != csr.None && st.MinWeight[src] != csr.None && st.Weights[edgeID] == st.MinWeight[src]
}

func (SuccessorDiscovery) Apply(src, dst int32, st *csr.GraphState, _, _, _, _ int32) {
	atomicMin(&st.Successor[src], dst)
}

// EdgeSelection re-identifies, among the possibly many arcs incident to s,
// the one realizing the successor relation fixed by SuccessorDiscovery, and
// records its initial arc id into TempIndex[s] for the marking pass. With
// parallel equal-weight arcs to the same successor more than one arc can
// match; the atomic minimum keeps the lowest initial arc id, making the
// recorded selection deterministic across runs.
type EdgeSelection struct{}

func (EdgeSelection) Predicate(src, dst int32, st *csr.GraphState, edgeID, _, _, _ int32) bool {
	return src != csr.None && st.Successor[src] == dst && st.Weights[edgeID] == st.MinWeight[src]
}

func (EdgeSelection) Apply(src, _ int32, st *csr.GraphState, edgeID, _, _, _ int32) {
	atomicMin(&st.TempIndex[src], st.ArcOrigin[edgeID])
}

// TreeMarking stages every arc selected this round in the output forest:
// InTree[TempIndex[s]] = 1. It runs over the vertex frontier with
// TempIndex as the value slice, so vertices that recorded no selection
// (no live arcs) are gated out. Over-selection by mutual successor pairs
// is corrected by CycleBreaking.
type TreeMarking struct{}

func (TreeMarking) Predicate(value, _ int32, _ *csr.GraphState, _, _, _, _ int32) bool {
	return value != unclaimed
}

func (TreeMarking) Apply(value, _ int32, st *csr.GraphState, _, _, _, _ int32) {
	st.InTree[value] = 1
}

// CycleBreaking resolves length-2 mutual selections, the classic Boruvka
// artifact where two vertices each pick the other as nearest neighbor. The
// predicate fires only on the lower-indexed vertex of the pair, which
// becomes its own representative and retracts its redundant tree mark; the
// higher vertex's surviving pointer keeps the pair connected through the
// one remaining marked arc.
//
// Successor is accessed atomically: a unit may read the slot of a vertex
// that is concurrently breaking its own cycle.
type CycleBreaking struct{}

func (CycleBreaking) Predicate(_, node int32, st *csr.GraphState, _, _, _, _ int32) bool {
	succ := atomic.LoadInt32(&st.Successor[node])
	if succ <= node || succ >= st.NumVerts {
		return false
	}

	return atomic.LoadInt32(&st.Successor[succ]) == node
}

func (CycleBreaking) Apply(_, node int32, st *csr.GraphState, _, _, _, _ int32) {
	atomic.StoreInt32(&st.Successor[node], node)
	if sel := st.TempIndex[node]; sel != unclaimed {
		st.InTree[sel] = 0
	}
}

// PointerJumping performs one path-halving step: each vertex replaces its
// successor with its grandsuccessor and clears the convergence cell when
// anything moved. The driver re-runs the pass until a pass leaves the cell
// armed, at which point every Successor slot is the idempotent component
// representative. Each step strictly shortens every root path, so the
// fixpoint is reached in O(log diameter) passes over any finite forest.
type PointerJumping struct{}

func (PointerJumping) Predicate(_, node int32, st *csr.GraphState, _, _, _, _ int32) bool {
	parent := atomic.LoadInt32(&st.Successor[node])

	return parent != atomic.LoadInt32(&st.Successor[parent])
}

func (PointerJumping) Apply(_, node int32, st *csr.GraphState, _, _, _, _ int32) {
	parent := atomic.LoadInt32(&st.Successor[node])
	grand := atomic.LoadInt32(&st.Successor[parent])
	if parent == grand {
		return // another unit already halved this path
	}
	atomic.StoreInt32(&st.Successor[node], grand)
	st.ClearDone()
}

// SelfLoopRemoval invalidates arcs whose endpoints contracted into the same
// super-vertex: self-loops of the contracted graph, which must never reach
// the next round. Runs after PointerJumping has converged, so plain reads
// of Successor are stable. Idempotent: sentinel arcs are gated out and
// re-invalidation rewrites sentinels.
type SelfLoopRemoval struct{}

func (SelfLoopRemoval) Predicate(src, dst int32, st *csr.GraphState, _, _, _, _ int32) bool {
	return src != csr.None && st.Successor[src] == st.Successor[dst]
}

func (SelfLoopRemoval) Apply(_, _ int32, st *csr.GraphState, edgeID, _, _, _ int32) {
	invalidate(st, edgeID)
}

// VertexRelabel is the companion filter pass of contraction: it remaps the
// endpoints of every surviving arc from old vertex ids to the dense
// super-vertex numbering. Runs over arc positions with RowIndices as the
// value slice, so invalidated slots are gated out.
type VertexRelabel struct{}

func (VertexRelabel) Predicate(value, _ int32, _ *csr.GraphState, _, _, _, _ int32) bool {
	return value != csr.None
}

func (VertexRelabel) Apply(_, node int32, st *csr.GraphState, _, _, _, _ int32) {
	st.RowIndices[node] = st.SuperID[st.RowIndices[node]]
	st.ColIndices[node] = st.SuperID[st.ColIndices[node]]
}

// RowStartByRowFlag rebuilds RowOffsets from row-boundary flags over packed
// arcs: position node with RowFlags[node] == 1 starts the row of its source
// vertex. A pure projection: it consumes flags produced by the preceding
// flagging pass and writes each row start exactly once.
type RowStartByRowFlag struct{}

func (RowStartByRowFlag) Predicate(value, _ int32, _ *csr.GraphState, _, _, _, _ int32) bool {
	return value == 1
}

func (RowStartByRowFlag) Apply(_, node int32, st *csr.GraphState, _, _, _, _ int32) {
	st.RowOffsets[st.RowIndices[node]] = node
}

// RowStartByArcFlag is the arc-keyed variant of the row rebuild, used after
// deduplication: ArcFlags carries the boundary bit and TempIndex (arc
// indexed at this stage) names the destination row of each packed arc.
type RowStartByArcFlag struct{}

func (RowStartByArcFlag) Predicate(value, _ int32, _ *csr.GraphState, _, _, _, _ int32) bool {
	return value == 1
}

func (RowStartByArcFlag) Apply(_, node int32, st *csr.GraphState, _, _, _, _ int32) {
	st.RowOffsets[st.TempIndex[node]] = node
}

// DuplicateRemoval invalidates every arc the deduplication flagging left
// unmarked: redundant parallel arcs between one super-vertex pair, beaten
// by the canonical (lowest weight, then lowest initial id) representative.
// Symmetric to SelfLoopRemoval's invalidation contract.
type DuplicateRemoval struct{}

func (DuplicateRemoval) Predicate(value, _ int32, _ *csr.GraphState, _, _, _, _ int32) bool {
	return value == 0
}

func (DuplicateRemoval) Apply(_, node int32, st *csr.GraphState, _, _, _, _ int32) {
	invalidate(st, node)
}
