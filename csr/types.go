// Package csr defines the shared graph arena, its sentinel discipline and
// the errors reported during construction.
package csr

import "errors"

// None is the sentinel an invalidated slot carries in RowIndices,
// ColIndices, Weights and ArcOrigin. Downstream passes must treat None as
// "absent", never as a real vertex id or weight.
const None int32 = -1

// Sentinel errors for graph construction.
var (
	// ErrNoVertices is returned when a graph with zero vertices is requested.
	ErrNoVertices = errors.New("csr: graph must have at least one vertex")

	// ErrVertexRange is returned when an edge endpoint lies outside [0, numVerts).
	ErrVertexRange = errors.New("csr: edge endpoint out of vertex range")

	// ErrBadWeight is returned when an edge weight is negative.
	// Weights share their arrays with the None sentinel, so they must be ≥ 0.
	ErrBadWeight = errors.New("csr: edge weight must be non-negative")
)

// Edge is one undirected weighted input edge. FromEdgeList turns each Edge
// into a pair of directed arcs; MinimumSpanningForest reports its result as
// a slice of Edge with U ≤ V.
type Edge struct {
	U, V   int32 // endpoints, dense ids in [0, numVerts)
	Weight int32 // non-negative weight
}

// GraphState is the arena of parallel arrays shared by every contraction
// pass. All slices are allocated once, sized to the original graph, and
// re-sliced logically via NumVerts/NumArcs as the graph contracts.
//
// Ownership discipline: each operator pass may mutate only the arrays its
// contract names, and each slot is written by at most one logical owner per
// pass; the single exception is Successor, which is contended under an
// atomic-minimum during successor discovery and accessed atomically during
// pointer jumping.
type GraphState struct {
	// CSR layout of the current round's graph.

	// RowOffsets[r] is the first arc slot of row r; RowOffsets[NumVerts]
	// equals NumArcs. Rebuilt each round after compaction.
	RowOffsets []int32
	// RowIndices[a] is the source vertex of arc a (the expanded row id,
	// "keys" of the CSR). None when the arc is invalidated.
	RowIndices []int32
	// ColIndices[a] is the destination vertex of arc a. None when invalidated.
	ColIndices []int32
	// Weights[a] is the weight of arc a. None when invalidated.
	Weights []int32
	// ArcOrigin[a] is the initial arc id the slot currently holds,
	// stable across compaction. None when invalidated.
	ArcOrigin []int32

	// Per-vertex working arrays.

	// MinWeight[v] is the minimum weight among v's live incident arcs,
	// or None for a vertex with no live arcs. Filled by the reduction
	// pass before successor discovery; read-only to the operators.
	MinWeight []int32
	// Successor[v] is v's candidate or contracted parent. After pointer
	// jumping converges it is the idempotent representative of v's
	// component: Successor[Successor[v]] == Successor[v].
	Successor []int32
	// TempIndex is a dual-use scratch slab sized max(verts, arcs):
	// vertex-indexed while selecting and marking (the initial arc id each
	// vertex selected this round), arc-indexed during edge-keyed row
	// rebuilds (the destination row of each packed arc).
	TempIndex []int32
	// SuperID[old] is the dense contracted id replacing vertex old after a
	// round's pointer jumping and renumbering.
	SuperID []int32

	// Per-position compaction flags, produced by the flag/scan passes and
	// consumed (never produced) by the row-rebuild and removal operators.

	// RowFlags[a] is 1 when packed arc a starts a new row.
	RowFlags []int32
	// ArcFlags[a] is 1 when packed arc a is the canonical representative of
	// its (source, destination) super-vertex pair; 0 marks a duplicate.
	ArcFlags []int32

	// InTree[a] is 1 when initial arc a belongs to the spanning forest.
	// Indexed by initial arc id, monotonically set except for the
	// cycle-breaking retraction.
	InTree []int32

	// Live extents of the current round.
	NumVerts int32
	NumArcs  int32

	// done is the pointer-jumping convergence cell: 1 means the last pass
	// changed nothing. Accessed atomically; see Done/SetDone/ClearDone.
	done int32

	// Immutable snapshot of the initial arc layout, for result extraction.
	origSrc []int32
	origDst []int32
	origW   []int32
}
