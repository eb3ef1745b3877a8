// Package boruvka_test drives individual contraction passes against small
// literal graphs and checks each operator's contract in isolation.
package boruvka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlab/parmst/boruvka"
	"github.com/parlab/parmst/csr"
	"github.com/parlab/parmst/frontier"
)

// square is the 4-vertex cycle used across the solver tests:
// 0-1 (1), 1-2 (2), 2-3 (1), 0-3 (3). Its MST is {0-1, 1-2, 2-3}, weight 4.
func square() []csr.Edge {
	return []csr.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 1},
		{U: 0, V: 3, Weight: 3},
	}
}

// build constructs a GraphState or fails the test.
func build(t *testing.T, numVerts int32, edges []csr.Edge) *csr.GraphState {
	t.Helper()
	st, err := csr.FromEdgeList(numVerts, edges)
	require.NoError(t, err)

	return st
}

// seq returns single-worker engine options, so pass-by-pass tests are easy
// to reason about; concurrency behavior is covered separately.
func seq(t *testing.T) frontier.Options {
	t.Helper()
	o, err := frontier.NewOptions(frontier.WithWorkers(1))
	require.NoError(t, err)

	return o
}

// reduce runs the minimum-weight reduction pass.
func reduce(st *csr.GraphState, fo frontier.Options) {
	frontier.ForEachVertex(boruvka.MinWeightReduce{}, st, nil, st.NumVerts, fo)
}

// discover runs reduction + successor discovery.
func discover(st *csr.GraphState, fo frontier.Options) {
	reduce(st, fo)
	frontier.ForEachArc(boruvka.SuccessorDiscovery{}, st, st.RowIndices, st.ColIndices, st.NumArcs, fo)
}

// selectArcs additionally runs edge selection.
func selectArcs(st *csr.GraphState, fo frontier.Options) {
	discover(st, fo)
	frontier.ForEachArc(boruvka.EdgeSelection{}, st, st.RowIndices, st.ColIndices, st.NumArcs, fo)
}

// TestMinWeightReduce fills MinWeight from live arcs, re-arms the
// arbitration slots, and leaves isolated vertices as their own roots.
func TestMinWeightReduce(t *testing.T) {
	// Square plus an isolated vertex 4.
	st := build(t, 5, square())
	fo := seq(t)
	reduce(st, fo)

	// Every square vertex is incident to some weight-1 edge; vertex 4 has
	// no arcs at all.
	assert.Equal(t, []int32{1, 1, 1, 1, csr.None}, st.MinWeight[:5])

	// Vertices with candidates are parked at the ceiling; the isolated one
	// stays its own representative.
	for v := int32(0); v < 4; v++ {
		assert.Equal(t, boruvka.Unclaimed, st.Successor[v], "vertex %d", v)
		assert.Equal(t, boruvka.Unclaimed, st.TempIndex[v], "vertex %d", v)
	}
	assert.EqualValues(t, 4, st.Successor[4])
}

// TestSuccessorDiscovery_MinIDTieBreak: with several minimum-weight arcs
// tied, the lowest destination id wins the atomic arbitration.
func TestSuccessorDiscovery_MinIDTieBreak(t *testing.T) {
	// Star around 0; all spokes weight 1, inserted high-id first.
	st := build(t, 4, []csr.Edge{
		{U: 0, V: 3, Weight: 1},
		{U: 0, V: 1, Weight: 1},
		{U: 0, V: 2, Weight: 1},
	})
	fo := seq(t)
	discover(st, fo)

	assert.EqualValues(t, 1, st.Successor[0], "lowest tied neighbor id wins")
	for _, leaf := range []int32{1, 2, 3} {
		assert.EqualValues(t, 0, st.Successor[leaf])
	}
}

// TestEdgeSelection_ParallelEdges: equal-weight parallel arcs to the chosen
// successor resolve to the lowest initial arc id, deterministically.
func TestEdgeSelection_ParallelEdges(t *testing.T) {
	// Two vertices joined by two parallel weight-5 edges.
	// Initial arcs: 0→1 at slots 0,1 and 1→0 at slots 2,3.
	st := build(t, 2, []csr.Edge{
		{U: 0, V: 1, Weight: 5},
		{U: 0, V: 1, Weight: 5},
	})
	fo := seq(t)
	selectArcs(st, fo)

	assert.EqualValues(t, 0, st.TempIndex[0], "vertex 0 records its lowest matching arc")
	assert.EqualValues(t, 2, st.TempIndex[1], "vertex 1 records its lowest matching arc")
}

// TestCycleBreaking_MutualPair: both directions of a mutual selection get
// marked; breaking corrects only the lower vertex and retracts exactly one
// of the two marks.
func TestCycleBreaking_MutualPair(t *testing.T) {
	st := build(t, 2, []csr.Edge{{U: 0, V: 1, Weight: 3}})
	fo := seq(t)
	selectArcs(st, fo)
	frontier.ForEachVertex(boruvka.TreeMarking{}, st, st.TempIndex, st.NumVerts, fo)

	// Mutual pair staged both arcs.
	assert.Equal(t, []int32{1, 1}, st.InTree)

	frontier.ForEachVertex(boruvka.CycleBreaking{}, st, nil, st.NumVerts, fo)

	// The lower vertex rooted itself and retracted its mark; the higher
	// vertex's pointer keeps the pair connected.
	assert.EqualValues(t, 0, st.Successor[0])
	assert.EqualValues(t, 0, st.Successor[1])
	assert.Equal(t, []int32{0, 1}, st.InTree, "exactly one direction survives")
}

// TestPointerJumping_Convergence: path halving flattens a successor chain
// in logarithmically many passes, ending idempotent.
func TestPointerJumping_Convergence(t *testing.T) {
	const n = 8
	st := build(t, n, nil)
	// Hand-build the chain 7→6→…→1→0 with 0 as root.
	for v := int32(1); v < n; v++ {
		st.Successor[v] = v - 1
	}
	fo := seq(t)

	passes := 0
	for {
		st.SetDone()
		frontier.ForEachVertex(boruvka.PointerJumping{}, st, nil, st.NumVerts, fo)
		passes++
		if st.Done() {
			break
		}
	}

	// Idempotent representative for every vertex, and the whole chain
	// collapsed onto the root.
	for v := int32(0); v < n; v++ {
		assert.Equal(t, st.Successor[st.Successor[v]], st.Successor[v], "vertex %d", v)
		assert.EqualValues(t, 0, st.Successor[v], "vertex %d", v)
	}
	// Halving a depth-7 chain needs ⌈log₂ 7⌉ = 3 moving passes plus the
	// final confirming pass.
	assert.LessOrEqual(t, passes, 4)
}

// TestSelfLoopRemoval_Idempotence: removing intra-component arcs twice is a
// no-op the second time (sentinels re-written to sentinels).
func TestSelfLoopRemoval_Idempotence(t *testing.T) {
	st := build(t, 4, square())
	fo := seq(t)
	// Contract {0,1} and {2,3} by hand: converged representatives.
	copy(st.Successor, []int32{0, 0, 2, 2})

	frontier.ForEachArc(boruvka.SelfLoopRemoval{}, st, st.RowIndices, st.ColIndices, st.NumArcs, fo)

	// Arcs of edges 0-1 and 2-3 are now sentinels; arcs of 1-2 and 0-3 live.
	liveEdges := map[[2]int32]bool{}
	invalid := 0
	for a := int32(0); a < st.NumArcs; a++ {
		if st.RowIndices[a] == csr.None {
			// Full-slot invalidation: all four arrays agree.
			assert.Equal(t, csr.None, st.ColIndices[a])
			assert.Equal(t, csr.None, st.Weights[a])
			assert.Equal(t, csr.None, st.ArcOrigin[a])
			invalid++
			continue
		}
		u, v := st.RowIndices[a], st.ColIndices[a]
		if u > v {
			u, v = v, u
		}
		liveEdges[[2]int32{u, v}] = true
	}
	assert.Equal(t, 4, invalid, "two undirected edges = four arcs dropped")
	assert.Equal(t, map[[2]int32]bool{{1, 2}: true, {0, 3}: true}, liveEdges)

	// Second run must change nothing.
	before := append([]int32(nil), st.RowIndices...)
	frontier.ForEachArc(boruvka.SelfLoopRemoval{}, st, st.RowIndices, st.ColIndices, st.NumArcs, fo)
	assert.Equal(t, before, st.RowIndices)
}

// TestDuplicateRemoval_CanonicalArc: of several parallel arcs between one
// pair, the lowest-weight (then lowest initial id) one survives
// deduplication in each direction.
func TestDuplicateRemoval_CanonicalArc(t *testing.T) {
	// Three parallel edges 0-1 with weights 7, 5, 5.
	// Initial arcs: 0→1 at slots 0(w7),1(w5),2(w5); 1→0 at 3(w7),4(w5),5(w5).
	st := build(t, 2, []csr.Edge{
		{U: 0, V: 1, Weight: 7},
		{U: 0, V: 1, Weight: 5},
		{U: 0, V: 1, Weight: 5},
	})
	fo := seq(t)

	boruvka.PackArcs(st)
	boruvka.SortArcs(st)
	boruvka.MarkCanonicalArcs(st)
	frontier.ForEachVertex(boruvka.DuplicateRemoval{}, st, st.ArcFlags, st.NumArcs, fo)
	boruvka.PackArcs(st)

	// One canonical arc per direction: weight 5, lowest initial id of the
	// tied pair (arcs 1 and 4).
	require.EqualValues(t, 2, st.NumArcs)
	assert.Equal(t, []int32{1, 4}, st.ArcOrigin[:2])
	assert.Equal(t, []int32{5, 5}, st.Weights[:2])

	// Rebuild the row offsets of the thinned graph via the arc-keyed
	// projection and check the resulting CSR shape.
	boruvka.MarkArcRows(st)
	boruvka.ResetRowStarts(st, 2)
	frontier.ForEachVertex(boruvka.RowStartByArcFlag{}, st, st.ArcFlags, st.NumArcs, fo)
	boruvka.BackfillRowStarts(st, 2)
	assert.Equal(t, []int32{0, 1, 2}, st.RowOffsets[:3])
}

// TestRowStartByRowFlag_EmptyRows: the vertex-keyed rebuild plus backfill
// leaves well-formed (empty) ranges for rows without arcs.
func TestRowStartByRowFlag_EmptyRows(t *testing.T) {
	// Vertices 0,2 joined; vertex 1 isolated.
	st := build(t, 3, []csr.Edge{{U: 0, V: 2, Weight: 4}})
	fo := seq(t)

	boruvka.SortArcs(st)
	boruvka.MarkRowBounds(st)
	boruvka.ResetRowStarts(st, 3)
	frontier.ForEachVertex(boruvka.RowStartByRowFlag{}, st, st.RowFlags, st.NumArcs, fo)
	boruvka.BackfillRowStarts(st, 3)

	assert.Equal(t, []int32{0, 1, 1, 2}, st.RowOffsets[:4])
	lo, hi := st.Row(1)
	assert.Equal(t, lo, hi, "isolated row is empty, not malformed")
}

// TestRenumberComponents: representatives get ascending dense ids and every
// vertex inherits its representative's id.
func TestRenumberComponents(t *testing.T) {
	st := build(t, 5, nil)
	copy(st.Successor, []int32{0, 0, 2, 2, 4})

	n := boruvka.RenumberComponents(st)
	assert.EqualValues(t, 3, n)
	assert.Equal(t, []int32{0, 0, 1, 1, 2}, st.SuperID)
}
