// Package boruvka: the round driver tying the operators, the reduction and
// the compaction passes into whole contraction rounds.
package boruvka

import (
	"sort"

	"github.com/parlab/parmst/csr"
	"github.com/parlab/parmst/frontier"
)

// MinimumSpanningForest computes the minimum spanning forest of the graph
// held in st, mutating the arena in place across contraction rounds.
//
// Returns the forest's edges (endpoints normalized U ≤ V, sorted ascending
// by (U, V, Weight)) and their total weight. A connected input yields V−1
// edges; an input with k components yields V−k — disconnection is a valid
// forest, not an error.
//
// Error Conditions:
//   - ErrStateNil                 : st is nil.
//   - frontier.ErrOptionViolation : an invalid engine Option was supplied.
//
// Options tune the dispatch engine only (workers, grain); they never change
// the result — arbitration is by minimum id everywhere, so the forest is
// identical across runs and worker counts.
//
// Complexity: O(log V) rounds of O(V + E) parallel work plus an O(E log E)
// host-side sort per round. Memory: the csr arena plus one permutation
// scratch, allocated once.
func MinimumSpanningForest(st *csr.GraphState, opts ...frontier.Option) ([]csr.Edge, int64, error) {
	// 1. Validate inputs before the first round; rounds themselves are total.
	if st == nil {
		return nil, 0, ErrStateNil
	}
	fo, err := frontier.NewOptions(opts...)
	if err != nil {
		return nil, 0, err
	}

	// 2. Contract until no live arcs remain. Every round with arcs merges
	//    every arc-bearing vertex into a strictly larger component, so the
	//    arc count reaches zero in O(log V) rounds.
	scr := newRoundScratch(st.NumArcs)
	for round := int32(0); st.NumArcs > 0; round++ {
		fo.Label = round
		contractRound(st, scr, fo)
	}

	// 3. Collect the marked arcs into the result forest.
	return collectForest(st)
}

// contractRound runs one full contraction round over the arena. The engine
// provides a full barrier between passes; cross-pass ordering is a
// correctness requirement, not a tuning choice — see the package doc for
// the pipeline.
func contractRound(st *csr.GraphState, scr *roundScratch, fo frontier.Options) {
	// Minimum incident weights + re-armed arbitration slots.
	frontier.ForEachVertex(minWeightReduce{}, st, nil, st.NumVerts, fo)

	// Hook every vertex to its nearest neighbor, then pin down which arc
	// realized the hook and stage it in the forest.
	frontier.ForEachArc(SuccessorDiscovery{}, st, st.RowIndices, st.ColIndices, st.NumArcs, fo)
	frontier.ForEachArc(EdgeSelection{}, st, st.RowIndices, st.ColIndices, st.NumArcs, fo)
	frontier.ForEachVertex(TreeMarking{}, st, st.TempIndex, st.NumVerts, fo)

	// Break mutual selections, then flatten successor chains to their
	// representatives. The driver owns the fixpoint loop: re-arm the
	// convergence cell, run one halving pass, stop once a pass moved
	// nothing.
	frontier.ForEachVertex(CycleBreaking{}, st, nil, st.NumVerts, fo)
	for {
		st.SetDone()
		frontier.ForEachVertex(PointerJumping{}, st, nil, st.NumVerts, fo)
		if st.Done() {
			break
		}
	}

	// Contract: drop arcs internal to a super-vertex, renumber components
	// densely, relabel the survivors.
	frontier.ForEachArc(SelfLoopRemoval{}, st, st.RowIndices, st.ColIndices, st.NumArcs, fo)
	numSuper := renumberComponents(st)
	frontier.ForEachVertex(VertexRelabel{}, st, st.RowIndices, st.NumArcs, fo)

	// Rebuild the contracted multigraph: pack and sort the survivors, flag
	// row boundaries, project them into row offsets.
	packArcs(st)
	scr.sortArcs(st)
	markRowBounds(st)
	resetRowStarts(st, numSuper)
	frontier.ForEachVertex(RowStartByRowFlag{}, st, st.RowFlags, st.NumArcs, fo)
	backfillRowStarts(st, numSuper)

	// Deduplicate: keep each super-vertex pair's canonical arc, drop the
	// rest, and rebuild the row offsets of the thinned graph through the
	// arc-keyed projection.
	markCanonicalArcs(st)
	frontier.ForEachVertex(DuplicateRemoval{}, st, st.ArcFlags, st.NumArcs, fo)
	packArcs(st)
	markArcRows(st)
	resetRowStarts(st, numSuper)
	frontier.ForEachVertex(RowStartByArcFlag{}, st, st.ArcFlags, st.NumArcs, fo)
	backfillRowStarts(st, numSuper)

	st.NumVerts = numSuper
}

// collectForest turns the InTree bits into the result edge list. Marked
// arcs are initial arc ids, so endpoints come from the immutable snapshot;
// each forest edge was marked in exactly one direction (mutual pairs were
// retracted down to one), giving one output edge per tree edge.
func collectForest(st *csr.GraphState) ([]csr.Edge, int64, error) {
	forest := make([]csr.Edge, 0)
	var total int64
	for a := int32(0); a < st.OriginalArcs(); a++ {
		if st.InTree[a] == 0 {
			continue
		}
		u, v, w := st.Original(a)
		if u > v {
			u, v = v, u
		}
		forest = append(forest, csr.Edge{U: u, V: v, Weight: w})
		total += int64(w)
	}
	sort.Slice(forest, func(i, j int) bool {
		if forest[i].U != forest[j].U {
			return forest[i].U < forest[j].U
		}
		if forest[i].V != forest[j].V {
			return forest[i].V < forest[j].V
		}

		return forest[i].Weight < forest[j].Weight
	})

	return forest, total, nil
}
