// Package boruvka: host-side flagging, scanning and compaction between the
// parallel passes of a round. These are the sequential collaborators of the
// operators — renumbering, packing, sorting and boundary flagging — whose
// outputs (SuperID, RowFlags, ArcFlags, TempIndex) the operators consume
// but never produce.
package boruvka

import (
	"sort"

	"github.com/parlab/parmst/csr"
)

// renumberComponents assigns dense contracted ids: representatives (fixed
// points of Successor) are numbered in ascending order, then every vertex
// inherits its representative's number. Returns the contracted vertex
// count. Must run after PointerJumping has converged.
func renumberComponents(st *csr.GraphState) int32 {
	next := int32(0)
	for v := int32(0); v < st.NumVerts; v++ {
		if st.Successor[v] == v {
			st.SuperID[v] = next
			next++
		}
	}
	for v := int32(0); v < st.NumVerts; v++ {
		st.SuperID[v] = st.SuperID[st.Successor[v]]
	}

	return next
}

// packArcs front-packs the live arc slots, dropping sentinels and
// preserving relative order, and shrinks NumArcs to the live count.
func packArcs(st *csr.GraphState) {
	w := int32(0)
	for a := int32(0); a < st.NumArcs; a++ {
		if st.RowIndices[a] == csr.None {
			continue
		}
		if w != a {
			st.RowIndices[w] = st.RowIndices[a]
			st.ColIndices[w] = st.ColIndices[a]
			st.Weights[w] = st.Weights[a]
			st.ArcOrigin[w] = st.ArcOrigin[a]
		}
		w++
	}
	st.NumArcs = w
}

// roundScratch is the one allocation of a solve beyond the csr arena: a
// permutation and a gather buffer reused by every round's sort.
type roundScratch struct {
	order []int32
	tmp   []int32
}

func newRoundScratch(numArcs int32) *roundScratch {
	return &roundScratch{
		order: make([]int32, numArcs),
		tmp:   make([]int32, numArcs),
	}
}

// sortArcs orders the packed live arcs by (source, destination, weight,
// initial arc id). The full key makes the order — and with it every
// downstream boundary flag and canonical pick — deterministic regardless
// of how earlier passes were scheduled.
func (scr *roundScratch) sortArcs(st *csr.GraphState) {
	n := st.NumArcs
	order := scr.order[:n]
	for i := range order {
		order[i] = int32(i)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if st.RowIndices[a] != st.RowIndices[b] {
			return st.RowIndices[a] < st.RowIndices[b]
		}
		if st.ColIndices[a] != st.ColIndices[b] {
			return st.ColIndices[a] < st.ColIndices[b]
		}
		if st.Weights[a] != st.Weights[b] {
			return st.Weights[a] < st.Weights[b]
		}

		return st.ArcOrigin[a] < st.ArcOrigin[b]
	})
	scr.permute(st.RowIndices, order)
	scr.permute(st.ColIndices, order)
	scr.permute(st.Weights, order)
	scr.permute(st.ArcOrigin, order)
}

// permute gathers arr through order into the scratch buffer and copies the
// result back in place.
func (scr *roundScratch) permute(arr []int32, order []int32) {
	tmp := scr.tmp[:len(order)]
	for i, from := range order {
		tmp[i] = arr[from]
	}
	copy(arr, tmp)
}

// markRowBounds flags, over sorted packed arcs, every position that starts
// a new source row: RowFlags[i] = 1 iff arc i's source differs from arc
// i-1's. Input to RowStartByRowFlag.
func markRowBounds(st *csr.GraphState) {
	for a := int32(0); a < st.NumArcs; a++ {
		if a == 0 || st.RowIndices[a] != st.RowIndices[a-1] {
			st.RowFlags[a] = 1
		} else {
			st.RowFlags[a] = 0
		}
	}
}

// markCanonicalArcs flags, over sorted packed arcs, the canonical
// representative of every (source, destination) pair: the first arc of the
// group, which the sort key makes the lowest-weight one, ties broken by
// lowest initial arc id. Input to DuplicateRemoval, which drops the
// unflagged rest of each group.
func markCanonicalArcs(st *csr.GraphState) {
	for a := int32(0); a < st.NumArcs; a++ {
		if a == 0 || st.RowIndices[a] != st.RowIndices[a-1] || st.ColIndices[a] != st.ColIndices[a-1] {
			st.ArcFlags[a] = 1
		} else {
			st.ArcFlags[a] = 0
		}
	}
}

// markArcRows prepares the arc-keyed row rebuild over the deduplicated
// packed arcs: TempIndex[i] (arc-indexed at this stage) names arc i's
// destination row and ArcFlags[i] flags row boundaries. Input to
// RowStartByArcFlag.
func markArcRows(st *csr.GraphState) {
	for a := int32(0); a < st.NumArcs; a++ {
		st.TempIndex[a] = st.RowIndices[a]
		if a == 0 || st.RowIndices[a] != st.RowIndices[a-1] {
			st.ArcFlags[a] = 1
		} else {
			st.ArcFlags[a] = 0
		}
	}
}

// resetRowStarts parks the first rows+1 offsets at the sentinel and pins
// the terminator to the live arc count, so a following row-start pass
// writes real starts and backfillRowStarts can detect empty rows.
func resetRowStarts(st *csr.GraphState, rows int32) {
	for r := int32(0); r < rows; r++ {
		st.RowOffsets[r] = csr.None
	}
	st.RowOffsets[rows] = st.NumArcs
}

// backfillRowStarts closes the gaps a row-start pass leaves at empty rows
// (finished components carried forward): an empty row collapses onto the
// start of the next one, keeping every Row(v) range well-formed.
func backfillRowStarts(st *csr.GraphState, rows int32) {
	for r := rows - 1; r >= 0; r-- {
		if st.RowOffsets[r] == csr.None {
			st.RowOffsets[r] = st.RowOffsets[r+1]
		}
	}
}
