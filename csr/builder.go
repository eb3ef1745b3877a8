// Package csr: construction of the initial CSR arena from an edge list.
package csr

import "fmt"

// FromEdgeList builds the initial GraphState for numVerts vertices and the
// given undirected weighted edges.
//
// Rules:
//   - numVerts must be ≥ 1, otherwise ErrNoVertices.
//   - Every endpoint must lie in [0, numVerts), otherwise ErrVertexRange.
//   - Every weight must be ≥ 0 (the weight arrays share the None sentinel),
//     otherwise ErrBadWeight.
//   - Self-loops (U == V) are dropped: they can never join two components.
//   - Parallel edges are kept; the selection tie-break (lowest initial arc
//     id) keeps results deterministic.
//
// Each surviving edge becomes two directed arcs, one per direction, grouped
// by source row in input order. Arc ids are the positions of this initial
// layout; ArcOrigin starts as the identity and InTree is sized to it.
//
// Complexity: O(V + E) time, O(V + E) memory, allocated exactly once.
func FromEdgeList(numVerts int32, edges []Edge) (*GraphState, error) {
	// 1. Validate the vertex count.
	if numVerts <= 0 {
		return nil, ErrNoVertices
	}

	// 2. Validate endpoints and weights, and filter self-loops.
	kept := make([]Edge, 0, len(edges))
	for i, e := range edges {
		if e.U < 0 || e.U >= numVerts || e.V < 0 || e.V >= numVerts {
			return nil, fmt.Errorf("%w: edge %d (%d,%d)", ErrVertexRange, i, e.U, e.V)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d weight %d", ErrBadWeight, i, e.Weight)
		}
		if e.U == e.V {
			// Self-loops are contracted noise from the start; drop them here
			// so the first round never sees them.
			continue
		}
		kept = append(kept, e)
	}
	numArcs := int32(2 * len(kept))

	// 3. Count arcs per row (both directions of every kept edge).
	st := newGraphState(numVerts, numArcs)
	for _, e := range kept {
		st.RowOffsets[e.U+1]++
		st.RowOffsets[e.V+1]++
	}

	// 4. Prefix-sum the counts into row offsets.
	for r := int32(1); r <= numVerts; r++ {
		st.RowOffsets[r] += st.RowOffsets[r-1]
	}

	// 5. Scatter arcs into their rows, preserving input order within a row.
	//    next[r] tracks the next free slot of row r.
	next := make([]int32, numVerts)
	for r := int32(0); r < numVerts; r++ {
		next[r] = st.RowOffsets[r]
	}
	place := func(src, dst, w int32) {
		pos := next[src]
		next[src]++
		st.RowIndices[pos] = src
		st.ColIndices[pos] = dst
		st.Weights[pos] = w
		st.ArcOrigin[pos] = pos // identity: arc ids are initial positions
	}
	for _, e := range kept {
		place(e.U, e.V, e.Weight)
		place(e.V, e.U, e.Weight)
	}

	// 6. Snapshot the initial layout for result extraction; the working
	//    arrays above mutate in place as rounds contract the graph.
	st.origSrc = append([]int32(nil), st.RowIndices...)
	st.origDst = append([]int32(nil), st.ColIndices...)
	st.origW = append([]int32(nil), st.Weights...)

	return st, nil
}

// newGraphState allocates every array of the arena, sized to the original
// graph. This is the only allocation site of the package.
func newGraphState(numVerts, numArcs int32) *GraphState {
	scratch := numVerts // TempIndex serves both vertex- and arc-indexed passes
	if numArcs > scratch {
		scratch = numArcs
	}
	st := &GraphState{
		RowOffsets: make([]int32, numVerts+1),
		RowIndices: make([]int32, numArcs),
		ColIndices: make([]int32, numArcs),
		Weights:    make([]int32, numArcs),
		ArcOrigin:  make([]int32, numArcs),
		MinWeight:  make([]int32, numVerts),
		Successor:  make([]int32, numVerts),
		TempIndex:  make([]int32, scratch),
		SuperID:    make([]int32, numVerts),
		RowFlags:   make([]int32, numArcs),
		ArcFlags:   make([]int32, numArcs),
		InTree:     make([]int32, numArcs),
		NumVerts:   numVerts,
		NumArcs:    numArcs,
		done:       1,
	}
	for v := int32(0); v < numVerts; v++ {
		st.Successor[v] = v // every vertex starts as its own representative
		st.MinWeight[v] = None
	}

	return st
}
