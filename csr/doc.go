// Package csr provides the flat, index-addressed graph state shared by every
// parallel pass of the contraction-based MST solver.
//
// What & Why
//
//   - What is a GraphState?
//     A single arena of parallel int32 arrays describing one round of a
//     contracting undirected graph in CSR (compressed sparse row) form:
//     row offsets, expanded row indices ("keys"), column indices, arc
//     weights, plus the per-vertex and per-arc working arrays the
//     contraction operators mutate in place (successor pointers, minimum
//     incident weights, selection slots, compaction flags, tree marks).
//
//   - Why flat arrays instead of a pointer graph?
//     Every operator in package boruvka is applied to all frontier elements
//     concurrently. Flat arrays give each concurrent unit an index-addressed
//     slot it can read or write under a simple ownership discipline, with no
//     per-entity allocation and no ownership cycles: entities are dense ids,
//     never pointers.
//
// Representation
//
//   - An undirected input edge (u, v, w) is stored as two directed arcs,
//     u→v and v→u, both carrying the same weight. Arc ids are positions in
//     the initial CSR layout and never change meaning: ArcOrigin maps a
//     current (possibly compacted) slot back to its initial arc id, and
//     InTree is sized to the initial arc count.
//
//   - Invalidated slots carry the sentinel None (-1) in RowIndices,
//     ColIndices, Weights and ArcOrigin simultaneously. Consumers must
//     treat None as "absent", never as a real id or weight.
//
// Lifecycle
//
//	All arrays are allocated exactly once by FromEdgeList, sized to the
//	original graph, and reused as the graph contracts: NumVerts and NumArcs
//	shrink round by round while the backing slices keep their full length.
//	Nothing in this package (or in the operators consuming it) allocates or
//	frees after construction.
//
// Bounds are the caller's contract: GraphState performs no index checking
// beyond what FromEdgeList validates at build time.
package csr
