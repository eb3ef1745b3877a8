// Package boruvka computes a minimum spanning forest of a weighted
// undirected graph with a data-parallel variant of Boruvka's algorithm:
// repeated rounds of minimum-edge hooking and component contraction over a
// flat CSR arena.
//
// What & Why
//
//   - Boruvka's algorithm repeatedly lets every component claim its
//     minimum-weight outgoing edge, merges the claimed components into
//     super-vertices, and contracts the graph, until no arcs remain. Unlike
//     Prim or Kruskal it has no sequential growth order, which is exactly
//     what makes it parallelizable: each round is a short pipeline of
//     passes, each pass touching every arc or every vertex independently.
//
//   - The classically sequential ingredients (successor finding,
//     union-find-style contraction, cycle breaking, compaction) are
//     expressed as stateless {Predicate, Apply} operators dispatched by
//     package frontier, with exactly one point of write contention: the
//     atomic-minimum arbitration on Successor during discovery.
//
// One contraction round
//
//	reduce          — MinWeight[v] ← min weight of v's live arcs
//	SuccessorDiscovery — every arc matching its source's minimum proposes
//	                  its destination; atomic-minimum keeps the lowest id
//	EdgeSelection   — re-identify the one arc realizing the chosen
//	                  successor; record its initial arc id (lowest id wins
//	                  among equal-weight parallel arcs)
//	TreeMarking     — stage every selected arc in the output forest
//	CycleBreaking   — resolve length-2 mutual selections: the lower vertex
//	                  becomes its own root and retracts its mark
//	PointerJumping  — path-halving to fixpoint; afterwards Successor[v] is
//	                  the idempotent representative of v's component
//	SelfLoopRemoval — invalidate arcs both of whose endpoints contracted
//	                  into the same super-vertex
//	relabel/compact — renumber components densely, relabel surviving arcs,
//	                  pack and sort them, rebuild row offsets
//	  (RowStartByRowFlag), drop duplicate arcs between a super-vertex pair
//	  keeping the canonical one (DuplicateRemoval), rebuild row offsets of
//	  the deduplicated graph (RowStartByArcFlag)
//
// The driver repeats the round until no live arcs remain, so a
// disconnected input yields a spanning forest of V−k edges rather than an
// error. Operators never fail: every error of this package is reported
// before the first round (nil state, invalid option).
//
// Determinism
//
//	All arbitration is by minimum id: ties between equal-weight candidate
//	arcs resolve to the lowest destination id (discovery) and the lowest
//	initial arc id (selection, deduplication). Results are identical across
//	runs and across worker counts.
//
// Complexity: O(log V) rounds; each round is O(V + E) work plus an
// O(E log E) host-side sort for deduplication. Memory beyond the csr arena
// is one permutation scratch, allocated once per solve.
//
// For usage see example_test.go.
package boruvka
