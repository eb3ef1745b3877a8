// Package parmst computes minimum spanning trees and forests with a
// data-parallel variant of Boruvka's algorithm over a flat CSR graph
// arena.
//
// 🚀 What is parmst?
//
//	A pure-Go solver that expresses the classically sequential MST
//	ingredients — nearest-neighbor hooking, union-find-style contraction,
//	cycle breaking, graph compaction — as stateless {Predicate, Apply}
//	operators dispatched concurrently over edge and vertex frontiers:
//		• csr/      — the shared arena: row offsets, arc arrays, successor
//		  pointers, tree marks; one allocation, mutated in place
//		• frontier/ — generic parallel dispatch with a barrier per pass,
//		  tunable workers and chunking
//		• boruvka/  — the contraction operators and the round driver
//
// ✨ Why choose parmst?
//
//   - Deterministic – all arbitration is by minimum id; identical results
//     across runs and worker counts
//   - Lock-free hot path – one atomic-minimum on the contended successor
//     slot, plain single-owner stores everywhere else
//   - Forest-aware – disconnected inputs yield a V−k spanning forest, not
//     an error
//
// Quick ASCII example:
//
//	0 ──1── 1
//	│       │          MST: {0-1, 1-2, 2-3}, total weight 4
//	3       2
//	│       │
//	3 ──1── 2
//
//	st, _ := csr.FromEdgeList(4, []csr.Edge{
//		{U: 0, V: 1, Weight: 1},
//		{U: 1, V: 2, Weight: 2},
//		{U: 2, V: 3, Weight: 1},
//		{U: 0, V: 3, Weight: 3},
//	})
//	forest, total, _ := boruvka.MinimumSpanningForest(st)
//
// See each package's doc.go for the full contracts, and
// boruvka/example_test.go for runnable examples.
package parmst
