// Package rowreduce is an exact-arithmetic row-reduction toolkit: build a
// matrix of rational numbers, reduce it to echelon and reduced echelon
// form, and — for augmented systems [A | b] — classify the solution set.
//
// 🚀 What is rowreduce?
//
//	A small, deterministic library that brings together:
//		• rational/ — exact fractions (lowest terms, no epsilon, ever)
//		• matrix/   — a mutable rectangular grid with row-op primitives
//		• reduce/   — forward (echelon) and backward (RREF) elimination
//		• solve/    — Inconsistent / Unique / Infinite verdicts with
//		              particular and direction vectors
//		• render/   — aligned matrices, circled pivots, step narration
//		• parse/    — "2 -1 5/2" text rows → exact rationals
//
// ✨ Why choose rowreduce?
//
//   - Exact – every entry is a fraction in lowest terms; pivot selection
//     and free-variable detection never suffer floating-point drift
//   - Transparent – every elementary row operation is emitted, in order,
//     to a hook you supply (OnOperation), so the whole reduction can be
//     narrated step by step
//   - Pure Go – no cgo, deterministic results for identical inputs
//
// Quick sketch of the pipeline:
//
//	grid ──Echelon──▶ (echelon form, pivots) ──RREF──▶ rref ──Classify──▶ verdict
//
// Try the bundled CLI:
//
//	go run ./cmd/rowreduce --augmented <<'IN'
//	2  1 0 3
//	1 -1 2 1
//	0  1 1 2
//	IN
//
//	go get github.com/dschell3/ReducedEchelonFormAlgo
package rowreduce
