// Package stablematch is an in-memory toolkit for two-sided stable matching —
// deferred acceptance (Gale–Shapley) over two equal groups of agents with
// strict ranked preferences.
//
// 🚀 What is stablematch?
//
//	A small, focused library that brings together:
//		• Agent registry: suitors & reviewers with ordered preference lists
//		• Deferred acceptance: proposal/rejection rounds to a stable pairing
//		• Invert toggle: let either side play the proposing role
//		• Bipartite export: hand the solved pairing to graph consumers
//
// ✨ Why choose stablematch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – stability, suitor-optimality, idempotent solves
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed input, fixed result, every run
//
// Under the hood, everything is organized under two subpackages:
//
//	matching/  — agent registry, completeness checks & the deferred-acceptance engine
//	bipartite/ — read-only two-sided graph built from a solved registry
//
// Quick ASCII example:
//
//	    J ──── A
//	    K ──── C
//	    L ──── D
//	    M ──── B
//
//	four suitors matched to four reviewers with no blocking pair.
//
// Dive into README.md for full examples and the preference-list contract.
//
//	go get github.com/katalvlaran/stablematch
package stablematch
