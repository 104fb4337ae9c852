// Package wordgrid finds every dictionary word hidden in a letter grid —
// tracing connected paths of adjacent tiles and scoring each discovery.
//
// 🚀 What is wordgrid?
//
//	A small, focused word-search engine that brings together:
//		• trie/   — arena-backed prefix index for O(1)-per-letter pruning
//		• grid/   — immutable letter grid with precomputed 8-way adjacency
//		• search/ — depth-first backtracking sweep with first-discovery wins
//		• dict/   — dictionary loading from files, system word lists, or a built-in fallback
//
// ✨ Why choose wordgrid?
//
//   - Deterministic – fixed start-cell and neighbor order, byte-identical results
//   - Pruned, not brute-forced – the trie cuts dead branches before they allocate
//   - Pure core – the three read-only structures are built once, searched many times
//   - Extensible – context cancellation and per-word hooks for interactive callers
//
// Quick ASCII example:
//
//	    C A T
//	    O S*S
//	    D O G
//
//	a 3×3 grid where S* marks a bonus tile; CAT, CATS, COD, DOG and DOGS
//	are all reachable as simple 8-connected paths.
//
// Dive into the package docs for contracts, complexity notes and examples;
// cmd/wordgrid ties everything into a command-line solver.
//
//	go get github.com/katalvlaran/wordgrid
package wordgrid
