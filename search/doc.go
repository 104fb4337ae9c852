// Package search implements the prefix-pruned exhaustive path search: a
// depth-first backtracking sweep that enumerates every dictionary word
// traceable as a simple 8-connected path on a letter grid, with one
// canonical path and score per word.
//
// What:
//
//   - Find(g, t, opts...): seed one DFS branch per grid cell in row-major
//     order; walk the grid's adjacency table and the trie in lockstep.
//   - A branch consumes a cell only if the current trie node has a child
//     for its letter — otherwise the entire subtree of moves is pruned
//     before any branch state is touched.
//   - On reaching a terminal trie node at depth ≥ MinWordLen, the spelled
//     word is recorded with its path and score, unless an earlier branch
//     already found that spelling: first discovery wins, and later paths
//     never overwrite it.
//   - Score(length, bonusCount): pure base-plus-bonus scoring.
//
// Why:
//
//   - Raw simple-path enumeration on a 5×5 board is factorial; pruning on
//     the longest matching dictionary prefix bounds practical work by
//     (cells) × 8^(longest prefix match) instead.
//   - Fixed start-cell and neighbor order make repeated sweeps
//     byte-identical, so results are reproducible and testable.
//
// Options:
//
//   - WithContext(ctx)  cooperative cancellation, checked only between
//     start-point branches so a completed sweep is always deterministic.
//   - WithOnWord(fn)    hook fired at each first discovery; an error
//     aborts the sweep.
//
// Complexity:
//
//   - Time:   O(C × 8^P) where C = cell count, P = longest prefix of any
//     grid path present in the dictionary. Depth is hard-capped at C.
//   - Memory: O(C) per-branch state plus the result map.
//
// Errors:
//
//   - ErrNilGrid          g is nil.
//   - ErrNilTrie          t is nil.
//   - context.Canceled    ctx cancelled between branches.
//   - any error returned by the OnWord hook.
package search
