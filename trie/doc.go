// Package trie implements the prefix index that drives word-search pruning:
// an arena-backed trie over uppercase ASCII words.
//
// What:
//
//   - Trie: a rooted tree where each node maps a letter A..Z to a child and
//     carries a terminal flag. The root spells the empty prefix.
//   - Nodes live in a single growable arena and are addressed by index
//     (Node); children are fixed 26-slot arrays. None (-1) is the absent
//     child, returned instead of an error — absence is a normal outcome.
//   - Insert is idempotent and silently ignores words shorter than
//     MinWordLen or containing non-letter bytes, so the index never holds
//     entries the search could not legally report.
//
// Why:
//
//   - During a grid sweep the searcher descends one trie level per tile.
//     If Child returns None, no dictionary word extends the letters
//     consumed so far and the whole subtree of moves is skipped — this is
//     what keeps an up-to-25!-path search tractable.
//   - Index-based nodes avoid a pointer graph: the arena is one slice,
//     cache-friendly and trivially read-only once built.
//
// Complexity:
//
//   - Insert:     O(L) time per word (L = word length)
//   - Child:      O(1)
//   - PrefixNode: O(L)
//   - Memory:     O(total inserted letters × 26) slots
//
// Invariant: a root path spelling prefix P exists iff some inserted word
// has P as a prefix; a node is terminal iff its spelled prefix is itself
// an inserted word.
package trie
