// Package trie defines core types and constants for the trie subpackage
// of github.com/katalvlaran/wordgrid.
package trie

// Node addresses a trie node inside its owning Trie's arena.
// The zero Node is always the root of its Trie.
type Node int32

const (
	// None is the absent-node sentinel returned by Child and PrefixNode
	// when no node exists for the requested letter or prefix.
	None Node = -1

	// MinWordLen is the shortest word the index stores. Insert ignores
	// anything shorter; the searcher applies the same gate on acceptance.
	MinWordLen = 3

	// alphabetSize is the child fan-out per node: uppercase ASCII A..Z.
	alphabetSize = 26
)

// node is one arena entry: a 26-slot child table plus a terminal flag.
type node struct {
	children [alphabetSize]Node
	terminal bool
}
