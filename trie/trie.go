// Package trie provides an arena-backed prefix index over uppercase words.
// Build it once from the full dictionary, then query it read-only from any
// number of concurrent searches.
package trie

// Trie is a rooted prefix tree whose nodes live in a single growable
// arena addressed by Node indices. It is not safe for concurrent
// mutation, but is safe for concurrent reads once building is done.
type Trie struct {
	nodes []node
	words int
}

// New returns a Trie holding only the root (the empty prefix).
// Complexity: O(1).
func New() *Trie {
	t := &Trie{nodes: make([]node, 0, 1024)}
	t.alloc() // index 0 == root

	return t
}

// alloc appends a fresh node with all children absent and returns its index.
func (t *Trie) alloc() Node {
	var n node
	for i := range n.children {
		n.children[i] = None
	}
	t.nodes = append(t.nodes, n)

	return Node(len(t.nodes) - 1)
}

// Insert adds word to the index. Insertion is idempotent: duplicates are
// accepted without error and stored once. Words shorter than MinWordLen or
// containing bytes outside A..Z are ignored; the searcher could never
// report them, so the index never holds them.
// Complexity: O(len(word)).
func (t *Trie) Insert(word string) {
	if len(word) < MinWordLen {
		return
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return
		}
	}

	cur := t.Root()
	for i := 0; i < len(word); i++ {
		slot := word[i] - 'A'
		next := t.nodes[cur].children[slot]
		if next == None {
			next = t.alloc()
			t.nodes[cur].children[slot] = next
		}
		cur = next
	}
	if !t.nodes[cur].terminal {
		t.nodes[cur].terminal = true
		t.words++
	}
}

// Root returns the node spelling the empty prefix.
// Complexity: O(1).
func (t *Trie) Root() Node {
	return 0
}

// Child returns the node reached from n by consuming letter, or None if no
// inserted word extends n's prefix with that letter. Letters outside A..Z
// and n == None both yield None.
// Complexity: O(1).
func (t *Trie) Child(n Node, letter byte) Node {
	if n == None || letter < 'A' || letter > 'Z' {
		return None
	}

	return t.nodes[n].children[letter-'A']
}

// Terminal reports whether the prefix spelled to reach n is itself a
// complete inserted word. Terminal(None) is false.
// Complexity: O(1).
func (t *Trie) Terminal(n Node) bool {
	if n == None {
		return false
	}

	return t.nodes[n].terminal
}

// PrefixNode walks prefix letter by letter from the root and returns the
// node it lands on, or None if any step is missing. PrefixNode("") is the
// root.
// Complexity: O(len(prefix)).
func (t *Trie) PrefixNode(prefix string) Node {
	cur := t.Root()
	for i := 0; i < len(prefix) && cur != None; i++ {
		cur = t.Child(cur, prefix[i])
	}

	return cur
}

// HasPrefix reports whether any inserted word starts with prefix.
// Complexity: O(len(prefix)).
func (t *Trie) HasPrefix(prefix string) bool {
	return t.PrefixNode(prefix) != None
}

// Contains reports whether word itself was inserted.
// Complexity: O(len(word)).
func (t *Trie) Contains(word string) bool {
	return t.Terminal(t.PrefixNode(word))
}

// Len returns the number of distinct words stored.
// Complexity: O(1).
func (t *Trie) Len() int {
	return t.words
}
