package trie_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordgrid/trie"
)

// randomWords generates n pseudo-words of length 3..10 from a fixed seed.
func randomWords(n int) []string {
	rng := rand.New(rand.NewSource(42))
	words := make([]string, n)
	for i := range words {
		l := 3 + rng.Intn(8)
		buf := make([]byte, l)
		for j := range buf {
			buf[j] = byte('A' + rng.Intn(26))
		}
		words[i] = string(buf)
	}

	return words
}

// BenchmarkInsert measures building the index from 50k generated words,
// roughly the size of the game's real dictionary.
func BenchmarkInsert(b *testing.B) {
	words := randomWords(50_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := trie.New()
		for _, w := range words {
			tr.Insert(w)
		}
	}
}

// BenchmarkChildWalk measures the hot-path operation: one Child step per
// letter across many prefixes, as the grid sweep performs it.
func BenchmarkChildWalk(b *testing.B) {
	words := randomWords(50_000)
	tr := trie.New()
	for _, w := range words {
		tr.Insert(w)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := words[i%len(words)]
		n := tr.Root()
		for j := 0; j < len(w) && n != trie.None; j++ {
			n = tr.Child(n, w[j])
		}
	}
}
