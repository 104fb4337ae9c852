package search

import (
	"github.com/katalvlaran/wordgrid/trie"
)

const (
	// MinWordLen is the shortest reportable word; it mirrors the trie's
	// insertion gate so both ends of the pipeline agree.
	MinWordLen = trie.MinWordLen

	// BonusValue is the score added per bonus tile on a word's path.
	BonusValue = 3
)

// Score maps a word length and the count of bonus tiles on its path to a
// total score: a length-based base plus BonusValue per bonus tile. The
// base saturates at 8 letters. The sweep never calls it with a length
// below MinWordLen.
func Score(length, bonusCount int) int {
	var base int
	switch length {
	case 3:
		base = 1
	case 4:
		base = 6
	case 5:
		base = 8
	case 6:
		base = 10
	case 7:
		base = 12
	default: // 8+ letters
		base = 14
	}

	return base + BonusValue*bonusCount
}
