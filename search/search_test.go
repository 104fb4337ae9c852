package search_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordgrid/grid"
	"github.com/katalvlaran/wordgrid/search"
	"github.com/katalvlaran/wordgrid/trie"
)

// mustGrid builds a grid from string rows, failing the test on error.
func mustGrid(t *testing.T, bonus []grid.Coord, rows ...string) *grid.Grid {
	t.Helper()
	letters := make([][]byte, len(rows))
	for i, r := range rows {
		letters[i] = []byte(r)
	}
	g, err := grid.New(letters, bonus, grid.Options{})
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	return g
}

// buildTrie indexes the given words.
func buildTrie(words ...string) *trie.Trie {
	tr := trie.New()
	for _, w := range words {
		tr.Insert(w)
	}

	return tr
}

// refBoard is the 3×3 reference board: bonus S at (1,1).
//
//	C A T
//	O S* S
//	D O G
func refBoard(t *testing.T) *grid.Grid {
	t.Helper()

	return mustGrid(t, []grid.Coord{{Row: 1, Col: 1}}, "CAT", "OSS", "DOG")
}

func TestFind_NilGrid(t *testing.T) {
	found, err := search.Find(nil, trie.New())
	assert.Nil(t, found)
	assert.ErrorIs(t, err, search.ErrNilGrid)
}

func TestFind_NilTrie(t *testing.T) {
	g := mustGrid(t, nil, "AB", "CD")
	found, err := search.Find(g, nil)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, search.ErrNilTrie)
}

// TestFind_ReferenceBoard pins the full contract on the 3×3 board: exact
// words, canonical first-discovery paths, and scores including bonus.
func TestFind_ReferenceBoard(t *testing.T) {
	g := refBoard(t)
	tr := buildTrie("CAT", "CATS", "DOG", "DOGS", "COD")

	found, err := search.Find(g, tr)
	assert.NoError(t, err)

	want := search.FoundWords{
		"CAT": {
			Path:  []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
			Score: 1,
		},
		"CATS": {
			// The bonus S at (1,1) precedes (1,2) in neighbor order, so the
			// canonical CATS path crosses it: base 6 + one bonus.
			Path:  []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}},
			Score: 9,
		},
		"COD": {
			Path:  []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
			Score: 1,
		},
		"DOG": {
			Path:  []grid.Coord{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
			Score: 1,
		},
		"DOGS": {
			Path:  []grid.Coord{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 1}},
			Score: 9,
		},
	}
	assert.Equal(t, want, found)
}

// TestFind_Deterministic verifies repeated sweeps are byte-identical.
func TestFind_Deterministic(t *testing.T) {
	g := refBoard(t)
	tr := buildTrie("CAT", "CATS", "DOG", "DOGS", "COD", "SAT", "GOD", "OAT")

	first, err := search.Find(g, tr)
	assert.NoError(t, err)
	second, err := search.Find(g, tr)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

// naiveFind is the unpruned reference: enumerate every simple path of
// length ≥ MinWordLen in the same start and neighbor order, and test each
// spelling against the dictionary set directly.
func naiveFind(g *grid.Grid, words []string) search.FoundWords {
	dict := make(map[string]bool, len(words))
	for _, w := range words {
		dict[w] = true
	}

	found := make(search.FoundWords)
	path := make([]grid.Coord, 0, g.Cells())
	letters := make([]byte, 0, g.Cells())
	visited := make([]bool, g.Cells())

	var dfs func(at grid.Coord)
	dfs = func(at grid.Coord) {
		idx := g.Index(at)
		path = append(path, at)
		letters = append(letters, g.Letter(at))
		visited[idx] = true

		if len(letters) >= search.MinWordLen && dict[string(letters)] {
			word := string(letters)
			if _, seen := found[word]; !seen {
				bonus := 0
				for _, c := range path {
					if g.Bonus(c) {
						bonus++
					}
				}
				found[word] = search.Result{Path: slices.Clone(path), Score: search.Score(len(word), bonus)}
			}
		}

		if len(path) < g.Cells() {
			for _, nb := range g.Neighbors(at) {
				if !visited[g.Index(nb)] {
					dfs(nb)
				}
			}
		}

		path = path[:len(path)-1]
		letters = letters[:len(letters)-1]
		visited[idx] = false
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			dfs(grid.Coord{Row: r, Col: c})
		}
	}

	return found
}

// TestFind_MatchesNaive checks pruning correctness: the pruned sweep finds
// exactly what exhaustive enumeration finds: same words, paths, scores.
func TestFind_MatchesNaive(t *testing.T) {
	words := []string{"CAT", "CATS", "COD", "DOG", "DOGS", "GOD", "SAT", "OAT", "TACO", "SODA", "TOSS"}
	g := refBoard(t)
	tr := buildTrie(words...)

	pruned, err := search.Find(g, tr)
	assert.NoError(t, err)
	assert.Equal(t, naiveFind(g, words), pruned,
		"pruning must never drop a word nor change its canonical path")
}

// TestFind_PathInvariants validates every recorded path on a 5×5 board:
// no revisits, 8-adjacency between consecutive cells, in-bounds cells,
// spelling matches the key, and the score formula holds.
func TestFind_PathInvariants(t *testing.T) {
	bonus := []grid.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 2}, {Row: 4, Col: 4}}
	g := mustGrid(t, bonus,
		"SATES",
		"ERNIA",
		"LASTD",
		"TONER",
		"SDEAL",
	)
	tr := buildTrie(
		"SAT", "SATE", "SATES", "EAT", "RAN", "LAST", "LASTS", "TON", "TONE",
		"TONER", "DEAL", "DEALS", "NEAR", "EARN", "STERN", "SALT", "SLATE",
		"ANT", "ANTS", "TEN", "TENS", "NET", "NETS", "REAL", "SEAL", "STEAL",
	)

	found, err := search.Find(g, tr)
	assert.NoError(t, err)
	assert.NotEmpty(t, found)

	for word, res := range found {
		assert.GreaterOrEqual(t, len(word), search.MinWordLen, "word %q too short", word)
		assert.Len(t, res.Path, len(word), "path length must match spelling for %q", word)

		seen := make(map[grid.Coord]bool, len(res.Path))
		spelled := make([]byte, 0, len(res.Path))
		bonusCount := 0
		for i, c := range res.Path {
			assert.True(t, g.InBounds(c), "%q path cell %v out of bounds", word, c)
			assert.False(t, seen[c], "%q revisits %v", word, c)
			seen[c] = true
			spelled = append(spelled, g.Letter(c))
			if g.Bonus(c) {
				bonusCount++
			}
			if i > 0 {
				dr, dc := c.Row-res.Path[i-1].Row, c.Col-res.Path[i-1].Col
				if dr < 0 {
					dr = -dr
				}
				if dc < 0 {
					dc = -dc
				}
				assert.True(t, dr <= 1 && dc <= 1 && dr+dc > 0,
					"%q step %v→%v is not 8-adjacent", word, res.Path[i-1], c)
			}
		}
		assert.Equal(t, word, string(spelled), "path must spell its key")
		assert.Equal(t, search.Score(len(word), bonusCount), res.Score, "score formula for %q", word)
	}
}

// TestFind_FirstDiscoveryWins pins the dedup policy: when two paths spell
// the same word, the path recorded is the first in start-then-neighbor
// order, even if a later path would score higher.
func TestFind_FirstDiscoveryWins(t *testing.T) {
	// CAT spells along row 0, and again as (0,0)→(1,1)→(1,0) with a bonus
	// on (1,0). The row-0 path is discovered first and keeps score 1.
	g := mustGrid(t, []grid.Coord{{Row: 1, Col: 0}}, "CAT", "TAC")
	tr := buildTrie("CAT")

	found, err := search.Find(g, tr)
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, search.Result{
		Path:  []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
		Score: 1,
	}, found["CAT"])
}

// TestFind_SingleWordExhaustive checks that a one-word dictionary yields
// exactly one entry, and that prefixes of absent longer words are never
// over-reported.
func TestFind_SingleWordExhaustive(t *testing.T) {
	g := refBoard(t)

	found, err := search.Find(g, buildTrie("CAT"))
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Contains(t, found, "CAT")

	// CATZ shares the CAT prefix but is unreachable; CAT itself is not in
	// the dictionary, so nothing may surface.
	found, err = search.Find(g, buildTrie("CATZ"))
	assert.NoError(t, err)
	assert.Empty(t, found)
}

func TestFind_ShortWordsNeverSurface(t *testing.T) {
	g := refBoard(t)
	tr := buildTrie("AT", "OS", "CAT")

	found, err := search.Find(g, tr)
	assert.NoError(t, err)
	for word := range found {
		assert.GreaterOrEqual(t, len(word), search.MinWordLen)
	}
	assert.Len(t, found, 1)
}

// TestFindStats_EmptyDictionary verifies diagnostics on the degenerate
// sweep: every start cell prunes immediately, nothing is entered.
func TestFindStats_EmptyDictionary(t *testing.T) {
	g := refBoard(t)

	found, stats, err := search.FindStats(g, trie.New())
	assert.NoError(t, err)
	assert.Empty(t, found)
	assert.Equal(t, 0, stats.CellsEntered)
	assert.Equal(t, g.Cells(), stats.PrunedBranches)
}

func TestFind_Cancellation(t *testing.T) {
	g := refBoard(t)
	tr := buildTrie("CAT", "DOG")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	found, err := search.Find(g, tr, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, found, "nothing should be found when cancelled before the first branch")
}

func TestFind_OnWordHook(t *testing.T) {
	g := refBoard(t)
	tr := buildTrie("CAT", "CATS", "COD", "DOG", "DOGS")

	var seen []string
	found, err := search.Find(g, tr, search.WithOnWord(func(word string, r search.Result) error {
		seen = append(seen, word)

		return nil
	}))
	assert.NoError(t, err)
	assert.Len(t, seen, len(found), "hook fires exactly once per word")
	assert.ElementsMatch(t, []string{"CAT", "CATS", "COD", "DOG", "DOGS"}, seen)
	// Discovery order within the C branch is fixed by neighbor order.
	assert.Equal(t, []string{"CAT", "CATS", "COD", "DOG", "DOGS"}, seen)
}

func TestFind_OnWordError(t *testing.T) {
	g := refBoard(t)
	tr := buildTrie("CAT", "CATS", "COD", "DOG", "DOGS")

	found, err := search.Find(g, tr, search.WithOnWord(func(word string, r search.Result) error {
		if word == "CATS" {
			return errors.New("halt at CATS")
		}

		return nil
	}))
	assert.Error(t, err)
	assert.ErrorContains(t, err, "OnWord hook for \"CATS\"")
	// Words recorded before the abort stay in the result.
	assert.Contains(t, found, "CAT")
	assert.Contains(t, found, "CATS")
	assert.NotContains(t, found, "DOG")
}
