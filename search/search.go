// Package search implements the depth-first, trie-pruned word sweep over a
// letter grid.
package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/wordgrid/grid"
	"github.com/katalvlaran/wordgrid/trie"
)

// walker encapsulates state during one full sweep. The found map and
// stats are shared across all start points; path, visited and letters are
// per-branch state restored LIFO on every return.
type walker struct {
	g     *grid.Grid
	t     *trie.Trie
	opts  Options
	found FoundWords
	stats Stats

	path    []grid.Coord // visited coordinates, in order
	visited []bool       // row-major membership mirror of path
	letters []byte       // letters spelled so far
}

// Find runs the full sweep: one DFS branch per grid cell as start point,
// in row-major order, accumulating every discovered word into one
// FoundWords map. Returns ErrNilGrid or ErrNilTrie on nil inputs; on
// cancellation or a hook error the words found so far are returned along
// with the error.
func Find(g *grid.Grid, t *trie.Trie, opts ...Option) (FoundWords, error) {
	found, _, err := FindStats(g, t, opts...)

	return found, err
}

// FindStats is Find plus sweep diagnostics.
func FindStats(g *grid.Grid, t *trie.Trie, opts ...Option) (FoundWords, Stats, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, Stats{}, ErrNilGrid
	}
	if t == nil {
		return nil, Stats{}, ErrNilTrie
	}

	// 2. Apply options
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	// 3. Initialize the walker with capacity hints
	cells := g.Cells()
	w := &walker{
		g:       g,
		t:       t,
		opts:    sopts,
		found:   make(FoundWords),
		path:    make([]grid.Coord, 0, cells),
		visited: make([]bool, cells),
		letters: make([]byte, 0, cells),
	}

	// 4. Sweep: one independent branch per start cell, row-major
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			// Cancellation check between branches only
			select {
			case <-sopts.Ctx.Done():
				return w.found, w.stats, sopts.Ctx.Err()
			default:
			}

			if err := w.explore(grid.Coord{Row: r, Col: c}, t.Root()); err != nil {
				return w.found, w.stats, err
			}
		}
	}

	return w.found, w.stats, nil
}

// explore extends the current branch into cell at, descending one trie
// level from node. It prunes before touching any branch state, records a
// word on reaching a terminal node at sufficient depth, recurses into
// unvisited neighbors, and restores path/visited/letters on return.
func (w *walker) explore(at grid.Coord, node trie.Node) error {
	// 1. Prune: no dictionary word extends the spelled prefix with this
	// letter, so the cell is never entered.
	letter := w.g.Letter(at)
	next := w.t.Child(node, letter)
	if next == trie.None {
		w.stats.PrunedBranches++

		return nil
	}

	// 2. Enter the cell
	idx := w.g.Index(at)
	w.path = append(w.path, at)
	w.letters = append(w.letters, letter)
	w.visited[idx] = true
	w.stats.CellsEntered++

	// 3. Backtrack on every exit path, strict LIFO
	defer func() {
		w.path = w.path[:len(w.path)-1]
		w.letters = w.letters[:len(w.letters)-1]
		w.visited[idx] = false
	}()

	// 4. Accept: terminal node at reportable depth, first discovery wins
	if len(w.letters) >= MinWordLen && w.t.Terminal(next) {
		word := string(w.letters)
		if _, seen := w.found[word]; !seen {
			res := Result{
				Path:  slices.Clone(w.path),
				Score: Score(len(word), w.bonusOnPath()),
			}
			w.found[word] = res
			if w.opts.OnWord != nil {
				if err := w.opts.OnWord(word, res); err != nil {
					return fmt.Errorf("search: OnWord hook for %q: %w", word, err)
				}
			}
		}
	}

	// 5. Expand neighbors unless the path already covers the whole board
	if len(w.path) < w.g.Cells() {
		for _, nb := range w.g.Neighbors(at) {
			if w.visited[w.g.Index(nb)] {
				continue
			}
			if err := w.explore(nb, next); err != nil {
				return err
			}
		}
	}

	return nil
}

// bonusOnPath counts bonus tiles on the current branch's path.
func (w *walker) bonusOnPath() int {
	n := 0
	for _, c := range w.path {
		if w.g.Bonus(c) {
			n++
		}
	}

	return n
}
