// Package grid provides the immutable letter board and its precomputed
// adjacency table.
package grid

import (
	"strings"
)

// Grid is an immutable R×C board of single uppercase letters plus a bonus
// set. All per-cell state is stored row-major; the adjacency table is
// precomputed at construction so lookups never branch on bounds.
type Grid struct {
	rows, cols int
	letters    []byte    // row-major cell letters
	bonus      []bool    // row-major bonus membership
	neighbors  [][]Coord // row-major: in-bounds 8-way neighbors per cell
}

// New constructs a Grid from a non-empty rectangular byte matrix and a set
// of bonus coordinates. The input is deep-copied; the Grid never aliases
// caller memory. Every cell must be a single ASCII uppercase letter;
// multi-letter tiles are a loader concern and are rejected here.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadDimensions, ErrBadLetter,
// or ErrBonusOutOfRange on contract violations.
// Complexity: O(R×C) time and memory.
func New(letters [][]byte, bonus []Coord, opts Options) (*Grid, error) {
	if len(letters) == 0 || len(letters[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(letters), len(letters[0])
	for _, row := range letters {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if opts.Rows != 0 && opts.Rows != rows {
		return nil, ErrBadDimensions
	}
	if opts.Cols != 0 && opts.Cols != cols {
		return nil, ErrBadDimensions
	}

	g := &Grid{
		rows:    rows,
		cols:    cols,
		letters: make([]byte, rows*cols),
		bonus:   make([]bool, rows*cols),
	}
	for r, row := range letters {
		for c, letter := range row {
			if letter < 'A' || letter > 'Z' {
				return nil, ErrBadLetter
			}
			g.letters[r*cols+c] = letter
		}
	}
	for _, b := range bonus {
		if !g.InBounds(b) {
			return nil, ErrBonusOutOfRange
		}
		g.bonus[g.Index(b)] = true
	}
	g.precomputeNeighbors()

	return g, nil
}

// precomputeNeighbors fills the adjacency table: for every cell, its
// in-bounds neighbors in the fixed neighborOffsets order.
func (g *Grid) precomputeNeighbors() {
	g.neighbors = make([][]Coord, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			nbs := make([]Coord, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				n := Coord{Row: r + d[0], Col: c + d[1]}
				if g.InBounds(n) {
					nbs = append(nbs, n)
				}
			}
			g.neighbors[r*g.cols+c] = nbs
		}
	}
}

// Rows returns the board height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the board width.
func (g *Grid) Cols() int { return g.cols }

// Cells returns the total cell count R×C, which is also the hard depth
// cap of any simple path on the board.
func (g *Grid) Cells() int { return g.rows * g.cols }

// InBounds reports whether c lies within the board.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Letter returns the uppercase letter at c. The caller must pass an
// in-bounds coordinate.
// Complexity: O(1).
func (g *Grid) Letter(c Coord) byte {
	return g.letters[g.Index(c)]
}

// Bonus reports whether c is a bonus tile.
// Complexity: O(1).
func (g *Grid) Bonus(c Coord) bool {
	return g.bonus[g.Index(c)]
}

// Neighbors returns the in-bounds 8-directional neighbors of c, in the
// fixed (dr,dc) ascending row-major delta order (-1,-1) … (1,1). Corners
// get 3 entries, edges 5, interior cells 8. The returned slice is shared
// and must not be mutated.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	return g.neighbors[g.Index(c)]
}

// Index maps c to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// String renders the board one row per line, marking bonus tiles with a
// trailing '*', e.g. "C A T\nO S* S\nD O G".
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * g.cols * 3)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := Coord{Row: r, Col: c}
			b.WriteByte(g.Letter(cell))
			if g.Bonus(cell) {
				b.WriteByte('*')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
