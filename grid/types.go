// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/wordgrid.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadDimensions indicates the input does not match the configured size.
	ErrBadDimensions = errors.New("grid: input does not match the configured dimensions")
	// ErrBadLetter indicates a cell that is not a single ASCII uppercase letter.
	ErrBadLetter = errors.New("grid: every cell must hold exactly one uppercase letter")
	// ErrBonusOutOfRange indicates a bonus coordinate outside the board.
	ErrBonusOutOfRange = errors.New("grid: bonus coordinate out of range")
)

// Coord identifies one cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// Options configures grid construction.
type Options struct {
	// Rows and Cols pin the expected board size; New rejects input of any
	// other shape. A zero value accepts the input's own size.
	Rows, Cols int
}

// DefaultOptions returns the standard game board size: 5×5.
func DefaultOptions() Options {
	return Options{Rows: 5, Cols: 5}
}

// neighborOffsets lists the 8 compass directions in (dr,dc) ascending
// row-major order. This order is the canonical neighbor order exposed by
// Neighbors and therefore the search's exploration order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
