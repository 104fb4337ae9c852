// Package grid models the letter board a word search runs on: a fixed
// rectangular matrix of single uppercase letters, a set of bonus tiles,
// and a precomputed 8-way adjacency table.
//
// What:
//
//   - Grid wraps an R×C byte matrix, deep-copied at construction and
//     immutable afterwards.
//   - A bonus set marks coordinates worth extra score when a word's path
//     crosses them; membership is boolean, with no intensity levels.
//   - Neighbors(c) returns the in-bounds 8-directional neighbors of c in
//     a fixed, documented order — the order defines which path a search
//     records first when a word has several.
//
// Why:
//
//   - The search enters millions of cells; clipping bounds and branching
//     on direction there would dominate the hot loop. Precomputing each
//     cell's neighbor list once makes every expansion a plain slice walk.
//   - Validating letters and bonus coordinates at construction keeps the
//     search itself free of error paths (it only ever reads).
//
// Complexity:
//
//   - New:        O(R×C) time and memory
//   - Neighbors:  O(1)
//   - Letter, Bonus, InBounds, Index, Coordinate: O(1)
//
// Options:
//
//   - Options.Rows / Options.Cols: expected dimensions; the constructor
//     rejects input of any other size. Zero means "accept the input's own
//     size". DefaultOptions is the game's 5×5 board.
//
// Errors:
//
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrBadDimensions:   input size differs from the configured R×C.
//   - ErrBadLetter:       a cell is not a single ASCII uppercase letter.
//   - ErrBonusOutOfRange: a bonus coordinate lies outside the board.
package grid
