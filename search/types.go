// Package search defines types and options for the word-search sweep,
// including cancellation, discovery hooks, and diagnostics.
package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/wordgrid/grid"
)

var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to Find.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilTrie is returned when a nil *trie.Trie is passed to Find.
	ErrNilTrie = errors.New("search: trie is nil")
)

// Result is the canonical discovery of one word: the first path that
// spelled it and the score fixed at that moment.
type Result struct {
	// Path lists the visited coordinates in order; consecutive entries are
	// 8-adjacent and no coordinate repeats.
	Path []grid.Coord

	// Score is base(len(word)) + BonusValue × bonus tiles on Path.
	Score int
}

// FoundWords maps each discovered word to its first-discovered Result.
// Keys are unique by construction; a later path to the same spelling is
// never recorded.
type FoundWords map[string]Result

// Stats carries sweep diagnostics. It affects nothing; it only reports.
type Stats struct {
	// CellsEntered counts cells actually consumed by some branch (after
	// the prune check).
	CellsEntered int

	// PrunedBranches counts moves rejected because the trie had no child
	// for the cell's letter.
	PrunedBranches int
}

// Option configures optional behavior of the sweep.
// Use with Find(g, t, opts...).
type Option func(*Options)

// Options holds configurable parameters for the sweep.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is consulted only between start-point branches, never inside one,
	// so any sweep that runs to completion is byte-identical to an
	// uncancellable one.
	Ctx context.Context

	// OnWord, if non-nil, is invoked at each first discovery, after the
	// word is recorded. Returning an error aborts the sweep with that
	// error; words recorded before the abort remain in the result.
	OnWord func(word string, r Result) error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No discovery hook
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnWord: nil,
	}
}

// WithContext returns an Option that sets the Context for the sweep.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnWord returns an Option that installs fn as a discovery hook.
// The hook fires once per word, at its first discovery.
func WithOnWord(fn func(word string, r Result) error) Option {
	return func(o *Options) {
		o.OnWord = fn
	}
}
