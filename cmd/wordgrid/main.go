// Command wordgrid solves a letter-grid word puzzle: it loads a dictionary
// and a grid file, sweeps the board for every reachable word, and prints
// the results ranked by score.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/vyevs/ansi"
	"github.com/vyevs/vtools"

	"github.com/katalvlaran/wordgrid/dict"
	"github.com/katalvlaran/wordgrid/grid"
	"github.com/katalvlaran/wordgrid/search"
	"github.com/katalvlaran/wordgrid/trie"
)

func main() {
	defer vtools.TimeIt(time.Now(), "everything")

	err := myMain()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func myMain() error {
	var gridFilePath, dictFilePath string
	flag.StringVar(&gridFilePath, "g", "grid.txt", "path to the grid file")
	flag.StringVar(&dictFilePath, "d", "", "path to the dictionary file, optional")

	var top int
	flag.IntVar(&top, "n", 30, "max number of words to print")

	var verbose bool
	flag.BoolVar(&verbose, "v", false, "whether to print paths and sweep diagnostics")

	flag.Parse()

	words, err := loadDictionary(dictFilePath)
	if err != nil {
		return fmt.Errorf("failed to get dictionary: %v", err)
	}

	tr := trie.New()
	for _, w := range words {
		tr.Insert(w)
	}
	fmt.Printf("The dictionary contains %d usable words\n", tr.Len())

	g, err := readGridFile(gridFilePath)
	if err != nil {
		return fmt.Errorf("failed to read grid: %v", err)
	}

	fmt.Println("grid:")
	fmt.Print(gridStr(g))

	found, stats, err := findWords(g, tr)
	if err != nil {
		return fmt.Errorf("failed to search: %v", err)
	}
	if verbose {
		fmt.Printf("entered %d cells, pruned %d branches\n", stats.CellsEntered, stats.PrunedBranches)
	}

	printResults(g, found, top, verbose)

	return nil
}

// loadDictionary tries, in order: the -d file, the system word lists, the
// built-in fallback.
func loadDictionary(path string) ([]string, error) {
	if path != "" {
		return dict.ReadFile(path)
	}

	words, err := dict.ReadSystem()
	if errors.Is(err, dict.ErrNoSystemDictionary) {
		fmt.Println("no system dictionary, using the built-in word list")

		return dict.Fallback(), nil
	}

	return words, err
}

// readGridFile parses a grid file: one row of whitespace-separated tiles
// per line, a trailing '*' marking a bonus tile. Tiles are uppercased
// before validation; only single-letter tiles are supported.
func readGridFile(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var letters [][]byte
	var bonus []grid.Coord
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		r := len(letters)
		row := make([]byte, 0, len(fields))
		for c, tok := range fields {
			if strings.HasSuffix(tok, "*") {
				bonus = append(bonus, grid.Coord{Row: r, Col: c})
				tok = strings.TrimSuffix(tok, "*")
			}
			tok = strings.ToUpper(tok)
			if len(tok) != 1 {
				return nil, fmt.Errorf("tile %q at row %d col %d: only single-letter tiles are supported", tok, r, c)
			}
			row = append(row, tok[0])
		}
		letters = append(letters, row)
	}

	return grid.New(letters, bonus, grid.Options{})
}

// findWords runs the sweep with its own timing line.
func findWords(g *grid.Grid, tr *trie.Trie) (search.FoundWords, search.Stats, error) {
	defer vtools.TimeIt(time.Now(), "word search")

	return search.FindStats(g, tr)
}

// gridStr renders the board, bonus tiles in yellow.
func gridStr(g *grid.Grid) string {
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := grid.Coord{Row: r, Col: c}
			if g.Bonus(cell) {
				b.WriteString(ansi.FGColorName("yellow"))
				b.WriteByte(g.Letter(cell))
				b.WriteByte('*')
				b.WriteString(ansi.Clear)
			} else {
				b.WriteByte(g.Letter(cell))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// printResults sorts by score descending then alphabetically and prints
// up to top entries.
func printResults(g *grid.Grid, found search.FoundWords, top int, verbose bool) {
	if len(found) == 0 {
		fmt.Println("No valid words found!")

		return
	}

	words := make([]string, 0, len(found))
	for w := range found {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		a, b := found[words[i]], found[words[j]]
		if a.Score != b.Score {
			return a.Score > b.Score
		}

		return words[i] < words[j]
	})

	fmt.Printf("Found %d valid words:\n", len(words))
	shown := len(words)
	if top >= 0 && top < shown {
		shown = top
	}
	for i := 0; i < shown; i++ {
		word := words[i]
		res := found[word]

		bonusUsed := 0
		for _, c := range res.Path {
			if g.Bonus(c) {
				bonusUsed++
			}
		}
		bonusNote := ""
		if bonusUsed > 0 {
			bonusNote = fmt.Sprintf(" (+%d bonus)", bonusUsed*search.BonusValue)
		}

		fmt.Printf("%3d. %s%-15s%s | Score: %2d%s\n",
			i+1, ansi.FGColorName("green"), word, ansi.Clear, res.Score, bonusNote)
		if verbose {
			fmt.Printf("     Path: %s\n", formatPath(res.Path))
		}
	}

	if len(words) > shown {
		fmt.Printf("... and %d more words found!\n", len(words)-shown)
	}
}

// formatPath renders a path as "(r,c) → (r,c) → …".
func formatPath(path []grid.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}

	return strings.Join(parts, " → ")
}
