// Package dict reads and normalizes word lists for indexing.
package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoSystemDictionary is returned by ReadSystem when no candidate path
// exists on this machine.
var ErrNoSystemDictionary = errors.New("dict: no system dictionary found")

// SystemPaths lists candidate system word-list locations, tried in order
// by ReadSystem.
var SystemPaths = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
}

// minLen mirrors the search's minimum reportable word length.
const minLen = 3

// Read scans a newline-delimited sequence of words from r, trims and
// uppercases each line, and keeps only purely alphabetic words of at
// least three letters. Shorter or non-alphabetic lines are silently
// dropped; they can never appear on a letter grid path.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)

	words := make([]string, 0, 1<<15)
	for sc.Scan() {
		word := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if usable(word) {
			words = append(words, word)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dict: scanner error: %w", err)
	}

	return words, nil
}

// ReadFile uses Read to load the dictionary at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// ReadSystem tries each SystemPaths entry in order and returns the first
// that loads. Returns ErrNoSystemDictionary if none exists.
func ReadSystem() ([]string, error) {
	for _, path := range SystemPaths {
		words, err := ReadFile(path)
		if err != nil {
			continue
		}

		return words, nil
	}

	return nil, ErrNoSystemDictionary
}

// usable reports whether word is purely A..Z and long enough to matter.
func usable(word string) bool {
	if len(word) < minLen {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}

	return true
}

// Fallback returns a small built-in word list so the solver still runs
// when neither a dictionary file nor a system word list is available.
func Fallback() []string {
	return []string{
		"THE", "AND", "FOR", "ARE", "BUT", "NOT", "YOU", "ALL", "CAN", "HER",
		"WAS", "ONE", "OUR", "HAD", "DAY", "GET", "USE", "MAN", "NEW", "NOW",
		"WAY", "MAY", "SAY", "SHE", "TWO", "HOW", "ITS", "WHO", "OIL", "SIT",
		"SET", "RUN", "EAT", "FAR", "SEA", "EYE", "YET", "ASK", "TRY", "TEA",
		"KEY", "YES", "LET", "HIS", "HAS", "HIT", "HOT", "PUT", "CUT", "LAY",
		"TOP", "LOT", "SUN", "SKY", "RED", "NET", "PET", "ART", "EAR", "END",
		"LEG", "ELK", "EEL", "ALE", "ASH", "HEN", "PEN", "LAD", "HAY", "LAP",
		"PEA", "LEA", "AYE", "YEA", "YEP", "SUP", "UPS", "NUT", "TUN", "SON",
		"TON", "TEN", "WET", "BET", "MET", "POT", "ROT",
		"TELL", "CALL", "KEEP", "LAST", "PART", "TAKE", "MAKE", "WORK",
		"KNOW", "YEAR", "BACK", "GOOD", "LIFE", "HAND", "HIGH", "LOOK",
		"HELP", "MUCH", "LINE", "MOVE", "FOOD", "CITY", "EYES", "HEAD",
		"SIDE", "FEET", "MILE", "WALK", "GROW", "TOOK", "FOUR", "ONCE",
		"BOOK", "HEAR", "STOP", "IDEA", "FACE", "FACT", "TURN", "SEEM",
		"HARD", "OPEN", "SAIL", "SALE", "SAND", "SASH", "REEL", "EARL",
		"EASE", "EAST", "DEEP", "DEER", "DELL", "HELD", "HEEL", "HELL",
		"KELP", "KEEL", "LEAP", "LEER", "PEAL", "PEAR", "PEER", "PEEL",
		"PEEP", "SEEP", "SEED", "SEEK", "SEEN", "SEER", "ELSE", "ELKS",
		"HEAL", "HEAT", "HALE", "HAYS", "YEAS", "TALE", "TEAL", "TEAM",
		"TEAR", "EELS", "USED", "USER", "USES", "TRUE", "EONS", "EURO",
		"SURE", "SOUR", "SOUL", "SOLE", "SOLO", "LOSE", "LOST", "LOTS",
		"LUST", "NUTS", "RUNT", "RUNS", "NUNS", "LENS", "TENS", "NETS",
		"LETS", "PETS", "PEST", "REST", "NEST", "TEST", "BEST", "JEST",
		"LEST", "WEST",
		"PLACE", "THINK", "WORLD", "HOUSE", "POINT", "WATER", "GREAT",
		"WHERE", "RIGHT", "THING", "STUDY", "STILL", "LEARN", "PLANT",
		"COVER", "UNDER", "NEVER", "START", "EARTH", "LIGHT", "STORY",
		"BEGAN", "PAPER", "GROUP", "OFTEN", "NIGHT", "WHITE", "RIVER",
		"CARRY", "STATE", "LATER", "LEAVE", "CLOSE", "BEGIN", "TEARS",
		"EASES",
		"SCHOOL", "ALWAYS", "SECOND", "ENOUGH", "CHILDREN",
	}
}
