// Package dict loads the word lists a search indexes: newline-delimited
// dictionaries from files or readers, system word lists, or a small
// built-in fallback.
//
// What:
//
//   - Read / ReadFile: scan newline-delimited words, trim, uppercase, and
//     keep only purely alphabetic words of at least three letters — the
//     only entries a grid search can ever report.
//   - ReadSystem: try the usual /usr/share/dict locations in order.
//   - Fallback: a built-in list so the solver works with no files at all.
//
// Why:
//
//   - The core treats the dictionary as "a finite collection of uppercase
//     alphabetic strings"; normalizing here keeps the trie and the search
//     entirely free of input concerns.
//
// Errors:
//
//   - ErrNoSystemDictionary: none of the SystemPaths candidates exists.
//   - wrapped I/O and scanner errors from the underlying reader.
package dict
