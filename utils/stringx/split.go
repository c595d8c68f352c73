// File: split.go
// Title: String Tokenization and Joining
// Description: Implements the delimiter-based tokenization engine and its
//              inverse join operation. Tokenization supports two delimiter
//              matching modes, suppresses empty tokens, and enforces its
//              preconditions fail-fast.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation of the tokenization engine

package stringx

import (
	"strings"

	"github.com/wildandrewlee/mangos/core/errors"
)

// SplitMode selects how Split matches the delimiter. Each mode bundles both
// effects of the choice: the search semantics and the distance the cursor
// advances past a match. Keeping them under one tag prevents the two from
// diverging.
type SplitMode int

const (
	// SplitLiteral matches the delimiter as one contiguous substring; after
	// a match the cursor advances by the full delimiter length.
	SplitLiteral SplitMode = iota

	// SplitAnyOf treats the delimiter's characters as a set; any single
	// character from the set ends the current token, and the cursor
	// advances by exactly one character regardless of the delimiter
	// string's length.
	SplitAnyOf
)

// String returns the string representation of the split mode
func (m SplitMode) String() string {
	switch m {
	case SplitLiteral:
		return "literal"
	case SplitAnyOf:
		return "any-of"
	default:
		return "unknown"
	}
}

// IsValid checks if the split mode is a known valid mode
func (m SplitMode) IsValid() bool {
	switch m {
	case SplitLiteral, SplitAnyOf:
		return true
	default:
		return false
	}
}

// ===============================
// Tokenization
// ===============================

// Split tokenizes s by repeatedly locating the next delimiter occurrence
// per the given mode and slicing off the token preceding it. Empty
// candidate tokens are discarded, so consecutive, leading, or trailing
// delimiters never produce empty entries; text consisting entirely of
// delimiters yields an empty result. If the delimiter never occurs, the
// whole text is the single token. The input is not modified.
//
// The conventional space-delimited split is Split(s, " ", SplitLiteral).
//
// Preconditions: s and delimiter must be non-empty and mode must be valid.
// Violations are programmer errors and panic with a precondition error
// from core/errors; use SplitWithValidation to receive the error instead.
func Split(s, delimiter string, mode SplitMode) []string {
	tokens, err := SplitWithValidation(s, delimiter, mode)
	if err != nil {
		panic(err)
	}
	return tokens
}

// SplitWithValidation tokenizes like Split but reports violated
// preconditions as an error instead of panicking
func SplitWithValidation(s, delimiter string, mode SplitMode) ([]string, error) {
	if len(s) == 0 {
		return nil, errors.PreconditionError(errors.ModuleStringx, "split", "text must not be empty")
	}
	if len(delimiter) == 0 {
		return nil, errors.PreconditionError(errors.ModuleStringx, "split", "delimiter must not be empty")
	}
	if !mode.IsValid() {
		return nil, errors.PreconditionError(errors.ModuleStringx, "split", "mode must be SplitLiteral or SplitAnyOf")
	}

	var tokens []string
	rest := s

	for len(rest) > 0 {
		idx, found := findDelimiter(rest, delimiter, mode)
		if !found {
			// No further match: the remainder is the final token.
			tokens = append(tokens, rest)
			break
		}

		if idx > 0 {
			tokens = append(tokens, rest[:idx])
		}
		rest = rest[idx+matchLength(delimiter, mode):]
	}

	return tokens, nil
}

// findDelimiter locates the next delimiter occurrence in s per the given
// mode. The second result reports whether a match exists, replacing the
// not-found sentinel of the underlying search.
func findDelimiter(s, delimiter string, mode SplitMode) (int, bool) {
	var idx int
	if mode == SplitAnyOf {
		idx = strings.IndexAny(s, delimiter)
	} else {
		idx = strings.Index(s, delimiter)
	}

	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// matchLength returns the distance the cursor advances past a match: the
// full delimiter in literal mode, exactly one character in any-of mode.
func matchLength(delimiter string, mode SplitMode) int {
	if mode == SplitAnyOf {
		return 1
	}
	return len(delimiter)
}

// ===============================
// Joining
// ===============================

// Join concatenates all tokens in order, inserting exactly one copy of sep
// between each adjacent pair: none before the first token and none after
// the last. An empty token list yields the empty string. Fixed-length and
// growable token sequences are served by the same function; plain
// concatenation is Join(tokens, "").
func Join(tokens []string, sep string) string {
	if len(tokens) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, token := range tokens {
		if i > 0 {
			builder.WriteString(sep)
		}
		builder.WriteString(token)
	}
	return builder.String()
}
