// File: stringx.go
// Title: Core String Operations
// Description: Implements the byte-wise string operations of the mangos
//              library: element-wise transformation, reversal, and
//              whitespace trimming. Text is treated as a sequence of
//              single-byte characters throughout; Unicode-aware casing and
//              locale-sensitive whitespace are out of scope.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation of the core string operations

package stringx

import (
	"strings"

	"github.com/wildandrewlee/mangos/utils/arrayx"
)

// Whitespace is the fixed set of characters Trim removes from both ends.
const Whitespace = " \t\n\r"

// ===============================
// Core String Operations
// ===============================

// Transform returns a new string where the character at each position i is
// fn(s[i]), applied in index order over the whole string. The traversal is
// shared with the sequence module: the string is converted to a byte
// sequence and handed to arrayx.Transform. The input is never modified; a
// nil fn returns the input unchanged.
func Transform(s string, fn func(byte) byte) string {
	if fn == nil {
		return s
	}

	buf := []byte(s)
	arrayx.Transform(buf, fn)
	return string(buf)
}

// Reverse returns a new string with the characters in reverse order. The
// empty string reverses to itself.
func Reverse(s string) string {
	buf := []byte(s)
	arrayx.Reverse(buf)
	return string(buf)
}

// Trim removes leading and trailing characters belonging to the Whitespace
// set (space, tab, newline, carriage return). Input that is empty or
// consists entirely of whitespace trims to the empty string; this is a
// normal result, not a failure.
func Trim(s string) string {
	first, ok := indexNotIn(s, Whitespace)
	if !ok {
		return ""
	}

	last, _ := lastIndexNotIn(s, Whitespace)
	return s[first : last+1]
}

// ===============================
// Search Primitives
// ===============================

// indexNotIn returns the first index whose character is not in set. The
// second result reports whether such an index exists, replacing the
// not-found sentinel of a raw index search.
func indexNotIn(s, set string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(set, s[i]) < 0 {
			return i, true
		}
	}
	return 0, false
}

// lastIndexNotIn returns the last index whose character is not in set.
func lastIndexNotIn(s, set string) (int, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if strings.IndexByte(set, s[i]) < 0 {
			return i, true
		}
	}
	return 0, false
}
