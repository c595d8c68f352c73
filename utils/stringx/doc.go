// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the text operations of the mangos
//              library: byte-wise transformation, tokenization with two
//              delimiter matching modes, joining, whitespace trimming, case
//              conversion, and reversal.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

// Package stringx provides byte-wise string operations for the mangos library.
//
// Package: stringx
// Title: Text Operations for mangos
// Description: This package implements the text half of the mangos library.
//              Its core is the tokenization and whitespace-trimming engine
//              (Split, Join, Trim); transformation, case conversion, and
//              reversal are thin wrappers over the shared element-wise
//              traversal. Text is treated as a sequence of single-byte
//              characters; Unicode-aware casing and locale-sensitive
//              whitespace are explicitly out of scope.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Overview
//
// All operations are pure: they take a string and return a new string (or
// token slice) without package-level state. The package is safe for
// concurrent use without restrictions.
//
// Key capabilities:
//   - Transform: element-wise application of a byte function in index order
//   - ToUpper / ToLower: byte-wise ASCII case conversion
//   - Reverse: character-order reversal
//   - Split: delimiter-based tokenization with literal and any-of modes
//   - Join: token concatenation with a separator between adjacent pairs
//   - Trim: removal of leading/trailing whitespace-set characters
//
// Tokenization
//
// Split supports two delimiter matching modes, modeled as the SplitMode
// tagged type rather than a boolean flag:
//
//	// Literal mode: the delimiter is one contiguous substring.
//	stringx.Split("a::b::c", "::", stringx.SplitLiteral)
//	// ["a", "b", "c"]
//
//	// Any-of mode: each delimiter character separates on its own, and the
//	// cursor consumes exactly one character per match.
//	stringx.Split("a-b_c", "-_", stringx.SplitAnyOf)
//	// ["a", "b", "c"]
//
// The two modes differ in how far the cursor advances past a match (the
// full delimiter length vs exactly one character), which changes the result
// for multi-character delimiters. Empty candidate tokens are always
// discarded: consecutive, leading, or trailing delimiters never produce
// empty entries, and text consisting entirely of delimiters yields an
// empty result.
//
// Trimming
//
// Trim removes characters from the fixed Whitespace set (space, tab,
// newline, carriage return) from both ends:
//
//	stringx.Trim("  hi  ")  // "hi"
//	stringx.Trim("   ")     // ""
//	stringx.Trim("")        // ""
//
// The all-whitespace and empty cases are normal results; the internal
// searches return an explicit (index, ok) pair, so no out-of-range slice
// can arise at this boundary.
//
// Error Handling
//
// Split requires non-empty text, a non-empty delimiter, and a valid mode.
// These are caller contracts: Split panics with a precondition error from
// core/errors when they are violated, and SplitWithValidation returns the
// same error for callers that prefer explicit handling. No other operation
// in the package can fail.
//
// Round Trips
//
// Join is the inverse of literal-mode Split for well-formed input:
//
//	tokens := stringx.Split("a-b-c", "-", stringx.SplitLiteral)
//	stringx.Join(tokens, "-") // "a-b-c"
//
// The round trip holds whenever the text has no leading, trailing, or
// consecutive delimiter occurrences (those positions produce no tokens and
// cannot be reconstructed).
//
// See Also
//
//   - Package arrayx: the sequence half of the library; Transform shares
//     its traversal routine
//   - Package core/errors: standardized error constructors
//
package stringx
