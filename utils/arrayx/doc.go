// File: doc.go
// Title: Package Documentation for arrayx
// Description: Package arrayx provides operations over fixed-length
//              sequences for the mangos library: length query, in-place
//              reversal, in-place element-wise transformation, and copying
//              conversion.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

// Package arrayx provides generic operations over fixed-length sequences.
//
// Package: arrayx
// Title: Fixed Sequence Operations for mangos
// Description: This package implements the sequence half of the mangos
//              library: operations over fixed-length homogeneous sequences
//              expressed as caller-owned slices. Operations either mutate
//              the caller's storage in place (Reverse, Transform) or leave
//              it untouched (Length, ToSlice, Clone, Equal); ownership never
//              transfers.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Overview
//
// The arrayx package is a stateless façade of pure functions. It holds no
// package-level state, requires no initialization, and is safe for
// concurrent use as long as callers do not share one slice across
// concurrent in-place calls.
//
// Key capabilities:
//   - Length: element count of a sequence
//   - Reverse: in-place reversal, idempotent under double application
//   - Transform: in-place element-wise application in index order
//   - ToSlice / Clone: freshly allocated copies in original order
//   - Equal: element-wise comparison
//
// Usage Examples
//
// In-place operations mutate the caller's storage:
//
//	nums := []int{1, 2, 3, 4}
//	arrayx.Reverse(nums)              // nums == [4 3 2 1]
//	arrayx.Transform(nums, func(n int) int { return n * n })
//	// nums == [16 9 4 1]
//
// Copying operations leave the input untouched:
//
//	copy := arrayx.ToSlice(nums)
//	copy[0] = 0                       // nums unchanged
//
// Error Handling
//
// The plain operations follow the nil-guard convention: a nil transform
// function is a no-op and a nil sequence has length zero. Callers that want
// a loud failure instead use TransformWithValidation, which reports a nil
// function as a standardized input error from core/errors.
//
// Thread Safety
//
// All functions are free of shared state. Concurrent calls on distinct
// sequences are always safe; concurrent in-place calls on the same sequence
// are the caller's aliasing hazard to avoid.
//
// See Also
//
//   - Package stringx: the text half of the library; its Transform shares
//     this package's traversal over []byte
//   - Package core/errors: standardized error constructors
//
package arrayx
