// File: arrayx.go
// Title: Fixed Sequence Operations
// Description: Implements operations over fixed-length homogeneous sequences
//              expressed as caller-owned slices: length query, in-place
//              reversal, in-place element-wise transformation, and
//              conversion to an independently owned copy.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation of the sequence operations

package arrayx

import (
	"github.com/wildandrewlee/mangos/core/errors"
)

// ===============================
// Core Sequence Operations
// ===============================

// Length returns the element count of the sequence.
func Length[T any](seq []T) int {
	return len(seq)
}

// Reverse reverses the order of elements in place by swapping seq[i] and
// seq[n-1-i] for i in [0, n/2). Applying Reverse twice restores the
// original order.
func Reverse[T any](seq []T) {
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
}

// Transform replaces each element seq[i] with fn(seq[i]) in place, strictly
// in index order from first to last. fn should be pure; the sequential
// left-to-right application is the only ordering guarantee callers may rely
// on. A nil fn leaves the sequence unchanged.
func Transform[T any](seq []T, fn func(T) T) {
	if fn == nil {
		return
	}

	for i := range seq {
		seq[i] = fn(seq[i])
	}
}

// Clone creates a shallow copy of the sequence
func Clone[T any](seq []T) []T {
	if seq == nil {
		return nil
	}

	result := make([]T, len(seq))
	copy(result, seq)
	return result
}

// ToSlice returns a newly allocated, independently owned copy of the
// sequence in original order. The input is not mutated.
func ToSlice[T any](seq []T) []T {
	return Clone(seq)
}

// Equal checks if two sequences are equal element by element
func Equal[T comparable](seq1, seq2 []T) bool {
	if len(seq1) != len(seq2) {
		return false
	}

	for i, item := range seq1 {
		if item != seq2[i] {
			return false
		}
	}
	return true
}

// ===============================
// API Consistency Improvements
// ===============================

// TransformWithValidation transforms the sequence in place, returning an
// input error for a nil function instead of treating it as a no-op
func TransformWithValidation[T any](seq []T, fn func(T) T) error {
	if fn == nil {
		return errors.InputError(errors.ModuleArrayx, "transform", nil, "non-nil transform function")
	}

	Transform(seq, fn)
	return nil
}
