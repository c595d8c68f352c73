// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the string operations to measure performance
//              of the tokenization engine and the byte-wise traversal
//              paths.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial benchmark implementation

package stringx

import (
	"strings"
	"testing"
)

func BenchmarkTransform(b *testing.B) {
	text := strings.Repeat("the quick brown fox ", 16)
	shift := func(c byte) byte { return c + 1 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Transform(text, shift)
	}
}

func BenchmarkToUpper(b *testing.B) {
	text := strings.Repeat("the quick brown fox ", 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToUpper(text)
	}
}

func BenchmarkReverse(b *testing.B) {
	text := strings.Repeat("the quick brown fox ", 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Reverse(text)
	}
}

func BenchmarkSplitLiteral(b *testing.B) {
	text := strings.Repeat("alpha,beta,gamma,", 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Split(text, ",", SplitLiteral)
	}
}

func BenchmarkSplitAnyOf(b *testing.B) {
	text := strings.Repeat("alpha beta\tgamma\n", 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Split(text, Whitespace, SplitAnyOf)
	}
}

func BenchmarkJoin(b *testing.B) {
	tokens := strings.Split(strings.Repeat("token ", 128), " ")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Join(tokens, ", ")
	}
}

func BenchmarkTrim(b *testing.B) {
	text := "  \t\n" + strings.Repeat("payload ", 32) + "\r\n  "

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Trim(text)
	}
}
