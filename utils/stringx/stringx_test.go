// File: stringx_test.go
// Title: Unit Tests for Core String Operations
// Description: Tests for byte-wise transformation, reversal, and whitespace
//              trimming, with explicit coverage of the empty and
//              all-whitespace boundaries.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
)

func TestTransform(t *testing.T) {
	rot1 := func(c byte) byte { return c + 1 }

	tests := []struct {
		name     string
		input    string
		fn       func(byte) byte
		expected string
	}{
		{"empty string", "", rot1, ""},
		{"shift each byte", "abc", rot1, "bcd"},
		{"identity function", "hello", func(c byte) byte { return c }, "hello"},
		{"nil function returns input", "hello", nil, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Transform(tt.input, tt.fn)
			if result != tt.expected {
				t.Errorf("Transform(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	input := "abc"
	_ = Transform(input, func(c byte) byte { return 'x' })
	if input != "abc" {
		t.Errorf("Transform mutated its input: %q", input)
	}
}

func TestTransformAppliesInIndexOrder(t *testing.T) {
	var visited []byte
	_ = Transform("abc", func(c byte) byte {
		visited = append(visited, c)
		return c
	})
	if string(visited) != "abc" {
		t.Errorf("Transform visit order = %q; want %q", visited, "abc")
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single character", "a", "a"},
		{"even length", "abcd", "dcba"},
		{"odd length", "abc", "cba"},
		{"palindrome", "racecar", "racecar"},
		{"with whitespace", "ab cd", "dc ba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reverse(tt.input)
			if result != tt.expected {
				t.Errorf("Reverse(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestReverseTwiceRestoresInput(t *testing.T) {
	inputs := []string{"", "a", "ab", "hello world"}
	for _, input := range inputs {
		if got := Reverse(Reverse(input)); got != input {
			t.Errorf("Reverse(Reverse(%q)) = %q; want original", input, got)
		}
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"all spaces", "   ", ""},
		{"all whitespace kinds", " \t\n\r", ""},
		{"no whitespace", "hi", "hi"},
		{"leading and trailing spaces", "  hi  ", "hi"},
		{"leading only", "\t\thi", "hi"},
		{"trailing only", "hi\n\r", "hi"},
		{"interior whitespace kept", "  a b  ", "a b"},
		{"single non-whitespace", " x ", "x"},
		{"mixed whitespace around word", "\r\n\thello \t", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Trim(tt.input)
			if result != tt.expected {
				t.Errorf("Trim(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIndexNotIn(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		set       string
		wantIndex int
		wantOK    bool
	}{
		{"empty string", "", Whitespace, 0, false},
		{"all in set", "   ", Whitespace, 0, false},
		{"first not in set", "abc", Whitespace, 0, true},
		{"skip leading set members", "  ab", Whitespace, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := indexNotIn(tt.input, tt.set)
			if idx != tt.wantIndex || ok != tt.wantOK {
				t.Errorf("indexNotIn(%q, %q) = (%d, %v); want (%d, %v)",
					tt.input, tt.set, idx, ok, tt.wantIndex, tt.wantOK)
			}
		})
	}
}

func TestLastIndexNotIn(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		set       string
		wantIndex int
		wantOK    bool
	}{
		{"empty string", "", Whitespace, 0, false},
		{"all in set", "\t\n", Whitespace, 0, false},
		{"last not in set", "abc", Whitespace, 2, true},
		{"skip trailing set members", "ab  ", Whitespace, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := lastIndexNotIn(tt.input, tt.set)
			if idx != tt.wantIndex || ok != tt.wantOK {
				t.Errorf("lastIndexNotIn(%q, %q) = (%d, %v); want (%d, %v)",
					tt.input, tt.set, idx, ok, tt.wantIndex, tt.wantOK)
			}
		})
	}
}
