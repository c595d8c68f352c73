// File: case.go
// Title: String Case Conversion
// Description: Implements byte-wise ASCII case conversion as convenience
//              wrappers over the shared element-wise transform. Characters
//              without a case mapping pass through unchanged.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with upper/lower conversion

package stringx

// ToUpper returns s with every lowercase ASCII character replaced by its
// uppercase form. All other characters pass through unchanged.
func ToUpper(s string) string {
	return Transform(s, upperByte)
}

// ToLower returns s with every uppercase ASCII character replaced by its
// lowercase form. All other characters pass through unchanged.
func ToLower(s string) string {
	return Transform(s, lowerByte)
}

// upperByte maps a single lowercase ASCII character to uppercase
func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// lowerByte maps a single uppercase ASCII character to lowercase
func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
