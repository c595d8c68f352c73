// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization when library errors surface in calling
//              applications. Severity is derived from the error code by
//              default and can be overridden explicitly.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, degenerate values handled gracefully
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: rejected arguments the caller can correct and retry
	SeverityMedium

	// SeverityHigh indicates a serious error that signals a broken caller contract
	// Examples: violated preconditions, invalid operation modes
	SeverityHigh

	// SeverityCritical indicates an internal failure in the library itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Internal library failures
	case CodeInternal:
		return SeverityCritical

	// Broken caller contracts
	case CodePreconditionFailed, CodeRequiredArgument, CodeInvalidMode, CodeInvalidFunction:
		return SeverityHigh

	// Correctable input problems
	case CodeInvalidInput, CodeValidationFailed, CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
