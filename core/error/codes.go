// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the mangos library. These codes enable
//              structured error handling and precise failure reporting for
//              the sequence and string operation modules.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with library error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the mangos library
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Precondition violations (programmer errors, fail-fast)
	CodePreconditionFailed Code = "PRECONDITION_FAILED"
	CodeRequiredArgument   Code = "REQUIRED_ARGUMENT"
	CodeInvalidMode        Code = "INVALID_MODE"
	CodeInvalidFunction    Code = "INVALID_FUNCTION"

	// Validation
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// Operation failures
	CodeOperationFailed Code = "OPERATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodePreconditionFailed, CodeRequiredArgument, CodeInvalidMode, CodeInvalidFunction,
		CodeInvalidInput, CodeValidationFailed, CodeValueOutOfRange, CodeInvalidLength,
		CodeOperationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodePreconditionFailed, CodeRequiredArgument, CodeInvalidMode, CodeInvalidFunction:
		return "precondition"
	case CodeInvalidInput, CodeValidationFailed, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	case CodeOperationFailed:
		return "operation"
	default:
		return "generic"
	}
}

// IsPrecondition reports whether the code marks a violated caller contract.
// Precondition errors are programmer errors and are raised as panics by the
// ergonomic entry points rather than returned.
func (c Code) IsPrecondition() bool {
	return c.Category() == "precondition"
}
