// Package error provides structured error handling for the mangos library.
//
// Package: error
// Title: mangos Error Handling Core
// Description: This package implements a structured error type with error
//              codes, severity levels, detail metadata, and stack traces.
//              It backs the standardized error constructors in core/errors
//              and the precondition failures raised by the operation
//              packages under utils/.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes with precondition/validation categories
// - Stack trace capture for debugging
// - Error severity levels derived from codes
// - JSON marshalling for structured log output
//
// Usage:
//   import "github.com/wildandrewlee/mangos/core/error"
//
//   // Create a new error with context
//   err := error.New("delimiter must not be empty").
//     WithCode(error.CodeRequiredArgument).
//     WithDetail("argument", "delimiter").
//     WithOperation("split")
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "tokenization failed")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeRequiredArgument) {
//     // Handle missing arguments specifically
//   }
package error
