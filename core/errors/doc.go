// Package errors provides standardized error constructors for the mangos modules.
//
// Package: errors
// Title: Module Error Standards
// Description: This package defines the module identifiers and standardized
//              error constructors shared by the arrayx and stringx operation
//              packages. It guarantees that every error raised by the
//              library carries the same structure: module, operation, and a
//              code from core/error.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation
//
// Usage:
//   import "github.com/wildandrewlee/mangos/core/errors"
//
//   // Raise a precondition failure (fail-fast call sites panic with it)
//   err := errors.PreconditionError(errors.ModuleStringx, "split", "text must not be empty")
//
//   // Inspect a returned error
//   if errors.IsModuleError(err, errors.ModuleStringx) {
//     op := errors.GetErrorOperation(err)
//     _ = op
//   }
package errors
