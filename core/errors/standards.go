// File: standards.go
// Title: Error Standards for mangos Modules
// Description: Provides standardized error handling patterns and codes for
//              the mangos operation modules to ensure consistency. All
//              precondition and validation failures raised by the utils
//              packages are built through these constructors.
// Author: Andrew Lee
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"

	liberror "github.com/wildandrewlee/mangos/core/error"
)

// Module identifiers for error categorization
const (
	ModuleArrayx  = "arrayx"
	ModuleStringx = "stringx"
)

// PreconditionError creates an error for a violated caller contract. The
// ergonomic entry points panic with this error; the *WithValidation variants
// return it instead.
func PreconditionError(module, operation, requirement string) *liberror.Error {
	return liberror.New(fmt.Sprintf("precondition violated in %s.%s: %s", module, operation, requirement)).
		WithCode(liberror.CodePreconditionFailed).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":      module,
			"operation":   operation,
			"requirement": requirement,
		})
}

// InputError creates a standardized input validation error
func InputError(module, operation string, input interface{}, expected string) *liberror.Error {
	return liberror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(liberror.CodeInvalidInput).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		})
}

// ValidationError creates a standardized validation error
func ValidationError(module, field string, value interface{}, message string) *liberror.Error {
	return liberror.New(message).
		WithCode(liberror.CodeValidationFailed).
		WithDetails(map[string]interface{}{
			"module": module,
			"field":  field,
			"value":  value,
		}).
		WithSeverity(liberror.SeverityLow)
}

// OperationError creates a standardized operation failure error
func OperationError(module, operation string, cause error, context map[string]interface{}) *liberror.Error {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["module"] = module
	context["operation"] = operation

	return liberror.Wrap(cause, fmt.Sprintf("%s.%s operation failed", module, operation)).
		WithCode(liberror.CodeOperationFailed).
		WithOperation(operation).
		WithDetails(context)
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	if libErr, ok := err.(*liberror.Error); ok {
		if details := libErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				return mod == module
			}
		}
	}
	return false
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if libErr, ok := err.(*liberror.Error); ok {
		if details := libErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				if modStr, ok := mod.(string); ok {
					return modStr
				}
			}
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if libErr, ok := err.(*liberror.Error); ok {
		if details := libErr.Details(); details != nil {
			if op, exists := details["operation"]; exists {
				if opStr, ok := op.(string); ok {
					return opStr
				}
			}
		}
	}
	return ""
}
