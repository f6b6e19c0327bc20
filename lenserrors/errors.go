// Package lenserrors provides structured error types for schemalens.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - DocumentNotFoundError: the source schema document is missing at load time
//   - SchemaNotFoundError: a requested schema name is absent from the component mapping
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	detail, err := ex.Describe("Payment")
//	if err != nil {
//	    if errors.Is(err, lenserrors.ErrSchemaNotFound) {
//	        // Report a lookup failure; the process stays healthy
//	    }
//	}
package lenserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrDocumentNotFound indicates the source document was missing at load time.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrSchemaNotFound indicates a requested schema name is not in the component mapping.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// DocumentNotFoundError represents a missing source schema document.
// This is the only fatal failure in the engine: without the document
// there is nothing to serve.
type DocumentNotFoundError struct {
	// Path is the file path or source identifier that could not be read
	Path string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DocumentNotFoundError) Error() string {
	msg := "document not found"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DocumentNotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DocumentNotFoundError) Is(target error) bool {
	return target == ErrDocumentNotFound
}

// SchemaNotFoundError represents a lookup of a schema name that is absent
// from the component mapping. It is reported to the caller as a lookup
// failure and is never fatal to the process.
type SchemaNotFoundError struct {
	// Name is the schema name that was requested
	Name string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *SchemaNotFoundError) Error() string {
	msg := "schema not found"
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as SchemaNotFoundError has no underlying cause.
func (e *SchemaNotFoundError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *SchemaNotFoundError) Is(target error) bool {
	return target == ErrSchemaNotFound
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
