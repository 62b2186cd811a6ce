package driver

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/nacl-tools/internal/fuzzy"
)

// ErrorType represents error categories for the tools.
// These categories drive suggestion logic and exit-code mapping (see ExitCode).
type ErrorType string

const (
	ErrorTypeUnknownOption       ErrorType = "unknown_option"
	ErrorTypeMissingValue        ErrorType = "missing_value"
	ErrorTypeInvalidInputCount   ErrorType = "invalid_input_count"
	ErrorTypeMissingExecutable   ErrorType = "missing_executable"
	ErrorTypeUnsupportedPlatform ErrorType = "unsupported_platform"
	ErrorTypeInternal            ErrorType = "internal_error"
)

// Error is a typed tool error with optional suggestions.
type Error struct {
	Type        ErrorType
	Message     string
	Token       string // offending command-line token, if any
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *Error) Error() string {
	if len(e.Suggestions) == 0 {
		return e.Message
	}
	var b strings.Builder
	b.WriteString(e.Message)
	for _, s := range e.Suggestions {
		b.WriteString("\n  ")
		b.WriteString(s)
	}
	return b.String()
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e *Error) Unwrap() error { return e.Cause }

// NewError creates a new Error with the given type and message
func NewError(typ ErrorType, message string) *Error {
	return &Error{Type: typ, Message: message}
}

// WithToken records the offending token
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithSuggestion adds a suggestion to the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithCause adds an underlying cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// IsUsage reports whether the error was caused by how the tool was invoked.
func (e *Error) IsUsage() bool {
	switch e.Type {
	case ErrorTypeUnknownOption, ErrorTypeMissingValue, ErrorTypeInvalidInputCount:
		return true
	case ErrorTypeMissingExecutable, ErrorTypeUnsupportedPlatform, ErrorTypeInternal:
		return false
	}
	return false
}

// maxSuggestDistance bounds how far a typo may be from a known option.
const maxSuggestDistance = 2

func unknownOption(token string, known []string) *Error {
	err := NewError(ErrorTypeUnknownOption, fmt.Sprintf("Unrecognized option: %s", token)).
		WithToken(token)
	if best := fuzzy.FindBestOption(token, known, maxSuggestDistance); best != "" {
		_ = err.WithSuggestion(fmt.Sprintf("Did you mean '%s'?", best))
	}
	return err
}
