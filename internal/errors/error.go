package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime    Category = "runtime"
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"
	CategoryCLI        Category = "cli"
)

// MarkupError is a structured error with a code and an optional suggestion.
type MarkupError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *MarkupError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *MarkupError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *MarkupError) WithSuggestion(s string) *MarkupError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation.
func (e *MarkupError) WithDetail(d string) *MarkupError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *MarkupError) Wrap(err error) *MarkupError {
	e.Wrapped = err
	return e
}

// New creates a MarkupError from a registered error code.
func New(code string) *MarkupError {
	template, ok := registry[code]
	if !ok {
		return &MarkupError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &MarkupError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new MarkupError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *MarkupError {
	return &MarkupError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// As finds the first MarkupError in err's tree.
func As(err error) (*MarkupError, bool) {
	var me *MarkupError
	if stderrors.As(err, &me) {
		return me, true
	}
	return nil, false
}
