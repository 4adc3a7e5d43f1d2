package errors

import (
	"fmt"
)

// ParseError represents an options document parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures options document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// OptionError reports an option assignment the date box cannot accept,
// typically a value of the wrong kind for the named option.
type OptionError struct {
	Option string
	Value  any
	Err    error
}

// NewOptionError constructs an OptionError for the given option name.
func NewOptionError(option string, value any, err error) error {
	return &OptionError{Option: option, Value: value, Err: err}
}

func (e *OptionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Option != "" {
		return fmt.Sprintf("option error [%s]: cannot assign %T: %v", e.Option, e.Value, e.Err)
	}
	return fmt.Sprintf("option error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *OptionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
