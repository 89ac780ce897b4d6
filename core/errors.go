package core

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	requiredText   = "this field is required"
	notIntegerText = "must be a whole number"
	notZeroText    = "cannot be zero"
	minOneText     = "must be at least 1"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Field + ": " + err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

// ParseError reports text that could not be read as an integer.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func NewParseError(field, value string, err error) error {
	return &ParseError{Field: field, Value: value, Err: err}
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("%s: %q %s", err.Field, err.Value, notIntegerText)
}

func (err *ParseError) Unwrap() error { return err.Err }

// DivisionByZeroError reports a zero divisor, e.g. a subject with no classes.
type DivisionByZeroError struct {
	Field string
}

func NewDivisionByZeroError(field string) error {
	return &DivisionByZeroError{Field: field}
}

func (err *DivisionByZeroError) Error() string {
	return err.Field + " " + notZeroText
}

// EmptyFieldError reports a required input left blank.
type EmptyFieldError struct {
	Field string
}

func NewEmptyFieldError(field string) error {
	return &EmptyFieldError{Field: field}
}

func (err *EmptyFieldError) Error() string {
	return err.Field + ": " + requiredText
}

// MinValueFieldError builds the field error reported when a count is below 1.
func MinValueFieldError(field string) FieldError {
	return FieldError{Field: field, Error: minOneText}
}

// FieldErrors flattens any input error into per-field messages.
// ok is false when err is not an input error.
func FieldErrors(err error) (flds []FieldError, ok bool) {
	switch origErr := errors.Cause(err).(type) {
	case *EmptyFieldError:
		return []FieldError{{Field: origErr.Field, Error: requiredText}}, true
	case *ParseError:
		return []FieldError{{Field: origErr.Field, Error: notIntegerText}}, true
	case *DivisionByZeroError:
		return []FieldError{{Field: origErr.Field, Error: notZeroText}}, true
	case *ValidationError:
		return origErr.Fields, true
	default:
		return nil, false
	}
}

// IsInputError reports whether err was caused by user input rather than by the app.
func IsInputError(err error) bool {
	_, ok := FieldErrors(err)
	return ok
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
