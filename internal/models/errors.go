// Package models defines the data structures for the loan approval simulator.
package models

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrNotANumber = errors.New("not a number")
	ErrOutOfRange = errors.New("value out of range")
)

// ErrorKind separates values that failed to parse from values that parsed
// but fall outside the allowed domain.
type ErrorKind string

const (
	ErrorKindParse ErrorKind = "parse"
	ErrorKindRange ErrorKind = "range"
)

// FieldError is a validation failure scoped to one form field.
type FieldError struct {
	Field   Field     `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewParseError creates a FieldError for a value that is not numeric.
func NewParseError(field Field) *FieldError {
	return &FieldError{Field: field, Kind: ErrorKindParse, Message: ErrNotANumber.Error()}
}

// NewRangeError creates a FieldError for a numeric value outside its domain.
func NewRangeError(field Field, message string) *FieldError {
	return &FieldError{Field: field, Kind: ErrorKindRange, Message: message}
}

func (e *FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// Unwrap exposes the sentinel for errors.Is.
func (e *FieldError) Unwrap() error {
	if e.Kind == ErrorKindParse {
		return ErrNotANumber
	}
	return ErrOutOfRange
}

// FieldErrors maps each failing field to its error. An empty map means the
// input was valid.
type FieldErrors map[Field]*FieldError

// Add records an error for its field, replacing any earlier one.
func (fe FieldErrors) Add(err *FieldError) {
	fe[err.Field] = err
}

// Has reports whether the field failed validation.
func (fe FieldErrors) Has(field Field) bool {
	_, ok := fe[field]
	return ok
}

// Messages returns the short per-field messages keyed by field name.
func (fe FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(fe))
	for field, err := range fe {
		out[string(field)] = err.Message
	}
	return out
}

// FieldNames returns the failing fields in form order.
func (fe FieldErrors) FieldNames() []string {
	names := make([]string, 0, len(fe))
	for _, field := range Fields() {
		if fe.Has(field) {
			names = append(names, string(field))
		}
	}
	return names
}

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range Fields() {
		if err, ok := fe[field]; ok {
			parts = append(parts, err.Error())
		}
	}
	return strings.Join(parts, "; ")
}
