package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every *ValidationError and *AggregateError.
var ErrValidation = errors.New("validation failed")

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Key    string // Field name, dotted for nested fields (e.g. "student.stamina")
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %v)", e.Key, e.Reason, e.Value)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Is reports whether target is ErrValidation.
func (e *AggregateError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap exposes the individual failures to errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// Invalid builds a *ValidationError.
func Invalid(key, reason string, value any) *ValidationError {
	return &ValidationError{Key: key, Reason: reason, Value: value}
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
