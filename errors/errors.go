// Package errors provides standardized error handling patterns for oimkit
// components. It includes error classification, standard error variables, and
// helper functions for consistent error wrapping across the pipeline.
package errors

import (
	"errors"
	"fmt"
)

// Class represents the classification of errors for handling purposes
type Class int

const (
	// ClassRecoverable represents per-record errors the caller may skip
	ClassRecoverable Class = iota
	// ClassInvalid represents errors due to invalid input or configuration
	ClassInvalid
	// ClassFatal represents unrecoverable errors that should stop the run
	ClassFatal
)

// String returns the string representation of Class
func (c Class) String() string {
	switch c {
	case ClassRecoverable:
		return "recoverable"
	case ClassInvalid:
		return "invalid"
	case ClassFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Record processing errors
	ErrInvalidRecord = errors.New("record cannot produce a sheet")
	ErrMissingLabel  = errors.New("label is required and must be non-empty")

	// Lookup errors
	ErrUnknownCategory = errors.New("unknown lookup category")

	// Document and schema errors
	ErrMalformedInput   = errors.New("input could not be parsed")
	ErrResourceNotFound = errors.New("referenced file does not exist")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ClassifiedError wraps an error with its classification and origin.
type ClassifiedError struct {
	Class     Class
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// RecordError reports that a single source record could not be converted.
// It carries the record's position in the input and the offending value so
// the caller can decide whether to skip the record or abort the batch.
type RecordError struct {
	Index int    // zero-based position in the input sequence
	Field string // source field that caused the failure
	Value string // offending value, empty when the field was absent
	Err   error
}

// Error implements the error interface
func (re *RecordError) Error() string {
	if re.Value == "" {
		return fmt.Sprintf("record %d: field %q: %v", re.Index, re.Field, re.Err)
	}
	return fmt.Sprintf("record %d: field %q=%q: %v", re.Index, re.Field, re.Value, re.Err)
}

// Unwrap returns the underlying error
func (re *RecordError) Unwrap() error {
	return re.Err
}

// NewRecordError creates a RecordError wrapping ErrInvalidRecord.
func NewRecordError(index int, field, value string, err error) *RecordError {
	if err == nil {
		err = ErrInvalidRecord
	}
	return &RecordError{Index: index, Field: field, Value: value, Err: err}
}

// IsRecoverable checks if an error is a per-record condition the caller may
// skip without aborting the batch.
func IsRecoverable(err error) bool {
	if err == nil {
		return false
	}

	var re *RecordError
	if errors.As(err, &re) {
		return true
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ClassRecoverable
	}

	return errors.Is(err, ErrInvalidRecord) || errors.Is(err, ErrMissingLabel)
}

// IsFatal checks if an error should abort the enclosing operation
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ClassFatal
	}

	return errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrResourceNotFound) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig)
}

// Classify returns the error class for an error
func Classify(err error) Class {
	if IsRecoverable(err) {
		return ClassRecoverable
	}
	if IsFatal(err) {
		return ClassFatal
	}
	return ClassInvalid
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid input with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return &ClassifiedError{
		Class:     ClassInvalid,
		Err:       wrapped,
		Message:   wrapped.Error(),
		Component: component,
		Operation: method,
	}
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return &ClassifiedError{
		Class:     ClassFatal,
		Err:       wrapped,
		Message:   wrapped.Error(),
		Component: component,
		Operation: method,
	}
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers do not need to import both this package and the
// standard library errors package.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// New returns an error that formats as the given text.
func New(text string) error { return errors.New(text) }
