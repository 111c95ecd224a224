// Package errors provides standardized error types and helpers for the interchange codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion and serialization core.
var (
	// ErrIncompatibleTypes indicates a conversion between two types that is never valid.
	ErrIncompatibleTypes = errors.New("incompatible types")
	// ErrFormat indicates a string failed to parse against the expected grammar.
	ErrFormat = errors.New("format error")
	// ErrOverflow indicates a numeric value outside the representable domain of the destination.
	ErrOverflow = errors.New("overflow")
	// ErrUnknownType indicates an operation required a concrete type but was given UNKNOWN.
	ErrUnknownType = errors.New("unknown type")
	// ErrUnsupported indicates an unsupported operation or format.
	ErrUnsupported = errors.New("unsupported")
	// ErrInvalidValue indicates a variable value flagged as not valid was accessed.
	ErrInvalidValue = errors.New("variable value is not valid")
)

// IncompatibleTypesError reports a conversion between two types that is never valid,
// such as array to scalar or two unrelated kinds through the strict conversion matrix.
type IncompatibleTypesError struct {
	From string // Name of the source type
	To   string // Name of the destination type
}

func (e *IncompatibleTypesError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s: the types are incompatible", e.From, e.To)
}

func (e *IncompatibleTypesError) Unwrap() error {
	return ErrIncompatibleTypes
}

// NewIncompatibleTypes builds an IncompatibleTypesError from type names.
func NewIncompatibleTypes(from, to string) error {
	return &IncompatibleTypesError{From: from, To: to}
}

// FormatError reports a string that failed to parse against an expected grammar.
type FormatError struct {
	Expected string // What the input was expected to be (e.g. "integer", "array bounds")
	Input    string // The offending input
}

func (e *FormatError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Expected)
	}
	return fmt.Sprintf("cannot parse input as %s", e.Expected)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// NewFormat builds a FormatError for the given input and expected grammar.
func NewFormat(expected, input string) error {
	return &FormatError{Expected: expected, Input: input}
}

// OverflowError reports a numeric value outside the representable domain of the
// destination type, such as a real outside the 64-bit integer range.
type OverflowError struct {
	Value  string // String form of the offending value
	Target string // Name of the destination type
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("value %s is outside the range of %s", e.Value, e.Target)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

// NewOverflow builds an OverflowError for the given value and destination type.
func NewOverflow(value, target string) error {
	return &OverflowError{Value: value, Target: target}
}

// UnknownTypeError reports an operation that was asked to act on the UNKNOWN
// type where a concrete type was required.
type UnknownTypeError struct {
	Operation string // Operation that required a concrete type
}

func (e *UnknownTypeError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("cannot %s: a concrete variable type is required", e.Operation)
	}
	return "a concrete variable type is required"
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// NewUnknownType builds an UnknownTypeError for the named operation.
func NewUnknownType(operation string) error {
	return &UnknownTypeError{Operation: operation}
}

// NewInvalidValue wraps ErrInvalidValue with a message describing the access.
func NewInvalidValue(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidValue)
}

// UnsupportedError reports an unsupported feature or operation.
type UnsupportedError struct {
	Feature string // Feature or operation that is unsupported
	Reason  string // Why it is not supported
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// NewUnsupported builds an UnsupportedError for the named feature.
func NewUnsupported(feature, reason string) error {
	return &UnsupportedError{Feature: feature, Reason: reason}
}
