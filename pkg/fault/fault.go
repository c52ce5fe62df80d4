// Package fault holds the error types raised by the transaction codec.
//
// Every error is a plain value type so callers can match on the class of a
// failure with errors.As, even after it has been wrapped with more context.
package fault

import (
	"errors"
	"fmt"
)

// InvalidArgumentError is returned when a value handed to an encoder is
// outside of its contract, e.g. an odd-length hex string or a number which
// does not fit the requested width.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument [%s]: %s", e.Argument, e.Reason)
}

// InvalidArgument creates a new InvalidArgumentError with a formatted reason.
func InvalidArgument(argument string, format string, args ...interface{}) error {
	return InvalidArgumentError{
		Argument: argument,
		Reason:   fmt.Sprintf(format, args...),
	}
}

// UnsupportedTypeError is returned when a transaction type tag is not one of
// the known transaction types.
type UnsupportedTypeError struct {
	Type uint8
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported transaction type [0x%02x]", e.Type)
}

// TypeMismatchError is returned when a type specific serializer is invoked
// for a transaction of another type.
type TypeMismatchError struct {
	Expected uint8
	Actual   uint8
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf(
		"transaction type mismatch; expected [0x%02x], actual [0x%02x]",
		e.Expected,
		e.Actual,
	)
}

// SizeExceededError is returned when a field is longer than the format
// allows.
type SizeExceededError struct {
	Field string
	Size  int
	Limit int
}

func (e SizeExceededError) Error() string {
	return fmt.Sprintf(
		"[%s] size [%d] exceeds maximum of [%d] bytes",
		e.Field,
		e.Size,
		e.Limit,
	)
}

// IsInvalidArgument checks if the error is caused by an invalid argument.
func IsInvalidArgument(err error) bool {
	var target InvalidArgumentError
	return errors.As(err, &target)
}

// IsUnsupportedFormat checks if the error is caused by an unknown transaction
// type or by a type specific serializer called with a mismatched type.
func IsUnsupportedFormat(err error) bool {
	var unsupported UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return true
	}

	var mismatch TypeMismatchError
	return errors.As(err, &mismatch)
}

// IsSizeExceeded checks if the error is caused by an oversized field.
func IsSizeExceeded(err error) bool {
	var target SizeExceededError
	return errors.As(err, &target)
}
