package uprotocol

import "errors"

// ErrUnsupportedDataVariant is returned when the bytes of a DataReference
// payload would have to be read.
var ErrUnsupportedDataVariant = errors.New("unsupported data variant: reference data cannot be materialized")

// SerializationError signals a buffer shape mismatch on parse or an
// out-of-range field on emit.
type SerializationError struct {
	Message string
	Err     error
}

// NewSerializationError creates a SerializationError with the given message.
func NewSerializationError(msg string) *SerializationError {
	return &SerializationError{Message: msg}
}

// Error implements the error interface.
func (e *SerializationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *SerializationError) Unwrap() error {
	return e.Err
}

// ValidationError rejects a malformed value.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}
