package rpc

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a MapperError.
type ErrorKind uint8

const (
	// KindUnexpectedError is a transport-level failure reported by the client.
	KindUnexpectedError ErrorKind = iota
	// KindInvalidPayload is a failure to decode the payload into the
	// expected type.
	KindInvalidPayload
	// KindUnknownType is a payload that is not an Any at all.
	KindUnknownType
	// KindProtobufError is a protobuf framing or encoding failure.
	KindProtobufError
)

// String returns the human readable kind, as used in error messages.
func (k ErrorKind) String() string {
	switch k {
	case KindUnexpectedError:
		return "Unexpected error"
	case KindInvalidPayload:
		return "Invalid payload"
	case KindUnknownType:
		return "Unknown type"
	case KindProtobufError:
		return "Protobuf error"
	default:
		return "Unknown error"
	}
}

// MapperError is returned by all mapper operations.
type MapperError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *MapperError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is a MapperError of the same kind, so that
// errors.Is(err, &MapperError{Kind: KindUnknownType}) works.
func (e *MapperError) Is(target error) bool {
	t, ok := target.(*MapperError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *MapperError {
	return &MapperError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// UnexpectedError returns a MapperError of kind KindUnexpectedError.
func UnexpectedError(msg string) *MapperError {
	return &MapperError{Kind: KindUnexpectedError, Message: msg}
}

// InvalidPayload returns a MapperError of kind KindInvalidPayload.
func InvalidPayload(msg string) *MapperError {
	return &MapperError{Kind: KindInvalidPayload, Message: msg}
}

// asMapperError passes MapperErrors through and wraps everything else as
// an unexpected error.
func asMapperError(err error) *MapperError {
	var merr *MapperError
	if errors.As(err, &merr) {
		return merr
	}
	return UnexpectedError(err.Error())
}
