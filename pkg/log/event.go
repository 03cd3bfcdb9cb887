package log

import (
	"strings"
	"time"
)

// MaxDataBytes is the number of binary bytes kept in a ConversionEvent.
const MaxDataBytes = 256

// Event represents a single traced operation.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups events of one tool run (UUID).
	SessionID string `cbor:"2,keyasint"`

	Direction Direction `cbor:"3,keyasint"`

	// Form is the URI representation being produced or consumed.
	Form Form `cbor:"4,keyasint"`

	Category Category `cbor:"5,keyasint"`

	// Type-specific payload (one of these will be set).
	Conversion *ConversionEvent `cbor:"6,keyasint,omitempty"`
	Validation *ValidationEvent `cbor:"7,keyasint,omitempty"`
	Error      *ErrorEventData  `cbor:"8,keyasint,omitempty"`
}

// Direction indicates whether a value was encoded or decoded.
type Direction uint8

const (
	// DirectionEncode turns a UUri or payload into its external form.
	DirectionEncode Direction = 0
	// DirectionDecode parses an external form.
	DirectionDecode Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionEncode:
		return "ENCODE"
	case DirectionDecode:
		return "DECODE"
	default:
		return "UNKNOWN"
	}
}

// Form is the external representation of a value.
type Form uint8

const (
	FormLong       Form = 0
	FormMicro      Form = 1
	FormWire       Form = 2
	FormCloudEvent Form = 3
	FormAny        Form = 4
)

// String returns the form name.
func (f Form) String() string {
	switch f {
	case FormLong:
		return "LONG"
	case FormMicro:
		return "MICRO"
	case FormWire:
		return "WIRE"
	case FormCloudEvent:
		return "CLOUDEVENT"
	case FormAny:
		return "ANY"
	default:
		return "UNKNOWN"
	}
}

// ParseForm returns the form with the given name, case-insensitively.
func ParseForm(s string) (Form, bool) {
	for f := FormLong; f <= FormAny; f++ {
		if strings.EqualFold(f.String(), s) {
			return f, true
		}
	}
	return 0, false
}

// Category classifies the event type.
type Category uint8

const (
	CategoryConversion Category = 0
	CategoryValidation Category = 1
	CategoryError      Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryConversion:
		return "CONVERSION"
	case CategoryValidation:
		return "VALIDATION"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ConversionEvent captures both sides of a successful conversion.
type ConversionEvent struct {
	// Long is the long form of the URI, if known.
	Long string `cbor:"1,keyasint,omitempty"`

	// Data is the binary side (micro URI or CBOR), possibly truncated.
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Size is the full length of the binary side.
	Size int `cbor:"3,keyasint"`

	Truncated bool `cbor:"4,keyasint,omitempty"`

	// Duration of the conversion, stored as nanoseconds.
	Duration *time.Duration `cbor:"5,keyasint,omitempty"`
}

// ValidationEvent records the validator predicates for a URI.
type ValidationEvent struct {
	// URI is the long form of the validated URI.
	URI string `cbor:"1,keyasint"`

	LongForm    bool `cbor:"2,keyasint,omitempty"`
	MicroForm   bool `cbor:"3,keyasint,omitempty"`
	Resolved    bool `cbor:"4,keyasint,omitempty"`
	RPCMethod   bool `cbor:"5,keyasint,omitempty"`
	RPCResponse bool `cbor:"6,keyasint,omitempty"`
}

// ErrorEventData captures a failed conversion.
type ErrorEventData struct {
	Message string `cbor:"1,keyasint"`

	// Input is the offending input, possibly truncated.
	Input []byte `cbor:"2,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}

// NewConversion returns a conversion payload for long and data, keeping at
// most MaxDataBytes of data.
func NewConversion(long string, data []byte) *ConversionEvent {
	c := &ConversionEvent{Long: long, Size: len(data)}
	c.Data, c.Truncated = truncate(data)
	return c
}

// NewError returns an error payload for err, keeping at most MaxDataBytes of
// the input.
func NewError(err error, input []byte, context string) *ErrorEventData {
	in, _ := truncate(input)
	return &ErrorEventData{Message: err.Error(), Input: in, Context: context}
}

func truncate(data []byte) ([]byte, bool) {
	if len(data) > MaxDataBytes {
		return append([]byte(nil), data[:MaxDataBytes]...), true
	}
	if len(data) == 0 {
		return nil, false
	}
	return append([]byte(nil), data...), false
}
