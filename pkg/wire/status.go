package wire

import (
	"fmt"

	"github.com/uprotocol/up-go/pkg/uprotocol"
	"google.golang.org/protobuf/types/known/anypb"
)

// Status is the wire form of a UStatus.
//
// CBOR encoding:
//
//	{
//	  1: code,     // uint: 0=OK .. 16=UNAUTHENTICATED
//	  2: message,  // tstr
//	  3: details   // [{1: type url, 2: value}]
//	}
type Status struct {
	Code    uprotocol.UCode `cbor:"1,keyasint"`
	Message string          `cbor:"2,keyasint,omitempty"`
	Details []Detail        `cbor:"3,keyasint,omitempty"`
}

// Detail is the wire form of a status detail Any.
type Detail struct {
	TypeURL string `cbor:"1,keyasint"`
	Value   []byte `cbor:"2,keyasint,omitempty"`
}

// FromStatus converts s to its wire form. A nil s yields nil.
func FromStatus(s *uprotocol.UStatus) *Status {
	if s == nil {
		return nil
	}
	w := &Status{Code: s.Code, Message: s.Message}
	for _, d := range s.Details {
		w.Details = append(w.Details, Detail{TypeURL: d.GetTypeUrl(), Value: d.GetValue()})
	}
	return w
}

// ToStatus converts the wire form back to a UStatus.
func (w *Status) ToStatus() (*uprotocol.UStatus, error) {
	if w == nil {
		return nil, nil
	}
	if !w.Code.IsValid() {
		return nil, fmt.Errorf("invalid status code: %d", w.Code)
	}
	s := &uprotocol.UStatus{Code: w.Code, Message: w.Message}
	for _, d := range w.Details {
		s.Details = append(s.Details, &anypb.Any{TypeUrl: d.TypeURL, Value: d.Value})
	}
	return s, nil
}

// EncodeStatus encodes a UStatus to CBOR bytes.
func EncodeStatus(s *uprotocol.UStatus) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("invalid status: nil")
	}
	return Marshal(FromStatus(s))
}

// DecodeStatus decodes CBOR bytes into a UStatus.
func DecodeStatus(data []byte) (*uprotocol.UStatus, error) {
	var w Status
	if err := Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode status: %w", err)
	}
	return w.ToStatus()
}
