package wire

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/uprotocol/up-go/pkg/uprotocol"
)

// ErrAmbiguousData is returned when a payload carries both a value and a
// reference.
var ErrAmbiguousData = errors.New("payload carries both value and reference")

// Payload is the wire form of a UPayload.
//
// CBOR encoding:
//
//	{
//	  1: format,     // uint, absent for Unspecified
//	  2: value,      // bstr
//	  3: reference,  // {1: address, 2: length}
//	  4: length      // int
//	}
type Payload struct {
	Format    uprotocol.UPayloadFormat `cbor:"1,keyasint,omitempty"`
	Value     *[]byte                  `cbor:"2,keyasint,omitempty"`
	Reference *Reference               `cbor:"3,keyasint,omitempty"`
	Length    *int32                   `cbor:"4,keyasint,omitempty"`
}

// Reference is the wire form of DataReference. The address is carried
// as an opaque number.
type Reference struct {
	Address uint64 `cbor:"1,keyasint"`
	Length  int32  `cbor:"2,keyasint"`
}

// FromPayload converts p to its wire form. A nil p yields nil.
func FromPayload(p *uprotocol.UPayload) *Payload {
	if p == nil {
		return nil
	}
	w := &Payload{Format: p.Format}
	if p.Length != nil {
		n := *p.Length
		w.Length = &n
	}
	switch d := p.Data.(type) {
	case uprotocol.DataValue:
		v := nonNil(d)
		w.Value = &v
	case uprotocol.DataReference:
		w.Reference = &Reference{Address: d.Address, Length: d.Length}
	}
	return w
}

// ToPayload converts the wire form back to a UPayload.
func (w *Payload) ToPayload() (*uprotocol.UPayload, error) {
	if w == nil {
		return nil, nil
	}
	if w.Value != nil && w.Reference != nil {
		return nil, ErrAmbiguousData
	}
	if !w.Format.IsValid() {
		return nil, fmt.Errorf("invalid payload format: %d", w.Format)
	}

	p := &uprotocol.UPayload{Format: w.Format}
	if w.Length != nil {
		n := *w.Length
		p.Length = &n
	}
	switch {
	case w.Value != nil:
		p.Data = uprotocol.DataValue(bytes.Clone(*w.Value))
	case w.Reference != nil:
		p.Data = uprotocol.DataReference{Address: w.Reference.Address, Length: w.Reference.Length}
	}
	return p, nil
}

// EncodePayload encodes a UPayload to CBOR bytes.
func EncodePayload(p *uprotocol.UPayload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("invalid payload: nil")
	}
	return Marshal(FromPayload(p))
}

// DecodePayload decodes CBOR bytes into a UPayload.
func DecodePayload(data []byte) (*uprotocol.UPayload, error) {
	var w Payload
	if err := Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	p, err := w.ToPayload()
	if err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}
	return p, nil
}
