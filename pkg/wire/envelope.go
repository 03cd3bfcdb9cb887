package wire

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/uprotocol/up-go/pkg/uprotocol"
	"github.com/uprotocol/up-go/pkg/uri/validator"
)

// Envelope is a uProtocol message as carried on the wire.
//
// CBOR encoding:
//
//	{
//	  1: id,       // bstr, 16-byte UUID
//	  2: type,     // uint: 1=Publish, 2=Request, 3=Response
//	  3: source,   // uri map
//	  4: sink,     // uri map, absent for broadcasts
//	  5: payload,  // payload map
//	  6: status    // status map, responses only
//	}
type Envelope struct {
	ID      uuid.UUID              `cbor:"1,keyasint"`
	Type    uprotocol.UMessageType `cbor:"2,keyasint"`
	Source  *URI                   `cbor:"3,keyasint"`
	Sink    *URI                   `cbor:"4,keyasint,omitempty"`
	Payload *Payload               `cbor:"5,keyasint,omitempty"`
	Status  *Status                `cbor:"6,keyasint,omitempty"`
}

// NewEnvelope creates an envelope with a fresh random id. sink and payload
// may be nil.
func NewEnvelope(msgType uprotocol.UMessageType, source, sink *uprotocol.UUri, payload *uprotocol.UPayload) *Envelope {
	return &Envelope{
		ID:      uuid.New(),
		Type:    msgType,
		Source:  FromUUri(source),
		Sink:    FromUUri(sink),
		Payload: FromPayload(payload),
	}
}

// Validate checks the envelope header.
//
// Requests need an RPC method sink. Responses are sent from the method to
// the caller's rpc.response resource.
func (e *Envelope) Validate() error {
	if e.ID == uuid.Nil {
		return fmt.Errorf("missing message id")
	}
	if e.Source == nil {
		return fmt.Errorf("missing source")
	}
	switch e.Type {
	case uprotocol.MessageTypePublish:
		return validator.Validate(e.Source.ToUUri())
	case uprotocol.MessageTypeRequest:
		if e.Sink == nil {
			return fmt.Errorf("request without sink")
		}
		return validator.ValidateRPCMethod(e.Sink.ToUUri())
	case uprotocol.MessageTypeResponse:
		if e.Sink == nil {
			return fmt.Errorf("response without sink")
		}
		if err := validator.ValidateRPCMethod(e.Source.ToUUri()); err != nil {
			return err
		}
		return validator.ValidateRPCResponse(e.Sink.ToUUri())
	default:
		return fmt.Errorf("invalid message type: %d", e.Type)
	}
}

// EncodeEnvelope validates and encodes an envelope to CBOR bytes.
func EncodeEnvelope(e *Envelope) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid envelope: %w", err)
	}
	return Marshal(e)
}

// DecodeEnvelope decodes and validates CBOR bytes into an envelope.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	var e Envelope
	if err := Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid envelope: %w", err)
	}
	return &e, nil
}
