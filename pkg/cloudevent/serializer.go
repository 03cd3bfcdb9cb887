package cloudevent

import (
	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/uprotocol/up-go/pkg/uprotocol"
)

// Serializer converts CloudEvents to and from bytes.
type Serializer interface {
	Serialize(e *event.Event) ([]byte, error)
	Deserialize(b []byte) (*event.Event, error)
}

// JSONSerializer encodes events in the CloudEvents JSON format.
type JSONSerializer struct{}

var _ Serializer = JSONSerializer{}

// Serialize validates the event and encodes it as JSON.
func (JSONSerializer) Serialize(e *event.Event) ([]byte, error) {
	if e == nil {
		return nil, uprotocol.NewSerializationError("CloudEvent is nil")
	}
	if err := e.Validate(); err != nil {
		return nil, wrapSerializationError(err)
	}
	b, err := e.MarshalJSON()
	if err != nil {
		return nil, wrapSerializationError(err)
	}
	return b, nil
}

// Deserialize decodes a JSON encoded event.
func (JSONSerializer) Deserialize(b []byte) (*event.Event, error) {
	e := event.New()
	if err := e.UnmarshalJSON(b); err != nil {
		return nil, wrapSerializationError(err)
	}
	return &e, nil
}

func wrapSerializationError(err error) *uprotocol.SerializationError {
	return &uprotocol.SerializationError{Message: err.Error(), Err: err}
}
