package cloudevent

import (
	"fmt"

	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/cloudevents/sdk-go/v2/types"
	"github.com/google/uuid"
	"github.com/uprotocol/up-go/pkg/uprotocol"
	"github.com/uprotocol/up-go/pkg/uri/serializer"
	"github.com/uprotocol/up-go/pkg/uri/validator"
)

// ExtensionSink is the extension attribute holding the long form sink URI.
const ExtensionSink = "sink"

// NewEvent creates a CloudEvent for a message of type msgType sent by source.
// The event gets a random UUID as id.
func NewEvent(msgType uprotocol.UMessageType, source *uprotocol.UUri) (*event.Event, error) {
	ceType := msgType.CloudEventType()
	if ceType == "" {
		return nil, uprotocol.NewValidationError(fmt.Sprintf("Unsupported message type %s", msgType))
	}
	src, err := longForm(source)
	if err != nil {
		return nil, err
	}

	e := event.New()
	e.SetID(uuid.NewString())
	e.SetType(ceType)
	e.SetSource(src)
	return &e, nil
}

// WithSink sets the sink extension of e.
func WithSink(e *event.Event, sink *uprotocol.UUri) error {
	s, err := longForm(sink)
	if err != nil {
		return err
	}
	e.SetExtension(ExtensionSink, s)
	return nil
}

// WithPayload stores the payload data in e. The data content type is the
// MIME type of the payload format and is left unset for Unspecified.
// Reference payloads are rejected with uprotocol.ErrUnsupportedDataVariant.
func WithPayload(e *event.Event, p *uprotocol.UPayload) error {
	data, err := p.Bytes()
	if err != nil {
		return err
	}
	return e.SetData(p.Format.MIMEType(), data)
}

// SourceURI parses the event source back into a UUri.
func SourceURI(e *event.Event) *uprotocol.UUri {
	return serializer.FromLongString(e.Source())
}

// SinkURI returns the sink extension as a UUri, if present.
func SinkURI(e *event.Event) (*uprotocol.UUri, bool) {
	v, ok := e.Extensions()[ExtensionSink]
	if !ok {
		return nil, false
	}
	s, err := types.ToString(v)
	if err != nil {
		return nil, false
	}
	return serializer.FromLongString(s), true
}

// MessageType returns the uProtocol message type of e.
func MessageType(e *event.Event) uprotocol.UMessageType {
	return uprotocol.MessageTypeFromCloudEventType(e.Type())
}

// PayloadFromEvent returns the event data as a value payload. The format is
// derived from the data content type; events without one are Unspecified.
func PayloadFromEvent(e *event.Event) *uprotocol.UPayload {
	data := e.Data()
	length := int32(len(data))
	p := &uprotocol.UPayload{
		Data:   uprotocol.DataValue(data),
		Length: &length,
	}
	if ct := e.DataContentType(); ct != "" {
		p.Format = uprotocol.PayloadFormatFromMIMEType(ct)
	}
	return p
}

func longForm(u *uprotocol.UUri) (string, error) {
	if err := validator.Validate(u); err != nil {
		return "", err
	}
	s, err := serializer.LongURISerializer{}.Serialize(u)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", uprotocol.NewValidationError("Uri has no long form.")
	}
	return s, nil
}
