package uprotocol

// UMessageType classifies a uProtocol message.
type UMessageType uint8

const (
	MessageTypeUnspecified UMessageType = 0
	MessageTypePublish     UMessageType = 1
	MessageTypeRequest     UMessageType = 2
	MessageTypeResponse    UMessageType = 3
)

// String returns the message type name.
func (t UMessageType) String() string {
	switch t {
	case MessageTypePublish:
		return "PUBLISH"
	case MessageTypeRequest:
		return "REQUEST"
	case MessageTypeResponse:
		return "RESPONSE"
	default:
		return "UNSPECIFIED"
	}
}

// CloudEventType returns the CloudEvent "type" attribute of the message type.
func (t UMessageType) CloudEventType() string {
	switch t {
	case MessageTypePublish:
		return "pub.v1"
	case MessageTypeRequest:
		return "req.v1"
	case MessageTypeResponse:
		return "res.v1"
	default:
		return ""
	}
}

// MessageTypeFromCloudEventType maps a CloudEvent type attribute back to the
// message type. Unknown types map to MessageTypeUnspecified.
func MessageTypeFromCloudEventType(ceType string) UMessageType {
	switch ceType {
	case "pub.v1":
		return MessageTypePublish
	case "req.v1":
		return MessageTypeRequest
	case "res.v1":
		return MessageTypeResponse
	default:
		return MessageTypeUnspecified
	}
}
