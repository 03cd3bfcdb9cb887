package uprotocol

import "mime"

// UPayloadFormat describes how the payload data is encoded.
type UPayloadFormat uint32

const (
	PayloadFormatUnspecified UPayloadFormat = 0
	PayloadFormatProtobuf    UPayloadFormat = 1
	PayloadFormatJSON        UPayloadFormat = 2
	PayloadFormatSomeIP      UPayloadFormat = 3
	PayloadFormatSomeIPTLV   UPayloadFormat = 4
	PayloadFormatRaw         UPayloadFormat = 5
	PayloadFormatText        UPayloadFormat = 6
)

// MIME types of the payload formats.
const (
	MIMETypeJSON      = "application/json"
	MIMETypeProtobuf  = "application/x-protobuf"
	MIMETypeRaw       = "application/octet-stream"
	MIMETypeSomeIP    = "application/x-someip"
	MIMETypeSomeIPTLV = "application/x-someip_tlv"
	MIMETypeText      = "text/plain"
)

// String returns the format name.
func (f UPayloadFormat) String() string {
	switch f {
	case PayloadFormatUnspecified:
		return "UNSPECIFIED"
	case PayloadFormatProtobuf:
		return "PROTOBUF"
	case PayloadFormatJSON:
		return "JSON"
	case PayloadFormatSomeIP:
		return "SOMEIP"
	case PayloadFormatSomeIPTLV:
		return "SOMEIP_TLV"
	case PayloadFormatRaw:
		return "RAW"
	case PayloadFormatText:
		return "TEXT"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if f is a known format.
func (f UPayloadFormat) IsValid() bool {
	return f <= PayloadFormatText
}

// MIMEType returns the MIME type of the format, or "" for Unspecified.
func (f UPayloadFormat) MIMEType() string {
	switch f {
	case PayloadFormatJSON:
		return MIMETypeJSON
	case PayloadFormatProtobuf:
		return MIMETypeProtobuf
	case PayloadFormatRaw:
		return MIMETypeRaw
	case PayloadFormatSomeIP:
		return MIMETypeSomeIP
	case PayloadFormatSomeIPTLV:
		return MIMETypeSomeIPTLV
	case PayloadFormatText:
		return MIMETypeText
	default:
		return ""
	}
}

// PayloadFormatFromMIMEType maps a MIME type to a payload format.
// Parameters such as charset are ignored. Unknown, empty or malformed MIME
// types map to PayloadFormatProtobuf.
func PayloadFormatFromMIMEType(mimeType string) UPayloadFormat {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return PayloadFormatProtobuf
	}
	switch mediaType {
	case MIMETypeJSON:
		return PayloadFormatJSON
	case MIMETypeProtobuf:
		return PayloadFormatProtobuf
	case MIMETypeRaw:
		return PayloadFormatRaw
	case MIMETypeSomeIP:
		return PayloadFormatSomeIP
	case MIMETypeSomeIPTLV:
		return PayloadFormatSomeIPTLV
	case MIMETypeText:
		return PayloadFormatText
	default:
		return PayloadFormatProtobuf
	}
}
