package uprotocol

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// Data is the content of a UPayload. It is a sealed sum type: the only
// implementations are DataValue and DataReference.
type Data interface {
	isData()
}

// DataValue holds the payload bytes inline.
type DataValue []byte

// DataReference points into memory managed outside this process' Go heap.
// It is carried through encodings but never dereferenced.
type DataReference struct {
	Address uint64
	Length  int32
}

func (DataValue) isData()     {}
func (DataReference) isData() {}

// UPayload is typed opaque data exchanged between uEntities.
type UPayload struct {
	Format UPayloadFormat
	Data   Data
	Length *int32
}

// Bytes returns the inline payload bytes. It returns nil for a payload
// without data and ErrUnsupportedDataVariant for reference data.
func (p *UPayload) Bytes() ([]byte, error) {
	if p == nil || p.Data == nil {
		return nil, nil
	}
	switch d := p.Data.(type) {
	case DataValue:
		return d, nil
	case DataReference:
		return nil, ErrUnsupportedDataVariant
	default:
		return nil, fmt.Errorf("unknown data variant %T", d)
	}
}

// PayloadFromAny encodes a protobuf Any into a UPayload. The resulting
// payload has PayloadFormatUnspecified; callers may promote it to
// PayloadFormatProtobuf.
func PayloadFromAny(a *anypb.Any) (*UPayload, error) {
	buf, err := proto.Marshal(a)
	if err != nil {
		return nil, &SerializationError{Message: fmt.Sprintf("failed to encode Any: %v", err), Err: err}
	}
	if len(buf) > math.MaxInt32 {
		return nil, NewSerializationError("Any object does not fit into UPayload")
	}
	return &UPayload{
		Format: PayloadFormatUnspecified,
		Data:   DataValue(buf),
		Length: Int32(int32(len(buf))),
	}, nil
}

// ToAny decodes the payload data as a protobuf Any. Only payloads with
// format Unspecified or Protobuf carrying non-empty inline data qualify.
func (p *UPayload) ToAny() (*anypb.Any, error) {
	if p == nil {
		return nil, NewSerializationError("UPayload does not contain any data")
	}
	switch p.Format {
	case PayloadFormatUnspecified, PayloadFormatProtobuf:
	default:
		return nil, NewSerializationError("UPayload has incompatible format")
	}

	data, err := p.Bytes()
	if err != nil {
		return nil, &SerializationError{Message: err.Error(), Err: err}
	}
	if len(data) == 0 {
		return nil, NewSerializationError("UPayload does not contain any data")
	}

	var a anypb.Any
	if err := proto.Unmarshal(data, &a); err != nil {
		return nil, &SerializationError{Message: fmt.Sprintf("UPayload does not contain Any: %v", err), Err: err}
	}
	return &a, nil
}
