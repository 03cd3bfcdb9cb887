package uprotocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestAnyRoundTripThroughPayload(t *testing.T) {
	ts := &timestamppb.Timestamp{}
	a, err := anypb.New(ts)
	require.NoError(t, err)

	payload, err := PayloadFromAny(a)
	require.NoError(t, err)
	assert.Equal(t, PayloadFormatUnspecified, payload.Format)
	require.NotNil(t, payload.Length)

	encoded, err := proto.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, DataValue(encoded), payload.Data)
	assert.Equal(t, int32(len(encoded)), *payload.Length)

	back, err := payload.ToAny()
	require.NoError(t, err)
	assert.True(t, proto.Equal(a, back))

	var got timestamppb.Timestamp
	require.NoError(t, back.UnmarshalTo(&got))
	assert.True(t, proto.Equal(ts, &got))
}

func TestToAnyWithPayloadFormat(t *testing.T) {
	ts := timestamppb.Now()
	a, err := anypb.New(ts)
	require.NoError(t, err)
	data, err := proto.Marshal(a)
	require.NoError(t, err)

	tests := []struct {
		name    string
		format  UPayloadFormat
		succeed bool
	}{
		{"unspecified succeeds", PayloadFormatUnspecified, true},
		{"protobuf succeeds", PayloadFormatProtobuf, true},
		{"json fails", PayloadFormatJSON, false},
		{"SOME/IP fails", PayloadFormatSomeIP, false},
		{"SOME/IP TLV fails", PayloadFormatSomeIPTLV, false},
		{"raw fails", PayloadFormatRaw, false},
		{"text fails", PayloadFormatText, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := &UPayload{Format: tt.format, Data: DataValue(data)}
			got, err := payload.ToAny()
			if !tt.succeed {
				assert.EqualError(t, err, "UPayload has incompatible format")
				return
			}
			require.NoError(t, err)
			var out timestamppb.Timestamp
			require.NoError(t, got.UnmarshalTo(&out))
			assert.True(t, proto.Equal(ts, &out))
		})
	}
}

func TestToAnyFailsForEmptyData(t *testing.T) {
	payload := &UPayload{Format: PayloadFormatProtobuf, Data: DataValue{}}
	_, err := payload.ToAny()
	assert.EqualError(t, err, "UPayload does not contain any data")

	payload = &UPayload{Format: PayloadFormatProtobuf}
	_, err = payload.ToAny()
	assert.EqualError(t, err, "UPayload does not contain any data")
}

func TestToAnyFailsForGarbage(t *testing.T) {
	payload := &UPayload{Data: DataValue{0xff, 0xff, 0xff}}
	_, err := payload.ToAny()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPayload does not contain Any")
}

func TestReferenceDataIsNotDereferenced(t *testing.T) {
	payload := &UPayload{
		Format: PayloadFormatProtobuf,
		Data:   DataReference{Address: 0xdeadbeef, Length: 16},
		Length: Int32(16),
	}

	_, err := payload.Bytes()
	assert.ErrorIs(t, err, ErrUnsupportedDataVariant)

	_, err = payload.ToAny()
	assert.ErrorIs(t, err, ErrUnsupportedDataVariant)
}
