package uprotocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUriIsEmpty(t *testing.T) {
	var nilURI *UUri
	assert.True(t, nilURI.IsEmpty())
	assert.True(t, (&UUri{}).IsEmpty())
	assert.True(t, (&UUri{Authority: &UAuthority{}, Entity: &UEntity{}, Resource: &UResource{}}).IsEmpty())
	assert.False(t, (&UUri{Entity: &UEntity{Name: "body.access"}}).IsEmpty())
	assert.False(t, (&UUri{Authority: NewRemoteName("vcu.vin")}).IsEmpty())
}

func TestEntityIDFitsMicroURI(t *testing.T) {
	_, err := (&UEntity{Name: "x"}).IDFitsMicroURI()
	require.Error(t, err)

	fits, err := (&UEntity{ID: Uint32(0xffff)}).IDFitsMicroURI()
	require.NoError(t, err)
	assert.True(t, fits)

	fits, err = (&UEntity{ID: Uint32(0x10000)}).IDFitsMicroURI()
	require.NoError(t, err)
	assert.False(t, fits)
}

func TestEntityVersionFitsMicroURI(t *testing.T) {
	assert.True(t, (&UEntity{}).VersionFitsMicroURI())
	assert.True(t, (&UEntity{VersionMajor: Uint32(0xff)}).VersionFitsMicroURI())
	assert.False(t, (&UEntity{VersionMajor: Uint32(0x100)}).VersionFitsMicroURI())
}

func TestResourceIDFitsMicroURI(t *testing.T) {
	_, err := (&UResource{Name: "door"}).IDFitsMicroURI()
	require.Error(t, err)

	fits, err := (&UResource{ID: Uint32(19999)}).IDFitsMicroURI()
	require.NoError(t, err)
	assert.True(t, fits)

	fits, err = (&UResource{ID: Uint32(0x10000)}).IDFitsMicroURI()
	require.NoError(t, err)
	assert.False(t, fits)
}

func TestParseResource(t *testing.T) {
	tests := []struct {
		in   string
		want UResource
	}{
		{"door", UResource{Name: "door"}},
		{"door.front_left", UResource{Name: "door", Instance: "front_left"}},
		{"door.front_left#Door", UResource{Name: "door", Instance: "front_left", Message: "Door"}},
		{"door#Door", UResource{Name: "door", Message: "Door"}},
		{"rpc.response", UResource{Name: "rpc", Instance: "response"}},
		{"", UResource{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, &tt.want, ParseResource(tt.in))
		})
	}
}

func TestUUriClone(t *testing.T) {
	u := &UUri{
		Authority: NewRemoteID([]byte{1, 2}),
		Entity:    &UEntity{Name: "body.access", ID: Uint32(1), VersionMajor: Uint32(2)},
		Resource:  &UResource{Name: "door", ID: Uint32(3)},
	}
	c := u.Clone()
	assert.Equal(t, u, c)

	*c.Entity.ID = 5
	assert.Equal(t, uint32(1), *u.Entity.ID)
}

func TestPayloadFormatMIMEType(t *testing.T) {
	tests := []struct {
		format UPayloadFormat
		mime   string
	}{
		{PayloadFormatJSON, "application/json"},
		{PayloadFormatProtobuf, "application/x-protobuf"},
		{PayloadFormatRaw, "application/octet-stream"},
		{PayloadFormatSomeIP, "application/x-someip"},
		{PayloadFormatSomeIPTLV, "application/x-someip_tlv"},
		{PayloadFormatText, "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			assert.Equal(t, tt.mime, tt.format.MIMEType())
			assert.Equal(t, tt.format, PayloadFormatFromMIMEType(tt.mime))
		})
	}

	assert.Equal(t, "", PayloadFormatUnspecified.MIMEType())
	assert.Equal(t, PayloadFormatText, PayloadFormatFromMIMEType("text/plain; charset=utf-8"))
	assert.Equal(t, PayloadFormatProtobuf, PayloadFormatFromMIMEType(""))
	assert.Equal(t, PayloadFormatProtobuf, PayloadFormatFromMIMEType("image/png"))
}
