package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uprotocol/up-go/pkg/uprotocol"
	"github.com/uprotocol/up-go/pkg/uri/validator"
)

func TestBuildResolvedLocal(t *testing.T) {
	long := "/body.access/1/door.front_left#Door"
	micro := []byte{0x01, 0x00, 0x4e, 0x1f, 0x75, 0x2f, 0x01, 0x00}

	u, err := BuildResolved(long, micro)
	require.NoError(t, err)
	assert.True(t, validator.IsResolved(u))

	assert.Equal(t, "body.access", u.Entity.Name)
	assert.Equal(t, uprotocol.Uint32(29999), u.Entity.ID)
	assert.Equal(t, uprotocol.Uint32(1), u.Entity.VersionMajor)
	assert.Equal(t, &uprotocol.UResource{
		Name:     "door",
		Instance: "front_left",
		Message:  "Door",
		ID:       uprotocol.Uint32(19999),
	}, u.Resource)

	gotLong, err := LongURISerializer{}.Serialize(u)
	require.NoError(t, err)
	assert.Equal(t, long, gotLong)

	gotMicro, err := MicroURISerializer{}.Serialize(u)
	require.NoError(t, err)
	assert.Equal(t, micro, gotMicro)
}

func TestBuildResolvedRemote(t *testing.T) {
	micro := []byte{0x01, 0x01, 0x4e, 0x1f, 0x75, 0x2f, 0x01, 0x00, 10, 0, 3, 3}

	u, err := BuildResolved("//vcu.vin/body.access/1/door", micro)
	require.NoError(t, err)

	ip, ok := u.Authority.IP()
	require.True(t, ok)
	assert.Equal(t, []byte{10, 0, 3, 3}, ip)
	assert.False(t, validator.IsResolved(u))
	assert.True(t, validator.IsMicroForm(u))
}

func TestBuildResolvedLongOnly(t *testing.T) {
	u, err := BuildResolved("//vcu.vin/body.access/1", nil)
	require.NoError(t, err)
	assert.True(t, u.Authority.HasName())
	assert.True(t, validator.IsLongForm(u))
	assert.False(t, validator.IsResolved(u))
}

func TestBuildResolvedErrors(t *testing.T) {
	_, err := BuildResolved("", nil)
	assert.EqualError(t, err, "Input long and micro URIs are empty")

	_, err = BuildResolved("/body.access", []byte{0x02})
	assert.EqualError(t, err, "URI is empty or not in micro form")
}
