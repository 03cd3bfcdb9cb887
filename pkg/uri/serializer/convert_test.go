package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uprotocol/up-go/pkg/uprotocol"
)

func TestTotalConversions(t *testing.T) {
	u := &uprotocol.UUri{
		Entity:   &uprotocol.UEntity{Name: "body.access", ID: uprotocol.Uint32(29999), VersionMajor: uprotocol.Uint32(254)},
		Resource: &uprotocol.UResource{Name: "door", ID: uprotocol.Uint32(19999)},
	}

	assert.Equal(t, "/body.access/254/door", LongString(u))
	assert.Equal(t, []byte{0x01, 0x00, 0x4E, 0x1F, 0x75, 0x2F, 0xFE, 0x00}, MicroBytes(u))

	assert.Equal(t, "", LongString(&uprotocol.UUri{}))
	assert.Equal(t, []byte{}, MicroBytes(&uprotocol.UUri{Entity: &uprotocol.UEntity{Name: "x"}}))

	assert.Equal(t, &uprotocol.UUri{}, FromMicroBytes([]byte{0x00}))
	assert.Equal(t, &uprotocol.UUri{}, FromLongString(""))
	assert.Equal(t, "body.access", FromLongString("/body.access").Entity.Name)
	assert.Equal(t, uprotocol.Uint32(29999), FromMicroBytes(MicroBytes(u)).Entity.ID)
}
