// Package serializer converts UUri values to and from the long (string) and
// micro (binary) representations.
//
// Long form:
//
//	[//authority_name]/entity_name[/version_major][/resource_name[.instance][#message]]
//
// Micro form: an 8-byte header followed by an optional authority tail.
//
//	offset  size  field
//	0       1     UP_VERSION (0x01)
//	1       1     ADDRESS_TYPE (0 local, 1 IPv4, 2 IPv6, 3 ID)
//	2       2     RESOURCE_ID (big-endian)
//	4       2     ENTITY_ID (big-endian)
//	6       1     ENTITY_VERSION_MAJOR
//	7       1     reserved (0x00)
//	8       -     IPv4: 4 bytes, IPv6: 16 bytes, ID: length byte + id bytes
package serializer

import (
	"github.com/uprotocol/up-go/pkg/uprotocol"
)

// URISerializer converts between a UUri and its serialized form T.
type URISerializer[T any] interface {
	Serialize(u *uprotocol.UUri) (T, error)
	Deserialize(data T) (*uprotocol.UUri, error)
}

// Compile-time interface satisfaction checks.
var (
	_ URISerializer[string] = LongURISerializer{}
	_ URISerializer[[]byte] = MicroURISerializer{}
)
