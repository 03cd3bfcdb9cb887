package serializer

import "github.com/uprotocol/up-go/pkg/uprotocol"

// LongString returns the long form of u, or "" if it cannot be serialized.
func LongString(u *uprotocol.UUri) string {
	s, err := LongURISerializer{}.Serialize(u)
	if err != nil {
		return ""
	}
	return s
}

// FromLongString parses a long form URI, returning an empty UUri for
// unparseable input.
func FromLongString(s string) *uprotocol.UUri {
	u, err := LongURISerializer{}.Deserialize(s)
	if err != nil {
		return &uprotocol.UUri{}
	}
	return u
}

// MicroBytes returns the micro form of u, or an empty slice if u is not in
// micro form.
func MicroBytes(u *uprotocol.UUri) []byte {
	b, err := MicroURISerializer{}.Serialize(u)
	if err != nil {
		return []byte{}
	}
	return b
}

// FromMicroBytes decodes a micro form URI, returning an empty UUri for
// malformed input.
func FromMicroBytes(b []byte) *uprotocol.UUri {
	u, err := MicroURISerializer{}.Deserialize(b)
	if err != nil {
		return &uprotocol.UUri{}
	}
	return u
}
