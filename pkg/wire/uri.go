package wire

import (
	"bytes"
	"fmt"

	"github.com/uprotocol/up-go/pkg/uprotocol"
)

// URI is the wire form of a UUri.
//
// CBOR encoding:
//
//	{
//	  1: authority,  // map, absent for local
//	  2: entity,     // map
//	  3: resource    // map
//	}
type URI struct {
	Authority *Authority `cbor:"1,keyasint,omitempty"`
	Entity    *Entity    `cbor:"2,keyasint,omitempty"`
	Resource  *Resource  `cbor:"3,keyasint,omitempty"`
}

// Authority is the wire form of a UAuthority.
type Authority struct {
	Name *string `cbor:"1,keyasint,omitempty"`
	IP   *[]byte `cbor:"2,keyasint,omitempty"`
	ID   *[]byte `cbor:"3,keyasint,omitempty"`
}

// Entity is the wire form of a UEntity.
type Entity struct {
	Name         string  `cbor:"1,keyasint,omitempty"`
	ID           *uint32 `cbor:"2,keyasint,omitempty"`
	VersionMajor *uint32 `cbor:"3,keyasint,omitempty"`
	VersionMinor *uint32 `cbor:"4,keyasint,omitempty"`
}

// Resource is the wire form of a UResource.
type Resource struct {
	Name     string  `cbor:"1,keyasint,omitempty"`
	Instance string  `cbor:"2,keyasint,omitempty"`
	Message  string  `cbor:"3,keyasint,omitempty"`
	ID       *uint32 `cbor:"4,keyasint,omitempty"`
}

// FromUUri converts u to its wire form. A nil u yields nil.
func FromUUri(u *uprotocol.UUri) *URI {
	if u == nil {
		return nil
	}
	w := &URI{Authority: fromAuthority(u.Authority)}
	if e := u.Entity; e != nil {
		w.Entity = &Entity{
			Name:         e.Name,
			ID:           copyUint32(e.ID),
			VersionMajor: copyUint32(e.VersionMajor),
			VersionMinor: copyUint32(e.VersionMinor),
		}
	}
	if r := u.Resource; r != nil {
		w.Resource = &Resource{
			Name:     r.Name,
			Instance: r.Instance,
			Message:  r.Message,
			ID:       copyUint32(r.ID),
		}
	}
	return w
}

// ToUUri converts the wire form back to a UUri.
func (w *URI) ToUUri() *uprotocol.UUri {
	if w == nil {
		return nil
	}
	u := &uprotocol.UUri{Authority: w.Authority.toAuthority()}
	if e := w.Entity; e != nil {
		u.Entity = &uprotocol.UEntity{
			Name:         e.Name,
			ID:           copyUint32(e.ID),
			VersionMajor: copyUint32(e.VersionMajor),
			VersionMinor: copyUint32(e.VersionMinor),
		}
	}
	if r := w.Resource; r != nil {
		u.Resource = &uprotocol.UResource{
			Name:     r.Name,
			Instance: r.Instance,
			Message:  r.Message,
			ID:       copyUint32(r.ID),
		}
	}
	return u
}

func fromAuthority(a *uprotocol.UAuthority) *Authority {
	if a.IsLocal() {
		return nil
	}
	switch r := a.Remote.(type) {
	case uprotocol.RemoteName:
		name := string(r)
		return &Authority{Name: &name}
	case uprotocol.RemoteIP:
		ip := bytes.Clone([]byte(r))
		return &Authority{IP: &ip}
	case uprotocol.RemoteID:
		id := bytes.Clone([]byte(r))
		return &Authority{ID: &id}
	}
	return nil
}

func (a *Authority) toAuthority() *uprotocol.UAuthority {
	switch {
	case a == nil:
		return nil
	case a.ID != nil:
		return uprotocol.NewRemoteID(nonNil(*a.ID))
	case a.IP != nil:
		return uprotocol.NewRemoteIP(nonNil(*a.IP))
	case a.Name != nil:
		return uprotocol.NewRemoteName(*a.Name)
	default:
		return &uprotocol.UAuthority{}
	}
}

// EncodeURI encodes a UUri to CBOR bytes.
func EncodeURI(u *uprotocol.UUri) ([]byte, error) {
	if u == nil {
		return nil, fmt.Errorf("invalid uri: nil")
	}
	return Marshal(FromUUri(u))
}

// DecodeURI decodes CBOR bytes into a UUri.
func DecodeURI(data []byte) (*uprotocol.UUri, error) {
	var w URI
	if err := Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode uri: %w", err)
	}
	return w.ToUUri(), nil
}

func copyUint32(p *uint32) *uint32 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return bytes.Clone(b)
}
