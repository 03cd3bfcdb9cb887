package vectors

import (
	"encoding/hex"
	"fmt"
	"net/netip"

	"github.com/uprotocol/up-go/pkg/uprotocol"
)

// ToUUri converts the YAML representation into a UUri.
func (u *URI) ToUUri() (*uprotocol.UUri, error) {
	if u == nil {
		return &uprotocol.UUri{}, nil
	}

	out := &uprotocol.UUri{}
	if a := u.Authority; a != nil {
		authority, err := a.toUAuthority()
		if err != nil {
			return nil, err
		}
		out.Authority = authority
	}
	if e := u.Entity; e != nil {
		out.Entity = &uprotocol.UEntity{
			Name:         e.Name,
			ID:           e.ID,
			VersionMajor: e.VersionMajor,
			VersionMinor: e.VersionMinor,
		}
	}
	if r := u.Resource; r != nil {
		out.Resource = &uprotocol.UResource{
			Name:     r.Name,
			Instance: r.Instance,
			Message:  r.Message,
			ID:       r.ID,
		}
	}
	return out, nil
}

func (a *Authority) toUAuthority() (*uprotocol.UAuthority, error) {
	set := 0
	for _, v := range []string{a.Name, a.IP, a.ID} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return nil, fmt.Errorf("authority must have at most one of name, ip, id")
	}

	switch {
	case a.Name != "":
		return uprotocol.NewRemoteName(a.Name), nil
	case a.IP != "":
		if addr, err := netip.ParseAddr(a.IP); err == nil {
			return uprotocol.NewRemoteIP(addr.AsSlice()), nil
		}
		raw, err := hex.DecodeString(a.IP)
		if err != nil {
			return nil, fmt.Errorf("invalid authority ip %q: %w", a.IP, err)
		}
		return uprotocol.NewRemoteIP(raw), nil
	case a.ID != "":
		raw, err := hex.DecodeString(a.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid authority id %q: %w", a.ID, err)
		}
		return uprotocol.NewRemoteID(raw), nil
	default:
		return &uprotocol.UAuthority{}, nil
	}
}

// FromUUri converts a UUri into its YAML representation.
func FromUUri(u *uprotocol.UUri) *URI {
	if u == nil {
		return &URI{}
	}

	out := &URI{}
	if a := u.Authority; a != nil {
		out.Authority = &Authority{}
		switch r := a.Remote.(type) {
		case uprotocol.RemoteName:
			out.Authority.Name = string(r)
		case uprotocol.RemoteIP:
			if addr, ok := netip.AddrFromSlice(r); ok {
				out.Authority.IP = addr.String()
			} else {
				out.Authority.IP = hex.EncodeToString(r)
			}
		case uprotocol.RemoteID:
			out.Authority.ID = hex.EncodeToString(r)
		case nil:
		}
	}
	if e := u.Entity; e != nil {
		out.Entity = &Entity{
			Name:         e.Name,
			ID:           e.ID,
			VersionMajor: e.VersionMajor,
			VersionMinor: e.VersionMinor,
		}
	}
	if r := u.Resource; r != nil {
		out.Resource = &Resource{
			Name:     r.Name,
			Instance: r.Instance,
			Message:  r.Message,
			ID:       r.ID,
		}
	}
	return out
}
