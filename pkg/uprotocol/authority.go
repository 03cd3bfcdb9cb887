package uprotocol

import "bytes"

// Size bounds of the authority Remote variants.
const (
	RemoteIPv4Bytes      = 4
	RemoteIPv6Bytes      = 16
	RemoteIDMinimumBytes = 1
	RemoteIDMaximumBytes = 255
)

// Remote identifies a remote device. It is a sealed sum type: the only
// implementations are RemoteName, RemoteIP and RemoteID.
type Remote interface {
	isRemote()
}

// RemoteName is a logical host name. Only valid in long form URIs.
type RemoteName string

// RemoteIP is an IPv4 (4 bytes) or IPv6 (16 bytes) address.
type RemoteIP []byte

// RemoteID is an opaque device identifier of 1 to 255 bytes.
type RemoteID []byte

func (RemoteName) isRemote() {}
func (RemoteIP) isRemote()   {}
func (RemoteID) isRemote()   {}

// IPConformance classifies the length of a RemoteIP.
type IPConformance uint8

const (
	IPNonConformal IPConformance = iota
	IPv4
	IPv6
)

// String returns the conformance name.
func (c IPConformance) String() string {
	switch c {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "NonConformal"
	}
}

// UAuthority identifies a device. A nil Remote denotes the local device.
type UAuthority struct {
	Remote Remote
}

// NewRemoteName returns an authority addressed by host name.
func NewRemoteName(name string) *UAuthority {
	return &UAuthority{Remote: RemoteName(name)}
}

// NewRemoteIP returns an authority addressed by IP bytes.
func NewRemoteIP(ip []byte) *UAuthority {
	return &UAuthority{Remote: RemoteIP(ip)}
}

// NewRemoteID returns an authority addressed by an opaque id.
func NewRemoteID(id []byte) *UAuthority {
	return &UAuthority{Remote: RemoteID(id)}
}

// IsLocal returns true if a is nil or has no remote.
func (a *UAuthority) IsLocal() bool {
	return a == nil || a.Remote == nil
}

// HasName returns true if the remote is a RemoteName.
func (a *UAuthority) HasName() bool {
	_, ok := a.Name()
	return ok
}

// HasIP returns true if the remote is a RemoteIP.
func (a *UAuthority) HasIP() bool {
	_, ok := a.IP()
	return ok
}

// HasID returns true if the remote is a RemoteID.
func (a *UAuthority) HasID() bool {
	_, ok := a.ID()
	return ok
}

// Name returns the host name if the remote is a RemoteName.
func (a *UAuthority) Name() (string, bool) {
	if a == nil {
		return "", false
	}
	name, ok := a.Remote.(RemoteName)
	return string(name), ok
}

// IP returns the address bytes if the remote is a RemoteIP.
func (a *UAuthority) IP() ([]byte, bool) {
	if a == nil {
		return nil, false
	}
	ip, ok := a.Remote.(RemoteIP)
	return ip, ok
}

// ID returns the id bytes if the remote is a RemoteID.
func (a *UAuthority) ID() ([]byte, bool) {
	if a == nil {
		return nil, false
	}
	id, ok := a.Remote.(RemoteID)
	return id, ok
}

// SetName replaces the remote with a RemoteName.
func (a *UAuthority) SetName(name string) *UAuthority {
	a.Remote = RemoteName(name)
	return a
}

// SetIP replaces the remote with a RemoteIP.
func (a *UAuthority) SetIP(ip []byte) *UAuthority {
	a.Remote = RemoteIP(ip)
	return a
}

// SetID replaces the remote with a RemoteID.
func (a *UAuthority) SetID(id []byte) *UAuthority {
	a.Remote = RemoteID(id)
	return a
}

// RemoteIPConforms classifies the length of a RemoteIP.
// It returns a ValidationError if there is no remote or the remote is not
// an IP address.
func (a *UAuthority) RemoteIPConforms() (IPConformance, error) {
	if a.IsLocal() {
		return IPNonConformal, NewValidationError("No remote")
	}
	switch r := a.Remote.(type) {
	case RemoteIP:
		switch len(r) {
		case RemoteIPv4Bytes:
			return IPv4, nil
		case RemoteIPv6Bytes:
			return IPv6, nil
		default:
			return IPNonConformal, nil
		}
	case RemoteName, RemoteID:
		return IPNonConformal, NewValidationError("Remote is not IP")
	default:
		return IPNonConformal, NewValidationError("Unknown remote variant")
	}
}

// RemoteIDConforms reports whether a RemoteID has an allowed length.
// It returns a ValidationError if there is no remote or the remote is not
// an id.
func (a *UAuthority) RemoteIDConforms() (bool, error) {
	if a.IsLocal() {
		return false, NewValidationError("No remote")
	}
	switch r := a.Remote.(type) {
	case RemoteID:
		return len(r) >= RemoteIDMinimumBytes && len(r) <= RemoteIDMaximumBytes, nil
	case RemoteName, RemoteIP:
		return false, NewValidationError("Remote is not ID")
	default:
		return false, NewValidationError("Unknown remote variant")
	}
}

// Equal reports whether two authorities address the same device.
func (a *UAuthority) Equal(b *UAuthority) bool {
	if a.IsLocal() || b.IsLocal() {
		return a.IsLocal() == b.IsLocal()
	}
	switch r := a.Remote.(type) {
	case RemoteName:
		o, ok := b.Remote.(RemoteName)
		return ok && r == o
	case RemoteIP:
		o, ok := b.Remote.(RemoteIP)
		return ok && bytes.Equal(r, o)
	case RemoteID:
		o, ok := b.Remote.(RemoteID)
		return ok && bytes.Equal(r, o)
	default:
		return false
	}
}

// Clone returns a deep copy of the authority.
func (a *UAuthority) Clone() *UAuthority {
	if a == nil {
		return nil
	}
	switch r := a.Remote.(type) {
	case RemoteIP:
		return &UAuthority{Remote: RemoteIP(bytes.Clone(r))}
	case RemoteID:
		return &UAuthority{Remote: RemoteID(bytes.Clone(r))}
	default:
		return &UAuthority{Remote: a.Remote}
	}
}
