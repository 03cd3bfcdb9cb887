package serializer

import (
	"bytes"
	"encoding/binary"

	"github.com/uprotocol/up-go/pkg/uprotocol"
	"github.com/uprotocol/up-go/pkg/uri/builder"
	"github.com/uprotocol/up-go/pkg/uri/validator"
)

// Micro URI layout constants.
const (
	// UPVersion is the micro URI format version carried in byte 0.
	UPVersion byte = 0x01

	LocalMicroURILength = 8
	IPv4MicroURILength  = 12
	IPv6MicroURILength  = 24

	// MinIDMicroURILength is the length of an ID micro URI with an empty id.
	// Valid ids are 1 to 255 bytes long.
	MinIDMicroURILength = 9
)

// Header field offsets.
const (
	headerResourceIDOffset  = 2
	headerEntityIDOffset    = 4
	headerVersionOffset     = 6
	idAuthorityLengthOffset = 8
)

const (
	errMsgNotMicroForm    = "URI is empty or not in micro form"
	errMsgInvalidIP       = "Invalid IP address"
	errMsgNotVersion1     = "URI is not version 1"
	errMsgInvalidAddrType = "Invalid address type"
	errMsgInvalidLength   = "Invalid micro URI length"
)

// AddressType discriminates the authority tail of a micro URI (byte 1).
type AddressType uint8

const (
	AddressTypeLocal AddressType = 0
	AddressTypeIPv4  AddressType = 1
	AddressTypeIPv6  AddressType = 2
	AddressTypeID    AddressType = 3
)

// String returns the address type name.
func (t AddressType) String() string {
	switch t {
	case AddressTypeLocal:
		return "LOCAL"
	case AddressTypeIPv4:
		return "IPv4"
	case AddressTypeIPv6:
		return "IPv6"
	case AddressTypeID:
		return "ID"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if t is a known address type.
func (t AddressType) IsValid() bool {
	return t <= AddressTypeID
}

// MicroURISerializer converts between a UUri and the compact binary micro
// form.
type MicroURISerializer struct{}

// Serialize encodes u in micro form. It fails if the authority IP is neither
// 4 nor 16 bytes long, or if u is empty or not in micro form.
func (MicroURISerializer) Serialize(u *uprotocol.UUri) ([]byte, error) {
	if validator.IsEmpty(u) {
		return nil, uprotocol.NewSerializationError(errMsgNotMicroForm)
	}

	addressType := AddressTypeLocal
	var tail []byte
	if !u.Authority.IsLocal() {
		switch r := u.Authority.Remote.(type) {
		case uprotocol.RemoteID:
			addressType = AddressTypeID
			tail = r
		case uprotocol.RemoteIP:
			switch len(r) {
			case uprotocol.RemoteIPv4Bytes:
				addressType = AddressTypeIPv4
			case uprotocol.RemoteIPv6Bytes:
				addressType = AddressTypeIPv6
			default:
				return nil, uprotocol.NewSerializationError(errMsgInvalidIP)
			}
			tail = r
		case uprotocol.RemoteName:
			return nil, uprotocol.NewSerializationError(errMsgNotMicroForm)
		default:
			return nil, uprotocol.NewSerializationError(errMsgNotMicroForm)
		}
	}

	// Malformed IPs were reported above with their own message.
	if !validator.IsMicroForm(u) {
		return nil, uprotocol.NewSerializationError(errMsgNotMicroForm)
	}

	resourceID := *u.Resource.ID
	entityID := *u.Entity.ID
	var version uint32
	if u.Entity.VersionMajor != nil {
		version = *u.Entity.VersionMajor
	}
	if resourceID > 0xffff || entityID > 0xffff || version > 0xff {
		return nil, uprotocol.NewSerializationError(errMsgNotMicroForm)
	}

	size := LocalMicroURILength + len(tail)
	if addressType == AddressTypeID {
		size++
	}
	buf := make([]byte, LocalMicroURILength, size)
	buf[0] = UPVersion
	buf[1] = byte(addressType)
	binary.BigEndian.PutUint16(buf[headerResourceIDOffset:], uint16(resourceID))
	binary.BigEndian.PutUint16(buf[headerEntityIDOffset:], uint16(entityID))
	buf[headerVersionOffset] = byte(version)
	// buf[7] is reserved and stays 0

	if addressType == AddressTypeID {
		buf = append(buf, byte(len(tail)))
	}
	buf = append(buf, tail...)

	return buf, nil
}

// Deserialize decodes a micro form URI. The resource is rebuilt from its id
// with builder.FromID. For ID authorities the total buffer length is
// authoritative: every byte from offset 9 on is part of the id.
func (MicroURISerializer) Deserialize(data []byte) (*uprotocol.UUri, error) {
	if len(data) < LocalMicroURILength {
		return nil, uprotocol.NewSerializationError(errMsgNotMicroForm)
	}

	if data[0] != UPVersion {
		return nil, uprotocol.NewSerializationError(errMsgNotVersion1)
	}

	addressType := AddressType(data[1])
	if !addressType.IsValid() {
		return nil, uprotocol.NewSerializationError(errMsgInvalidAddrType)
	}

	var authority *uprotocol.UAuthority
	switch addressType {
	case AddressTypeLocal:
		if len(data) != LocalMicroURILength {
			return nil, uprotocol.NewSerializationError(errMsgInvalidLength)
		}
	case AddressTypeIPv4:
		if len(data) != IPv4MicroURILength {
			return nil, uprotocol.NewSerializationError(errMsgInvalidLength)
		}
		authority = uprotocol.NewRemoteIP(bytes.Clone(data[LocalMicroURILength:IPv4MicroURILength]))
	case AddressTypeIPv6:
		if len(data) != IPv6MicroURILength {
			return nil, uprotocol.NewSerializationError(errMsgInvalidLength)
		}
		authority = uprotocol.NewRemoteIP(bytes.Clone(data[LocalMicroURILength:IPv6MicroURILength]))
	case AddressTypeID:
		if len(data) < MinIDMicroURILength {
			return nil, uprotocol.NewSerializationError(errMsgInvalidLength)
		}
		authority = uprotocol.NewRemoteID(bytes.Clone(data[idAuthorityLengthOffset+1:]))
	}

	resourceID := binary.BigEndian.Uint16(data[headerResourceIDOffset:])
	entityID := binary.BigEndian.Uint16(data[headerEntityIDOffset:])

	return &uprotocol.UUri{
		Authority: authority,
		Entity: &uprotocol.UEntity{
			ID:           uprotocol.Uint32(uint32(entityID)),
			VersionMajor: uprotocol.Uint32(uint32(data[headerVersionOffset])),
		},
		Resource: builder.FromID(uint32(resourceID)),
	}, nil
}
