// Package validator classifies UUri values as empty, long form, micro form,
// resolved, RPC method or RPC response.
//
// All predicates are pure and do not allocate; the serializers and the RPC
// layer consult them before touching a URI.
package validator

import (
	"strings"

	"github.com/uprotocol/up-go/pkg/uprotocol"
)

// maxMicroID is the largest entity or resource id a micro URI can carry.
const maxMicroID = 0xffff

// IsEmpty returns true if all parts of the URI are absent or zero-valued.
func IsEmpty(u *uprotocol.UUri) bool {
	return u.IsEmpty()
}

// IsLongForm returns true if the URI has a non-blank entity name and its
// authority, if remote, is addressed by name.
func IsLongForm(u *uprotocol.UUri) bool {
	if IsEmpty(u) || u.Entity == nil || strings.TrimSpace(u.Entity.Name) == "" {
		return false
	}
	if u.Authority.IsLocal() {
		return true
	}
	switch r := u.Authority.Remote.(type) {
	case uprotocol.RemoteName:
		return strings.TrimSpace(string(r)) != ""
	case uprotocol.RemoteIP, uprotocol.RemoteID:
		return false
	default:
		return false
	}
}

// IsMicroForm returns true if the URI can be encoded in the micro format:
// 16-bit entity and resource ids, an 8-bit major version (if set), and a
// local authority or one addressed by a conformant IP or id.
func IsMicroForm(u *uprotocol.UUri) bool {
	if IsEmpty(u) {
		return false
	}
	if !u.Entity.HasID() || *u.Entity.ID > maxMicroID {
		return false
	}
	if !u.Entity.VersionFitsMicroURI() {
		return false
	}
	if !u.Resource.HasID() || *u.Resource.ID > maxMicroID {
		return false
	}
	return authorityFitsMicroURI(u.Authority)
}

func authorityFitsMicroURI(a *uprotocol.UAuthority) bool {
	if a.IsLocal() {
		return true
	}
	switch r := a.Remote.(type) {
	case uprotocol.RemoteIP:
		return len(r) == uprotocol.RemoteIPv4Bytes || len(r) == uprotocol.RemoteIPv6Bytes
	case uprotocol.RemoteID:
		return len(r) >= uprotocol.RemoteIDMinimumBytes && len(r) <= uprotocol.RemoteIDMaximumBytes
	case uprotocol.RemoteName:
		return false
	default:
		return false
	}
}

// IsResolved returns true if the URI is both in long and micro form.
func IsResolved(u *uprotocol.UUri) bool {
	return IsLongForm(u) && IsMicroForm(u)
}

// IsRPCMethod returns true if the resource is an RPC method: named "rpc"
// with an instance (the method name) or an id in the request range.
func IsRPCMethod(u *uprotocol.UUri) bool {
	if u == nil || u.Resource == nil {
		return false
	}
	r := u.Resource
	if r.Name != uprotocol.ResourceNameRPC {
		return false
	}
	return r.Instance != "" || (r.ID != nil && *r.ID < uprotocol.MaxRPCID)
}

// IsRPCResponse returns true if the resource is rpc.response.
func IsRPCResponse(u *uprotocol.UUri) bool {
	if !IsRPCMethod(u) {
		return false
	}
	r := u.Resource
	return r.Instance == uprotocol.ResourceInstanceResponse &&
		(r.ID == nil || *r.ID == uprotocol.RPCResponseID)
}
