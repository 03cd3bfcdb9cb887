// Package builder constructs canonical UResource values.
package builder

import "github.com/uprotocol/up-go/pkg/uprotocol"

// ForRPCResponse returns the well-known rpc.response resource.
func ForRPCResponse() *uprotocol.UResource {
	return &uprotocol.UResource{
		Name:     uprotocol.ResourceNameRPC,
		Instance: uprotocol.ResourceInstanceResponse,
		ID:       uprotocol.Uint32(uprotocol.RPCResponseID),
	}
}

// ForRPCRequest returns an rpc.<method> resource. Both the method name and
// the id are optional.
func ForRPCRequest(method string, id *uint32) *uprotocol.UResource {
	r := &uprotocol.UResource{
		Name:     uprotocol.ResourceNameRPC,
		Instance: method,
	}
	if id != nil {
		r.ID = uprotocol.Uint32(*id)
	}
	return r
}

// FromID returns the resource for a micro URI resource id: rpc.response for
// 0, an RPC request for ids below MaxRPCID, and a resource carrying only the
// id otherwise.
func FromID(id uint32) *uprotocol.UResource {
	switch {
	case id == uprotocol.RPCResponseID:
		return ForRPCResponse()
	case id < uprotocol.MaxRPCID:
		return ForRPCRequest("", &id)
	default:
		return &uprotocol.UResource{ID: uprotocol.Uint32(id)}
	}
}
