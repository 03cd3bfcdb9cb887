package uprotocol

import "strings"

// Well-known resource names and ids.
const (
	// ResourceNameRPC is the resource name shared by RPC methods and responses.
	ResourceNameRPC = "rpc"

	// ResourceInstanceResponse is the instance of the RPC response resource.
	ResourceInstanceResponse = "response"

	// RPCResponseID is the resource id of the RPC response resource.
	RPCResponseID uint32 = 0

	// MaxRPCID is the exclusive upper bound of the RPC request id range.
	MaxRPCID uint32 = 1000
)

const resourceIDValidBitmask uint32 = 0xffff << 16

// UResource is an addressable unit within a software entity.
// Empty strings denote absent instance and message.
type UResource struct {
	Name     string
	Instance string
	Message  string
	ID       *uint32
}

// IsEmpty returns true if r is nil or has no field set.
func (r *UResource) IsEmpty() bool {
	return r == nil || (r.Name == "" && r.Instance == "" && r.Message == "" && r.ID == nil)
}

// HasID returns true if the resource carries a numeric id.
func (r *UResource) HasID() bool {
	return r != nil && r.ID != nil
}

// IDFitsMicroURI reports whether the resource id fits the 16 bits allotted
// in the micro URI format. An absent id is a validation error.
func (r *UResource) IDFitsMicroURI() (bool, error) {
	if !r.HasID() {
		return false, NewValidationError("UResource has no id")
	}
	return *r.ID&resourceIDValidBitmask == 0, nil
}

// Clone returns a deep copy of the resource.
func (r *UResource) Clone() *UResource {
	if r == nil {
		return nil
	}
	c := *r
	c.ID = cloneUint32(r.ID)
	return &c
}

// ParseResource parses the "name.instance#message" resource segment of a
// long URI. The instance and message parts are optional.
func ParseResource(s string) *UResource {
	nameAndInstance, message, _ := strings.Cut(s, "#")
	name, instance, _ := strings.Cut(nameAndInstance, ".")
	return &UResource{
		Name:     name,
		Instance: instance,
		Message:  message,
	}
}
