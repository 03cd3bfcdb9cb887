package uprotocol

// UUri is the address of a uProtocol resource.
type UUri struct {
	Authority *UAuthority
	Entity    *UEntity
	Resource  *UResource
}

// IsEmpty returns true if all parts of the URI are absent or zero-valued.
func (u *UUri) IsEmpty() bool {
	if u == nil {
		return true
	}
	return u.Authority.IsLocal() && u.Entity.IsEmpty() && u.Resource.IsEmpty()
}

// Clone returns a deep copy of the URI.
func (u *UUri) Clone() *UUri {
	if u == nil {
		return nil
	}
	return &UUri{
		Authority: u.Authority.Clone(),
		Entity:    u.Entity.Clone(),
		Resource:  u.Resource.Clone(),
	}
}

// Uint32 returns a pointer to v. Used for the optional numeric fields.
func Uint32(v uint32) *uint32 {
	return &v
}

// Int32 returns a pointer to v.
func Int32(v int32) *int32 {
	return &v
}

func cloneUint32(p *uint32) *uint32 {
	if p == nil {
		return nil
	}
	return Uint32(*p)
}
