package uprotocol

const (
	// entityIDValidBitmask covers the bits of an entity id that do not fit
	// into the 16 bits of a micro URI.
	entityIDValidBitmask uint32 = 0xffff << 16

	// entityVersionValidBitmask covers the bits of a major version that do
	// not fit into the 8 bits of a micro URI.
	entityVersionValidBitmask uint32 = 0xffffff << 8
)

// UEntity is a software entity (service or application) on a device.
type UEntity struct {
	Name         string
	ID           *uint32
	VersionMajor *uint32
	VersionMinor *uint32
}

// IsEmpty returns true if e is nil or has no field set.
func (e *UEntity) IsEmpty() bool {
	return e == nil || (e.Name == "" && e.ID == nil && e.VersionMajor == nil && e.VersionMinor == nil)
}

// HasID returns true if the entity carries a numeric id.
func (e *UEntity) HasID() bool {
	return e != nil && e.ID != nil
}

// IDFitsMicroURI reports whether the entity id fits the 16 bits allotted
// in the micro URI format. An absent id is a validation error.
func (e *UEntity) IDFitsMicroURI() (bool, error) {
	if !e.HasID() {
		return false, NewValidationError("UEntity has no id")
	}
	return *e.ID&entityIDValidBitmask == 0, nil
}

// VersionFitsMicroURI reports whether the major version fits the 8 bits
// allotted in the micro URI format. An absent version fits and is written
// as 0.
func (e *UEntity) VersionFitsMicroURI() bool {
	if e == nil || e.VersionMajor == nil {
		return true
	}
	return *e.VersionMajor&entityVersionValidBitmask == 0
}

// Clone returns a deep copy of the entity.
func (e *UEntity) Clone() *UEntity {
	if e == nil {
		return nil
	}
	return &UEntity{
		Name:         e.Name,
		ID:           cloneUint32(e.ID),
		VersionMajor: cloneUint32(e.VersionMajor),
		VersionMinor: cloneUint32(e.VersionMinor),
	}
}
