// Package vectors loads URI codec test vectors from YAML files.
//
// A vector file has two sections:
//
//	micro:
//	  - name: local
//	    uri: {entity: {id: 29999, version_major: 254}, resource: {id: 19999}}
//	    micro: "01004e1f752ffe00"
//	long:
//	  - name: remote
//	    uri: {authority: {name: vcu.vin}, entity: {name: body.access}}
//	    long: "//vcu.vin/body.access"
//
// A vector with an error field expects decoding of the serialized form (or
// encoding of the uri, when no serialized form is given) to fail with
// exactly that message.
package vectors

import "strconv"

// File is the content of a vector file.
type File struct {
	Micro []MicroVector `yaml:"micro"`
	Long  []LongVector  `yaml:"long"`
}

// MicroVector pairs a URI with its hex encoded micro form.
type MicroVector struct {
	Name  string `yaml:"name"`
	URI   *URI   `yaml:"uri,omitempty"`
	Micro string `yaml:"micro,omitempty"`
	Error string `yaml:"error,omitempty"`
}

// LongVector pairs a URI with its long form.
type LongVector struct {
	Name  string `yaml:"name"`
	URI   *URI   `yaml:"uri,omitempty"`
	Long  string `yaml:"long"`
	Error string `yaml:"error,omitempty"`
}

// URI is the YAML representation of a UUri.
type URI struct {
	Authority *Authority `yaml:"authority,omitempty"`
	Entity    *Entity    `yaml:"entity,omitempty"`
	Resource  *Resource  `yaml:"resource,omitempty"`
}

// Authority is the YAML representation of a UAuthority. At most one of the
// fields is set; none means local.
type Authority struct {
	Name string `yaml:"name,omitempty"`
	IP   string `yaml:"ip,omitempty"` // textual address, or hex for non-conformal lengths
	ID   string `yaml:"id,omitempty"` // hex
}

// Entity is the YAML representation of a UEntity.
type Entity struct {
	Name         string  `yaml:"name,omitempty"`
	ID           *uint32 `yaml:"id,omitempty"`
	VersionMajor *uint32 `yaml:"version_major,omitempty"`
	VersionMinor *uint32 `yaml:"version_minor,omitempty"`
}

// Resource is the YAML representation of a UResource.
type Resource struct {
	Name     string  `yaml:"name,omitempty"`
	Instance string  `yaml:"instance,omitempty"`
	Message  string  `yaml:"message,omitempty"`
	ID       *uint32 `yaml:"id,omitempty"`
}

// LoadError provides details about a vector file loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Vector is the name of the offending vector, if any.
	Vector string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Vector != "" {
		msg = strconv.Quote(e.Vector) + ": " + msg
	}
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
