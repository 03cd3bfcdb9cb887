// Package uprotocol defines the uProtocol data model: the UUri addressing
// value and its components, the UPayload envelope and UStatus.
//
// # Addressing
//
// A UUri is made of three optional parts:
//   - UAuthority: the device. A nil Remote means the local device.
//   - UEntity: the software entity (service or application).
//   - UResource: the addressable unit within the entity.
//
// The authority Remote is a sealed sum type with exactly one variant:
// RemoteName (long form only), RemoteIP (4 or 16 bytes) or RemoteID
// (1 to 255 opaque bytes).
//
// # Payloads
//
// UPayload carries either inline bytes (DataValue) or a reference into
// externally managed memory (DataReference). Reference data is carried
// through encodings but never dereferenced by this module.
//
// All types are plain values. Nothing in this package keeps state, so
// values can be shared between goroutines as long as nobody mutates them.
package uprotocol
