// Package wire defines the CBOR encoding of uProtocol values.
//
// URIs, payloads and statuses are encoded as CBOR (RFC 8949) maps with
// integer keys and canonical key order, so equal values always produce
// equal bytes. An Envelope bundles a message id, type, source, optional
// sink and payload for transport or trace files.
//
// # Authority
//
// The authority map carries at most one of its keys:
//
//	{ 1: name (tstr), 2: ip (bstr), 3: id (bstr) }
//
// An absent or empty map is the local authority. When a peer sends more
// than one key, the id wins over the ip and the ip wins over the name.
//
// # Absent vs Empty
//
// Optional numeric fields are omitted when absent and encoded when set,
// even if zero. Empty strings are omitted.
package wire
