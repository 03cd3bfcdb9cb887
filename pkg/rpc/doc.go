// Package rpc maps RPC response payloads to typed protobuf messages and
// statuses.
//
// Request and response payloads are protobuf Any messages carried in a
// UPayload with format Protobuf or Unspecified. The mapper never talks to
// the network; a Client implementation supplies the transport.
package rpc
