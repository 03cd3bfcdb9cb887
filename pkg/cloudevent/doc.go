// Package cloudevent carries uProtocol messages as CloudEvents.
//
// Events are built from a message type and a source URI. The source and the
// optional sink are stored in long form; the payload format is mapped to the
// event's data content type and back.
package cloudevent
