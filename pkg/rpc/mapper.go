package rpc

import (
	"github.com/uprotocol/up-go/pkg/uprotocol"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

const errMsgNotAny = "Couldn't decode payload into Any"

// Message constrains T to protobuf messages whose pointer type implements
// proto.Message, so the mapper can allocate the result.
type Message[T any] interface {
	*T
	proto.Message
}

// Result is the outcome of MapResponseToResult: status information sent by
// the remote service and, when the response was not a status, the original
// payload for further decoding.
type Result struct {
	Status  *uprotocol.UStatus
	Payload *uprotocol.UPayload
}

// MapResponse maps the payload returned by a peer to the expected return
// type of the RPC method. A non-nil err from the client is returned as is
// when it is a MapperError and wrapped as an unexpected error otherwise.
//
// The Any value bytes are decoded into T without checking the type URL.
func MapResponse[T any, PT Message[T]](payload *uprotocol.UPayload, err error) (PT, error) {
	if err != nil {
		return nil, asMapperError(err)
	}

	a, aerr := payload.ToAny()
	if aerr != nil {
		return nil, newError(KindUnknownType, errMsgNotAny)
	}

	out := PT(new(T))
	if uerr := proto.Unmarshal(a.GetValue(), out); uerr != nil {
		return nil, InvalidPayload(uerr.Error())
	}
	return out, nil
}

// MapResponseToResult checks whether the payload carries a UStatus.
//
//   - A status with code OK yields Result{Status: OK}.
//   - Any other status yields Result{Status: status}.
//   - A payload that is an Any but not a status yields a failed status
//     "Unexpected any-payload type <url>" together with the payload
//     re-encoded from the Any, so callers can still decode it.
//
// Callers therefore check both the status and the payload.
func MapResponseToResult(payload *uprotocol.UPayload, err error) (*Result, error) {
	if err != nil {
		return nil, asMapperError(err)
	}

	a, aerr := payload.ToAny()
	if aerr != nil {
		return nil, newError(KindUnknownType, errMsgNotAny)
	}

	if status, serr := uprotocol.StatusFromAny(a); serr == nil {
		if status.Code == uprotocol.CodeOK {
			return &Result{Status: uprotocol.StatusOK()}, nil
		}
		return &Result{Status: status}, nil
	}

	p, perr := uprotocol.PayloadFromAny(a)
	if perr != nil {
		return nil, InvalidPayload(perr.Error())
	}
	return &Result{
		Status:  uprotocol.StatusFail("Unexpected any-payload type " + a.GetTypeUrl()),
		Payload: p,
	}, nil
}

// PackPayload packs a protobuf message into an Any and then into a UPayload
// with format Protobuf.
func PackPayload(msg proto.Message) (*uprotocol.UPayload, error) {
	a, err := PackAny(msg)
	if err != nil {
		return nil, err
	}
	p, err := uprotocol.PayloadFromAny(a)
	if err != nil {
		return nil, InvalidPayload(err.Error())
	}
	p.Format = uprotocol.PayloadFormatProtobuf
	return p, nil
}

// UnpackPayload extracts a protobuf message of type T from a payload
// created by PackPayload.
func UnpackPayload[T any, PT Message[T]](payload *uprotocol.UPayload) (PT, error) {
	a, err := payload.ToAny()
	if err != nil {
		return nil, newError(KindUnknownType, "Couldn't decode payload")
	}
	return UnpackAny[T, PT](a)
}

// PackAny packs a protobuf message into an Any.
func PackAny(msg proto.Message) (*anypb.Any, error) {
	a, err := anypb.New(msg)
	if err != nil {
		return nil, InvalidPayload(err.Error())
	}
	return a, nil
}

// UnpackAny unpacks an Any into a message of type T. It fails if the Any
// holds a different message type.
func UnpackAny[T any, PT Message[T]](a *anypb.Any) (PT, error) {
	out := PT(new(T))
	if err := a.UnmarshalTo(out); err != nil {
		return nil, InvalidPayload(err.Error())
	}
	return out, nil
}
