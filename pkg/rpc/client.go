package rpc

import (
	"context"
	"time"

	"github.com/uprotocol/up-go/pkg/uprotocol"
	"github.com/uprotocol/up-go/pkg/uri/validator"
	"google.golang.org/protobuf/proto"
)

// CallOptions carries per-call settings passed to the transport.
type CallOptions struct {
	// Timeout is the time the transport waits for a response. Zero means
	// the transport default.
	Timeout time.Duration

	// Token is an optional access token forwarded to the service.
	Token string
}

// Client invokes RPC methods over some transport.
type Client interface {
	// InvokeMethod sends the request payload to the method URI and returns
	// the response payload.
	InvokeMethod(ctx context.Context, method *uprotocol.UUri, request *uprotocol.UPayload, opts CallOptions) (*uprotocol.UPayload, error)
}

// Invoke packs the request, calls the method through the client and maps
// the response to R. The method URI must address an RPC method; otherwise
// the *uprotocol.ValidationError is returned and the client is not called.
func Invoke[R any, PR Message[R]](ctx context.Context, c Client, method *uprotocol.UUri, request proto.Message, opts CallOptions) (PR, error) {
	if err := validator.ValidateRPCMethod(method); err != nil {
		return nil, err
	}

	payload, err := PackPayload(request)
	if err != nil {
		return nil, err
	}

	return MapResponse[R, PR](c.InvokeMethod(ctx, method, payload, opts))
}

// InvokeForResult is like Invoke but maps the response with
// MapResponseToResult.
func InvokeForResult(ctx context.Context, c Client, method *uprotocol.UUri, request proto.Message, opts CallOptions) (*Result, error) {
	if err := validator.ValidateRPCMethod(method); err != nil {
		return nil, err
	}

	payload, err := PackPayload(request)
	if err != nil {
		return nil, err
	}

	return MapResponseToResult(c.InvokeMethod(ctx, method, payload, opts))
}
