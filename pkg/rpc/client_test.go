package rpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/uprotocol/up-go/pkg/uprotocol"
	"github.com/uprotocol/up-go/pkg/uri/builder"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// MockClient is a testify mock of Client.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) InvokeMethod(ctx context.Context, method *uprotocol.UUri, request *uprotocol.UPayload, opts CallOptions) (*uprotocol.UPayload, error) {
	args := m.Called(ctx, method, request, opts)
	payload, _ := args.Get(0).(*uprotocol.UPayload)
	return payload, args.Error(1)
}

var _ Client = (*MockClient)(nil)

func methodURI() *uprotocol.UUri {
	return &uprotocol.UUri{
		Entity:   &uprotocol.UEntity{Name: "body.access", VersionMajor: uprotocol.Uint32(1)},
		Resource: builder.ForRPCRequest("UpdateDoor", nil),
	}
}

func TestInvoke(t *testing.T) {
	ctx := context.Background()
	opts := CallOptions{Timeout: time.Second}

	response, err := PackPayload(wrapperspb.Bool(true))
	require.NoError(t, err)

	client := &MockClient{}
	client.On("InvokeMethod", ctx, methodURI(), mock.MatchedBy(func(p *uprotocol.UPayload) bool {
		req, err := UnpackPayload[wrapperspb.StringValue](p)
		return err == nil && req.GetValue() == "open"
	}), opts).Return(response, nil).Once()

	got, err := Invoke[wrapperspb.BoolValue](ctx, client, methodURI(), wrapperspb.String("open"), opts)
	require.NoError(t, err)
	assert.True(t, got.GetValue())
	client.AssertExpectations(t)
}

func TestInvokeTransportError(t *testing.T) {
	ctx := context.Background()

	client := &MockClient{}
	client.On("InvokeMethod", ctx, mock.Anything, mock.Anything, CallOptions{}).
		Return(nil, context.DeadlineExceeded).Once()

	_, err := Invoke[wrapperspb.BoolValue](ctx, client, methodURI(), wrapperspb.String("open"), CallOptions{})
	assert.EqualError(t, err, "Unexpected error: context deadline exceeded")
	client.AssertExpectations(t)
}

func TestInvokeRejectsNonMethodURI(t *testing.T) {
	client := &MockClient{}
	topic := &uprotocol.UUri{
		Entity:   &uprotocol.UEntity{Name: "body.access"},
		Resource: &uprotocol.UResource{Name: "door"},
	}

	_, err := Invoke[wrapperspb.BoolValue](context.Background(), client, topic, wrapperspb.String("open"), CallOptions{})
	var verr *uprotocol.ValidationError
	assert.ErrorAs(t, err, &verr)
	client.AssertNotCalled(t, "InvokeMethod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvokeForResult(t *testing.T) {
	ctx := context.Background()

	a, err := uprotocol.StatusFailWithCode(uprotocol.CodePermissionDenied, "door locked").ToAny()
	require.NoError(t, err)
	response, err := uprotocol.PayloadFromAny(a)
	require.NoError(t, err)

	client := &MockClient{}
	client.On("InvokeMethod", ctx, mock.Anything, mock.Anything, CallOptions{}).Return(response, nil).Once()

	result, err := InvokeForResult(ctx, client, methodURI(), wrapperspb.String("open"), CallOptions{})
	require.NoError(t, err)
	assert.Equal(t, uprotocol.CodePermissionDenied, result.Status.Code)
	assert.Equal(t, "door locked", result.Status.Message)
}
