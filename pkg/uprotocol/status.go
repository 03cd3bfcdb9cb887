package uprotocol

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// UStatusTypeURL is the Any type URL under which UStatus values are packed.
const UStatusTypeURL = "type.googleapis.com/uprotocol.v1.UStatus"

// UCode is the canonical status code, aligned with google.rpc.Code.
type UCode int32

const (
	CodeOK                 UCode = 0
	CodeCancelled          UCode = 1
	CodeUnknown            UCode = 2
	CodeInvalidArgument    UCode = 3
	CodeDeadlineExceeded   UCode = 4
	CodeNotFound           UCode = 5
	CodeAlreadyExists      UCode = 6
	CodePermissionDenied   UCode = 7
	CodeResourceExhausted  UCode = 8
	CodeFailedPrecondition UCode = 9
	CodeAborted            UCode = 10
	CodeOutOfRange         UCode = 11
	CodeUnimplemented      UCode = 12
	CodeInternal           UCode = 13
	CodeUnavailable        UCode = 14
	CodeDataLoss           UCode = 15
	CodeUnauthenticated    UCode = 16
)

// String returns the code name.
func (c UCode) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeCancelled:
		return "CANCELLED"
	case CodeUnknown:
		return "UNKNOWN"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	case CodeDeadlineExceeded:
		return "DEADLINE_EXCEEDED"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeAlreadyExists:
		return "ALREADY_EXISTS"
	case CodePermissionDenied:
		return "PERMISSION_DENIED"
	case CodeResourceExhausted:
		return "RESOURCE_EXHAUSTED"
	case CodeFailedPrecondition:
		return "FAILED_PRECONDITION"
	case CodeAborted:
		return "ABORTED"
	case CodeOutOfRange:
		return "OUT_OF_RANGE"
	case CodeUnimplemented:
		return "UNIMPLEMENTED"
	case CodeInternal:
		return "INTERNAL"
	case CodeUnavailable:
		return "UNAVAILABLE"
	case CodeDataLoss:
		return "DATA_LOSS"
	case CodeUnauthenticated:
		return "UNAUTHENTICATED"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if c is a known code.
func (c UCode) IsValid() bool {
	return c >= CodeOK && c <= CodeUnauthenticated
}

// UStatus reports the outcome of an operation, typically sent by a remote
// service in an RPC response.
type UStatus struct {
	Code    UCode
	Message string
	Details []*anypb.Any
}

// StatusOK returns a successful status.
func StatusOK() *UStatus {
	return &UStatus{Code: CodeOK}
}

// StatusFail returns a failed status with CodeUnknown.
func StatusFail(msg string) *UStatus {
	return StatusFailWithCode(CodeUnknown, msg)
}

// StatusFailWithCode returns a failed status with the given code.
func StatusFailWithCode(code UCode, msg string) *UStatus {
	return &UStatus{Code: code, Message: msg}
}

// IsSuccess returns true if the status code is OK.
func (s *UStatus) IsSuccess() bool {
	return s != nil && s.Code == CodeOK
}

// IsFailed returns true if the status code is not OK.
func (s *UStatus) IsFailed() bool {
	return !s.IsSuccess()
}

// Error implements the error interface so failed statuses can be returned
// as errors.
func (s *UStatus) Error() string {
	if s.Message == "" {
		return s.Code.String()
	}
	return fmt.Sprintf("%s: %s", s.Code, s.Message)
}

// Protobuf field numbers of uprotocol.v1.UStatus.
const (
	statusFieldCode    protowire.Number = 1
	statusFieldMessage protowire.Number = 2
	statusFieldDetails protowire.Number = 3
)

// MarshalProto encodes the status in protobuf wire format.
func (s *UStatus) MarshalProto() ([]byte, error) {
	var b []byte
	if s.Code != CodeOK {
		b = protowire.AppendTag(b, statusFieldCode, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(s.Code))
	}
	if s.Message != "" {
		b = protowire.AppendTag(b, statusFieldMessage, protowire.BytesType)
		b = protowire.AppendString(b, s.Message)
	}
	for _, d := range s.Details {
		detail, err := proto.Marshal(d)
		if err != nil {
			return nil, fmt.Errorf("failed to encode status detail: %w", err)
		}
		b = protowire.AppendTag(b, statusFieldDetails, protowire.BytesType)
		b = protowire.AppendBytes(b, detail)
	}
	return b, nil
}

// UnmarshalProto decodes a status from protobuf wire format. Unknown fields
// are skipped.
func (s *UStatus) UnmarshalProto(b []byte) error {
	*s = UStatus{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("invalid UStatus tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == statusFieldCode && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("invalid UStatus code: %w", protowire.ParseError(n))
			}
			s.Code = UCode(int32(v))
			b = b[n:]
		case num == statusFieldMessage && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return fmt.Errorf("invalid UStatus message: %w", protowire.ParseError(n))
			}
			s.Message = v
			b = b[n:]
		case num == statusFieldDetails && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fmt.Errorf("invalid UStatus detail: %w", protowire.ParseError(n))
			}
			var detail anypb.Any
			if err := proto.Unmarshal(v, &detail); err != nil {
				return fmt.Errorf("invalid UStatus detail: %w", err)
			}
			s.Details = append(s.Details, &detail)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("invalid UStatus field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return nil
}

// ToAny packs the status into a protobuf Any.
func (s *UStatus) ToAny() (*anypb.Any, error) {
	value, err := s.MarshalProto()
	if err != nil {
		return nil, err
	}
	return &anypb.Any{TypeUrl: UStatusTypeURL, Value: value}, nil
}

// StatusFromAny unpacks a status from a protobuf Any. It fails if the Any
// holds a different message type.
func StatusFromAny(a *anypb.Any) (*UStatus, error) {
	if a.GetTypeUrl() != UStatusTypeURL {
		return nil, fmt.Errorf("mismatched message type: got %q, want %q", a.GetTypeUrl(), UStatusTypeURL)
	}
	var s UStatus
	if err := s.UnmarshalProto(a.GetValue()); err != nil {
		return nil, err
	}
	return &s, nil
}
