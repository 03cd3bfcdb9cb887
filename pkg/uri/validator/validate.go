package validator

import "github.com/uprotocol/up-go/pkg/uprotocol"

// Validate checks that the URI is not empty and is either in long or micro
// form.
func Validate(u *uprotocol.UUri) error {
	if IsEmpty(u) {
		return uprotocol.NewValidationError("Uri is empty.")
	}
	if IsLongForm(u) || IsMicroForm(u) {
		return nil
	}
	if u.Entity.IsEmpty() {
		return uprotocol.NewValidationError("Uri is missing uSoftware Entity.")
	}
	return uprotocol.NewValidationError("Uri is neither in long nor in micro form.")
}

// ValidateRPCMethod checks that the URI is valid and addresses an RPC method.
func ValidateRPCMethod(u *uprotocol.UUri) error {
	if err := Validate(u); err != nil {
		return err
	}
	if !IsRPCMethod(u) {
		return uprotocol.NewValidationError("Invalid RPC method uri. Uri should be the method to be called, or method from response.")
	}
	return nil
}

// ValidateRPCResponse checks that the URI is valid and addresses the
// rpc.response resource.
func ValidateRPCResponse(u *uprotocol.UUri) error {
	if err := Validate(u); err != nil {
		return err
	}
	if !IsRPCResponse(u) {
		return uprotocol.NewValidationError("Invalid RPC response type.")
	}
	return nil
}
