package commands

import (
	"fmt"

	"github.com/uprotocol/up-go/internal/vectors"
	"github.com/uprotocol/up-go/pkg/log"
	"github.com/uprotocol/up-go/pkg/uprotocol"
	"github.com/uprotocol/up-go/pkg/uri/serializer"
	"github.com/uprotocol/up-go/pkg/uri/validator"
)

// Description is the YAML document printed by decode and resolve.
type Description struct {
	URI   *vectors.URI `yaml:"uri"`
	Long  string       `yaml:"long,omitempty"`
	Micro string       `yaml:"micro,omitempty"`
	Wire  string       `yaml:"wire,omitempty"`
}

// Classification is the YAML document printed by classify.
type Classification struct {
	Long        string `yaml:"long,omitempty"`
	Empty       bool   `yaml:"empty"`
	LongForm    bool   `yaml:"long_form"`
	MicroForm   bool   `yaml:"micro_form"`
	Resolved    bool   `yaml:"resolved"`
	RPCMethod   bool   `yaml:"rpc_method"`
	RPCResponse bool   `yaml:"rpc_response"`
	Invalid     string `yaml:"invalid,omitempty"`
}

// RunDecode parses input and prints the URI in every form it has.
func RunDecode(s *Session, input, from string) error {
	u, err := s.Parse(input, from)
	if err != nil {
		return err
	}
	return writeYAML(s.Out, s.describe(u))
}

// RunEncode parses input and prints it serialized into form to.
func RunEncode(s *Session, input, from, to string) error {
	u, err := s.Parse(input, from)
	if err != nil {
		return err
	}
	out, err := s.Encode(u, to)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.Out, out)
	return err
}

// RunClassify parses input and prints the validator predicates.
func RunClassify(s *Session, input, from string) error {
	u, err := s.Parse(input, from)
	if err != nil {
		return err
	}

	c := Classification{
		Long:        serializer.LongString(u),
		Empty:       validator.IsEmpty(u),
		LongForm:    validator.IsLongForm(u),
		MicroForm:   validator.IsMicroForm(u),
		Resolved:    validator.IsResolved(u),
		RPCMethod:   validator.IsRPCMethod(u),
		RPCResponse: validator.IsRPCResponse(u),
	}
	if verr := validator.Validate(u); verr != nil {
		c.Invalid = verr.Error()
	}

	s.Tracer.Validation(formOf(input, from), &log.ValidationEvent{
		URI:         c.Long,
		LongForm:    c.LongForm,
		MicroForm:   c.MicroForm,
		Resolved:    c.Resolved,
		RPCMethod:   c.RPCMethod,
		RPCResponse: c.RPCResponse,
	})
	return writeYAML(s.Out, c)
}

// RunResolve merges a long form and a hex micro form into one URI.
func RunResolve(s *Session, long, microHex string) error {
	var micro []byte
	if microHex != "" {
		var err error
		if micro, err = decodeHex(microHex); err != nil {
			return err
		}
	}

	u, err := serializer.BuildResolved(long, micro)
	if err != nil {
		s.Tracer.Error(log.DirectionDecode, log.FormMicro, err, micro, "resolve")
		return err
	}
	if !validator.IsResolved(u) {
		fmt.Fprintln(s.Out, "# warning: result is not resolved")
	}
	return writeYAML(s.Out, s.describe(u))
}

// describe renders u in all forms it can be serialized to. Forms that fail
// are left out.
func (s *Session) describe(u *uprotocol.UUri) Description {
	d := Description{URI: vectors.FromUUri(u)}
	if validator.IsLongForm(u) {
		d.Long, _ = s.Encode(u, FormLong)
	}
	if validator.IsMicroForm(u) {
		d.Micro, _ = s.Encode(u, FormMicro)
	}
	d.Wire, _ = s.Encode(u, FormWire)
	return d
}

func formOf(input, from string) log.Form {
	if from == "" || from == FormAuto {
		from = detectForm(input)
	}
	switch from {
	case FormMicro:
		return log.FormMicro
	case FormWire:
		return log.FormWire
	default:
		return log.FormLong
	}
}
