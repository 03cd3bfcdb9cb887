// Package commands implements the up-uri CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/uprotocol/up-go/internal/vectors"
	"github.com/uprotocol/up-go/pkg/log"
	"github.com/uprotocol/up-go/pkg/uprotocol"
	"github.com/uprotocol/up-go/pkg/uri/serializer"
	"github.com/uprotocol/up-go/pkg/wire"
	"gopkg.in/yaml.v3"
)

// Input and output forms accepted by the commands.
const (
	FormAuto  = "auto"
	FormLong  = "long"
	FormMicro = "micro"
	FormWire  = "wire"
	FormYAML  = "yaml"
)

// Session carries the output writer and tracer shared by all commands.
type Session struct {
	Out    io.Writer
	Tracer *log.Tracer
}

// NewSession creates a session writing to out. A nil logger disables
// tracing.
func NewSession(out io.Writer, logger log.Logger) *Session {
	return &Session{Out: out, Tracer: log.NewTracer(logger)}
}

// Parse decodes input given in form into a UUri. FormAuto treats input
// starting with "/" or containing ":" as long form and anything else as hex
// encoded micro form.
func (s *Session) Parse(input, form string) (*uprotocol.UUri, error) {
	if form == "" || form == FormAuto {
		form = detectForm(input)
	}

	switch form {
	case FormLong:
		start := time.Now()
		u, err := serializer.LongURISerializer{}.Deserialize(input)
		if err != nil {
			s.Tracer.Error(log.DirectionDecode, log.FormLong, err, []byte(input), "parse")
			return nil, err
		}
		s.Tracer.Conversion(log.DirectionDecode, log.FormLong, input, nil, time.Since(start))
		return u, nil

	case FormMicro:
		data, err := decodeHex(input)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		u, err := serializer.MicroURISerializer{}.Deserialize(data)
		if err != nil {
			s.Tracer.Error(log.DirectionDecode, log.FormMicro, err, data, "parse")
			return nil, err
		}
		s.Tracer.Conversion(log.DirectionDecode, log.FormMicro, serializer.LongString(u), data, time.Since(start))
		return u, nil

	case FormWire:
		data, err := decodeHex(input)
		if err != nil {
			return nil, err
		}
		start := time.Now()
		u, err := wire.DecodeURI(data)
		if err != nil {
			s.Tracer.Error(log.DirectionDecode, log.FormWire, err, data, "parse")
			return nil, err
		}
		s.Tracer.Conversion(log.DirectionDecode, log.FormWire, serializer.LongString(u), data, time.Since(start))
		return u, nil

	case FormYAML:
		var y vectors.URI
		if err := yaml.Unmarshal([]byte(input), &y); err != nil {
			return nil, fmt.Errorf("invalid yaml uri: %w", err)
		}
		return y.ToUUri()

	default:
		return nil, fmt.Errorf("unknown form %q (use auto, long, micro, wire, yaml)", form)
	}
}

// Encode serializes u into form. Binary forms are returned hex encoded.
func (s *Session) Encode(u *uprotocol.UUri, form string) (string, error) {
	start := time.Now()
	switch form {
	case FormLong:
		out, err := serializer.LongURISerializer{}.Serialize(u)
		if err != nil {
			s.Tracer.Error(log.DirectionEncode, log.FormLong, err, nil, "encode")
			return "", err
		}
		s.Tracer.Conversion(log.DirectionEncode, log.FormLong, out, nil, time.Since(start))
		return out, nil

	case FormMicro:
		data, err := serializer.MicroURISerializer{}.Serialize(u)
		if err != nil {
			s.Tracer.Error(log.DirectionEncode, log.FormMicro, err, nil, "encode")
			return "", err
		}
		s.Tracer.Conversion(log.DirectionEncode, log.FormMicro, serializer.LongString(u), data, time.Since(start))
		return hex.EncodeToString(data), nil

	case FormWire:
		data, err := wire.EncodeURI(u)
		if err != nil {
			s.Tracer.Error(log.DirectionEncode, log.FormWire, err, nil, "encode")
			return "", err
		}
		s.Tracer.Conversion(log.DirectionEncode, log.FormWire, serializer.LongString(u), data, time.Since(start))
		return hex.EncodeToString(data), nil

	case FormYAML:
		var b strings.Builder
		if err := writeYAML(&b, vectors.FromUUri(u)); err != nil {
			return "", err
		}
		return strings.TrimRight(b.String(), "\n"), nil

	default:
		return "", fmt.Errorf("unknown form %q (use long, micro, wire, yaml)", form)
	}
}

func detectForm(input string) string {
	if strings.HasPrefix(input, "/") || strings.HasPrefix(input, `\`) || strings.Contains(input, ":") {
		return FormLong
	}
	return FormMicro
}

func decodeHex(input string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(input), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
