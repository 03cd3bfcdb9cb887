package serializer

import (
	"strconv"
	"strings"

	"github.com/uprotocol/up-go/pkg/uprotocol"
)

// LongURISerializer converts between a UUri and its long, human readable
// string form. Authorities addressed by IP or id have no long form spelling
// and are dropped.
type LongURISerializer struct{}

// Serialize returns the long form of u. It never fails; an empty URI yields
// the empty string.
func (LongURISerializer) Serialize(u *uprotocol.UUri) (string, error) {
	if u.IsEmpty() {
		return "", nil
	}

	var sb strings.Builder
	if name, ok := u.Authority.Name(); ok {
		sb.WriteString("//")
		sb.WriteString(name)
	}

	sb.WriteByte('/')
	if u.Entity != nil {
		sb.WriteString(strings.TrimSpace(u.Entity.Name))
		sb.WriteByte('/')
		if u.Entity.VersionMajor != nil {
			sb.WriteString(strconv.FormatUint(uint64(*u.Entity.VersionMajor), 10))
		}
	}

	if r := u.Resource; r != nil {
		sb.WriteByte('/')
		sb.WriteString(r.Name)
		if r.Instance != "" {
			sb.WriteByte('.')
			sb.WriteString(r.Instance)
		}
		if r.Message != "" {
			sb.WriteByte('#')
			sb.WriteString(r.Message)
		}
	}

	return strings.TrimRight(sb.String(), "/"), nil
}

// Deserialize parses a long form URI. It never fails: input that cannot be
// parsed yields an empty UUri. Callers that need error detection must
// validate the result.
func (LongURISerializer) Deserialize(s string) (*uprotocol.UUri, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return &uprotocol.UUri{}, nil
	}

	if _, rest, ok := strings.Cut(s, ":"); ok {
		s = rest
	} else {
		s = strings.ReplaceAll(s, "\\", "/")
	}

	isLocal := !strings.HasPrefix(s, "//")
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return &uprotocol.UUri{}, nil
	}

	var (
		u        uprotocol.UUri
		name     string
		version  string
		resource string
	)

	if isLocal {
		name = parts[1]
		if len(parts) > 2 {
			version = parts[2]
		}
		if len(parts) > 3 {
			resource = parts[3]
		}
	} else {
		if len(parts) > 2 && parts[2] != "" {
			u.Authority = uprotocol.NewRemoteName(parts[2])
		}
		if len(parts) > 3 {
			name = parts[3]
		}
		if len(parts) > 4 {
			version = parts[4]
		}
		if len(parts) > 5 {
			resource = parts[5]
		}
	}

	if name != "" || version != "" {
		u.Entity = &uprotocol.UEntity{Name: name}
		if v, err := strconv.ParseUint(version, 10, 32); err == nil {
			u.Entity.VersionMajor = uprotocol.Uint32(uint32(v))
		}
	}
	if resource != "" {
		u.Resource = uprotocol.ParseResource(resource)
	}

	return &u, nil
}
