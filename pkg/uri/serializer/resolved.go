package serializer

import (
	"github.com/uprotocol/up-go/pkg/uprotocol"
)

// BuildResolved combines a long form and a micro form of the same URI.
// Names, instance and message come from the long form; ids and the major
// version come from the micro form. The authority of the micro form wins
// when it carries an IP or id, otherwise the long form authority is used.
//
// The result is only resolved (see validator.IsResolved) when the URI is
// local: a remote authority has either a name or an address, never both.
func BuildResolved(longURI string, microURI []byte) (*uprotocol.UUri, error) {
	if longURI == "" && len(microURI) == 0 {
		return nil, uprotocol.NewSerializationError("Input long and micro URIs are empty")
	}

	long, _ := LongURISerializer{}.Deserialize(longURI)

	micro := &uprotocol.UUri{}
	if len(microURI) > 0 {
		var err error
		micro, err = MicroURISerializer{}.Deserialize(microURI)
		if err != nil {
			return nil, err
		}
	}

	resolved := &uprotocol.UUri{Authority: long.Authority}
	if !micro.Authority.IsLocal() {
		resolved.Authority = micro.Authority
	}

	if long.Entity != nil || micro.Entity != nil {
		entity := &uprotocol.UEntity{}
		if micro.Entity != nil {
			entity.ID = micro.Entity.ID
			entity.VersionMajor = micro.Entity.VersionMajor
		}
		if long.Entity != nil {
			entity.Name = long.Entity.Name
			if entity.VersionMajor == nil {
				entity.VersionMajor = long.Entity.VersionMajor
			}
		}
		resolved.Entity = entity
	}

	if long.Resource != nil || micro.Resource != nil {
		resource := &uprotocol.UResource{}
		if long.Resource != nil {
			*resource = *long.Resource
		} else {
			*resource = *micro.Resource
		}
		if micro.Resource != nil {
			resource.ID = micro.Resource.ID
		}
		resolved.Resource = resource
	}

	return resolved, nil
}
