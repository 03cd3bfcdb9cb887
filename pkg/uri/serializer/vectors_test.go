package serializer

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uprotocol/up-go/internal/vectors"
	"github.com/uprotocol/up-go/pkg/uri/validator"
)

func loadVectors(t *testing.T) *vectors.File {
	t.Helper()
	f, err := vectors.LoadFile("testdata/vectors.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, f.Micro)
	require.NotEmpty(t, f.Long)
	return f
}

func TestMicroVectors(t *testing.T) {
	for _, v := range loadVectors(t).Micro {
		t.Run(v.Name, func(t *testing.T) {
			var s MicroURISerializer

			if v.URI == nil {
				_, err := s.Deserialize(v.MicroBytes())
				assert.EqualError(t, err, v.Error)
				return
			}

			u, err := v.URI.ToUUri()
			require.NoError(t, err)

			encoded, err := s.Serialize(u)
			if v.Error != "" {
				assert.EqualError(t, err, v.Error)
				assert.False(t, validator.IsMicroForm(u) && !validator.IsEmpty(u))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, v.Micro, hex.EncodeToString(encoded))
			assert.Equal(t, UPVersion, encoded[0])

			decoded, err := s.Deserialize(encoded)
			require.NoError(t, err)
			assert.Equal(t, u, decoded)
			assert.True(t, validator.IsMicroForm(decoded))
		})
	}
}

func TestLongVectors(t *testing.T) {
	for _, v := range loadVectors(t).Long {
		t.Run(v.Name, func(t *testing.T) {
			var s LongURISerializer

			u, err := v.URI.ToUUri()
			require.NoError(t, err)

			encoded, err := s.Serialize(u)
			require.NoError(t, err)
			assert.Equal(t, v.Long, encoded)

			decoded, err := s.Deserialize(encoded)
			require.NoError(t, err)
			assert.Equal(t, u, decoded)
		})
	}
}
