package uprotocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteIPConforms(t *testing.T) {
	tests := []struct {
		name string
		ip   []byte
		want IPConformance
	}{
		{"ipv4", []byte{10, 0, 3, 3}, IPv4},
		{"ipv6", make([]byte, 16), IPv6},
		{"six bytes", make([]byte, 6), IPNonConformal},
		{"empty", nil, IPNonConformal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRemoteIP(tt.ip).RemoteIPConforms()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoteIPConformsErrors(t *testing.T) {
	_, err := (&UAuthority{}).RemoteIPConforms()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "No remote", verr.Message)

	_, err = NewRemoteName("vcu.vin").RemoteIPConforms()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Remote is not IP", verr.Message)
}

func TestRemoteIDConforms(t *testing.T) {
	tests := []struct {
		name string
		size int
		want bool
	}{
		{"empty", 0, false},
		{"one byte", 1, true},
		{"max", 255, true},
		{"too long", 256, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRemoteID(make([]byte, tt.size)).RemoteIDConforms()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NewRemoteIP([]byte{1, 2, 3, 4}).RemoteIDConforms()
	assert.EqualError(t, err, "Remote is not ID")

	var local *UAuthority
	_, err = local.RemoteIDConforms()
	assert.EqualError(t, err, "No remote")
}

func TestAuthoritySettersChain(t *testing.T) {
	a := &UAuthority{}
	a.SetName("vcu.vin").SetIP([]byte{1, 2, 3, 4})

	assert.False(t, a.HasName())
	assert.True(t, a.HasIP())
	ip, ok := a.IP()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3, 4}, ip)

	a.SetID([]byte{7})
	assert.True(t, a.HasID())
	assert.False(t, a.HasIP())
}

func TestAuthorityEqual(t *testing.T) {
	assert.True(t, (*UAuthority)(nil).Equal(&UAuthority{}))
	assert.True(t, NewRemoteIP([]byte{1, 2, 3, 4}).Equal(NewRemoteIP([]byte{1, 2, 3, 4})))
	assert.False(t, NewRemoteIP([]byte{1, 2, 3, 4}).Equal(NewRemoteID([]byte{1, 2, 3, 4})))
	assert.False(t, NewRemoteName("a").Equal(nil))
}

func TestAuthorityCloneIsDeep(t *testing.T) {
	a := NewRemoteIP([]byte{1, 2, 3, 4})
	c := a.Clone()
	ip, _ := a.IP()
	ip[0] = 9

	cip, _ := c.IP()
	assert.Equal(t, byte(1), cip[0])
}
