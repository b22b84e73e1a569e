package uid_test

import (
	"testing"

	"github.com/codeninja55/dcmcore/uid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUID_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		uid   string
		valid bool
	}{
		{"valid transfer syntax UID", "1.2.840.10008.1.2", true},
		{"valid SOP class UID", "1.2.840.10008.5.1.4.1.1.1", true},
		{"valid private UID", "1.2.840.123456.1.2.3.4.5", true},
		{"valid single digit components", "1.2.3", true},
		{"empty string", "", false},
		{"contains letters", "1.2.abc.4", false},
		{"contains spaces", "1.2.840. 10008.1.2", false},
		{"starts with dot", ".1.2.840.10008.1.2", false},
		{"ends with dot", "1.2.840.10008.1.2.", false},
		{"consecutive dots", "1.2..840.10008", false},
		{"leading zero in component", "1.02.840.10008", false},
		{"too long (>64 chars)", "1.2.3.4.5.6.7.8.9.10.11.12.13.14.15.16.17.18.19.20.21.22.23.24.25", false},
		{"exactly 64 characters", "1.2.840.10008.5.1.4.1.1.1.2.3.4.5.6.7.8.9.10.11.12.13.14.15.1234", true},
		{"component with only zero", "1.2.0.10008", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, uid.IsValid(tt.uid))
		})
	}
}

func TestUID_Parse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid UID", "1.2.840.10008.1.2", "1.2.840.10008.1.2", false},
		{"invalid UID", "1.2.abc.4", "", true},
		{"empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uid.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestUID_String(t *testing.T) {
	u, err := uid.Parse("1.2.840.10008.1.2")
	require.NoError(t, err)
	assert.Equal(t, "1.2.840.10008.1.2", u.String())
}

func TestUID_Equals(t *testing.T) {
	u1, err := uid.Parse("1.2.840.10008.1.2")
	require.NoError(t, err)

	u2, err := uid.Parse("1.2.840.10008.1.2")
	require.NoError(t, err)

	u3, err := uid.Parse("1.2.840.10008.1.2.1")
	require.NoError(t, err)

	assert.True(t, u1.Equals(u2))
	assert.False(t, u1.Equals(u3))
}

func TestUID_TransferSyntaxUIDs(t *testing.T) {
	tests := []struct {
		name string
		uid  uid.UID
		want string
	}{
		{"Implicit VR Little Endian", uid.ImplicitVRLittleEndian, "1.2.840.10008.1.2"},
		{"Explicit VR Little Endian", uid.ExplicitVRLittleEndian, "1.2.840.10008.1.2.1"},
		{"Explicit VR Big Endian", uid.ExplicitVRBigEndian, "1.2.840.10008.1.2.2"},
		{"Deflated Explicit VR Little Endian", uid.DeflatedExplicitVRLittleEndian, "1.2.840.10008.1.2.1.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.uid.String())
			assert.True(t, uid.IsValid(tt.uid.String()))
		})
	}
}

func TestIsEncapsulated(t *testing.T) {
	tests := []struct {
		name string
		uid  string
		want bool
	}{
		{"Implicit VR Little Endian is native", uid.ImplicitVRLittleEndian.String(), false},
		{"Explicit VR Little Endian is native", uid.ExplicitVRLittleEndian.String(), false},
		{"Deflated Explicit VR Little Endian is native", uid.DeflatedExplicitVRLittleEndian.String(), false},
		{"Explicit VR Big Endian is native", uid.ExplicitVRBigEndian.String(), false},
		{"JPEG Baseline is encapsulated", "1.2.840.10008.1.2.4.50", true},
		{"RLE Lossless is encapsulated", "1.2.840.10008.1.2.5", true},
		{"unknown UID is encapsulated", "1.2.3.4.5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uid.IsEncapsulated(tt.uid))
		})
	}
}
