package vr_test

import (
	"testing"

	"github.com/codeninja55/dcmcore/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVR_String(t *testing.T) {
	tests := []struct {
		name     string
		vr       vr.VR
		expected string
	}{
		{"Application Entity", vr.ApplicationEntity, "AE"},
		{"Age String", vr.AgeString, "AS"},
		{"Code String", vr.CodeString, "CS"},
		{"Person Name", vr.PersonName, "PN"},
		{"Unique Identifier", vr.UniqueIdentifier, "UI"},
		{"Other Byte", vr.OtherByte, "OB"},
		{"Sequence", vr.SequenceOfItems, "SQ"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.vr.String())
		})
	}
}

func TestVR_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		vrString string
		expected bool
	}{
		{"valid AE", "AE", true},
		{"valid PN", "PN", true},
		{"valid SQ", "SQ", true},
		{"invalid XX", "XX", false},
		{"invalid ZZ", "ZZ", false},
		{"empty string", "", false},
		{"single character", "A", false},
		{"three characters", "ABC", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := vr.IsValid(tc.vrString)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestVR_Parse(t *testing.T) {
	tests := []struct {
		name      string
		vrString  string
		expected  vr.VR
		wantError bool
	}{
		{"valid AE", "AE", vr.ApplicationEntity, false},
		{"valid PN", "PN", vr.PersonName, false},
		{"valid UI", "UI", vr.UniqueIdentifier, false},
		{"invalid XX", "XX", vr.Unset, true},
		{"empty string", "", vr.Unset, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := vr.Parse(tc.vrString)
			if tc.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			}
		})
	}
}

func TestVR_Capacity(t *testing.T) {
	tests := []struct {
		name     string
		vr       vr.VR
		expected int
	}{
		{"AE max 16", vr.ApplicationEntity, 16},
		{"AS max 4", vr.AgeString, 4},
		{"CS max 16", vr.CodeString, 16},
		{"UI max 64", vr.UniqueIdentifier, 64},
		{"PN max 64", vr.PersonName, 64},
		{"LO max 64", vr.LongString, 64},
		{"SH max 16", vr.ShortString, 16},
		{"OB unlimited", vr.OtherByte, 0},
		{"SQ unlimited", vr.SequenceOfItems, 0},
		{"UN unlimited", vr.Unknown, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.vr.Capacity()
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestVR_AllowsBackslash(t *testing.T) {
	tests := []struct {
		name     string
		vr       vr.VR
		expected bool
	}{
		{"PN allows backslash", vr.PersonName, true},
		{"AE does not allow", vr.ApplicationEntity, false},
		{"CS does not allow", vr.CodeString, false},
		{"UI does not allow", vr.UniqueIdentifier, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.vr.AllowsBackslash()
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestVR_Class(t *testing.T) {
	tests := []struct {
		name     string
		vr       vr.VR
		expected vr.VRClass
	}{
		{"US is numeric", vr.UnsignedShort, vr.ClassNumeric},
		{"UL is numeric", vr.UnsignedLong, vr.ClassNumeric},
		{"SS is numeric", vr.SignedShort, vr.ClassNumeric},
		{"FL is numeric", vr.FloatingPointSingle, vr.ClassNumeric},
		{"FD is numeric", vr.FloatingPointDouble, vr.ClassNumeric},
		{"AT is numeric", vr.AttributeTag, vr.ClassNumeric},
		{"LT is string single", vr.LongText, vr.ClassStringSingle},
		{"ST is string single", vr.ShortText, vr.ClassStringSingle},
		{"UT is string single", vr.UnlimitedText, vr.ClassStringSingle},
		{"PN is string multi", vr.PersonName, vr.ClassStringMulti},
		{"DS is string multi", vr.DecimalString, vr.ClassStringMulti},
		{"LO is string multi", vr.LongString, vr.ClassStringMulti},
		{"OB is binary", vr.OtherByte, vr.ClassBinary},
		{"OW is binary", vr.OtherWord, vr.ClassBinary},
		{"UN is binary", vr.Unknown, vr.ClassBinary},
		{"SQ is sequence", vr.SequenceOfItems, vr.ClassSequence},
		{"Unset is error", vr.Unset, vr.ClassError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.vr.Class())
		})
	}
}

func TestVR_Size(t *testing.T) {
	tests := []struct {
		name     string
		vr       vr.VR
		expected int
	}{
		{"SS is 2 bytes", vr.SignedShort, 2},
		{"US is 2 bytes", vr.UnsignedShort, 2},
		{"SL is 4 bytes", vr.SignedLong, 4},
		{"UL is 4 bytes", vr.UnsignedLong, 4},
		{"FL is 4 bytes", vr.FloatingPointSingle, 4},
		{"AT is 4 bytes", vr.AttributeTag, 4},
		{"SV is 8 bytes", vr.SignedVeryLong, 8},
		{"UV is 8 bytes", vr.UnsignedVeryLong, 8},
		{"FD is 8 bytes", vr.FloatingPointDouble, 8},
		{"PN is not numeric", vr.PersonName, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.vr.Size())
		})
	}
}
