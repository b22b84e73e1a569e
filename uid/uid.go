// Package uid provides DICOM Unique Identifier (UID) handling, validation,
// and the transfer-syntax UIDs the core needs to classify pixel data as
// encapsulated or native.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_9
package uid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// UID represents a DICOM Unique Identifier.
//
// UIDs are character strings composed of numeric components separated by
// periods (.). They follow the ISO 8824 object identifier format and must:
//   - Contain only digits (0-9) and periods (.)
//   - Not exceed 64 characters in length
//   - Not have leading or trailing periods
//   - Not have consecutive periods
//   - Not have leading zeros in components (except "0" by itself)
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_9.1
type UID struct {
	value string
}

// String returns the string representation of the UID.
func (u UID) String() string {
	return u.value
}

// Equals returns true if this UID equals the other UID.
func (u UID) Equals(other UID) bool {
	return u.value == other.value
}

// IsValid checks if a string is a valid DICOM UID.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_9.1
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	if len(s) > 64 {
		return false
	}
	if s[0] == '.' || s[len(s)-1] == '.' {
		return false
	}
	components := strings.Split(s, ".")
	if len(components) < 2 {
		return false
	}

	for _, comp := range components {
		if comp == "" {
			return false
		}
		if len(comp) > 1 && comp[0] == '0' {
			return false
		}
		for _, ch := range comp {
			if ch < '0' || ch > '9' {
				return false
			}
		}
	}
	return true
}

// Parse validates and creates a UID from a string.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_9.1
func Parse(s string) (UID, error) {
	if !IsValid(s) {
		return UID{}, fmt.Errorf("invalid UID: %q", s)
	}
	return UID{value: s}, nil
}

// MustParse validates and creates a UID from a string, panicking on error.
// This should only be used for well-known UIDs that are guaranteed to be valid.
func MustParse(s string) UID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// nonEncapsulated lists the transfer syntax UIDs whose pixel data is native
// (one contiguous buffer) rather than encapsulated into fragmented items.
var nonEncapsulated = map[string]struct{}{
	ImplicitVRLittleEndian.String():         {},
	ExplicitVRLittleEndian.String():         {},
	DeflatedExplicitVRLittleEndian.String(): {},
	ExplicitVRBigEndian.String():            {},
}

// IsEncapsulated reports whether uid identifies a transfer syntax whose
// pixel data is fragmented into encapsulated items, as opposed to one of
// the four native/non-encapsulated transfer syntaxes.
func IsEncapsulated(uid string) bool {
	_, native := nonEncapsulated[uid]
	return !native
}

// Generate creates a new unique DICOM UID.
//
// This implementation uses a combination of:
//   - Organizational root: "1.2.826.0.1.3680043.10" (PixelMed reserved root)
//   - Unix timestamp in microseconds
//   - Random 32-bit value for uniqueness
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_9.1
func Generate() string {
	const orgRoot = "1.2.826.0.1.3680043.10"

	timestamp := time.Now().UnixMicro()

	var randomBytes [4]byte
	if _, err := rand.Read(randomBytes[:]); err != nil {
		return fmt.Sprintf("%s.%d", orgRoot, timestamp)
	}
	randomValue := binary.BigEndian.Uint32(randomBytes[:])

	return fmt.Sprintf("%s.%d.%d", orgRoot, timestamp, randomValue)
}
