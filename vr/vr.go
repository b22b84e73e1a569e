// Package vr defines DICOM Value Representations (VRs) and their properties.
//
// Value Representations specify the data type and format of DICOM element values.
// Each VR belongs to exactly one VR class, which governs how an Element stores and
// validates its value.
//
// See DICOM Part 5, Section 6.2:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
package vr

import (
	"fmt"
)

// VR represents a DICOM Value Representation type.
// Each VR defines how element values are encoded and interpreted.
type VR uint8

// Standard DICOM Value Representations as defined in Part 5, Section 6.2.
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
const (
	// Unset is the zero value; never a valid VR for an assigned element.
	Unset VR = iota
	// ApplicationEntity (AE) - Application Entity title.
	ApplicationEntity
	// AgeString (AS) - Age in format nnnW, nnnM, nnnY.
	AgeString
	// AttributeTag (AT) - Tag (4 bytes, group-element pair).
	AttributeTag
	// CodeString (CS) - Code value.
	CodeString
	// Date (DA) - Date in format YYYYMMDD.
	Date
	// DecimalString (DS) - Decimal number as string.
	DecimalString
	// DateTime (DT) - Date and time.
	DateTime
	// FloatingPointDouble (FD) - 64-bit floating point.
	FloatingPointDouble
	// FloatingPointSingle (FL) - 32-bit floating point.
	FloatingPointSingle
	// IntegerString (IS) - Integer as string.
	IntegerString
	// LongString (LO) - Character string.
	LongString
	// LongText (LT) - Text, VM restricted to 1.
	LongText
	// OtherByte (OB) - Byte string.
	OtherByte
	// OtherDouble (OD) - 64-bit floating point array.
	OtherDouble
	// OtherFloat (OF) - 32-bit floating point array.
	OtherFloat
	// OtherLong (OL) - 32-bit integer array.
	OtherLong
	// OtherVeryLong (OV) - 64-bit integer array.
	OtherVeryLong
	// OtherWord (OW) - 16-bit integer array.
	OtherWord
	// PersonName (PN) - Person's name, components separated by '^', groups by '='.
	PersonName
	// ShortString (SH) - Short character string.
	ShortString
	// SignedLong (SL) - Signed 32-bit integer.
	SignedLong
	// SequenceOfItems (SQ) - Sequence containing nested data sets.
	SequenceOfItems
	// SignedShort (SS) - Signed 16-bit integer.
	SignedShort
	// ShortText (ST) - Short text, VM restricted to 1.
	ShortText
	// SignedVeryLong (SV) - Signed 64-bit integer.
	SignedVeryLong
	// Time (TM) - Time in format HHMMSS.FFFFFF.
	Time
	// UnlimitedCharacters (UC) - Unlimited length character string.
	UnlimitedCharacters
	// UniqueIdentifier (UI) - UID in dotted notation.
	UniqueIdentifier
	// UnsignedLong (UL) - Unsigned 32-bit integer.
	UnsignedLong
	// Unknown (UN) - Unknown value type.
	Unknown
	// UniversalResourceIdentifier (UR) - URI or URL, VM restricted to 1.
	UniversalResourceIdentifier
	// UnsignedShort (US) - Unsigned 16-bit integer.
	UnsignedShort
	// UnlimitedText (UT) - Unlimited length text, VM restricted to 1.
	UnlimitedText
	// UnsignedVeryLong (UV) - Unsigned 64-bit integer.
	UnsignedVeryLong
)

// VRClass groups VRs into the families that determine how an Element's
// value is validated and stored.
type VRClass uint8

const (
	// ClassError is the class of an unrecognized or unset VR.
	ClassError VRClass = iota
	// ClassNumeric covers integer and floating-point VRs.
	ClassNumeric
	// ClassStringSingle covers text VRs restricted to a single value (VM==1).
	ClassStringSingle
	// ClassStringMulti covers character-string VRs that may hold multiple
	// backslash-separated values.
	ClassStringMulti
	// ClassBinary covers opaque byte-buffer VRs.
	ClassBinary
	// ClassSequence is the class of SQ.
	ClassSequence
)

// vrStrings maps VR constants to their string representations.
var vrStrings = map[VR]string{
	ApplicationEntity: "AE", AgeString: "AS", AttributeTag: "AT", CodeString: "CS",
	Date: "DA", DecimalString: "DS", DateTime: "DT", FloatingPointDouble: "FD",
	FloatingPointSingle: "FL", IntegerString: "IS", LongString: "LO", LongText: "LT",
	OtherByte: "OB", OtherDouble: "OD", OtherFloat: "OF", OtherLong: "OL",
	OtherVeryLong: "OV", OtherWord: "OW", PersonName: "PN", ShortString: "SH",
	SignedLong: "SL", SequenceOfItems: "SQ", SignedShort: "SS", ShortText: "ST",
	SignedVeryLong: "SV", Time: "TM", UnlimitedCharacters: "UC", UniqueIdentifier: "UI",
	UnsignedLong: "UL", Unknown: "UN", UniversalResourceIdentifier: "UR", UnsignedShort: "US",
	UnlimitedText: "UT", UnsignedVeryLong: "UV",
}

// stringToVR maps string representations to VR constants.
var stringToVR = map[string]VR{
	"AE": ApplicationEntity, "AS": AgeString, "AT": AttributeTag, "CS": CodeString,
	"DA": Date, "DS": DecimalString, "DT": DateTime, "FD": FloatingPointDouble,
	"FL": FloatingPointSingle, "IS": IntegerString, "LO": LongString, "LT": LongText,
	"OB": OtherByte, "OD": OtherDouble, "OF": OtherFloat, "OL": OtherLong,
	"OV": OtherVeryLong, "OW": OtherWord, "PN": PersonName, "SH": ShortString,
	"SL": SignedLong, "SQ": SequenceOfItems, "SS": SignedShort, "ST": ShortText,
	"SV": SignedVeryLong, "TM": Time, "UC": UnlimitedCharacters, "UI": UniqueIdentifier,
	"UL": UnsignedLong, "UN": Unknown, "UR": UniversalResourceIdentifier, "US": UnsignedShort,
	"UT": UnlimitedText, "UV": UnsignedVeryLong,
}

// String returns the two-character string representation of the VR.
func (v VR) String() string {
	if s, ok := vrStrings[v]; ok {
		return s
	}
	return "UN"
}

// IsValid returns true if the given string is a valid VR identifier.
func IsValid(s string) bool {
	_, ok := stringToVR[s]
	return ok
}

// Parse parses a two-character VR string and returns the corresponding VR constant.
func Parse(s string) (VR, error) {
	if v, ok := stringToVR[s]; ok {
		return v, nil
	}
	return Unset, fmt.Errorf("invalid VR: %q", s)
}

// Class classifies v into the VR class that governs its value storage and
// validation rules. Unrecognized VRs return ClassError.
func (v VR) Class() VRClass {
	switch v {
	case SignedShort, UnsignedShort, SignedLong, UnsignedLong,
		SignedVeryLong, UnsignedVeryLong, FloatingPointSingle, FloatingPointDouble,
		AttributeTag:
		return ClassNumeric
	case LongText, ShortText, UnlimitedText, UniversalResourceIdentifier:
		return ClassStringSingle
	case ApplicationEntity, AgeString, CodeString, Date, DecimalString, DateTime,
		IntegerString, LongString, PersonName, ShortString, Time,
		UnlimitedCharacters, UniqueIdentifier:
		return ClassStringMulti
	case OtherByte, OtherDouble, OtherFloat, OtherLong, OtherVeryLong, OtherWord, Unknown:
		return ClassBinary
	case SequenceOfItems:
		return ClassSequence
	default:
		return ClassError
	}
}

// Size returns the scalar byte width of a single NUMERIC value for this VR,
// or 0 if v is not a NUMERIC VR.
func (v VR) Size() int {
	switch v {
	case SignedShort, UnsignedShort:
		return 2
	case SignedLong, UnsignedLong, FloatingPointSingle, AttributeTag:
		return 4
	case SignedVeryLong, UnsignedVeryLong, FloatingPointDouble:
		return 8
	default:
		return 0
	}
}

// Capacity returns the maximum allowed byte length of a single STRING_*
// value for this VR, or 0 for VRs with unlimited textual capacity.
func (v VR) Capacity() int {
	switch v {
	case ApplicationEntity:
		return 16
	case AgeString:
		return 4
	case CodeString:
		return 16
	case Date:
		return 8
	case DecimalString:
		return 16
	case DateTime:
		return 26
	case IntegerString:
		return 12
	case LongString:
		return 64
	case LongText:
		return 10240
	case PersonName:
		return 64 // per component group
	case ShortString:
		return 16
	case ShortText:
		return 1024
	case Time:
		return 14
	case UniqueIdentifier:
		return 64
	default:
		return 0 // unlimited (UC, UR, UT) or not a string VR
	}
}

// AllowsBackslash returns true if this VR allows backslash characters within
// a single value. Every other STRING_* VR reserves backslash as the
// value-multiplicity separator, so an embedded backslash would be
// ambiguous with a second value.
func (v VR) AllowsBackslash() bool {
	return v == PersonName
}
