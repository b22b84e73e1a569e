// Package dictionary provides a small, concrete implementation of
// tag.Dictionary.
//
// The full DICOM data dictionary (thousands of standard attributes) is an
// external data table that the core consumes rather than owns.
// StaticDictionary exists so the core is exercisable and testable end to
// end without a mock dictionary in every call site; it covers the
// attributes used by this module's own examples and tests plus a handful
// of commonly seen identifying attributes.
package dictionary

import (
	"github.com/codeninja55/dcmcore/tag"
	"github.com/codeninja55/dcmcore/vr"
	"github.com/go-playground/validator/v10"
)

// entry is a single static dictionary row, struct-tag validated once at
// package initialization.
type entry struct {
	Group   uint16 `validate:"required"`
	Element uint16
	VR      vr.VR  `validate:"required"`
	Keyword string `validate:"required"`
	Public  bool
}

// table is the backing data for StaticDictionary. It is intentionally
// small — see the package doc comment.
var table = []entry{
	{Group: 0x0008, Element: 0x0005, VR: vr.CodeString, Keyword: "SpecificCharacterSet", Public: true},
	{Group: 0x0008, Element: 0x0016, VR: vr.UniqueIdentifier, Keyword: "SOPClassUID", Public: true},
	{Group: 0x0008, Element: 0x0018, VR: vr.UniqueIdentifier, Keyword: "SOPInstanceUID", Public: true},
	{Group: 0x0008, Element: 0x0020, VR: vr.Date, Keyword: "StudyDate", Public: true},
	{Group: 0x0008, Element: 0x0060, VR: vr.CodeString, Keyword: "Modality", Public: true},
	{Group: 0x0008, Element: 0x2218, VR: vr.SequenceOfItems, Keyword: "AnatomicRegionSequence", Public: true},
	{Group: 0x0010, Element: 0x0010, VR: vr.PersonName, Keyword: "PatientName", Public: true},
	{Group: 0x0010, Element: 0x0020, VR: vr.LongString, Keyword: "PatientID", Public: true},
	{Group: 0x0010, Element: 0x0030, VR: vr.Date, Keyword: "PatientBirthDate", Public: true},
	{Group: 0x0010, Element: 0x0040, VR: vr.CodeString, Keyword: "PatientSex", Public: true},
	{Group: 0x0020, Element: 0x000D, VR: vr.UniqueIdentifier, Keyword: "StudyInstanceUID", Public: true},
	{Group: 0x0020, Element: 0x000E, VR: vr.UniqueIdentifier, Keyword: "SeriesInstanceUID", Public: true},
	{Group: 0x0020, Element: 0x0013, VR: vr.IntegerString, Keyword: "InstanceNumber", Public: true},
	{Group: 0x0028, Element: 0x0002, VR: vr.UnsignedShort, Keyword: "SamplesPerPixel", Public: true},
	{Group: 0x0028, Element: 0x0010, VR: vr.UnsignedShort, Keyword: "Rows", Public: true},
	{Group: 0x0028, Element: 0x0011, VR: vr.UnsignedShort, Keyword: "Columns", Public: true},
	{Group: 0x0028, Element: 0x0030, VR: vr.DecimalString, Keyword: "PixelSpacing", Public: true},
	{Group: 0x0028, Element: 0x0100, VR: vr.UnsignedShort, Keyword: "BitsAllocated", Public: true},
	{Group: 0x0028, Element: 0x0101, VR: vr.UnsignedShort, Keyword: "BitsStored", Public: true},
	{Group: 0x0028, Element: 0x0103, VR: vr.UnsignedShort, Keyword: "PixelRepresentation", Public: true},
	{Group: 0x0028, Element: 0x1052, VR: vr.DecimalString, Keyword: "RescaleIntercept", Public: true},
	{Group: 0x0028, Element: 0x1053, VR: vr.DecimalString, Keyword: "RescaleSlope", Public: true},
	{Group: 0x0040, Element: 0xA073, VR: vr.SequenceOfItems, Keyword: "VerifyingObserverSequence", Public: true},
	{Group: 0x0040, Element: 0xA075, VR: vr.PersonName, Keyword: "VerifyingObserverName", Public: true},
	{Group: 0x7FE0, Element: 0x0010, VR: vr.OtherWord, Keyword: "PixelData", Public: true},
}

// StaticDictionary is a concrete, in-process tag.Dictionary backed by a
// fixed table of attributes.
type StaticDictionary struct {
	byTag map[tag.Tag]entry
}

// New builds a StaticDictionary from the package's built-in table.
func New() *StaticDictionary {
	byTag := make(map[tag.Tag]entry, len(table))
	for _, e := range table {
		byTag[tag.New(e.Group, e.Element)] = e
	}
	return &StaticDictionary{byTag: byTag}
}

func (d *StaticDictionary) LookupVR(t tag.Tag) vr.VR {
	if e, ok := d.byTag[t]; ok {
		return e.VR
	}
	return vr.Unset
}

func (d *StaticDictionary) LookupKeyword(t tag.Tag) (string, bool) {
	e, ok := d.byTag[t]
	if !ok {
		return "", false
	}
	return e.Keyword, true
}

func (d *StaticDictionary) IsPublicTag(t tag.Tag) bool {
	if e, ok := d.byTag[t]; ok {
		return e.Public
	}
	return !t.IsPrivate()
}

func init() {
	v := validator.New()
	for _, e := range table {
		if err := v.Struct(e); err != nil {
			panic("dictionary: invalid static table entry: " + err.Error())
		}
	}
	tag.Default = New()
}
