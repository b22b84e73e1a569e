package dcm

import (
	"fmt"
	"strings"

	"github.com/codeninja55/dcmcore/dcmerr"
	"github.com/codeninja55/dcmcore/tag"
	"github.com/codeninja55/dcmcore/vr"
)

// Element is a single DICOM data element: a tag, the VR fixed for that tag
// by the dictionary, and a value assigned at most once.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
type Element struct {
	tag      tag.Tag
	vr       vr.VR
	length   int
	value    Value
	assigned bool
}

// NewElement creates an unassigned element for tag t. The VR is fixed from
// the dictionary; it fails with dcmerr.Invalid if the tag is unknown.
// provisionalLength seeds Length() before a value is assigned (e.g. a
// length read off a stream header); a non-zero provisionalLength is kept
// over the length a setter computes — see setLength.
func NewElement(t tag.Tag, provisionalLength int) (*Element, error) {
	info, err := tag.Find(t)
	if err != nil {
		return nil, dcmerr.Invalidf(t.String(), "unknown tag")
	}
	if provisionalLength%2 != 0 {
		provisionalLength++
	}
	return &Element{tag: t, vr: info.VR, length: provisionalLength}, nil
}

// Tag returns the element's tag.
func (e *Element) Tag() tag.Tag { return e.tag }

// VR returns the element's Value Representation.
func (e *Element) VR() vr.VR { return e.vr }

// Length returns the even encoded byte length of the assigned value (or
// the provisional length, before assignment).
func (e *Element) Length() int { return e.length }

// VM returns the Value Multiplicity: 0 before assignment, the number of
// values after.
func (e *Element) VM() int {
	if !e.assigned {
		return 0
	}
	switch v := e.value.(type) {
	case *stringValue:
		return len(v.values)
	case *numericValue:
		return v.vm()
	default:
		return 1
	}
}

// IsMultivalued reports vm() > 1.
func (e *Element) IsMultivalued() bool { return e.VM() > 1 }

// Assigned reports whether a value has been set.
func (e *Element) Assigned() bool { return e.assigned }

// setLength assigns length only if the element's current length is
// exactly 0. This tolerant, no-overwrite policy means a provisional
// length supplied at construction is trusted over a value computed after
// the fact, even when the two disagree — validate still runs its own
// unconditional checks regardless of which path set length.
func (e *Element) setLength(n int) {
	if e.length == 0 {
		if n%2 != 0 {
			n++
		}
		e.length = n
	}
}

// SetString assigns a STRING_SINGLE or STRING_MULTI value from a single
// DICOM-encoded string. For STRING_MULTI VRs, s is split on the backslash
// separator into the multi-value form; for STRING_SINGLE it is stored as
// the sole value.
func (e *Element) SetString(s string) error {
	if e.assigned {
		return dcmerr.Invalidf(e.tag.String(), "element already assigned")
	}
	class := e.vr.Class()
	if class != vr.ClassStringSingle && class != vr.ClassStringMulti {
		return dcmerr.Invalidf(e.vr.String(), "SetString requires a STRING_* VR")
	}
	var values []string
	if class == vr.ClassStringMulti {
		values = strings.Split(s, "\\")
	} else {
		values = []string{s}
	}
	return e.setStringValues(values)
}

// SetStringMulti assigns an explicit list of values to a STRING_MULTI VR.
// A single-element list collapses to the STRING_SINGLE shape naturally.
func (e *Element) SetStringMulti(values []string) error {
	if e.assigned {
		return dcmerr.Invalidf(e.tag.String(), "element already assigned")
	}
	class := e.vr.Class()
	if class != vr.ClassStringMulti && !(class == vr.ClassStringSingle && len(values) == 1) {
		return dcmerr.Invalidf(e.vr.String(), "SetStringMulti requires a STRING_MULTI VR")
	}
	return e.setStringValues(values)
}

func (e *Element) setStringValues(values []string) error {
	sv := newStringValue(e.vr, values)
	e.value = sv
	e.setLength(sv.encodedLength())
	return e.validate()
}

// SetInteger assigns a single NUMERIC, non-floating-point value: vm
// becomes 1 and length becomes vr.Size().
func (e *Element) SetInteger(v int64) error {
	return e.SetIntegerMulti([]int64{v})
}

// SetIntegerMulti assigns vm values to a NUMERIC, non-floating-point VR.
//
// The element retains values by reference, not by copy, regardless of
// len(values) — callers must not mutate the slice they passed in
// afterward. This is a deliberate sharp edge, not accidental aliasing.
func (e *Element) SetIntegerMulti(values []int64) error {
	if e.assigned {
		return dcmerr.Invalidf(e.tag.String(), "element already assigned")
	}
	if e.vr.Class() != vr.ClassNumeric || e.vr == vr.FloatingPointSingle || e.vr == vr.FloatingPointDouble {
		return dcmerr.Invalidf(e.vr.String(), "SetIntegerMulti requires a non-floating NUMERIC VR")
	}
	nv := &numericValue{vr: e.vr, ints: values}
	e.value = nv
	e.setLength(numericByteLength(e.vr, len(values)))
	return e.validate()
}

// SetDouble assigns a single floating-point NUMERIC value (FL or FD).
func (e *Element) SetDouble(v float64) error {
	return e.SetDoubleMulti([]float64{v})
}

// SetDoubleMulti assigns vm floating-point values to FL or FD, aliasing
// the slice for vm>1 exactly as SetIntegerMulti does.
func (e *Element) SetDoubleMulti(values []float64) error {
	if e.assigned {
		return dcmerr.Invalidf(e.tag.String(), "element already assigned")
	}
	if e.vr != vr.FloatingPointSingle && e.vr != vr.FloatingPointDouble {
		return dcmerr.Invalidf(e.vr.String(), "SetDoubleMulti requires FL or FD")
	}
	nv := &numericValue{vr: e.vr, floats: values}
	e.value = nv
	e.setLength(numericByteLength(e.vr, len(values)))
	return e.validate()
}

// SetBinary assigns a BINARY value; vm is always 1.
func (e *Element) SetBinary(data []byte) error {
	if e.assigned {
		return dcmerr.Invalidf(e.tag.String(), "element already assigned")
	}
	if e.vr.Class() != vr.ClassBinary {
		return dcmerr.Invalidf(e.vr.String(), "SetBinary requires a BINARY VR")
	}
	if data == nil {
		data = []byte{}
	}
	e.value = &bytesValue{vr: e.vr, data: data}
	length := len(data)
	if length%2 != 0 {
		length++
	}
	e.setLength(length)
	return e.validate()
}

// SetSequence assigns a SEQUENCE value; vm is always 1. length is computed
// as the sum, over every item in seq, of the sum of every contained
// element's Length().
func (e *Element) SetSequence(seq *Sequence) error {
	if e.assigned {
		return dcmerr.Invalidf(e.tag.String(), "element already assigned")
	}
	if e.vr.Class() != vr.ClassSequence {
		return dcmerr.Invalidf(e.vr.String(), "SetSequence requires VR SQ")
	}
	total := 0
	for _, item := range seq.items {
		for _, t := range item.tags {
			total += item.elements[t].Length()
		}
	}
	e.value = &sequenceValue{seq: seq}
	e.setLength(total)
	return e.validate()
}

// GetString returns the i-th string value. i must be < VM().
func (e *Element) GetString(i int) (string, error) {
	sv, err := e.stringValue()
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(sv.values) {
		return "", dcmerr.Invalidf(e.tag.String(), "index %d out of range [0,%d)", i, len(sv.values))
	}
	return sv.values[i], nil
}

// GetInteger returns the i-th integer value. i must be < VM().
func (e *Element) GetInteger(i int) (int64, error) {
	nv, err := e.numericValue()
	if err != nil {
		return 0, err
	}
	if nv.ints == nil {
		return 0, dcmerr.Invalidf(e.tag.String(), "element is not integer-valued")
	}
	if i < 0 || i >= len(nv.ints) {
		return 0, dcmerr.Invalidf(e.tag.String(), "index %d out of range [0,%d)", i, len(nv.ints))
	}
	return nv.ints[i], nil
}

// GetDouble returns the i-th floating-point value. i must be < VM().
func (e *Element) GetDouble(i int) (float64, error) {
	nv, err := e.numericValue()
	if err != nil {
		return 0, err
	}
	if nv.floats == nil {
		return 0, dcmerr.Invalidf(e.tag.String(), "element is not float-valued")
	}
	if i < 0 || i >= len(nv.floats) {
		return 0, dcmerr.Invalidf(e.tag.String(), "index %d out of range [0,%d)", i, len(nv.floats))
	}
	return nv.floats[i], nil
}

// GetBinary returns the BINARY value's bytes.
func (e *Element) GetBinary() ([]byte, error) {
	if !e.assigned {
		return nil, dcmerr.Invalidf(e.tag.String(), "element not assigned")
	}
	bv, ok := e.value.(*bytesValue)
	if !ok {
		return nil, dcmerr.Invalidf(e.vr.String(), "element is not BINARY")
	}
	return bv.data, nil
}

// GetSequence returns the SEQUENCE value, locking it before returning so
// shared readers cannot observe further mutation.
func (e *Element) GetSequence() (*Sequence, error) {
	if !e.assigned {
		return nil, dcmerr.Invalidf(e.tag.String(), "element not assigned")
	}
	sv, ok := e.value.(*sequenceValue)
	if !ok {
		return nil, dcmerr.Invalidf(e.vr.String(), "element is not SEQUENCE")
	}
	sv.seq.Lock()
	return sv.seq, nil
}

func (e *Element) stringValue() (*stringValue, error) {
	if !e.assigned {
		return nil, dcmerr.Invalidf(e.tag.String(), "element not assigned")
	}
	sv, ok := e.value.(*stringValue)
	if !ok {
		return nil, dcmerr.Invalidf(e.vr.String(), "element is not STRING_*")
	}
	return sv, nil
}

func (e *Element) numericValue() (*numericValue, error) {
	if !e.assigned {
		return nil, dcmerr.Invalidf(e.tag.String(), "element not assigned")
	}
	nv, ok := e.value.(*numericValue)
	if !ok {
		return nil, dcmerr.Invalidf(e.vr.String(), "element is not NUMERIC")
	}
	return nv, nil
}

// validate enforces the write-once guard, then runs checkStructure at the
// end of every setter, before marking the element assigned.
func (e *Element) validate() error {
	if e.assigned {
		return dcmerr.Invalidf(e.tag.String(), "element already assigned")
	}
	if err := e.checkStructure(); err != nil {
		return err
	}
	e.assigned = true
	return nil
}

// checkStructure runs the VR/length/capacity checks shared by validate
// (step 2 onward) and Clone's re-validation — everything except the
// write-once guard, which only applies to fresh assignment.
func (e *Element) checkStructure() error {
	info, err := tag.Find(e.tag)
	if err != nil || e.vr != info.VR {
		return dcmerr.Invalidf(e.tag.String(), "VR %s does not match dictionary VR for tag", e.vr)
	}
	if e.vr.Class() == vr.ClassError {
		return dcmerr.Invalidf(e.vr.String(), "VR has no class")
	}
	switch v := e.value.(type) {
	case *numericValue:
		if e.length != numericByteLength(e.vr, v.vm()) {
			return dcmerr.Invalidf(e.tag.String(), "length %d does not match vm*size", e.length)
		}
	case *stringValue:
		capacity := e.vr.Capacity()
		allowsBackslash := e.vr.AllowsBackslash()
		for _, s := range v.values {
			if capacity > 0 && len(s) > capacity {
				return dcmerr.Invalidf(e.tag.String(), "value %q exceeds capacity %d for VR %s", s, capacity, e.vr)
			}
			if !allowsBackslash && strings.Contains(s, `\`) {
				return dcmerr.Invalidf(e.tag.String(), "value %q contains backslash, not permitted for VR %s", s, e.vr)
			}
		}
	}
	return nil
}

// Clone deep-copies e by VR class and re-validates the copy before
// returning it. A clone of an already-valid element cannot fail
// re-validation in practice, but the check is kept rather than assumed.
func (e *Element) Clone() (*Element, error) {
	clone := &Element{tag: e.tag, vr: e.vr, length: e.length}
	if !e.assigned {
		return clone, nil
	}
	switch v := e.value.(type) {
	case *stringValue:
		values := make([]string, len(v.values))
		copy(values, v.values)
		clone.value = &stringValue{vr: v.vr, values: values}
	case *numericValue:
		nv := &numericValue{vr: v.vr}
		if v.ints != nil {
			nv.ints = make([]int64, len(v.ints))
			copy(nv.ints, v.ints)
		}
		if v.floats != nil {
			nv.floats = make([]float64, len(v.floats))
			copy(nv.floats, v.floats)
		}
		clone.value = nv
	case *bytesValue:
		data := make([]byte, len(v.data))
		copy(data, v.data)
		clone.value = &bytesValue{vr: v.vr, data: data}
	case *sequenceValue:
		clonedSeq, err := v.seq.Clone()
		if err != nil {
			return nil, err
		}
		clone.value = &sequenceValue{seq: clonedSeq}
	}
	clone.assigned = true
	if err := clone.checkStructure(); err != nil {
		return nil, err
	}
	return clone, nil
}

// String renders the element as "(GGGG,EEEE) Keyword | VR | length |
// value" for a tag the dictionary knows, or "(GGGG,EEEE) | VR | length |
// value" when it doesn't. SEQUENCE values render recursively via
// Sequence.stringIndented.
func (e *Element) String() string {
	var sb strings.Builder
	sb.WriteString(e.tag.String())
	if info, err := tag.Find(e.tag); err == nil && info.Keyword != "" {
		sb.WriteString(" ")
		sb.WriteString(info.Keyword)
	}
	fmt.Fprintf(&sb, " | %s | %d | ", e.vr, e.length)
	if sv, ok := e.value.(*sequenceValue); ok {
		sb.WriteString("\n")
		sb.WriteString(sv.seq.stringIndented(1))
		return sb.String()
	}
	if e.value != nil {
		sb.WriteString(e.value.String())
	}
	return sb.String()
}
