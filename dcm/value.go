package dcm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/codeninja55/dcmcore/vr"
)

// Value is a DICOM element value. Each concrete implementation corresponds
// to one VR class; an Element holds exactly one Value for its lifetime.
type Value interface {
	// VR returns the Value Representation this value was constructed for.
	VR() vr.VR
	// String renders the value the way Element.String embeds it.
	String() string
}

// stringValue backs STRING_SINGLE and STRING_MULTI VRs. vm==1 values and
// multi-valued ones share this type; Strings() always has len(vm) entries.
type stringValue struct {
	vr     vr.VR
	values []string
}

func newStringValue(v vr.VR, values []string) *stringValue {
	return &stringValue{vr: v, values: values}
}

func (s *stringValue) VR() vr.VR      { return s.vr }
func (s *stringValue) Strings() []string { return s.values }

func (s *stringValue) String() string {
	return strings.Join(s.values, "\\")
}

// encodedLength is the value's even-padded encoded byte length: the sum of
// each string's byte length plus one separator per gap, rounded up.
func (s *stringValue) encodedLength() int {
	total := 0
	for i, v := range s.values {
		if i > 0 {
			total++ // backslash separator
		}
		total += len(v)
	}
	if total%2 != 0 {
		total++
	}
	return total
}

// numericValue backs NUMERIC VRs. Exactly one of ints/floats is populated,
// chosen by whether vr.Class() pairs with an integral or floating VR.
//
// The slice handed to SetIntegerMulti/SetDoubleMulti is retained by
// reference, not cloned, regardless of vm — callers must not mutate it
// afterward. vm==1 has the identical representation (a one-element
// slice); there is no separate inline-scalar storage.
type numericValue struct {
	vr     vr.VR
	ints   []int64
	floats []float64
}

func (n *numericValue) VR() vr.VR { return n.vr }

func (n *numericValue) vm() int {
	if n.floats != nil {
		return len(n.floats)
	}
	return len(n.ints)
}

func (n *numericValue) String() string {
	parts := make([]string, 0, n.vm())
	if n.floats != nil {
		for _, f := range n.floats {
			parts = append(parts, formatFloat(f))
		}
	} else {
		unsigned := n.vr == vr.UnsignedVeryLong
		for _, v := range n.ints {
			if unsigned {
				parts = append(parts, strconv.FormatUint(uint64(v), 10))
			} else {
				parts = append(parts, strconv.FormatInt(v, 10))
			}
		}
	}
	return strings.Join(parts, "\\")
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// bytesValue backs BINARY VRs: a single owned buffer, vm always 1.
type bytesValue struct {
	vr   vr.VR
	data []byte
}

func (b *bytesValue) VR() vr.VR   { return b.vr }
func (b *bytesValue) Bytes() []byte { return b.data }

func (b *bytesValue) String() string {
	const maxDisplay = 16
	n := len(b.data)
	if n == 0 {
		return "[]"
	}
	shown := n
	truncated := false
	if shown > maxDisplay {
		shown = maxDisplay
		truncated = true
	}
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < shown; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%02X", b.data[i])
	}
	if truncated {
		fmt.Fprintf(&sb, " ... (%d bytes)", n)
	}
	sb.WriteString("]")
	return sb.String()
}

// sequenceValue backs SQ: a single owned Sequence, vm always 1.
type sequenceValue struct {
	seq *Sequence
}

func (s *sequenceValue) VR() vr.VR     { return vr.SequenceOfItems }
func (s *sequenceValue) String() string { return s.seq.String() }

// numericByteLength computes length = vm * vr.Size() for a NUMERIC VR,
// already guaranteed even since every VR.Size() is itself even (2, 4, or 8).
func numericByteLength(v vr.VR, vm int) int {
	return vm * v.Size()
}
