package dcm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/dcmcore/dcmerr"
	"github.com/codeninja55/dcmcore/tag"
)

// DataSet is a tag-keyed collection of Elements with unique keys. It grows
// by Insert until Lock is called, after which every mutator fails.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.1
type DataSet struct {
	tags     []tag.Tag
	elements map[tag.Tag]*Element
	locked   bool
}

// NewDataSet returns an empty, unlocked DataSet.
func NewDataSet() *DataSet {
	return &DataSet{elements: make(map[tag.Tag]*Element)}
}

// Insert is the only growth operation. It fails with dcmerr.Invalid if the
// set is locked or elem's tag is already present; either failure leaves
// the set unmodified (the caller's element is simply not absorbed —
// Go's GC makes the original's "destroy the provided element on failure"
// moot, but the effect on the DataSet is the same: it never gains the
// element).
func (ds *DataSet) Insert(elem *Element) error {
	if ds.locked {
		return dcmerr.Invalidf(elem.Tag().String(), "data set is locked")
	}
	if _, exists := ds.elements[elem.Tag()]; exists {
		return dcmerr.Invalidf(elem.Tag().String(), "duplicate tag")
	}
	ds.elements[elem.Tag()] = elem
	ds.tags = append(ds.tags, elem.Tag())
	log.Debug("dataset insert", "tag", elem.Tag().String())
	return nil
}

// Remove fails if the set is locked or t is absent; otherwise it erases
// the element and preserves insertion order of the remainder.
func (ds *DataSet) Remove(t tag.Tag) error {
	if ds.locked {
		return dcmerr.Invalidf(t.String(), "data set is locked")
	}
	if _, exists := ds.elements[t]; !exists {
		return dcmerr.Invalidf(t.String(), "tag not found")
	}
	delete(ds.elements, t)
	for i, other := range ds.tags {
		if other == t {
			ds.tags = append(ds.tags[:i], ds.tags[i+1:]...)
			break
		}
	}
	log.Debug("dataset remove", "tag", t.String())
	return nil
}

// Get returns the element for t, failing dcmerr.Invalid "not found" on a
// miss. The returned pointer is a borrowed reference into the set.
func (ds *DataSet) Get(t tag.Tag) (*Element, error) {
	elem, exists := ds.elements[t]
	if !exists {
		return nil, dcmerr.Invalidf(t.String(), "not found")
	}
	return elem, nil
}

// Contains is the non-failing variant of Get: it returns (element, true)
// on a hit, (nil, false) on a miss.
func (ds *DataSet) Contains(t tag.Tag) (*Element, bool) {
	elem, exists := ds.elements[t]
	return elem, exists
}

// GetClone returns an independent deep copy of the element for t.
func (ds *DataSet) GetClone(t tag.Tag) (*Element, error) {
	elem, err := ds.Get(t)
	if err != nil {
		return nil, err
	}
	return elem.Clone()
}

// Count returns the number of elements in the set.
func (ds *DataSet) Count() int { return len(ds.elements) }

// Foreach visits every element in insertion order. Elements carry no lock
// of their own (only DataSet and Sequence do), so unlike Sequence.Foreach
// there is nothing for this to lock before yielding — it is a plain
// insertion-ordered walk.
func (ds *DataSet) Foreach(fn func(*Element) error) error {
	for _, t := range ds.tags {
		if err := fn(ds.elements[t]); err != nil {
			return err
		}
	}
	return nil
}

// CopyTags returns every tag in the set, sorted ascending.
func (ds *DataSet) CopyTags() []tag.Tag {
	out := make([]tag.Tag, len(ds.tags))
	copy(out, ds.tags)
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

// Lock sets is_locked irreversibly; there is no Unlock.
func (ds *DataSet) Lock() {
	ds.locked = true
	log.Debug("dataset locked")
}

// IsLocked reports whether Lock has been called.
func (ds *DataSet) IsLocked() bool { return ds.locked }

// String renders the set's elements in tag-ascending order (computed via
// CopyTags, independent of the insertion-ordered storage), one
// Element.String() per line.
func (ds *DataSet) String() string {
	tags := ds.CopyTags()
	if len(tags) == 0 {
		return "DataSet (0 elements)"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "DataSet (%d elements):\n", len(tags))
	for _, t := range tags {
		sb.WriteString("  ")
		sb.WriteString(ds.elements[t].String())
		sb.WriteString("\n")
	}
	return sb.String()
}
