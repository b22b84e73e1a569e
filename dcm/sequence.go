package dcm

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/codeninja55/dcmcore/dcmerr"
)

// Sequence is an ordered list of items, each an owned DataSet.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
type Sequence struct {
	items  []*DataSet
	locked bool
}

// NewSequence returns an empty, unlocked Sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Append adds item to the end of the sequence and immediately locks it —
// items shared via read accessors must not be mutated out from under a
// reader. Append fails with dcmerr.Invalid if the sequence itself is
// locked.
func (s *Sequence) Append(item *DataSet) error {
	if s.locked {
		return dcmerr.Invalidf("", "sequence is locked")
	}
	item.Lock()
	s.items = append(s.items, item)
	log.Debug("sequence append", "count", len(s.items))
	return nil
}

// Get returns the item at index, locking it before returning — every
// item handed out is locked, not only ones reached through Foreach.
func (s *Sequence) Get(index int) (*DataSet, error) {
	if index < 0 || index >= len(s.items) {
		return nil, dcmerr.Invalidf(fmt.Sprintf("index %d", index), "index out of range [0,%d)", len(s.items))
	}
	item := s.items[index]
	item.Lock()
	return item, nil
}

// Foreach visits every item in append order, locking each one before fn
// runs, not just on Get.
func (s *Sequence) Foreach(fn func(*DataSet) error) error {
	for _, item := range s.items {
		item.Lock()
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}

// Remove fails if the sequence is locked or index is out of range;
// otherwise it erases the item at index, shifting subsequent items left.
func (s *Sequence) Remove(index int) error {
	if s.locked {
		return dcmerr.Invalidf("", "sequence is locked")
	}
	if index < 0 || index >= len(s.items) {
		return dcmerr.Invalidf(fmt.Sprintf("index %d", index), "index out of range [0,%d)", len(s.items))
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

// Count returns the number of items in the sequence.
func (s *Sequence) Count() int { return len(s.items) }

// Lock sets is_locked irreversibly; there is no Unlock.
func (s *Sequence) Lock() {
	s.locked = true
	log.Debug("sequence locked")
}

// IsLocked reports whether Lock has been called.
func (s *Sequence) IsLocked() bool { return s.locked }

// Clone deep-copies every item (and, recursively, every SEQUENCE-valued
// element within each item) into a fresh, unlocked Sequence.
func (s *Sequence) Clone() (*Sequence, error) {
	clone := NewSequence()
	for _, item := range s.items {
		clonedItem := NewDataSet()
		for _, t := range item.tags {
			elemClone, err := item.elements[t].Clone()
			if err != nil {
				return nil, err
			}
			if err := clonedItem.Insert(elemClone); err != nil {
				return nil, err
			}
		}
		clone.items = append(clone.items, clonedItem)
	}
	return clone, nil
}

// String renders the sequence at the top level (indent 0); SEQUENCE
// values nested inside items render via stringIndented from within
// Element.String.
func (s *Sequence) String() string {
	return s.stringIndented(0)
}

// stringIndented renders each item headed by "---Item #k---", indenting
// by two spaces per level.
func (s *Sequence) stringIndented(level int) string {
	indent := strings.Repeat("  ", level)
	var sb strings.Builder
	for i, item := range s.items {
		fmt.Fprintf(&sb, "%s---Item #%d---\n", indent, i+1)
		for _, t := range item.CopyTags() {
			elem, _ := item.Contains(t)
			sb.WriteString(indent)
			sb.WriteString("  ")
			sb.WriteString(elem.String())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
