package dcm

import (
	"fmt"
	"strings"

	"github.com/codeninja55/dcmcore/dcmerr"
)

// BasicOffsetTable is an immutable index into an encapsulated pixel
// stream's frames: a byte offset per frame, relative to a shared
// first-frame offset.
type BasicOffsetTable struct {
	offsets          []int64
	firstFrameOffset int64
}

// NewBasicOffsetTable validates that offsets is non-empty, then takes
// ownership of the slice.
func NewBasicOffsetTable(offsets []int64, firstFrameOffset int64) (*BasicOffsetTable, error) {
	if len(offsets) == 0 {
		return nil, dcmerr.Invalidf("", "offsets must be non-empty")
	}
	return &BasicOffsetTable{offsets: offsets, firstFrameOffset: firstFrameOffset}, nil
}

// NumFrames returns the number of frames indexed by the table.
func (b *BasicOffsetTable) NumFrames() int { return len(b.offsets) }

// GetFrameOffset returns the absolute byte offset of frame number —
// offsets[number-1] + firstFrameOffset — for 1 <= number <= NumFrames(),
// failing dcmerr.Invalid otherwise.
func (b *BasicOffsetTable) GetFrameOffset(number int) (int64, error) {
	if number < 1 || number > len(b.offsets) {
		return 0, dcmerr.Invalidf(fmt.Sprintf("frame %d", number), "out of range [1,%d]", len(b.offsets))
	}
	return b.offsets[number-1] + b.firstFrameOffset, nil
}

// String prints offsets as a comma-separated bracketed list, each value
// already adjusted by firstFrameOffset.
func (b *BasicOffsetTable) String() string {
	parts := make([]string, len(b.offsets))
	for i, off := range b.offsets {
		parts[i] = fmt.Sprintf("%d", off+b.firstFrameOffset)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
