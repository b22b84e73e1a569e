package dcm

import (
	"fmt"

	"github.com/codeninja55/dcmcore/dcmerr"
)

// Frame is an immutable single pixel-plane descriptor: one frame's worth
// of pixel data plus the geometry needed to interpret it. Unlike Element/
// DataSet/Sequence it has no write-once lifecycle — NewFrame either fully
// succeeds or fully fails.
type Frame struct {
	number                    int
	data                      []byte
	rows, columns             uint16
	samplesPerPixel           uint16
	bitsAllocated, bitsStored uint16
	highBit                   uint16
	pixelRepresentation       int
	planarConfiguration       int
	photometricInterpretation string
	transferSyntaxUID         string
}

// NewFrame validates data/length, then bits-allocated, bits-stored,
// pixel-representation, and planar-configuration in that order, and
// derives highBit as bitsStored-1.
func NewFrame(
	number int,
	data []byte,
	rows, columns, samplesPerPixel, bitsAllocated, bitsStored uint16,
	pixelRepresentation, planarConfiguration int,
	photometricInterpretation, transferSyntaxUID string,
) (*Frame, error) {
	if len(data) == 0 {
		return nil, dcmerr.Invalidf(fmt.Sprintf("frame %d", number), "data must be non-empty")
	}
	if !(bitsAllocated == 1 || bitsAllocated%8 == 0) {
		return nil, dcmerr.Invalidf(fmt.Sprintf("bits_allocated=%d", bitsAllocated), "must be 1 or a multiple of 8")
	}
	if !(bitsStored == 1 || bitsStored%8 == 0) {
		return nil, dcmerr.Invalidf(fmt.Sprintf("bits_stored=%d", bitsStored), "must be 1 or a multiple of 8")
	}
	if pixelRepresentation != 0 && pixelRepresentation != 1 {
		return nil, dcmerr.Invalidf(fmt.Sprintf("pixel_representation=%d", pixelRepresentation), "must be 0 or 1")
	}
	if planarConfiguration != 0 && planarConfiguration != 1 {
		return nil, dcmerr.Invalidf(fmt.Sprintf("planar_configuration=%d", planarConfiguration), "must be 0 or 1")
	}

	owned := make([]byte, len(data))
	copy(owned, data)

	return &Frame{
		number:                     number,
		data:                       owned,
		rows:                       rows,
		columns:                    columns,
		samplesPerPixel:            samplesPerPixel,
		bitsAllocated:              bitsAllocated,
		bitsStored:                 bitsStored,
		highBit:                    bitsStored - 1,
		pixelRepresentation:        pixelRepresentation,
		planarConfiguration:        planarConfiguration,
		photometricInterpretation:  photometricInterpretation,
		transferSyntaxUID:          transferSyntaxUID,
	}, nil
}

func (f *Frame) Number() int                        { return f.number }
func (f *Frame) Data() []byte                        { return f.data }
func (f *Frame) Length() int                         { return len(f.data) }
func (f *Frame) Rows() uint16                        { return f.rows }
func (f *Frame) Columns() uint16                     { return f.columns }
func (f *Frame) SamplesPerPixel() uint16             { return f.samplesPerPixel }
func (f *Frame) BitsAllocated() uint16               { return f.bitsAllocated }
func (f *Frame) BitsStored() uint16                  { return f.bitsStored }
func (f *Frame) HighBit() uint16                     { return f.highBit }
func (f *Frame) PixelRepresentation() int            { return f.pixelRepresentation }
func (f *Frame) PlanarConfiguration() int            { return f.planarConfiguration }
func (f *Frame) PhotometricInterpretation() string   { return f.photometricInterpretation }
func (f *Frame) TransferSyntaxUID() string           { return f.transferSyntaxUID }

func (f *Frame) String() string {
	return fmt.Sprintf("Frame #%d (%dx%d, %d bits stored, %s, %d bytes)",
		f.number, f.columns, f.rows, f.bitsStored, f.photometricInterpretation, len(f.data))
}
