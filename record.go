package bif6

import (
	"encoding/binary"
	"math"
)

// recordMetaSize is the fixed metadata prefix of every record:
// uint32 id followed by three float32 m/z bounds.
const recordMetaSize = 16

// Interval is one m/z band with its spatial intensity map. It is built
// entirely by the decoder and never mutated afterwards; the decoder keeps
// no reference to it once yielded.
type Interval struct {
	// ID is the interval identifier assigned by file order. IDs are not
	// necessarily contiguous.
	ID uint32

	// MZLower, MZMiddle and MZUpper bound the m/z band of this image,
	// with MZLower <= MZMiddle <= MZUpper.
	MZLower  float64
	MZMiddle float64
	MZUpper  float64

	// Width and Height are the image dimensions in pixels. They are the
	// same for every interval of a file.
	Width  int
	Height int

	// Pix holds Width*Height intensity counts in row-major order:
	// Pix[y*Width+x].
	Pix []uint32
}

// IsTIC reports whether this interval is the total-ion-count image.
// The first interval of a BIF6 file carries id 0 and sums all ion counts.
func (iv *Interval) IsTIC() bool { return iv.ID == 0 }

// At returns the intensity count at (x, y).
func (iv *Interval) At(x, y int) uint32 { return iv.Pix[y*iv.Width+x] }

// Row returns the y-th pixel row. The slice aliases Pix.
func (iv *Interval) Row(y int) []uint32 {
	return iv.Pix[y*iv.Width : (y+1)*iv.Width]
}

// decodeInterval decodes one record from buf, which must hold exactly
// recordMetaSize + 4*w*h bytes. Field order is fixed: id, the three m/z
// bounds, then the pixel block. All fields are little-endian.
//
// The m/z ordering invariant is checked but never corrected: an out-of-order
// triple means the record boundary can no longer be trusted. NaN bounds fail
// the check too. Pixel values are taken as-is.
func decodeInterval(buf []byte, w, h int) (*Interval, error) {
	id := binary.LittleEndian.Uint32(buf[0:4])
	lo := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])))
	mid := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
	hi := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16])))

	if !(lo <= mid && mid <= hi) {
		return nil, ErrInvalidRange
	}

	pix := make([]uint32, w*h)
	for i := range pix {
		pix[i] = binary.LittleEndian.Uint32(buf[recordMetaSize+4*i:])
	}

	return &Interval{
		ID:       id,
		MZLower:  lo,
		MZMiddle: mid,
		MZUpper:  hi,
		Width:    w,
		Height:   h,
		Pix:      pix,
	}, nil
}
