package bif6

import (
	"bytes"
	"encoding/binary"
	"io"
)

const (
	// headerSize is the fixed leading block: 6-byte magic plus three
	// uint16 fields (interval count, width, height).
	headerSize = 12

	// maxPixels caps the per-image allocation so a corrupt header cannot
	// drive an unbounded make(). 2^26 samples is 256 MiB of uint32,
	// far above anything a real instrument produces.
	maxPixels = 1 << 26
)

// magic is the BIF6 signature. The two leading zero bytes are part of it.
var magic = []byte{0x00, 0x00, 'B', 'I', 'F', '6'}

// header is the decoded leading block. count is advisory: the format is
// terminated by EOF, and the original instrument software never checks it.
type header struct {
	count  int
	width  int
	height int
}

// readHeader consumes and validates the 12-byte leading block.
// It is called exactly once, before any record decode.
func readHeader(r io.Reader) (header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return header{}, &FormatError{Err: ErrTruncated, Offset: 0, Record: -1}
		}
		return header{}, err
	}
	if !bytes.Equal(buf[:6], magic) {
		return header{}, &FormatError{Err: ErrInvalidMagic, Offset: 0, Record: -1}
	}

	h := header{
		count:  int(binary.LittleEndian.Uint16(buf[6:8])),
		width:  int(binary.LittleEndian.Uint16(buf[8:10])),
		height: int(binary.LittleEndian.Uint16(buf[10:12])),
	}
	if h.width == 0 || h.height == 0 || h.width*h.height > maxPixels {
		return header{}, &FormatError{Err: ErrInvalidDimensions, Offset: 8, Record: -1}
	}
	return h, nil
}
