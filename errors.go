package bif6

import (
	"errors"
	"fmt"
)

// Structural errors. A BIF6 stream has no resynchronization marker, so all
// of these are fatal for the remainder of the stream; intervals yielded
// before the failure stay valid.
var (
	// ErrInvalidMagic means the leading signature is not the BIF6 magic.
	ErrInvalidMagic = errors.New("invalid magic, not a BIF6 file")

	// ErrTruncated means the stream ended inside the header or a record.
	ErrTruncated = errors.New("truncated stream")

	// ErrInvalidDimensions means the header declares a zero or
	// implausibly large image size.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrInvalidRange means a record's m/z bounds violate
	// lower <= middle <= upper.
	ErrInvalidRange = errors.New("m/z bounds out of order")
)

// FormatError wraps one of the sentinel errors above with the position the
// decoder had reached, so a corrupt input file can be diagnosed. It is
// returned from Decoder.Next and from decoder construction, and matches the
// wrapped sentinel under errors.Is.
type FormatError struct {
	Err    error // one of the Err* sentinels
	Offset int64 // byte offset into the (decompressed) stream
	Record int   // zero-based record index, -1 for the header
}

func (e *FormatError) Error() string {
	if e.Record < 0 {
		return fmt.Sprintf("bif6: %v (header, offset %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("bif6: %v (record %d, offset %d)", e.Err, e.Record, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }
