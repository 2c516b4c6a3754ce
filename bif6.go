// Package bif6 decodes BIF6 files, the binary container used by TOF-SIMS
// imaging instruments to store interval images: one spatial intensity map
// per m/z band. The decoder walks the stream record by record and yields
// each interval lazily, so arbitrarily large files can be read without
// loading them into memory.
//
// The format is little-endian throughout. A file is a 12-byte header
// (magic "\x00\x00BIF6", uint16 interval count, uint16 width, uint16
// height) followed by records until EOF; each record is a uint32 id, three
// float32 m/z bounds and width*height uint32 pixel counts in row-major
// order. The header's interval count is advisory only.
package bif6

import (
	"bufio"
	"io"
	"io/fs"
	"os"
)

// Decoder reads a BIF6 stream and yields one Interval per Next call.
// It owns a forward-only cursor over its source; a fresh iteration
// requires reopening the source. A Decoder is not safe for concurrent
// use, but independent Decoders share nothing.
type Decoder struct {
	r     io.Reader
	src   io.Closer // file or mapping owned by Open/OpenMmap, nil otherwise
	inner io.Closer // decompressor, when the container was compressed

	hdr header
	buf []byte // record scratch, reused across Next calls

	off    int64 // bytes of the decompressed stream consumed so far
	rec    int   // records decoded so far
	err    error // sticky terminal state: io.EOF or the first decode error
	closed bool
}

// Open opens a BIF6 file for decoding and validates its header.
// The returned Decoder owns the file handle; Close releases it, and a
// clean end of iteration releases it automatically.
func Open(path string) (*Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	d, err := NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	d.src = f
	return d, nil
}

// NewDecoder reads a BIF6 stream from r and validates its header.
// Streams wrapped in a zstd or gzip container are unwrapped transparently.
// The caller remains responsible for closing r if it needs closing.
func NewDecoder(r io.Reader) (*Decoder, error) {
	plain, inner, err := unwrapCompressed(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	hdr, err := readHeader(plain)
	if err != nil {
		if inner != nil {
			inner.Close()
		}
		return nil, err
	}
	return &Decoder{r: plain, inner: inner, hdr: hdr, off: headerSize}, nil
}

// IntervalCount returns the interval count declared in the header. It is
// advisory: the stream is terminated by EOF, not by this count.
func (d *Decoder) IntervalCount() int { return d.hdr.count }

// ImageSize returns the pixel dimensions shared by every interval image
// in the file.
func (d *Decoder) ImageSize() (w, h int) { return d.hdr.width, d.hdr.height }

// Next decodes and returns the next interval. It returns io.EOF when the
// cursor sits at a clean end of stream (zero bytes after the previous
// record), and a *FormatError if a record is truncated or structurally
// invalid. Errors are sticky: once Next has failed, every later call
// returns the same error, since no resynchronization point exists.
// Reaching io.EOF closes the underlying resource.
func (d *Decoder) Next() (*Interval, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.closed {
		return nil, fs.ErrClosed
	}

	need := recordMetaSize + 4*d.hdr.width*d.hdr.height
	if cap(d.buf) < need {
		d.buf = make([]byte, need)
	}
	buf := d.buf[:need]

	if _, err := io.ReadFull(d.r, buf); err != nil {
		switch err {
		case io.EOF:
			// True end of input: the only non-error termination.
			d.err = io.EOF
			d.Close()
		case io.ErrUnexpectedEOF:
			// A record began but the stream ran out inside it.
			d.err = &FormatError{Err: ErrTruncated, Offset: d.off, Record: d.rec}
		default:
			d.err = err
		}
		return nil, d.err
	}

	iv, err := decodeInterval(buf, d.hdr.width, d.hdr.height)
	if err != nil {
		d.err = &FormatError{Err: err, Offset: d.off, Record: d.rec}
		return nil, d.err
	}
	d.off += int64(need)
	d.rec++
	return iv, nil
}

// DecodeAll drains the decoder and returns every remaining interval.
// On failure it returns the intervals decoded so far along with the error.
func (d *Decoder) DecodeAll() ([]*Interval, error) {
	var out []*Interval
	for {
		iv, err := d.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, iv)
	}
}

// Close releases the decoder's resources. It is idempotent and safe to
// call on decoders whose iteration already finished.
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	var first error
	if d.inner != nil {
		if err := d.inner.Close(); err != nil {
			first = err
		}
	}
	if d.src != nil {
		if err := d.src.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Decode reads a complete BIF6 stream from r and returns all its
// intervals.
func Decode(r io.Reader) ([]*Interval, error) {
	d, err := NewDecoder(r)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.DecodeAll()
}
