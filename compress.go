package bif6

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Instruments often leave BIF6 exports compressed on disk. The container
// is detected by its own magic before the BIF6 header is looked at.
var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

// unwrapCompressed peeks at the start of br and, when it finds a zstd or
// gzip container, returns a reader over the decompressed payload plus the
// closer that releases the decompressor. Plain streams pass through with a
// nil closer. Streams too short to probe also pass through; header
// validation will report them.
func unwrapCompressed(br *bufio.Reader) (io.Reader, io.Closer, error) {
	head, err := br.Peek(4)
	if err != nil {
		return br, nil, nil
	}
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		rc := zr.IOReadCloser()
		return rc, rc, nil
	case bytes.HasPrefix(head, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz, nil
	}
	return br, nil, nil
}
