package bif6

import (
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"
)

// mmapSource keeps a read-only mapping alive for the lifetime of a
// decoder. Close unmaps before closing the file.
type mmapSource struct {
	f *os.File
	m mmap.MMap
}

func (s *mmapSource) Close() error {
	var first error
	if s.m != nil {
		if err := s.m.Unmap(); err != nil {
			first = err
		}
		s.m = nil
	}
	if s.f != nil {
		err := s.f.Close()
		s.f = nil
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenMmap opens a BIF6 file through a read-only memory mapping instead of
// buffered reads. Decoding behaves exactly like Open; the mapping is
// released by Close or by a clean end of iteration.
func OpenMmap(path string) (*Decoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	src := &mmapSource{f: f, m: m}
	d, err := NewDecoder(bytes.NewReader(m))
	if err != nil {
		src.Close()
		return nil, err
	}
	d.src = src
	return d, nil
}
