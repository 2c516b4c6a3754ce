package bif6

import (
	"bytes"
	"io"
	"testing"
)

// buildBenchFile returns a synthetic file with n intervals of w x h pixels,
// deterministic so runs are comparable.
func buildBenchFile(n, w, h int) []byte {
	b := appendHeader(nil, n, w, h)
	pix := make([]uint32, w*h)
	for i := 0; i < n; i++ {
		for j := range pix {
			pix[j] = uint32((i*31 + j*17) % 4096)
		}
		lo := float32(100 + i)
		b = appendRecord(b, uint32(i), lo, lo+0.5, lo+1, pix)
	}
	return b
}

func BenchmarkDecode(b *testing.B) {
	data := buildBenchFile(16, 128, 128)

	// Warm-up outside timed section.
	if _, err := Decode(bytes.NewReader(data)); err != nil {
		b.Fatalf("decode failed: %v", err)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(bytes.NewReader(data)); err != nil {
			b.Fatalf("decode failed: %v", err)
		}
	}
}

// BenchmarkNext measures the per-record path alone, reusing one decoder
// per iteration so the header cost is excluded from the inner loop.
func BenchmarkNext(b *testing.B) {
	data := buildBenchFile(16, 128, 128)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, err := NewDecoder(bytes.NewReader(data))
		if err != nil {
			b.Fatalf("NewDecoder: %v", err)
		}
		for {
			_, err := d.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatalf("Next: %v", err)
			}
		}
	}
}
