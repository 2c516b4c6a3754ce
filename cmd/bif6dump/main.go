// bif6dump prints the contents of a BIF6 file: header metadata plus one
// summary line per interval image. With -png it also exports every
// interval as a 16-bit grayscale PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/tofsims/bif6"
)

func main() {
	pngDir := flag.String("png", "", "export each interval as a 16-bit PNG into this directory")
	useMmap := flag.Bool("mmap", false, "memory-map the input instead of streaming it")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprint(os.Stderr, "usage: bif6dump [-mmap] [-png dir] <file.bif6>\n")
		os.Exit(1)
	}
	path := flag.Arg(0)

	var (
		d   *bif6.Decoder
		err error
	)
	if *useMmap {
		d, err = bif6.OpenMmap(path)
	} else {
		d, err = bif6.Open(path)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "open error:", err)
		os.Exit(1)
	}
	defer d.Close()

	w, h := d.ImageSize()
	fmt.Printf("%s: %d declared intervals, %dx%d pixels\n", filepath.Base(path), d.IntervalCount(), w, h)

	n := 0
	for {
		iv, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "decode error:", err)
			os.Exit(1)
		}
		n++

		s := iv.Stats()
		tag := ""
		if iv.IsTIC() {
			tag = " (TIC)"
		}
		fmt.Printf("interval %d%s: m/z %.4f..%.4f (center %.4f), total=%d max=%d mean=%.2f\n",
			iv.ID, tag, iv.MZLower, iv.MZUpper, iv.MZMiddle, s.Total, s.Max, s.Mean)

		if *pngDir != "" {
			if err := writePNG(*pngDir, iv); err != nil {
				fmt.Fprintln(os.Stderr, "png export error:", err)
				os.Exit(1)
			}
		}
	}
	fmt.Printf("%d intervals decoded\n", n)
}

func writePNG(dir string, iv *bif6.Interval) error {
	out, err := os.Create(filepath.Join(dir, fmt.Sprintf("interval_%04d.png", iv.ID)))
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, iv.GrayImage())
}
