package bif6

import (
	"image"
	"image/color"
	"math"
)

// GrayImage converts the pixel grid into a 16-bit grayscale image for
// callers that want a standard library representation. Counts above 65535
// are clamped; use Pix directly when the full 32-bit range matters.
func (iv *Interval) GrayImage() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, iv.Width, iv.Height))
	for y := 0; y < iv.Height; y++ {
		row := iv.Row(y)
		for x, v := range row {
			if v > math.MaxUint16 {
				v = math.MaxUint16
			}
			img.SetGray16(x, y, color.Gray16{Y: uint16(v)})
		}
	}
	return img
}
