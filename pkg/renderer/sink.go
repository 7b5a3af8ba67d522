package renderer

import (
	"fmt"
	"image"
)

// PixelSink receives a rendered image one pixel at a time, top scanline first
type PixelSink interface {
	WriteHeader(width, height int) error
	WritePixel(r, g, b int) error
}

// WriteImage streams img to sink in row-major order from the top row down
func WriteImage(sink PixelSink, img *image.RGBA) error {
	bounds := img.Bounds()
	if err := sink.WriteHeader(bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if err := sink.WritePixel(int(c.R), int(c.G), int(c.B)); err != nil {
				return fmt.Errorf("write pixel (%d, %d): %w", x, y, err)
			}
		}
	}
	return nil
}
