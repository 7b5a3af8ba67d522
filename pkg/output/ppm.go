package output

import (
	"bufio"
	"fmt"
	"io"
)

// PPMWriter writes plain-text (P3) PPM images. It implements renderer.PixelSink.
type PPMWriter struct {
	w *bufio.Writer
}

// NewPPMWriter creates a PPM writer on w. Call Flush once every pixel is written.
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the magic number, image size and maximum channel value
func (p *PPMWriter) WriteHeader(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WritePixel writes one pixel as a line of three channel values
func (p *PPMWriter) WritePixel(r, g, b int) error {
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return fmt.Errorf("channel out of range: %d %d %d", r, g, b)
	}
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", r, g, b)
	return err
}

// Flush writes any buffered data to the underlying writer
func (p *PPMWriter) Flush() error {
	return p.w.Flush()
}
