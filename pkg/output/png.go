package output

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes img to w in PNG format
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to a PNG file at path
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := EncodePNG(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
