package renderer

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// recordingSink captures everything written to it
type recordingSink struct {
	width, height int
	pixels        [][3]int
	failAfter     int // fail on this pixel index when > 0
}

func (s *recordingSink) WriteHeader(width, height int) error {
	s.width, s.height = width, height
	return nil
}

func (s *recordingSink) WritePixel(r, g, b int) error {
	if s.failAfter > 0 && len(s.pixels) == s.failAfter {
		return errors.New("sink full")
	}
	s.pixels = append(s.pixels, [3]int{r, g, b})
	return nil
}

func TestWriteImage_TopToBottom(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	sink := &recordingSink{}
	if err := WriteImage(sink, img); err != nil {
		t.Fatalf("WriteImage failed: %v", err)
	}

	if sink.width != 2 || sink.height != 2 {
		t.Errorf("Unexpected header %dx%d", sink.width, sink.height)
	}
	expected := [][3]int{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {1, 2, 3}}
	if len(sink.pixels) != len(expected) {
		t.Fatalf("Expected %d pixels, got %d", len(expected), len(sink.pixels))
	}
	for i := range expected {
		if sink.pixels[i] != expected[i] {
			t.Errorf("Pixel %d: expected %v, got %v", i, expected[i], sink.pixels[i])
		}
	}
}

func TestWriteImage_PropagatesSinkError(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := WriteImage(&recordingSink{failAfter: 1}, img); err == nil {
		t.Error("Expected sink error to be returned")
	}
}
