package renderer

import (
	"image/color"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// maxChannel keeps floor(256*x) below 256
const maxChannel = 0.999

// ColorToRGB converts an averaged linear color to 8-bit channels:
// gamma 2 (square root), clamp to [0, 0.999], then floor(256*x).
func ColorToRGB(c core.Vec3) (r, g, b int) {
	c = c.GammaCorrect(2.0).Clamp(0.0, maxChannel)
	return int(256 * c.X), int(256 * c.Y), int(256 * c.Z)
}

// vec3ToColor converts a Vec3 color to RGBA with clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	r, g, b := ColorToRGB(colorVec)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
