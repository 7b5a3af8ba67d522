package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	// Convert hue from degrees to radians
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to linear RGB via LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	// Cube the values
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// Convert LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	// Clamp to [0, 1] range
	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewVec3(r, g, blue)
}

// NewSphereGridScene creates a grid of alternating diffuse and metal spheres on a ground sphere
func NewSphereGridScene() *Scene {
	cameraConfig := geometry.MergeCameraConfig(geometry.DefaultCameraConfig(), geometry.CameraConfig{
		Center: core.NewVec3(0, 0.8, 1.5), // Raised and pulled back so the grid sits below the horizon
	})

	samplingConfig := core.MergeSamplingConfig(core.DefaultSamplingConfig(), core.SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        20,
	})

	s := NewScene("spheregrid", cameraConfig, samplingConfig)

	// Ground sphere; its top surface is the plane y=0
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	const (
		columns      = 7
		rows         = 5
		spacing      = 0.75
		sphereRadius = 0.25
	)

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < columns; i++ {
		for j := 0; j < rows; j++ {
			x := (float64(i) - float64(columns-1)/2) * spacing
			z := -1.5 - float64(j)*spacing
			position := core.NewVec3(x, sphereRadius, z)

			// Hue sweeps across X, chroma across depth
			hue := (float64(i) / float64(columns-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(rows-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			var mat material.Material
			if (i+j)%2 == 0 {
				mat = material.NewMetal(color)
			} else {
				mat = material.NewLambertian(color)
			}
			s.AddSphere(position, sphereRadius, mat)
		}
	}

	return s
}
