package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewDefaultScene creates the two-sphere scene: a small gray sphere resting on a huge ground sphere
func NewDefaultScene() *Scene {
	s := NewScene("default", geometry.DefaultCameraConfig(), core.DefaultSamplingConfig())

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, gray)

	return s
}

// NewMaterialsScene creates a diffuse center sphere flanked by two metal spheres
func NewMaterialsScene() *Scene {
	s := NewScene("materials", geometry.DefaultCameraConfig(), core.DefaultSamplingConfig())

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	left := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8))
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2))

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, left)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, right)

	return s
}
