package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// The scene owns every shape and material; hit records only borrow them.
type Scene struct {
	Name           string
	World          *geometry.ShapeList // Objects in the scene
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	SamplingConfig core.SamplingConfig
	Background     integrator.Background
}

// NewScene creates an empty scene with the given camera and sampling settings
func NewScene(name string, cameraConfig geometry.CameraConfig, samplingConfig core.SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		World:          geometry.NewShapeList(),
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		Background:     integrator.DefaultBackground(),
	}
}

// AddSphere adds a sphere to the world
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.World.Add(sphere)
	return sphere
}

// ApplySamplingOverrides merges the non-zero fields of override into the sampling
// config. When the image size changes the camera is rebuilt with the new aspect ratio.
func (s *Scene) ApplySamplingOverrides(override core.SamplingConfig) {
	previous := s.SamplingConfig
	s.SamplingConfig = core.MergeSamplingConfig(previous, override)

	if s.SamplingConfig.Width != previous.Width || s.SamplingConfig.Height != previous.Height {
		s.CameraConfig.AspectRatio = s.SamplingConfig.AspectRatio()
		s.Camera = geometry.NewCamera(s.CameraConfig)
	}
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
