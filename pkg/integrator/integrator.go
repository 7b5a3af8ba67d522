package integrator

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray, allowing at most
	// depth further scattering events.
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3
}

// Background is the vertical sky gradient returned for rays that escape the scene
type Background struct {
	TopColor    core.Vec3 // Color for rays pointing straight up
	BottomColor core.Vec3 // Color for rays pointing straight down
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the gradient color for a ray direction
func (b Background) Color(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.BottomColor.Multiply(1.0 - t).Add(b.TopColor.Multiply(t))
}
