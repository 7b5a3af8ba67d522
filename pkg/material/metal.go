package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Metal represents a metallic material with perfect specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3) *Metal {
	return &Metal{Albedo: albedo}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	scattered := core.NewRay(hit.Point, reflected)

	// Reflection pointing into the surface is absorbed
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
