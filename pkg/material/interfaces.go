package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Material interface for surfaces that scatter or absorb rays.
// Implementations hold no mutable state and are shared by every hit record that
// references them, so one instance may be used from many goroutines at once.
type Material interface {
	// Scatter returns the outgoing ray and its attenuation, or false when the
	// incoming ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object (borrowed, never owned)
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length and point out of the surface.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
