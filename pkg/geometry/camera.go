package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// CameraConfig contains the parameters a camera is derived from
type CameraConfig struct {
	Center         core.Vec3 // Eye position
	AspectRatio    float64   // Viewport width / height
	ViewportHeight float64   // Viewport height in world units
	FocalLength    float64   // Distance from the eye to the viewport along -Z
}

// DefaultCameraConfig returns the baseline camera: origin, 16:9, 2.0 tall, focal length 1
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:         core.NewVec3(0, 0, 0),
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Center.Equals(core.Vec3{}) {
		result.Center = override.Center
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ViewportHeight != 0 {
		result.ViewportHeight = override.ViewportHeight
	}
	if override.FocalLength != 0 {
		result.FocalLength = override.FocalLength
	}
	return result
}

// Camera generates rays for rendering. It is immutable after construction.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera looking down -Z from config.Center
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.AspectRatio * config.ViewportHeight

	origin := config.Center
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for viewport coordinates (u, v) where 0 <= u,v <= 1.
// The direction is not normalized.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// Origin returns the eye position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}
