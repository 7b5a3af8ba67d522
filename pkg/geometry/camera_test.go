package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	width := 16.0 / 9.0 * 2.0

	tests := []struct {
		name      string
		u, v      float64
		direction core.Vec3
	}{
		{"Center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"Lower left", 0, 0, core.NewVec3(-width/2, -1, -1)},
		{"Upper right", 1, 1, core.NewVec3(width/2, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.u, tt.v)
			if !ray.Origin.Equals(core.NewVec3(0, 0, 0)) {
				t.Errorf("Expected origin at zero, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.direction).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_OffsetCenter(t *testing.T) {
	config := MergeCameraConfig(DefaultCameraConfig(), CameraConfig{
		Center:      core.NewVec3(1, 2, 3),
		AspectRatio: 1.0,
	})
	camera := NewCamera(config)

	if !camera.Origin().Equals(core.NewVec3(1, 2, 3)) {
		t.Errorf("Expected eye position (1, 2, 3), got %v", camera.Origin())
	}

	ray := camera.GetRay(0.5, 0.5)
	if !ray.Origin.Equals(camera.Origin()) {
		t.Errorf("Expected origin (1, 2, 3), got %v", ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Direction should not depend on camera position, got %v", ray.Direction)
	}

	corner := camera.GetRay(1, 1).Direction
	if math.Abs(corner.X-1) > 1e-12 || math.Abs(corner.Y-1) > 1e-12 {
		t.Errorf("Square viewport corner should be (1, 1, -1), got %v", corner)
	}
}
