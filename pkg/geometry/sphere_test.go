package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -4),
			expectedT:      0.5,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if hit.Normal.Subtract(tt.expectedNormal).Length() > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Near root excluded by tMin: the far root is reported as a back-face hit
	hit, isHit = sphere.Hit(ray, 1.5, 1000.0)
	if !isHit {
		t.Fatal("Expected far-root hit when the near root is below tMin")
	}
	if math.Abs(hit.T-3.0) > 1e-9 || hit.FrontFace {
		t.Errorf("Expected back-face hit at t=3, got t=%f front=%t", hit.T, hit.FrontFace)
	}
}

func TestSphere_Hit_Properties(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	hits := 0
	for i := 0; i < 2000; i++ {
		sphere := NewSphere(core.RandomVec3InRange(sampler, -2, 2), sampler.GetRange(0.1, 2), mat)
		origin := core.RandomVec3InRange(sampler, -4, 4)
		direction := core.RandomVec3InRange(sampler, -1, 1)
		if direction.NearZero() {
			continue
		}
		ray := core.NewRay(origin, direction)
		tMin, tMax := 0.001, sampler.GetRange(1, 10)

		hit, isHit := sphere.Hit(ray, tMin, tMax)
		if !isHit {
			continue
		}
		hits++

		if hit.T <= tMin || hit.T >= tMax {
			t.Fatalf("t=%f outside (%f, %f)", hit.T, tMin, tMax)
		}
		distance := ray.At(hit.T).Subtract(sphere.Center).Length()
		if math.Abs(distance-sphere.Radius) > 1e-6 {
			t.Fatalf("Hit point is %f from center, radius %f", distance, sphere.Radius)
		}
		if hit.Normal.Dot(ray.Direction) >= 0 {
			t.Fatalf("Normal %v must face against direction %v", hit.Normal, ray.Direction)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Fatalf("Normal %v is not unit length", hit.Normal)
		}
		if hit.Material != mat {
			t.Fatal("Hit record must reference the sphere's material")
		}
	}

	if hits == 0 {
		t.Fatal("Property test produced no hits")
	}
}
