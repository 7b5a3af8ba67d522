package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", b.Divide(2), NewVec3(2, -2.5, 3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Reflect", NewVec3(1, -1, 0).Reflect(NewVec3(0, 1, 0)), NewVec3(1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-12
			if tt.result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(2, 3, 6)

	if got := v.Dot(NewVec3(1, 1, 1)); got != 11 {
		t.Errorf("Expected dot 11, got %f", got)
	}
	if got := v.LengthSquared(); got != 49 {
		t.Errorf("Expected squared length 49, got %f", got)
	}
	if got := v.Length(); got != 7 {
		t.Errorf("Expected length 7, got %f", got)
	}
}

func TestVec3_NormalizeIsUnitLength(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		v := RandomVec3InRange(sampler, -100, 100)
		if v.LengthSquared() == 0 {
			continue
		}
		length := v.Normalize().Length()
		if math.Abs(length-1) > 1e-12 {
			t.Fatalf("Normalize(%v) has length %f", v, length)
		}
	}
}

func TestVec3_NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic normalizing a zero-length vector")
		}
	}()
	NewVec3(0, 0, 0).Normalize()
}

func TestVec3_Component(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for i, expected := range []float64{7, 8, 9} {
		if got := v.Component(i); got != expected {
			t.Errorf("Component(%d): expected %f, got %f", i, expected, got)
		}
	}

	for _, index := range []int{-1, 3, 42} {
		t.Run("out of range", func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for component index %d", index)
				}
			}()
			v.Component(index)
		})
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected bool
	}{
		{"Zero", NewVec3(0, 0, 0), true},
		{"Tiny", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"One component large", NewVec3(1e-9, 1e-7, 0), false},
		{"Unit", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v): expected %t, got %t", tt.vector, tt.expected, got)
			}
		})
	}
}

func TestVec3_GammaCorrectAndClamp(t *testing.T) {
	v := NewVec3(0.25, 1.44, 0)

	gamma := v.GammaCorrect(2.0)
	expected := NewVec3(0.5, 1.2, 0)
	if gamma.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, gamma)
	}

	clamped := gamma.Clamp(0, 0.999)
	if clamped.Y != 0.999 || clamped.X != 0.5 {
		t.Errorf("Unexpected clamp result %v", clamped)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	if got := ray.At(0); !got.Equals(ray.Origin) {
		t.Errorf("At(0) should be the origin, got %v", got)
	}
	if got := ray.At(1.5); !got.Equals(NewVec3(1, 2, 0)) {
		t.Errorf("At(1.5): expected (1, 2, 0), got %v", got)
	}
}
