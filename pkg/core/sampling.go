package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64                    // uniform in [0, 1)
	GetRange(min, max float64) float64 // uniform in [min, max)
	Get3D() Vec3                       // three independent values in [0, 1)
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; every worker task owns its own instance.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own deterministic stream
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// GetRange returns a random float64 in [min, max)
func (r *RandomSampler) GetRange(min, max float64) float64 {
	return min + (max-min)*r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomVec3InRange returns a vector whose components are uniform in [min, max)
func RandomVec3InRange(sampler Sampler, min, max float64) Vec3 {
	return NewVec3(
		sampler.GetRange(min, max),
		sampler.GetRange(min, max),
		sampler.GetRange(min, max),
	)
}

// RandomInUnitSphere returns a uniform point strictly inside the unit ball.
// The rejection loop is intentionally uncapped; a cap would bias the distribution.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := RandomVec3InRange(sampler, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniform direction on the unit sphere surface
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomInUnitSphere(sampler)
		// The origin itself cannot be normalized; draw again.
		if p.LengthSquared() > 0 {
			return p.Normalize()
		}
	}
}

// RandomInHemisphere returns a point in the unit ball on the same side as normal
func RandomInHemisphere(normal Vec3, sampler Sampler) Vec3 {
	inUnitSphere := RandomInUnitSphere(sampler)
	if inUnitSphere.Dot(normal) > 0.0 {
		return inUnitSphere
	}
	return inUnitSphere.Negate()
}
