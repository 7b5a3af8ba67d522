package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest intersection with t in (tMin, tMax); on a miss the
// returned record is nil and must not be read.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
