package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// ShapeList is an ordered aggregate of shapes that is itself a Shape.
// It is read-only while a render is in progress.
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a list holding the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: append([]Shape(nil), shapes...)}
}

// Add appends a shape
func (l *ShapeList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Clear removes every shape
func (l *ShapeList) Clear() {
	l.Shapes = nil
}

// Len returns the number of shapes
func (l *ShapeList) Len() int {
	return len(l.Shapes)
}

// Hit returns the nearest intersection over all shapes.
// Each test is bounded by the closest hit so far, so the scan never sorts.
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
