package scene

import (
	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/geometry"
	"github.com/df07/go-progressive-raycaster/pkg/material"
)

// Scene is an ordered collection of shapes, tested by brute-force linear scan
type Scene struct {
	Shapes []geometry.Shape // Objects in the scene, in insertion order
}

// NewScene creates a scene holding the given shapes in order
func NewScene(shapes ...geometry.Shape) *Scene {
	s := &Scene{Shapes: make([]geometry.Shape, 0, len(shapes))}
	s.Add(shapes...)
	return s
}

// Add appends shapes to the end of the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit returns the nearest hit over all shapes. Each shape is queried with
// the upper bound shrunk to the closest hit so far, so a later shape only
// replaces the result when it is strictly closer and insertion order breaks ties.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// HitShape is like Hit but also returns the shape that produced the hit
func (s *Scene) HitShape(ray core.Ray, tMin, tMax float64) (*material.HitRecord, geometry.Shape, bool) {
	var closestHit *material.HitRecord
	var closestShape geometry.Shape
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
			closestShape = shape
		}
	}

	return closestHit, closestShape, closestHit != nil
}
