package geometry

import (
	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/material"
)

// planeGrazingThreshold is the minimum ray/normal alignment for a plane hit
const planeGrazingThreshold = 0.01

// Plane represents a single-sided infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Normal vector (should be normalized)
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}

// Hit tests the ray against the plane. Only rays travelling along the normal
// beyond the grazing threshold intersect. The distance is measured from the
// ray origin projected onto the normal, so Point does not take part, and
// tMin/tMax are not applied.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if denominator <= planeGrazingThreshold {
		return nil, false
	}

	t := ray.Origin.Dot(p.Normal) / denominator
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    p.Normal,
		StepCount: 1,
	}, true
}
