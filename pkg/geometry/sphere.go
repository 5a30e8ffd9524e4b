package geometry

import (
	"math"

	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/material"
)

// sphereMaterial is attached to every sphere hit regardless of the sphere
var sphereMaterial = material.NewMetal(core.NewVec3(1.0, 0.1, 0.3))

// Sphere represents an analytically intersected sphere
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root >= tMax || root <= tMin {
		root = (-halfB + sqrtD) / a
		if root >= tMax || root <= tMin {
			return nil, false
		}
	}

	point := ray.At(root)
	return &material.HitRecord{
		T:         root,
		Point:     point,
		Normal:    point.Subtract(s.Center).Normalize(),
		StepCount: 1,
		Material:  sphereMaterial,
	}, true
}
