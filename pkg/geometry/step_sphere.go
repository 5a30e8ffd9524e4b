package geometry

import (
	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/material"
)

const (
	// MaxMarchSteps bounds the number of sphere-tracing iterations per ray
	MaxMarchSteps = 64
	// SurfaceEpsilon is the distance below which a marched point counts as on the surface
	SurfaceEpsilon = 1e-9
)

// StepSphere is a sphere intersected by sphere tracing its signed distance field
type StepSphere struct {
	Center core.Vec3
	Radius float64
}

// NewStepSphere creates a new ray-marched sphere
func NewStepSphere(center core.Vec3, radius float64) *StepSphere {
	return &StepSphere{
		Center: center,
		Radius: radius,
	}
}

// Distance returns the signed distance from point to the sphere surface
func (s *StepSphere) Distance(point core.Vec3) float64 {
	return point.Subtract(s.Center).Length() - s.Radius
}

// Hit marches along the ray from tMin, stepping by the distance field until
// the surface is reached, tMax is passed, or MaxMarchSteps is exhausted.
// No material is attached.
func (s *StepSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t := tMin
	for i := 0; i < MaxMarchSteps; i++ {
		point := ray.At(t)
		dist := s.Distance(point)

		if dist < SurfaceEpsilon {
			return &material.HitRecord{
				T:         t,
				Point:     point,
				Normal:    point.Subtract(s.Center).Normalize(),
				StepCount: i + 1,
			}, true
		}

		t += dist
		if t >= tMax {
			return nil, false
		}
	}
	return nil, false
}
