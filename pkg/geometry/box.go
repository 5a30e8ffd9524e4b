package geometry

import (
	"math"

	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/material"
)

// boxNormalBias nudges face-relative coordinates past 1 on the dominant axis
// so truncation selects a single face
const boxNormalBias = 1.000001

// Box represents an axis-aligned box between two corners
type Box struct {
	Min core.Vec3
	Max core.Vec3
}

// NewBox creates a new axis-aligned box
func NewBox(min, max core.Vec3) *Box {
	return &Box{Min: min, Max: max}
}

// Center returns the midpoint of the box
func (b *Box) Center() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Hit intersects the ray with the box using the slab method, narrowing the
// interval over X, Y and Z in turn. If the entry point lies behind the ray
// origin the exit point is used instead. tMin/tMax are not applied.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	near, far := slab(b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X)

	nearY, farY := slab(b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y)
	if near > farY || nearY > far {
		return nil, false
	}
	if nearY > near {
		near = nearY
	}
	if farY < far {
		far = farY
	}

	nearZ, farZ := slab(b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z)
	if near > farZ || nearZ > far {
		return nil, false
	}
	if nearZ > near {
		near = nearZ
	}
	if farZ < far {
		far = farZ
	}

	t := near
	if t < 0 {
		t = far
		if t < 0 {
			return nil, false
		}
	}

	point := ray.At(t)
	return &material.HitRecord{
		T:         t,
		Point:     point,
		Normal:    b.normalAt(point),
		StepCount: 1,
	}, true
}

// normalAt returns the outward face normal for a point on the box surface
func (b *Box) normalAt(point core.Vec3) core.Vec3 {
	p := point.Subtract(b.Center())
	halfExtent := b.Min.Subtract(b.Max).Multiply(0.5).Abs()

	return core.NewVec3(
		math.Trunc(p.X/halfExtent.X*boxNormalBias),
		math.Trunc(p.Y/halfExtent.Y*boxNormalBias),
		math.Trunc(p.Z/halfExtent.Z*boxNormalBias),
	).Normalize()
}

// slab returns the ordered parametric interval where the ray lies between lo and hi on one axis
func slab(lo, hi, origin, direction float64) (float64, float64) {
	invD := 1.0 / direction
	t0 := (lo - origin) * invD
	t1 := (hi - origin) * invD
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1
}
