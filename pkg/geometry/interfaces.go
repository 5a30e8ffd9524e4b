package geometry

import (
	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit must be a pure function of its inputs.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
