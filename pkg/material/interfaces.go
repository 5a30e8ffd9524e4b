package material

import (
	"github.com/df07/go-progressive-raycaster/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter produces the outgoing ray and color attenuation for a hit
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// A fresh record is produced per intersection test and never mutated afterwards.
type HitRecord struct {
	T         float64   // Parameter t along the ray
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal at intersection
	StepCount int       // Ray-march iterations taken (1 for analytic shapes)
	Material  Material  // Material attached by the shape, nil if none
}
