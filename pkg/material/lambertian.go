package material

import (
	"github.com/df07/go-progressive-raycaster/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter sends the ray from the hit point towards a random point in the
// unit sphere tangent to the surface at the hit point
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(sampler))

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, target.Subtract(hit.Point)),
		Attenuation: l.Albedo,
	}
}
