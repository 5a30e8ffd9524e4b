package renderer

import (
	"github.com/df07/go-progressive-raycaster/pkg/core"
)

// Projection selects how the camera turns screen coordinates into rays
type Projection int

const (
	// Perspective rays all start at the camera origin
	Perspective Projection = iota
	// Orthogonal rays start on the viewport and look down -Z
	Orthogonal
)

// String returns the projection name
func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthogonal:
		return "orthogonal"
	default:
		return "unknown"
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds the viewport from a position, view direction and aspect ratio.
// The viewport mixes un-normalized offsets with the normalized view vector;
// rendered framing depends on this exact construction.
func NewCamera(position, viewDirection core.Vec3, aspectRatio float64) *Camera {
	return &Camera{
		origin:          position,
		lowerLeftCorner: core.NewVec3(-aspectRatio, -1, 0).Add(viewDirection.Normalize()),
		horizontal:      core.NewVec3(aspectRatio*(2+viewDirection.X), 0, 0),
		vertical:        core.NewVec3(0, 2+viewDirection.Y, 0),
	}
}

// GetRay generates a ray for screen coordinates (u, v) in [0,1]² with the given projection
func (c *Camera) GetRay(u, v float64, projection Projection) core.Ray {
	if projection == Orthogonal {
		return c.GetRayOrthogonal(u, v)
	}
	return c.GetRayPerspective(u, v)
}

// GetRayPerspective generates a ray from the camera origin through the viewport point (u, v)
func (c *Camera) GetRayPerspective(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// GetRayOrthogonal generates a ray starting at the viewport point (u, v) looking down -Z
func (c *Camera) GetRayOrthogonal(u, v float64) core.Ray {
	origin := c.lowerLeftCorner.Add(core.NewVec3(u*c.horizontal.X, v*c.vertical.Y, 1))
	return core.NewRay(origin, core.NewVec3(0, 0, -1))
}
