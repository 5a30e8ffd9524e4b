package scene

import (
	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/geometry"
)

// NewDefaultScene creates the rendered composition: an analytic sphere on the
// right, a ray-marched sphere on the left and a large ground sphere
func NewDefaultScene() *Scene {
	return NewScene(
		geometry.NewSphere(core.NewVec3(0.5, 0.0, -1.0), 0.5),
		geometry.NewStepSphere(core.NewVec3(-0.5, 0.0, -1.0), 0.5),
		geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0),
	)
}

// NewPrimitivesScene extends the default composition with a centre sphere,
// a plane and a box so that every shape kind takes part in rendering
func NewPrimitivesScene() *Scene {
	s := NewDefaultScene()
	s.Add(
		geometry.NewSphere(core.NewVec3(0.0, 0.0, -1.0), 0.5),
		geometry.NewPlane(core.NewVec3(0.0, 0.0, -1.0), core.NewVec3(0.0, -1.0, 0.0)),
		geometry.NewBox(core.NewVec3(0.4, 0.0, -0.3), core.NewVec3(0.6, 0.4, -0.5)),
	)
	return s
}
