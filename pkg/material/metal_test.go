package material

import (
	"math"
	"testing"

	"github.com/df07/go-progressive-raycaster/pkg/core"
)

func TestMetal_ReflectionFormula(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		normal    core.Vec3
		expected  core.Vec3
	}{
		{
			name:      "head-on",
			direction: core.NewVec3(0, 0, -1),
			normal:    core.NewVec3(0, 0, 1),
			// 2*(0,0,-1) - (0,0,1)*(-1) = (0,0,-1)
			expected: core.NewVec3(0, 0, -1),
		},
		{
			name:      "45 degrees",
			direction: core.NewVec3(0, -1, -1),
			normal:    core.NewVec3(0, 0, 1),
			// 2*(0,-a,-a) - (0,0,1)*(-a) = (0,-2a,-a), a = 1/sqrt(2)
			expected: core.NewVec3(0, -2, -1).Normalize(),
		},
		{
			name:      "parallel to surface",
			direction: core.NewVec3(1, 0, 0),
			normal:    core.NewVec3(0, 1, 0),
			expected:  core.NewVec3(1, 0, 0),
		},
	}

	albedo := core.NewVec3(1.0, 0.1, 0.3)
	metal := NewMetal(albedo)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rayIn := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			hit := HitRecord{
				Point:  core.NewVec3(1, 2, 3),
				Normal: tt.normal,
			}

			scatter := metal.Scatter(rayIn, hit, nil)

			if !scatter.Scattered.Direction.ApproxEqual(tt.expected, 1e-10) {
				t.Errorf("Expected direction %v, got %v", tt.expected, scatter.Scattered.Direction)
			}
			if scatter.Scattered.Origin != hit.Point {
				t.Errorf("Expected origin %v, got %v", hit.Point, scatter.Scattered.Origin)
			}
			if scatter.Attenuation != albedo {
				t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
			}
		})
	}
}

func TestMetal_DiffersFromMirrorReflection(t *testing.T) {
	v := core.NewVec3(0, -1, -1).Normalize()
	n := core.NewVec3(0, 0, 1)

	mirror := v.Subtract(n.Multiply(2 * v.Dot(n)))
	got := reflect(v, n)

	if math.Abs(got.Normalize().Dot(mirror.Normalize())-1) < 1e-6 {
		t.Errorf("reflect should not collapse to the mirror identity, got %v", got)
	}
}
