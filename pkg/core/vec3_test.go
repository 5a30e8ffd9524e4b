package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{"unit X", NewVec3(1, 0, 0), NewVec3(1, 0, 0)},
		{"scaled Z", NewVec3(0, 0, -5), NewVec3(0, 0, -1)},
		{"3-4-5", NewVec3(3, 4, 0), NewVec3(0.6, 0.8, 0)},
		{"zero vector", NewVec3(0, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()
			if !result.ApproxEqual(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Sqrt(t *testing.T) {
	result := NewVec3(0.25, 1, 0.01).Sqrt()
	expected := NewVec3(0.5, 1, 0.1)
	if !result.ApproxEqual(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, -10, 18) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: got %f", got)
	}
	if got := b.Abs(); got != NewVec3(4, 5, 6) {
		t.Errorf("Abs: got %v", got)
	}
	if got := NewVec3(2, 3, 6).Length(); math.Abs(got-7) > 1e-12 {
		t.Errorf("Length: got %f", got)
	}
}

func TestRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -10))

	if math.Abs(ray.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
	}

	point := ray.At(2.5)
	expected := NewVec3(1, 1, -1.5)
	if !point.ApproxEqual(expected, 1e-12) {
		t.Errorf("Expected point %v, got %v", expected, point)
	}
}
