package core

import (
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.Length() >= 1.0 {
			t.Fatalf("Sample %d outside unit sphere: %v (length %f)", i, p, p.Length())
		}
	}
}

func TestRandomInUnitSphere_CoversAllOctants(t *testing.T) {
	sampler := NewSeededSampler(7)
	var octants [8]bool

	for i := 0; i < 2000; i++ {
		p := RandomInUnitSphere(sampler)
		index := 0
		if p.X > 0 {
			index |= 1
		}
		if p.Y > 0 {
			index |= 2
		}
		if p.Z > 0 {
			index |= 4
		}
		octants[index] = true
	}

	for i, seen := range octants {
		if !seen {
			t.Errorf("Octant %d never sampled", i)
		}
	}
}

func TestSampleRange(t *testing.T) {
	sampler := NewSeededSampler(1)

	for i := 0; i < 1000; i++ {
		v := SampleRange(sampler, -0.99, 0.99)
		if v < -0.99 || v >= 0.99 {
			t.Fatalf("Sample %f outside [-0.99, 0.99)", v)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)

	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with the same seed diverged at draw %d", i)
		}
	}
}
