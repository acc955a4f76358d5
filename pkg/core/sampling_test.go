package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewSeededSampler(42)

	values := make([]float64, 10000)
	for i := range values {
		v := sampler.Range(-2, 6)
		if v < -2 || v >= 6 {
			t.Fatalf("Sample %f outside [-2, 6)", v)
		}
		values[i] = v
	}

	mean, variance := stat.MeanVariance(values, nil)
	// Uniform on [-2,6): mean 2, variance 64/12
	if math.Abs(mean-2.0) > 0.1 {
		t.Errorf("Expected mean near 2, got %f", mean)
	}
	if math.Abs(variance-64.0/12.0) > 0.2 {
		t.Errorf("Expected variance near %f, got %f", 64.0/12.0, variance)
	}
}

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical streams for identical seeds")
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(1)

	xs := make([]float64, 5000)
	for i := range xs {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
		xs[i] = p.X
	}

	// Uniform ball: each coordinate has mean 0 and variance 1/5
	mean, variance := stat.MeanVariance(xs, nil)
	if math.Abs(mean) > 0.03 {
		t.Errorf("Expected mean near 0, got %f", mean)
	}
	if math.Abs(variance-0.2) > 0.02 {
		t.Errorf("Expected variance near 0.2, got %f", variance)
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(2)

	zs := make([]float64, 5000)
	for i := range zs {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
		zs[i] = v.Z
	}

	// Uniform on the sphere: z is uniform on [-1,1], variance 1/3
	if variance := stat.Variance(zs, nil); math.Abs(variance-1.0/3.0) > 0.03 {
		t.Errorf("Expected z variance near 1/3, got %f", variance)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Expected point on z=0 plane, got %v", p)
		}
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}
}
