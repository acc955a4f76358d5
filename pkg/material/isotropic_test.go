package material

import (
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestIsotropicScatter(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	iso := NewIsotropic(albedo)
	sampler := core.NewSeededSampler(7)

	hit := HitRecord{Point: core.NewVec3(1, 1, 1), Normal: core.NewVec3(1, 0, 0), FrontFace: true}
	ray := core.NewRayAt(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 0.3)

	const n = 5000
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i := 0; i < n; i++ {
		scatter, ok := iso.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatal("Isotropic should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Time != 0.3 {
			t.Fatalf("Expected time 0.3, got %f", scatter.Scattered.Time)
		}
		d := scatter.Scattered.Direction
		if d.LengthSquared() >= 1 {
			t.Fatalf("Direction should lie inside the unit sphere, got %v", d)
		}
		xs[i], ys[i], zs[i] = d.X, d.Y, d.Z
	}

	// Uniform directions have no preferred axis
	for name, samples := range map[string][]float64{"x": xs, "y": ys, "z": zs} {
		if mean := stat.Mean(samples, nil); mean > 0.05 || mean < -0.05 {
			t.Errorf("Mean %s component %f, expected ~0", name, mean)
		}
	}
}
