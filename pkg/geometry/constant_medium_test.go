package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestConstantMedium_DenseFogHitsAtEntry(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 1, testMaterial)
	fog := NewConstantMedium(boundary, 1e6, material.NewSolidColor(core.NewVec3(1, 1, 1)))
	sampler := core.NewSeededSampler(1)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := fog.Hit(ray, 0.001, math.Inf(1), sampler)
	if !ok {
		t.Fatal("Dense medium should scatter the ray")
	}
	if hit.T < 4 || hit.T > 4.001 {
		t.Errorf("Expected scattering just past the entry at t=4, got %f", hit.T)
	}
	if hit.Normal != core.NewVec3(1, 0, 0) || !hit.FrontFace {
		t.Errorf("Expected arbitrary (1,0,0) front-facing normal, got %v front=%t", hit.Normal, hit.FrontFace)
	}
	if _, isIsotropic := hit.Material.(*material.Isotropic); !isIsotropic {
		t.Errorf("Expected isotropic phase function, got %T", hit.Material)
	}
}

func TestConstantMedium_TransmissionProbability(t *testing.T) {
	// P(scatter) through a unit sphere diameter = 1 - exp(-density * 2)
	density := 0.5
	boundary := NewSphere(core.Vec3{}, 1, testMaterial)
	fog := NewConstantMedium(boundary, density, material.NewSolidColor(core.NewVec3(1, 1, 1)))
	sampler := core.NewSeededSampler(2)

	// Unnormalized direction must not change the answer
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -3))

	const trials = 20000
	hits := 0
	for i := 0; i < trials; i++ {
		hit, ok := fog.Hit(ray, 0.001, math.Inf(1), sampler)
		if !ok {
			continue
		}
		hits++
		if hit.Point.Z > 1+1e-9 || hit.Point.Z < -1-1e-9 {
			t.Fatalf("Scattering point %v outside boundary", hit.Point)
		}
	}

	expected := 1 - math.Exp(-density*2)
	got := float64(hits) / trials
	if math.Abs(got-expected) > 0.02 {
		t.Errorf("Expected scatter probability %f, got %f", expected, got)
	}
}

func TestConstantMedium_OriginInside(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 1, testMaterial)
	fog := NewConstantMedium(boundary, 1e6, material.NewSolidColor(core.NewVec3(1, 1, 1)))

	hit, ok := fog.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), 0.001, math.Inf(1), core.NewSeededSampler(3))
	if !ok {
		t.Fatal("Dense medium around the origin should scatter")
	}
	if hit.T < 0.001 || hit.T > 0.002 {
		t.Errorf("Expected scattering right after tMin, got %f", hit.T)
	}
}

func TestConstantMedium_NoHit(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 1, testMaterial)
	dense := NewConstantMedium(boundary, 1e6, material.NewSolidColor(core.NewVec3(1, 1, 1)))
	thin := NewConstantMedium(boundary, 1e-12, material.NewSolidColor(core.NewVec3(1, 1, 1)))
	sampler := core.NewSeededSampler(4)

	tests := []struct {
		name   string
		medium *ConstantMedium
		ray    core.Ray
		tMax   float64
	}{
		{"misses boundary", dense, core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1)), math.Inf(1)},
		{"window ends before entry", dense, core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 3},
		{"medium behind ray", dense, core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)), math.Inf(1)},
		{"near-vacuum", thin, core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, ok := tt.medium.Hit(tt.ray, 0.001, tt.tMax, sampler); ok {
				t.Errorf("Expected no scattering, got hit at t=%f", hit.T)
			}
		})
	}
}

func TestConstantMedium_BoundingBox(t *testing.T) {
	boundary := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), testMaterial)
	fog := NewConstantMediumWithMaterial(boundary, 0.01, material.NewIsotropic(core.Vec3{}))

	box, ok := fog.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Medium should report its boundary's box")
	}
	assertVec(t, "min", box.Min, core.NewVec3(0, 0, 0))
	assertVec(t, "max", box.Max, core.NewVec3(165, 330, 165))
}

func TestConstantMedium_RejectsNonPositiveDensity(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 1, testMaterial)
	for _, density := range []float64{0, -0.5, math.NaN()} {
		t.Run(fmt.Sprint(density), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for density %v", density)
				}
			}()
			NewConstantMedium(boundary, density, material.NewSolidColor(core.NewVec3(1, 1, 1)))
		})
	}
}

// scatterFraction fires the same ray n times and reports how often the target scatters it
func scatterFraction(target Hittable, ray core.Ray, n int, seed int64) float64 {
	sampler := core.NewSeededSampler(seed)
	scattered := 0
	for i := 0; i < n; i++ {
		if _, ok := target.Hit(ray, 0.001, math.Inf(1), sampler); ok {
			scattered++
		}
	}
	return float64(scattered) / float64(n)
}

func TestConstantMedium_DensityPreservedInsideBVH(t *testing.T) {
	const density = 0.5
	fog := NewConstantMedium(NewSphere(core.Vec3{}, 1, testMaterial), density, material.NewSolidColor(core.NewVec3(1, 1, 1)))
	farA := NewSphere(core.NewVec3(50, 0, 0), 1, testMaterial)
	farB := NewSphere(core.NewVec3(100, 0, 0), 1, testMaterial)

	// Three objects split 1/2, so the fog sits alone in a single-object node
	bvh := NewBVHNode([]Hittable{farB, fog, farA}, 0, 1)
	leaf, ok := bvh.Left.(*BVHNode)
	if !ok || leaf.Left != fog || leaf.Right != fog {
		t.Fatalf("Expected the fog alone in the left node, got %T", bvh.Left)
	}

	// Through the center: path length 2 inside the medium
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	expected := 1 - math.Exp(-density*2)

	const samples = 20000
	direct := scatterFraction(fog, ray, samples, 11)
	viaBVH := scatterFraction(bvh, ray, samples, 12)
	viaList := scatterFraction(NewHittableList(farB, fog, farA), ray, samples, 13)

	for name, got := range map[string]float64{"direct": direct, "bvh": viaBVH, "list": viaList} {
		if math.Abs(got-expected) > 0.02 {
			t.Errorf("%s: scatter probability %f, expected %f", name, got, expected)
		}
	}
}
