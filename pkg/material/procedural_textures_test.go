package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCheckerTexture(t *testing.T) {
	odd := core.NewVec3(0.2, 0.3, 0.1)
	even := core.NewVec3(0.9, 0.9, 0.9)
	checker := NewCheckerTexture(odd, even)

	tests := []struct {
		name     string
		p        core.Vec3
		expected core.Vec3
	}{
		{"all positive sines", core.NewVec3(0.1, 0.1, 0.1), even},
		{"one negative sine", core.NewVec3(-0.1, 0.1, 0.1), odd},
		{"two negative sines", core.NewVec3(-0.1, -0.1, 0.1), even},
		{"zero product is even", core.NewVec3(0, 0.1, 0.1), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Evaluate(0, 0, tt.p); got != tt.expected {
				t.Errorf("Checker at %v: expected %v, got %v", tt.p, tt.expected, got)
			}
		})
	}
}

func TestPerlinDeterministicAndBounded(t *testing.T) {
	a := NewPerlin(core.NewSeededSampler(3))
	b := NewPerlin(core.NewSeededSampler(3))
	sampler := core.NewSeededSampler(99)

	for i := 0; i < 1000; i++ {
		p := core.RandomVec3(sampler, -20, 20)
		na, nb := a.Noise(p), b.Noise(p)
		if na != nb {
			t.Fatalf("Same seed should give identical noise: %f vs %f", na, nb)
		}
		if math.Abs(na) > 1.0+1e-9 {
			t.Fatalf("Noise %f out of range at %v", na, p)
		}
		if turb := a.Turbulence(p, 7); turb < 0 {
			t.Fatalf("Turbulence must be non-negative, got %f", turb)
		}
	}
}

func TestPerlinZeroAtLatticePoints(t *testing.T) {
	perlin := NewPerlin(core.NewSeededSampler(5))
	for _, p := range []core.Vec3{{X: 0, Y: 0, Z: 0}, {X: 3, Y: -2, Z: 7}, {X: -10, Y: 4, Z: 1}} {
		if n := perlin.Noise(p); math.Abs(n) > 1e-12 {
			t.Errorf("Gradient noise should vanish on integer lattice, got %f at %v", n, p)
		}
	}
}

func TestNoiseTextureRange(t *testing.T) {
	noise := NewNoiseTexture(4, core.NewSeededSampler(11))
	sampler := core.NewSeededSampler(12)

	for i := 0; i < 500; i++ {
		p := core.RandomVec3(sampler, -5, 5)
		c := noise.Evaluate(0, 0, p)
		if c.X < 0 || c.X > 1 || c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Noise texture should be grey in [0,1], got %v", c)
		}
	}
}
