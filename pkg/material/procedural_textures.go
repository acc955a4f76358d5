package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CheckerTexture alternates between two color sources in a 3D checker pattern
type CheckerTexture struct {
	Odd  ColorSource
	Even ColorSource
}

// NewCheckerTexture creates a checker texture from two solid colors
func NewCheckerTexture(odd, even core.Vec3) *CheckerTexture {
	return &CheckerTexture{Odd: NewSolidColor(odd), Even: NewSolidColor(even)}
}

// Evaluate picks odd or even by the sign of a product of sines over the point
func (c *CheckerTexture) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Evaluate(u, v, p)
	}
	return c.Even.Evaluate(u, v, p)
}

// NoiseTexture is a marble-like pattern driven by Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// noiseTurbulenceDepth is the number of octaves summed for marble veins
const noiseTurbulenceDepth = 7

// NewNoiseTexture creates a noise texture with its own Perlin tables drawn from sampler
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(sampler), Scale: scale}
}

// Evaluate returns a grey level in [0,1]
func (n *NoiseTexture) Evaluate(u, v float64, p core.Vec3) core.Vec3 {
	grey := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.Noise.Turbulence(p, noiseTurbulenceDepth)))
	return core.NewVec3(grey, grey, grey)
}
