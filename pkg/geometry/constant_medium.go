package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// mediumExitEpsilon skips past the entry surface when searching for the exit hit
const mediumExitEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium (fog, smoke) filling a boundary shape.
// The boundary must be convex: a ray is assumed to enter and leave it at most once.
type ConstantMedium struct {
	Boundary      Hittable
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium of the given positive density with an isotropic phase function
func NewConstantMedium(boundary Hittable, density float64, albedo material.ColorSource) *ConstantMedium {
	return NewConstantMediumWithMaterial(boundary, density, material.NewTexturedIsotropic(albedo))
}

// NewConstantMediumWithMaterial creates a medium with an explicit phase function material.
// It panics if density is not positive.
func NewConstantMediumWithMaterial(boundary Hittable, density float64, phase material.Material) *ConstantMedium {
	if !(density > 0) {
		panic(fmt.Sprintf("constant medium: density must be positive, got %v", density))
	}
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phase,
		negInvDensity: -1.0 / density,
	}
}

// Hit samples a free-flight distance inside the boundary and reports a scattering event if it falls short of the exit
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	exit, ok := m.Boundary.Hit(ray, entry.T+mediumExitEpsilon, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	entryT := math.Max(entry.T, tMin)
	exitT := math.Min(exit.T, tMax)
	if entryT >= exitT {
		return nil, false
	}

	// Ray origin inside the medium
	entryT = math.Max(entryT, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (exitT - entryT) * rayLength

	// 1-U keeps the draw in (0,1] so the log stays finite
	hitDistance := m.negInvDensity * math.Log(1-sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := entryT + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
