package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for surfaces and media that interact with rays
type Material interface {
	// Scatter generates the continuation of a path at a hit.
	// Returns false when the material absorbs the ray and the path ends.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at surface coordinates (u, v) and point p
	Emitted(u, v float64, p core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// NoEmission can be embedded by materials that do not emit light
type NoEmission struct{}

// Emitted returns black
func (NoEmission) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, always facing against the ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface parameterization for texture lookup
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
