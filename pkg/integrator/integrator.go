package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene is what an integrator needs to see of a scene
type Scene interface {
	// World returns the root object rays are intersected against, usually a BVH
	World() geometry.Hittable
	// Background returns the radiance of rays that escape the scene
	Background() core.Vec3
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns one Monte Carlo sample of the radiance arriving along ray
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3
}
