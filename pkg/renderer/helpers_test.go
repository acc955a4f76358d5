package renderer

import (
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// mockScene implements Scene with a fixed camera and world
type mockScene struct {
	camera     *geometry.Camera
	world      geometry.Hittable
	background core.Vec3
}

func (m *mockScene) World() geometry.Hittable    { return m.world }
func (m *mockScene) Background() core.Vec3       { return m.background }
func (m *mockScene) GetCamera() *geometry.Camera { return m.camera }

// createMockScene creates a pinhole camera at the origin looking down -z at a small sphere
func createMockScene(width int) *mockScene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 1.0,
		VFov:        90.0,
		Aperture:    0.0,
	})
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	return &mockScene{
		camera:     camera,
		world:      geometry.NewHittableList(sphere),
		background: core.NewVec3(0.5, 0.7, 1.0),
	}
}

// mockIntegrator returns a constant color and counts calls; safe for concurrent use
type mockIntegrator struct {
	color core.Vec3
	calls atomic.Int64
}

func (m *mockIntegrator) RayColor(ray core.Ray, scene integrator.Scene, sampler core.Sampler) core.Vec3 {
	m.calls.Add(1)
	return m.color
}

// skyIntegrator returns white for rays pointing up and black otherwise
type skyIntegrator struct{}

func (skyIntegrator) RayColor(ray core.Ray, scene integrator.Scene, sampler core.Sampler) core.Vec3 {
	if ray.Direction.Y > 0 {
		return core.NewVec3(1, 1, 1)
	}
	return core.Vec3{}
}

func vecNear(a, b core.Vec3, eps float64) bool {
	return a.Subtract(b).Length() < eps
}
