package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func assertVec(t *testing.T, name string, got, expected core.Vec3) {
	t.Helper()
	if !vecNear(got, expected, 1e-6) {
		t.Errorf("%s: expected %v, got %v", name, expected, got)
	}
}

// unboundedObject is a Hittable that cannot report a bounding box
type unboundedObject struct{}

func (unboundedObject) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return nil, false
}

func (unboundedObject) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
