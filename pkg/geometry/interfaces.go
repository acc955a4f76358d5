package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable interface for anything a ray can intersect: primitives, wrappers and acceleration nodes
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax].
	// The sampler is consumed only by volumetric objects.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval [time0, time1].
	// Returns false for objects without finite extent.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
