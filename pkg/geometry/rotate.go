package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates a child object about the world Y axis
type RotateY struct {
	Object   Hittable
	Degrees  float64
	sinTheta float64
	cosTheta float64
}

// NewRotateY wraps object rotated by angle degrees about +Y (counter-clockwise looking down -Y)
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	return &RotateY{
		Object:   object,
		Degrees:  angle,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

func lerpCorner(min, max float64, pick int) float64 {
	if pick == 1 {
		return max
	}
	return min
}

// toLocal rotates a world-space vector into the child's frame
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates a child-space vector into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into the child's frame and the resulting point and normal back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAt(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	// Rotation preserves the normal's orientation relative to the ray, so FrontFace carries over
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox bounds the 8 rotated corners of the child's box over [time0, time1]
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	childBox, ok := r.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					lerpCorner(childBox.Min.X, childBox.Max.X, i),
					lerpCorner(childBox.Min.Y, childBox.Max.Y, j),
					lerpCorner(childBox.Min.Z, childBox.Max.Z, k),
				)
				corners = append(corners, r.toWorld(corner))
			}
		}
	}
	return core.NewAABBFromPoints(corners...), true
}
