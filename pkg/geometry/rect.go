package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectThickness pads the flat axis of a rectangle's bounding box so the box has volume
const rectThickness = 0.0001

// AxisRect is an axis-aligned rectangle lying in a plane of constant coordinate K.
// [A0,A1] and [B0,B1] are its extents along the two in-plane axes, in XYZ order.
type AxisRect struct {
	axis   int // constant axis (normal direction)
	uAxis  int // in-plane axis mapped to texture u
	vAxis  int // in-plane axis mapped to texture v
	A0, A1 float64
	B0, B1 float64
	K      float64

	Material material.Material
}

// NewXYRect creates a rectangle in the plane z = k spanning [x0,x1] x [y0,y1]
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *AxisRect {
	return &AxisRect{axis: 2, uAxis: 0, vAxis: 1, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle in the plane y = k spanning [x0,x1] x [z0,z1]
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *AxisRect {
	return &AxisRect{axis: 1, uAxis: 0, vAxis: 2, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle in the plane x = k spanning [y0,y1] x [z0,z1]
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *AxisRect {
	return &AxisRect{axis: 0, uAxis: 1, vAxis: 2, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

// Axis returns the index (0=x, 1=y, 2=z) of the axis the rectangle is perpendicular to
func (r *AxisRect) Axis() int {
	return r.axis
}

// Hit intersects the ray with the rectangle's plane and checks the in-plane bounds
func (r *AxisRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	dirK := ray.Direction.Axis(r.axis)
	if dirK == 0 {
		// Parallel to the plane
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(r.axis)) / dirK
	if t < tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Axis(r.uAxis) + t*ray.Direction.Axis(r.uAxis)
	b := ray.Origin.Axis(r.vAxis) + t*ray.Direction.Axis(r.vAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}
	outwardNormal := core.Vec3{}.WithAxis(r.axis, 1)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the rectangle's extent, padded along its normal axis
func (r *AxisRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	min := core.Vec3{}.
		WithAxis(r.uAxis, r.A0).
		WithAxis(r.vAxis, r.B0).
		WithAxis(r.axis, r.K-rectThickness)
	max := core.Vec3{}.
		WithAxis(r.uAxis, r.A1).
		WithAxis(r.vAxis, r.B1).
		WithAxis(r.axis, r.K+rectThickness)
	return core.NewAABB(min, max), true
}
