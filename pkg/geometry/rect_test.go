package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestAxisRect_Hit(t *testing.T) {
	tests := []struct {
		name           string
		rect           *AxisRect
		ray            core.Ray
		expectHit      bool
		expectedT      float64
		expectedU      float64
		expectedV      float64
		expectedNormal core.Vec3
		expectedFront  bool
	}{
		{
			name:           "xy rect from +z",
			rect:           NewXYRect(0, 2, 0, 4, -1, testMaterial),
			ray:            core.NewRay(core.NewVec3(0.5, 1, 1), core.NewVec3(0, 0, -1)),
			expectHit:      true,
			expectedT:      2,
			expectedU:      0.25,
			expectedV:      0.25,
			expectedNormal: core.NewVec3(0, 0, 1),
			expectedFront:  true,
		},
		{
			name:           "xy rect from -z",
			rect:           NewXYRect(0, 2, 0, 4, 1, testMaterial),
			ray:            core.NewRay(core.NewVec3(1, 2, 0), core.NewVec3(0, 0, 1)),
			expectHit:      true,
			expectedT:      1,
			expectedU:      0.5,
			expectedV:      0.5,
			expectedNormal: core.NewVec3(0, 0, -1),
			expectedFront:  false,
		},
		{
			name:           "xz rect light seen from below",
			rect:           NewXZRect(213, 343, 227, 332, 554, testMaterial),
			ray:            core.NewRay(core.NewVec3(278, 0, 279.5), core.NewVec3(0, 1, 0)),
			expectHit:      true,
			expectedT:      554,
			expectedU:      0.5,
			expectedV:      0.5,
			expectedNormal: core.NewVec3(0, -1, 0),
			expectedFront:  false,
		},
		{
			name:           "yz rect from +x",
			rect:           NewYZRect(0, 1, 0, 1, 0, testMaterial),
			ray:            core.NewRay(core.NewVec3(3, 0.5, 0.75), core.NewVec3(-1, 0, 0)),
			expectHit:      true,
			expectedT:      3,
			expectedU:      0.5,
			expectedV:      0.75,
			expectedNormal: core.NewVec3(1, 0, 0),
			expectedFront:  true,
		},
		{
			name:      "outside in-plane bounds",
			rect:      NewXYRect(0, 1, 0, 1, 0, testMaterial),
			ray:       core.NewRay(core.NewVec3(2, 0.5, 1), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:      "parallel to plane",
			rect:      NewXZRect(0, 1, 0, 1, 0, testMaterial),
			ray:       core.NewRay(core.NewVec3(0.5, 0, 0.5), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "behind origin",
			rect:      NewYZRect(0, 1, 0, 1, 0, testMaterial),
			ray:       core.NewRay(core.NewVec3(1, 0.5, 0.5), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.rect.Hit(tt.ray, 0.001, math.Inf(1), nil)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if math.Abs(hit.U-tt.expectedU) > tolerance || math.Abs(hit.V-tt.expectedV) > tolerance {
				t.Errorf("Expected uv (%f,%f), got (%f,%f)", tt.expectedU, tt.expectedV, hit.U, hit.V)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
		})
	}
}

func TestAxisRect_BoundingBoxPadded(t *testing.T) {
	box, ok := NewXZRect(1, 2, 3, 4, 5, testMaterial).BoundingBox(0, 1)
	if !ok {
		t.Fatal("Rect should have a bounding box")
	}
	assertVec(t, "min", box.Min, core.NewVec3(1, 5-rectThickness, 3))
	assertVec(t, "max", box.Max, core.NewVec3(2, 5+rectThickness, 4))

	if box.Max.Y-box.Min.Y <= 0 {
		t.Error("Padded axis should have positive thickness")
	}
}

func TestHittableList(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial)
	far := NewSphere(core.NewVec3(0, 0, -10), 0.5, testMaterial)

	list := NewHittableList(far)
	list.Add(near)

	hit, ok := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-1.5) > tolerance {
		t.Errorf("Expected closest hit at t=1.5, got %f", hit.T)
	}

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("List of spheres should have a box")
	}
	assertVec(t, "min", box.Min, core.NewVec3(-0.5, -0.5, -10.5))
	assertVec(t, "max", box.Max, core.NewVec3(0.5, 0.5, -1.5))

	if _, ok := NewHittableList().BoundingBox(0, 1); ok {
		t.Error("Empty list should have no box")
	}
	if _, ok := NewHittableList(near, unboundedObject{}).BoundingBox(0, 1); ok {
		t.Error("List with an unbounded object should have no box")
	}
	if _, ok := NewHittableList().Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0, 1, nil); ok {
		t.Error("Empty list should never be hit")
	}
}
