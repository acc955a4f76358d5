package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// cornellBoxSize is the standard 555 unit Cornell box edge
const cornellBoxSize = 555.0

func cornellCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0, // Square aspect ratio for Cornell box
		VFov:        40.0,
		Aperture:    0.1,
		Time0:       0,
		Time1:       1,
	}
}

// newCornellShell creates the five walls of the box plus a ceiling light
func newCornellShell(light *geometry.AxisRect, cameraOverrides []geometry.CameraConfig, samples int) (*Scene, material.Material) {
	cameraConfig := cornellCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := newScene(cameraConfig, SamplingConfig{SamplesPerPixel: samples, MaxDepth: 50}, core.Vec3{})

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	s.Add(
		geometry.NewYZRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, green), // Left wall as seen from the camera
		geometry.NewYZRect(0, cornellBoxSize, 0, cornellBoxSize, 0, red),
		light,
		geometry.NewXZRect(0, cornellBoxSize, 0, cornellBoxSize, 0, white),              // Floor
		geometry.NewXZRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, white), // Ceiling
		geometry.NewXYRect(0, cornellBoxSize, 0, cornellBoxSize, cornellBoxSize, white), // Back wall
	)

	return s, white
}

// cornellBlocks returns the tall and short blocks, rotated and placed in the box
func cornellBlocks(white material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	return tall, short
}

// NewCornellBoxScene creates the Cornell box with two blocks filled with dark and light haze
func NewCornellBoxScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	light := geometry.NewXZRect(213, 343, 227, 332, 554, material.NewDiffuseLight(core.NewVec3(15, 15, 15)))
	s, white := newCornellShell(light, cameraOverrides, 200)

	// Haze with a diffuse phase function: scattering events bounce like a matte surface
	tall, short := cornellBlocks(white)
	s.Add(
		geometry.NewConstantMediumWithMaterial(tall, 0.01, material.NewLambertian(core.NewVec3(0, 0, 0))),
		geometry.NewConstantMediumWithMaterial(short, 0.01, material.NewLambertian(core.NewVec3(1, 1, 1))),
	)

	return s
}

// NewCornellSmokeScene creates the Cornell box with two blocks of black and white smoke under a larger, dimmer light
func NewCornellSmokeScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	light := geometry.NewXZRect(113, 443, 127, 432, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7)))
	s, white := newCornellShell(light, cameraOverrides, 200)

	tall, short := cornellBlocks(white)
	s.Add(
		geometry.NewConstantMedium(tall, 0.01, material.NewSolidColor(core.NewVec3(0, 0, 0))),
		geometry.NewConstantMedium(short, 0.01, material.NewSolidColor(core.NewVec3(1, 1, 1))),
	)

	return s
}
