package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// outdoorCameraConfig is the wide-angle view shared by the sphere scenes
func outdoorCameraConfig(cameraOverrides []geometry.CameraConfig) geometry.CameraConfig {
	config := geometry.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20.0,
		Aperture:    0.1,
		Time0:       0,
		Time1:       1,
	}
	if len(cameraOverrides) > 0 {
		config = geometry.MergeCameraConfig(config, cameraOverrides[0])
	}
	return config
}

func groundChecker() *material.CheckerTexture {
	return material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
}

// NewRandomSpheresScene creates a field of small random spheres around three large ones.
// Diffuse spheres bounce during the shutter interval. The glowing checkered ground is the only light.
func NewRandomSpheresScene(sampler core.Sampler, cameraOverrides ...geometry.CameraConfig) *Scene {
	s := newScene(outdoorCameraConfig(cameraOverrides), SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, core.Vec3{})

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedDiffuseLight(groundChecker())))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+sampler.Get1D(),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center1 := center.Add(core.NewVec3(0, sampler.Range(0, 0.5), 0))
				s.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				// Metal
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := sampler.Range(0, 0.5)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// Glass
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

// NewTwoSpheresScene creates two large checkered spheres, the upper one glowing
func NewTwoSpheresScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := newScene(outdoorCameraConfig(cameraOverrides), SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, core.Vec3{})

	checker := groundChecker()
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedDiffuseLight(checker)),
	)

	return s
}

// NewTwoPerlinSpheresScene creates a marble sphere resting on a glowing marble ground
func NewTwoPerlinSpheresScene(sampler core.Sampler, cameraOverrides ...geometry.CameraConfig) *Scene {
	s := newScene(outdoorCameraConfig(cameraOverrides), SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, core.Vec3{})

	marble := material.NewNoiseTexture(4, sampler)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedDiffuseLight(marble)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(marble)),
	)

	return s
}

// NewEarthScene creates a single self-lit globe wrapped in the given texture
func NewEarthScene(earth material.ColorSource, cameraOverrides ...geometry.CameraConfig) *Scene {
	s := newScene(outdoorCameraConfig(cameraOverrides), SamplingConfig{SamplesPerPixel: 50, MaxDepth: 50}, core.Vec3{})

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedDiffuseLight(earth)))

	return s
}

// NewSimpleLightScene creates marble spheres lit by a small rectangular light
func NewSimpleLightScene(sampler core.Sampler, cameraOverrides ...geometry.CameraConfig) *Scene {
	config := geometry.CameraConfig{
		Center: core.NewVec3(26, 3, 6),
		LookAt: core.NewVec3(0, 2, 0),
	}
	if len(cameraOverrides) > 0 {
		config = geometry.MergeCameraConfig(config, cameraOverrides[0])
	}
	s := newScene(outdoorCameraConfig([]geometry.CameraConfig{config}), SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50}, core.Vec3{})

	marble := material.NewNoiseTexture(4, sampler)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(marble)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(marble)),
		geometry.NewXYRect(3, 5, 1, 3, -2, material.NewDiffuseLight(core.NewVec3(4, 4, 4))),
	)

	return s
}
