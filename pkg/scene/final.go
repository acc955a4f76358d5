package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	finalBoxesPerSide  = 20
	finalGroundBoxSize = 100.0
	finalClusterSize   = 1000
)

// NewFinalScene creates the showcase scene: a field of ground boxes, motion blur, glass, metal,
// a glass ball full of blue haze, thin global fog, textured spheres and a rotated sphere cluster.
func NewFinalScene(sampler core.Sampler, earth material.ColorSource, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
		Aperture:    0.1,
		Time0:       0,
		Time1:       1,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}
	s := newScene(cameraConfig, SamplingConfig{SamplesPerPixel: 500, MaxDepth: 50}, core.Vec3{})

	// Ground: boxes of random height, grouped in their own hierarchy
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := make([]geometry.Hittable, 0, finalBoxesPerSide*finalBoxesPerSide)
	for i := 0; i < finalBoxesPerSide; i++ {
		for j := 0; j < finalBoxesPerSide; j++ {
			x0 := -1000 + float64(i)*finalGroundBoxSize
			z0 := -1000 + float64(j)*finalGroundBoxSize
			y1 := sampler.Range(1, 101)
			boxes = append(boxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+finalGroundBoxSize, y1, z0+finalGroundBoxSize),
				ground,
			))
		}
	}
	s.Add(geometry.NewBVHNode(boxes, cameraConfig.Time0, cameraConfig.Time1))

	s.Add(geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	s.Add(geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	s.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 10)),
	)

	// The same glass sphere is both a visible surface and the boundary of the haze inside it
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Add(
		boundary,
		geometry.NewConstantMedium(boundary, 0.2, material.NewSolidColor(core.NewVec3(0.2, 0.4, 0.9))),
	)

	atmosphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.Add(geometry.NewConstantMedium(atmosphere, 0.0001, material.NewSolidColor(core.NewVec3(1, 1, 1))))

	s.Add(
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewNoiseTexture(0.1, sampler))),
	)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]geometry.Hittable, 0, finalClusterSize)
	for i := 0; i < finalClusterSize; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white))
	}
	s.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVHNode(cluster, cameraConfig.Time0, cameraConfig.Time1), 15),
		core.NewVec3(-100, 270, 395),
	))

	return s
}
