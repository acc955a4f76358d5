package scene

import (
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera          *geometry.Camera
	Objects         []geometry.Hittable // Objects in the scene
	BackgroundColor core.Vec3           // Radiance of rays that escape
	SamplingConfig  SamplingConfig
	CameraConfig    geometry.CameraConfig
	BVH             *geometry.BVHNode // Acceleration structure for ray-object intersection
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sampling settings suitable for a quick preview
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultConfig().MaxDepth,
	}
}

// newScene assembles a scene from a camera configuration, deriving image height from the aspect ratio
func newScene(cameraConfig geometry.CameraConfig, sampling SamplingConfig, background core.Vec3) *Scene {
	if cameraConfig.Width > 0 {
		sampling.Width = cameraConfig.Width
	}
	if sampling.Width > 0 && cameraConfig.AspectRatio > 0 {
		sampling.Height = int(float64(sampling.Width) / cameraConfig.AspectRatio)
	}
	cameraConfig.Width = sampling.Width

	return &Scene{
		Camera:          geometry.NewCamera(cameraConfig),
		BackgroundColor: background,
		SamplingConfig:  sampling,
		CameraConfig:    cameraConfig,
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...geometry.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// Preprocess prepares the scene for rendering by building the BVH over the camera's shutter interval
func (s *Scene) Preprocess(logger core.Logger) error {
	if logger == nil {
		logger = core.NopLogger{}
	}

	start := time.Now()
	bvh, err := geometry.BuildBVH(s.Objects, s.CameraConfig.Time0, s.CameraConfig.Time1)
	if err != nil {
		return fmt.Errorf("failed to build BVH: %w", err)
	}
	s.BVH = bvh

	stats := bvh.Stats()
	logger.Printf("BVH built in %v: %d objects, %d nodes, max depth %d, avg leaf depth %.1f\n",
		time.Since(start), stats.LeafObjects, stats.TotalNodes, stats.MaxDepth, stats.AvgLeafDepth)

	return nil
}

// World returns the root of the acceleration structure, or a linear list before Preprocess
func (s *Scene) World() geometry.Hittable {
	if s.BVH == nil {
		return geometry.NewHittableList(s.Objects...)
	}
	return s.BVH
}

// Background returns the background color
func (s *Scene) Background() core.Vec3 {
	return s.BackgroundColor
}

// GetPrimitiveCount returns the number of top-level objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}
