package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Scene is what the renderer needs from a scene: the integrator's view plus a camera
type Scene interface {
	integrator.Scene
	GetCamera() *geometry.Camera
}

// Raytracer renders whole images on the calling goroutine
type Raytracer struct {
	tileRenderer    *TileRenderer
	width, height   int
	samplesPerPixel int
}

// NewRaytracer creates a new single-threaded raytracer
func NewRaytracer(scene Scene, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *Raytracer {
	return &Raytracer{
		tileRenderer:    NewTileRenderer(scene, integratorInst, width, height),
		width:           width,
		height:          height,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderPass renders every pixel with the configured sample count and returns the image and statistics
func (rt *Raytracer) RenderPass(sampler core.Sampler) (*image.RGBA, RenderStats) {
	pixelStats := newPixelStats(rt.width, rt.height)
	bounds := image.Rect(0, 0, rt.width, rt.height)
	stats := rt.tileRenderer.RenderTileBounds(bounds, pixelStats, sampler, rt.samplesPerPixel)
	return assembleImage(pixelStats, rt.width, rt.height), stats
}

func newPixelStats(width, height int) [][]PixelStats {
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}
	return pixelStats
}

// assembleImage converts accumulated pixel samples into an 8-bit image
func assembleImage(pixelStats [][]PixelStats, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}
	return img
}

// vec3ToColor converts an averaged linear color to RGBA with gamma 2 and clamping.
// Channels map through sqrt, clamp to [0, 0.999] and scale by 256 so 1.0 lands on 255.
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(colorVec.X),
		G: quantize(colorVec.Y),
		B: quantize(colorVec.Z),
		A: 255,
	}
}

func quantize(c float64) uint8 {
	// NaN from degenerate samples renders black
	if math.IsNaN(c) || c < 0 {
		c = 0
	}
	return uint8(256 * core.Clamp(math.Sqrt(c), 0.0, 0.999))
}
