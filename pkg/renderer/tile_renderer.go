package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene         Scene
	integrator    integrator.Integrator
	width, height int
}

// NewTileRenderer creates a new tile renderer for an image of the given size
func NewTileRenderer(scene Scene, integratorInst integrator.Integrator, width, height int) *TileRenderer {
	return &TileRenderer{
		scene:      scene,
		integrator: integratorInst,
		width:      width,
		height:     height,
	}
}

// RenderTileBounds tops up every pixel within bounds to targetSamples samples.
// Pixels that already have enough samples are left untouched.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler, targetSamples int) RenderStats {
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			tr.samplePixel(i, j, &pixelStats[j][i], sampler, targetSamples)
		}
	}

	return summarizePixels(pixelStats, bounds, targetSamples)
}

// samplePixel takes jittered samples for pixel (i, j) until it has targetSamples.
// Row 0 is the top of the image while camera t runs bottom to top.
func (tr *TileRenderer) samplePixel(i, j int, ps *PixelStats, sampler core.Sampler, targetSamples int) {
	camera := tr.scene.GetCamera()
	row := tr.height - 1 - j

	for ps.SampleCount < targetSamples {
		s := (float64(i) + sampler.Get1D()) / float64(tr.width)
		t := (float64(row) + sampler.Get1D()) / float64(tr.height)

		ray := camera.GetRay(s, t, sampler)
		ps.AddSample(tr.integrator.RayColor(ray, tr.scene, sampler))
	}
}
