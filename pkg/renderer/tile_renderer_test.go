package renderer

import (
	"image"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTileRendererTopsUpSamples(t *testing.T) {
	width, height := 4, 4
	scene := createMockScene(width)
	integratorInst := &mockIntegrator{color: core.NewVec3(0.7, 0.3, 0.1)}
	renderer := NewTileRenderer(scene, integratorInst, width, height)

	pixelStats := newPixelStats(width, height)
	bounds := image.Rect(0, 0, 2, 2)
	sampler := core.NewSeededSampler(42)

	stats := renderer.RenderTileBounds(bounds, pixelStats, sampler, 4)
	if got := integratorInst.calls.Load(); got != 16 {
		t.Errorf("Expected 16 integrator calls for 4 pixels x 4 samples, got %d", got)
	}
	if stats.TotalPixels != 4 || stats.TotalSamples != 16 {
		t.Errorf("Unexpected tile stats: %+v", stats)
	}

	// A later pass only adds the missing samples
	renderer.RenderTileBounds(bounds, pixelStats, sampler, 6)
	if got := integratorInst.calls.Load(); got != 24 {
		t.Errorf("Expected 24 integrator calls after topping up to 6, got %d", got)
	}

	// A lower target does nothing
	renderer.RenderTileBounds(bounds, pixelStats, sampler, 2)
	if got := integratorInst.calls.Load(); got != 24 {
		t.Errorf("Expected no extra calls for a lower target, got %d", got)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			inside := image.Pt(x, y).In(bounds)
			count := pixelStats[y][x].SampleCount
			if inside && count != 6 {
				t.Errorf("Pixel (%d,%d) inside tile has %d samples, want 6", x, y, count)
			}
			if !inside && count != 0 {
				t.Errorf("Pixel (%d,%d) outside tile was sampled %d times", x, y, count)
			}
		}
	}

	got := pixelStats[0][0].GetColor()
	if !vecNear(got, core.NewVec3(0.7, 0.3, 0.1), 1e-9) {
		t.Errorf("Expected pixel color (0.7,0.3,0.1), got %v", got)
	}
}

func TestTileRendererImageOrientation(t *testing.T) {
	// Camera looks down -z with +y up, so the top row sees rays pointing up
	width, height := 4, 4
	scene := createMockScene(width)
	renderer := NewTileRenderer(scene, skyIntegrator{}, width, height)

	pixelStats := newPixelStats(width, height)
	renderer.RenderTileBounds(image.Rect(0, 0, width, height), pixelStats, core.NewSeededSampler(1), 8)

	for x := 0; x < width; x++ {
		if top := pixelStats[0][x].GetColor(); top.X != 1 {
			t.Errorf("Top pixel (%d,0) should see the sky, got %v", x, top)
		}
		if bottom := pixelStats[height-1][x].GetColor(); bottom.X != 0 {
			t.Errorf("Bottom pixel (%d,%d) should see the ground, got %v", x, height-1, bottom)
		}
	}
}
