package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

func writeEarthTexture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "earth.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.RGBA{0, 0, 255, 255})
		img.Set(x, 1, color.RGBA{0, 255, 0, 255})
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create texture: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode texture: %v", err)
	}
	return path
}

func TestCatalogScenesBuildAndPreprocess(t *testing.T) {
	earth := writeEarthTexture(t)

	tests := []struct {
		name        string
		objects     int
		aspectRatio float64
		vfov        float64
	}{
		{"random-spheres", 0, 16.0 / 9.0, 20},
		{"two-spheres", 2, 16.0 / 9.0, 20},
		{"two-perlin-spheres", 2, 16.0 / 9.0, 20},
		{"earth", 1, 16.0 / 9.0, 20},
		{"simple-light", 3, 16.0 / 9.0, 20},
		{"cornell-box", 8, 1.0, 40},
		{"cornell-smoke", 8, 1.0, 40},
		{"final", 11, 1.0, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScene(tt.name, Options{Seed: 42, EarthTexturePath: earth})
			if err != nil {
				t.Fatalf("NewScene(%q) failed: %v", tt.name, err)
			}
			if s.Camera == nil {
				t.Fatal("scene should have a camera")
			}
			if tt.objects > 0 && s.GetPrimitiveCount() != tt.objects {
				t.Errorf("expected %d objects, got %d", tt.objects, s.GetPrimitiveCount())
			}
			if s.CameraConfig.AspectRatio != tt.aspectRatio {
				t.Errorf("aspect ratio = %v, want %v", s.CameraConfig.AspectRatio, tt.aspectRatio)
			}
			if s.CameraConfig.VFov != tt.vfov {
				t.Errorf("vfov = %v, want %v", s.CameraConfig.VFov, tt.vfov)
			}
			if s.CameraConfig.Time0 != 0 || s.CameraConfig.Time1 != 1 {
				t.Errorf("shutter = [%v, %v], want [0, 1]", s.CameraConfig.Time0, s.CameraConfig.Time1)
			}
			if s.Background() != (core.Vec3{}) {
				t.Errorf("background = %v, want black", s.Background())
			}
			wantHeight := int(float64(s.SamplingConfig.Width) / tt.aspectRatio)
			if s.SamplingConfig.Height != wantHeight {
				t.Errorf("height = %d, want %d", s.SamplingConfig.Height, wantHeight)
			}

			if err := s.Preprocess(nil); err != nil {
				t.Fatalf("Preprocess failed: %v", err)
			}
			if s.BVH == nil {
				t.Fatal("BVH should be built after preprocessing")
			}
			if s.World() != geometry.Hittable(s.BVH) {
				t.Error("World should return the BVH after preprocessing")
			}
		})
	}
}

func TestNewSceneUnknown(t *testing.T) {
	_, err := NewScene("no-such-scene", Options{})
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("expected ErrUnknownScene, got %v", err)
	}
}

func TestEarthSceneRequiresTexture(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.jpg")
	_, err := NewScene("earth", Options{EarthTexturePath: missing})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, format)
}

func TestFinalSceneFallsBackWithoutTexture(t *testing.T) {
	logger := &recordingLogger{}
	missing := filepath.Join(t.TempDir(), "missing.jpg")
	s, err := NewScene("final", Options{EarthTexturePath: missing, Logger: logger})
	if err != nil {
		t.Fatalf("final scene should build without a texture: %v", err)
	}
	if s.GetPrimitiveCount() != 11 {
		t.Errorf("expected 11 objects, got %d", s.GetPrimitiveCount())
	}
	if len(logger.lines) == 0 {
		t.Error("expected a warning about the missing texture")
	}
}

func TestListScenesSorted(t *testing.T) {
	infos := ListScenes()
	if len(infos) != len(catalog) {
		t.Fatalf("expected %d scenes, got %d", len(catalog), len(infos))
	}
	if !sort.SliceIsSorted(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name }) {
		t.Error("scenes should be sorted by name")
	}
	for _, info := range infos {
		if info.DisplayName == "" || info.Description == "" {
			t.Errorf("scene %q is missing display name or description", info.Name)
		}
	}
}

func TestRandomSpheresScene(t *testing.T) {
	a := NewRandomSpheresScene(core.NewSeededSampler(7))
	b := NewRandomSpheresScene(core.NewSeededSampler(7))

	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Fatalf("same seed should give same layout: %d vs %d objects", a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}
	// Ground + at most 22x22 small spheres + 3 large spheres
	if n := a.GetPrimitiveCount(); n < 4 || n > 1+22*22+3 {
		t.Errorf("unexpected object count %d", n)
	}

	clearing := core.NewVec3(4, 0.2, 0)
	small := 0
	for _, obj := range a.Objects {
		var center core.Vec3
		switch s := obj.(type) {
		case *geometry.Sphere:
			if s.Radius != 0.2 {
				continue
			}
			center = s.Center
		case *geometry.MovingSphere:
			center = s.Center0
			rise := s.Center1.Y - s.Center0.Y
			if s.Center1.X != s.Center0.X || s.Center1.Z != s.Center0.Z || rise < 0 || rise > 0.5 {
				t.Errorf("moving sphere should only rise up to 0.5, got %v -> %v", s.Center0, s.Center1)
			}
		default:
			continue
		}
		small++
		if center.Subtract(clearing).Length() <= 0.9 {
			t.Errorf("small sphere at %v is inside the clearing", center)
		}
	}
	if small == 0 {
		t.Error("expected small spheres")
	}
}

func TestCornellCenterRayHitsBox(t *testing.T) {
	for _, s := range []*Scene{NewCornellBoxScene(), NewCornellSmokeScene()} {
		if err := s.Preprocess(nil); err != nil {
			t.Fatalf("Preprocess failed: %v", err)
		}
		sampler := core.NewSeededSampler(1)
		ray := s.Camera.GetRay(0.5, 0.5, sampler)
		hit, ok := s.World().Hit(ray, 0.001, math.Inf(1), sampler)
		if !ok {
			t.Fatal("center ray should hit the box interior")
		}
		if hit.Point.Z < -1 || hit.Point.Z > cornellBoxSize+1 {
			t.Errorf("hit point %v outside the box", hit.Point)
		}
	}
}

func TestCameraOverride(t *testing.T) {
	s, err := NewScene("cornell-box", Options{Camera: geometry.CameraConfig{Width: 100, VFov: 60}})
	if err != nil {
		t.Fatalf("NewScene failed: %v", err)
	}
	if s.SamplingConfig.Width != 100 || s.SamplingConfig.Height != 100 {
		t.Errorf("size = %dx%d, want 100x100", s.SamplingConfig.Width, s.SamplingConfig.Height)
	}
	if s.CameraConfig.VFov != 60 {
		t.Errorf("vfov = %v, want 60", s.CameraConfig.VFov)
	}
	if s.CameraConfig.Center != core.NewVec3(278, 278, -800) {
		t.Errorf("camera center should be kept, got %v", s.CameraConfig.Center)
	}
}

func TestWorldBeforePreprocess(t *testing.T) {
	s := NewTwoSpheresScene()
	sampler := core.NewSeededSampler(1)
	ray := core.NewRay(core.NewVec3(0, 30, 0), core.NewVec3(0, -1, 0))
	hit, ok := s.World().Hit(ray, 0.001, math.Inf(1), sampler)
	if !ok {
		t.Fatal("downward ray should hit the upper sphere")
	}
	if math.Abs(hit.Point.Y-20) > 1e-9 {
		t.Errorf("hit at y=%v, want 20", hit.Point.Y)
	}
}
