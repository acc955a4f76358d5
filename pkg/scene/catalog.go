package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// DefaultEarthTexturePath is where the earth texture is looked up when no path is given
const DefaultEarthTexturePath = "earthmap.jpg"

// ErrUnknownScene is returned by NewScene for names not in the catalog
var ErrUnknownScene = errors.New("unknown scene")

// Options controls how a catalog scene is built
type Options struct {
	Seed             int64                 // Seed for scene layout randomness (sphere placement, noise tables)
	EarthTexturePath string                // Image used by scenes with a textured globe
	Camera           geometry.CameraConfig // Non-zero fields override the scene's camera
	Logger           core.Logger
}

// SceneInfo describes a catalog entry
type SceneInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type sceneBuilder func(opts Options, sampler core.Sampler) (*Scene, error)

type catalogEntry struct {
	info  SceneInfo
	build sceneBuilder
}

var catalog = map[string]catalogEntry{
	"random-spheres": {
		info: SceneInfo{"random-spheres", "Random Spheres", "Bouncing diffuse, metal and glass spheres on a glowing checkered ground"},
		build: func(opts Options, sampler core.Sampler) (*Scene, error) {
			return NewRandomSpheresScene(sampler, opts.Camera), nil
		},
	},
	"two-spheres": {
		info: SceneInfo{"two-spheres", "Two Spheres", "Two checkered spheres, the upper one emissive"},
		build: func(opts Options, sampler core.Sampler) (*Scene, error) {
			return NewTwoSpheresScene(opts.Camera), nil
		},
	},
	"two-perlin-spheres": {
		info: SceneInfo{"two-perlin-spheres", "Two Perlin Spheres", "Marble sphere on glowing marble ground"},
		build: func(opts Options, sampler core.Sampler) (*Scene, error) {
			return NewTwoPerlinSpheresScene(sampler, opts.Camera), nil
		},
	},
	"earth": {
		info: SceneInfo{"earth", "Earth", "Self-lit globe with an image texture"},
		build: func(opts Options, sampler core.Sampler) (*Scene, error) {
			texture, err := loaders.LoadImageTexture(opts.EarthTexturePath)
			if err != nil {
				return nil, fmt.Errorf("earth texture: %w", err)
			}
			return NewEarthScene(texture, opts.Camera), nil
		},
	},
	"simple-light": {
		info: SceneInfo{"simple-light", "Simple Light", "Marble spheres lit by a rectangular area light"},
		build: func(opts Options, sampler core.Sampler) (*Scene, error) {
			return NewSimpleLightScene(sampler, opts.Camera), nil
		},
	},
	"cornell-box": {
		info: SceneInfo{"cornell-box", "Cornell Box", "Cornell box with two hazy blocks"},
		build: func(opts Options, sampler core.Sampler) (*Scene, error) {
			return NewCornellBoxScene(opts.Camera), nil
		},
	},
	"cornell-smoke": {
		info: SceneInfo{"cornell-smoke", "Cornell Smoke", "Cornell box with black and white smoke blocks"},
		build: func(opts Options, sampler core.Sampler) (*Scene, error) {
			return NewCornellSmokeScene(opts.Camera), nil
		},
	},
	"final": {
		info: SceneInfo{"final", "Final Scene", "Every feature at once: boxes, motion blur, glass, metal, fog, textures and instancing"},
		build: func(opts Options, sampler core.Sampler) (*Scene, error) {
			var earth material.ColorSource
			texture, err := loaders.LoadImageTexture(opts.EarthTexturePath)
			if err != nil {
				// The showcase still renders without the globe texture
				opts.Logger.Printf("Warning: %v, using placeholder texture\n", err)
				earth = material.NewImageTexture(0, 0, nil)
			} else {
				earth = texture
			}
			return NewFinalScene(sampler, earth, opts.Camera), nil
		},
	},
}

// NewScene builds the named catalog scene
func NewScene(name string, opts Options) (*Scene, error) {
	entry, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if opts.Logger == nil {
		opts.Logger = core.NopLogger{}
	}
	if opts.EarthTexturePath == "" {
		opts.EarthTexturePath = DefaultEarthTexturePath
	}

	return entry.build(opts, core.NewSeededSampler(opts.Seed))
}

// ListScenes returns every catalog scene, sorted by name
func ListScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(catalog))
	for _, entry := range catalog {
		infos = append(infos, entry.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
