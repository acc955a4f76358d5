package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Config controls path construction
type Config struct {
	MaxDepth int     // Maximum number of scattering events per path
	TMin     float64 // Minimum hit distance, avoids self-intersection ("shadow acne")
}

// DefaultConfig returns the configuration used by the demo scenes
func DefaultConfig() Config {
	return Config{
		MaxDepth: 50,
		TMin:     0.001,
	}
}

// Termination describes why a path stopped
type Termination int

const (
	// Escaped means the path left the scene and picked up the background
	Escaped Termination = iota
	// DepthExhausted means the path reached the scattering limit
	DepthExhausted
	// Absorbed means the path ended on a surface that does not scatter, such as a light
	Absorbed
)

func (t Termination) String() string {
	switch t {
	case Escaped:
		return "escaped"
	case DepthExhausted:
		return "depth-exhausted"
	case Absorbed:
		return "absorbed"
	default:
		return "unknown"
	}
}

// PathResult is a single path sample with its bookkeeping
type PathResult struct {
	Color       core.Vec3
	Bounces     int // Number of scattering events along the path
	Termination Termination
}

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{config: config}
}

// Config returns the integrator configuration
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	return pt.TracePath(ray, scene, sampler).Color
}

// TracePath follows one path through the scene, accumulating attenuation and emission
// in a running product instead of recursing per bounce.
func (pt *PathTracingIntegrator) TracePath(ray core.Ray, scene Scene, sampler core.Sampler) PathResult {
	if pt.config.MaxDepth <= 0 {
		return PathResult{Termination: DepthExhausted}
	}

	world := scene.World()
	accumulated := core.NewVec3(1, 1, 1)
	depth := pt.config.MaxDepth
	bounces := 0

	for {
		hit, isHit := world.Hit(ray, pt.config.TMin, math.Inf(1), sampler)
		if !isHit {
			return PathResult{
				Color:       accumulated.MultiplyVec(scene.Background()),
				Bounces:     bounces,
				Termination: Escaped,
			}
		}

		emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return PathResult{
				Color:       accumulated.MultiplyVec(emitted),
				Bounces:     bounces,
				Termination: Absorbed,
			}
		}

		accumulated = accumulated.MultiplyVec(scatter.Attenuation).Add(emitted)
		ray = scatter.Scattered
		bounces++
		depth--

		if depth == 0 {
			return PathResult{
				Color:       accumulated,
				Bounces:     bounces,
				Termination: DepthExhausted,
			}
		}
	}
}
