package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneName    string
	Width        int   // 0 keeps the scene's width
	Samples      int   // 0 keeps the scene's samples per pixel
	MaxDepth     int   // 0 keeps the scene's max depth
	Passes       int   // Progressive passes
	Workers      int   // 0 uses all CPUs
	Seed         int64 // Seed for scene layout and sample streams
	OutputRoot   string
	EarthTexture string
	List         bool
	Help         bool
}

func main() {
	if err := run(os.Args[1:], renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (Config, *flag.FlagSet, error) {
	var config Config
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.StringVar(&config.SceneName, "scene", "random-spheres", "Scene to render (see -list)")
	fs.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.MaxDepth, "depth", 0, "Maximum bounces per path (0 = scene default)")
	fs.IntVar(&config.Passes, "passes", 5, "Number of progressive passes")
	fs.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.Int64Var(&config.Seed, "seed", 42, "Random seed for scene layout and sampling")
	fs.StringVar(&config.OutputRoot, "out", "output", "Output directory")
	fs.StringVar(&config.EarthTexture, "earth", scene.DefaultEarthTexturePath, "Earth texture image (PNG or JPEG)")
	fs.BoolVar(&config.List, "list", false, "List available scenes")
	fs.BoolVar(&config.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return Config{}, fs, err
	}
	return config, fs, nil
}

func run(args []string, logger core.Logger) error {
	config, fs, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if config.Help {
		logger.Printf("Monte Carlo Path Tracer\n")
		logger.Printf("Usage: pathtracer [options]\n\n")
		logger.Printf("Options:\n")
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
		logger.Printf("\nOutput will be saved to <out>/<scene>/render_<timestamp>.png\n")
		return nil
	}

	if config.List {
		logger.Printf("Available scenes:\n")
		for _, info := range scene.ListScenes() {
			logger.Printf("  %-20s %s\n", info.Name, info.Description)
		}
		return nil
	}

	logger.Printf("Starting Path Tracer...\n")

	sceneObj, err := createScene(config, logger)
	if err != nil {
		return err
	}
	if err := sceneObj.Preprocess(logger); err != nil {
		return err
	}

	outputDir, err := createOutputDir(config.OutputRoot, config.SceneName)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, err := render(ctx, sceneObj, config, logger)
	if err != nil && img == nil {
		return err
	}
	if err != nil {
		logger.Printf("Render interrupted (%v), saving last completed pass\n", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(filename, img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the named scene and applies command line overrides
func createScene(config Config, logger core.Logger) (*scene.Scene, error) {
	if config.SceneName == "" {
		return nil, fmt.Errorf("%w: scene name is empty", scene.ErrUnknownScene)
	}

	sceneObj, err := scene.NewScene(config.SceneName, scene.Options{
		Seed:             config.Seed,
		EarthTexturePath: config.EarthTexture,
		Camera:           geometry.CameraConfig{Width: config.Width},
		Logger:           logger,
	})
	if err != nil {
		return nil, err
	}

	if config.Samples > 0 {
		sceneObj.SamplingConfig.SamplesPerPixel = config.Samples
	}
	if config.MaxDepth > 0 {
		sceneObj.SamplingConfig.MaxDepth = config.MaxDepth
	}

	logger.Printf("Using %s scene (%dx%d, %d samples/pixel, max depth %d, %d objects)\n",
		config.SceneName, sceneObj.SamplingConfig.Width, sceneObj.SamplingConfig.Height,
		sceneObj.SamplingConfig.SamplesPerPixel, sceneObj.SamplingConfig.MaxDepth, sceneObj.GetPrimitiveCount())

	return sceneObj, nil
}

// render runs the progressive renderer and returns the last completed pass.
// On cancellation the image of the last finished pass is returned alongside the error.
func render(ctx context.Context, sceneObj *scene.Scene, config Config, logger core.Logger) (*image.RGBA, error) {
	integratorConfig := integrator.DefaultConfig()
	integratorConfig.MaxDepth = sceneObj.SamplingConfig.MaxDepth

	progressiveConfig := renderer.DefaultProgressiveConfig()
	progressiveConfig.MaxSamplesPerPixel = sceneObj.SamplingConfig.SamplesPerPixel
	progressiveConfig.MaxPasses = max(1, config.Passes)
	progressiveConfig.NumWorkers = config.Workers
	progressiveConfig.Seed = config.Seed

	raytracer := renderer.NewProgressiveRaytracer(
		sceneObj,
		integrator.NewPathTracingIntegrator(integratorConfig),
		sceneObj.SamplingConfig.Width,
		sceneObj.SamplingConfig.Height,
		progressiveConfig,
		logger,
	)

	passChan, _, errChan := raytracer.RenderProgressive(ctx, renderer.RenderOptions{})

	var last *image.RGBA
	for pass := range passChan {
		last = pass.Image
		logger.Printf("Samples per pixel: %.1f (range %d - %d), mean luminance %.4f (std-dev %.4f)\n",
			pass.Stats.AverageSamples, pass.Stats.MinSamples, pass.Stats.MaxSamplesUsed,
			pass.Stats.MeanLuminance, pass.Stats.LuminanceStdDev)
	}

	if err := <-errChan; err != nil {
		return last, err
	}
	if last == nil {
		return nil, errors.New("renderer produced no passes")
	}
	return last, nil
}

// createOutputDir creates <root>/<scene> and returns its path
func createOutputDir(root, sceneName string) (string, error) {
	outputDir := filepath.Join(root, filepath.Base(sceneName))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return outputDir, nil
}

func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return file.Close()
}
