package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/renderer"
	"github.com/df07/go-progressive-raycaster/pkg/scene"
)

// Config holds the command line options for a render
type Config struct {
	SceneType  string
	Width      int
	Height     int
	Frames     int
	Orthogonal bool
	Seed       int64
	OutputDir  string
}

func main() {
	config := parseFlags()
	if config == nil {
		return
	}

	fmt.Println("Starting Progressive Raycaster...")

	filename, err := run(*config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// parseFlags reads the command line. It returns nil when only help was requested.
func parseFlags() *Config {
	config := &Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene type: "+sceneIDs())
	flag.IntVar(&config.Width, "width", 200, "Image width in pixels")
	flag.IntVar(&config.Height, "height", 100, "Image height in pixels")
	flag.IntVar(&config.Frames, "frames", 20, "Number of progressive frames to accumulate")
	flag.BoolVar(&config.Orthogonal, "orthogonal", false, "Use orthogonal instead of perspective projection")
	flag.Int64Var(&config.Seed, "seed", 0, "Random seed; 0 seeds from the clock")
	flag.StringVar(&config.OutputDir, "output", "output", "Directory for rendered images")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Progressive Raycaster")
		fmt.Println("Usage: raycaster [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.List() {
			fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene_type>/render_<timestamp>.png")
		return nil
	}
	return config
}

func sceneIDs() string {
	var ids []string
	for _, info := range scene.List() {
		ids = append(ids, "'"+info.ID+"'")
	}
	return strings.Join(ids, " or ")
}

// createScene resolves a scene type to a scene
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.New(sceneType)
}

// createSampler returns a seeded sampler, or nil to let the ray caster seed from the clock
func createSampler(seed int64) core.Sampler {
	if seed == 0 {
		return nil
	}
	return core.NewSeededSampler(seed)
}

// run traces the configured number of frames and saves the accumulated image
func run(config Config, logger core.Logger) (string, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return "", fmt.Errorf("invalid image size %dx%d", config.Width, config.Height)
	}
	if config.Frames <= 0 {
		return "", fmt.Errorf("frames must be positive, got %d", config.Frames)
	}

	selectedScene, err := createScene(config.SceneType)
	if err != nil {
		return "", err
	}
	logger.Printf("Using %s scene (%d shapes), %dx%d\n",
		config.SceneType, len(selectedScene.Shapes), config.Width, config.Height)

	rc := renderer.NewRayCaster(selectedScene, config.Width, config.Height, createSampler(config.Seed))
	rc.SetLogger(logger)
	rc.SetOrthogonal(config.Orthogonal)

	startTime := time.Now()
	for i := 0; i < config.Frames; i++ {
		rc.Trace()
	}
	logger.Printf("Render completed in %v (%d frames)\n", time.Since(startTime), rc.FrameCount())

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(config.OutputDir, config.SceneType, fmt.Sprintf("render_%s.png", timestamp))
	if err := renderer.SavePNG(filename, rc.Snapshot()); err != nil {
		return "", fmt.Errorf("saving render: %w", err)
	}
	return filename, nil
}
