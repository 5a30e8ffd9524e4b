package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/renderer"
	"github.com/df07/go-progressive-raycaster/pkg/scene"
	"github.com/df07/go-progressive-raycaster/viewer/session"
	"github.com/df07/go-progressive-raycaster/viewer/window"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene to render")
	width := flag.Int("width", 200, "Image width in pixels")
	height := flag.Int("height", 100, "Image height in pixels")
	scale := flag.Int("scale", 4, "Window pixels per image pixel")
	seed := flag.Int64("seed", 0, "Random seed; 0 seeds from the clock")
	savePath := flag.String("save", "image.png", "File written when S is pressed")
	flag.Parse()

	selectedScene, err := scene.New(*sceneType)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	var sampler core.Sampler
	if *seed != 0 {
		sampler = core.NewSeededSampler(*seed)
	}

	logger := renderer.NewDefaultLogger()
	rc := renderer.NewRayCaster(selectedScene, *width, *height, sampler)

	log.Printf("Progressive Raycaster Viewer")
	log.Printf("O: toggle projection, C: clear, S: save %s, Esc: quit", *savePath)

	if err := window.Run(session.New(rc, *savePath, logger), *scale, logger); err != nil {
		log.Printf("Error running viewer: %v", err)
		os.Exit(1)
	}
}
