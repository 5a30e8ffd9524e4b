package renderer

import (
	"image"
	"time"

	"github.com/df07/go-progressive-raycaster/pkg/material"
)

// RenderStats contains statistics about a single traced frame
type RenderStats struct {
	Frame        int           // Frame number since the ray caster was created
	TotalPixels  int           // Number of pixels traced
	PrimaryRays  int           // Camera rays cast
	Bounces      int           // Surface hits that scattered a ray
	MaxStepCount int           // Largest ray-march step count seen on any hit
	Duration     time.Duration // Wall time spent tracing the frame
}

// AverageBounces returns the mean number of bounces per camera ray
func (s RenderStats) AverageBounces() float64 {
	if s.PrimaryRays == 0 {
		return 0
	}
	return float64(s.Bounces) / float64(s.PrimaryRays)
}

// recordHit accounts for one scattering hit
func (s *RenderStats) recordHit(hit *material.HitRecord) {
	s.Bounces++
	s.MaxStepCount = max(s.MaxStepCount, hit.StepCount)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			r := float64(c.R) / 255.0
			g := float64(c.G) / 255.0
			b := float64(c.B) / 255.0
			total += 0.2126*r + 0.7152*g + 0.0722*b
		}
	}
	return total / float64(pixels)
}
