package renderer

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/material"
	"github.com/df07/go-progressive-raycaster/pkg/scene"
)

const (
	// jitterRadius bounds the random offset added to each pixel coordinate
	jitterRadius = 0.99
	// Channel scales applied when converting averaged color to bytes.
	// Red and green/blue differ; the output depends on both values.
	redScale       = 255.99
	greenBlueScale = 255.9
)

var (
	cameraPosition  = core.NewVec3(0, 0, 0)
	cameraDirection = core.NewVec3(0, 0, -1)

	white    = core.NewVec3(1.0, 1.0, 1.0)
	skyColor = core.NewVec3(0.8, 0.6, 1.0)

	// diffuse shades every hit; materials attached by shapes are not consulted
	diffuse = material.NewLambertian(core.NewVec3(0.7, 0.6, 0.3))
)

// RayCasterConfig contains shading configuration
type RayCasterConfig struct {
	MaxBounces int     // Maximum scattering events per camera ray
	TMin       float64 // Lower bound of the intersection interval
	TMax       float64 // Upper bound of the intersection interval
}

// DefaultRayCasterConfig returns the reference shading values
func DefaultRayCasterConfig() RayCasterConfig {
	return RayCasterConfig{
		MaxBounces: 10,
		TMin:       1e-6,
		TMax:       100.0,
	}
}

// RayCaster traces full frames and accumulates them per pixel.
// It is not safe for concurrent use; callers serialize Trace, FillBuffer and Clear.
type RayCaster struct {
	scene         *scene.Scene
	width, height int
	config        RayCasterConfig
	sampler       core.Sampler
	logger        core.Logger
	orthogonal    bool

	image        []core.Vec3 // Running per-pixel sum of frame colors, indexed y*width+x
	frameCount   int         // Completed frames; not reset by Clear
	attenuations []core.Vec3 // Scratch space for the bounce loop
}

// NewRayCaster creates a ray caster for the scene. A nil sampler is replaced
// with one seeded from the current time.
func NewRayCaster(s *scene.Scene, width, height int, sampler core.Sampler) *RayCaster {
	if sampler == nil {
		sampler = core.NewRandomSampler(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	config := DefaultRayCasterConfig()
	return &RayCaster{
		scene:        s,
		width:        width,
		height:       height,
		config:       config,
		sampler:      sampler,
		attenuations: make([]core.Vec3, 0, config.MaxBounces),
	}
}

// SetConfig updates the shading configuration
func (rc *RayCaster) SetConfig(config RayCasterConfig) {
	rc.config = config
	rc.attenuations = make([]core.Vec3, 0, config.MaxBounces)
}

// Config returns the shading configuration
func (rc *RayCaster) Config() RayCasterConfig { return rc.config }

// SetLogger sets the logger used to report traced frames; nil disables logging
func (rc *RayCaster) SetLogger(logger core.Logger) {
	rc.logger = logger
}

// Width returns the image width in pixels
func (rc *RayCaster) Width() int { return rc.width }

// Height returns the image height in pixels
func (rc *RayCaster) Height() int { return rc.height }

// Scene returns the scene being rendered
func (rc *RayCaster) Scene() *scene.Scene { return rc.scene }

// FrameCount returns the number of frames traced so far
func (rc *RayCaster) FrameCount() int { return rc.frameCount }

// Projection returns the active projection mode
func (rc *RayCaster) Projection() Projection {
	if rc.orthogonal {
		return Orthogonal
	}
	return Perspective
}

// SetOrthogonal switches the projection mode without touching accumulated samples
func (rc *RayCaster) SetOrthogonal(orthogonal bool) {
	rc.orthogonal = orthogonal
}

// ToggleProjection flips the projection mode and clears the accumulation.
// The frame count is kept, so the next few averages are scaled down.
func (rc *RayCaster) ToggleProjection() {
	rc.orthogonal = !rc.orthogonal
	rc.Clear()
}

// Clear empties the accumulation. The frame count is not reset.
func (rc *RayCaster) Clear() {
	rc.image = rc.image[:0]
}

// Camera returns the camera used for every frame
func (rc *RayCaster) Camera() *Camera {
	return NewCamera(cameraPosition, cameraDirection, float64(rc.width)/float64(rc.height))
}

// Trace renders one jittered sample per pixel and adds it to the accumulation
func (rc *RayCaster) Trace() RenderStats {
	startTime := time.Now()
	camera := rc.Camera()
	projection := rc.Projection()
	rc.frameCount++

	stats := RenderStats{
		Frame:       rc.frameCount,
		TotalPixels: rc.width * rc.height,
	}

	for y := 0; y < rc.height; y++ {
		for x := 0; x < rc.width; x++ {
			jitterU := core.SampleRange(rc.sampler, -jitterRadius, jitterRadius)
			jitterV := core.SampleRange(rc.sampler, -jitterRadius, jitterRadius)
			u, v := rc.pixelUV(x, y, jitterU, jitterV)

			ray := camera.GetRay(u, v, projection)
			stats.PrimaryRays++
			c := rc.rayColor(ray, &stats).Sqrt()

			offset := y*rc.width + x
			if len(rc.image) <= offset {
				rc.image = append(rc.image, c)
			} else {
				rc.image[offset] = rc.image[offset].Add(c)
			}
		}
	}

	stats.Duration = time.Since(startTime)
	if rc.logger != nil {
		rc.logger.Printf("Frame %d (%s) traced in %v, %.2f bounces/ray\n",
			stats.Frame, projection, stats.Duration, stats.AverageBounces())
	}
	return stats
}

// pixelUV maps a pixel and its jitter offsets to viewport coordinates; v grows upwards
func (rc *RayCaster) pixelUV(x, y int, jitterU, jitterV float64) (float64, float64) {
	u := (float64(x) + jitterU) / float64(rc.width)
	v := (float64(rc.height) - (float64(y) + jitterV)) / float64(rc.height)
	return u, v
}

// CenterRay returns the unjittered camera ray through a pixel
func (rc *RayCaster) CenterRay(x, y int) core.Ray {
	u, v := rc.pixelUV(x, y, 0, 0)
	return rc.Camera().GetRay(u, v, rc.Projection())
}

// rayColor follows the ray through at most MaxBounces diffuse scatters and
// returns the background color it finally escapes to, attenuated by every surface hit
func (rc *RayCaster) rayColor(ray core.Ray, stats *RenderStats) core.Vec3 {
	rc.attenuations = rc.attenuations[:0]

	for bounces := rc.config.MaxBounces; bounces > 0; bounces-- {
		hit, isHit := rc.scene.Hit(ray, rc.config.TMin, rc.config.TMax)
		if !isHit {
			break
		}
		stats.recordHit(hit)

		scatter := diffuse.Scatter(ray, *hit, rc.sampler)
		rc.attenuations = append(rc.attenuations, scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Innermost bounce first, matching the nested product of a recursive shader
	color := backgroundGradient(ray)
	for i := len(rc.attenuations) - 1; i >= 0; i-- {
		color = rc.attenuations[i].MultiplyVec(color)
	}
	return color
}

// backgroundGradient blends white into the sky color along the ray's Y direction
func backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5*unitDirection.Y + 1.0
	return white.Multiply(1.0 - t).Add(skyColor.Multiply(t))
}

// PixelSum returns the accumulated color sum for a pixel, or zero if the
// pixel has not been traced since the last Clear
func (rc *RayCaster) PixelSum(x, y int) core.Vec3 {
	offset := y*rc.width + x
	if x < 0 || y < 0 || x >= rc.width || offset >= len(rc.image) {
		return core.Vec3{}
	}
	return rc.image[offset]
}

// FillBuffer writes the accumulated average as packed RGB24, row-major from the
// top row. Only accumulated pixels are written.
func (rc *RayCaster) FillBuffer(buffer []byte) error {
	if len(buffer) < len(rc.image)*3 {
		return fmt.Errorf("buffer too small: need %d bytes, got %d", len(rc.image)*3, len(buffer))
	}

	frames := float64(rc.frameCount)
	for i, sum := range rc.image {
		average := sum.Divide(frames)
		buffer[i*3] = toChannel(average.X, redScale)
		buffer[i*3+1] = toChannel(average.Y, greenBlueScale)
		buffer[i*3+2] = toChannel(average.Z, greenBlueScale)
	}
	return nil
}

// Snapshot returns the current accumulation as an RGBA image
func (rc *RayCaster) Snapshot() *image.RGBA {
	buffer := make([]byte, rc.width*rc.height*3)
	// Cannot fail: the buffer covers every pixel
	_ = rc.FillBuffer(buffer)

	img := image.NewRGBA(image.Rect(0, 0, rc.width, rc.height))
	for i := 0; i < rc.width*rc.height; i++ {
		img.Pix[i*4] = buffer[i*3]
		img.Pix[i*4+1] = buffer[i*3+1]
		img.Pix[i*4+2] = buffer[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}

// toChannel scales a color component and truncates it to a byte, saturating
// out-of-range values and mapping NaN to zero
func toChannel(value, scale float64) uint8 {
	scaled := value * scale
	switch {
	case math.IsNaN(scaled) || scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	default:
		return uint8(scaled)
	}
}
