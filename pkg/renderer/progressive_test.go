package renderer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/scene"
)

func TestRenderProgressive_FixedFrames(t *testing.T) {
	rc := NewRayCaster(scene.NewDefaultScene(), 8, 4, core.NewSeededSampler(42))

	frameChan, errChan := RenderProgressive(context.Background(), rc, 3)

	var results []FrameResult
	for result := range frameChan {
		results = append(results, result)
	}
	if err := <-errChan; err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(results))
	}
	for i, result := range results {
		if result.Frame != i+1 {
			t.Errorf("Result %d: expected frame %d, got %d", i, i+1, result.Frame)
		}
		if result.IsLast != (i == 2) {
			t.Errorf("Result %d: unexpected IsLast %v", i, result.IsLast)
		}
		if result.Image == nil || result.Image.Bounds().Dx() != 8 || result.Image.Bounds().Dy() != 4 {
			t.Errorf("Result %d: unexpected image %v", i, result.Image)
		}
		if result.Stats.PrimaryRays != 32 {
			t.Errorf("Result %d: expected 32 primary rays, got %d", i, result.Stats.PrimaryRays)
		}
	}
	if rc.FrameCount() != 3 {
		t.Errorf("Expected ray caster frame count 3, got %d", rc.FrameCount())
	}
}

func TestRenderProgressive_CancelledBeforeStart(t *testing.T) {
	rc := NewRayCaster(scene.NewDefaultScene(), 4, 4, core.NewSeededSampler(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frameChan, errChan := RenderProgressive(ctx, rc, 5)

	count := 0
	for range frameChan {
		count++
	}
	if count != 0 {
		t.Errorf("Expected no frames, got %d", count)
	}
	if err := <-errChan; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if rc.FrameCount() != 0 {
		t.Errorf("Expected no traced frames, got %d", rc.FrameCount())
	}
}

func TestRenderProgressive_UnboundedStopsOnCancel(t *testing.T) {
	rc := NewRayCaster(scene.NewDefaultScene(), 4, 2, core.NewSeededSampler(1))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	frameChan, errChan := RenderProgressive(ctx, rc, 0)

	received := 0
	for result := range frameChan {
		if result.IsLast {
			t.Error("Unbounded render should never report a last frame")
		}
		received++
		if received == 4 {
			cancel()
		}
	}

	if received < 4 {
		t.Errorf("Expected at least 4 frames, got %d", received)
	}
	if err := <-errChan; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
