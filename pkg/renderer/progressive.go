package renderer

import (
	"context"
	"image"
)

// FrameResult contains the accumulated image after a traced frame
type FrameResult struct {
	Frame  int         // Frame number reported by the ray caster
	Image  *image.RGBA // Accumulated average after this frame
	Stats  RenderStats // Statistics for this frame
	IsLast bool        // Whether this is the final frame of the run
}

// RenderProgressive traces frames in a goroutine and delivers the accumulated
// image after each one. A frames value of zero or less keeps tracing until ctx
// is cancelled. Cancellation is only observed between frames; a frame always
// runs to completion. The ray caster must not be used elsewhere until the
// frame channel is closed.
func RenderProgressive(ctx context.Context, rc *RayCaster, frames int) (<-chan FrameResult, <-chan error) {
	frameChan := make(chan FrameResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(frameChan)
		defer close(errChan)

		for frame := 1; frames <= 0 || frame <= frames; frame++ {
			// Check if client disconnected before starting this frame
			select {
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			default:
			}

			stats := rc.Trace()
			result := FrameResult{
				Frame:  stats.Frame,
				Image:  rc.Snapshot(),
				Stats:  stats,
				IsLast: frames > 0 && frame == frames,
			}

			select {
			case frameChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return frameChan, errChan
}
