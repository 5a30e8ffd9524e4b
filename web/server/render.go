package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/renderer"
)

// ProgressUpdate represents a single progressive update sent via SSE
type ProgressUpdate struct {
	FrameNumber int    `json:"frameNumber"`
	TotalFrames int    `json:"totalFrames"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	Stats       Stats  `json:"stats"`
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Stats represents frame statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	PrimaryRays    int     `json:"primaryRays"`
	Bounces        int     `json:"bounces"`
	AverageBounces float64 `json:"averageBounces"`
	MaxStepCount   int     `json:"maxStepCount"`
	FrameMs        int64   `json:"frameMs"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender handles progressive rendering with one SSE event per frame
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Single writer goroutine; the handler waits for it before returning
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()

	// Console streaming stops before the event channel is closed
	consoleCtx, stopConsole := context.WithCancel(ctx)
	consoleDone := make(chan struct{})
	consoleChan, webLogger := s.setupConsoleLogging()
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(consoleCtx, consoleChan, sseEventChan)
	}()

	var consoleOnce sync.Once
	finishConsole := func() {
		consoleOnce.Do(func() {
			stopConsole()
			<-consoleDone
		})
	}
	defer func() {
		finishConsole()
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj := s.createScene(req.Scene)
	if sceneObj == nil {
		s.handleError(ctx, sseEventChan, "Unknown scene: "+req.Scene)
		return
	}

	var sampler core.Sampler
	if req.Seed != 0 {
		sampler = core.NewSeededSampler(int64(req.Seed))
	}
	rc := renderer.NewRayCaster(sceneObj, req.Width, req.Height, sampler)
	rc.SetLogger(webLogger)
	rc.SetOrthogonal(req.Orthogonal)
	webLogger.Printf("Rendering %s scene at %dx%d, %d frames (%s)\n",
		req.Scene, req.Width, req.Height, req.Frames, rc.Projection())

	startTime := time.Now()
	frameChan, errChan := renderer.RenderProgressive(ctx, rc, req.Frames)

	for result := range frameChan {
		s.handleFrameComplete(ctx, sseEventChan, result, req, startTime)
	}
	if err := <-errChan; err != nil {
		// Client disconnected
		return
	}

	// Console output precedes the completion event
	finishConsole()
	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: "Rendering completed"}:
	case <-ctx.Done():
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents writes every event from the channel until it is closed.
// After the client disconnects, remaining events are drained without writing.
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	for event := range sseEventChan {
		if ctx.Err() != nil {
			continue
		}

		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			continue
		}
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards console messages as SSE events until ctx is done
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for {
		select {
		case consoleMsg := <-consoleChan:
			data, err := json.Marshal(consoleMsg)
			if err != nil {
				log.Printf("Error marshaling console message: %v", err)
				continue
			}

			select {
			case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
			default:
				// Channel full, skip message to avoid blocking
			}

		case <-ctx.Done():
			// Flush whatever was logged before the render finished
			for {
				select {
				case consoleMsg := <-consoleChan:
					if data, err := json.Marshal(consoleMsg); err == nil {
						select {
						case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
						default:
						}
					}
				default:
					return
				}
			}
		}
	}
}

// handleFrameComplete encodes the accumulated image and sends a progress event
func (s *Server) handleFrameComplete(ctx context.Context, sseEventChan chan<- SSEEvent, result renderer.FrameResult, req *RenderRequest, startTime time.Time) {
	// Check if client is still connected
	select {
	case <-ctx.Done():
		return
	default:
	}

	imageData, err := s.imageToBase64PNG(result.Image)
	if err != nil {
		log.Printf("Error encoding frame %d: %v", result.Frame, err)
		return
	}

	update := ProgressUpdate{
		FrameNumber: result.Frame,
		TotalFrames: req.Frames,
		ImageData:   imageData,
		Stats: Stats{
			TotalPixels:    result.Stats.TotalPixels,
			PrimaryRays:    result.Stats.PrimaryRays,
			Bounces:        result.Stats.Bounces,
			AverageBounces: result.Stats.AverageBounces(),
			MaxStepCount:   result.Stats.MaxStepCount,
			FrameMs:        result.Stats.Duration.Milliseconds(),
		},
		IsComplete: result.IsLast,
		ElapsedMs:  time.Since(startTime).Milliseconds(),
	}

	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Error marshaling progress update: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "progress", Data: string(data)}:
	case <-ctx.Done():
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	var err error
	if req.Frames, err = parseIntParam(r.URL.Query(), "frames", 20, 1, 10000); err != nil {
		return nil, err
	}
	if req.Seed, err = parseIntParam(r.URL.Query(), "seed", 0, 0, 1<<31-1); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Frames > 100 {
		log.Printf("Render warning: Large image with many frames may render slowly")
	}

	return req, nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
