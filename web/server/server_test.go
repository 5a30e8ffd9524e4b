package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/df07/go-progressive-raycaster/pkg/scene"
)

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := serve(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %s", rec.Body.String())
	}
}

func TestHandleScenes(t *testing.T) {
	rec := serve(t, "/api/scenes")

	var infos []scene.SceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("Failed to decode scenes: %v", err)
	}
	if len(infos) != len(scene.List()) {
		t.Fatalf("Expected %d scenes, got %d", len(scene.List()), len(infos))
	}
	if infos[0].ID != "default" {
		t.Errorf("Expected default scene first, got %q", infos[0].ID)
	}
}

func TestHandleRender_StreamsFrames(t *testing.T) {
	rec := serve(t, "/api/render?scene=default&width=16&height=10&frames=3&seed=7")

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected SSE content type, got %q", ct)
	}

	body := rec.Body.String()
	if got := strings.Count(body, "event: progress\n"); got != 3 {
		t.Errorf("Expected 3 progress events, got %d", got)
	}
	if !strings.Contains(body, "event: console\n") {
		t.Error("Expected console events")
	}
	if !strings.HasSuffix(body, "event: complete\ndata: Rendering completed\n\n") {
		t.Errorf("Expected stream to end with completion, got tail %q", body[max(0, len(body)-80):])
	}

	// Decode the last progress update
	var last ProgressUpdate
	for _, block := range strings.Split(body, "\n\n") {
		if strings.HasPrefix(block, "event: progress\ndata: ") {
			if err := json.Unmarshal([]byte(strings.TrimPrefix(block, "event: progress\ndata: ")), &last); err != nil {
				t.Fatalf("Failed to decode progress update: %v", err)
			}
		}
	}
	if last.FrameNumber != 3 || last.TotalFrames != 3 || !last.IsComplete {
		t.Errorf("Unexpected final update %+v", last)
	}
	if last.ImageData == "" || last.Stats.TotalPixels != 160 {
		t.Errorf("Expected image data for 160 pixels, got %d pixels", last.Stats.TotalPixels)
	}
}

func TestHandleRender_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"unknown scene", "scene=cornell", "Unknown scene: cornell"},
		{"width too small", "width=1", "Invalid request"},
		{"bad frames", "frames=abc", "Invalid request"},
		{"bad orthogonal", "orthogonal=maybe", "Invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := serve(t, "/api/render?"+tt.query).Body.String()
			if !strings.HasPrefix(body, "event: error\ndata: "+tt.want) {
				t.Errorf("Expected error event %q, got %q", tt.want, body)
			}
			if strings.Contains(body, "event: progress") {
				t.Error("Expected no frames on error")
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	tests := []struct {
		name         string
		params       url.Values
		hit          bool
		geometryType string
		materialType string
		distance     float64
	}{
		{
			name:         "metal sphere",
			params:       url.Values{"x": {"150"}, "y": {"50"}},
			hit:          true,
			geometryType: "sphere",
			materialType: "metal",
			distance:     math.Sqrt(0.5),
		},
		{
			name:         "ray-marched sphere",
			params:       url.Values{"x": {"50"}, "y": {"50"}},
			hit:          true,
			geometryType: "step_sphere",
			materialType: "none",
			distance:     math.Sqrt(0.5),
		},
		{
			name:         "orthogonal through sphere centre",
			params:       url.Values{"x": {"125"}, "y": {"50"}, "orthogonal": {"true"}},
			hit:          true,
			geometryType: "sphere",
			materialType: "metal",
			distance:     0.5,
		},
		{
			name:   "sky",
			params: url.Values{"x": {"100"}, "y": {"0"}},
			hit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Set("scene", "default")
			tt.params.Set("width", "200")
			tt.params.Set("height", "100")
			rec := serve(t, "/api/inspect?"+tt.params.Encode())
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
			}

			var response InspectResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if response.Hit != tt.hit {
				t.Fatalf("Expected hit=%v, got %+v", tt.hit, response)
			}
			if !tt.hit {
				return
			}
			if response.GeometryType != tt.geometryType || response.MaterialType != tt.materialType {
				t.Errorf("Expected %s/%s, got %s/%s", tt.geometryType, tt.materialType,
					response.GeometryType, response.MaterialType)
			}
			if math.Abs(response.Distance-tt.distance) > 1e-6 {
				t.Errorf("Expected distance %f, got %f", tt.distance, response.Distance)
			}
			if response.StepCount < 1 {
				t.Errorf("Expected positive step count, got %d", response.StepCount)
			}
		})
	}
}

func TestHandleInspect_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing x", "y=1"},
		{"bad y", "x=1&y=top"},
		{"out of bounds", "x=500&y=1"},
		{"unknown scene", "scene=nope&x=1&y=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, "/api/inspect?"+tt.query)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestParseIntParam(t *testing.T) {
	values := url.Values{"width": {"300"}, "bad": {"x"}, "big": {"99999"}}

	if v, err := parseIntParam(values, "width", 1, 1, 1000); err != nil || v != 300 {
		t.Errorf("Expected 300, got %d (%v)", v, err)
	}
	if v, err := parseIntParam(values, "missing", 42, 1, 1000); err != nil || v != 42 {
		t.Errorf("Expected default 42, got %d (%v)", v, err)
	}
	if _, err := parseIntParam(values, "bad", 1, 1, 1000); err == nil {
		t.Error("Expected error for non-numeric value")
	}
	if _, err := parseIntParam(values, "big", 1, 1, 1000); err == nil {
		t.Error("Expected error for out-of-range value")
	}
}
