package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-progressive-raycaster/pkg/scene"
)

// Server handles web requests for the progressive raycaster
type Server struct {
	port      int
	staticDir string
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, staticDir: "static/"}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string `json:"scene"`      // Scene id (e.g., "default")
	Width      int    `json:"width"`      // Image width
	Height     int    `json:"height"`     // Image height
	Frames     int    `json:"frames"`     // Number of frames to accumulate
	Orthogonal bool   `json:"orthogonal"` // Use orthogonal projection
	Seed       int    `json:"seed"`       // Random seed, 0 seeds from the clock
}

// Handler returns the HTTP handler serving the static client and the API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(scene.List())
}

// parseCommonSceneParams parses the parameters shared by render and inspect requests
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	if sceneID := query.Get("scene"); sceneID != "" {
		req.Scene = sceneID
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 200, 10, 2000); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 100, 10, 2000); err != nil {
		return err
	}
	if req.Orthogonal, err = parseBoolParam(query, "orthogonal", false); err != nil {
		return err
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene creates a scene based on the scene id
func (s *Server) createScene(sceneID string) *scene.Scene {
	sceneObj, err := scene.New(sceneID)
	if err != nil {
		return nil
	}
	return sceneObj
}

// writeJSONError writes a JSON error body with the given status
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
