package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/output"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
	mux       *http.ServeMux
}

// NewServer creates a new web server. Scene files are discovered in scenesDir.
func NewServer(port int, scenesDir string) *Server {
	s := &Server{
		port:      port,
		scenesDir: scenesDir,
		mux:       http.NewServeMux(),
	}

	// API endpoints
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)

	return s
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Built-in scene ID or "file:<name>"
	Width   int    `json:"width"`   // Image width
	Height  int    `json:"height"`  // Image height
	Samples int    `json:"samples"` // Samples per pixel
	Depth   int    `json:"depth"`   // Maximum ray bounce depth
	Seed    int64  `json:"seed"`    // Base random seed
}

// RenderResponse is the JSON body returned by /api/render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int64   `json:"totalSamples"`
	SamplesPerPixel  int     `json:"samplesPerPixel"`
	MaxDepth         int     `json:"maxDepth"`
	NumWorkers       int     `json:"numWorkers"`
	AverageLuminance float64 `json:"averageLuminance"`
	AverageVariance  float64 `json:"averageVariance"`
}

// Handler returns the HTTP handler serving every endpoint
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	scenes, err := scene.ListScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleRender renders a scene and returns the image with stats and console output.
// The render stops if the client disconnects.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sceneObj.ApplySamplingOverrides(core.SamplingConfig{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.Samples,
		MaxDepth:        req.Depth,
	})

	consoleChan, webLogger := setupConsoleLogging()
	raytracer, err := renderer.NewRaytracer(sceneObj, renderer.RenderConfig{Seed: req.Seed}, webLogger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	startTime := time.Now()
	img, stats, err := raytracer.RenderPass(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			log.Printf("Render of %s cancelled: %v", req.Scene, err)
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Scene:     sceneObj.Name,
		ImageData: imageData,
		Stats: Stats{
			Width:            sceneObj.SamplingConfig.Width,
			Height:           sceneObj.SamplingConfig.Height,
			TotalPixels:      stats.TotalPixels,
			TotalSamples:     int64(stats.TotalSamples),
			SamplesPerPixel:  stats.SamplesPerPixel,
			MaxDepth:         stats.MaxDepth,
			NumWorkers:       stats.NumWorkers,
			AverageLuminance: stats.AverageLuminance,
			AverageVariance:  stats.AverageVariance,
		},
		Console:   drainConsole(consoleChan),
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
}

// requireGet rejects every method but GET with 405
func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// setupConsoleLogging creates console channel and web logger for a render
func setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 64)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// parseRenderRequest parses request parameters. Zero sampling values keep the scene's defaults.
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(values, "samples", 0, 1, 10000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(values, "depth", 0, 1, 1000); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(values, "seed", 42, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Samples > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, nil
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

// createScene resolves a built-in scene ID or a "file:<name>" ID from the scenes directory.
// Arbitrary filesystem paths are not accepted over HTTP.
func (s *Server) createScene(sceneID string) (*scene.Scene, error) {
	if name, ok := strings.CutPrefix(sceneID, "file:"); ok {
		if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			return nil, fmt.Errorf("invalid scene file name %q", name)
		}
		return scene.Load(filepath.Join(s.scenesDir, name+".json"))
	}
	if strings.HasSuffix(sceneID, ".json") {
		return nil, errors.New("scene paths are not accepted; use a file: scene ID")
	}
	return scene.Create(sceneID)
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := output.EncodePNG(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// writeError writes a JSON error body
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
