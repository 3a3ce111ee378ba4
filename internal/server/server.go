// Package server provides the HTTP server for the mudra hand-pose service.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/mudra/internal/library"
	"github.com/ayusman/mudra/internal/sensing"
	"github.com/ayusman/mudra/internal/server/api"
	"github.com/ayusman/mudra/internal/video"
)

// Config holds the server configuration.
type Config struct {
	StaticDir  string
	Controller *sensing.Controller
	Device     video.Device
	Library    *library.Store
}

// Server represents the HTTP server for the mudra application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if c := s.config.Controller; c != nil {
		sensingHandler := api.NewSensingHandler(c)
		s.mux.Handle("/api/sensing", sensingHandler)
		s.mux.Handle("/api/sensing/", sensingHandler)

		handsHandler := api.NewHandsHandler(c)
		s.mux.Handle("/api/hands", handsHandler)
		s.mux.Handle("/api/hands/", handsHandler)

		s.mux.Handle("/api/detect/", api.NewDetectHandler(c))
		s.mux.Handle("/api/model", api.NewModelHandler(c))
		s.mux.Handle("/api/display", api.NewDisplayHandler(c))
		s.mux.Handle("/api/video/direction", api.NewDirectionHandler(c))

		s.mux.Handle("/api/landmarks", NewLandmarksHandler(c))
	}

	if s.config.Library != nil {
		imagesHandler := api.NewImagesHandler(s.config.Library)
		s.mux.Handle("/api/images", imagesHandler)
		s.mux.Handle("/api/images/", imagesHandler)
	}

	if s.config.Device != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Device))
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
