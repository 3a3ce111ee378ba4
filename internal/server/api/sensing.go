// Package api provides HTTP API handlers for the mudra hand-pose service.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/sensing"
)

// SensingHandler handles detection-loop control requests.
type SensingHandler struct {
	controller *sensing.Controller
}

// NewSensingHandler creates a new SensingHandler for the given controller.
func NewSensingHandler(c *sensing.Controller) *SensingHandler {
	return &SensingHandler{controller: c}
}

type sensingStatusResponse struct {
	Running    bool `json:"running"`
	IntervalMs int  `json:"interval_ms"`
	Hands      int  `json:"hands"`
}

type intervalRequest struct {
	IntervalMs int `json:"interval_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeStatus maps an operation Status to an HTTP response.
func writeStatus(w http.ResponseWriter, status sensing.Status) {
	code := http.StatusOK
	switch status.Kind {
	case sensing.StatusInvalid:
		code = http.StatusBadRequest
	case sensing.StatusNotFound:
		code = http.StatusNotFound
	case sensing.StatusFailed:
		code = http.StatusBadGateway
	}
	writeJSON(w, code, status)
}

// ServeHTTP routes sensing control requests.
// Paths: /api/sensing, /api/sensing/start, /api/sensing/stop,
// /api/sensing/interval.
func (h *SensingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/sensing")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.status(w)
	case "start":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.start(w)
	case "stop":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.stop(w)
	case "interval":
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, intervalRequest{IntervalMs: h.controller.IntervalMillis()})
		case http.MethodPut:
			h.setInterval(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	default:
		http.NotFound(w, r)
	}
}

func (h *SensingHandler) status(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, sensingStatusResponse{
		Running:    h.controller.IsRunning(),
		IntervalMs: h.controller.IntervalMillis(),
		Hands:      h.controller.NumberOfHands(),
	})
}

func (h *SensingHandler) start(w http.ResponseWriter) {
	if err := h.controller.Start(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.status(w)
}

func (h *SensingHandler) stop(w http.ResponseWriter) {
	h.controller.Stop()
	h.status(w)
}

func (h *SensingHandler) setInterval(w http.ResponseWriter, r *http.Request) {
	var req intervalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.controller.SetIntervalMillis(req.IntervalMs)
	writeJSON(w, http.StatusOK, intervalRequest{IntervalMs: h.controller.IntervalMillis()})
}
