package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/sensing"
)

// DetectHandler triggers one-shot detections outside the loop.
type DetectHandler struct {
	controller *sensing.Controller
}

// NewDetectHandler creates a new DetectHandler for the given controller.
func NewDetectHandler(c *sensing.Controller) *DetectHandler {
	return &DetectHandler{controller: c}
}

type detectImageRequest struct {
	Name string `json:"name"`
}

// ServeHTTP routes one-shot detection requests.
// Paths: /api/detect/snapshot, /api/detect/image.
func (h *DetectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/detect")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "snapshot":
		writeStatus(w, h.controller.DetectFromSnapshot(r.Context()))
	case "image":
		var req detectImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		writeStatus(w, h.controller.DetectFromNamedImage(req.Name))
	default:
		http.NotFound(w, r)
	}
}
