package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/mudra/internal/sensing"
	"github.com/ayusman/mudra/internal/stage"
)

// ModelHandler serves detector model configuration.
type ModelHandler struct {
	controller *sensing.Controller
}

// NewModelHandler creates a new ModelHandler for the given controller.
func NewModelHandler(c *sensing.Controller) *ModelHandler {
	return &ModelHandler{controller: c}
}

type modelResponse struct {
	Path     string `json:"path"`
	MaxHands int    `json:"max_hands"`
}

type modelRequest struct {
	Path     *string `json:"path"`
	MaxHands *int    `json:"max_hands"`
}

// ServeHTTP handles GET and PUT on /api/model.
func (h *ModelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, modelResponse{
			Path:     h.controller.ModelPath(),
			MaxHands: h.controller.MaxHands(),
		})
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ModelHandler) update(w http.ResponseWriter, r *http.Request) {
	var req modelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Path != nil {
		if status := h.controller.SetModelPath(*req.Path); status.Kind != sensing.StatusOK {
			writeStatus(w, status)
			return
		}
	}
	if req.MaxHands != nil {
		if status := h.controller.SetMaxHands(*req.MaxHands); status.Kind != sensing.StatusOK {
			writeStatus(w, status)
			return
		}
	}

	writeJSON(w, http.StatusOK, modelResponse{
		Path:     h.controller.ModelPath(),
		MaxHands: h.controller.MaxHands(),
	})
}

// DisplayHandler serves the shared display state proxy.
type DisplayHandler struct {
	controller *sensing.Controller
}

// NewDisplayHandler creates a new DisplayHandler for the given controller.
func NewDisplayHandler(c *sensing.Controller) *DisplayHandler {
	return &DisplayHandler{controller: c}
}

type displayResponse struct {
	Transparency float64 `json:"transparency"`
	State        string  `json:"state"`
}

type displayRequest struct {
	Transparency *float64 `json:"transparency"`
	State        *string  `json:"state"`
}

// ServeHTTP handles GET and PUT on /api/display. PUT transparency goes
// through ApplyVideoTransparency so the preview reflects it.
func (h *DisplayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
	case http.MethodPut:
		var req displayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Transparency != nil {
			h.controller.ApplyVideoTransparency(*req.Transparency)
		}
		if req.State != nil {
			switch state := stage.VideoState(*req.State); state {
			case stage.StateOff, stage.StateOn, stage.StateOnFlipped:
				h.controller.SetDisplayState(state)
			default:
				writeError(w, http.StatusBadRequest, "invalid display state")
				return
			}
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, displayResponse{
		Transparency: h.controller.DisplayTransparency(),
		State:        string(h.controller.DisplayState()),
	})
}

// DirectionHandler sets the camera mirror direction.
type DirectionHandler struct {
	controller *sensing.Controller
}

// NewDirectionHandler creates a new DirectionHandler for the given controller.
func NewDirectionHandler(c *sensing.Controller) *DirectionHandler {
	return &DirectionHandler{controller: c}
}

type directionRequest struct {
	Direction string `json:"direction"`
}

// ServeHTTP handles PUT on /api/video/direction.
func (h *DirectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req directionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch direction := sensing.CameraDirection(req.Direction); direction {
	case sensing.DirectionMirrored, sensing.DirectionFlipped:
		h.controller.SetCameraDirection(direction)
		writeJSON(w, http.StatusOK, req)
	default:
		writeError(w, http.StatusBadRequest, "direction must be mirrored or flipped")
	}
}
