package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/sensing"
)

// HandsHandler serves landmark and handedness queries over the cached
// detection result.
type HandsHandler struct {
	controller *sensing.Controller
}

// NewHandsHandler creates a new HandsHandler for the given controller.
func NewHandsHandler(c *sensing.Controller) *HandsHandler {
	return &HandsHandler{controller: c}
}

type pointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type handResponse struct {
	HandNumber int             `json:"hand_number"`
	Handedness string          `json:"handedness"`
	Landmarks  []pointResponse `json:"landmarks"`
	Relative   []pointResponse `json:"relative"`
}

type handsResponse struct {
	Count int            `json:"count"`
	Hands []handResponse `json:"hands"`
}

// ServeHTTP routes hand queries.
// Paths: /api/hands, /api/hands/{n}.
func (h *HandsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/hands")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		h.list(w)
		return
	}

	handNumber, err := strconv.Atoi(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "hand number must be an integer")
		return
	}
	h.get(w, handNumber)
}

func (h *HandsHandler) list(w http.ResponseWriter) {
	count := h.controller.NumberOfHands()

	resp := handsResponse{Count: count, Hands: make([]handResponse, 0, count)}
	for n := 1; n <= count; n++ {
		resp.Hands = append(resp.Hands, h.hand(n))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *HandsHandler) get(w http.ResponseWriter, handNumber int) {
	if handNumber < 1 || handNumber > h.controller.NumberOfHands() {
		writeError(w, http.StatusNotFound, "no such hand")
		return
	}
	writeJSON(w, http.StatusOK, h.hand(handNumber))
}

// hand builds the response for one 1-based hand number entirely through
// the controller's query surface.
func (h *HandsHandler) hand(handNumber int) handResponse {
	resp := handResponse{
		HandNumber: handNumber,
		Handedness: h.controller.HandednessLabel(handNumber),
		Landmarks:  make([]pointResponse, detector.NumLandmarks),
		Relative:   make([]pointResponse, detector.NumLandmarks),
	}

	for i := 0; i < detector.NumLandmarks; i++ {
		resp.Landmarks[i] = pointResponse{
			X: h.controller.LandmarkX(handNumber, i),
			Y: h.controller.LandmarkY(handNumber, i),
			Z: h.controller.LandmarkZ(handNumber, i),
		}
		resp.Relative[i] = pointResponse{
			X: h.controller.RelativeLandmarkX(handNumber, i),
			Y: h.controller.RelativeLandmarkY(handNumber, i),
			Z: h.controller.RelativeLandmarkZ(handNumber, i),
		}
	}

	return resp
}
