package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/library"
)

// Image uploads are capped to keep the library store reasonable.
const maxImageBytes = 8 << 20

// ImagesHandler handles HTTP requests for the named-image library.
type ImagesHandler struct {
	store *library.Store
}

// NewImagesHandler creates a new ImagesHandler over the given store.
func NewImagesHandler(s *library.Store) *ImagesHandler {
	return &ImagesHandler{store: s}
}

type imageResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Format string `json:"format"`
}

type listImagesResponse struct {
	Images []imageResponse `json:"images"`
}

// ServeHTTP routes library requests.
// Paths: /api/images and /api/images/{name}.
func (h *ImagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/images")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	name := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, name)
	case http.MethodDelete:
		h.delete(w, name)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ImagesHandler) list(w http.ResponseWriter) {
	images, err := h.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := listImagesResponse{Images: make([]imageResponse, 0, len(images))}
	for _, img := range images {
		resp.Images = append(resp.Images, imageResponse{
			ID:     img.ID,
			Name:   img.Name,
			Format: img.Format,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// create stores the raw request body as a named image. The name comes from
// the "name" query parameter, the format from Content-Type.
func (h *ImagesHandler) create(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	format := "png"
	if r.Header.Get("Content-Type") == "image/jpeg" {
		format = "jpg"
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image data")
		return
	}
	if len(data) > maxImageBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "image too large")
		return
	}

	img, err := h.store.Add(name, format, data)
	if err != nil {
		if errors.Is(err, library.ErrDuplicateName) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, imageResponse{
		ID:     img.ID,
		Name:   img.Name,
		Format: img.Format,
	})
}

func (h *ImagesHandler) get(w http.ResponseWriter, name string) {
	img, err := h.store.Get(name)
	if err != nil {
		if errors.Is(err, library.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	contentType := "image/png"
	if img.Format == "jpg" {
		contentType = "image/jpeg"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(img.Data)
}

func (h *ImagesHandler) delete(w http.ResponseWriter, name string) {
	if err := h.store.Delete(name); err != nil {
		if errors.Is(err, library.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
