package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
)

type CoverUploader interface {
	Upload(ctx context.Context, prefix, originalFilename string, body io.Reader, contentType string) (string, error)
	PublicURL(key string) string
}

type CoversHandler struct {
	S3       CoverUploader // nil when no bucket is configured
	MaxBytes int64
}

type CoverResponse struct {
	CoverImage string `json:"coverImage"`
}

// Upload serves POST /covers: stores an image and returns the URL to put in
// a book's coverImage.
func (h *CoversHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.S3 == nil {
		writeError(w, http.StatusServiceUnavailable, "cover upload not configured")
		return
	}
	if h.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)
	}
	if err := r.ParseMultipartForm(h.MaxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}
	file, header, err := r.FormFile("cover")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing cover")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		internalError(w, "read cover", err)
		return
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "only images are allowed")
		return
	}
	key, err := h.S3.Upload(r.Context(), "covers/", header.Filename, bytes.NewReader(data), contentType)
	if err != nil {
		internalError(w, "upload cover", err)
		return
	}
	writeJSON(w, http.StatusCreated, CoverResponse{CoverImage: h.S3.PublicURL(key)})
}
