package httpx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// ImageStore is the media-host collaborator; it takes raw image bytes
// and returns a public URL.
type ImageStore interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
}

type UploadHandler struct {
	Store ImageStore
}

// Encodings accepted before the media collaborator is reached. jpg and
// jpeg share a sniffed type.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

func (h *UploadHandler) Register(r *chi.Mux) {
	r.Post("/upload-image", h.upload)
}

func (h *UploadHandler) upload(w http.ResponseWriter, r *http.Request) {
	const op = "UploadHandler.upload"
	log := slog.With("op", op)

	file, _, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no image file uploaded"})
		return
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		log.Error("read upload", "err", err)
		writeInternalError(w, "failed to read image")
		return
	}
	head = head[:n]

	if _, ok := allowedImageTypes[http.DetectContentType(head)]; !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported image format"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	url, err := h.Store.Upload(ctx, io.MultiReader(bytes.NewReader(head), file))
	if err != nil {
		log.Error("upload image", "err", err)
		writeInternalError(w, "failed to upload image")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}
