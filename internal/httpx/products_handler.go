package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// ProductStore is the document-database collaborator behind the product
// routes. Fields pass through verbatim in both directions.
type ProductStore interface {
	List(ctx context.Context) ([]map[string]any, error)
	Create(ctx context.Context, fields map[string]any) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type ProductsHandler struct {
	Store ProductStore
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Get("/products", h.list)
	r.Post("/products", h.create)
	r.Put("/products/{id}", h.update)
	r.Delete("/products/{id}", h.delete)
}

func (h *ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.list"
	log := slog.With("op", op)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	records, err := h.Store.List(ctx)
	if err != nil {
		log.Error("list products", "err", err)
		writeInternalError(w, "failed to fetch products")
		return
	}
	if records == nil {
		records = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.create"
	log := slog.With("op", op)

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := h.Store.Create(ctx, fields)
	if err != nil {
		log.Error("create product", "err", err)
		writeInternalError(w, "failed to create product")
		return
	}
	writeJSON(w, http.StatusCreated, withID(id, fields))
}

func (h *ProductsHandler) update(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.update"
	log := slog.With("op", op)

	id := chi.URLParam(r, "id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Update(ctx, id, fields); err != nil {
		log.Error("update product", "id", id, "err", err)
		writeInternalError(w, "failed to update product")
		return
	}
	// Echo the submitted fields, not the post-merge document.
	writeJSON(w, http.StatusOK, withID(id, fields))
}

func (h *ProductsHandler) delete(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.delete"
	log := slog.With("op", op)

	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		log.Error("delete product", "id", id, "err", err)
		writeInternalError(w, "failed to delete product")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Product %s deleted.", id),
	})
}

func withID(id string, fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["id"] = id
	return out
}
