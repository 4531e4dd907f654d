package inventory

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/inventory", func(r chi.Router) {
		r.Post("/batches", h.receiveBatch)
		r.Delete("/batches/{id}", h.removeBatch)
		r.Get("/medicines/{medicine_id}/batches", h.listBatches)
		r.Get("/medicines/{medicine_id}/stock", h.availableStock)
		r.Get("/low-stock", h.listLowStock)
	})
}

func (h *Handler) receiveBatch(w http.ResponseWriter, r *http.Request) {
	var req ReceiveBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	b, err := h.service.ReceiveBatch(r.Context(), req)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, b)
}

func (h *Handler) removeBatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.RemoveBatch(r.Context(), id); err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) listBatches(w http.ResponseWriter, r *http.Request) {
	medicineID := chi.URLParam(r, "medicine_id")
	batches, err := h.service.ListBatches(r.Context(), medicineID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, batches)
}

func (h *Handler) availableStock(w http.ResponseWriter, r *http.Request) {
	medicineID := chi.URLParam(r, "medicine_id")
	available, err := h.service.AvailableStock(r.Context(), medicineID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]int{"available": available})
}

func (h *Handler) listLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListLowStock(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, items)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
