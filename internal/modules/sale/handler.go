package sale

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmaflow/pharmapos-backend/internal/modules/inventory"
)

// Handler exposes the POS sale endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/sales", func(r chi.Router) {
		r.Post("/", h.processSale)
		r.Get("/{id}", h.getSale)
		r.Get("/number/{sale_number}", h.getSaleByNumber)
	})
	r.Get("/api/v1/customers/{customer_id}/sales", h.listCustomerSales)
}

func (h *Handler) processSale(w http.ResponseWriter, r *http.Request) {
	var req ProcessSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s, err := h.service.ProcessSale(r.Context(), req)
	if err != nil {
		var validation *ValidationError
		var insufficient *inventory.InsufficientStockError
		switch {
		case errors.As(err, &validation):
			respond(w, http.StatusBadRequest, map[string]string{"error": validation.Error()})
		case errors.As(err, &insufficient):
			respond(w, http.StatusConflict, map[string]interface{}{
				"error":       insufficient.Error(),
				"medicine_id": insufficient.MedicineID,
				"requested":   insufficient.Requested,
				"available":   insufficient.Available,
			})
		default:
			respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}
	respond(w, http.StatusCreated, s)
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s, err := h.service.GetSale(r.Context(), id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, s)
}

func (h *Handler) getSaleByNumber(w http.ResponseWriter, r *http.Request) {
	saleNumber := chi.URLParam(r, "sale_number")
	s, err := h.service.GetSaleByNumber(r.Context(), saleNumber)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, s)
}

func (h *Handler) listCustomerSales(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customer_id")
	sales, err := h.service.ListCustomerSales(r.Context(), customerID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, sales)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
