package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

const orderNotFound = "Order not found"

func (h *Handler) addOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := decodeBody(r, &order); err != nil {
		writeError(w, r, err, orderNotFound)
		return
	}

	created, err := h.services.OrderService.AddOrder(r.Context(), order)
	if err != nil {
		writeError(w, r, err, orderNotFound)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.services.OrderService.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, err, orderNotFound)
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.services.OrderService.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, orderNotFound)
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}
