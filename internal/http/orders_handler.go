package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/service"
)

type OrdersHandler struct {
	orders  OrderService
	timeout time.Duration
}

func NewOrdersHandler(orders OrderService, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orders:  orders,
		timeout: timeout,
	}
}

type CheckoutRequestDTO struct {
	Customer      domain.Customer `json:"customer"`
	PaymentMethod string          `json:"payment_method"`
}

// POST /api/v1/checkout
func (h *OrdersHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CheckoutRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.orders.Checkout(ctx, getSessionID(r.Context()), service.CheckoutInput{
		Customer:      req.Customer,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, res)
}

// GET /api/v1/orders?filter=all|b2b|consumer
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	filter, err := service.ParseOrderFilter(r.URL.Query().Get("filter"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}

	history, err := h.orders.Orders(ctx, getSessionID(r.Context()), filter)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}
