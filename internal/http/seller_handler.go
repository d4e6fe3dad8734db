package http

import (
	"context"
	"net/http"
	"time"
)

type SellerHandler struct {
	seller  SellerService
	timeout time.Duration
}

func NewSellerHandler(seller SellerService, timeout time.Duration) *SellerHandler {
	return &SellerHandler{
		seller:  seller,
		timeout: timeout,
	}
}

// StockRequestDTO carries the stock flag the seller currently sees; the
// handler stores its inverse.
type StockRequestDTO struct {
	InStock bool `json:"in_stock"`
}

type DraftItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (h *SellerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	d, err := h.seller.Dashboard(ctx)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, d)
}

func (h *SellerHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	report, err := h.seller.Analytics(ctx)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// POST /api/v1/seller/products/{id}/stock
func (h *SellerHandler) ToggleStock(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := productIDParam(w, r, "id")
	if !ok {
		return
	}

	var req StockRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.seller.ToggleStock(ctx, id, req.InStock)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

func (h *SellerHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	view, err := h.seller.Draft(ctx, getSessionID(r.Context()))
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *SellerHandler) AddDraftItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req DraftItemRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.seller.AddDraftItem(ctx, getSessionID(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *SellerHandler) RemoveDraftItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := productIDParam(w, r, "product_id")
	if !ok {
		return
	}

	view, err := h.seller.RemoveDraftItem(ctx, getSessionID(r.Context()), productID)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *SellerHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	res, err := h.seller.SubmitDraft(ctx, getSessionID(r.Context()))
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, res)
}
