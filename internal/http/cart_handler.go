package http

import (
	"context"
	"net/http"
	"time"
)

type CartHandler struct {
	cart    CartService
	timeout time.Duration
}

func NewCartHandler(cart CartService, timeout time.Duration) *CartHandler {
	return &CartHandler{
		cart:    cart,
		timeout: timeout,
	}
}

type CartItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type WishlistItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	cart, err := h.cart.Cart(ctx)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// SetItem adds a product to the cart or sets the quantity of an existing line.
func (h *CartHandler) SetItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req CartItemRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	cart, err := h.cart.SetCartQuantity(ctx, req.ProductID, req.Quantity)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := productIDParam(w, r, "product_id")
	if !ok {
		return
	}

	cart, err := h.cart.RemoveFromCart(ctx, productID)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	wl, err := h.cart.Wishlist(ctx)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, wl)
}

func (h *CartHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req WishlistItemRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	wl, err := h.cart.AddToWishlist(ctx, req.ProductID)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, wl)
}

func (h *CartHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID, ok := productIDParam(w, r, "product_id")
	if !ok {
		return
	}

	wl, err := h.cart.RemoveFromWishlist(ctx, productID)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, wl)
}
