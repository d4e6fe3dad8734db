package commerce

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fjod/storefront/internal/domain"
)

func (c *Client) GetCart(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.getJSON(ctx, "get_cart", "/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddOrUpdateCart sets the quantity of a product in the cart.
func (c *Client) AddOrUpdateCart(ctx context.Context, productID int64, quantity int) (*domain.Cart, error) {
	var cart domain.Cart
	req := cartItemRequest{ProductID: productID, Quantity: quantity}
	if err := c.sendJSON(ctx, "update_cart", http.MethodPost, "/cart", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, productID int64) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.sendJSON(ctx, "remove_cart_item", http.MethodDelete, fmt.Sprintf("/cart/%d", productID), nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) GetWishlist(ctx context.Context) (*domain.Wishlist, error) {
	var w domain.Wishlist
	if err := c.getJSON(ctx, "get_wishlist", "/wishlist", nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) AddToWishlist(ctx context.Context, productID int64) (*domain.Wishlist, error) {
	var w domain.Wishlist
	req := cartItemRequest{ProductID: productID, Quantity: 1}
	if err := c.sendJSON(ctx, "add_wishlist", http.MethodPost, "/wishlist", req, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) RemoveFromWishlist(ctx context.Context, productID int64) (*domain.Wishlist, error) {
	var w domain.Wishlist
	if err := c.sendJSON(ctx, "remove_wishlist", http.MethodDelete, fmt.Sprintf("/wishlist/%d", productID), nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}
