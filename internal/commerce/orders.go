package commerce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fjod/storefront/internal/domain"
)

func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	var res CheckoutResponse
	if err := c.sendJSON(ctx, "checkout", http.MethodPost, "/checkout", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateInvoice(ctx context.Context, orderID domain.OrderID) (*InvoiceResponse, error) {
	var res InvoiceResponse
	if err := c.sendJSON(ctx, "create_invoice", http.MethodPost, "/create-invoice", invoiceRequest{OrderID: orderID}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListOrders returns orders in the API's insertion order. Malformed orders
// are skipped.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var raw []json.RawMessage
	if err := c.getJSON(ctx, "list_orders", "/orders", nil, &raw); err != nil {
		return nil, err
	}
	return decodeRecords[domain.Order](ctx, c, "list_orders", raw), nil
}

func (c *Client) UpdateProductStock(ctx context.Context, productID int64, inStock bool) (*StockResponse, error) {
	var res StockResponse
	path := fmt.Sprintf("/seller/products/%d/stock", productID)
	if err := c.sendJSON(ctx, "update_stock", http.MethodPost, path, stockRequest{InStock: inStock}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateSellerOrder(ctx context.Context, req SellerOrderRequest) (*SellerOrderResponse, error) {
	var res SellerOrderResponse
	if err := c.sendJSON(ctx, "create_seller_order", http.MethodPost, "/seller/orders", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
