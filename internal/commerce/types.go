package commerce

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/fjod/storefront/internal/domain"
)

// ProductParams are the server-side filters the products endpoint accepts.
// Zero values are not sent.
type ProductParams struct {
	Query    string
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

func (p ProductParams) Values() url.Values {
	v := url.Values{}
	add := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	add("q", p.Query)
	add("category", p.Category)
	add("brand", p.Brand)
	if p.MinPrice != nil {
		add("min_price", strconv.FormatFloat(*p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice != nil {
		add("max_price", strconv.FormatFloat(*p.MaxPrice, 'f', -1, 64))
	}
	add("sort", p.Sort)
	return v
}

type productsResponse struct {
	Products []json.RawMessage `json:"products"`
}

type categoriesResponse struct {
	Categories []json.RawMessage `json:"categories"`
}

type cartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CheckoutRequest struct {
	Customer      domain.Customer `json:"customer"`
	PaymentMethod string          `json:"payment_method"`
}

type CheckoutResponse struct {
	OrderID domain.OrderID `json:"order_id"`
}

type invoiceRequest struct {
	OrderID domain.OrderID `json:"order_id"`
}

type InvoiceResponse struct {
	InvoiceURL string `json:"invoice_url"`
}

type stockRequest struct {
	InStock bool `json:"in_stock"`
}

type StockResponse struct {
	ID      int64 `json:"id,omitempty"`
	InStock bool  `json:"in_stock"`
}

type SellerOrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type SellerOrderRequest struct {
	Items         []SellerOrderItem `json:"items"`
	Customer      domain.Customer   `json:"customer"`
	PaymentMethod string            `json:"payment_method"`
}

type SellerOrderResponse struct {
	OrderID domain.OrderID `json:"order_id"`
	Order   domain.Order   `json:"order"`
}
