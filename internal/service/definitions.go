package service

import (
	"context"

	"github.com/fjod/storefront/internal/commerce"
	"github.com/fjod/storefront/internal/domain"
)

// CommerceAPI is the slice of the commerce client the services call.
type CommerceAPI interface {
	ListProducts(ctx context.Context, params commerce.ProductParams) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	GetCart(ctx context.Context) (*domain.Cart, error)
	AddOrUpdateCart(ctx context.Context, productID int64, quantity int) (*domain.Cart, error)
	RemoveCartItem(ctx context.Context, productID int64) (*domain.Cart, error)
	GetWishlist(ctx context.Context) (*domain.Wishlist, error)
	AddToWishlist(ctx context.Context, productID int64) (*domain.Wishlist, error)
	RemoveFromWishlist(ctx context.Context, productID int64) (*domain.Wishlist, error)

	Checkout(ctx context.Context, req commerce.CheckoutRequest) (*commerce.CheckoutResponse, error)
	CreateInvoice(ctx context.Context, orderID domain.OrderID) (*commerce.InvoiceResponse, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)

	UpdateProductStock(ctx context.Context, productID int64, inStock bool) (*commerce.StockResponse, error)
	CreateSellerOrder(ctx context.Context, req commerce.SellerOrderRequest) (*commerce.SellerOrderResponse, error)
}

type ListingItem struct {
	domain.Product
	BusinessPrice *float64 `json:"business_price,omitempty"`
}

type ListingView struct {
	Items      []ListingItem     `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageCount  int               `json:"page_count"`
	PageSize   int               `json:"page_size"`
	Categories []domain.Category `json:"categories"`
	Brands     []string          `json:"brands"`
	B2BMode    bool              `json:"b2b_mode"`
}

type CartView struct {
	*domain.Cart
	Count int `json:"cart_count"`
}

type WishlistView struct {
	*domain.Wishlist
	Count int `json:"wishlist_count"`
}

type CheckoutInput struct {
	Customer      domain.Customer
	PaymentMethod string
}

type CheckoutResult struct {
	OrderID    domain.OrderID `json:"order_id"`
	InvoiceURL string         `json:"invoice_url,omitempty"`
}

type OrderFilter string

const (
	OrderFilterAll      OrderFilter = "all"
	OrderFilterB2B      OrderFilter = "b2b"
	OrderFilterConsumer OrderFilter = "consumer"
)

type OrderHistory struct {
	Filter OrderFilter    `json:"filter"`
	Orders []domain.Order `json:"orders"`
}

type DraftLine struct {
	ProductID     int64           `json:"product_id"`
	Quantity      int             `json:"quantity"`
	Product       *domain.Product `json:"product,omitempty"`
	BusinessPrice float64         `json:"business_price"`
	LineTotal     float64         `json:"line_total"`
}

type DraftView struct {
	Lines []DraftLine `json:"lines"`
	Total float64     `json:"total"`
}
