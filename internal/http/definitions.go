package http

import (
	"context"

	"github.com/fjod/storefront/internal/analytics"
	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/commerce"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/service"
	"github.com/fjod/storefront/internal/session"
)

type CatalogService interface {
	ProductListing(ctx context.Context, sessionID string, q catalog.Query) (*service.ListingView, error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type CartService interface {
	Cart(ctx context.Context) (*service.CartView, error)
	SetCartQuantity(ctx context.Context, productID int64, quantity int) (*service.CartView, error)
	RemoveFromCart(ctx context.Context, productID int64) (*service.CartView, error)
	Wishlist(ctx context.Context) (*service.WishlistView, error)
	AddToWishlist(ctx context.Context, productID int64) (*service.WishlistView, error)
	RemoveFromWishlist(ctx context.Context, productID int64) (*service.WishlistView, error)
}

type OrderService interface {
	Checkout(ctx context.Context, sessionID string, in service.CheckoutInput) (*service.CheckoutResult, error)
	Orders(ctx context.Context, sessionID string, filter service.OrderFilter) (*service.OrderHistory, error)
}

type SessionService interface {
	Session(ctx context.Context, sessionID string) (*session.State, error)
	SignIn(ctx context.Context, sessionID, name string) (*session.State, error)
	SignOut(ctx context.Context, sessionID string) (*session.State, error)
	SetB2BMode(ctx context.Context, sessionID string, enabled *bool) (*session.State, error)
}

type SellerService interface {
	Dashboard(ctx context.Context) (*analytics.Dashboard, error)
	Analytics(ctx context.Context) (*analytics.Report, error)
	ToggleStock(ctx context.Context, productID int64, current bool) (*commerce.StockResponse, error)
	Draft(ctx context.Context, sessionID string) (*service.DraftView, error)
	AddDraftItem(ctx context.Context, sessionID string, productID int64, quantity int) (*service.DraftView, error)
	RemoveDraftItem(ctx context.Context, sessionID string, productID int64) (*service.DraftView, error)
	SubmitDraft(ctx context.Context, sessionID string) (*commerce.SellerOrderResponse, error)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
