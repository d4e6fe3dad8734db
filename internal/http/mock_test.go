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

type StorefrontMock struct {
	listing  *service.ListingView
	product  *domain.Product
	cart     *service.CartView
	wishlist *service.WishlistView
	checkout *service.CheckoutResult
	history  *service.OrderHistory
	state    *session.State
	err      error

	gotQuery     *catalog.Query
	gotSessionID string
	gotCheckout  *service.CheckoutInput
	gotB2B       *bool
}

func (m *StorefrontMock) ProductListing(_ context.Context, sessionID string, q catalog.Query) (*service.ListingView, error) {
	m.gotSessionID = sessionID
	m.gotQuery = &q
	if m.err != nil {
		return nil, m.err
	}
	return m.listing, nil
}

func (m *StorefrontMock) Product(context.Context, int64) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.product, nil
}

func (m *StorefrontMock) Categories(context.Context) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []domain.Category{{Name: "Electronics"}}, nil
}

func (m *StorefrontMock) Cart(context.Context) (*service.CartView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *StorefrontMock) SetCartQuantity(context.Context, int64, int) (*service.CartView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *StorefrontMock) RemoveFromCart(context.Context, int64) (*service.CartView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *StorefrontMock) Wishlist(context.Context) (*service.WishlistView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.wishlist, nil
}

func (m *StorefrontMock) AddToWishlist(context.Context, int64) (*service.WishlistView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.wishlist, nil
}

func (m *StorefrontMock) RemoveFromWishlist(context.Context, int64) (*service.WishlistView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.wishlist, nil
}

func (m *StorefrontMock) Checkout(_ context.Context, sessionID string, in service.CheckoutInput) (*service.CheckoutResult, error) {
	m.gotSessionID = sessionID
	m.gotCheckout = &in
	if m.err != nil {
		return nil, m.err
	}
	return m.checkout, nil
}

func (m *StorefrontMock) Orders(_ context.Context, sessionID string, filter service.OrderFilter) (*service.OrderHistory, error) {
	m.gotSessionID = sessionID
	if m.err != nil {
		return nil, m.err
	}
	return &service.OrderHistory{Filter: filter, Orders: m.history.Orders}, nil
}

func (m *StorefrontMock) Session(_ context.Context, sessionID string) (*session.State, error) {
	m.gotSessionID = sessionID
	return m.state, m.err
}

func (m *StorefrontMock) SignIn(_ context.Context, _ string, name string) (*session.State, error) {
	if m.err != nil {
		return nil, m.err
	}
	st := &session.State{}
	st.SignIn(name)
	return st, nil
}

func (m *StorefrontMock) SignOut(context.Context, string) (*session.State, error) {
	return &session.State{}, m.err
}

func (m *StorefrontMock) SetB2BMode(_ context.Context, _ string, enabled *bool) (*session.State, error) {
	m.gotB2B = enabled
	if m.err != nil {
		return nil, m.err
	}
	return &session.State{B2BMode: enabled != nil && *enabled}, nil
}

type SellerMock struct {
	dashboard *analytics.Dashboard
	draft     *service.DraftView
	order     *commerce.SellerOrderResponse
	err       error

	gotCurrent *bool
}

func (m *SellerMock) Dashboard(context.Context) (*analytics.Dashboard, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.dashboard, nil
}

func (m *SellerMock) Analytics(context.Context) (*analytics.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &analytics.Report{}, nil
}

func (m *SellerMock) ToggleStock(_ context.Context, productID int64, current bool) (*commerce.StockResponse, error) {
	m.gotCurrent = &current
	if m.err != nil {
		return nil, m.err
	}
	return &commerce.StockResponse{ID: productID, InStock: !current}, nil
}

func (m *SellerMock) Draft(context.Context, string) (*service.DraftView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.draft, nil
}

func (m *SellerMock) AddDraftItem(context.Context, string, int64, int) (*service.DraftView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.draft, nil
}

func (m *SellerMock) RemoveDraftItem(context.Context, string, int64) (*service.DraftView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.draft, nil
}

func (m *SellerMock) SubmitDraft(context.Context, string) (*commerce.SellerOrderResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}
