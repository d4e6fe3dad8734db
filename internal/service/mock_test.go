package service

import (
	"context"
	"sync"

	"github.com/fjod/storefront/internal/commerce"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/events"
)

type commerceMock struct {
	mu sync.Mutex

	products   []domain.Product
	categories []domain.Category
	cart       *domain.Cart
	wishlist   *domain.Wishlist
	orders     []domain.Order
	err        error
	invoiceErr error

	checkoutReq   *commerce.CheckoutRequest
	invoiceFor    domain.OrderID
	stockSent     *bool
	sellerReq     *commerce.SellerOrderRequest
	cartQuantity  int
	productParams []commerce.ProductParams
}

func (m *commerceMock) ListProducts(_ context.Context, params commerce.ProductParams) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.productParams = append(m.productParams, params)
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *commerceMock) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, &commerce.APIError{StatusCode: 404, Message: "Product not found"}
}

func (m *commerceMock) ListCategories(context.Context) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *commerceMock) GetCart(context.Context) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *commerceMock) AddOrUpdateCart(_ context.Context, _ int64, quantity int) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.cartQuantity = quantity
	return m.cart, nil
}

func (m *commerceMock) RemoveCartItem(context.Context, int64) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cart, nil
}

func (m *commerceMock) GetWishlist(context.Context) (*domain.Wishlist, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.wishlist, nil
}

func (m *commerceMock) AddToWishlist(context.Context, int64) (*domain.Wishlist, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.wishlist, nil
}

func (m *commerceMock) RemoveFromWishlist(context.Context, int64) (*domain.Wishlist, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.wishlist, nil
}

func (m *commerceMock) Checkout(_ context.Context, req commerce.CheckoutRequest) (*commerce.CheckoutResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.checkoutReq = &req
	return &commerce.CheckoutResponse{OrderID: "101"}, nil
}

func (m *commerceMock) CreateInvoice(_ context.Context, orderID domain.OrderID) (*commerce.InvoiceResponse, error) {
	m.invoiceFor = orderID
	if m.invoiceErr != nil {
		return nil, m.invoiceErr
	}
	return &commerce.InvoiceResponse{InvoiceURL: "/invoices/" + string(orderID) + ".pdf"}, nil
}

func (m *commerceMock) ListOrders(context.Context) ([]domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.orders, nil
}

func (m *commerceMock) UpdateProductStock(_ context.Context, productID int64, inStock bool) (*commerce.StockResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.stockSent = &inStock
	return &commerce.StockResponse{ID: productID, InStock: inStock}, nil
}

func (m *commerceMock) CreateSellerOrder(_ context.Context, req commerce.SellerOrderRequest) (*commerce.SellerOrderResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sellerReq = &req
	return &commerce.SellerOrderResponse{
		OrderID: "900",
		Order:   domain.Order{ID: "900", Status: domain.StatusConfirmedB2B, Total: 180},
	}, nil
}

type publisherMock struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *publisherMock) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *publisherMock) Close() error { return nil }
