package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/fjod/storefront/internal/catalog"
	"github.com/fjod/storefront/internal/commerce"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/events"
	"github.com/fjod/storefront/internal/metrics"
	"github.com/fjod/storefront/internal/session"
	"golang.org/x/sync/errgroup"
)

const (
	maxCartQuantity = 99
	defaultCountry  = "India"
)

type StorefrontService struct {
	api      CommerceAPI
	sessions *session.Manager
	events   events.Publisher
	metrics  *metrics.Registry
	log      *slog.Logger
}

func NewStorefrontService(api CommerceAPI, sessions *session.Manager, pub events.Publisher, m *metrics.Registry, log *slog.Logger) *StorefrontService {
	return &StorefrontService{
		api:      api,
		sessions: sessions,
		events:   pub,
		metrics:  m,
		log:      log,
	}
}

// b2bMode reads the session flag. A session store failure is logged and
// treated as consumer mode.
func (s *StorefrontService) b2bMode(ctx context.Context, sessionID string) bool {
	st, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		s.log.WarnContext(ctx, "session load error", "error", err)
		return false
	}
	return st.B2BMode
}

// ProductListing fetches the unfiltered catalog and categories, then filters,
// sorts and pages the snapshot locally.
func (s *StorefrontService) ProductListing(ctx context.Context, sessionID string, q catalog.Query) (*ListingView, error) {
	var products []domain.Product
	var categories []domain.Category

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.api.ListProducts(gctx, commerce.ProductParams{})
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.api.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b2b := s.b2bMode(ctx, sessionID)
	page := catalog.NewListingFrom(q).View(products)

	items := make([]ListingItem, len(page.Items))
	for i, p := range page.Items {
		items[i] = ListingItem{Product: p}
		if b2b {
			bp := domain.BusinessPrice(&p)
			items[i].BusinessPrice = &bp
		}
	}

	if s.metrics != nil {
		s.metrics.ListingPages.Inc()
		s.metrics.ListingMatches.Observe(float64(page.Total))
	}

	return &ListingView{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageCount:  page.PageCount,
		PageSize:   page.PageSize,
		Categories: categories,
		Brands:     catalog.Brands(products),
		B2BMode:    b2b,
	}, nil
}

func (s *StorefrontService) Product(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidProductID
	}
	return s.api.GetProduct(ctx, id)
}

func (s *StorefrontService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.api.ListCategories(ctx)
}

func newCartView(c *domain.Cart) *CartView {
	return &CartView{Cart: c, Count: c.Count()}
}

func newWishlistView(w *domain.Wishlist) *WishlistView {
	return &WishlistView{Wishlist: w, Count: w.Count()}
}

func (s *StorefrontService) Cart(ctx context.Context) (*CartView, error) {
	c, err := s.api.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	return newCartView(c), nil
}

// SetCartQuantity adds the product to the cart or updates its quantity.
func (s *StorefrontService) SetCartQuantity(ctx context.Context, productID int64, quantity int) (*CartView, error) {
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}
	if quantity <= 0 || quantity > maxCartQuantity {
		return nil, ErrInvalidQuantity
	}
	c, err := s.api.AddOrUpdateCart(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	return newCartView(c), nil
}

func (s *StorefrontService) RemoveFromCart(ctx context.Context, productID int64) (*CartView, error) {
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}
	c, err := s.api.RemoveCartItem(ctx, productID)
	if err != nil {
		return nil, err
	}
	return newCartView(c), nil
}

func (s *StorefrontService) Wishlist(ctx context.Context) (*WishlistView, error) {
	w, err := s.api.GetWishlist(ctx)
	if err != nil {
		return nil, err
	}
	return newWishlistView(w), nil
}

func (s *StorefrontService) AddToWishlist(ctx context.Context, productID int64) (*WishlistView, error) {
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}
	w, err := s.api.AddToWishlist(ctx, productID)
	if err != nil {
		return nil, err
	}
	return newWishlistView(w), nil
}

func (s *StorefrontService) RemoveFromWishlist(ctx context.Context, productID int64) (*WishlistView, error) {
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}
	w, err := s.api.RemoveFromWishlist(ctx, productID)
	if err != nil {
		return nil, err
	}
	return newWishlistView(w), nil
}

// Checkout places the order and requests its invoice. An invoice failure
// does not undo the order: the result then carries no invoice URL.
func (s *StorefrontService) Checkout(ctx context.Context, sessionID string, in CheckoutInput) (*CheckoutResult, error) {
	c := in.Customer
	if strings.TrimSpace(c.FullName) == "" || strings.TrimSpace(c.AddressLine1) == "" || strings.TrimSpace(c.City) == "" {
		return nil, ErrInvalidCheckout
	}
	if c.Country == "" {
		c.Country = defaultCountry
	}
	method := in.PaymentMethod
	if method == "" {
		method = domain.PaymentMethodCard
	}

	res, err := s.api.Checkout(ctx, commerce.CheckoutRequest{Customer: c, PaymentMethod: method})
	if err != nil {
		return nil, err
	}
	result := &CheckoutResult{OrderID: res.OrderID}

	inv, err := s.api.CreateInvoice(ctx, res.OrderID)
	if err != nil {
		s.log.WarnContext(ctx, "create invoice error", "order_id", res.OrderID, "error", err)
	} else {
		result.InvoiceURL = inv.InvoiceURL
	}

	s.publish(ctx, events.Event{Type: events.TypeOrderPlaced, OrderID: string(res.OrderID), SessionID: sessionID})
	return result, nil
}

func (s *StorefrontService) publish(ctx context.Context, e events.Event) {
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.WarnContext(ctx, "publish event error", "type", e.Type, "order_id", e.OrderID, "error", err)
	}
}

func ParseOrderFilter(v string) (OrderFilter, error) {
	switch f := OrderFilter(strings.ToLower(strings.TrimSpace(v))); f {
	case "", OrderFilterAll, OrderFilterB2B, OrderFilterConsumer:
		return f, nil
	default:
		return "", ErrUnknownOrderFilter
	}
}

// Orders returns the order history newest first. Without an explicit filter
// a B2B-mode session sees only B2B orders.
func (s *StorefrontService) Orders(ctx context.Context, sessionID string, filter OrderFilter) (*OrderHistory, error) {
	if filter == "" {
		filter = OrderFilterAll
		if s.b2bMode(ctx, sessionID) {
			filter = OrderFilterB2B
		}
	}

	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		switch {
		case filter == OrderFilterB2B && !o.IsB2B():
			continue
		case filter == OrderFilterConsumer && o.IsB2B():
			continue
		}
		visible = append(visible, o)
	}
	slices.Reverse(visible)

	return &OrderHistory{Filter: filter, Orders: visible}, nil
}

// Session returns the caller's session state.
func (s *StorefrontService) Session(ctx context.Context, sessionID string) (*session.State, error) {
	return s.sessions.Load(ctx, sessionID)
}

func (s *StorefrontService) SignIn(ctx context.Context, sessionID, name string) (*session.State, error) {
	return s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.SignIn(name)
		return nil
	})
}

func (s *StorefrontService) SignOut(ctx context.Context, sessionID string) (*session.State, error) {
	return s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.SignOut()
		return nil
	})
}

// SetB2BMode sets the flag, or toggles it when enabled is nil.
func (s *StorefrontService) SetB2BMode(ctx context.Context, sessionID string, enabled *bool) (*session.State, error) {
	return s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		if enabled == nil {
			st.ToggleB2B()
		} else {
			st.B2BMode = *enabled
		}
		return nil
	})
}
