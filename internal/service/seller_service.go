package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/fjod/storefront/internal/analytics"
	"github.com/fjod/storefront/internal/commerce"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/events"
	"github.com/fjod/storefront/internal/metrics"
	"github.com/fjod/storefront/internal/session"
	"github.com/shopspring/decimal"
)

type SellerService struct {
	api      CommerceAPI
	sessions *session.Manager
	events   events.Publisher
	metrics  *metrics.Registry
	log      *slog.Logger
	now      func() time.Time
}

func NewSellerService(api CommerceAPI, sessions *session.Manager, pub events.Publisher, m *metrics.Registry, log *slog.Logger) *SellerService {
	return &SellerService{
		api:      api,
		sessions: sessions,
		events:   pub,
		metrics:  m,
		log:      log,
		now:      time.Now,
	}
}

func (s *SellerService) countDashboard(kind string) {
	if s.metrics != nil {
		s.metrics.Dashboards.WithLabelValues(kind).Inc()
	}
}

// Dashboard recomputes the seller overview from a fresh order snapshot.
func (s *SellerService) Dashboard(ctx context.Context) (*analytics.Dashboard, error) {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	d := analytics.BuildDashboard(orders, s.now())
	s.countDashboard("dashboard")
	return &d, nil
}

func (s *SellerService) Analytics(ctx context.Context) (*analytics.Report, error) {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	r := analytics.BuildReport(orders)
	s.countDashboard("analytics")
	return &r, nil
}

// ToggleStock flips the stock flag the caller currently sees.
func (s *SellerService) ToggleStock(ctx context.Context, productID int64, current bool) (*commerce.StockResponse, error) {
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}
	return s.api.UpdateProductStock(ctx, productID, !current)
}

// Draft prices the session's B2B draft at business prices. Lines whose
// product is no longer in the catalog contribute nothing to the total.
func (s *SellerService) Draft(ctx context.Context, sessionID string) (*DraftView, error) {
	st, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.priceDraft(ctx, st.Draft)
}

func (s *SellerService) priceDraft(ctx context.Context, draft []session.DraftItem) (*DraftView, error) {
	view := &DraftView{Lines: make([]DraftLine, 0, len(draft))}
	if len(draft) == 0 {
		return view, nil
	}

	products, err := s.api.ListProducts(ctx, commerce.ProductParams{})
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	total := decimal.Zero
	for _, it := range draft {
		line := DraftLine{ProductID: it.ProductID, Quantity: it.Quantity}
		if p, ok := byID[it.ProductID]; ok {
			price := decimal.NewFromFloat(domain.BusinessPrice(p))
			lineTotal := price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			line.Product = p
			line.BusinessPrice = price.InexactFloat64()
			line.LineTotal = lineTotal.InexactFloat64()
			total = total.Add(lineTotal)
		}
		view.Lines = append(view.Lines, line)
	}
	view.Total = total.InexactFloat64()
	return view, nil
}

func (s *SellerService) AddDraftItem(ctx context.Context, sessionID string, productID int64, quantity int) (*DraftView, error) {
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		return st.AddDraftItem(productID, quantity)
	})
	if err != nil {
		return nil, err
	}
	return s.priceDraft(ctx, st.Draft)
}

func (s *SellerService) RemoveDraftItem(ctx context.Context, sessionID string, productID int64) (*DraftView, error) {
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.RemoveDraftItem(productID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.priceDraft(ctx, st.Draft)
}

func businessCustomer(userName string) domain.Customer {
	name := "Demo Business Customer"
	if userName != "" {
		name = userName + " (Business)"
	}
	return domain.Customer{
		FullName:     name,
		Email:        "b2b@example.com",
		Phone:        "0000000000",
		AddressLine1: "Demo Business Park",
		City:         "Bengaluru",
		PostalCode:   "560001",
		Country:      defaultCountry,
	}
}

// SubmitDraft places the draft as a B2B invoice order and clears it.
func (s *SellerService) SubmitDraft(ctx context.Context, sessionID string) (*commerce.SellerOrderResponse, error) {
	st, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(st.Draft) == 0 {
		return nil, ErrEmptyDraft
	}

	items := make([]commerce.SellerOrderItem, len(st.Draft))
	for i, it := range st.Draft {
		items[i] = commerce.SellerOrderItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	res, err := s.api.CreateSellerOrder(ctx, commerce.SellerOrderRequest{
		Items:         items,
		Customer:      businessCustomer(st.UserName),
		PaymentMethod: domain.PaymentMethodB2BInvoice,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		st.ClearDraft()
		return nil
	}); err != nil {
		s.log.WarnContext(ctx, "clear draft error", "error", err)
	}

	e := events.Event{
		Type:      events.TypeB2BOrderCreated,
		OrderID:   string(res.OrderID),
		SessionID: sessionID,
		Total:     res.Order.Total,
		ItemCount: len(items),
	}
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.WarnContext(ctx, "publish event error", "type", e.Type, "order_id", e.OrderID, "error", err)
	}
	return res, nil
}
