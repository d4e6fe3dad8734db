package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Services struct {
	Catalog  CatalogService
	Cart     CartService
	Orders   OrderService
	Sessions SessionService
	Seller   SellerService
}

type RouterConfig struct {
	RequestTimeout     time.Duration
	MaxRequestBodySize int64
	SessionTTL         time.Duration
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// UpstreamState reports the commerce API breaker state on /health.
	UpstreamState func() string
}

func NewRouter(cfg RouterConfig, svc Services) chi.Router {
	products := NewProductHandler(svc.Catalog, cfg.RequestTimeout)
	cart := NewCartHandler(svc.Cart, cfg.RequestTimeout)
	orders := NewOrdersHandler(svc.Orders, cfg.RequestTimeout)
	sessions := NewSessionHandler(svc.Sessions, cfg.RequestTimeout)
	seller := NewSellerHandler(svc.Seller, cfg.RequestTimeout)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{"status": "ok"}
		if cfg.UpstreamState != nil {
			body["upstream"] = cfg.UpstreamState()
		}
		respondJSON(w, http.StatusOK, body)
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(LimitBody(cfg.MaxRequestBodySize))
		r.Use(SessionMiddleware(cfg.SessionTTL))

		r.Get("/products", products.List)
		r.Get("/products/{id}", products.Get)
		r.Get("/categories", products.Categories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cart.GetCart)
			r.Post("/", cart.SetItem)
			r.Delete("/{product_id}", cart.RemoveItem)
		})
		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", cart.GetWishlist)
			r.Post("/", cart.AddToWishlist)
			r.Delete("/{product_id}", cart.RemoveFromWishlist)
		})

		r.Post("/checkout", orders.Checkout)
		r.Get("/orders", orders.List)

		r.Route("/session", func(r chi.Router) {
			r.Get("/", sessions.Get)
			r.Post("/signin", sessions.SignIn)
			r.Post("/signout", sessions.SignOut)
			r.Post("/b2b", sessions.SetB2BMode)
		})

		r.Route("/seller", func(r chi.Router) {
			r.Get("/dashboard", seller.Dashboard)
			r.Get("/analytics", seller.Analytics)
			r.Post("/products/{id}/stock", seller.ToggleStock)
			r.Get("/draft", seller.GetDraft)
			r.Post("/draft", seller.AddDraftItem)
			r.Delete("/draft/{product_id}", seller.RemoveDraftItem)
			r.Post("/draft/submit", seller.SubmitDraft)
		})
	})

	return r
}
