package http

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fjod/storefront/internal/catalog"
)

type ProductHandler struct {
	catalog CatalogService
	timeout time.Duration
}

func NewProductHandler(catalog CatalogService, timeout time.Duration) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

// parseListingQuery builds the listing query from URL parameters. Absent
// parameters keep their defaults.
func parseListingQuery(v url.Values) (catalog.Query, error) {
	l := catalog.NewListing()
	l.SetSearch(v.Get("q"))
	l.SetCategory(v.Get("category"))
	l.SetBrand(v.Get("brand"))

	q := l.Query()
	minPrice, maxPrice := q.MinPrice, q.MaxPrice
	var err error
	if s := v.Get("min_price"); s != "" {
		if minPrice, err = parseFinite("min_price", s); err != nil {
			return q, err
		}
	}
	if s := v.Get("max_price"); s != "" {
		if maxPrice, err = parseFinite("max_price", s); err != nil {
			return q, err
		}
	}
	l.SetPriceRange(minPrice, maxPrice)

	if s := v.Get("min_rating"); s != "" {
		r, err := parseFinite("min_rating", s)
		if err != nil {
			return q, err
		}
		l.SetMinRating(r)
	}
	if s := v.Get("in_stock"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return q, fmt.Errorf("in_stock: %w", err)
		}
		l.SetInStockOnly(b)
	}

	sort, err := catalog.ParseSortKey(v.Get("sort"))
	if err != nil {
		return q, err
	}
	l.SetSort(sort)

	if s := v.Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil {
			return q, fmt.Errorf("page: %w", err)
		}
		l.SetPage(page)
	}
	return l.Query(), nil
}

// parseFinite parses a float and rejects NaN and infinities.
func parseFinite(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: must be a finite number", name)
	}
	return f, nil
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q, err := parseListingQuery(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}

	view, err := h.catalog.ProductListing(ctx, getSessionID(r.Context()), q)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, ok := productIDParam(w, r, "id")
	if !ok {
		return
	}

	p, err := h.catalog.Product(ctx, id)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		handleAPIError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"categories": categories})
}
