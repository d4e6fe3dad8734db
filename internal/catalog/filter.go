package catalog

import (
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/fjod/storefront/internal/domain"
)

const PageSize = 8

type SortKey string

const (
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortTopRated  SortKey = "top_rated"
	SortNewest    SortKey = "newest"
)

var ErrUnknownSort = errors.New("unknown sort key")

// ParseSortKey maps a request value to a SortKey. Empty means newest.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case "":
		return SortNewest, nil
	case SortPriceAsc, SortPriceDesc, SortTopRated, SortNewest:
		return k, nil
	default:
		return "", ErrUnknownSort
	}
}

// DefaultMaxPrice is the upper bound of the listing price slider.
const DefaultMaxPrice = 100000

type Query struct {
	Search      string
	Category    string
	Brand       string
	MinPrice    float64
	MaxPrice    float64
	MinRating   float64
	InStockOnly bool
	Sort        SortKey
	Page        int
}

// DefaultQuery is the state of a freshly opened listing page.
func DefaultQuery() Query {
	return Query{
		MinPrice: 0,
		MaxPrice: DefaultMaxPrice,
		Sort:     SortNewest,
		Page:     1,
	}
}

type Page struct {
	Items     []domain.Product `json:"items"`
	Total     int              `json:"total"`
	Page      int              `json:"page"`
	PageCount int              `json:"page_count"`
	PageSize  int              `json:"page_size"`
}

// Filter returns the products matching every predicate of q, in input order.
// The input slice is not modified.
func Filter(products []domain.Product, q Query) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	res := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(searchText(p), search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Brand != "" && p.Brand != q.Brand {
			continue
		}
		// min > max is kept as given and matches nothing, as does a NaN bound
		if !(p.Price >= q.MinPrice && p.Price <= q.MaxPrice) {
			continue
		}
		if q.MinRating > 0 && p.Rating < q.MinRating {
			continue
		}
		if q.InStockOnly && !p.InStock {
			continue
		}
		res = append(res, p)
	}
	return res
}

func searchText(p domain.Product) string {
	return strings.ToLower(p.Title + " " + p.Description + " " + p.Category + " " + p.Brand)
}

// Sort orders products in place by key. Ties keep their relative order.
func Sort(products []domain.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b domain.Product) int { return compareFloat(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b domain.Product) int { return compareFloat(b.Price, a.Price) })
	case SortTopRated:
		slices.SortStableFunc(products, func(a, b domain.Product) int { return compareFloat(b.Rating, a.Rating) })
	default:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			switch {
			case a.ID > b.ID:
				return -1
			case a.ID < b.ID:
				return 1
			}
			return 0
		})
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Paginate cuts one page out of products. The page is clamped into
// [1, PageCount]; an empty input has exactly one empty page.
func Paginate(products []domain.Product, page int) Page {
	total := len(products)
	pageCount := int(math.Max(1, math.Ceil(float64(total)/PageSize)))
	current := min(max(page, 1), pageCount)
	start := (current - 1) * PageSize
	end := min(start+PageSize, total)

	items := make([]domain.Product, 0, end-start)
	items = append(items, products[start:end]...)
	return Page{
		Items:     items,
		Total:     total,
		Page:      current,
		PageCount: pageCount,
		PageSize:  PageSize,
	}
}

// Apply runs the full listing pipeline: filter, stable sort, paginate.
func Apply(products []domain.Product, q Query) Page {
	filtered := Filter(products, q)
	Sort(filtered, q.Sort)
	return Paginate(filtered, q.Page)
}

// Brands lists the distinct brands in first-appearance order.
func Brands(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	brands := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		brands = append(brands, p.Brand)
	}
	return brands
}
