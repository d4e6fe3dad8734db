package analytics

import (
	"slices"
	"strings"

	"github.com/fjod/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// OtherCategory collects line items whose product has no category.
	OtherCategory = "Other"

	topProductsLimit = 3
)

type CategoryRow struct {
	Category string  `json:"category"`
	Units    int     `json:"units"`
	Revenue  float64 `json:"revenue"`
}

type ProductRow struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

type categoryAcc struct {
	units   int
	revenue decimal.Decimal
}

// ByCategory attributes units and line revenue of B2B order lines to the
// product category, sorted by units descending. Lines without a product are
// skipped.
func ByCategory(orders []domain.Order) []CategoryRow {
	var order []string
	acc := make(map[string]*categoryAcc)

	for _, o := range orders {
		if !o.IsB2B() {
			continue
		}
		for _, it := range o.Items {
			if it.Product == nil {
				continue
			}
			cat := strings.TrimSpace(it.Product.Category)
			if cat == "" {
				cat = OtherCategory
			}
			a, ok := acc[cat]
			if !ok {
				a = &categoryAcc{revenue: decimal.Zero}
				acc[cat] = a
				order = append(order, cat)
			}
			a.units += it.Quantity
			a.revenue = a.revenue.Add(decimal.NewFromFloat(it.LineTotal()))
		}
	}

	rows := make([]CategoryRow, 0, len(order))
	for _, cat := range order {
		rows = append(rows, CategoryRow{
			Category: cat,
			Units:    acc[cat].units,
			Revenue:  acc[cat].revenue.InexactFloat64(),
		})
	}
	slices.SortStableFunc(rows, func(a, b CategoryRow) int { return b.Units - a.Units })
	return rows
}

// TopProducts sums quantity per product across B2B order lines and returns
// the three best sellers. The first snapshot seen for a product is kept.
func TopProducts(orders []domain.Order) []ProductRow {
	var rows []ProductRow
	index := make(map[int64]int)

	for _, o := range orders {
		if !o.IsB2B() {
			continue
		}
		for _, it := range o.Items {
			if it.Product == nil {
				continue
			}
			i, ok := index[it.Product.ID]
			if !ok {
				i = len(rows)
				index[it.Product.ID] = i
				rows = append(rows, ProductRow{Product: *it.Product})
			}
			rows[i].Quantity += it.Quantity
		}
	}

	slices.SortStableFunc(rows, func(a, b ProductRow) int { return b.Quantity - a.Quantity })
	if len(rows) > topProductsLimit {
		rows = rows[:topProductsLimit]
	}
	if rows == nil {
		rows = []ProductRow{}
	}
	return rows
}
