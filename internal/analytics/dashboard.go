package analytics

import (
	"time"

	"github.com/fjod/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Dashboard is everything the seller overview shows.
type Dashboard struct {
	Overall     Summary       `json:"overall"`
	B2B         Summary       `json:"b2b"`
	B2BMetrics  B2BMetrics    `json:"b2b_metrics"`
	ByCategory  []CategoryRow `json:"by_category"`
	TopProducts []ProductRow  `json:"top_products"`
}

func BuildDashboard(orders []domain.Order, now time.Time) Dashboard {
	return Dashboard{
		Overall:     Summarize(orders),
		B2B:         Summarize(B2BOrders(orders)),
		B2BMetrics:  ComputeB2B(orders, now),
		ByCategory:  ByCategory(orders),
		TopProducts: TopProducts(orders),
	}
}

// Report is the B2B revenue breakdown of the seller analytics page.
type Report struct {
	B2BOrderCount   int           `json:"b2b_order_count"`
	B2BRevenue      float64       `json:"b2b_revenue"`
	TotalOrdersAll  int           `json:"total_orders_all"`
	TotalRevenueAll float64       `json:"total_revenue_all"`
	ShareOfOrders   float64       `json:"share_of_orders"`
	ShareOfRevenue  float64       `json:"share_of_revenue"`
	ByCategory      []CategoryRow `json:"by_category"`
}

func BuildReport(orders []domain.Order) Report {
	b2b := B2BOrders(orders)
	b2bRevenue := sumTotals(b2b)
	allRevenue := sumTotals(orders)

	return Report{
		B2BOrderCount:   len(b2b),
		B2BRevenue:      b2bRevenue.InexactFloat64(),
		TotalOrdersAll:  len(orders),
		TotalRevenueAll: allRevenue.InexactFloat64(),
		ShareOfOrders:   percent(decimal.NewFromInt(int64(len(b2b))), decimal.NewFromInt(int64(len(orders)))),
		ShareOfRevenue:  percent(b2bRevenue, allRevenue),
		ByCategory:      ByCategory(orders),
	}
}
