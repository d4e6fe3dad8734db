// Package analytics derives seller dashboard figures from an order snapshot.
// Every function here is pure: it reads the orders it is given and never
// modifies them.
package analytics

import (
	"github.com/fjod/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// NoTimestamp is shown as the last order time when there are no orders.
const NoTimestamp = "-"

type Summary struct {
	OrderCount    int     `json:"order_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
	LastOrderAt   string  `json:"last_order_at"`
}

// Summarize computes count, revenue, average and the created_at of the last
// order in input order. Callers pass orders in insertion order.
func Summarize(orders []domain.Order) Summary {
	if len(orders) == 0 {
		return Summary{LastOrderAt: NoTimestamp}
	}
	revenue := sumTotals(orders)
	return Summary{
		OrderCount:    len(orders),
		TotalRevenue:  revenue.InexactFloat64(),
		AvgOrderValue: ratio(revenue, decimal.NewFromInt(int64(len(orders)))),
		LastOrderAt:   orders[len(orders)-1].CreatedAt,
	}
}

// B2BOrders returns the CONFIRMED_B2B orders, preserving input order.
func B2BOrders(orders []domain.Order) []domain.Order {
	res := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsB2B() {
			res = append(res, o)
		}
	}
	return res
}

func sumTotals(orders []domain.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(decimal.NewFromFloat(o.Total))
	}
	return sum
}

// ratio returns num/den, or 0 when den is zero.
func ratio(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	return num.Div(den).InexactFloat64()
}

// percent returns part/whole*100, or 0 when whole is zero.
func percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Mul(decimal.NewFromInt(100)).Div(whole).InexactFloat64()
}
