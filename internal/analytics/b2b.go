package analytics

import (
	"slices"
	"time"

	"github.com/fjod/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// UnknownCity buckets B2B orders without a customer city.
	UnknownCity = "Unknown"

	topCitiesLimit = 5
	day            = 24 * time.Hour
)

type Window struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type CityRevenue struct {
	City    string  `json:"city"`
	Revenue float64 `json:"revenue"`
}

type B2BMetrics struct {
	Last7          Window        `json:"last7"`
	Last30         Window        `json:"last30"`
	All            Window        `json:"all"`
	ShareOfOrders  float64       `json:"share_of_orders"`
	ShareOfRevenue float64       `json:"share_of_revenue"`
	TopCities      []CityRevenue `json:"top_cities"`
}

type windowAcc struct {
	count   int
	revenue decimal.Decimal
}

func (w *windowAcc) add(total decimal.Decimal) {
	w.count++
	w.revenue = w.revenue.Add(total)
}

func (w windowAcc) window() Window {
	return Window{Count: w.count, Revenue: w.revenue.InexactFloat64()}
}

// ComputeB2B derives windowed, share and city figures for the B2B subset of
// orders, evaluated at now. An order whose created_at cannot be parsed still
// counts toward All and the city rollup but falls in no time window.
func ComputeB2B(orders []domain.Order, now time.Time) B2BMetrics {
	var all, last7, last30 windowAcc
	all.revenue, last7.revenue, last30.revenue = decimal.Zero, decimal.Zero, decimal.Zero

	byCity := newCityAcc()
	for _, o := range orders {
		if !o.IsB2B() {
			continue
		}
		total := decimal.NewFromFloat(o.Total)
		all.add(total)

		if created, ok := o.CreatedTime(); ok {
			age := now.Sub(created)
			if age <= 7*day {
				last7.add(total)
			}
			if age <= 30*day {
				last30.add(total)
			}
		}

		city := o.City()
		if city == "" {
			city = UnknownCity
		}
		byCity.add(city, total)
	}

	return B2BMetrics{
		Last7:          last7.window(),
		Last30:         last30.window(),
		All:            all.window(),
		ShareOfOrders:  percent(decimal.NewFromInt(int64(all.count)), decimal.NewFromInt(int64(len(orders)))),
		ShareOfRevenue: percent(all.revenue, sumTotals(orders)),
		TopCities:      byCity.top(topCitiesLimit),
	}
}

type cityAcc struct {
	order   []string
	revenue map[string]decimal.Decimal
}

func newCityAcc() *cityAcc {
	return &cityAcc{revenue: make(map[string]decimal.Decimal)}
}

func (c *cityAcc) add(city string, total decimal.Decimal) {
	cur, ok := c.revenue[city]
	if !ok {
		c.order = append(c.order, city)
		cur = decimal.Zero
	}
	c.revenue[city] = cur.Add(total)
}

func (c *cityAcc) top(n int) []CityRevenue {
	rows := make([]CityRevenue, 0, len(c.order))
	for _, city := range c.order {
		rows = append(rows, CityRevenue{City: city, Revenue: c.revenue[city].InexactFloat64()})
	}
	slices.SortStableFunc(rows, func(a, b CityRevenue) int { return compareDesc(a.Revenue, b.Revenue) })
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

func compareDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
