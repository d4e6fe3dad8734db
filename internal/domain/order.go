package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

const (
	// StatusConfirmedB2B marks a business/bulk purchase.
	StatusConfirmedB2B = "CONFIRMED_B2B"

	PaymentMethodCard       = "CARD"
	PaymentMethodB2BInvoice = "B2B_INVOICE"
)

// OrderID accepts both string and numeric ids from the commerce API.
type OrderID string

func (id *OrderID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = OrderID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = OrderID(n.String())
	return nil
}

type Customer struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

// OrderItem is one order line. Product is nil when the API omitted the snapshot;
// ItemTotal is nil when no precomputed line total was sent.
type OrderItem struct {
	Product   *Product `json:"product"`
	Quantity  int      `json:"quantity"`
	ItemTotal *float64 `json:"item_total,omitempty"`
}

// LineTotal prefers the precomputed total and falls back to price * quantity.
func (it OrderItem) LineTotal() float64 {
	if it.ItemTotal != nil {
		return *it.ItemTotal
	}
	if it.Product == nil {
		return 0
	}
	return it.Product.Price * float64(it.Quantity)
}

type Order struct {
	ID        OrderID     `json:"id"`
	CreatedAt string      `json:"created_at"`
	Status    string      `json:"status"`
	Total     float64     `json:"total"`
	Customer  *Customer   `json:"customer,omitempty"`
	Items     []OrderItem `json:"items"`
}

func (o Order) IsB2B() bool {
	return o.Status == StatusConfirmedB2B
}

// City returns the customer city, or "" when the order has no customer.
func (o Order) City() string {
	if o.Customer == nil {
		return ""
	}
	return strings.TrimSpace(o.Customer.City)
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// CreatedTime parses CreatedAt. Timestamps without a zone are read as UTC.
func (o Order) CreatedTime() (time.Time, bool) {
	s := strings.TrimSpace(o.CreatedAt)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
