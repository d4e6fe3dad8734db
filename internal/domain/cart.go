package domain

type CartItem struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	ItemTotal float64 `json:"item_total"`
}

type Cart struct {
	Items         []CartItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	DiscountTotal float64    `json:"discount_total"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
}

// Count is the number of units across all cart lines.
func (c *Cart) Count() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

type WishlistItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity,omitempty"`
}

type Wishlist struct {
	Items []WishlistItem `json:"items"`
}

func (w *Wishlist) Count() int {
	if w == nil {
		return 0
	}
	return len(w.Items)
}
