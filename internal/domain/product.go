package domain

// BusinessPriceFactor is the demo discount shown to B2B-mode users.
const BusinessPriceFactor = 0.9

type Product struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	Price              float64 `json:"price"`
	OriginalPrice      float64 `json:"original_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Rating             float64 `json:"rating"`
	RatingCount        int     `json:"rating_count"`
	Brand              string  `json:"brand"`
	Category           string  `json:"category"`
	ImageURL           string  `json:"image_url"`
	Description        string  `json:"description"`
	InStock            bool    `json:"in_stock"`
}

// BusinessPrice returns the B2B price of p, or 0 for a nil product.
func BusinessPrice(p *Product) float64 {
	if p == nil {
		return 0
	}
	return p.Price * BusinessPriceFactor
}

type Category struct {
	Name string `json:"name"`
}
