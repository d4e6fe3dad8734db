package catalog

import "github.com/fjod/storefront/internal/domain"

// Listing holds the filter state of one listing view. Every change to a
// filter or to the sort key sends the view back to page 1.
type Listing struct {
	q Query
}

func NewListing() *Listing {
	return &Listing{q: DefaultQuery()}
}

// NewListingFrom starts a listing from q as-is, page included.
func NewListingFrom(q Query) *Listing {
	if q.Sort == "" {
		q.Sort = SortNewest
	}
	return &Listing{q: q}
}

func (l *Listing) Query() Query { return l.q }

func (l *Listing) SetSearch(s string) {
	l.q.Search = s
	l.q.Page = 1
}

func (l *Listing) SetCategory(c string) {
	l.q.Category = c
	l.q.Page = 1
}

func (l *Listing) SetBrand(b string) {
	l.q.Brand = b
	l.q.Page = 1
}

func (l *Listing) SetPriceRange(minPrice, maxPrice float64) {
	l.q.MinPrice = minPrice
	l.q.MaxPrice = maxPrice
	l.q.Page = 1
}

func (l *Listing) SetMinRating(r float64) {
	l.q.MinRating = r
	l.q.Page = 1
}

func (l *Listing) SetInStockOnly(v bool) {
	l.q.InStockOnly = v
	l.q.Page = 1
}

func (l *Listing) SetSort(k SortKey) {
	l.q.Sort = k
	l.q.Page = 1
}

func (l *Listing) SetPage(page int) {
	l.q.Page = page
}

// View derives the current page from a product snapshot.
func (l *Listing) View(products []domain.Product) Page {
	return Apply(products, l.q)
}
