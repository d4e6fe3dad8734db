package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListing_FilterChangeResetsPage(t *testing.T) {
	products := manyProducts(30)
	for i := range products {
		if i%2 == 0 {
			products[i].Category = "Books"
		} else {
			products[i].Category = "Toys"
		}
	}

	l := NewListing()
	l.SetPage(3)
	assert.Equal(t, 3, l.View(products).Page)

	l.SetCategory("Books")
	view := l.View(products)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 15, view.Total)
	assert.Equal(t, 2, view.PageCount)
}

func TestListing_EverySetterResetsPage(t *testing.T) {
	setters := map[string]func(l *Listing){
		"search":   func(l *Listing) { l.SetSearch("x") },
		"category": func(l *Listing) { l.SetCategory("Books") },
		"brand":    func(l *Listing) { l.SetBrand("Acme") },
		"price":    func(l *Listing) { l.SetPriceRange(10, 20) },
		"rating":   func(l *Listing) { l.SetMinRating(4) },
		"in stock": func(l *Listing) { l.SetInStockOnly(true) },
		"sort":     func(l *Listing) { l.SetSort(SortPriceAsc) },
	}
	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			l := NewListing()
			l.SetPage(4)
			set(l)
			assert.Equal(t, 1, l.Query().Page)
		})
	}
}

func TestListing_PageBeyondLastClamps(t *testing.T) {
	l := NewListing()
	l.SetPage(50)
	view := l.View(manyProducts(10))
	assert.Equal(t, 2, view.Page)
	assert.Len(t, view.Items, 2)
}

func TestNewListingFrom_DefaultsSort(t *testing.T) {
	q := DefaultQuery()
	q.Sort = ""
	q.Page = 2
	l := NewListingFrom(q)
	assert.Equal(t, SortNewest, l.Query().Sort)
	assert.Equal(t, 2, l.Query().Page)
}
