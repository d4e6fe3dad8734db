package commerce

import (
	"context"
	"fmt"

	"github.com/fjod/storefront/internal/domain"
)

func (c *Client) ListProducts(ctx context.Context, params ProductParams) ([]domain.Product, error) {
	var res productsResponse
	if err := c.getJSON(ctx, "list_products", "/products", params.Values(), &res); err != nil {
		return nil, err
	}
	return decodeRecords[domain.Product](ctx, c, "list_products", res.Products), nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	if err := c.getJSON(ctx, "get_product", fmt.Sprintf("/products/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var res categoriesResponse
	if err := c.getJSON(ctx, "list_categories", "/categories", nil, &res); err != nil {
		return nil, err
	}
	return decodeRecords[domain.Category](ctx, c, "list_categories", res.Categories), nil
}
