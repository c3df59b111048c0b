package store

import (
	"context"
	"fmt"

	"github.com/naruemon65/storefront-sync/internal/catalog"
)

// ListProducts fetches the whole products collection.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var out []catalog.Product
	if err := c.do(ctx, "GET", "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct stores a new product. The id is assigned by the store:
// any id on p is dropped from the request body.
func (c *Client) CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	p.ID = 0
	var out catalog.Product
	if err := c.do(ctx, "POST", "/products", p, &out); err != nil {
		return catalog.Product{}, err
	}
	return out, nil
}

// UpdateProduct replaces the product stored under id. The body carries
// everything but the id, which is taken from the path.
func (c *Client) UpdateProduct(ctx context.Context, id int, p catalog.Product) (catalog.Product, error) {
	p.ID = 0
	var out catalog.Product
	if err := c.do(ctx, "PUT", fmt.Sprintf("/products/%d", id), p, &out); err != nil {
		return catalog.Product{}, err
	}
	return out, nil
}

// DeleteProduct removes the product stored under id.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/products/%d", id), nil, nil)
}
