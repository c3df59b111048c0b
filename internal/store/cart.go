package store

import (
	"context"
	"fmt"

	"github.com/naruemon65/storefront-sync/internal/cart"
)

// ListCart fetches the whole cart collection.
func (c *Client) ListCart(ctx context.Context) ([]cart.Item, error) {
	var out []cart.Item
	if err := c.do(ctx, "GET", "/cart", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCartEntry stores a new cart entry. Cart entries share their id
// with the product they reference, so the id is sent as-is.
func (c *Client) CreateCartEntry(ctx context.Context, it cart.Item) (cart.Item, error) {
	var out cart.Item
	if err := c.do(ctx, "POST", "/cart", it, &out); err != nil {
		return cart.Item{}, err
	}
	return out, nil
}

// UpdateCartEntry replaces the cart entry stored under id.
func (c *Client) UpdateCartEntry(ctx context.Context, id int, it cart.Item) (cart.Item, error) {
	var out cart.Item
	if err := c.do(ctx, "PUT", fmt.Sprintf("/cart/%d", id), it, &out); err != nil {
		return cart.Item{}, err
	}
	return out, nil
}

// DeleteCartEntry removes the cart entry stored under id.
func (c *Client) DeleteCartEntry(ctx context.Context, id int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/cart/%d", id), nil, nil)
}
