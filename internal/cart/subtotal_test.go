package cart_test

import (
	"testing"

	"github.com/naruemon65/storefront-sync/internal/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []cart.Item
		want  string
	}{
		{
			name:  "empty cart",
			items: nil,
			want:  "0",
		},
		{
			name: "single entry",
			items: []cart.Item{
				{ID: 1, Price: "100", Quantity: 1},
			},
			want: "100",
		},
		{
			name: "multiple entries with fractions",
			items: []cart.Item{
				{ID: 1, Price: "100", Quantity: 1},
				{ID: 2, Price: "10.5", Quantity: 2},
			},
			want: "121",
		},
		{
			name: "malformed price contributes zero",
			items: []cart.Item{
				{ID: 1, Price: "not-a-number", Quantity: 3},
				{ID: 2, Price: "50", Quantity: 2},
			},
			want: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cart.Subtotal(tt.items)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

// Walks a whole shopping flow: add, increment, decrement, confirm
// removal. See the service tests for the individual rollback laws.
func TestCartFlowSubtotals(t *testing.T) {
	ctx := t.Context()
	remote := &fakeRemote{}
	svc := cart.NewService(remote)

	_, err := svc.AddToCart(ctx, shirt())
	require.NoError(t, err)
	assert.Equal(t, "100", svc.Subtotal().String())

	require.NoError(t, svc.ChangeQuantity(ctx, 1, 1))
	assert.Equal(t, "200", svc.Subtotal().String())

	require.NoError(t, svc.ChangeQuantity(ctx, 1, -1))
	assert.Equal(t, "100", svc.Subtotal().String())

	require.ErrorIs(t, svc.ChangeQuantity(ctx, 1, -1), cart.ErrConfirmRemoval)
	assert.Equal(t, "100", svc.Subtotal().String())

	require.NoError(t, svc.ConfirmRemoval(ctx, 1))
	assert.Equal(t, "0", svc.Subtotal().String())
	assert.Empty(t, svc.Items())
}
