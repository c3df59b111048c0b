package storeserver_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/naruemon65/storefront-sync/internal/cart"
	"github.com/naruemon65/storefront-sync/internal/catalog"
	"github.com/naruemon65/storefront-sync/internal/store"
	"github.com/naruemon65/storefront-sync/internal/storeserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drives the real HTTP client and both synchronizers against the real
// store server over a loopback listener.
func TestStorefrontAgainstRealServer(t *testing.T) {
	seed := []catalog.Product{{
		ID:              1,
		Name:            "Shirt",
		Image:           []catalog.Image{{URL: "/shirt.jpg", ThumbURL: "/shirt-t.jpg"}},
		Category:        "clothes",
		Price:           "100",
		Description:     "plain shirt",
		DateOfOrder:     "2024-11-02",
		SelectedOptions: []string{"Levis"},
		PaymentMethod:   catalog.PaymentOnline,
	}}
	repo := storeserver.NewInMemoryRepository(seed)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	storeserver.NewHandler(storeserver.NewService(repo)).RegisterRoutes(app)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	ctx := context.Background()
	client := store.NewClient("http://"+ln.Addr().String(), &http.Client{Timeout: 5 * time.Second})
	require.Eventually(t, func() bool {
		_, err := client.ListProducts(ctx)
		return err == nil
	}, 3*time.Second, 50*time.Millisecond, "store server did not come up")

	cartService := cart.NewService(client)
	catalogService := catalog.NewService(client, cartService, nil)

	require.NoError(t, catalogService.LoadProducts(ctx))
	require.Len(t, catalogService.Products(), 1)
	shirt := catalogService.Products()[0]

	// add twice: one entry, quantity 2
	_, err = cartService.AddToCart(ctx, shirt)
	require.NoError(t, err)
	_, err = cartService.AddToCart(ctx, shirt)
	require.NoError(t, err)
	require.Len(t, cartService.Items(), 1)
	assert.Equal(t, 2, cartService.Items()[0].Quantity)
	assert.Equal(t, "200", cartService.Subtotal().String())

	// a price edit cascades into the cart entry, quantity preserved
	shirt.Price = "150"
	_, err = catalogService.EditProduct(ctx, shirt)
	require.NoError(t, err)
	entry := cartService.Items()[0]
	assert.Equal(t, "150", entry.Price)
	assert.Equal(t, 2, entry.Quantity)
	remoteCart, err := client.ListCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, "150", remoteCart[0].Price)

	// deleting the product leaves the cart entry orphaned
	require.NoError(t, catalogService.DeleteProduct(ctx, shirt.ID))
	assert.Empty(t, catalogService.Products())
	remoteCart, err = client.ListCart(ctx)
	require.NoError(t, err)
	require.Len(t, remoteCart, 1)

	// decrement to 1, then confirm removal of the last unit
	require.NoError(t, cartService.ChangeQuantity(ctx, shirt.ID, -1))
	assert.Equal(t, "150", cartService.Subtotal().String())

	require.ErrorIs(t, cartService.ChangeQuantity(ctx, shirt.ID, -1), cart.ErrConfirmRemoval)
	require.NoError(t, cartService.ConfirmRemoval(ctx, shirt.ID))
	assert.Empty(t, cartService.Items())
	assert.Equal(t, "0", cartService.Subtotal().String())

	remoteCart, err = client.ListCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, remoteCart)
}
