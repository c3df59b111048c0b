package main

import (
	"context"
	"log"

	"github.com/naruemon65/storefront-sync/internal/cart"
	"github.com/naruemon65/storefront-sync/internal/catalog"
	"github.com/naruemon65/storefront-sync/internal/config"
	"github.com/naruemon65/storefront-sync/internal/store"
)

// main wires the synchronizers against a running store server and
// prints the current state of both collections.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	client := store.NewClient(cfg.StoreBaseURL, nil)
	cartService := cart.NewService(client)
	catalogService := catalog.NewService(client, cartService, nil)

	if err := catalogService.LoadProducts(ctx); err != nil {
		log.Fatalf("load products: %v", err)
	}
	if err := cartService.LoadCart(ctx); err != nil {
		log.Fatalf("load cart: %v", err)
	}

	for _, p := range catalogService.Products() {
		log.Printf("product %d: %s (%s) %s", p.ID, p.Name, p.Category, p.Price)
	}
	for _, it := range cartService.Items() {
		log.Printf("cart %d: %s x%d @ %s", it.ID, it.Name, it.Quantity, it.Price)
	}
	log.Printf("subtotal: %s", cartService.Subtotal())
}
