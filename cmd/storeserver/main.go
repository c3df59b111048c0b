package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/naruemon65/storefront-sync/internal/catalog"
	"github.com/naruemon65/storefront-sync/internal/config"
	"github.com/naruemon65/storefront-sync/internal/storeserver"
)

// main wires the JSON store server: Postgres-backed when DATABASE_URL
// is set, in-memory with a small seed otherwise.
func main() {
	cfg := config.Load()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	var repo storeserver.Repository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatalf("ping database: %v", err)
		}
		if err := storeserver.EnsureSchema(db); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		repo = storeserver.NewPostgresRepository(db)
	} else {
		repo = storeserver.NewInMemoryRepository(seedProducts())
	}

	handler := storeserver.NewHandler(storeserver.NewService(repo))
	handler.RegisterRoutes(app)

	log.Printf("store server listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func seedProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:              1,
			Name:            "Denim Shirt",
			Image:           []catalog.Image{{URL: "/images/denim-shirt.jpg", ThumbURL: "/images/denim-shirt-thumb.jpg"}},
			Category:        "clothes",
			Price:           "1299",
			Description:     "Classic denim shirt",
			DateOfOrder:     "2024-11-02",
			SelectedOptions: []string{"Levis"},
			PaymentMethod:   catalog.PaymentCashOnDelivery,
		},
		{
			ID:              2,
			Name:            "Ceramic Vase",
			Image:           []catalog.Image{{URL: "/images/vase.jpg", ThumbURL: "/images/vase-thumb.jpg"}},
			Category:        "home decor",
			Price:           "549.50",
			Description:     "Hand-painted ceramic vase",
			DateOfOrder:     "2025-01-15",
			SelectedOptions: []string{"H&M", "Roadster"},
			PaymentMethod:   catalog.PaymentOnline,
		},
	}
}
