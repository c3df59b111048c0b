package storeserver

import (
	"errors"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/naruemon65/storefront-sync/internal/cart"
	"github.com/naruemon65/storefront-sync/internal/catalog"
)

// Handler exposes the two collections as REST resources:
// GET/POST on the collection, PUT/DELETE on /:id.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/products", h.listProducts)
	app.Post("/products", h.createProduct)
	app.Put("/products/:id", h.updateProduct)
	app.Delete("/products/:id", h.deleteProduct)

	app.Get("/cart", h.listCart)
	app.Post("/cart", h.createCartEntry)
	app.Put("/cart/:id", h.updateCartEntry)
	app.Delete("/cart/:id", h.deleteCartEntry)

	// dev-only endpoint to reset both collections — enabled when ALLOW_RESET=1
	app.Post("/dev/reset", h.resetStore)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.ListProducts())
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(catalog.Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := catalog.Validate(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}
	p.ID = 0

	created, err := h.service.CreateProduct(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	p := new(catalog.Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := catalog.Validate(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.UpdateProduct(id, *p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.DeleteProduct(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}

func (h *Handler) listCart(c *fiber.Ctx) error {
	return c.JSON(h.service.ListCart())
}

func validateCartPayload(it *cart.Item) map[string]string {
	errs := map[string]string{}
	if it.ID <= 0 {
		errs["id"] = "id must reference a product"
	}
	if it.Quantity < 1 {
		errs["quantity"] = "quantity must be >= 1"
	}
	return errs
}

func (h *Handler) createCartEntry(c *fiber.Ctx) error {
	it := new(cart.Item)
	if err := c.BodyParser(it); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateCartPayload(it); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.CreateCartEntry(*it)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "cart entry already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCartEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	it := new(cart.Item)
	if err := c.BodyParser(it); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if it.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fiber.Map{"quantity": "quantity must be >= 1"}})
	}

	updated, err := h.service.UpdateCartEntry(id, *it)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCartEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.DeleteCartEntry(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "cart entry deleted"})
}

type resetRequest struct {
	Products []catalog.Product `json:"products"`
	Cart     []cart.Item       `json:"cart"`
}

// resetStore clears both collections and inserts the provided records.
// Gated by the ALLOW_RESET environment variable; set it to "1" to allow.
func (h *Handler) resetStore(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_RESET") != "1" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "reset not allowed"})
	}

	req := new(resetRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.ResetStore(req.Products, req.Cart); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(req)
}
