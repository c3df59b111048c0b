package storeserver

import (
	"github.com/naruemon65/storefront-sync/internal/cart"
	"github.com/naruemon65/storefront-sync/internal/catalog"
)

// Service sits between the HTTP handler and the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProducts() []catalog.Product {
	return s.repo.ListProducts()
}

func (s *Service) GetProduct(id int) (catalog.Product, error) {
	return s.repo.GetProduct(id)
}

func (s *Service) CreateProduct(p catalog.Product) (catalog.Product, error) {
	return s.repo.CreateProduct(p)
}

func (s *Service) UpdateProduct(id int, p catalog.Product) (catalog.Product, error) {
	return s.repo.UpdateProduct(id, p)
}

func (s *Service) DeleteProduct(id int) error {
	return s.repo.DeleteProduct(id)
}

func (s *Service) ListCart() []cart.Item {
	return s.repo.ListCart()
}

func (s *Service) CreateCartEntry(it cart.Item) (cart.Item, error) {
	return s.repo.CreateCartEntry(it)
}

func (s *Service) UpdateCartEntry(id int, it cart.Item) (cart.Item, error) {
	return s.repo.UpdateCartEntry(id, it)
}

func (s *Service) DeleteCartEntry(id int) error {
	return s.repo.DeleteCartEntry(id)
}

// ResetStore replaces both collections (used for dev / seeding).
func (s *Service) ResetStore(products []catalog.Product, items []cart.Item) error {
	return s.repo.Reset(products, items)
}
