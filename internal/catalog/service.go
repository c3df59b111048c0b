package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Remote is the product side of the remote store. The HTTP client in
// internal/store implements it.
type Remote interface {
	ListProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, p Product) (Product, error)
	UpdateProduct(ctx context.Context, id int, p Product) (Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

// CartSync receives edited products so denormalized cart entries stay
// consistent with the catalog. The cart service implements it.
type CartSync interface {
	SyncProduct(ctx context.Context, p Product) error
}

// Service owns the in-memory product collection. Loads replace the
// collection wholesale and drive a loading flag plus an error slot;
// mutations go to the remote store first and only land locally once
// confirmed.
type Service struct {
	remote  Remote
	cascade CartSync
	logger  *log.Logger

	mu       sync.RWMutex
	products []Product
	loading  bool
	err      error
}

// NewService builds a catalog service. cascade may be nil when no cart
// is attached; logger may be nil to use the process default.
func NewService(remote Remote, cascade CartSync, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{remote: remote, cascade: cascade, logger: logger}
}

// LoadProducts replaces the local product collection with the remote
// one. The error slot holds the failure of the most recent load and is
// cleared by the next successful one. Overlapping loads are not
// serialized; the last response to land wins.
func (s *Service) LoadProducts(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	products, err := s.remote.ListProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = fmt.Errorf("load products: %w", err)
		return s.err
	}
	s.products = products
	s.err = nil
	return nil
}

// Products returns a snapshot of the local product collection.
func (s *Service) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Loading reports whether a product load is in flight.
func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the failure of the last load, or nil.
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// AddProduct creates a product in the remote store and appends the
// server-assigned record to the local collection.
func (s *Service) AddProduct(ctx context.Context, p Product) (Product, error) {
	created, err := s.remote.CreateProduct(ctx, p)
	if err != nil {
		return Product{}, fmt.Errorf("add product: %w", err)
	}

	s.mu.Lock()
	s.products = append(s.products, created)
	s.mu.Unlock()
	return created, nil
}

// EditProduct replaces every field of a product except its id. After a
// successful update the change is cascaded into a matching cart entry;
// a cascade failure is only logged, it never rolls back the edit.
func (s *Service) EditProduct(ctx context.Context, p Product) (Product, error) {
	updated, err := s.remote.UpdateProduct(ctx, p.ID, p)
	if err != nil {
		return Product{}, fmt.Errorf("edit product: %w", err)
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == updated.ID {
			s.products[i] = updated
			break
		}
	}
	s.mu.Unlock()

	if s.cascade != nil {
		if err := s.cascade.SyncProduct(ctx, updated); err != nil {
			s.logger.Printf("warning: cart cascade for product %d failed: %v", updated.ID, err)
		}
	}
	return updated, nil
}

// DeleteProduct removes a product from the remote store and the local
// collection. A matching cart entry is deliberately left in place.
func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	if err := s.remote.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	return nil
}
