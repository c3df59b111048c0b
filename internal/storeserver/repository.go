// Package storeserver implements the JSON store the synchronizers run
// against: a products collection and a cart collection, each exposed
// as a plain CRUD resource.
package storeserver

import (
	"errors"
	"sync"

	"github.com/naruemon65/storefront-sync/internal/cart"
	"github.com/naruemon65/storefront-sync/internal/catalog"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a cart entry for the product id already
	// exists. The cart holds at most one entry per product.
	ErrDuplicate = errors.New("cart entry already exists")
)

type Repository interface {
	ListProducts() []catalog.Product
	GetProduct(id int) (catalog.Product, error)
	CreateProduct(p catalog.Product) (catalog.Product, error)
	UpdateProduct(id int, p catalog.Product) (catalog.Product, error)
	DeleteProduct(id int) error

	ListCart() []cart.Item
	CreateCartEntry(it cart.Item) (cart.Item, error)
	UpdateCartEntry(id int, it cart.Item) (cart.Item, error)
	DeleteCartEntry(id int) error

	// Reset replaces both collections (used for dev / seeding).
	Reset(products []catalog.Product, items []cart.Item) error
}

// InMemoryRepository backs the store with plain slices. It is the
// default when no database is configured and is used throughout the
// tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []catalog.Product
	items    []cart.Item
	nextID   int
}

func NewInMemoryRepository(seed []catalog.Product) *InMemoryRepository {
	r := &InMemoryRepository{
		products: make([]catalog.Product, 0, len(seed)),
		nextID:   1,
	}
	maxID := 0
	for _, p := range seed {
		r.products = append(r.products, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) ListProducts() []catalog.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *InMemoryRepository) GetProduct(id int) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, ErrNotFound
}

func (r *InMemoryRepository) CreateProduct(p catalog.Product) (catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryRepository) UpdateProduct(id int, p catalog.Product) (catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p.ID = id
			r.products[i] = p
			return p, nil
		}
	}
	return catalog.Product{}, ErrNotFound
}

func (r *InMemoryRepository) DeleteProduct(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) ListCart() []cart.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]cart.Item, len(r.items))
	copy(out, r.items)
	return out
}

func (r *InMemoryRepository) CreateCartEntry(it cart.Item) (cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == it.ID {
			return cart.Item{}, ErrDuplicate
		}
	}
	r.items = append(r.items, it)
	return it, nil
}

func (r *InMemoryRepository) UpdateCartEntry(id int, it cart.Item) (cart.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			it.ID = id
			r.items[i] = it
			return it, nil
		}
	}
	return cart.Item{}, ErrNotFound
}

func (r *InMemoryRepository) DeleteCartEntry(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Reset replaces both collections with the provided records.
func (r *InMemoryRepository) Reset(products []catalog.Product, items []cart.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make([]catalog.Product, 0, len(products))
	maxID := 0
	for _, p := range products {
		if p.ID == 0 {
			p.ID = r.nextID
			r.nextID++
		}
		r.products = append(r.products, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	if maxID >= r.nextID {
		r.nextID = maxID + 1
	}
	r.items = make([]cart.Item, 0, len(items))
	r.items = append(r.items, items...)
	return nil
}
