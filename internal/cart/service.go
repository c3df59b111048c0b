package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/naruemon65/storefront-sync/internal/catalog"
	"github.com/shopspring/decimal"
)

// Remote is the slice of the remote store the cart service depends on.
// The HTTP client in internal/store implements it.
type Remote interface {
	ListCart(ctx context.Context) ([]Item, error)
	CreateCartEntry(ctx context.Context, it Item) (Item, error)
	UpdateCartEntry(ctx context.Context, id int, it Item) (Item, error)
	DeleteCartEntry(ctx context.Context, id int) error
}

// Service owns the in-memory cart collection and keeps it in sync with
// the remote store. Mutations are optimistic: the local change is
// applied first, the remote call confirms it, and a failed call rolls
// the local change back. All access to the collection goes through the
// service; remote calls are issued outside the lock, so two concurrent
// mutations of the same entry are not serialized against each other
// (last remote response wins the reconciliation).
type Service struct {
	remote Remote

	mu             sync.RWMutex
	items          []Item
	pendingRemoval map[int]Item
}

func NewService(remote Remote) *Service {
	return &Service{
		remote:         remote,
		pendingRemoval: make(map[int]Item),
	}
}

// LoadCart replaces the local collection wholesale with the remote
// one. No merge: the remote store wins.
func (s *Service) LoadCart(ctx context.Context) error {
	items, err := s.remote.ListCart(ctx)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return nil
}

// Items returns a snapshot of the cart collection in display order.
func (s *Service) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// AddToCart puts a product into the cart. The remote cart is re-read
// first: if an entry for the product already exists (locally visible
// or not), its quantity is incremented instead of creating a second
// entry. Nothing is added locally until the remote store confirms.
func (s *Service) AddToCart(ctx context.Context, p catalog.Product) (Item, error) {
	existing, err := s.remote.ListCart(ctx)
	if err != nil {
		return Item{}, fmt.Errorf("add to cart: %w", err)
	}

	for _, it := range existing {
		if it.ID != p.ID {
			continue
		}
		it.Quantity++
		updated, err := s.remote.UpdateCartEntry(ctx, it.ID, it)
		if err != nil {
			return Item{}, fmt.Errorf("add to cart: %w", err)
		}
		s.upsert(updated)
		return updated, nil
	}

	created, err := s.remote.CreateCartEntry(ctx, ItemFromProduct(p))
	if err != nil {
		return Item{}, fmt.Errorf("add to cart: %w", err)
	}
	s.upsert(created)
	return created, nil
}

// ChangeQuantity adjusts an entry's quantity by a signed delta. The
// local change is applied before the remote call and undone if the
// call fails. A delta that would take the quantity below 1 changes
// nothing and returns ErrConfirmRemoval; the entry is marked pending
// and removed only via ConfirmRemoval.
func (s *Service) ChangeQuantity(ctx context.Context, id int, delta int) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	it := s.items[idx]
	newQuantity := it.Quantity + delta
	if newQuantity < 1 {
		s.pendingRemoval[id] = it
		s.mu.Unlock()
		return ErrConfirmRemoval
	}
	s.items[idx].Quantity = newQuantity
	s.mu.Unlock()

	payload := it
	payload.Quantity = newQuantity
	updated, err := s.remote.UpdateCartEntry(ctx, id, payload)
	if err != nil {
		// compensate with the inverse delta; another operation may
		// have touched the entry in the meantime, so only the delta is
		// reverted rather than the whole snapshot restored
		s.mu.Lock()
		if i := s.indexOf(id); i >= 0 {
			s.items[i].Quantity -= delta
		}
		s.mu.Unlock()
		return fmt.Errorf("change quantity: %w", err)
	}

	s.upsert(updated)
	return nil
}

// RemoveItem deletes an entry. The entry disappears locally right
// away; if the remote delete fails it is re-inserted at its previous
// position with its previous quantity.
func (s *Service) RemoveItem(ctx context.Context, id int) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.pendingRemoval, id)
	s.mu.Unlock()

	if err := s.remote.DeleteCartEntry(ctx, id); err != nil {
		s.mu.Lock()
		if s.indexOf(id) < 0 {
			if idx > len(s.items) {
				idx = len(s.items)
			}
			s.items = append(s.items[:idx], append([]Item{removed}, s.items[idx:]...)...)
		}
		s.mu.Unlock()
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}

// HasPendingRemoval reports whether an entry is awaiting removal
// confirmation after a decrement below 1.
func (s *Service) HasPendingRemoval(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pendingRemoval[id]
	return ok
}

// ConfirmRemoval completes a pending removal. ErrNotFound is returned
// when no removal is pending for the id.
func (s *Service) ConfirmRemoval(ctx context.Context, id int) error {
	s.mu.Lock()
	_, ok := s.pendingRemoval[id]
	delete(s.pendingRemoval, id)
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	return s.RemoveItem(ctx, id)
}

// CancelRemoval drops a pending removal marker, leaving the entry at
// quantity 1.
func (s *Service) CancelRemoval(id int) {
	s.mu.Lock()
	delete(s.pendingRemoval, id)
	s.mu.Unlock()
}

// SyncProduct propagates edited product fields into a matching cart
// entry, preserving its quantity. The catalog service calls this after
// a successful product edit. The current remote cart is consulted, not
// the local copy, so entries created in another session are covered.
func (s *Service) SyncProduct(ctx context.Context, p catalog.Product) error {
	entries, err := s.remote.ListCart(ctx)
	if err != nil {
		return fmt.Errorf("sync product %d: %w", p.ID, err)
	}

	for _, it := range entries {
		if it.ID != p.ID {
			continue
		}
		it.Name = p.Name
		it.Price = p.Price
		it.Image = p.Image
		updated, err := s.remote.UpdateCartEntry(ctx, it.ID, it)
		if err != nil {
			return fmt.Errorf("sync product %d: %w", p.ID, err)
		}
		s.upsertIfPresent(updated)
		return nil
	}
	return nil
}

// Subtotal computes the monetary total of the local cart.
func (s *Service) Subtotal() decimal.Decimal {
	return Subtotal(s.Items())
}

// upsert replaces an entry with the server-confirmed record, appending
// when the entry is not present yet.
func (s *Service) upsert(it Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(it.ID); i >= 0 {
		s.items[i] = it
		return
	}
	s.items = append(s.items, it)
}

func (s *Service) upsertIfPresent(it Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(it.ID); i >= 0 {
		s.items[i] = it
	}
}

// indexOf is called with s.mu held.
func (s *Service) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
