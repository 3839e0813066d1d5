package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

type cartRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Cart
}

// NewCartRepository возвращает in-memory репозиторий корзин.
func NewCartRepository() domain.CartRepository {
	return &cartRepositoryInMemory{items: make(map[string]domain.Cart)}
}

func (r *cartRepositoryInMemory) Create(_ context.Context, cart domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[cart.ID]; exists {
		return domain.ErrAlreadyExists
	}
	r.items[cart.ID] = cart.Clone()
	return nil
}

func (r *cartRepositoryInMemory) Get(_ context.Context, id string) (domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.items[id]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	return cart.Clone(), nil
}

// GetActiveByCustomer возвращает самую свежую корзину, ещё не ставшую заказом.
func (r *cartRepositoryInMemory) GetActiveByCustomer(_ context.Context, customerID string) (domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		found  domain.Cart
		exists bool
	)
	for _, cart := range r.items {
		if cart.CustomerID != customerID || cart.Locked() {
			continue
		}
		if !exists || cart.UpdatedAt.After(found.UpdatedAt) ||
			(cart.UpdatedAt.Equal(found.UpdatedAt) && cart.ID > found.ID) {
			found, exists = cart, true
		}
	}
	if !exists {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	return found.Clone(), nil
}

// Save перезаписывает корзину с проверкой версии. Конвертированная корзина не меняется.
func (r *cartRepositoryInMemory) Save(_ context.Context, cart domain.Cart) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[cart.ID]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if current.Version != cart.Version {
		return domain.Cart{}, domain.ErrVersionConflict
	}
	if current.Locked() {
		return domain.Cart{}, domain.ErrCartLocked
	}

	stored := cart.Clone()
	stored.Version++
	r.items[cart.ID] = stored
	return stored.Clone(), nil
}

func (r *cartRepositoryInMemory) Unlock(_ context.Context, id, orderID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if current.OrderID != orderID {
		return domain.Cart{}, domain.ErrVersionConflict
	}

	current.OrderID = ""
	current.Version++
	r.items[id] = current
	return current.Clone(), nil
}

var _ domain.CartRepository = (*cartRepositoryInMemory)(nil)
