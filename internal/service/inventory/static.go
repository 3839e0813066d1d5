package inventory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// StaticLookup - InventoryLookup поверх таблицы остатков в памяти.
// Используется, когда складской сервис не подключён, и в тестах.
type StaticLookup struct {
	mu    sync.RWMutex
	stock map[string]int64
	Err   error
	Calls int
}

// NewStaticLookup создаёт lookup с начальными остатками.
func NewStaticLookup(stock map[string]int64) *StaticLookup {
	l := &StaticLookup{stock: make(map[string]int64, len(stock))}
	for id, qty := range stock {
		l.stock[id] = qty
	}
	return l
}

// Set задаёт остаток варианта.
func (l *StaticLookup) Set(variantID string, qty int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stock[variantID] = qty
}

// Inventory возвращает остатки известных вариантов; неизвестные в ответ не попадают.
func (l *StaticLookup) Inventory(ctx context.Context, variantIDs []string) (map[string]int64, error) {
	l.mu.Lock()
	l.Calls++
	err := l.Err
	l.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]int64, len(variantIDs))
	for _, id := range variantIDs {
		if qty, ok := l.stock[id]; ok {
			out[id] = qty
		}
	}
	return out, nil
}

var _ domain.InventoryLookup = (*StaticLookup)(nil)
