package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/storage/memory"
)

func newCart(id string, updated time.Time) domain.Cart {
	return domain.Cart{
		ID:         id,
		CustomerID: "customer-1",
		Currency:   "NGN",
		Items:      []domain.CartItem{{ID: "ci-1", VariantID: "v-1", PriceMinor: 1000, Qty: 1}},
		CreatedAt:  updated,
		UpdatedAt:  updated,
	}
}

func TestCartRepository_CreateSave(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCartRepository()
	cart := newCart("cart-1", time.Now().UTC())

	require.NoError(t, repo.Create(ctx, cart))
	assert.ErrorIs(t, repo.Create(ctx, cart), domain.ErrAlreadyExists)

	stored, err := repo.Get(ctx, cart.ID)
	require.NoError(t, err)
	stored.Items[0].Qty = 3

	saved, err := repo.Save(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)

	_, err = repo.Save(ctx, stored)
	assert.ErrorIs(t, err, domain.ErrVersionConflict, "stale version must be rejected")

	reloaded, err := repo.Get(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(3), reloaded.Items[0].Qty)
}

func TestCartRepository_LockedCartIsImmutable(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCartRepository()
	cart := newCart("cart-1", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, cart))

	cart.OrderID = "order-1"
	locked, err := repo.Save(ctx, cart)
	require.NoError(t, err)

	locked.TaxMinor = 10
	_, err = repo.Save(ctx, locked)
	assert.ErrorIs(t, err, domain.ErrCartLocked)
}

func TestCartRepository_Unlock(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCartRepository()
	cart := newCart("cart-1", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, cart))

	cart.OrderID = "order-1"
	_, err := repo.Save(ctx, cart)
	require.NoError(t, err)

	_, err = repo.Unlock(ctx, cart.ID, "order-2")
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	_, err = repo.Unlock(ctx, "missing", "order-1")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)

	unlocked, err := repo.Unlock(ctx, cart.ID, "order-1")
	require.NoError(t, err)
	assert.False(t, unlocked.Locked())
	assert.Equal(t, int64(2), unlocked.Version)

	unlocked.TaxMinor = 10
	_, err = repo.Save(ctx, unlocked)
	assert.NoError(t, err)
}

func TestCartRepository_GetActiveByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCartRepository()
	base := time.Now().UTC()

	old := newCart("cart-old", base)
	fresh := newCart("cart-new", base.Add(time.Minute))
	converted := newCart("cart-done", base.Add(time.Hour))
	converted.OrderID = "order-1"

	for _, c := range []domain.Cart{old, fresh, converted} {
		require.NoError(t, repo.Create(ctx, c))
	}

	active, err := repo.GetActiveByCustomer(ctx, "customer-1")
	require.NoError(t, err)
	assert.Equal(t, "cart-new", active.ID)

	_, err = repo.GetActiveByCustomer(ctx, "customer-2")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}
