package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

type couponRepositoryInMemory struct {
	mu     sync.RWMutex
	byID   map[string]domain.Coupon
	byCode map[string]string
}

// NewCouponRepository создаёт in-memory каталог купонов, опционально заполненный.
func NewCouponRepository(coupons ...domain.Coupon) (domain.CouponRepository, error) {
	repo := &couponRepositoryInMemory{
		byID:   make(map[string]domain.Coupon),
		byCode: make(map[string]string),
	}
	for _, coupon := range coupons {
		if err := repo.Upsert(context.Background(), coupon); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// NormalizeCode приводит код купона к каноническому виду: без пробелов, в верхнем регистре.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (r *couponRepositoryInMemory) GetByCode(_ context.Context, code string) (domain.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[NormalizeCode(code)]
	if !ok {
		return domain.Coupon{}, domain.ErrCouponNotFound
	}
	return r.byID[id], nil
}

func (r *couponRepositoryInMemory) GetByID(_ context.Context, id string) (domain.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coupon, ok := r.byID[id]
	if !ok {
		return domain.Coupon{}, domain.ErrCouponNotFound
	}
	return coupon, nil
}

// Upsert добавляет или заменяет купон. Код уникален в пределах каталога.
func (r *couponRepositoryInMemory) Upsert(_ context.Context, coupon domain.Coupon) error {
	coupon.Code = NormalizeCode(coupon.Code)
	if errs := coupon.Validate(); len(errs) > 0 {
		return errs[0]
	}
	if coupon.ID == "" {
		coupon.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.byCode[coupon.Code]; ok && owner != coupon.ID {
		return domain.ErrAlreadyExists
	}

	now := time.Now().UTC()
	if prev, ok := r.byID[coupon.ID]; ok {
		delete(r.byCode, prev.Code)
		coupon.CreatedAt = prev.CreatedAt
	} else if coupon.CreatedAt.IsZero() {
		coupon.CreatedAt = now
	}
	coupon.UpdatedAt = now

	r.byID[coupon.ID] = coupon
	r.byCode[coupon.Code] = coupon.ID
	return nil
}

var _ domain.CouponRepository = (*couponRepositoryInMemory)(nil)
