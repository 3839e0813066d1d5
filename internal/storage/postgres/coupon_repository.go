package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

const couponColumns = `id, code, kind, amount_minor, rate, active, valid_from, valid_to,
	min_subtotal_minor, condition, created_at, updated_at`

type couponRepository struct {
	db *sql.DB
}

// NewCouponRepository создаёт PostgreSQL-реализацию CouponRepository.
func NewCouponRepository(store *Store) domain.CouponRepository {
	return &couponRepository{db: store.DB()}
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (domain.Coupon, error) {
	return r.getBy(ctx, "code", strings.ToUpper(strings.TrimSpace(code)))
}

func (r *couponRepository) GetByID(ctx context.Context, id string) (domain.Coupon, error) {
	return r.getBy(ctx, "id", id)
}

func (r *couponRepository) getBy(ctx context.Context, column, value string) (domain.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		coupon            domain.Coupon
		kind              string
		validFrom, validTo sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, `SELECT `+couponColumns+` FROM coupons WHERE `+column+` = $1`, value).Scan(
		&coupon.ID, &coupon.Code, &kind, &coupon.AmountMinor, &coupon.Rate, &coupon.Active,
		&validFrom, &validTo, &coupon.MinSubtotalMinor, &coupon.Condition,
		&coupon.CreatedAt, &coupon.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Coupon{}, domain.ErrCouponNotFound
		}
		return domain.Coupon{}, fmt.Errorf("select coupon: %w", err)
	}
	coupon.Kind = domain.CouponKind(kind)
	if validFrom.Valid {
		t := validFrom.Time.UTC()
		coupon.ValidFrom = &t
	}
	if validTo.Valid {
		t := validTo.Time.UTC()
		coupon.ValidTo = &t
	}
	return coupon, nil
}

// Upsert вставляет купон или обновляет его по идентификатору.
func (r *couponRepository) Upsert(ctx context.Context, coupon domain.Coupon) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	if errs := coupon.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if coupon.ID == "" {
		coupon.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if coupon.CreatedAt.IsZero() {
		coupon.CreatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO coupons (`+couponColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			code = EXCLUDED.code,
			kind = EXCLUDED.kind,
			amount_minor = EXCLUDED.amount_minor,
			rate = EXCLUDED.rate,
			active = EXCLUDED.active,
			valid_from = EXCLUDED.valid_from,
			valid_to = EXCLUDED.valid_to,
			min_subtotal_minor = EXCLUDED.min_subtotal_minor,
			condition = EXCLUDED.condition,
			updated_at = EXCLUDED.updated_at
	`,
		coupon.ID, coupon.Code, string(coupon.Kind), coupon.AmountMinor, coupon.Rate, coupon.Active,
		nullTime(coupon.ValidFrom), nullTime(coupon.ValidTo), coupon.MinSubtotalMinor, coupon.Condition,
		coupon.CreatedAt, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("upsert coupon: %w", err)
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

var _ domain.CouponRepository = (*couponRepository)(nil)
