package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponKind определяет правило расчёта скидки.
type CouponKind string

const (
	// CouponKindFixed - фиксированная сумма, не больше subtotal.
	CouponKindFixed CouponKind = "FIXED"
	// CouponKindPercentage - доля subtotal (Rate от 0 до 1).
	CouponKindPercentage CouponKind = "PERCENTAGE"
)

// Coupon - купон каталога. Корзина хранит только CouponID.
type Coupon struct {
	ID          string
	Code        string
	Kind        CouponKind
	AmountMinor int64
	Rate        decimal.Decimal
	Active      bool
	ValidFrom   *time.Time
	ValidTo     *time.Time
	// MinSubtotalMinor - минимальная сумма корзины для применения.
	MinSubtotalMinor int64
	// Condition - необязательное CEL-выражение над полями корзины.
	Condition string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UsableAt - купон активен и попадает в окно действия.
func (c *Coupon) UsableAt(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidTo != nil && now.After(*c.ValidTo) {
		return false
	}
	return true
}

// Validate проверяет описание купона.
func (c *Coupon) Validate() []error {
	var errs []error

	if c.Code == "" {
		errs = append(errs, Invalid("coupon code is required"))
	}
	switch c.Kind {
	case CouponKindFixed:
		if c.AmountMinor < 0 {
			errs = append(errs, Invalid("coupon amount must be non-negative"))
		}
	case CouponKindPercentage:
		if c.Rate.IsNegative() || c.Rate.GreaterThan(decimal.NewFromInt(1)) {
			errs = append(errs, Invalid("coupon rate must be within [0, 1]"))
		}
	default:
		errs = append(errs, Invalid("coupon kind %q is not supported", c.Kind))
	}
	if c.MinSubtotalMinor < 0 {
		errs = append(errs, Invalid("coupon min subtotal must be non-negative"))
	}
	if c.ValidFrom != nil && c.ValidTo != nil && c.ValidTo.Before(*c.ValidFrom) {
		errs = append(errs, Invalid("coupon validity window is inverted"))
	}

	return errs
}
