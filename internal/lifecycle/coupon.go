package lifecycle

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// ConditionEvaluator вычисляет дополнительное условие купона над корзиной.
type ConditionEvaluator interface {
	Eval(expression string, cart domain.Cart) (bool, error)
}

// CouponEngine применяет и снимает купоны. Ввода-вывода нет: купон находит вызывающий код.
type CouponEngine struct {
	conditions ConditionEvaluator
}

// NewCouponEngine создаёт движок. Без evaluator'а купоны с условием не применяются.
func NewCouponEngine(conditions ConditionEvaluator) *CouponEngine {
	return &CouponEngine{conditions: conditions}
}

// Apply применяет купон к корзине. coupon == nil означает, что код не найден в каталоге.
func (e *CouponEngine) Apply(cart domain.Cart, coupon *domain.Coupon, now time.Time) (domain.Cart, error) {
	if cart.Locked() {
		return domain.Cart{}, domain.ErrCartLocked
	}
	if coupon == nil {
		return domain.Cart{}, fmt.Errorf("%w: not found", domain.ErrInvalidCode)
	}
	if err := e.Eligible(cart, *coupon, now); err != nil {
		return domain.Cart{}, err
	}
	if cart.HasCoupon() {
		return domain.Cart{}, domain.ErrAlreadyApplied
	}

	next := cart.Clone()
	id := coupon.ID
	next.CouponID = &id
	next.CouponCode = coupon.Code
	next.DiscountMinor = Discount(*coupon, next.SubtotalMinor)
	return RecomputeTotals(next), nil
}

// Eligible проверяет, подходит ли купон корзине прямо сейчас.
func (e *CouponEngine) Eligible(cart domain.Cart, coupon domain.Coupon, now time.Time) error {
	if !coupon.UsableAt(now) {
		return fmt.Errorf("%w: %s is inactive or expired", domain.ErrInvalidCode, coupon.Code)
	}
	if cart.SubtotalMinor < coupon.MinSubtotalMinor {
		return fmt.Errorf("%w: %s requires subtotal of at least %d", domain.ErrInvalidCode, coupon.Code, coupon.MinSubtotalMinor)
	}
	if coupon.Condition == "" {
		return nil
	}
	if e == nil || e.conditions == nil {
		return fmt.Errorf("%w: %s has a condition that cannot be evaluated", domain.ErrInvalidCode, coupon.Code)
	}
	ok, err := e.conditions.Eval(coupon.Condition, cart)
	if err != nil {
		return fmt.Errorf("%w: %s condition: %v", domain.ErrInvalidCode, coupon.Code, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s conditions are not met", domain.ErrInvalidCode, coupon.Code)
	}
	return nil
}

// Discount считает скидку купона от subtotal. Результат не превышает subtotal.
func Discount(coupon domain.Coupon, subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}

	var amount int64
	switch coupon.Kind {
	case domain.CouponKindFixed:
		amount = coupon.AmountMinor
	case domain.CouponKindPercentage:
		// Round(0) округляет половину от нуля, для неотрицательных сумм это half-up.
		amount = decimal.NewFromInt(subtotal).Mul(coupon.Rate).Round(0).IntPart()
	}

	return clamp(amount, 0, subtotal)
}

// RemoveCoupon снимает купон. Повторный вызов ничего не меняет.
func RemoveCoupon(cart domain.Cart) domain.Cart {
	next := cart.Clone()
	next.CouponID = nil
	next.CouponCode = ""
	next.DiscountMinor = 0
	return RecomputeTotals(next)
}

// RecomputeTotals пересчитывает total по полному набору полей, а не инкрементально.
// Сначала вычитается скидка, затем кошелёк; wallet_used не изменяется.
func RecomputeTotals(cart domain.Cart) domain.Cart {
	next := cart
	next.DiscountMinor = clamp(next.DiscountMinor, 0, max(next.SubtotalMinor, 0))
	total := next.SubtotalMinor + next.ShippingFeeMinor + next.TaxMinor - next.DiscountMinor - next.WalletUsedMinor
	next.TotalMinor = max(total, 0)
	return next
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
