package lifecycle

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// GateReason - машинная причина отказа платёжного шлюза.
type GateReason string

// GateReasonOutOfStock - в заказе есть позиции без остатка.
const GateReasonOutOfStock GateReason = "OUT_OF_STOCK"

// GateDecision - результат проверки перед сменой статуса оплаты.
type GateDecision struct {
	Allowed bool
	Reason  GateReason
	// Blocking - позиции, которые нужно дозаказать или убрать.
	Blocking []string
}

// CanUpdatePaymentStatus не даёт принять оплату за заказ, который нельзя собрать.
func CanUpdatePaymentStatus(order domain.Order) GateDecision {
	missing := order.OutOfStockItems()
	if len(missing) == 0 {
		return GateDecision{Allowed: true}
	}
	ids := make([]string, 0, len(missing))
	for _, item := range missing {
		ids = append(ids, item.ID)
	}
	return GateDecision{Reason: GateReasonOutOfStock, Blocking: ids}
}

var paymentTransitions = map[domain.PaymentStatus][]domain.PaymentStatus{
	domain.PaymentStatusPending: {domain.PaymentStatusSuccess, domain.PaymentStatusFailed},
	domain.PaymentStatusFailed:  {domain.PaymentStatusPending},
	domain.PaymentStatusSuccess: {domain.PaymentStatusRefunded},
}

// ApplyPaymentStatus меняет статус оплаты. Шлюз по остаткам проверяется
// только при уходе из PENDING. Возврат денег возможен только по заказу в
// терминальном статусе: иначе заказ остался бы без допустимых переходов.
func ApplyPaymentStatus(order domain.Order, requested domain.PaymentStatus, now time.Time) (domain.Order, error) {
	if !requested.Valid() {
		return domain.Order{}, domain.Invalid("payment status %q is not supported", requested)
	}

	allowed := false
	for _, candidate := range paymentTransitions[order.PaymentStatus] {
		if candidate == requested {
			allowed = true
			break
		}
	}
	if !allowed {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidPaymentTransition, order.PaymentStatus, requested)
	}
	if requested == domain.PaymentStatusRefunded && !order.Status.IsTerminal() {
		return domain.Order{}, fmt.Errorf("%w: order %s is %s, cancel or refund it first",
			domain.ErrInvalidPaymentTransition, order.ID, order.Status)
	}

	if order.PaymentStatus == domain.PaymentStatusPending {
		if decision := CanUpdatePaymentStatus(order); !decision.Allowed {
			return domain.Order{}, fmt.Errorf("%w: items %v", domain.ErrOutOfStockBlock, decision.Blocking)
		}
	}

	next := order.Clone()
	next.PaymentStatus = requested
	next.UpdatedAt = now
	return next, nil
}
