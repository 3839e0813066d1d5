package lifecycle

import (
	"time"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// transitions - явная таблица допустимых переходов. Терминальные статусы в ней отсутствуют.
var transitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderStatusPending:        {domain.OrderStatusProcessing, domain.OrderStatusCanceled},
	domain.OrderStatusProcessing:     {domain.OrderStatusShipped, domain.OrderStatusCanceled, domain.OrderStatusRefunded},
	domain.OrderStatusShipped:        {domain.OrderStatusOutForDelivery, domain.OrderStatusRefunded},
	domain.OrderStatusOutForDelivery: {domain.OrderStatusDelivered, domain.OrderStatusRefunded},
}

// linear - единственный «следующий» статус счастливого пути.
var linear = map[domain.OrderStatus]domain.OrderStatus{
	domain.OrderStatusPending:        domain.OrderStatusProcessing,
	domain.OrderStatusProcessing:     domain.OrderStatusShipped,
	domain.OrderStatusShipped:        domain.OrderStatusOutForDelivery,
	domain.OrderStatusOutForDelivery: domain.OrderStatusDelivered,
}

// AllowedTransitions возвращает копию списка статусов, достижимых из current.
func AllowedTransitions(current domain.OrderStatus) []domain.OrderStatus {
	return append([]domain.OrderStatus(nil), transitions[current]...)
}

// CanTransition сверяется только с таблицей, без guard'ов.
func CanTransition(from, to domain.OrderStatus) bool {
	for _, candidate := range transitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// NextStatus возвращает следующий статус линейного пути.
// Для терминальных статусов второй результат false.
func NextStatus(current domain.OrderStatus) (domain.OrderStatus, bool) {
	next, ok := linear[current]
	return next, ok
}

// ApplyStatusTransition проверяет guard'ы и возвращает новый заказ с добавленной
// записью таймлайна. Исходный заказ не изменяется; при ошибке изменений нет вовсе.
func ApplyStatusTransition(order domain.Order, requested domain.OrderStatus, message string, now time.Time) (domain.Order, error) {
	fail := func(err error) (domain.Order, error) {
		return domain.Order{}, &domain.TransitionError{From: order.Status, To: requested, Err: err}
	}

	if order.Status.IsTerminal() {
		return fail(domain.ErrInvalidTransition)
	}
	if !requested.Valid() {
		return fail(domain.Invalid("status %q is not supported", requested))
	}
	if order.PaymentStatus != domain.PaymentStatusSuccess && !order.IsCashOnDeliveryPickup() {
		return fail(domain.ErrPaymentNotConfirmed)
	}
	if requested == domain.OrderStatusRefunded && order.PaymentStatus != domain.PaymentStatusSuccess {
		// Для самовывоза с наложенным платежом возвращать нечего, пока деньги не получены.
		return fail(domain.ErrPaymentNotConfirmed)
	}
	if order.Status == domain.OrderStatusPending && requested != domain.OrderStatusCanceled &&
		len(order.OutOfStockItems()) > 0 {
		return fail(domain.ErrOutOfStockBlock)
	}
	if !CanTransition(order.Status, requested) {
		return fail(domain.ErrInvalidTransition)
	}

	next := order.Clone()
	next.Status = requested
	next.UpdatedAt = now
	next.Timeline = append(next.Timeline, domain.OrderStatusEvent{
		OrderID:    order.ID,
		FromStatus: order.Status,
		ToStatus:   requested,
		Message:    message,
		CreatedAt:  now,
	})
	return next, nil
}

// AdvanceOrder переводит заказ на следующий линейный статус.
func AdvanceOrder(order domain.Order, message string, now time.Time) (domain.Order, error) {
	next, ok := NextStatus(order.Status)
	if !ok {
		return domain.Order{}, &domain.TransitionError{From: order.Status, To: order.Status, Err: domain.ErrInvalidTransition}
	}
	return ApplyStatusTransition(order, next, message, now)
}
