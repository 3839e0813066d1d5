package lifecycle

import (
	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// Timeline отображает историю статусов заказа: синтетическая запись
// "Order placed", затем сохранённые события в порядке добавления.
// История восстанавливается только отсюда, не из текущего статуса.
func Timeline(order domain.Order) []domain.OrderStatusEvent {
	out := make([]domain.OrderStatusEvent, 0, len(order.Timeline)+1)
	out = append(out, placed(order))
	for _, event := range order.Timeline {
		if event.Synthetic() {
			continue
		}
		out = append(out, event)
	}
	return out
}

// RecordTransition дописывает событие и возвращает полную последовательность.
func RecordTransition(order domain.Order, event domain.OrderStatusEvent) ([]domain.OrderStatusEvent, error) {
	if event.OrderID != order.ID {
		return nil, domain.Invalid("event belongs to order %q, not %q", event.OrderID, order.ID)
	}
	if event.Synthetic() {
		return nil, domain.Invalid("event from_status is required")
	}
	if !event.ToStatus.Valid() {
		return nil, domain.Invalid("event to_status %q is not supported", event.ToStatus)
	}

	return append(Timeline(order), event), nil
}

func placed(order domain.Order) domain.OrderStatusEvent {
	return domain.OrderStatusEvent{
		OrderID:   order.ID,
		ToStatus:  domain.OrderStatusPending,
		Message:   domain.OrderPlacedMessage,
		CreatedAt: order.CreatedAt,
	}
}
