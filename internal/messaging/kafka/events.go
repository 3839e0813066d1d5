package kafka

import (
	"time"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// EventType определяет тип события заказа в топике.
type EventType string

const (
	EventTypeOrderPlaced               EventType = "order.placed"
	EventTypeOrderStatusChanged        EventType = "order.status_changed"
	EventTypeOrderPaymentStatusChanged EventType = "order.payment_status_changed"
	EventTypeOrderItemReturned         EventType = "order.item_returned"
)

// Topics для Kafka
const (
	TopicOrderEvents     = "checkout.order.events"
	TopicJobEvents       = "checkout.jobs"
	TopicDeadLetterQueue = "checkout.dlq"
)

// Kafka headers
const (
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
	HeaderEventType     = "x-event-type"
)

// outboxEventTypes сопоставляет типы outbox-сообщений с типами событий топика.
var outboxEventTypes = map[string]EventType{
	domain.EventOrderPlaced:               EventTypeOrderPlaced,
	domain.EventOrderStatusChanged:        EventTypeOrderStatusChanged,
	domain.EventOrderPaymentStatusChanged: EventTypeOrderPaymentStatusChanged,
	domain.EventOrderItemReturned:         EventTypeOrderItemReturned,
}

// EventTypeForOutbox возвращает тип события для outbox-сообщения.
// Неизвестные типы передаются как есть.
func EventTypeForOutbox(eventType string) EventType {
	if mapped, ok := outboxEventTypes[eventType]; ok {
		return mapped
	}
	return EventType(eventType)
}

// OrderEvent - снимок заказа после изменения.
type OrderEvent struct {
	EventType     EventType      `json:"event_type"`
	OrderID       string         `json:"order_id"`
	OrderNumber   string         `json:"order_number"`
	CustomerID    string         `json:"customer_id"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"payment_status"`
	Version       int64          `json:"version"`
	Timestamp     time.Time      `json:"timestamp"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// NewOrderEvent создаёт событие по текущему состоянию заказа.
func NewOrderEvent(eventType EventType, order domain.Order, metadata map[string]any) *OrderEvent {
	return &OrderEvent{
		EventType:     eventType,
		OrderID:       order.ID,
		OrderNumber:   order.Number,
		CustomerID:    order.CustomerID,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Version:       order.Version,
		Timestamp:     time.Now().UTC(),
		Metadata:      metadata,
	}
}

// JobEvent - сообщение ленты массовых операций в топике checkout.jobs.
type JobEvent struct {
	JobID      string    `json:"job_id"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDomain переводит сообщение в доменное событие.
func (e JobEvent) ToDomain() domain.JobStatusEvent {
	return domain.JobStatusEvent{
		JobID:      e.JobID,
		Kind:       e.Kind,
		Status:     domain.JobStatus(e.Status),
		Message:    e.Message,
		OccurredAt: e.OccurredAt,
	}
}
