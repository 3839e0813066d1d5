package checkout

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/messaging/kafka"
)

const aggregateOrder = "order"

type orderPlacedPayload struct {
	OrderID    string    `json:"order_id"`
	Number     string    `json:"number"`
	CustomerID string    `json:"customer_id"`
	CartID     string    `json:"cart_id"`
	Currency   string    `json:"currency"`
	TotalMinor int64     `json:"total_minor"`
	CouponCode string    `json:"coupon_code,omitempty"`
	PlacedAt   time.Time `json:"placed_at"`
}

type statusChangedPayload struct {
	OrderID string    `json:"order_id"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Message string    `json:"message,omitempty"`
	At      time.Time `json:"at"`
}

type itemReturnedPayload struct {
	OrderID string    `json:"order_id"`
	ItemID  string    `json:"item_id"`
	Reason  string    `json:"reason,omitempty"`
	At      time.Time `json:"at"`
}

// eventEmitter отправляет события заказа в outbox, а без него напрямую в Kafka.
// Ошибки публикации не откатывают уже сохранённое изменение.
type eventEmitter struct {
	deps   Dependencies
	logger *log.Entry
}

func (e eventEmitter) emit(ctx context.Context, order domain.Order, eventType string, payload any) {
	fields := log.Fields{
		"order_id":   order.ID,
		"event_type": eventType,
	}

	if e.deps.Outbox != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			e.logger.WithError(err).WithFields(fields).Error("failed to marshal outbox payload")
			return
		}
		if _, err := e.deps.Outbox.Enqueue(ctx, domain.OutboxMessage{
			AggregateType: aggregateOrder,
			AggregateID:   order.ID,
			EventType:     eventType,
			Payload:       body,
		}); err != nil {
			e.logger.WithError(err).WithFields(fields).Error("failed to enqueue outbox message")
			return
		}
		e.deps.Metrics.RecordOutboxEvent()
		return
	}

	if e.deps.Events == nil {
		return
	}
	event := kafka.NewOrderEvent(kafka.EventTypeForOutbox(eventType), order, map[string]any{"payload": payload})
	if err := e.deps.Events.PublishEvent(kafka.TopicOrderEvents, order.ID, event); err != nil {
		e.logger.WithError(err).WithFields(fields).Warn("failed to publish order event")
	}
}

func (e eventEmitter) orderPlaced(ctx context.Context, order domain.Order) {
	e.emit(ctx, order, domain.EventOrderPlaced, orderPlacedPayload{
		OrderID:    order.ID,
		Number:     order.Number,
		CustomerID: order.CustomerID,
		CartID:     order.CartID,
		Currency:   order.Currency,
		TotalMinor: order.TotalMinor,
		CouponCode: order.CouponCode,
		PlacedAt:   order.CreatedAt,
	})
}

func (e eventEmitter) statusChanged(ctx context.Context, order domain.Order, from domain.OrderStatus, message string) {
	e.emit(ctx, order, domain.EventOrderStatusChanged, statusChangedPayload{
		OrderID: order.ID,
		From:    string(from),
		To:      string(order.Status),
		Message: message,
		At:      order.UpdatedAt,
	})
}

func (e eventEmitter) paymentChanged(ctx context.Context, order domain.Order, from domain.PaymentStatus) {
	e.emit(ctx, order, domain.EventOrderPaymentStatusChanged, statusChangedPayload{
		OrderID: order.ID,
		From:    string(from),
		To:      string(order.PaymentStatus),
		At:      order.UpdatedAt,
	})
}

func (e eventEmitter) itemReturned(ctx context.Context, order domain.Order, ret domain.ReturnRequest) {
	e.emit(ctx, order, domain.EventOrderItemReturned, itemReturnedPayload{
		OrderID: order.ID,
		ItemID:  ret.ItemID,
		Reason:  ret.Reason,
		At:      ret.RequestedAt,
	})
}
