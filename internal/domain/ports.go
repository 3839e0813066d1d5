package domain

import (
	"context"
	"time"
)

// InventoryLookup отдаёт актуальные остатки вариантов. Ядро работает только
// со снимком, поэтому lookup вызывается сервисом до проверки guard'ов.
type InventoryLookup interface {
	Inventory(ctx context.Context, variantIDs []string) (map[string]int64, error)
}

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository позволяет сохранять события для последующей публикации.
type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// JobTimelineRepository хранит ленту статусов массовых операций.
type JobTimelineRepository interface {
	Append(ctx context.Context, event JobStatusEvent) error
	List(ctx context.Context, jobID string) ([]JobStatusEvent, error)
}

// Operation задаёт константы операций для метрик/логов.
type Operation string

const (
	OperationUpdateCart    Operation = "update_cart"
	OperationApplyCoupon   Operation = "apply_coupon"
	OperationRemoveCoupon  Operation = "remove_coupon"
	OperationPlaceOrder    Operation = "place_order"
	OperationChangeStatus  Operation = "change_status"
	OperationChangePayment Operation = "change_payment"
	OperationReturnItem    Operation = "return_item"
)

// Типы событий outbox.
const (
	EventOrderPlaced               = "OrderPlaced"
	EventOrderStatusChanged        = "OrderStatusChanged"
	EventOrderPaymentStatusChanged = "OrderPaymentStatusChanged"
	EventOrderItemReturned         = "OrderItemReturned"
)

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// OutboxStats описывает текущее состояние backlog transactional outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
