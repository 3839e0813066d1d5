package domain

import "time"

// OrderPlacedMessage - подпись синтетической первой записи таймлайна.
const OrderPlacedMessage = "Order placed"

// OrderStatusEvent - неизменяемая запись о смене статуса заказа.
// Пустой FromStatus бывает только у синтетической записи "Order placed".
type OrderStatusEvent struct {
	OrderID    string      `json:"order_id"`
	FromStatus OrderStatus `json:"from_status,omitempty"`
	ToStatus   OrderStatus `json:"to_status"`
	Message    string      `json:"message,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Synthetic - запись не хранится, а выводится из Order.CreatedAt.
func (e OrderStatusEvent) Synthetic() bool {
	return e.FromStatus == ""
}
