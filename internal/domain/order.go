package domain

import "time"

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending - заказ создан, обработка не начата.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusProcessing - заказ собирается на складе.
	OrderStatusProcessing OrderStatus = "PROCESSING"
	// OrderStatusShipped - передан в доставку.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusOutForDelivery - курьер везёт заказ клиенту.
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	// OrderStatusDelivered - вручён клиенту. Терминальный.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCanceled - отменён. Терминальный.
	OrderStatusCanceled OrderStatus = "CANCELED"
	// OrderStatusRefunded - деньги возвращены. Терминальный.
	OrderStatusRefunded OrderStatus = "REFUNDED"
)

// Valid проверяет, что статус заказа поддерживается.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCanceled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// IsTerminal сообщает, что из статуса нет переходов.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled || s == OrderStatusRefunded
}

// VariantRef - ссылка на живой складской вариант. Inventory - снимок остатка,
// переданный вместе с заказом; на цену не влияет.
type VariantRef struct {
	ID        string `json:"id"`
	Inventory int64  `json:"inventory"`
}

// OrderItem - замороженный снимок купленного варианта.
type OrderItem struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Image      string      `json:"image,omitempty"`
	PriceMinor int64       `json:"price_minor"`
	Qty        int32       `json:"qty"`
	VariantID  string      `json:"variant_id"`
	Variant    *VariantRef `json:"variant,omitempty"`
}

// InStock - у позиции есть хотя бы одна единица на складе.
func (i OrderItem) InStock() bool {
	return i.Variant != nil && i.Variant.Inventory >= 1
}

// ReturnRequest фиксирует возврат позиции. Сами позиции заказа не меняются.
type ReturnRequest struct {
	ItemID      string    `json:"item_id"`
	Reason      string    `json:"reason,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// Order - снимок оформленной корзины. Меняются только Status, PaymentStatus,
// Timeline и Returns (последние два только дописываются).
type Order struct {
	ID              string         `json:"id"`
	Number          string         `json:"number"`
	CustomerID      string         `json:"customer_id"`
	CartID          string         `json:"cart_id"`
	Currency        string         `json:"currency"`
	Status          OrderStatus    `json:"status"`
	PaymentStatus   PaymentStatus  `json:"payment_status"`
	ShippingMethod  ShippingMethod `json:"shipping_method"`
	PaymentMethod   PaymentMethod  `json:"payment_method"`
	ShippingAddress *Address       `json:"shipping_address,omitempty"`
	BillingAddress  *Address       `json:"billing_address,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	CouponCode      string         `json:"coupon_code,omitempty"`

	SubtotalMinor    int64 `json:"subtotal_minor"`
	DiscountMinor    int64 `json:"discount_minor"`
	ShippingFeeMinor int64 `json:"shipping_fee_minor"`
	TaxMinor         int64 `json:"tax_minor"`
	WalletUsedMinor  int64 `json:"wallet_used_minor"`
	TotalMinor       int64 `json:"total_minor"`

	Items    []OrderItem        `json:"items"`
	Timeline []OrderStatusEvent `json:"timeline"`
	Returns  []ReturnRequest    `json:"returns,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCashOnDeliveryPickup - самовывоз с оплатой при получении: статус может
// продвигаться при PaymentStatus = PENDING.
func (o *Order) IsCashOnDeliveryPickup() bool {
	return o.ShippingMethod == ShippingMethodPickup && o.PaymentMethod == PaymentMethodCashOnDelivery
}

// OutOfStockItems возвращает позиции, остаток которых меньше единицы.
func (o *Order) OutOfStockItems() []OrderItem {
	var out []OrderItem
	for _, item := range o.Items {
		if !item.InStock() {
			out = append(out, item)
		}
	}
	return out
}

// Item ищет позицию по идентификатору.
func (o *Order) Item(id string) (OrderItem, bool) {
	for _, item := range o.Items {
		if item.ID == id {
			return item, true
		}
	}
	return OrderItem{}, false
}

// Returned сообщает, оформлен ли уже возврат позиции.
func (o *Order) Returned(itemID string) bool {
	for _, r := range o.Returns {
		if r.ItemID == itemID {
			return true
		}
	}
	return false
}

// Clone копирует заказ вместе со срезами.
func (o Order) Clone() Order {
	out := o
	out.Items = make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		if item.Variant != nil {
			v := *item.Variant
			item.Variant = &v
		}
		out.Items[i] = item
	}
	out.Timeline = append([]OrderStatusEvent(nil), o.Timeline...)
	out.Returns = append([]ReturnRequest(nil), o.Returns...)
	if o.ShippingAddress != nil {
		v := *o.ShippingAddress
		out.ShippingAddress = &v
	}
	if o.BillingAddress != nil {
		v := *o.BillingAddress
		out.BillingAddress = &v
	}
	return out
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, Invalid("customer_id is required"))
	}
	if o.Currency == "" {
		errs = append(errs, Invalid("currency is required"))
	}
	if len(o.Items) == 0 {
		errs = append(errs, Invalid("order must contain at least one item"))
	}
	if !o.Status.Valid() {
		errs = append(errs, Invalid("status %q is not supported", o.Status))
	}
	if !o.PaymentStatus.Valid() {
		errs = append(errs, Invalid("payment status %q is not supported", o.PaymentStatus))
	}
	if o.TotalMinor < 0 {
		errs = append(errs, Invalid("total must be non-negative"))
	}
	if o.DiscountMinor > o.SubtotalMinor {
		errs = append(errs, Invalid("discount exceeds subtotal"))
	}

	// Сверяем subtotal с суммой позиций: qty * price.
	var calc int64
	for i, item := range o.Items {
		if item.Qty <= 0 {
			errs = append(errs, Invalid("item[%d] qty must be greater than zero", i))
		}
		if item.PriceMinor < 0 {
			errs = append(errs, Invalid("item[%d] price must be non-negative", i))
		}
		calc += int64(item.Qty) * item.PriceMinor
	}
	if calc != o.SubtotalMinor {
		errs = append(errs, Invalid("subtotal does not match items sum"))
	}

	return errs
}
