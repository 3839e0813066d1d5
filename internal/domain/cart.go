package domain

import "time"

// ShippingMethod - способ доставки, выбранный на шаге DELIVERY.
type ShippingMethod string

const (
	ShippingMethodStandard ShippingMethod = "STANDARD"
	ShippingMethodExpress  ShippingMethod = "EXPRESS"
	// ShippingMethodPickup - самовывоз, шаг адреса пропускается.
	ShippingMethodPickup ShippingMethod = "PICKUP"
)

// Valid проверяет, что способ доставки поддерживается.
func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingMethodStandard, ShippingMethodExpress, ShippingMethodPickup:
		return true
	default:
		return false
	}
}

// CartItem - позиция корзины. Цена ещё не заморожена.
type CartItem struct {
	ID         string `json:"id"`
	VariantID  string `json:"variant_id"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	PriceMinor int64  `json:"price_minor"`
	Qty        int32  `json:"qty"`
}

// Cart - изменяемый агрегат оформления заказа. Поля заполняются по мере
// прохождения шагов, после конвертации в заказ (OrderID != "") корзина неизменна.
type Cart struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	Currency        string          `json:"currency"`
	Items           []CartItem      `json:"items"`
	ShippingMethod  *ShippingMethod `json:"shipping_method,omitempty"`
	ShippingAddress *Address        `json:"shipping_address,omitempty"`
	BillingAddress  *Address        `json:"billing_address,omitempty"`
	Phone           *string         `json:"phone,omitempty"`
	PaymentMethod   *PaymentMethod  `json:"payment_method,omitempty"`

	// CouponID - слабая ссылка: удаление купона не портит корзину,
	// просто следующая валидация не пройдёт.
	CouponID   *string `json:"coupon_id,omitempty"`
	CouponCode string  `json:"coupon_code,omitempty"`

	DiscountMinor    int64 `json:"discount_minor"`
	SubtotalMinor    int64 `json:"subtotal_minor"`
	ShippingFeeMinor int64 `json:"shipping_fee_minor"`
	TaxMinor         int64 `json:"tax_minor"`
	WalletUsedMinor  int64 `json:"wallet_used_minor"`
	TotalMinor       int64 `json:"total_minor"`

	OrderID   string    `json:"order_id,omitempty"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Locked сообщает, что корзина уже конвертирована в заказ.
func (c *Cart) Locked() bool {
	return c.OrderID != ""
}

// HasCoupon сообщает, применён ли купон.
func (c *Cart) HasCoupon() bool {
	return c.CouponID != nil && *c.CouponID != ""
}

// IsPickup - выбран самовывоз.
func (c *Cart) IsPickup() bool {
	return c.ShippingMethod != nil && *c.ShippingMethod == ShippingMethodPickup
}

// ItemsSubtotal считает сумму позиций: qty * price.
func (c *Cart) ItemsSubtotal() int64 {
	var sum int64
	for _, item := range c.Items {
		sum += int64(item.Qty) * item.PriceMinor
	}
	return sum
}

// Clone возвращает глубокую копию корзины, чтобы чистые функции не мутировали вход.
func (c Cart) Clone() Cart {
	out := c
	if c.Items != nil {
		out.Items = make([]CartItem, len(c.Items))
		copy(out.Items, c.Items)
	}
	if c.ShippingMethod != nil {
		v := *c.ShippingMethod
		out.ShippingMethod = &v
	}
	if c.ShippingAddress != nil {
		v := *c.ShippingAddress
		out.ShippingAddress = &v
	}
	if c.BillingAddress != nil {
		v := *c.BillingAddress
		out.BillingAddress = &v
	}
	if c.Phone != nil {
		v := *c.Phone
		out.Phone = &v
	}
	if c.PaymentMethod != nil {
		v := *c.PaymentMethod
		out.PaymentMethod = &v
	}
	if c.CouponID != nil {
		v := *c.CouponID
		out.CouponID = &v
	}
	return out
}

// Validate проверяет базовые инварианты корзины и возвращает список замечаний.
func (c *Cart) Validate() []error {
	var errs []error

	if c.ID == "" {
		errs = append(errs, Invalid("cart id is required"))
	}
	if c.Currency == "" {
		errs = append(errs, Invalid("currency is required"))
	}
	for i, item := range c.Items {
		if item.Qty <= 0 {
			errs = append(errs, Invalid("item[%d] qty must be greater than zero", i))
		}
		if item.PriceMinor < 0 {
			errs = append(errs, Invalid("item[%d] price must be non-negative", i))
		}
		if item.VariantID == "" {
			errs = append(errs, Invalid("item[%d] variant_id is required", i))
		}
	}
	if c.ShippingMethod != nil && !c.ShippingMethod.Valid() {
		errs = append(errs, Invalid("shipping method %q is not supported", *c.ShippingMethod))
	}
	if c.PaymentMethod != nil && !c.PaymentMethod.Valid() {
		errs = append(errs, Invalid("payment method %q is not supported", *c.PaymentMethod))
	}

	amounts := []struct {
		name  string
		value int64
	}{
		{"subtotal", c.SubtotalMinor},
		{"shipping_fee", c.ShippingFeeMinor},
		{"tax", c.TaxMinor},
		{"discount", c.DiscountMinor},
		{"wallet_used", c.WalletUsedMinor},
	}
	for _, amount := range amounts {
		if amount.value < 0 {
			errs = append(errs, Invalid("%s must be non-negative", amount.name))
		}
	}
	if c.DiscountMinor > c.SubtotalMinor {
		errs = append(errs, Invalid("discount exceeds subtotal"))
	}
	if c.TotalMinor < 0 {
		errs = append(errs, Invalid("total must be non-negative"))
	}

	return errs
}
