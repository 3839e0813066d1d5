package lifecycle

import (
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// RequestReturn дописывает заявку на возврат позиции. Вернуть можно только
// позицию доставленного заказа со ссылкой на вариант и только один раз.
func RequestReturn(order domain.Order, itemID, reason string, now time.Time) (domain.Order, error) {
	if order.Status != domain.OrderStatusDelivered {
		return domain.Order{}, fmt.Errorf("%w: order is %s", domain.ErrReturnNotAllowed, order.Status)
	}
	item, ok := order.Item(itemID)
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: item %q is not part of the order", domain.ErrReturnNotAllowed, itemID)
	}
	if item.Variant == nil {
		return domain.Order{}, fmt.Errorf("%w: item %q has no variant reference", domain.ErrReturnNotAllowed, itemID)
	}
	if order.Returned(itemID) {
		return domain.Order{}, fmt.Errorf("%w: item %q is already returned", domain.ErrReturnNotAllowed, itemID)
	}

	next := order.Clone()
	next.Returns = append(next.Returns, domain.ReturnRequest{
		ItemID:      itemID,
		Reason:      reason,
		RequestedAt: now,
	})
	next.UpdatedAt = now
	return next, nil
}
