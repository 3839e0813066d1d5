package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/lifecycle"
	"github.com/vladislavdragonenkov/checkout/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/checkout/internal/metrics"
)

// ShippingRates - стоимость доставки по способам, в минорных единицах.
type ShippingRates map[domain.ShippingMethod]int64

// Fee возвращает стоимость доставки. Самовывоз всегда бесплатный.
func (r ShippingRates) Fee(method *domain.ShippingMethod) int64 {
	if method == nil || *method == domain.ShippingMethodPickup {
		return 0
	}
	return r[*method]
}

// Config - параметры расчёта корзины.
type Config struct {
	ShippingRates ShippingRates
	// TaxRate - доля налога от subtotal за вычетом скидки, 0 отключает налог.
	TaxRate decimal.Decimal
	Retry   RetryConfig
}

// DefaultConfig возвращает тарифы по умолчанию.
func DefaultConfig() Config {
	return Config{
		ShippingRates: ShippingRates{
			domain.ShippingMethodStandard: 1500,
			domain.ShippingMethodExpress:  3500,
			domain.ShippingMethodPickup:   0,
		},
		TaxRate: decimal.Zero,
		Retry:   DefaultRetryConfig(),
	}
}

// Dependencies - порты, с которыми работают сервисы.
type Dependencies struct {
	Carts      domain.CartRepository
	Orders     domain.OrderRepository
	Coupons    domain.CouponRepository
	Outbox     domain.OutboxRepository
	Inventory  domain.InventoryLookup
	Conditions lifecycle.ConditionEvaluator
	// Events используется для прямой публикации, только если Outbox не задан.
	Events  kafka.EventPublisher
	Metrics *metrics.LifecycleMetrics
	Logger  *log.Entry
	Clock   func() time.Time
}

func (d Dependencies) now() time.Time {
	if d.Clock != nil {
		return d.Clock().UTC()
	}
	return time.Now().UTC()
}

func (d Dependencies) logger(component string) *log.Entry {
	if d.Logger != nil {
		return d.Logger.WithField("component", component)
	}
	return log.New().WithField("component", component)
}

type customerKey struct{}

// WithCustomer кладёт идентификатор аутентифицированного клиента в контекст.
func WithCustomer(ctx context.Context, customerID string) context.Context {
	return context.WithValue(ctx, customerKey{}, strings.TrimSpace(customerID))
}

// CustomerFromContext возвращает клиента сессии; пустая строка - анонимная сессия.
func CustomerFromContext(ctx context.Context) string {
	id, _ := ctx.Value(customerKey{}).(string)
	return id
}

// newOrderNumber формирует номер вида ORD-20261019-1A2B3C4D.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
