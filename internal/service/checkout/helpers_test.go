package checkout

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/metrics"
	"github.com/vladislavdragonenkov/checkout/internal/rules"
	"github.com/vladislavdragonenkov/checkout/internal/service/inventory"
	"github.com/vladislavdragonenkov/checkout/internal/storage/memory"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

type fixture struct {
	deps     Dependencies
	outbox   *memory.OutboxRepository
	stock    *inventory.StaticLookup
	registry *prometheus.Registry
}

func newFixture(t *testing.T, coupons ...domain.Coupon) fixture {
	t.Helper()

	couponRepo, err := memory.NewCouponRepository(coupons...)
	require.NoError(t, err)
	evaluator, err := rules.NewEvaluator()
	require.NoError(t, err)

	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel)

	registry := prometheus.NewRegistry()
	outbox := memory.NewOutboxRepository()
	stock := inventory.NewStaticLookup(map[string]int64{"v-mug": 10, "v-plate": 4})

	return fixture{
		deps: Dependencies{
			Carts:      memory.NewCartRepository(),
			Orders:     memory.NewOrderRepository(),
			Coupons:    couponRepo,
			Outbox:     outbox,
			Inventory:  stock,
			Conditions: evaluator,
			Metrics:    metrics.NewLifecycleMetricsWithRegisterer(registry),
			Logger:     baseLogger.WithField("component", "checkout-test"),
			Clock:      func() time.Time { return testNow },
		},
		outbox:   outbox,
		stock:    stock,
		registry: registry,
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Retry = RetryConfig{MaxAttempts: 3, BackoffFactor: 2}
	return cfg
}

func percentCoupon(code string, rate string) domain.Coupon {
	return domain.Coupon{
		ID:     "coupon-" + code,
		Code:   code,
		Kind:   domain.CouponKindPercentage,
		Rate:   decimal.RequireFromString(rate),
		Active: true,
	}
}

func homeAddress() *domain.Address {
	return &domain.Address{
		Type:     domain.AddressTypeHome,
		FullName: "Ada Obi",
		Line1:    "1 Marina",
		City:     "Lagos",
		Country:  "NG",
	}
}

func counterValue(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := registry.Gather()
	require.NoError(t, err)
	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func ptr[T any](v T) *T {
	return &v
}
