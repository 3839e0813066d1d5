package app

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/service/checkout"
)

// Config описывает настройки запуска сервиса оформления заказов.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	// PostgresDSN включает хранение заказов, купонов, outbox и ленты задач в PostgreSQL.
	PostgresDSN         string
	PostgresAutoMigrate bool

	// RedisAddr включает хранение корзин в Redis.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	KafkaBrokers     []string
	KafkaGroupID     string
	JobFeedEnabled   bool
	CouponsFile      string
	Stock            map[string]int64
	ShippingRates    checkout.ShippingRates
	TaxRate          decimal.Decimal
	Retry            checkout.RetryConfig
	OutboxPoll       time.Duration
	OutboxBatchSize  int
	OutboxMaxAttempt int
	OutboxMaxLag     time.Duration
	ShutdownTimeout  time.Duration
}

// DefaultConfig возвращает конфигурацию для локального запуска без внешних зависимостей.
func DefaultConfig() Config {
	pricing := checkout.DefaultConfig()
	return Config{
		GRPCAddr:            ":50051",
		MetricsAddr:         ":9090",
		PostgresAutoMigrate: true,
		KafkaGroupID:        "checkout-service",
		JobFeedEnabled:      true,
		ShippingRates:       pricing.ShippingRates,
		TaxRate:             pricing.TaxRate,
		Retry:               pricing.Retry,
		OutboxPoll:          time.Second,
		OutboxBatchSize:     100,
		OutboxMaxAttempt:    3,
		OutboxMaxLag:        5 * time.Minute,
		ShutdownTimeout:     5 * time.Second,
	}
}

// Validate проверяет согласованность настроек до подключения к инфраструктуре.
func (c Config) Validate() error {
	var errs []error
	if c.GRPCAddr == "" {
		errs = append(errs, errors.New("grpc address is required"))
	}
	if c.TaxRate.IsNegative() || c.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		errs = append(errs, errors.New("tax rate must be in [0, 1)"))
	}
	for method, fee := range c.ShippingRates {
		if !method.Valid() {
			errs = append(errs, domain.Invalid("unknown shipping method %q", method))
		}
		if fee < 0 {
			errs = append(errs, domain.Invalid("shipping fee for %s must not be negative", method))
		}
	}
	for variant, qty := range c.Stock {
		if qty < 0 {
			errs = append(errs, domain.Invalid("stock for %s must not be negative", variant))
		}
	}
	return errors.Join(errs...)
}

func (c Config) pricing() checkout.Config {
	return checkout.Config{
		ShippingRates: c.ShippingRates,
		TaxRate:       c.TaxRate,
		Retry:         c.Retry,
	}
}
