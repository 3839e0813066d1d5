package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/app"
	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/version"
)

const (
	envGRPCAddr            = "CHECKOUT_GRPC_ADDR"
	envMetricsAddr         = "CHECKOUT_METRICS_ADDR"
	envPostgresDSN         = "CHECKOUT_POSTGRES_DSN"
	envPostgresAutoMigrate = "CHECKOUT_POSTGRES_AUTO_MIGRATE"
	envRedisAddr           = "CHECKOUT_REDIS_ADDR"
	envRedisPassword       = "CHECKOUT_REDIS_PASSWORD"
	envRedisDB             = "CHECKOUT_REDIS_DB"
	envKafkaBrokers        = "CHECKOUT_KAFKA_BROKERS"
	envKafkaGroupID        = "CHECKOUT_KAFKA_GROUP_ID"
	envJobFeedEnabled      = "CHECKOUT_JOB_FEED_ENABLED"
	envCouponsFile         = "CHECKOUT_COUPONS_FILE"
	envTaxRate             = "CHECKOUT_TAX_RATE"
	envShippingRates       = "CHECKOUT_SHIPPING_RATES"
	envOutboxPollInterval  = "CHECKOUT_OUTBOX_POLL_INTERVAL"
	envOutboxBatchSize     = "CHECKOUT_OUTBOX_BATCH_SIZE"
	envLogLevel            = "CHECKOUT_LOG_LEVEL"
)

type lookupFunc func(string) (string, bool)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger(lookup lookupFunc) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level := log.InfoLevel
	if raw, ok := lookup(envLogLevel); ok && strings.TrimSpace(raw) != "" {
		if parsed, err := log.ParseLevel(strings.TrimSpace(raw)); err == nil {
			level = parsed
		}
	}
	log.SetLevel(level)
}

// readConfigFromEnv накладывает переменные окружения на DefaultConfig.
// Некорректные значения не валят запуск: остаётся значение по умолчанию,
// а проблема возвращается как предупреждение.
func readConfigFromEnv(lookup lookupFunc) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string
	warn := func(key, raw string, err error) {
		warnings = append(warnings, fmt.Sprintf("%s=%q ignored: %v", key, raw, err))
	}

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(envGRPCAddr, &cfg.GRPCAddr)
	str(envMetricsAddr, &cfg.MetricsAddr)
	str(envPostgresDSN, &cfg.PostgresDSN)
	str(envRedisAddr, &cfg.RedisAddr)
	str(envRedisPassword, &cfg.RedisPassword)
	str(envKafkaGroupID, &cfg.KafkaGroupID)
	str(envCouponsFile, &cfg.CouponsFile)

	if raw, ok := lookup(envPostgresAutoMigrate); ok {
		if value, err := parseBool(raw); err != nil {
			warn(envPostgresAutoMigrate, raw, err)
		} else {
			cfg.PostgresAutoMigrate = value
		}
	}
	if raw, ok := lookup(envJobFeedEnabled); ok {
		if value, err := parseBool(raw); err != nil {
			warn(envJobFeedEnabled, raw, err)
		} else {
			cfg.JobFeedEnabled = value
		}
	}
	if raw, ok := lookup(envRedisDB); ok {
		if value, err := strconv.Atoi(strings.TrimSpace(raw)); err != nil || value < 0 {
			warn(envRedisDB, raw, errors.New("expected non-negative integer"))
		} else {
			cfg.RedisDB = value
		}
	}
	if raw, ok := lookup(envKafkaBrokers); ok {
		cfg.KafkaBrokers = splitList(raw)
	}
	if raw, ok := lookup(envTaxRate); ok {
		if rate, err := decimal.NewFromString(strings.TrimSpace(raw)); err != nil {
			warn(envTaxRate, raw, err)
		} else {
			cfg.TaxRate = rate
		}
	}
	if raw, ok := lookup(envShippingRates); ok {
		if err := parseShippingRates(raw, cfg.ShippingRates); err != nil {
			warn(envShippingRates, raw, err)
		}
	}
	if raw, ok := lookup(envOutboxPollInterval); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(raw)); err != nil || d <= 0 {
			warn(envOutboxPollInterval, raw, errors.New("expected positive duration"))
		} else {
			cfg.OutboxPoll = d
		}
	}
	if raw, ok := lookup(envOutboxBatchSize); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err != nil || n <= 0 {
			warn(envOutboxBatchSize, raw, errors.New("expected positive integer"))
		} else {
			cfg.OutboxBatchSize = n
		}
	}

	return cfg, warnings
}

// parseShippingRates разбирает "STANDARD=1500,EXPRESS=3500" поверх тарифов по умолчанию.
// При ошибке rates не меняются.
func parseShippingRates(raw string, rates map[domain.ShippingMethod]int64) error {
	parsed := make(map[domain.ShippingMethod]int64)
	for _, pair := range splitList(raw) {
		method, fee, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("expected METHOD=FEE, got %q", pair)
		}
		shipping := domain.ShippingMethod(strings.ToUpper(strings.TrimSpace(method)))
		if !shipping.Valid() {
			return fmt.Errorf("unknown shipping method %q", method)
		}
		value, err := strconv.ParseInt(strings.TrimSpace(fee), 10, 64)
		if err != nil || value < 0 {
			return fmt.Errorf("fee for %s must be a non-negative integer", shipping)
		}
		parsed[shipping] = value
	}
	for method, fee := range parsed {
		rates[method] = fee
	}
	return nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, errors.New("expected boolean")
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	setupLogger(os.LookupEnv)
	cfg, warnings := readConfigFromEnv(os.LookupEnv)
	for _, warning := range warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(version.Fields("checkout-service")).WithFields(log.Fields{
		"grpc_addr":    cfg.GRPCAddr,
		"metrics_addr": cfg.MetricsAddr,
		"postgres":     cfg.PostgresDSN != "",
		"redis":        cfg.RedisAddr != "",
		"kafka":        len(cfg.KafkaBrokers) > 0,
	}).Info("запускаем CheckoutService")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("CheckoutService остановлен")
}
