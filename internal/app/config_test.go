package app

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GRPCAddr != ":50051" {
		t.Errorf("expected GRPCAddr :50051, got %s", cfg.GRPCAddr)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("expected MetricsAddr :9090, got %s", cfg.MetricsAddr)
	}
	if !cfg.PostgresAutoMigrate {
		t.Error("expected PostgresAutoMigrate to be true")
	}
	if cfg.ShippingRates[domain.ShippingMethodExpress] != 3500 {
		t.Errorf("unexpected express fee %d", cfg.ShippingRates[domain.ShippingMethodExpress])
	}
	if !cfg.TaxRate.IsZero() {
		t.Errorf("tax should be disabled by default, got %s", cfg.TaxRate)
	}
	if cfg.OutboxPoll <= 0 || cfg.OutboxBatchSize <= 0 || cfg.OutboxMaxAttempt <= 0 {
		t.Error("outbox worker settings must be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]func(*Config){
		"empty grpc addr": func(c *Config) { c.GRPCAddr = "" },
		"negative tax":    func(c *Config) { c.TaxRate = decimal.RequireFromString("-0.1") },
		"tax of 100%":     func(c *Config) { c.TaxRate = decimal.NewFromInt(1) },
		"negative fee":    func(c *Config) { c.ShippingRates = map[domain.ShippingMethod]int64{domain.ShippingMethodStandard: -1} },
		"unknown method":  func(c *Config) { c.ShippingRates = map[domain.ShippingMethod]int64{"DRONE": 100} },
		"negative stock":  func(c *Config) { c.Stock = map[string]int64{"v-1": -2} },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestConfig_Pricing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TaxRate = decimal.RequireFromString("0.075")

	pricing := cfg.pricing()
	if !pricing.TaxRate.Equal(cfg.TaxRate) {
		t.Errorf("expected tax %s, got %s", cfg.TaxRate, pricing.TaxRate)
	}
	if pricing.ShippingRates[domain.ShippingMethodPickup] != 0 {
		t.Errorf("pickup must be free, got %d", pricing.ShippingRates[domain.ShippingMethodPickup])
	}
	if pricing.Retry.MaxAttempts != cfg.Retry.MaxAttempts {
		t.Errorf("retry settings are not propagated")
	}
}
