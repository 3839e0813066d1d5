package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/checkout/internal/health"
	"github.com/vladislavdragonenkov/checkout/internal/metrics"
	"github.com/vladislavdragonenkov/checkout/internal/rules"
	"github.com/vladislavdragonenkov/checkout/internal/service/checkout"
	"github.com/vladislavdragonenkov/checkout/internal/service/inventory"
	"github.com/vladislavdragonenkov/checkout/internal/service/jobs"
	"github.com/vladislavdragonenkov/checkout/internal/storage/memory"
	"github.com/vladislavdragonenkov/checkout/internal/storage/postgres"
	redisstore "github.com/vladislavdragonenkov/checkout/internal/storage/redis"
)

// runtimeDependencies - собранные хранилища и сервисы с функциями закрытия.
type runtimeDependencies struct {
	carts    domain.CartRepository
	orders   domain.OrderRepository
	coupons  domain.CouponRepository
	outbox   domain.OutboxRepository
	jobRepo  domain.JobTimelineRepository
	stock    domain.InventoryLookup
	rules    *rules.Evaluator
	metrics  *metrics.LifecycleMetrics
	checkers map[string]healthcheck.Checker
	closers  []func() error
}

// initRuntimeDependencies выбирает хранилища по конфигурации. Всё, что не
// настроено явно, живёт в памяти процесса.
func initRuntimeDependencies(ctx context.Context, cfg Config, registerer prometheus.Registerer, logger *log.Entry) (*runtimeDependencies, error) {
	evaluator, err := rules.NewEvaluator()
	if err != nil {
		return nil, fmt.Errorf("init coupon rules: %w", err)
	}

	catalog, err := loadCatalog(cfg.CouponsFile, evaluator)
	if err != nil {
		return nil, err
	}

	deps := &runtimeDependencies{
		carts:    memory.NewCartRepository(),
		orders:   memory.NewOrderRepository(),
		outbox:   memory.NewOutboxRepository(),
		jobRepo:  memory.NewJobTimelineRepository(),
		rules:    evaluator,
		metrics:  metrics.NewLifecycleMetricsWithRegisterer(registerer),
		checkers: make(map[string]healthcheck.Checker),
	}
	if cfg.Stock != nil {
		deps.stock = inventory.NewStaticLookup(cfg.Stock)
	}

	if cfg.PostgresDSN != "" {
		if err := deps.usePostgres(ctx, cfg, catalog, logger); err != nil {
			_ = deps.close()
			return nil, err
		}
	} else {
		coupons, err := memory.NewCouponRepository(catalog...)
		if err != nil {
			return nil, fmt.Errorf("init coupon catalog: %w", err)
		}
		deps.coupons = coupons
	}

	if cfg.RedisAddr != "" {
		client, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			_ = deps.close()
			return nil, fmt.Errorf("init redis: %w", err)
		}
		deps.carts = redisstore.NewCartRepository(client, cfg.RedisPrefix)
		deps.closers = append(deps.closers, client.Close)
		deps.checkers["redis"] = healthcheck.NewSimpleChecker("redis", func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		logger.WithField("addr", cfg.RedisAddr).Info("carts are stored in redis")
	}

	deps.checkers["outbox"] = healthcheck.NewOutboxBacklogChecker(deps.outbox, cfg.OutboxMaxLag)
	return deps, nil
}

func (d *runtimeDependencies) usePostgres(ctx context.Context, cfg Config, catalog []domain.Coupon, logger *log.Entry) error {
	store, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("init postgres: %w", err)
	}
	d.closers = append(d.closers, store.Close)

	if cfg.PostgresAutoMigrate {
		if err := store.MigrateUp(ctx, 0); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	d.orders = postgres.NewOrderRepository(store)
	d.coupons = postgres.NewCouponRepository(store)
	d.outbox = postgres.NewOutboxRepository(store)
	d.jobRepo = postgres.NewJobTimelineRepository(store)
	d.checkers["postgres"] = healthcheck.NewSimpleChecker("postgres", func(ctx context.Context) error {
		if err := store.Ping(ctx); err != nil {
			return err
		}
		state, err := store.MigrationStatus(ctx)
		if err != nil {
			return err
		}
		if !state.UpToDate() {
			return fmt.Errorf("pending migrations: %v", state.Pending)
		}
		return nil
	})

	for _, coupon := range catalog {
		if err := d.coupons.Upsert(ctx, coupon); err != nil {
			return fmt.Errorf("seed coupon %s: %w", coupon.Code, err)
		}
	}

	logger.WithField("coupons_seeded", len(catalog)).Info("postgres storage initialized")
	return nil
}

// checkoutDependencies собирает порты для сервисов оформления.
func (d *runtimeDependencies) checkoutDependencies(logger *log.Entry) checkout.Dependencies {
	return checkout.Dependencies{
		Carts:      d.carts,
		Orders:     d.orders,
		Coupons:    d.coupons,
		Outbox:     d.outbox,
		Inventory:  d.stock,
		Conditions: d.rules,
		Metrics:    d.metrics,
		Logger:     logger,
	}
}

func (d *runtimeDependencies) tracker(logger *log.Entry) *jobs.Tracker {
	return jobs.NewTracker(d.jobRepo, d.metrics, logger.WithField("component", "job-tracker"))
}

// close закрывает подключения в обратном порядке открытия.
func (d *runtimeDependencies) close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

func loadCatalog(path string, checker memory.ConditionChecker) ([]domain.Coupon, error) {
	if path == "" {
		return nil, nil
	}
	catalog, err := memory.LoadCouponCatalogFile(path, checker)
	if err != nil {
		return nil, fmt.Errorf("load coupon catalog: %w", err)
	}
	return catalog, nil
}
