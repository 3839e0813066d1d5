package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// LifecycleMetrics содержит метрики корзины и жизненного цикла заказа.
type LifecycleMetrics struct {
	transitions      *prometheus.CounterVec
	paymentChanges   *prometheus.CounterVec
	guardRejections  *prometheus.CounterVec
	couponResults    *prometheus.CounterVec
	ordersPlaced     prometheus.Counter
	itemsReturned    prometheus.Counter
	timelineEvents   prometheus.Counter
	outboxEvents     prometheus.Counter
	jobEvents        *prometheus.CounterVec
	operationLatency *prometheus.HistogramVec
}

// NewLifecycleMetrics регистрирует метрики в DefaultRegisterer.
func NewLifecycleMetrics() *LifecycleMetrics {
	return NewLifecycleMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewLifecycleMetricsWithRegisterer регистрирует метрики в переданном registerer.
// Повторная регистрация переиспользует уже существующие коллекторы.
func NewLifecycleMetricsWithRegisterer(registerer prometheus.Registerer) *LifecycleMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &LifecycleMetrics{
		transitions: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_order_transitions_total",
			Help: "Total number of applied order status transitions",
		}, []string{"from", "to"})),
		paymentChanges: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_payment_status_changes_total",
			Help: "Total number of applied payment status changes",
		}, []string{"from", "to"})),
		guardRejections: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_guard_rejections_total",
			Help: "Total number of operations rejected by lifecycle guards",
		}, []string{"operation", "reason"})),
		couponResults: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_coupon_applications_total",
			Help: "Coupon application attempts by result",
		}, []string{"result"})),
		ordersPlaced: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checkout_orders_placed_total",
			Help: "Total number of carts converted into orders",
		})),
		itemsReturned: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checkout_items_returned_total",
			Help: "Total number of accepted item return requests",
		})),
		timelineEvents: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checkout_timeline_events_total",
			Help: "Total number of order timeline events recorded",
		})),
		outboxEvents: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checkout_outbox_events_total",
			Help: "Total number of events enqueued to the outbox",
		})),
		jobEvents: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_job_events_total",
			Help: "Bulk job status events by resulting status",
		}, []string{"status"})),
		operationLatency: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "checkout_operation_duration_seconds",
			Help:    "Duration of checkout operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"operation"})),
	}
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) T {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(T)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type %T", alreadyRegistered.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

// RecordTransition учитывает применённый переход статуса заказа.
func (m *LifecycleMetrics) RecordTransition(from, to domain.OrderStatus) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(string(from), string(to)).Inc()
	m.timelineEvents.Inc()
}

// RecordPaymentChange учитывает смену статуса оплаты.
func (m *LifecycleMetrics) RecordPaymentChange(from, to domain.PaymentStatus) {
	if m == nil {
		return
	}
	m.paymentChanges.WithLabelValues(string(from), string(to)).Inc()
}

// RecordRejection учитывает отказ guard'а. Reason берётся из domain.ReasonCode.
func (m *LifecycleMetrics) RecordRejection(op domain.Operation, err error) {
	if m == nil || err == nil {
		return
	}
	m.guardRejections.WithLabelValues(string(op), domain.ReasonCode(err)).Inc()
}

// RecordCoupon учитывает попытку применения купона.
func (m *LifecycleMetrics) RecordCoupon(err error) {
	if m == nil {
		return
	}
	result := "applied"
	if err != nil {
		result = domain.ReasonCode(err)
	}
	m.couponResults.WithLabelValues(result).Inc()
}

func (m *LifecycleMetrics) RecordOrderPlaced() {
	if m == nil {
		return
	}
	m.ordersPlaced.Inc()
	m.timelineEvents.Inc()
}

func (m *LifecycleMetrics) RecordItemReturned() {
	if m == nil {
		return
	}
	m.itemsReturned.Inc()
}

func (m *LifecycleMetrics) RecordOutboxEvent() {
	if m == nil {
		return
	}
	m.outboxEvents.Inc()
}

// RecordJobEvent учитывает событие ленты массовых операций.
func (m *LifecycleMetrics) RecordJobEvent(status domain.JobStatus) {
	if m == nil {
		return
	}
	m.jobEvents.WithLabelValues(string(status)).Inc()
}

// ObserveOperation записывает длительность операции.
func (m *LifecycleMetrics) ObserveOperation(op domain.Operation, duration time.Duration) {
	if m == nil {
		return
	}
	m.operationLatency.WithLabelValues(string(op)).Observe(duration.Seconds())
}
