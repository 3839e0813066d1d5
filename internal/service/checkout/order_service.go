package checkout

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/lifecycle"
)

const defaultListLimit = 50

// OrderView - заказ вместе с отображаемым таймлайном, включая запись о создании.
type OrderView struct {
	Order    domain.Order
	Timeline []domain.OrderStatusEvent
}

// ChangeStatusRequest - запрос администратора на смену статуса.
type ChangeStatusRequest struct {
	OrderID string
	Status  domain.OrderStatus
	Message string
	// ExpectedStatus, если задан, должен совпасть с текущим статусом заказа.
	ExpectedStatus domain.OrderStatus
}

// OrderService ведёт жизненный цикл оформленных заказов.
type OrderService struct {
	deps   Dependencies
	cfg    Config
	events eventEmitter
	logger *log.Entry
}

// NewOrderService создаёт сервис заказов.
func NewOrderService(deps Dependencies, cfg Config) *OrderService {
	logger := deps.logger("order-service")
	return &OrderService{
		deps:   deps,
		cfg:    cfg,
		events: eventEmitter{deps: deps, logger: logger},
		logger: logger,
	}
}

// GetOrder возвращает заказ с таймлайном. Клиент видит только свои заказы.
func (s *OrderService) GetOrder(ctx context.Context, id string) (OrderView, error) {
	order, err := readWithRetry(ctx, s.cfg.Retry, s.logger, "get_order", func(ctx context.Context) (domain.Order, error) {
		return s.deps.Orders.Get(ctx, id)
	})
	if err != nil {
		return OrderView{}, err
	}
	return s.view(ctx, order)
}

// GetOrderByNumber ищет заказ по человекочитаемому номеру.
func (s *OrderService) GetOrderByNumber(ctx context.Context, number string) (OrderView, error) {
	order, err := readWithRetry(ctx, s.cfg.Retry, s.logger, "get_order_by_number", func(ctx context.Context) (domain.Order, error) {
		return s.deps.Orders.GetByNumber(ctx, number)
	})
	if err != nil {
		return OrderView{}, err
	}
	return s.view(ctx, order)
}

// ListOrders возвращает заказы клиента из контекста, новые первыми.
func (s *OrderService) ListOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	customer := CustomerFromContext(ctx)
	if customer == "" {
		return nil, domain.Invalid("customer is required")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return readWithRetry(ctx, s.cfg.Retry, s.logger, "list_orders", func(ctx context.Context) ([]domain.Order, error) {
		return s.deps.Orders.ListByCustomer(ctx, customer, limit)
	})
}

// ChangeOrderStatus переводит заказ в запрошенный статус.
func (s *OrderService) ChangeOrderStatus(ctx context.Context, req ChangeStatusRequest) (domain.Order, error) {
	return s.transition(ctx, domain.OperationChangeStatus, req.OrderID, func(order domain.Order, now time.Time) (domain.Order, error) {
		if req.ExpectedStatus != "" && req.ExpectedStatus != order.Status {
			return domain.Order{}, fmt.Errorf("%w: order is %s, expected %s", domain.ErrVersionConflict, order.Status, req.ExpectedStatus)
		}
		return lifecycle.ApplyStatusTransition(order, req.Status, req.Message, now)
	})
}

// AdvanceOrder переводит заказ на следующий статус линейного пути.
func (s *OrderService) AdvanceOrder(ctx context.Context, orderID, message string) (domain.Order, error) {
	return s.transition(ctx, domain.OperationChangeStatus, orderID, func(order domain.Order, now time.Time) (domain.Order, error) {
		return lifecycle.AdvanceOrder(order, message, now)
	})
}

// ChangePaymentStatus применяет результат платёжного провайдера.
func (s *OrderService) ChangePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus) (domain.Order, error) {
	return s.transition(ctx, domain.OperationChangePayment, orderID, func(order domain.Order, now time.Time) (domain.Order, error) {
		return lifecycle.ApplyPaymentStatus(order, status, now)
	})
}

// ReturnOrderItem оформляет возврат позиции доставленного заказа.
func (s *OrderService) ReturnOrderItem(ctx context.Context, orderID, itemID, reason string) (domain.Order, error) {
	return s.transition(ctx, domain.OperationReturnItem, orderID, func(order domain.Order, now time.Time) (domain.Order, error) {
		if customer := CustomerFromContext(ctx); customer != "" && customer != order.CustomerID {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return lifecycle.RequestReturn(order, itemID, reason, now)
	})
}

// transition загружает заказ, обновляет снимок остатков, применяет fn и
// сохраняет результат с проверкой версии. События и метрики пишутся по
// разнице между старым и новым состоянием.
func (s *OrderService) transition(
	ctx context.Context,
	op domain.Operation,
	orderID string,
	fn func(domain.Order, time.Time) (domain.Order, error),
) (domain.Order, error) {
	start := time.Now()
	defer func() { s.deps.Metrics.ObserveOperation(op, time.Since(start)) }()

	fields := log.Fields{
		"order_id":  orderID,
		"operation": op,
	}

	order, err := s.deps.Orders.Get(ctx, orderID)
	if err != nil {
		s.deps.Metrics.RecordRejection(op, err)
		return domain.Order{}, err
	}
	order = s.refreshInventory(ctx, order)

	next, err := fn(order, s.deps.now())
	if err != nil {
		s.deps.Metrics.RecordRejection(op, err)
		s.logger.WithError(err).WithFields(fields).WithField("reason", domain.ReasonCode(err)).Info("order change rejected")
		return domain.Order{}, err
	}

	saved, err := s.deps.Orders.Save(ctx, next)
	if err != nil {
		s.deps.Metrics.RecordRejection(op, err)
		s.logger.WithError(err).WithFields(fields).Warn("failed to save order")
		return domain.Order{}, err
	}

	s.publishChanges(ctx, order, saved)
	s.logger.WithFields(fields).WithFields(log.Fields{
		"status":         saved.Status,
		"payment_status": saved.PaymentStatus,
		"version":        saved.Version,
	}).Info("order updated")
	return saved, nil
}

func (s *OrderService) publishChanges(ctx context.Context, before, after domain.Order) {
	if before.Status != after.Status {
		message := ""
		if n := len(after.Timeline); n > 0 {
			message = after.Timeline[n-1].Message
		}
		s.deps.Metrics.RecordTransition(before.Status, after.Status)
		s.events.statusChanged(ctx, after, before.Status, message)
	}
	if before.PaymentStatus != after.PaymentStatus {
		s.deps.Metrics.RecordPaymentChange(before.PaymentStatus, after.PaymentStatus)
		s.events.paymentChanged(ctx, after, before.PaymentStatus)
	}
	if len(after.Returns) > len(before.Returns) {
		for _, ret := range after.Returns[len(before.Returns):] {
			s.deps.Metrics.RecordItemReturned()
			s.events.itemReturned(ctx, after, ret)
		}
	}
}

// refreshInventory подставляет свежие остатки перед проверкой guard'ов.
// Ошибка lookup'а не блокирует операцию: используется сохранённый снимок.
func (s *OrderService) refreshInventory(ctx context.Context, order domain.Order) domain.Order {
	if s.deps.Inventory == nil || len(order.Items) == 0 {
		return order
	}
	ids := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		if item.Variant != nil {
			ids = append(ids, item.Variant.ID)
		}
	}
	if len(ids) == 0 {
		return order
	}

	stock, err := s.deps.Inventory.Inventory(ctx, ids)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("inventory lookup failed, using stored snapshot")
		return order
	}

	next := order.Clone()
	for i := range next.Items {
		variant := next.Items[i].Variant
		if variant == nil {
			continue
		}
		if qty, ok := stock[variant.ID]; ok {
			variant.Inventory = qty
		}
	}
	return next
}

func (s *OrderService) view(ctx context.Context, order domain.Order) (OrderView, error) {
	if customer := CustomerFromContext(ctx); customer != "" && customer != order.CustomerID {
		return OrderView{}, domain.ErrOrderNotFound
	}
	return OrderView{Order: order, Timeline: lifecycle.Timeline(order)}, nil
}
