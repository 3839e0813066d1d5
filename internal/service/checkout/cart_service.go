package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/lifecycle"
)

// CartPatch - частичное обновление полей оформления. nil-поля не меняются.
type CartPatch struct {
	ShippingMethod  *domain.ShippingMethod
	ShippingAddress *domain.Address
	BillingAddress  *domain.Address
	Phone           *string
	PaymentMethod   *domain.PaymentMethod
	WalletUsedMinor *int64
	// ExpectedVersion защищает от перезаписи чужих изменений.
	ExpectedVersion *int64
}

// CartService управляет корзиной до момента оформления заказа.
type CartService struct {
	deps   Dependencies
	cfg    Config
	engine *lifecycle.CouponEngine
	events eventEmitter
	logger *log.Entry
}

// NewCartService создаёт сервис корзины.
func NewCartService(deps Dependencies, cfg Config) *CartService {
	logger := deps.logger("cart-service")
	if cfg.ShippingRates == nil {
		cfg.ShippingRates = DefaultConfig().ShippingRates
	}
	return &CartService{
		deps:   deps,
		cfg:    cfg,
		engine: lifecycle.NewCouponEngine(deps.Conditions),
		events: eventEmitter{deps: deps, logger: logger},
		logger: logger,
	}
}

// OpenCart возвращает активную корзину клиента или создаёт новую.
// Анонимная сессия всегда получает новую корзину.
func (s *CartService) OpenCart(ctx context.Context, currency string) (domain.Cart, error) {
	customer := CustomerFromContext(ctx)
	if customer != "" {
		cart, err := s.deps.Carts.GetActiveByCustomer(ctx, customer)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, domain.ErrCartNotFound) {
			return domain.Cart{}, err
		}
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return domain.Cart{}, domain.Invalid("currency is required")
	}

	now := s.deps.now()
	cart := domain.Cart{
		ID:         uuid.NewString(),
		CustomerID: customer,
		Currency:   currency,
		Items:      []domain.CartItem{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.deps.Carts.Create(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("create cart: %w", err)
	}

	s.logger.WithFields(log.Fields{
		"cart_id":     cart.ID,
		"customer_id": customer,
	}).Info("cart opened")
	return cart, nil
}

// GetCart читает корзину с повторами при временных ошибках хранилища.
func (s *CartService) GetCart(ctx context.Context, id string) (domain.Cart, error) {
	cart, err := readWithRetry(ctx, s.cfg.Retry, s.logger, "get_cart", func(ctx context.Context) (domain.Cart, error) {
		return s.deps.Carts.Get(ctx, id)
	})
	if err != nil {
		return domain.Cart{}, err
	}
	if err := authorize(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// AddItem добавляет позицию; повторное добавление варианта увеличивает количество.
func (s *CartService) AddItem(ctx context.Context, cartID string, item domain.CartItem) (domain.Cart, error) {
	if item.Qty <= 0 {
		return domain.Cart{}, domain.Invalid("qty must be greater than zero")
	}
	if item.PriceMinor < 0 {
		return domain.Cart{}, domain.Invalid("price must be non-negative")
	}
	if item.VariantID == "" {
		return domain.Cart{}, domain.Invalid("variant_id is required")
	}

	return s.mutate(ctx, domain.OperationUpdateCart, cartID, nil, func(cart domain.Cart) (domain.Cart, error) {
		for i := range cart.Items {
			if cart.Items[i].VariantID == item.VariantID {
				cart.Items[i].Qty += item.Qty
				return cart, nil
			}
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		cart.Items = append(cart.Items, item)
		return cart, nil
	})
}

// ChangeItemQuantity меняет количество позиции; 0 удаляет её из корзины.
func (s *CartService) ChangeItemQuantity(ctx context.Context, cartID, itemID string, qty int32) (domain.Cart, error) {
	if qty < 0 {
		return domain.Cart{}, domain.Invalid("qty must be non-negative")
	}

	return s.mutate(ctx, domain.OperationUpdateCart, cartID, nil, func(cart domain.Cart) (domain.Cart, error) {
		for i := range cart.Items {
			if cart.Items[i].ID != itemID {
				continue
			}
			if qty == 0 {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			} else {
				cart.Items[i].Qty = qty
			}
			return cart, nil
		}
		return domain.Cart{}, domain.Invalid("item %q is not in the cart", itemID)
	})
}

// UpdateCartDetails применяет изменения шагов DELIVERY, ADDRESS и PAYMENT.
func (s *CartService) UpdateCartDetails(ctx context.Context, cartID string, patch CartPatch) (domain.Cart, error) {
	if err := validatePatch(patch); err != nil {
		return domain.Cart{}, err
	}

	return s.mutate(ctx, domain.OperationUpdateCart, cartID, patch.ExpectedVersion, func(cart domain.Cart) (domain.Cart, error) {
		if patch.ShippingMethod != nil {
			method := *patch.ShippingMethod
			cart.ShippingMethod = &method
		}
		if patch.ShippingAddress != nil {
			cart.ShippingAddress = ownedAddress(*patch.ShippingAddress, cart.CustomerID)
		}
		if patch.BillingAddress != nil {
			cart.BillingAddress = ownedAddress(*patch.BillingAddress, cart.CustomerID)
		}
		if patch.Phone != nil {
			phone := strings.TrimSpace(*patch.Phone)
			cart.Phone = &phone
		}
		if patch.PaymentMethod != nil {
			method := *patch.PaymentMethod
			cart.PaymentMethod = &method
		}
		if patch.WalletUsedMinor != nil {
			cart.WalletUsedMinor = *patch.WalletUsedMinor
		}
		return cart, nil
	})
}

// ApplyCoupon применяет купон по коду.
func (s *CartService) ApplyCoupon(ctx context.Context, cartID, code string) (domain.Cart, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domain.Cart{}, fmt.Errorf("%w: empty code", domain.ErrInvalidCode)
	}

	cart, err := s.mutate(ctx, domain.OperationApplyCoupon, cartID, nil, func(cart domain.Cart) (domain.Cart, error) {
		coupon, err := s.lookupCoupon(ctx, code)
		if err != nil {
			return domain.Cart{}, err
		}
		cart, err = s.totals(cart)
		if err != nil {
			return domain.Cart{}, err
		}
		return s.engine.Apply(cart, coupon, s.deps.now())
	})
	s.deps.Metrics.RecordCoupon(err)
	return cart, err
}

// RemoveCoupon снимает купон; без купона ничего не меняется.
func (s *CartService) RemoveCoupon(ctx context.Context, cartID string) (domain.Cart, error) {
	return s.mutate(ctx, domain.OperationRemoveCoupon, cartID, nil, func(cart domain.Cart) (domain.Cart, error) {
		return lifecycle.RemoveCoupon(cart), nil
	})
}

// Progress вычисляет текущий шаг оформления и пройденные шаги.
func (s *CartService) Progress(ctx context.Context, cartID string) (lifecycle.CheckoutProgress, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return lifecycle.CheckoutProgress{}, err
	}
	return lifecycle.Progress(CustomerFromContext(ctx) != "", cart), nil
}

// PlaceOrder превращает корзину на шаге PAYMENT в заказ и блокирует корзину.
func (s *CartService) PlaceOrder(ctx context.Context, cartID string) (domain.Order, error) {
	start := time.Now()
	defer func() { s.deps.Metrics.ObserveOperation(domain.OperationPlaceOrder, time.Since(start)) }()

	order, err := s.placeOrder(ctx, cartID)
	if err != nil {
		s.deps.Metrics.RecordRejection(domain.OperationPlaceOrder, err)
		return domain.Order{}, err
	}
	return order, nil
}

func (s *CartService) placeOrder(ctx context.Context, cartID string) (domain.Order, error) {
	customer := CustomerFromContext(ctx)
	if customer == "" {
		return domain.Order{}, domain.Invalid("checkout is at step %s", lifecycle.StepAuth)
	}

	cart, err := s.deps.Carts.Get(ctx, cartID)
	if err != nil {
		return domain.Order{}, err
	}
	if err := authorize(ctx, cart); err != nil {
		return domain.Order{}, err
	}
	if cart.Locked() {
		return domain.Order{}, domain.ErrCartLocked
	}
	cart.CustomerID = customer

	hadCoupon := cart.HasCoupon()
	cart, err = s.reprice(ctx, cart)
	if err != nil {
		return domain.Order{}, err
	}
	if hadCoupon && !cart.HasCoupon() {
		return domain.Order{}, fmt.Errorf("%w: coupon is no longer valid for this cart", domain.ErrInvalidCode)
	}

	if step := lifecycle.ResolveStep(true, cart); step != lifecycle.StepPayment {
		return domain.Order{}, domain.Invalid("checkout is at step %s", step)
	}
	if cart.PaymentMethod == nil {
		return domain.Order{}, domain.Invalid("payment method is required")
	}
	if len(cart.Items) == 0 {
		return domain.Order{}, domain.Invalid("cart is empty")
	}

	now := s.deps.now()
	order := s.buildOrder(ctx, cart, now)
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, errors.Join(errs...)
	}

	// Корзина блокируется до создания заказа: параллельный PlaceOrder
	// получит конфликт версии, а не второй заказ.
	cart.OrderID = order.ID
	cart.UpdatedAt = now
	if _, err := s.deps.Carts.Save(ctx, cart); err != nil {
		return domain.Order{}, fmt.Errorf("lock cart: %w", err)
	}

	if err := s.deps.Orders.Create(ctx, order); err != nil {
		if _, unlockErr := s.deps.Carts.Unlock(ctx, cart.ID, order.ID); unlockErr != nil {
			s.logger.WithError(unlockErr).WithFields(log.Fields{
				"cart_id":  cart.ID,
				"order_id": order.ID,
			}).Error("order was not created and cart stays locked")
		}
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	s.deps.Metrics.RecordOrderPlaced()
	s.events.orderPlaced(ctx, order)
	s.logger.WithFields(log.Fields{
		"cart_id":      cart.ID,
		"order_id":     order.ID,
		"order_number": order.Number,
		"total_minor":  order.TotalMinor,
	}).Info("order placed")

	return order, nil
}

func (s *CartService) buildOrder(ctx context.Context, cart domain.Cart, now time.Time) domain.Order {
	order := domain.Order{
		ID:               uuid.NewString(),
		Number:           newOrderNumber(now),
		CustomerID:       cart.CustomerID,
		CartID:           cart.ID,
		Currency:         cart.Currency,
		Status:           domain.OrderStatusPending,
		PaymentStatus:    domain.PaymentStatusPending,
		PaymentMethod:    *cart.PaymentMethod,
		CouponCode:       cart.CouponCode,
		SubtotalMinor:    cart.SubtotalMinor,
		DiscountMinor:    cart.DiscountMinor,
		ShippingFeeMinor: cart.ShippingFeeMinor,
		TaxMinor:         cart.TaxMinor,
		WalletUsedMinor:  cart.WalletUsedMinor,
		TotalMinor:       cart.TotalMinor,
		Items:            make([]domain.OrderItem, 0, len(cart.Items)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if cart.ShippingMethod != nil {
		order.ShippingMethod = *cart.ShippingMethod
	}
	if cart.ShippingAddress != nil && !cart.IsPickup() {
		addr := *cart.ShippingAddress
		order.ShippingAddress = &addr
	}
	if cart.BillingAddress != nil {
		addr := *cart.BillingAddress
		order.BillingAddress = &addr
	}
	if cart.Phone != nil {
		order.Phone = *cart.Phone
	}

	stock := s.stockSnapshot(ctx, cart.Items)
	for _, item := range cart.Items {
		inventory, ok := stock[item.VariantID]
		if !ok {
			inventory = int64(item.Qty)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ID:         item.ID,
			Name:       item.Name,
			Image:      item.Image,
			PriceMinor: item.PriceMinor,
			Qty:        item.Qty,
			VariantID:  item.VariantID,
			Variant:    &domain.VariantRef{ID: item.VariantID, Inventory: inventory},
		})
	}
	return order
}

// stockSnapshot запрашивает остатки. Без lookup или при его ошибке позиции
// считаются доступными в заказанном количестве; неизвестный lookup'у вариант
// получает нулевой остаток.
func (s *CartService) stockSnapshot(ctx context.Context, items []domain.CartItem) map[string]int64 {
	if s.deps.Inventory == nil {
		return nil
	}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.VariantID)
	}
	stock, err := s.deps.Inventory.Inventory(ctx, ids)
	if err != nil {
		s.logger.WithError(err).Warn("inventory lookup failed, using ordered quantities")
		return nil
	}
	out := make(map[string]int64, len(ids))
	for _, id := range ids {
		out[id] = stock[id]
	}
	return out
}

// mutate загружает корзину, применяет fn, пересчитывает суммы и сохраняет
// с проверкой версии.
func (s *CartService) mutate(
	ctx context.Context,
	op domain.Operation,
	cartID string,
	expectedVersion *int64,
	fn func(domain.Cart) (domain.Cart, error),
) (domain.Cart, error) {
	start := time.Now()
	defer func() { s.deps.Metrics.ObserveOperation(op, time.Since(start)) }()

	saved, err := s.apply(ctx, cartID, expectedVersion, fn)
	if err != nil {
		s.deps.Metrics.RecordRejection(op, err)
		s.logger.WithError(err).WithFields(log.Fields{
			"cart_id":   cartID,
			"operation": op,
		}).Debug("cart mutation rejected")
		return domain.Cart{}, err
	}
	return saved, nil
}

func (s *CartService) apply(ctx context.Context, cartID string, expectedVersion *int64, fn func(domain.Cart) (domain.Cart, error)) (domain.Cart, error) {
	cart, err := s.deps.Carts.Get(ctx, cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	if err := authorize(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	if cart.Locked() {
		return domain.Cart{}, domain.ErrCartLocked
	}
	if expectedVersion != nil && *expectedVersion != cart.Version {
		return domain.Cart{}, fmt.Errorf("%w: cart %s is at version %d", domain.ErrVersionConflict, cart.ID, cart.Version)
	}
	if customer := CustomerFromContext(ctx); cart.CustomerID == "" && customer != "" {
		cart.CustomerID = customer
	}

	next, err := fn(cart.Clone())
	if err != nil {
		return domain.Cart{}, err
	}
	next, err = s.reprice(ctx, next)
	if err != nil {
		return domain.Cart{}, err
	}
	if errs := next.Validate(); len(errs) > 0 {
		return domain.Cart{}, errors.Join(errs...)
	}
	next.UpdatedAt = s.deps.now()

	return s.deps.Carts.Save(ctx, next)
}

// reprice пересчитывает корзину целиком и перепроверяет применённый купон:
// купон, переставший подходить, снимается.
func (s *CartService) reprice(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	cart.SubtotalMinor = cart.ItemsSubtotal()
	if cart.HasCoupon() {
		coupon, err := s.appliedCoupon(ctx, *cart.CouponID)
		if err != nil {
			return domain.Cart{}, err
		}
		if coupon == nil || s.engine.Eligible(cart, *coupon, s.deps.now()) != nil {
			s.logger.WithFields(log.Fields{
				"cart_id":     cart.ID,
				"coupon_code": cart.CouponCode,
			}).Info("coupon no longer applies, removing")
			cart = lifecycle.RemoveCoupon(cart)
		} else {
			cart.DiscountMinor = lifecycle.Discount(*coupon, cart.SubtotalMinor)
		}
	}
	return s.totals(cart)
}

// totals пересчитывает subtotal, доставку, налог и итог без проверки купона.
func (s *CartService) totals(cart domain.Cart) (domain.Cart, error) {
	cart.SubtotalMinor = cart.ItemsSubtotal()
	cart.ShippingFeeMinor = s.cfg.ShippingRates.Fee(cart.ShippingMethod)
	cart = lifecycle.RecomputeTotals(cart)
	cart.TaxMinor = s.tax(cart.SubtotalMinor - cart.DiscountMinor)
	return lifecycle.RecomputeTotals(cart), nil
}

func (s *CartService) tax(base int64) int64 {
	if base <= 0 || s.cfg.TaxRate.IsZero() {
		return 0
	}
	return decimal.NewFromInt(base).Mul(s.cfg.TaxRate).Round(0).IntPart()
}

func (s *CartService) appliedCoupon(ctx context.Context, id string) (*domain.Coupon, error) {
	if s.deps.Coupons == nil {
		return nil, nil
	}
	coupon, err := s.deps.Coupons.GetByID(ctx, id)
	if errors.Is(err, domain.ErrCouponNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load applied coupon: %w", err)
	}
	return &coupon, nil
}

func (s *CartService) lookupCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	if s.deps.Coupons == nil {
		return nil, nil
	}
	coupon, err := s.deps.Coupons.GetByCode(ctx, code)
	if errors.Is(err, domain.ErrCouponNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup coupon: %w", err)
	}
	return &coupon, nil
}

// authorize скрывает чужие корзины за ErrCartNotFound.
func authorize(ctx context.Context, cart domain.Cart) error {
	if cart.CustomerID == "" {
		return nil
	}
	if cart.CustomerID != CustomerFromContext(ctx) {
		return domain.ErrCartNotFound
	}
	return nil
}

func validatePatch(patch CartPatch) error {
	var errs []error
	if patch.ShippingMethod != nil && !patch.ShippingMethod.Valid() {
		errs = append(errs, domain.Invalid("shipping method %q is not supported", *patch.ShippingMethod))
	}
	if patch.PaymentMethod != nil && !patch.PaymentMethod.Valid() {
		errs = append(errs, domain.Invalid("payment method %q is not supported", *patch.PaymentMethod))
	}
	if patch.ShippingAddress != nil {
		errs = append(errs, patch.ShippingAddress.Validate()...)
	}
	if patch.BillingAddress != nil {
		errs = append(errs, patch.BillingAddress.Validate()...)
	}
	if patch.WalletUsedMinor != nil && *patch.WalletUsedMinor < 0 {
		errs = append(errs, domain.Invalid("wallet_used must be non-negative"))
	}
	return errors.Join(errs...)
}

func ownedAddress(addr domain.Address, customerID string) *domain.Address {
	if addr.CustomerID == "" {
		addr.CustomerID = customerID
	}
	if addr.ID == "" {
		addr.ID = uuid.NewString()
	}
	return &addr
}
