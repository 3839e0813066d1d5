package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/lifecycle"
)

// CartServiceTestSuite проверяет оформление корзины от открытия до заказа.
type CartServiceTestSuite struct {
	suite.Suite
	fx       fixture
	service  *CartService
	customer context.Context
}

func (suite *CartServiceTestSuite) SetupTest() {
	big := domain.Coupon{
		ID:               "coupon-big",
		Code:             "BIG500",
		Kind:             domain.CouponKindFixed,
		AmountMinor:      500,
		Active:           true,
		MinSubtotalMinor: 2500,
	}
	bulk := percentCoupon("BULK", "0.2")
	bulk.Condition = "cart.item_count >= 3"

	suite.fx = newFixture(suite.T(), percentCoupon("SAVE10", "0.1"), big, bulk)
	suite.service = NewCartService(suite.fx.deps, testConfig())
	suite.customer = WithCustomer(context.Background(), "customer-1")
}

func (suite *CartServiceTestSuite) openWithMugs(qty int32) domain.Cart {
	cart, err := suite.service.OpenCart(suite.customer, "ngn")
	suite.Require().NoError(err)
	cart, err = suite.service.AddItem(suite.customer, cart.ID, domain.CartItem{
		VariantID: "v-mug", Name: "Mug", PriceMinor: 1000, Qty: qty,
	})
	suite.Require().NoError(err)
	return cart
}

func (suite *CartServiceTestSuite) readyForPayment() domain.Cart {
	cart := suite.openWithMugs(2)
	cart, err := suite.service.UpdateCartDetails(suite.customer, cart.ID, CartPatch{
		ShippingMethod:  ptr(domain.ShippingMethodStandard),
		ShippingAddress: homeAddress(),
		Phone:           ptr(" +2348000000000 "),
		PaymentMethod:   ptr(domain.PaymentMethodPaystack),
	})
	suite.Require().NoError(err)
	return cart
}

func (suite *CartServiceTestSuite) TestOpenCartReusesActiveCart() {
	first, err := suite.service.OpenCart(suite.customer, "ngn")
	suite.Require().NoError(err)
	suite.Equal("NGN", first.Currency)
	suite.Equal("customer-1", first.CustomerID)

	second, err := suite.service.OpenCart(suite.customer, "NGN")
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)

	anonymous, err := suite.service.OpenCart(context.Background(), "NGN")
	suite.Require().NoError(err)
	suite.NotEqual(first.ID, anonymous.ID)
	suite.Empty(anonymous.CustomerID)

	_, err = suite.service.OpenCart(suite.customer, " ")
	suite.ErrorIs(err, domain.ErrValidation)
}

func (suite *CartServiceTestSuite) TestAddItemMergesSameVariant() {
	cart := suite.openWithMugs(2)
	suite.Equal(int64(2000), cart.SubtotalMinor)
	suite.Equal(int64(2000), cart.TotalMinor)

	cart, err := suite.service.AddItem(suite.customer, cart.ID, domain.CartItem{
		VariantID: "v-mug", Name: "Mug", PriceMinor: 1000, Qty: 1,
	})
	suite.Require().NoError(err)
	suite.Require().Len(cart.Items, 1)
	suite.Equal(int32(3), cart.Items[0].Qty)
	suite.Equal(int64(3000), cart.SubtotalMinor)

	_, err = suite.service.AddItem(suite.customer, cart.ID, domain.CartItem{VariantID: "v-mug", PriceMinor: 1000})
	suite.ErrorIs(err, domain.ErrValidation)
}

func (suite *CartServiceTestSuite) TestChangeItemQuantity() {
	cart := suite.openWithMugs(2)
	itemID := cart.Items[0].ID

	cart, err := suite.service.ChangeItemQuantity(suite.customer, cart.ID, itemID, 5)
	suite.Require().NoError(err)
	suite.Equal(int64(5000), cart.SubtotalMinor)

	_, err = suite.service.ChangeItemQuantity(suite.customer, cart.ID, itemID, -1)
	suite.ErrorIs(err, domain.ErrValidation)

	_, err = suite.service.ChangeItemQuantity(suite.customer, cart.ID, "missing", 1)
	suite.ErrorIs(err, domain.ErrValidation)

	cart, err = suite.service.ChangeItemQuantity(suite.customer, cart.ID, itemID, 0)
	suite.Require().NoError(err)
	suite.Empty(cart.Items)
	suite.Equal(int64(0), cart.TotalMinor)
}

func (suite *CartServiceTestSuite) TestShippingFeeFollowsMethod() {
	cart := suite.openWithMugs(2)

	cart, err := suite.service.UpdateCartDetails(suite.customer, cart.ID, CartPatch{ShippingMethod: ptr(domain.ShippingMethodExpress)})
	suite.Require().NoError(err)
	suite.Equal(int64(3500), cart.ShippingFeeMinor)
	suite.Equal(int64(5500), cart.TotalMinor)

	cart, err = suite.service.UpdateCartDetails(suite.customer, cart.ID, CartPatch{ShippingMethod: ptr(domain.ShippingMethodPickup)})
	suite.Require().NoError(err)
	suite.Equal(int64(0), cart.ShippingFeeMinor)
	suite.Equal(int64(2000), cart.TotalMinor)

	_, err = suite.service.UpdateCartDetails(suite.customer, cart.ID, CartPatch{ShippingMethod: ptr(domain.ShippingMethod("DRONE"))})
	suite.ErrorIs(err, domain.ErrValidation)
}

func (suite *CartServiceTestSuite) TestUpdateCartDetailsChecksVersion() {
	cart := suite.openWithMugs(1)

	_, err := suite.service.UpdateCartDetails(suite.customer, cart.ID, CartPatch{
		PaymentMethod:   ptr(domain.PaymentMethodBankTransfer),
		ExpectedVersion: ptr(cart.Version + 5),
	})
	suite.ErrorIs(err, domain.ErrVersionConflict)

	updated, err := suite.service.UpdateCartDetails(suite.customer, cart.ID, CartPatch{
		ShippingAddress: homeAddress(),
		ExpectedVersion: ptr(cart.Version),
	})
	suite.Require().NoError(err)
	suite.Equal(cart.Version+1, updated.Version)
	suite.Require().NotNil(updated.ShippingAddress)
	suite.Equal("customer-1", updated.ShippingAddress.CustomerID)
	suite.NotEmpty(updated.ShippingAddress.ID)
}

func (suite *CartServiceTestSuite) TestWalletIsAppliedAfterDiscount() {
	cart := suite.openWithMugs(2)

	cart, err := suite.service.ApplyCoupon(suite.customer, cart.ID, "save10")
	suite.Require().NoError(err)
	cart, err = suite.service.UpdateCartDetails(suite.customer, cart.ID, CartPatch{WalletUsedMinor: ptr(int64(5000))})
	suite.Require().NoError(err)

	suite.Equal(int64(200), cart.DiscountMinor)
	suite.Equal(int64(5000), cart.WalletUsedMinor)
	suite.Equal(int64(0), cart.TotalMinor)

	_, err = suite.service.UpdateCartDetails(suite.customer, cart.ID, CartPatch{WalletUsedMinor: ptr(int64(-1))})
	suite.ErrorIs(err, domain.ErrValidation)
}

func (suite *CartServiceTestSuite) TestApplyCoupon() {
	cart := suite.openWithMugs(3)

	_, err := suite.service.ApplyCoupon(suite.customer, cart.ID, "nope")
	suite.ErrorIs(err, domain.ErrInvalidCode)

	cart, err = suite.service.ApplyCoupon(suite.customer, cart.ID, " save10 ")
	suite.Require().NoError(err)
	suite.Equal("SAVE10", cart.CouponCode)
	suite.Equal(int64(300), cart.DiscountMinor)
	suite.Equal(int64(2700), cart.TotalMinor)

	_, err = suite.service.ApplyCoupon(suite.customer, cart.ID, "BIG500")
	suite.ErrorIs(err, domain.ErrAlreadyApplied)

	cart, err = suite.service.RemoveCoupon(suite.customer, cart.ID)
	suite.Require().NoError(err)
	suite.False(cart.HasCoupon())
	suite.Equal(int64(3000), cart.TotalMinor)

	cart, err = suite.service.RemoveCoupon(suite.customer, cart.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(3000), cart.TotalMinor)

	suite.Equal(float64(3), counterValue(suite.T(), suite.fx.registry, "checkout_coupon_applications_total"))
}

func (suite *CartServiceTestSuite) TestCouponConditionIsEvaluated() {
	cart := suite.openWithMugs(2)

	_, err := suite.service.ApplyCoupon(suite.customer, cart.ID, "BULK")
	suite.ErrorIs(err, domain.ErrInvalidCode)

	cart, err = suite.service.ChangeItemQuantity(suite.customer, cart.ID, cart.Items[0].ID, 3)
	suite.Require().NoError(err)
	cart, err = suite.service.ApplyCoupon(suite.customer, cart.ID, "BULK")
	suite.Require().NoError(err)
	suite.Equal(int64(600), cart.DiscountMinor)
}

func (suite *CartServiceTestSuite) TestCouponDroppedWhenCartNoLongerQualifies() {
	cart := suite.openWithMugs(3)

	cart, err := suite.service.ApplyCoupon(suite.customer, cart.ID, "BIG500")
	suite.Require().NoError(err)
	suite.Equal(int64(500), cart.DiscountMinor)

	cart, err = suite.service.ChangeItemQuantity(suite.customer, cart.ID, cart.Items[0].ID, 2)
	suite.Require().NoError(err)
	suite.False(cart.HasCoupon())
	suite.Empty(cart.CouponCode)
	suite.Equal(int64(0), cart.DiscountMinor)
	suite.Equal(int64(2000), cart.TotalMinor)
}

func (suite *CartServiceTestSuite) TestTaxIsChargedOnDiscountedSubtotal() {
	cfg := testConfig()
	cfg.TaxRate = decimal.RequireFromString("0.075")
	service := NewCartService(suite.fx.deps, cfg)

	cart, err := service.OpenCart(suite.customer, "NGN")
	suite.Require().NoError(err)
	cart, err = service.AddItem(suite.customer, cart.ID, domain.CartItem{VariantID: "v-mug", Name: "Mug", PriceMinor: 1000, Qty: 2})
	suite.Require().NoError(err)
	suite.Equal(int64(150), cart.TaxMinor)
	suite.Equal(int64(2150), cart.TotalMinor)

	cart, err = service.ApplyCoupon(suite.customer, cart.ID, "SAVE10")
	suite.Require().NoError(err)
	suite.Equal(int64(135), cart.TaxMinor)
	suite.Equal(int64(1935), cart.TotalMinor)
}

func (suite *CartServiceTestSuite) TestAnonymousCartIsClaimedOnLogin() {
	anonymous := context.Background()
	cart, err := suite.service.OpenCart(anonymous, "NGN")
	suite.Require().NoError(err)
	_, err = suite.service.AddItem(anonymous, cart.ID, domain.CartItem{VariantID: "v-plate", Name: "Plate", PriceMinor: 700, Qty: 1})
	suite.Require().NoError(err)

	progress, err := suite.service.Progress(anonymous, cart.ID)
	suite.Require().NoError(err)
	suite.Equal(lifecycle.StepAuth, progress.Current)

	cart, err = suite.service.UpdateCartDetails(suite.customer, cart.ID, CartPatch{ShippingMethod: ptr(domain.ShippingMethodPickup)})
	suite.Require().NoError(err)
	suite.Equal("customer-1", cart.CustomerID)

	progress, err = suite.service.Progress(suite.customer, cart.ID)
	suite.Require().NoError(err)
	suite.Equal(lifecycle.StepPayment, progress.Current)
	suite.Contains(progress.Completed, lifecycle.StepDelivery)

	_, err = suite.service.GetCart(anonymous, cart.ID)
	suite.ErrorIs(err, domain.ErrCartNotFound)
	_, err = suite.service.GetCart(WithCustomer(context.Background(), "customer-2"), cart.ID)
	suite.ErrorIs(err, domain.ErrCartNotFound)
}

func (suite *CartServiceTestSuite) TestPlaceOrder() {
	cart := suite.readyForPayment()
	suite.Equal(int64(3500), cart.TotalMinor)

	order, err := suite.service.PlaceOrder(suite.customer, cart.ID)
	suite.Require().NoError(err)

	suite.True(strings.HasPrefix(order.Number, "ORD-20261019-"))
	suite.Equal(domain.OrderStatusPending, order.Status)
	suite.Equal(domain.PaymentStatusPending, order.PaymentStatus)
	suite.Equal(domain.PaymentMethodPaystack, order.PaymentMethod)
	suite.Equal(domain.ShippingMethodStandard, order.ShippingMethod)
	suite.Equal("+2348000000000", order.Phone)
	suite.Equal(int64(2000), order.SubtotalMinor)
	suite.Equal(int64(1500), order.ShippingFeeMinor)
	suite.Equal(int64(3500), order.TotalMinor)
	suite.Require().Len(order.Items, 1)
	suite.Require().NotNil(order.Items[0].Variant)
	suite.Equal(int64(10), order.Items[0].Variant.Inventory)
	suite.Empty(order.Timeline)

	stored, err := suite.fx.deps.Orders.Get(context.Background(), order.ID)
	suite.Require().NoError(err)
	suite.Equal(order.Number, stored.Number)

	locked, err := suite.service.GetCart(suite.customer, cart.ID)
	suite.Require().NoError(err)
	suite.Equal(order.ID, locked.OrderID)

	_, err = suite.service.AddItem(suite.customer, cart.ID, domain.CartItem{VariantID: "v-plate", PriceMinor: 700, Qty: 1})
	suite.ErrorIs(err, domain.ErrCartLocked)
	_, err = suite.service.PlaceOrder(suite.customer, cart.ID)
	suite.ErrorIs(err, domain.ErrCartLocked)

	pending := suite.fx.outbox.AllPending()
	suite.Require().Len(pending, 1)
	suite.Equal(domain.EventOrderPlaced, pending[0].EventType)
	suite.Equal(order.ID, pending[0].AggregateID)
	suite.Equal(float64(1), counterValue(suite.T(), suite.fx.registry, "checkout_orders_placed_total"))

	next, err := suite.service.OpenCart(suite.customer, "NGN")
	suite.Require().NoError(err)
	suite.NotEqual(cart.ID, next.ID)
}

func (suite *CartServiceTestSuite) TestPlaceOrderRequiresCompletedSteps() {
	cart := suite.openWithMugs(1)

	_, err := suite.service.PlaceOrder(context.Background(), cart.ID)
	suite.ErrorIs(err, domain.ErrValidation)

	_, err = suite.service.PlaceOrder(suite.customer, cart.ID)
	suite.ErrorIs(err, domain.ErrValidation)

	_, err = suite.service.UpdateCartDetails(suite.customer, cart.ID, CartPatch{ShippingMethod: ptr(domain.ShippingMethodPickup)})
	suite.Require().NoError(err)
	_, err = suite.service.PlaceOrder(suite.customer, cart.ID)
	suite.ErrorIs(err, domain.ErrValidation)

	_, err = suite.service.PlaceOrder(suite.customer, "missing")
	suite.ErrorIs(err, domain.ErrCartNotFound)
}

func (suite *CartServiceTestSuite) TestPlaceOrderRejectsExpiredCoupon() {
	cart := suite.readyForPayment()
	_, err := suite.service.ApplyCoupon(suite.customer, cart.ID, "SAVE10")
	suite.Require().NoError(err)

	expired := percentCoupon("SAVE10", "0.1")
	expired.Active = false
	suite.Require().NoError(suite.fx.deps.Coupons.Upsert(context.Background(), expired))

	_, err = suite.service.PlaceOrder(suite.customer, cart.ID)
	suite.ErrorIs(err, domain.ErrInvalidCode)

	current, err := suite.service.GetCart(suite.customer, cart.ID)
	suite.Require().NoError(err)
	suite.False(current.Locked())
}

func (suite *CartServiceTestSuite) TestPlaceOrderSnapshotsInventory() {
	cart := suite.readyForPayment()
	suite.fx.stock.Set("v-mug", 0)

	order, err := suite.service.PlaceOrder(suite.customer, cart.ID)
	suite.Require().NoError(err)
	suite.False(order.Items[0].InStock())
}

func (suite *CartServiceTestSuite) TestPlaceOrderFallsBackWhenLookupFails() {
	cart := suite.readyForPayment()
	suite.fx.stock.Err = errors.New("warehouse unavailable")

	order, err := suite.service.PlaceOrder(suite.customer, cart.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), order.Items[0].Variant.Inventory)
}

func (suite *CartServiceTestSuite) TestPlaceOrderReleasesCartWhenOrderIsNotStored() {
	cart := suite.readyForPayment()
	orders := &failingOrderRepository{OrderRepository: suite.fx.deps.Orders, createErr: errors.New("disk full")}
	deps := suite.fx.deps
	deps.Orders = orders
	service := NewCartService(deps, testConfig())

	_, err := service.PlaceOrder(suite.customer, cart.ID)
	suite.Require().ErrorContains(err, "disk full")

	current, err := service.GetCart(suite.customer, cart.ID)
	suite.Require().NoError(err)
	suite.False(current.Locked())
	suite.Empty(suite.fx.outbox.AllPending())

	orders.createErr = nil
	order, err := service.PlaceOrder(suite.customer, cart.ID)
	suite.Require().NoError(err)
	suite.Equal(1, orders.created)

	locked, err := service.GetCart(suite.customer, cart.ID)
	suite.Require().NoError(err)
	suite.Equal(order.ID, locked.OrderID)
}

func (suite *CartServiceTestSuite) TestPlaceOrderLosesRaceOnStaleCart() {
	cart := suite.readyForPayment()
	stale := cart

	_, err := suite.fx.deps.Carts.Save(context.Background(), cart)
	suite.Require().NoError(err)

	orders := &failingOrderRepository{OrderRepository: suite.fx.deps.Orders}
	deps := suite.fx.deps
	deps.Orders = orders
	carts := &staleCartRepository{CartRepository: deps.Carts, stale: stale}
	deps.Carts = carts
	service := NewCartService(deps, testConfig())

	_, err = service.PlaceOrder(suite.customer, cart.ID)
	suite.ErrorIs(err, domain.ErrVersionConflict)
	suite.Zero(orders.created, "no order may be stored when the cart lock fails")
}

// failingOrderRepository подменяет Create и считает успешные вызовы.
type failingOrderRepository struct {
	domain.OrderRepository
	createErr error
	created   int
}

func (r *failingOrderRepository) Create(ctx context.Context, order domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	if err := r.OrderRepository.Create(ctx, order); err != nil {
		return err
	}
	r.created++
	return nil
}

// staleCartRepository отдаёт устаревшую версию корзины, как при гонке двух запросов.
type staleCartRepository struct {
	domain.CartRepository
	stale domain.Cart
}

func (r *staleCartRepository) Get(context.Context, string) (domain.Cart, error) {
	return r.stale.Clone(), nil
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
