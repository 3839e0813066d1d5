package postgres

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

var orderColumnNames = []string{
	"id", "number", "customer_id", "cart_id", "currency", "status", "payment_status",
	"shipping_method", "payment_method", "shipping_address", "billing_address", "phone", "coupon_code",
	"subtotal_minor", "discount_minor", "shipping_fee_minor", "tax_minor", "wallet_used_minor", "total_minor",
	"version", "created_at", "updated_at",
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewStore(db), mock
}

func sampleOrder(now time.Time) domain.Order {
	return domain.Order{
		ID:             "order-1",
		Number:         "ORD-20261019-AB12CD34",
		CustomerID:     "customer-1",
		CartID:         "cart-1",
		Currency:       "NGN",
		Status:         domain.OrderStatusPending,
		PaymentStatus:  domain.PaymentStatusSuccess,
		ShippingMethod: domain.ShippingMethodStandard,
		PaymentMethod:  domain.PaymentMethodPaystack,
		ShippingAddress: &domain.Address{
			ID: "addr-1", CustomerID: "customer-1", Type: domain.AddressTypeHome,
			Line1: "1 Marina", City: "Lagos", Country: "NG",
		},
		SubtotalMinor:    2000,
		ShippingFeeMinor: 500,
		TotalMinor:       2500,
		Items: []domain.OrderItem{
			{ID: "item-1", Name: "Mug", VariantID: "v-1", PriceMinor: 1000, Qty: 2, Variant: &domain.VariantRef{ID: "v-1", Inventory: 3}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func orderRow(order domain.Order, shipping []byte) []driver.Value {
	return []driver.Value{
		order.ID, order.Number, order.CustomerID, order.CartID, order.Currency,
		string(order.Status), string(order.PaymentStatus), string(order.ShippingMethod), string(order.PaymentMethod),
		shipping, nil, order.Phone, order.CouponCode,
		order.SubtotalMinor, order.DiscountMinor, order.ShippingFeeMinor, order.TaxMinor, order.WalletUsedMinor, order.TotalMinor,
		order.Version, order.CreatedAt, order.UpdatedAt,
	}
}

func TestOrderRepository_Create(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)
	order := sampleOrder(time.Now().UTC())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(
			"order-1", order.Number, "customer-1", "cart-1", "NGN", "PENDING", "SUCCESS", "STANDARD", "PAYSTACK",
			sqlmock.AnyArg(), sqlmock.AnyArg(), "", "",
			int64(2000), int64(0), int64(500), int64(0), int64(0), int64(2500),
			int64(0), order.CreatedAt, order.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).
		WithArgs("item-1", "order-1", 0, "Mug", "", "v-1", int64(3), int32(2), int64(1000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), order))
}

func TestOrderRepository_Get(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)
	now := time.Now().UTC()
	order := sampleOrder(now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows(orderColumnNames).AddRow(orderRow(order, []byte(`{"id":"addr-1","city":"Lagos","type":"HOME"}`))...))
	mock.ExpectQuery(regexp.QuoteMeta("FROM order_items")).
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "variant_id", "variant_inventory", "qty", "price_minor"}).
			AddRow("item-1", "Mug", "", "v-1", int64(0), int64(2), int64(1000)).
			AddRow("item-2", "Plate", "", "v-2", nil, int64(1), int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM order_status_events")).
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "from_status", "to_status", "message", "created_at"}).
			AddRow("order-1", "PENDING", "PROCESSING", "picked", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM order_returns")).
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "reason", "requested_at"}))

	got, err := repo.Get(context.Background(), "order-1")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusSuccess, got.PaymentStatus)
	require.NotNil(t, got.ShippingAddress)
	assert.Equal(t, "Lagos", got.ShippingAddress.City)
	assert.Nil(t, got.BillingAddress)
	require.Len(t, got.Items, 2)
	assert.False(t, got.Items[0].InStock())
	assert.Nil(t, got.Items[1].Variant)
	require.Len(t, got.Timeline, 1)
	assert.Equal(t, domain.OrderStatusProcessing, got.Timeline[0].ToStatus)
	assert.Empty(t, got.Returns)
}

func TestOrderRepository_GetNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE number = $1")).
		WithArgs("ORD-missing").
		WillReturnRows(sqlmock.NewRows(orderColumnNames))

	_, err := repo.GetByNumber(context.Background(), "ORD-missing")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepository_SaveAppendsOnlyNewHistory(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)
	now := time.Now().UTC()

	order := sampleOrder(now)
	order.Status = domain.OrderStatusShipped
	order.Version = 3
	order.Timeline = []domain.OrderStatusEvent{
		{OrderID: "order-1", FromStatus: domain.OrderStatusPending, ToStatus: domain.OrderStatusProcessing, CreatedAt: now},
		{OrderID: "order-1", FromStatus: domain.OrderStatusProcessing, ToStatus: domain.OrderStatusShipped, Message: "courier", CreatedAt: now},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WithArgs("SHIPPED", "SUCCESS", order.UpdatedAt, "order-1", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM order_status_events")).
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"events", "returns"}).AddRow(1, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_status_events")).
		WithArgs("order-1", "PROCESSING", "SHIPPED", "courier", now).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	saved, err := repo.Save(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, int64(4), saved.Version)
}

func TestOrderRepository_SaveVersionConflict(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)
	order := sampleOrder(time.Now().UTC())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM orders WHERE id = $1")).
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("order-1"))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), order)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestOrderRepository_SaveRejectsShorterHistory(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOrderRepository(store)
	order := sampleOrder(time.Now().UTC())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM order_status_events")).
		WillReturnRows(sqlmock.NewRows([]string{"events", "returns"}).AddRow(2, 0))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), order)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
