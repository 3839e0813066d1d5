package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/lifecycle"
)

func TestCanUpdatePaymentStatus(t *testing.T) {
	order := pendingOrder()
	assert.Equal(t, lifecycle.GateDecision{Allowed: true}, lifecycle.CanUpdatePaymentStatus(order))

	order.Items = append(order.Items, domain.OrderItem{ID: "item-2", VariantID: "v-2", Qty: 1, Variant: &domain.VariantRef{ID: "v-2"}})
	decision := lifecycle.CanUpdatePaymentStatus(order)
	assert.False(t, decision.Allowed)
	assert.Equal(t, lifecycle.GateReasonOutOfStock, decision.Reason)
	assert.Equal(t, []string{"item-2"}, decision.Blocking)
}

func TestApplyPaymentStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.OrderStatus
		from      domain.PaymentStatus
		to        domain.PaymentStatus
		inventory int64
		wantErr   error
	}{
		{name: "pending to success", from: domain.PaymentStatusPending, to: domain.PaymentStatusSuccess, inventory: 1},
		{name: "pending to failed", from: domain.PaymentStatusPending, to: domain.PaymentStatusFailed, inventory: 1},
		{name: "failed retry", from: domain.PaymentStatusFailed, to: domain.PaymentStatusPending, inventory: 0},
		{name: "refund canceled order", status: domain.OrderStatusCanceled, from: domain.PaymentStatusSuccess, to: domain.PaymentStatusRefunded, inventory: 0},
		{name: "refund refunded order", status: domain.OrderStatusRefunded, from: domain.PaymentStatusSuccess, to: domain.PaymentStatusRefunded, inventory: 1},
		{name: "refund after return", status: domain.OrderStatusDelivered, from: domain.PaymentStatusSuccess, to: domain.PaymentStatusRefunded, inventory: 1},
		{name: "refund of pending order", from: domain.PaymentStatusSuccess, to: domain.PaymentStatusRefunded, inventory: 1, wantErr: domain.ErrInvalidPaymentTransition},
		{name: "refund of order in transit", status: domain.OrderStatusShipped, from: domain.PaymentStatusSuccess, to: domain.PaymentStatusRefunded, inventory: 1, wantErr: domain.ErrInvalidPaymentTransition},
		{name: "gate blocks success", from: domain.PaymentStatusPending, to: domain.PaymentStatusSuccess, inventory: 0, wantErr: domain.ErrOutOfStockBlock},
		{name: "gate blocks failure", from: domain.PaymentStatusPending, to: domain.PaymentStatusFailed, inventory: 0, wantErr: domain.ErrOutOfStockBlock},
		{name: "refunded is terminal", from: domain.PaymentStatusRefunded, to: domain.PaymentStatusSuccess, inventory: 1, wantErr: domain.ErrInvalidPaymentTransition},
		{name: "same status", from: domain.PaymentStatusSuccess, to: domain.PaymentStatusSuccess, inventory: 1, wantErr: domain.ErrInvalidPaymentTransition},
		{name: "unknown status", from: domain.PaymentStatusPending, to: "CHARGEBACK", inventory: 1, wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := pendingOrder()
			if tt.status != "" {
				order.Status = tt.status
			}
			order.PaymentStatus = tt.from
			order.Items[0].Variant.Inventory = tt.inventory

			next, err := lifecycle.ApplyPaymentStatus(order, tt.to, testNow)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, next.PaymentStatus)
			assert.Equal(t, tt.from, order.PaymentStatus, "input must not be mutated")
			assert.Equal(t, testNow, next.UpdatedAt)
		})
	}
}

func TestApplyPaymentStatus_RefundKeepsOrderMovable(t *testing.T) {
	order := pendingOrder()
	order.PaymentStatus = domain.PaymentStatusSuccess

	processing, err := lifecycle.ApplyStatusTransition(order, domain.OrderStatusProcessing, "", testNow)
	require.NoError(t, err)

	_, err = lifecycle.ApplyPaymentStatus(processing, domain.PaymentStatusRefunded, testNow)
	require.ErrorIs(t, err, domain.ErrInvalidPaymentTransition)

	refunded, err := lifecycle.ApplyStatusTransition(processing, domain.OrderStatusRefunded, "customer asked", testNow)
	require.NoError(t, err)

	settled, err := lifecycle.ApplyPaymentStatus(refunded, domain.PaymentStatusRefunded, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusRefunded, settled.Status)
	assert.Equal(t, domain.PaymentStatusRefunded, settled.PaymentStatus)
}
