package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/lifecycle"
)

func TestTimeline_StartsWithOrderPlaced(t *testing.T) {
	order := pendingOrder()

	events := lifecycle.Timeline(order)
	require.Len(t, events, 1)
	assert.True(t, events[0].Synthetic())
	assert.Equal(t, domain.OrderPlacedMessage, events[0].Message)
	assert.Equal(t, order.CreatedAt, events[0].CreatedAt)
	assert.Equal(t, domain.OrderStatusPending, events[0].ToStatus)
}

func TestRecordTransition_AppendsInInsertionOrder(t *testing.T) {
	order := pendingOrder()
	order.PaymentStatus = domain.PaymentStatusSuccess

	processing, err := lifecycle.ApplyStatusTransition(order, domain.OrderStatusProcessing, "", testNow)
	require.NoError(t, err)

	event := domain.OrderStatusEvent{
		OrderID:    order.ID,
		FromStatus: domain.OrderStatusProcessing,
		ToStatus:   domain.OrderStatusShipped,
		Message:    "handed to courier",
		CreatedAt:  testNow,
	}
	events, err := lifecycle.RecordTransition(processing, event)
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, domain.OrderPlacedMessage, events[0].Message)
	assert.Equal(t, domain.OrderStatusProcessing, events[1].ToStatus)
	assert.Equal(t, event, events[2])
	assert.Len(t, processing.Timeline, 1, "recording must not mutate the order")
}

func TestRecordTransition_RejectsForeignEvents(t *testing.T) {
	order := pendingOrder()

	_, err := lifecycle.RecordTransition(order, domain.OrderStatusEvent{
		OrderID:    "order-2",
		FromStatus: domain.OrderStatusPending,
		ToStatus:   domain.OrderStatusProcessing,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = lifecycle.RecordTransition(order, domain.OrderStatusEvent{OrderID: order.ID, ToStatus: domain.OrderStatusProcessing})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTimeline_TerminalTransitionIsRecorded(t *testing.T) {
	order := pendingOrder()
	order.PaymentStatus = domain.PaymentStatusSuccess

	canceled, err := lifecycle.ApplyStatusTransition(order, domain.OrderStatusCanceled, "customer changed mind", testNow)
	require.NoError(t, err)

	events := lifecycle.Timeline(canceled)
	require.Len(t, events, 2)
	assert.Equal(t, domain.OrderStatusCanceled, events[1].ToStatus)
	assert.Equal(t, "customer changed mind", events[1].Message)
}
