package kafka

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

func TestProducer_PublishEvent(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := NewProducerFromSync(mockProducer, log.WithField("component", "kafka-producer-test"))

	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event OrderEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.OrderNumber != "ORD-20261019-AB12CD34" {
			return fmt.Errorf("unexpected order number %q", event.OrderNumber)
		}
		return nil
	})

	order := domain.Order{ID: "order-123", Number: "ORD-20261019-AB12CD34", CustomerID: "cust-1", Status: domain.OrderStatusProcessing}
	event := NewOrderEvent(EventTypeOrderStatusChanged, order, map[string]any{"from": "PENDING"})

	require.NoError(t, producer.PublishEvent(TopicOrderEvents, order.ID, event))
	require.NoError(t, mockProducer.Close())
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := NewProducerFromSync(mockProducer, nil)

	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := producer.PublishEvent(TopicOrderEvents, "order-123", NewOrderEvent(EventTypeOrderPlaced, domain.Order{ID: "order-123"}, nil))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, mockProducer.Close())
}

func TestProducer_PublishEvent_MarshalError(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := NewProducerFromSync(mockProducer, nil)

	err := producer.PublishEvent(TopicOrderEvents, "k", map[string]any{"bad": make(chan int)})
	assert.ErrorContains(t, err, "failed to marshal event")
	require.NoError(t, mockProducer.Close())
}

func TestNewOrderEvent(t *testing.T) {
	order := domain.Order{
		ID:            "order-123",
		Number:        "ORD-1",
		CustomerID:    "cust-1",
		Status:        domain.OrderStatusShipped,
		PaymentStatus: domain.PaymentStatusSuccess,
		Version:       4,
	}

	event := NewOrderEvent(EventTypeOrderStatusChanged, order, map[string]any{"message": "courier"})

	assert.Equal(t, EventTypeOrderStatusChanged, event.EventType)
	assert.Equal(t, "order-123", event.OrderID)
	assert.Equal(t, "SHIPPED", event.Status)
	assert.Equal(t, "SUCCESS", event.PaymentStatus)
	assert.Equal(t, int64(4), event.Version)
	assert.Equal(t, "courier", event.Metadata["message"])
	assert.WithinDuration(t, time.Now(), event.Timestamp, time.Second)
}

func TestEventTypeForOutbox(t *testing.T) {
	assert.Equal(t, EventTypeOrderPlaced, EventTypeForOutbox(domain.EventOrderPlaced))
	assert.Equal(t, EventTypeOrderItemReturned, EventTypeForOutbox(domain.EventOrderItemReturned))
	assert.Equal(t, EventType("Custom"), EventTypeForOutbox("Custom"))
}
