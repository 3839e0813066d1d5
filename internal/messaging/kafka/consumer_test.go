package kafka

import (
	"context"
	"encoding/json"
	"errors"
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

type mockConsumerGroup struct {
	consumeFn func(context.Context, []string, sarama.ConsumerGroupHandler) error
	errorsCh  chan error
	closeFn   func() error
}

func (m *mockConsumerGroup) Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	if m.consumeFn != nil {
		return m.consumeFn(ctx, topics, handler)
	}
	return nil
}

func (m *mockConsumerGroup) Errors() <-chan error {
	return m.errorsCh
}

func (m *mockConsumerGroup) Close() error {
	if m.closeFn != nil {
		return m.closeFn()
	}
	if m.errorsCh != nil {
		close(m.errorsCh)
	}
	return nil
}

func (m *mockConsumerGroup) Pause(map[string][]int32)  {}
func (m *mockConsumerGroup) Resume(map[string][]int32) {}
func (m *mockConsumerGroup) PauseAll()                 {}
func (m *mockConsumerGroup) ResumeAll()                {}

type mockSession struct {
	ctx    context.Context
	marked []*sarama.ConsumerMessage
}

func (m *mockSession) Claims() map[string][]int32               { return nil }
func (m *mockSession) MemberID() string                         { return "member" }
func (m *mockSession) GenerationID() int32                      { return 1 }
func (m *mockSession) MarkOffset(string, int32, int64, string)  {}
func (m *mockSession) Commit()                                  {}
func (m *mockSession) ResetOffset(string, int32, int64, string) {}
func (m *mockSession) Context() context.Context                 { return m.ctx }
func (m *mockSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	m.marked = append(m.marked, msg)
}

type mockClaim struct {
	topic     string
	partition int32
	messages  chan *sarama.ConsumerMessage
}

func (m *mockClaim) Topic() string                            { return m.topic }
func (m *mockClaim) Partition() int32                         { return m.partition }
func (m *mockClaim) InitialOffset() int64                     { return 0 }
func (m *mockClaim) HighWaterMarkOffset() int64               { return 0 }
func (m *mockClaim) Messages() <-chan *sarama.ConsumerMessage { return m.messages }

func TestNewConsumerValidation(t *testing.T) {
	handler := func(context.Context, *sarama.ConsumerMessage) error { return nil }

	_, err := NewConsumer([]string{"localhost:9092"}, ConsumerOptions{Topics: []string{TopicJobEvents}}, handler)
	assert.ErrorContains(t, err, "group id is required")

	_, err = NewConsumer([]string{"localhost:9092"}, ConsumerOptions{GroupID: "g"}, handler)
	assert.ErrorContains(t, err, "at least one topic")

	_, err = NewConsumer([]string{"invalid-broker:9092"}, ConsumerOptions{GroupID: "g", Topics: []string{TopicJobEvents}}, handler)
	assert.Error(t, err)
}

func TestNewConsumerDefaults(t *testing.T) {
	consumer := newConsumer(&mockConsumerGroup{}, ConsumerOptions{Topics: []string{"t"}, RetryDelay: -time.Second}, nil)
	assert.Equal(t, defaultMaxRetries, consumer.maxRetries)
	assert.Zero(t, consumer.retryDelay)
	assert.NotNil(t, consumer.logger)
}

func TestConsumerStartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	consumeCalls := 0
	errorsCh := make(chan error, 1)
	group := &mockConsumerGroup{
		errorsCh: errorsCh,
		consumeFn: func(_ context.Context, topics []string, _ sarama.ConsumerGroupHandler) error {
			consumeCalls++
			assert.Equal(t, []string{TopicJobEvents}, topics)
			cancel()
			return nil
		},
		closeFn: func() error {
			close(errorsCh)
			return nil
		},
	}

	consumer := newConsumer(group, ConsumerOptions{Topics: []string{TopicJobEvents}, Logger: log.WithField("test", "consumer")},
		func(context.Context, *sarama.ConsumerMessage) error { return nil })

	errorsCh <- errors.New("background error")
	require.NoError(t, consumer.Start(ctx))
	require.NoError(t, consumer.Stop())
	assert.Equal(t, 1, consumeCalls)
}

func TestConsumerStartExitsOnClosedGroup(t *testing.T) {
	errorsCh := make(chan error)
	group := &mockConsumerGroup{
		errorsCh: errorsCh,
		consumeFn: func(context.Context, []string, sarama.ConsumerGroupHandler) error {
			return sarama.ErrClosedConsumerGroup
		},
	}
	consumer := newConsumer(group, ConsumerOptions{Topics: []string{"t"}}, nil)

	require.NoError(t, consumer.Start(context.Background()))
	require.NoError(t, consumer.Stop())
}

func TestConsumerStopError(t *testing.T) {
	errorsCh := make(chan error)
	group := &mockConsumerGroup{errorsCh: errorsCh, closeFn: func() error {
		close(errorsCh)
		return errors.New("close failed")
	}}
	consumer := &Consumer{consumer: group, logger: log.WithField("test", "stop")}
	assert.Error(t, consumer.Stop())
}

func TestConsumeClaim(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := &Consumer{
		handler:    func(context.Context, *sarama.ConsumerMessage) error { return nil },
		logger:     log.WithField("test", "claim"),
		maxRetries: 1,
	}

	session := &mockSession{ctx: ctx}
	claim := &mockClaim{topic: "topic", partition: 0, messages: make(chan *sarama.ConsumerMessage, 2)}
	claim.messages <- &sarama.ConsumerMessage{Topic: "topic", Partition: 0, Offset: 1, Key: []byte("k"), Value: []byte("v")}
	close(claim.messages)

	require.NoError(t, consumer.ConsumeClaim(session, claim))
	assert.Len(t, session.marked, 1)
}

func TestConsumeClaimFailedHandler(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := &Consumer{
		handler:    func(context.Context, *sarama.ConsumerMessage) error { return errors.New("failed") },
		logger:     log.WithField("test", "claim-fail"),
		maxRetries: 1,
	}

	session := &mockSession{ctx: ctx}
	claim := &mockClaim{topic: "topic", partition: 0, messages: make(chan *sarama.ConsumerMessage, 1)}
	claim.messages <- &sarama.ConsumerMessage{Topic: "topic", Partition: 0, Offset: 1, Key: []byte("k"), Value: []byte("v")}
	close(claim.messages)

	require.NoError(t, consumer.ConsumeClaim(session, claim))
	assert.Empty(t, session.marked, "failed message should not be marked")
}

func TestHandleMessage(t *testing.T) {
	msg := &sarama.ConsumerMessage{Topic: "topic", Key: []byte("key"), Value: []byte(`{"a":1}`)}

	t.Run("success", func(t *testing.T) {
		consumer := &Consumer{
			handler:    func(context.Context, *sarama.ConsumerMessage) error { return nil },
			logger:     log.WithField("test", "retry-success"),
			maxRetries: 2,
		}
		assert.NoError(t, consumer.handleMessage(context.Background(), msg))
	})

	t.Run("retries remaining attempts", func(t *testing.T) {
		retryingMessage := &sarama.ConsumerMessage{
			Topic:   "topic",
			Key:     []byte("key"),
			Value:   []byte("{}"),
			Headers: []*sarama.RecordHeader{{Key: []byte(HeaderRetryCount), Value: []byte("1")}},
		}
		attempts := 0
		consumer := &Consumer{
			handler: func(context.Context, *sarama.ConsumerMessage) error {
				attempts++
				return errors.New("temporary")
			},
			logger:     log.WithField("test", "retry"),
			maxRetries: 3,
		}
		assert.Error(t, consumer.handleMessage(context.Background(), retryingMessage))
		assert.Equal(t, 2, attempts)
	})

	t.Run("recovers on second attempt", func(t *testing.T) {
		attempts := 0
		consumer := &Consumer{
			handler: func(context.Context, *sarama.ConsumerMessage) error {
				attempts++
				if attempts == 1 {
					return errors.New("temporary")
				}
				return nil
			},
			logger:     log.WithField("test", "recover"),
			maxRetries: 3,
		}
		assert.NoError(t, consumer.handleMessage(context.Background(), msg))
		assert.Equal(t, 2, attempts)
	})

	t.Run("exhausted with dlq success", func(t *testing.T) {
		mockProducer := mocks.NewSyncProducer(t, nil)
		mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var payload map[string]any
			if err := json.Unmarshal(val, &payload); err != nil {
				return err
			}
			if payload["error_message"] != "permanent" {
				return fmt.Errorf("unexpected dlq payload: %v", payload)
			}
			return nil
		})
		consumer := &Consumer{
			handler:     func(context.Context, *sarama.ConsumerMessage) error { return errors.New("permanent") },
			dlqProducer: NewProducerFromSync(mockProducer, log.WithField("test", "dlq")),
			logger:      log.WithField("test", "max-dlq"),
			maxRetries:  2,
		}
		assert.NoError(t, consumer.handleMessage(context.Background(), msg))
		require.NoError(t, mockProducer.Close())
	})

	t.Run("exhausted with dlq failure", func(t *testing.T) {
		mockProducer := mocks.NewSyncProducer(t, nil)
		mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		consumer := &Consumer{
			handler:     func(context.Context, *sarama.ConsumerMessage) error { return errors.New("permanent") },
			dlqProducer: NewProducerFromSync(mockProducer, log.WithField("test", "dlq")),
			logger:      log.WithField("test", "max-dlq-fail"),
			maxRetries:  1,
		}
		assert.ErrorContains(t, consumer.handleMessage(context.Background(), msg), "failed to send to DLQ")
		require.NoError(t, mockProducer.Close())
	})

	t.Run("context canceled between attempts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		consumer := &Consumer{
			handler: func(context.Context, *sarama.ConsumerMessage) error {
				cancel()
				return errors.New("temporary")
			},
			logger:     log.WithField("test", "cancel"),
			maxRetries: 3,
			retryDelay: time.Minute,
		}
		assert.ErrorIs(t, consumer.handleMessage(ctx, msg), context.Canceled)
	})
}

func TestGetRetryCountAndParsers(t *testing.T) {
	consumer := &Consumer{}

	msg := &sarama.ConsumerMessage{Headers: []*sarama.RecordHeader{{Key: []byte(HeaderRetryCount), Value: []byte("5")}}}
	assert.Equal(t, 5, consumer.getRetryCount(msg))

	msgInvalid := &sarama.ConsumerMessage{Headers: []*sarama.RecordHeader{{Key: []byte(HeaderRetryCount), Value: []byte("bad")}}}
	assert.Equal(t, 0, consumer.getRetryCount(msgInvalid))

	orderMsg := &sarama.ConsumerMessage{Value: []byte(`{"event_type":"order.placed","order_id":"o-1","customer_id":"c-1","status":"PENDING"}`)}
	event, err := ParseOrderEvent(orderMsg)
	require.NoError(t, err)
	assert.Equal(t, EventTypeOrderPlaced, event.EventType)
	_, err = ParseOrderEvent(&sarama.ConsumerMessage{Value: []byte("{")})
	assert.Error(t, err)

	jobMsg := &sarama.ConsumerMessage{Key: []byte("job-7"), Value: []byte(`{"kind":"image_upload","status":"processing","message":"3/10"}`)}
	job, err := ParseJobEvent(jobMsg)
	require.NoError(t, err)
	assert.Equal(t, "job-7", job.JobID)
	assert.Equal(t, domain.JobStatusProcessing, job.Status)
	_, err = ParseJobEvent(&sarama.ConsumerMessage{Value: []byte("[")})
	assert.Error(t, err)
}

func TestSendToDLQ_CarriesHeaders(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageAndSucceed()

	consumer := &Consumer{
		dlqProducer: NewProducerFromSync(mockProducer, log.WithField("test", "send-dlq")),
		logger:      log.WithField("test", "consumer-send-dlq"),
		maxRetries:  3,
	}

	msg := &sarama.ConsumerMessage{Topic: TopicJobEvents, Partition: 1, Offset: 42, Key: []byte("k"), Value: []byte("not json")}
	require.NoError(t, consumer.sendToDLQ(msg, errors.New("boom")))
	require.NoError(t, mockProducer.Close())
}

func TestValidJSON(t *testing.T) {
	assert.JSONEq(t, `{"a":1}`, string(validJSON([]byte(`{"a":1}`))))
	assert.Equal(t, `"plain"`, string(validJSON([]byte("plain"))))
}

type recorderFunc func(context.Context, domain.JobStatusEvent) error

func (f recorderFunc) Record(ctx context.Context, event domain.JobStatusEvent) error {
	return f(ctx, event)
}

func TestJobEventHandler(t *testing.T) {
	var recorded []domain.JobStatusEvent
	recorder := recorderFunc(func(_ context.Context, event domain.JobStatusEvent) error {
		if event.Status == domain.JobStatusFailed {
			return fmt.Errorf("%w: job already completed", domain.ErrInvalidTransition)
		}
		if event.Kind == "explode" {
			return errors.New("storage unavailable")
		}
		recorded = append(recorded, event)
		return nil
	})
	handler := JobEventHandler(recorder, log.WithField("test", "job-feed"))
	ctx := context.Background()

	require.NoError(t, handler(ctx, &sarama.ConsumerMessage{Value: []byte(`{"job_id":"j-1","kind":"import","status":"processing"}`)}))
	require.NoError(t, handler(ctx, &sarama.ConsumerMessage{Value: []byte(`{`)}), "malformed messages are skipped")
	require.NoError(t, handler(ctx, &sarama.ConsumerMessage{Value: []byte(`{"job_id":"j-1","kind":"import","status":"failed"}`)}), "rejected events are skipped")
	assert.Error(t, handler(ctx, &sarama.ConsumerMessage{Value: []byte(`{"job_id":"j-1","kind":"explode","status":"processing"}`)}))

	require.Len(t, recorded, 1)
	assert.Equal(t, "j-1", recorded[0].JobID)
}

func TestConsumeClaimStopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	consumer := &Consumer{
		handler:    func(context.Context, *sarama.ConsumerMessage) error { return nil },
		logger:     log.WithField("test", "claim-stop"),
		maxRetries: 1,
	}
	session := &mockSession{ctx: ctx}
	claim := &mockClaim{topic: "topic", partition: 0, messages: make(chan *sarama.ConsumerMessage)}

	done := make(chan struct{})
	go func() {
		_ = consumer.ConsumeClaim(session, claim)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ConsumeClaim did not stop after context cancellation")
	}
}
