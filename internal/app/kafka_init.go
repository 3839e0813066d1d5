package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/messaging/kafka"
)

// initKafkaProducer создаёт producer, если брокеры заданы. Без брокеров
// сервис работает, а события копятся в outbox.
func initKafkaProducer(brokers []string, logger *log.Entry) (*kafka.Producer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(brokers)
	if err != nil {
		return nil, fmt.Errorf("init kafka producer: %w", err)
	}

	logger.WithField("brokers", brokers).Info("kafka producer initialized")
	return producer, nil
}

// initJobConsumer подписывается на ленту массовых операций.
func initJobConsumer(ctx context.Context, cfg Config, producer *kafka.Producer, recorder kafka.JobRecorder, logger *log.Entry) (*kafka.Consumer, error) {
	if len(cfg.KafkaBrokers) == 0 || !cfg.JobFeedEnabled {
		return nil, nil
	}

	consumerLogger := logger.WithField("component", "job-feed-consumer")
	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, kafka.ConsumerOptions{
		GroupID:     cfg.KafkaGroupID,
		Topics:      []string{kafka.TopicJobEvents},
		DLQProducer: producer,
		Logger:      consumerLogger,
	}, kafka.JobEventHandler(recorder, consumerLogger))
	if err != nil {
		return nil, fmt.Errorf("init job consumer: %w", err)
	}
	if err := consumer.Start(ctx); err != nil {
		_ = consumer.Stop()
		return nil, fmt.Errorf("start job consumer: %w", err)
	}
	return consumer, nil
}

// outboxPublishers выбирает, куда outbox worker отправляет события.
func outboxPublishers(producer *kafka.Producer, logger *log.Entry) (publisher, dlq domain.OutboxPublisher) {
	if producer == nil {
		return logPublisher{logger: logger.WithField("component", "outbox-log")}, nil
	}
	return kafka.NewOutboxPublisher(producer, kafka.TopicOrderEvents),
		kafka.NewOutboxPublisher(producer, kafka.TopicDeadLetterQueue)
}

// logPublisher только логирует события: используется без Kafka, чтобы
// outbox не рос бесконечно при локальном запуске.
type logPublisher struct {
	logger *log.Entry
}

func (p logPublisher) Publish(event domain.OutboxMessage) error {
	p.logger.WithFields(log.Fields{
		"event_id":     event.ID,
		"event_type":   event.EventType,
		"aggregate_id": event.AggregateID,
	}).Info("outbox event")
	return nil
}

// closeKafka закрывает Kafka producer если он не nil.
func closeKafka(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}

	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}
