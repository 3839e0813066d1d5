package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/messaging/kafka"
)

const (
	defaultReplayLimit = 100
	defaultIdleTimeout = 2 * time.Second
)

var errNotReplayable = errors.New("dlq record is not replayable")

type config struct {
	brokers     []string
	sourceTopic string
	jobsTopic   string
	eventsTopic string
	limit       int
	execute     bool
	idleTimeout time.Duration
}

// jobDeadLetter - запись, которую consumer ленты операций кладёт в DLQ.
type jobDeadLetter struct {
	OriginalTopic string          `json:"original_topic"`
	OriginalKey   string          `json:"original_key"`
	OriginalValue json.RawMessage `json:"original_value"`
	ErrorMessage  string          `json:"error_message"`
}

// outboxDeadLetter - payload конверта, который outbox worker отправляет в DLQ.
type outboxDeadLetter struct {
	OutboxID      string          `json:"outbox_id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishError  string          `json:"publish_error"`
}

type deadLetterEnvelope struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// replay - что и куда будет опубликовано повторно.
type replay struct {
	topic  string
	key    string
	job    json.RawMessage
	outbox *domain.OutboxMessage
}

type offsetClient interface {
	Partitions(topic string) ([]int32, error)
	GetOffset(topic string, partition int32, time int64) (int64, error)
	Close() error
}

type replayStats struct {
	scanned  int
	replayed int
	skipped  int
}

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fail("%v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		fail("dlq replay failed: %v", err)
	}
}

func parseConfig(args []string, getenv func(string) string) (config, error) {
	var (
		brokers string
		cfg     config
	)
	fs := flag.NewFlagSet("dlq-reprocess", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&brokers, "brokers", "", "comma-separated Kafka brokers (fallback: CHECKOUT_KAFKA_BROKERS)")
	fs.StringVar(&cfg.sourceTopic, "source-topic", kafka.TopicDeadLetterQueue, "dead letter topic to scan")
	fs.StringVar(&cfg.jobsTopic, "jobs-topic", kafka.TopicJobEvents, "topic for job feed records")
	fs.StringVar(&cfg.eventsTopic, "events-topic", kafka.TopicOrderEvents, "topic for order events from the outbox")
	fs.IntVar(&cfg.limit, "limit", defaultReplayLimit, "max records to scan")
	fs.BoolVar(&cfg.execute, "execute", false, "publish records; default is dry-run")
	fs.DurationVar(&cfg.idleTimeout, "idle-timeout", defaultIdleTimeout, "stop reading a partition after this idle period")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if strings.TrimSpace(brokers) == "" {
		brokers = getenv("CHECKOUT_KAFKA_BROKERS")
	}
	for _, broker := range strings.Split(brokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.brokers = append(cfg.brokers, broker)
		}
	}

	switch {
	case len(cfg.brokers) == 0:
		return config{}, errors.New("kafka brokers are required (-brokers or CHECKOUT_KAFKA_BROKERS)")
	case strings.TrimSpace(cfg.sourceTopic) == "":
		return config{}, errors.New("source-topic is required")
	case strings.TrimSpace(cfg.jobsTopic) == "" || strings.TrimSpace(cfg.eventsTopic) == "":
		return config{}, errors.New("jobs-topic and events-topic are required")
	case cfg.sourceTopic == cfg.jobsTopic || cfg.sourceTopic == cfg.eventsTopic:
		return config{}, fmt.Errorf("source-topic %s must differ from replay topics", cfg.sourceTopic)
	case cfg.limit <= 0:
		return config{}, errors.New("limit must be > 0")
	case cfg.idleTimeout <= 0:
		return config{}, errors.New("idle-timeout must be > 0")
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config) error {
	saramaCfg := sarama.NewConfig()
	saramaCfg.ClientID = "checkout-dlq-reprocess"
	saramaCfg.Consumer.Return.Errors = true

	client, err := sarama.NewClient(cfg.brokers, saramaCfg)
	if err != nil {
		return fmt.Errorf("create kafka client: %w", err)
	}
	defer client.Close()

	consumer, err := sarama.NewConsumerFromClient(client)
	if err != nil {
		return fmt.Errorf("create kafka consumer: %w", err)
	}
	defer consumer.Close()

	var producer *kafka.Producer
	if cfg.execute {
		if producer, err = kafka.NewProducer(cfg.brokers); err != nil {
			return err
		}
		defer producer.Close()
	}

	stats, err := replayTopic(ctx, cfg, client, consumer, producer)
	mode := "dry-run"
	if cfg.execute {
		mode = "execute"
	}
	log.WithFields(log.Fields{
		"mode":     mode,
		"scanned":  stats.scanned,
		"replayed": stats.replayed,
		"skipped":  stats.skipped,
	}).Info("dlq replay finished")
	return err
}

// replayTopic читает partition'ы DLQ от старых записей к новым, пока не
// дойдёт до high watermark на момент запуска или до limit.
func replayTopic(ctx context.Context, cfg config, client offsetClient, consumer sarama.Consumer, publisher kafka.EventPublisher) (replayStats, error) {
	var stats replayStats
	if cfg.execute && publisher == nil {
		return stats, errors.New("producer is required in execute mode")
	}

	partitions, err := client.Partitions(cfg.sourceTopic)
	if err != nil {
		return stats, fmt.Errorf("list partitions of %s: %w", cfg.sourceTopic, err)
	}
	slices.Sort(partitions)

	for _, partition := range partitions {
		if stats.scanned >= cfg.limit {
			break
		}
		if err := replayPartition(ctx, cfg, client, consumer, publisher, partition, &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func replayPartition(
	ctx context.Context,
	cfg config,
	client offsetClient,
	consumer sarama.Consumer,
	publisher kafka.EventPublisher,
	partition int32,
	stats *replayStats,
) error {
	oldest, err := client.GetOffset(cfg.sourceTopic, partition, sarama.OffsetOldest)
	if err != nil {
		return fmt.Errorf("oldest offset of partition %d: %w", partition, err)
	}
	newest, err := client.GetOffset(cfg.sourceTopic, partition, sarama.OffsetNewest)
	if err != nil {
		return fmt.Errorf("newest offset of partition %d: %w", partition, err)
	}
	if newest <= oldest {
		return nil
	}

	pc, err := consumer.ConsumePartition(cfg.sourceTopic, partition, oldest)
	if err != nil {
		return fmt.Errorf("consume partition %d: %w", partition, err)
	}
	defer pc.Close()

	idle := time.NewTimer(cfg.idleTimeout)
	defer idle.Stop()

	for stats.scanned < cfg.limit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-idle.C:
			return nil
		case consumerErr := <-pc.Errors():
			if consumerErr != nil {
				return fmt.Errorf("partition %d: %w", partition, consumerErr)
			}
		case msg, ok := <-pc.Messages():
			if !ok || msg == nil || msg.Offset >= newest {
				return nil
			}
			idle.Reset(cfg.idleTimeout)
			stats.scanned++

			fields := log.Fields{"partition": msg.Partition, "offset": msg.Offset}
			r, err := decodeDeadLetter(msg, cfg)
			if err != nil {
				stats.skipped++
				log.WithError(err).WithFields(fields).Warn("skip dlq record")
			} else if !cfg.execute {
				stats.replayed++
				log.WithFields(fields).WithFields(log.Fields{"topic": r.topic, "key": r.key}).Info("dlq replay candidate")
			} else {
				if err := publish(publisher, r); err != nil {
					return fmt.Errorf("replay offset %d of partition %d: %w", msg.Offset, partition, err)
				}
				stats.replayed++
			}

			if msg.Offset+1 >= newest {
				return nil
			}
		}
	}
	return nil
}

// decodeDeadLetter разбирает запись DLQ. Записи consumer'а ленты операций
// возвращаются в jobs-topic, выпавшие из outbox события заказов - в events-topic.
func decodeDeadLetter(msg *sarama.ConsumerMessage, cfg config) (replay, error) {
	var job jobDeadLetter
	if err := json.Unmarshal(msg.Value, &job); err != nil {
		return replay{}, fmt.Errorf("%w: %v", errNotReplayable, err)
	}
	if job.OriginalTopic == "" {
		job.OriginalTopic = headerValue(msg, kafka.HeaderOriginalTopic)
	}
	if len(job.OriginalValue) > 0 {
		return decodeJobDeadLetter(job, cfg)
	}

	var envelope deadLetterEnvelope
	if err := json.Unmarshal(msg.Value, &envelope); err != nil || len(envelope.Payload) == 0 {
		return replay{}, fmt.Errorf("%w: unknown record format", errNotReplayable)
	}
	var dead outboxDeadLetter
	if err := json.Unmarshal(envelope.Payload, &dead); err != nil {
		return replay{}, fmt.Errorf("%w: decode outbox record: %v", errNotReplayable, err)
	}
	if dead.OutboxID == "" {
		dead.OutboxID = envelope.ID
	}
	if dead.AggregateID == "" || dead.EventType == "" || len(dead.Payload) == 0 {
		return replay{}, fmt.Errorf("%w: outbox record %s has no original event", errNotReplayable, dead.OutboxID)
	}
	return replay{
		topic: cfg.eventsTopic,
		key:   dead.AggregateID,
		outbox: &domain.OutboxMessage{
			ID:            dead.OutboxID,
			AggregateType: dead.AggregateType,
			AggregateID:   dead.AggregateID,
			EventType:     dead.EventType,
			Payload:       dead.Payload,
		},
	}, nil
}

func decodeJobDeadLetter(job jobDeadLetter, cfg config) (replay, error) {
	if job.OriginalTopic != "" && job.OriginalTopic != cfg.jobsTopic {
		return replay{}, fmt.Errorf("%w: record came from %s", errNotReplayable, job.OriginalTopic)
	}

	value := []byte(job.OriginalValue)
	// нечитаемое исходное сообщение consumer сохраняет JSON-строкой
	var quoted string
	if json.Unmarshal(job.OriginalValue, &quoted) == nil {
		value = []byte(quoted)
	}
	if _, err := kafka.ParseJobEvent(&sarama.ConsumerMessage{Key: []byte(job.OriginalKey), Value: value}); err != nil {
		return replay{}, fmt.Errorf("%w: %v", errNotReplayable, err)
	}
	return replay{topic: cfg.jobsTopic, key: job.OriginalKey, job: value}, nil
}

func publish(publisher kafka.EventPublisher, r replay) error {
	if r.outbox != nil {
		return kafka.NewOutboxPublisher(publisher, r.topic).Publish(*r.outbox)
	}
	// счётчик попыток обнуляется, consumer снова получит полный набор retry
	return publisher.PublishEvent(r.topic, r.key, r.job,
		sarama.RecordHeader{Key: []byte(kafka.HeaderRetryCount), Value: []byte("0")})
}

func headerValue(msg *sarama.ConsumerMessage, key string) string {
	for _, header := range msg.Headers {
		if header != nil && string(header.Key) == key {
			return string(header.Value)
		}
	}
	return ""
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
