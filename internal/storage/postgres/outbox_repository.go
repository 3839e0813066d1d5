package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// defaultOutboxLease - на это время выбранное сообщение скрыто от других реплик.
const defaultOutboxLease = 30 * time.Second

var knownOutboxEvents = map[string]struct{}{
	domain.EventOrderPlaced:               {},
	domain.EventOrderStatusChanged:        {},
	domain.EventOrderPaymentStatusChanged: {},
	domain.EventOrderItemReturned:         {},
}

// OutboxRepository хранит события заказов в таблице outbox_messages.
// Несколько реплик сервиса разбирают очередь через аренду (locked_until),
// события одного заказа выдаются строго по порядку создания.
type OutboxRepository struct {
	db    *sql.DB
	lease time.Duration
	now   func() time.Time
}

// NewOutboxRepository создаёт PostgreSQL-реализацию OutboxRepository.
func NewOutboxRepository(store *Store) *OutboxRepository {
	return &OutboxRepository{
		db:    store.DB(),
		lease: defaultOutboxLease,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// WithLease меняет срок аренды выбранных сообщений.
func (r *OutboxRepository) WithLease(lease time.Duration) *OutboxRepository {
	if lease > 0 {
		r.lease = lease
	}
	return r
}

func validateOutboxMessage(msg domain.OutboxMessage) error {
	if msg.AggregateID == "" {
		return domain.Invalid("outbox aggregate id is required")
	}
	if _, ok := knownOutboxEvents[msg.EventType]; !ok {
		return domain.Invalid("outbox event type %q is not supported", msg.EventType)
	}
	if len(msg.Payload) > 0 && !json.Valid(msg.Payload) {
		return domain.Invalid("outbox payload for %s must be JSON", msg.EventType)
	}
	return nil
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	if err := validateOutboxMessage(msg); err != nil {
		return domain.OutboxMessage{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.AggregateType == "" {
		msg.AggregateType = "order"
	}
	payload := msg.Payload
	if len(payload) == 0 {
		payload = []byte(`{}`)
	}
	now := r.now()

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO outbox_messages (
			id, aggregate_type, aggregate_id, event_type, payload,
			status, attempt_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, 'pending', 0, $6, $6)
	`, msg.ID, msg.AggregateType, msg.AggregateID, msg.EventType, payload, now); err != nil {
		if isUniqueViolation(err) {
			return domain.OutboxMessage{}, domain.ErrAlreadyExists
		}
		return domain.OutboxMessage{}, fmt.Errorf("enqueue %s for %s: %w", msg.EventType, msg.AggregateID, err)
	}

	msg.Payload = payload
	return msg, nil
}

// PullPending арендует до limit сообщений. Сообщение не выдаётся, пока более
// раннее pending-событие того же заказа арендовано другой репликой.
func (r *OutboxRepository) PullPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 100
	}
	now := r.now()

	rows, err := r.db.QueryContext(ctx, `
		UPDATE outbox_messages
		SET locked_until = $2
		WHERE id IN (
			SELECT m.id
			FROM outbox_messages m
			WHERE m.status = 'pending'
			  AND (m.locked_until IS NULL OR m.locked_until < $3)
			  AND NOT EXISTS (
				SELECT 1 FROM outbox_messages earlier
				WHERE earlier.aggregate_id = m.aggregate_id
				  AND earlier.status = 'pending'
				  AND earlier.created_at < m.created_at
				  AND earlier.locked_until >= $3
			  )
			ORDER BY m.created_at, m.id
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, aggregate_type, aggregate_id, event_type, payload, created_at
	`, limit, now.Add(r.lease), now)
	if err != nil {
		return nil, fmt.Errorf("lease pending outbox messages: %w", err)
	}
	defer rows.Close()

	type leased struct {
		msg       domain.OutboxMessage
		createdAt time.Time
	}
	batch := make([]leased, 0, limit)
	for rows.Next() {
		var item leased
		if err := rows.Scan(
			&item.msg.ID,
			&item.msg.AggregateType,
			&item.msg.AggregateID,
			&item.msg.EventType,
			&item.msg.Payload,
			&item.createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan outbox message: %w", err)
		}
		batch = append(batch, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox rows: %w", err)
	}

	// RETURNING не сохраняет порядок подзапроса
	sort.SliceStable(batch, func(i, j int) bool {
		if !batch[i].createdAt.Equal(batch[j].createdAt) {
			return batch[i].createdAt.Before(batch[j].createdAt)
		}
		return batch[i].msg.ID < batch[j].msg.ID
	})

	result := make([]domain.OutboxMessage, 0, len(batch))
	for _, item := range batch {
		result = append(result, item.msg)
	}
	return result, nil
}

func (r *OutboxRepository) Stats(ctx context.Context) (domain.OutboxStats, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		stats  domain.OutboxStats
		oldest sql.NullTime
	)
	if err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), MIN(created_at)
		FROM outbox_messages
		WHERE status = 'pending'
	`).Scan(&stats.PendingCount, &oldest); err != nil {
		return domain.OutboxStats{}, fmt.Errorf("outbox stats query failed: %w", err)
	}
	if oldest.Valid {
		stats.OldestPendingAt = oldest.Time.UTC()
	}
	return stats, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id string) error {
	return r.finish(ctx, id, "sent")
}

// MarkFailed закрывает сообщение после исчерпания попыток; повторная
// доставка идёт через DLQ.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id string) error {
	return r.finish(ctx, id, "failed")
}

func (r *OutboxRepository) finish(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE outbox_messages
		SET status = $2,
		    attempt_count = attempt_count + 1,
		    locked_until = NULL,
		    updated_at = $3
		WHERE id = $1 AND status = 'pending'
	`, id, status, r.now())
	if err != nil {
		return fmt.Errorf("mark outbox message %s as %s: %w", id, status, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for outbox %s: %w", status, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: message %s is not pending", domain.ErrOutboxPublish, id)
	}
	return nil
}

var _ domain.OutboxRepository = (*OutboxRepository)(nil)
