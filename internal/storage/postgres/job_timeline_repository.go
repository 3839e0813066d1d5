package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

type jobTimelineRepository struct {
	db *sql.DB
}

// NewJobTimelineRepository создаёт PostgreSQL-реализацию JobTimelineRepository.
func NewJobTimelineRepository(store *Store) domain.JobTimelineRepository {
	return &jobTimelineRepository{db: store.DB()}
}

func (r *jobTimelineRepository) Append(ctx context.Context, event domain.JobStatusEvent) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if event.JobID == "" {
		return domain.Invalid("job_id is required")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO job_status_events (job_id, kind, status, message, occurred_at)
		VALUES ($1,$2,$3,$4,$5)
	`, event.JobID, event.Kind, string(event.Status), event.Message, event.OccurredAt); err != nil {
		return fmt.Errorf("append job status event: %w", err)
	}

	return nil
}

// List возвращает события задачи в порядке добавления.
func (r *jobTimelineRepository) List(ctx context.Context, jobID string) ([]domain.JobStatusEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT job_id, kind, status, message, occurred_at
		FROM job_status_events
		WHERE job_id = $1
		ORDER BY id ASC
	`, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job status events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.JobStatusEvent, 0)
	for rows.Next() {
		var (
			event  domain.JobStatusEvent
			status string
		)
		if err := rows.Scan(&event.JobID, &event.Kind, &status, &event.Message, &event.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan job status event: %w", err)
		}
		event.Status = domain.JobStatus(status)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate job status events: %w", err)
	}

	return events, nil
}

var _ domain.JobTimelineRepository = (*jobTimelineRepository)(nil)
