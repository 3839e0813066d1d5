// Package jobs ведёт ленты статусов фоновых массовых операций.
package jobs

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/metrics"
)

// Tracker дописывает события задач в ленту. processing может повторяться,
// completed и failed завершают ленту.
type Tracker struct {
	repo    domain.JobTimelineRepository
	metrics *metrics.LifecycleMetrics
	logger  *log.Entry
	now     func() time.Time

	// mu сериализует проверку последнего статуса и запись.
	mu sync.Mutex
}

// NewTracker создаёт трекер поверх репозитория лент.
func NewTracker(repo domain.JobTimelineRepository, m *metrics.LifecycleMetrics, logger *log.Entry) *Tracker {
	if logger == nil {
		logger = log.New().WithField("component", "job-tracker")
	}
	return &Tracker{
		repo:    repo,
		metrics: m,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Record проверяет событие и дописывает его в ленту задачи.
func (t *Tracker) Record(ctx context.Context, event domain.JobStatusEvent) error {
	event.JobID = strings.TrimSpace(event.JobID)
	event.Kind = strings.TrimSpace(event.Kind)
	if event.JobID == "" {
		return domain.Invalid("job_id is required")
	}
	if !event.Status.Valid() {
		return domain.Invalid("job status %q is not supported", event.Status)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = t.now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	history, err := t.repo.List(ctx, event.JobID)
	if err != nil {
		return fmt.Errorf("load job timeline: %w", err)
	}
	if n := len(history); n > 0 {
		last := history[n-1]
		if last.Status.IsTerminal() {
			return fmt.Errorf("%w: job %s is already %s", domain.ErrInvalidTransition, event.JobID, last.Status)
		}
		if event.Kind == "" {
			event.Kind = last.Kind
		} else if last.Kind != "" && last.Kind != event.Kind {
			return domain.Invalid("job %s is of kind %q, got %q", event.JobID, last.Kind, event.Kind)
		}
	}

	if err := t.repo.Append(ctx, event); err != nil {
		return fmt.Errorf("append job event: %w", err)
	}

	t.metrics.RecordJobEvent(event.Status)
	t.logger.WithFields(log.Fields{
		"job_id": event.JobID,
		"kind":   event.Kind,
		"status": event.Status,
	}).Debug("job event recorded")
	return nil
}

// Timeline возвращает ленту задачи в порядке записи.
func (t *Tracker) Timeline(ctx context.Context, jobID string) ([]domain.JobStatusEvent, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, domain.Invalid("job_id is required")
	}
	return t.repo.List(ctx, jobID)
}
