package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

// jobTimelineRepositoryInMemory хранит ленты статусов массовых операций.
type jobTimelineRepositoryInMemory struct {
	mu     sync.RWMutex
	events map[string][]domain.JobStatusEvent
}

// NewJobTimelineRepository создаёт in-memory реализацию JobTimelineRepository.
func NewJobTimelineRepository() domain.JobTimelineRepository {
	return &jobTimelineRepositoryInMemory{events: make(map[string][]domain.JobStatusEvent)}
}

// Append дописывает событие в конец ленты задачи. Порядок - порядок добавления.
func (r *jobTimelineRepositoryInMemory) Append(_ context.Context, event domain.JobStatusEvent) error {
	if event.JobID == "" {
		return domain.Invalid("job_id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[event.JobID] = append(r.events[event.JobID], event)
	return nil
}

// List возвращает копию ленты задачи.
func (r *jobTimelineRepositoryInMemory) List(_ context.Context, jobID string) ([]domain.JobStatusEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := r.events[jobID]
	result := make([]domain.JobStatusEvent, len(events))
	copy(result, events)
	return result, nil
}

var _ domain.JobTimelineRepository = (*jobTimelineRepositoryInMemory)(nil)
