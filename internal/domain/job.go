package domain

import "time"

// JobStatus - статус фоновой массовой операции (загрузка изображений, массовое редактирование).
type JobStatus string

const (
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Valid проверяет, что статус задачи поддерживается.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusProcessing, JobStatusCompleted, JobStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal - после completed/failed событий по задаче быть не должно.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// JobStatusEvent - запись ленты статусов массовой операции.
type JobStatusEvent struct {
	JobID      string    `json:"job_id"`
	Kind       string    `json:"kind"`
	Status     JobStatus `json:"status"`
	Message    string    `json:"message,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
