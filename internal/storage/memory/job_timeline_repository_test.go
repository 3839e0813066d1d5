package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/storage/memory"
)

func TestJobTimelineRepository_AppendList(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewJobTimelineRepository()
	now := time.Now().UTC()

	require.NoError(t, repo.Append(ctx, domain.JobStatusEvent{JobID: "job-1", Kind: "image_upload", Status: domain.JobStatusProcessing, OccurredAt: now}))
	require.NoError(t, repo.Append(ctx, domain.JobStatusEvent{JobID: "job-1", Kind: "image_upload", Status: domain.JobStatusCompleted, OccurredAt: now.Add(-time.Second)}))
	require.NoError(t, repo.Append(ctx, domain.JobStatusEvent{JobID: "job-2", Kind: "bulk_edit", Status: domain.JobStatusProcessing, OccurredAt: now}))

	events, err := repo.List(ctx, "job-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.JobStatusCompleted, events[1].Status, "insertion order wins over timestamps")

	events[0].Message = "mutated"
	again, _ := repo.List(ctx, "job-1")
	assert.Empty(t, again[0].Message)

	assert.ErrorIs(t, repo.Append(ctx, domain.JobStatusEvent{}), domain.ErrValidation)
}
