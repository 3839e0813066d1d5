package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
	"github.com/vladislavdragonenkov/checkout/internal/metrics"
	"github.com/vladislavdragonenkov/checkout/internal/storage/memory"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	return NewTracker(memory.NewJobTimelineRepository(), metrics.NewLifecycleMetricsWithRegisterer(prometheus.NewRegistry()), nil)
}

func TestTracker_RecordsUntilTerminal(t *testing.T) {
	t.Parallel()

	tracker := newTestTracker(t)
	ctx := context.Background()
	at := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

	require.NoError(t, tracker.Record(ctx, domain.JobStatusEvent{JobID: "job-1", Kind: "image_upload", Status: domain.JobStatusProcessing, Message: "1/3", OccurredAt: at}))
	require.NoError(t, tracker.Record(ctx, domain.JobStatusEvent{JobID: "job-1", Status: domain.JobStatusProcessing, Message: "2/3"}))
	require.NoError(t, tracker.Record(ctx, domain.JobStatusEvent{JobID: " job-1 ", Kind: "image_upload", Status: domain.JobStatusCompleted}))

	err := tracker.Record(ctx, domain.JobStatusEvent{JobID: "job-1", Status: domain.JobStatusProcessing})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	timeline, err := tracker.Timeline(ctx, "job-1")
	require.NoError(t, err)
	require.Len(t, timeline, 3)
	assert.Equal(t, at, timeline[0].OccurredAt)
	assert.Equal(t, "image_upload", timeline[1].Kind)
	assert.False(t, timeline[1].OccurredAt.IsZero())
	assert.Equal(t, domain.JobStatusCompleted, timeline[2].Status)
}

func TestTracker_RejectsInvalidEvents(t *testing.T) {
	t.Parallel()

	tracker := newTestTracker(t)
	ctx := context.Background()

	assert.ErrorIs(t, tracker.Record(ctx, domain.JobStatusEvent{Status: domain.JobStatusProcessing}), domain.ErrValidation)
	assert.ErrorIs(t, tracker.Record(ctx, domain.JobStatusEvent{JobID: "job-2", Status: "queued"}), domain.ErrValidation)

	require.NoError(t, tracker.Record(ctx, domain.JobStatusEvent{JobID: "job-2", Kind: "bulk_edit", Status: domain.JobStatusProcessing}))
	assert.ErrorIs(t, tracker.Record(ctx, domain.JobStatusEvent{JobID: "job-2", Kind: "image_upload", Status: domain.JobStatusFailed}), domain.ErrValidation)

	_, err := tracker.Timeline(ctx, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTracker_FailedIsTerminal(t *testing.T) {
	t.Parallel()

	tracker := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tracker.Record(ctx, domain.JobStatusEvent{JobID: "job-3", Status: domain.JobStatusFailed, Message: "bad csv"}))
	assert.ErrorIs(t, tracker.Record(ctx, domain.JobStatusEvent{JobID: "job-3", Status: domain.JobStatusCompleted}), domain.ErrInvalidTransition)

	timeline, err := tracker.Timeline(ctx, "job-unknown")
	require.NoError(t, err)
	assert.Empty(t, timeline)
}
