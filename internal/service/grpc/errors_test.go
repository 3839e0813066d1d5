package grpcsvc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/checkout/internal/domain"
)

func TestToStatus_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   codes.Code
		reason string
	}{
		{"validation", domain.Invalid("qty must be positive"), codes.InvalidArgument, "VALIDATION"},
		{"not found", fmt.Errorf("load: %w", domain.ErrOrderNotFound), codes.NotFound, "NOT_FOUND"},
		{"version conflict", domain.ErrVersionConflict, codes.Aborted, "VERSION_CONFLICT"},
		{"payment guard", &domain.TransitionError{From: domain.OrderStatusPending, To: domain.OrderStatusProcessing, Err: domain.ErrPaymentNotConfirmed}, codes.FailedPrecondition, "PAYMENT_NOT_CONFIRMED"},
		{"out of stock", domain.ErrOutOfStockBlock, codes.FailedPrecondition, "OUT_OF_STOCK"},
		{"coupon", domain.ErrInvalidCode, codes.FailedPrecondition, "INVALID_CODE"},
		{"exists", domain.ErrAlreadyExists, codes.AlreadyExists, "INTERNAL"},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := toStatus(tt.err)
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
			assert.Equal(t, tt.reason, ReasonFromError(err))
		})
	}
}

func TestToStatus_HidesInternalErrors(t *testing.T) {
	err := toStatus(errors.New("pq: connection refused to 10.0.0.3"))

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
	assert.Equal(t, "INTERNAL", ReasonFromError(err))
}

func TestToStatus_PassesThroughStatusErrors(t *testing.T) {
	original := status.Error(codes.Unavailable, "draining")

	assert.Equal(t, original, toStatus(original))
	assert.NoError(t, toStatus(nil))
	assert.Empty(t, ReasonFromError(original))
	assert.Empty(t, ReasonFromError(errors.New("plain")))
}
