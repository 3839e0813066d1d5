package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticLookup_Inventory(t *testing.T) {
	lookup := NewStaticLookup(map[string]int64{"v-1": 3})
	lookup.Set("v-2", 0)

	got, err := lookup.Inventory(context.Background(), []string{"v-1", "v-2", "v-unknown"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"v-1": 3, "v-2": 0}, got)
	assert.Equal(t, 1, lookup.Calls)
}

func TestStaticLookup_Errors(t *testing.T) {
	lookup := NewStaticLookup(nil)
	lookup.Err = errors.New("warehouse offline")

	_, err := lookup.Inventory(context.Background(), []string{"v-1"})
	assert.EqualError(t, err, "warehouse offline")

	lookup.Err = nil
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = lookup.Inventory(ctx, []string{"v-1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, lookup.Calls)
}
