package trawler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramhound/dramhound/constants"
	"github.com/dramhound/dramhound/internal/common"
)

func TestRunBatchPreservesOrder(t *testing.T) {
	env := newTestEnv(t)
	urls := []string{
		"https://bar.example/a",
		"https://bar.example/b",
		"https://bar.example/c",
	}
	for i, u := range urls {
		env.addPage(u, "menu", fmt.Sprintf("hash-%d", i))
	}

	items, err := env.svc.RunBatch(context.Background(), BatchRequest{
		BarID: env.barID, URLs: urls,
	})
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, urls[i], item.URL, "items must match submission order")
		assert.Equal(t, string(constants.JobStatusCompleted), item.Status)
		require.NotNil(t, item.JobID)
	}
}

func TestRunBatchIsolatesFailures(t *testing.T) {
	env := newTestEnv(t)
	env.addPage("https://bar.example/a", "menu", "h-a")
	env.fetcher.errs["https://bar.example/b"] = fmt.Errorf("%w: status 500", common.ErrFetch)
	env.addPage("https://bar.example/c", "menu", "h-c")

	items, err := env.svc.RunBatch(context.Background(), BatchRequest{
		BarID: env.barID,
		URLs: []string{
			"https://bar.example/a",
			"https://bar.example/b",
			"https://bar.example/c",
		},
	})
	require.NoError(t, err, "one failing URL must not fail the batch")
	require.Len(t, items, 3)

	assert.Equal(t, string(constants.JobStatusCompleted), items[0].Status)
	assert.Equal(t, string(constants.JobStatusFailed), items[1].Status)
	assert.Contains(t, items[1].Error, "500")
	require.NotNil(t, items[1].Result)
	assert.False(t, items[1].Result.Success)
	require.NotNil(t, items[1].JobID, "a failed fetch still leaves a FAILED job")
	assert.Equal(t, string(constants.JobStatusCompleted), items[2].Status)
}

func TestRunBatchRejectedURLHasNoJob(t *testing.T) {
	env := newTestEnv(t)
	env.addPage("https://bar.example/a", "menu", "h-a")
	env.validator.blocked["http://10.0.0.5/menu"] = "private address"

	items, err := env.svc.RunBatch(context.Background(), BatchRequest{
		BarID: env.barID,
		URLs:  []string{"https://bar.example/a", "http://10.0.0.5/menu"},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "REJECTED", items[1].Status)
	assert.Nil(t, items[1].JobID)
	assert.Equal(t, 1, env.jobs.count(), "only the safe URL produced a job")
}

func TestRunBatchSizeLimits(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.RunBatch(context.Background(), BatchRequest{BarID: env.barID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))

	urls := make([]string, MaxBatchURLs+1)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://bar.example/%d", i)
	}
	_, err = env.svc.RunBatch(context.Background(), BatchRequest{BarID: env.barID, URLs: urls})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.Zero(t, env.jobs.count())
}

func TestRunBatchUnknownBar(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.RunBatch(context.Background(), BatchRequest{
		BarID: uuid.New(),
		URLs:  []string{"https://bar.example/a"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRunBatchStopsOnCancellation(t *testing.T) {
	env := newTestEnv(t)
	env.addPage("https://bar.example/a", "menu", "h-a")
	env.addPage("https://bar.example/b", "menu", "h-b")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := env.svc.RunBatch(ctx, BatchRequest{
		BarID: env.barID,
		URLs:  []string{"https://bar.example/a", "https://bar.example/b"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, items)
}
