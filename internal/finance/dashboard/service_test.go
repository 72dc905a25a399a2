// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantoapp/quanto/internal/finance/dashboard"
)

// countingStore records how often the aggregation runs.
type countingStore struct {
	calls int
}

func (store *countingStore) Summarize(_ context.Context, userID int64, from, to time.Time) (*dashboard.Summary, error) {
	store.calls++
	return &dashboard.Summary{
		From:         from,
		To:           to,
		TotalIncome:  3000,
		TotalExpense: 1200,
		Balance:      1800,
		Categories:   []dashboard.CategoryBreakdown{},
		Goals:        []dashboard.GoalProgress{},
	}, nil
}

// mapCache is an in-memory [dashboard.Cache].
type mapCache struct {
	entries map[string]*dashboard.Summary
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]*dashboard.Summary)}
}

func (cache *mapCache) Lookup(_ context.Context, key string) (*dashboard.Summary, bool) {
	summary, found := cache.entries[key]
	return summary, found
}

func (cache *mapCache) Store(_ context.Context, key string, summary *dashboard.Summary) {
	cache.entries[key] = summary
}

/*
TestSummary_CachesResult verifies the read-through behavior: the second
request for the same user and range never reaches the store.
*/
func TestSummary_CachesResult(t *testing.T) {
	store := &countingStore{}
	service := dashboard.NewService(store, newMapCache(), nil)
	ctx := context.Background()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	first, err := service.Summary(ctx, 1, from, to)
	require.NoError(t, err)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, 1800.0, first.Balance)

	second, err := service.Summary(ctx, 1, from, to)
	require.NoError(t, err)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, first.Balance, second.Balance)
}

/*
TestSummary_CacheKeyIsolation verifies users and ranges never share entries.
*/
func TestSummary_CacheKeyIsolation(t *testing.T) {
	store := &countingStore{}
	service := dashboard.NewService(store, newMapCache(), nil)
	ctx := context.Background()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := service.Summary(ctx, 1, from, to)
	require.NoError(t, err)

	// A different user recomputes.
	_, err = service.Summary(ctx, 2, from, to)
	require.NoError(t, err)
	assert.Equal(t, 2, store.calls)

	// A different range recomputes as well.
	_, err = service.Summary(ctx, 1, from.AddDate(0, -1, 0), to)
	require.NoError(t, err)
	assert.Equal(t, 3, store.calls)
}
