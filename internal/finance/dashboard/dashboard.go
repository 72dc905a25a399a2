// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

/*
Package dashboard aggregates a user's financial position over a date range.

The summary combines ledger totals, a per-category expense breakdown, and
goal progress in one payload. Results are cached in Redis for a short TTL
since the underlying aggregation touches every transaction in range.
*/
package dashboard

import (
	"context"
	"time"
)

// Summary is the aggregated dashboard payload.
type Summary struct {
	From         time.Time           `json:"from"`
	To           time.Time           `json:"to"`
	TotalIncome  float64             `json:"totalIncome"`
	TotalExpense float64             `json:"totalExpense"`
	Balance      float64             `json:"balance"`
	Categories   []CategoryBreakdown `json:"categories"`
	Goals        []GoalProgress      `json:"goals"`
}

// CategoryBreakdown is one category's share of spending in range.
type CategoryBreakdown struct {
	CategoryID int64   `json:"categoryId"`
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

// GoalProgress is one goal's completion state.
type GoalProgress struct {
	GoalID        int64   `json:"goalId"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Progress      float64 `json:"progress"`
	Status        string  `json:"status"`
}

// Store is the aggregation port.
type Store interface {
	// Summarize computes the summary for one user over [from, to].
	Summarize(ctx context.Context, userID int64, from, to time.Time) (*Summary, error)
}

// Cache is the read-through cache port. Lookup misses report found=false
// rather than an error.
type Cache interface {
	Lookup(ctx context.Context, key string) (*Summary, bool)
	Store(ctx context.Context, key string, summary *Summary)
}
