// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantoapp/quanto/internal/platform/database/schema"
	"github.com/quantoapp/quanto/internal/platform/dberr"
	"github.com/quantoapp/quanto/pkg/slice"
)

// PostgresStore implements [Store] with three aggregation queries: ledger
// totals, the per-category expense breakdown, and goal progress.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (store *PostgresStore) Summarize(context context.Context, userID int64, from, to time.Time) (*Summary, error) {
	summary := &Summary{
		From:       from,
		To:         to,
		Categories: make([]CategoryBreakdown, 0),
		Goals:      make([]GoalProgress, 0),
	}

	if err := store.loadTotals(context, summary, userID, from, to); err != nil {
		return nil, err
	}
	if err := store.loadCategoryBreakdown(context, summary, userID, from, to); err != nil {
		return nil, err
	}
	if err := store.loadGoalProgress(context, summary, userID); err != nil {
		return nil, err
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return summary, nil
}

func (store *PostgresStore) loadTotals(context context.Context, summary *Summary, userID int64, from, to time.Time) error {
	ref := schema.RefTransaction
	query := fmt.Sprintf(`
		SELECT
			COALESCE(SUM(%s) FILTER (WHERE %s = 'income'), 0),
			COALESCE(SUM(%s) FILTER (WHERE %s = 'expense'), 0)
		FROM %s
		WHERE %s = $1 AND %s BETWEEN $2 AND $3
	`,
		ref.Amount, ref.Kind,
		ref.Amount, ref.Kind,
		ref.Table,
		ref.UserID, ref.OccurredAt,
	)

	err := store.pool.QueryRow(context, query, userID, from, to).
		Scan(&summary.TotalIncome, &summary.TotalExpense)
	if err != nil {
		return dberr.Wrap(err, "dashboard_totals")
	}

	return nil
}

func (store *PostgresStore) loadCategoryBreakdown(context context.Context, summary *Summary, userID int64, from, to time.Time) error {
	tx := schema.RefTransaction
	cat := schema.RefCategory
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, COALESCE(SUM(t.%s), 0) AS total
		FROM %s t
		JOIN %s c ON t.%s = c.%s
		WHERE t.%s = $1 AND t.%s = 'expense' AND t.%s BETWEEN $2 AND $3
		GROUP BY c.%s, c.%s
		ORDER BY total DESC
	`,
		cat.ID, cat.Name, tx.Amount,
		tx.Table,
		cat.Table, tx.CategoryID, cat.ID,
		tx.UserID, tx.Kind, tx.OccurredAt,
		cat.ID, cat.Name,
	)

	rows, err := store.pool.Query(context, query, userID, from, to)
	if err != nil {
		return dberr.Wrap(err, "dashboard_category_breakdown")
	}
	defer rows.Close()

	for rows.Next() {
		entry := CategoryBreakdown{}
		if err := rows.Scan(&entry.CategoryID, &entry.Name, &entry.Total); err != nil {
			return dberr.Wrap(err, "scan_category_breakdown")
		}
		summary.Categories = append(summary.Categories, entry)
	}
	if err := rows.Err(); err != nil {
		return dberr.Wrap(err, "dashboard_category_breakdown")
	}

	// Percentages are relative to total spending in range.
	spent := slice.Sum(summary.Categories, func(entry CategoryBreakdown) float64 { return entry.Total })
	if spent > 0 {
		for index := range summary.Categories {
			summary.Categories[index].Percentage = summary.Categories[index].Total / spent * 100
		}
	}

	return nil
}

func (store *PostgresStore) loadGoalProgress(context context.Context, summary *Summary, userID int64) error {
	ref := schema.RefGoal
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s <> 'cancelled'
		ORDER BY %s ASC
	`,
		ref.ID, ref.Name, ref.TargetAmount, ref.CurrentAmount, ref.Status,
		ref.Table,
		ref.UserID, ref.Status,
		ref.CreatedAt,
	)

	rows, err := store.pool.Query(context, query, userID)
	if err != nil {
		return dberr.Wrap(err, "dashboard_goal_progress")
	}
	defer rows.Close()

	for rows.Next() {
		entry := GoalProgress{}
		if err := rows.Scan(&entry.GoalID, &entry.Name, &entry.TargetAmount, &entry.CurrentAmount, &entry.Status); err != nil {
			return dberr.Wrap(err, "scan_goal_progress")
		}
		if entry.TargetAmount > 0 {
			entry.Progress = entry.CurrentAmount / entry.TargetAmount * 100
			if entry.Progress > 100 {
				entry.Progress = 100
			}
		}
		summary.Goals = append(summary.Goals, entry)
	}

	return dberr.Wrap(rows.Err(), "dashboard_goal_progress")
}
