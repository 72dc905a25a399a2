// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quantoapp/quanto/internal/platform/constants"
)

// Service computes dashboard summaries through a read-through cache.
type Service struct {
	store  Store
	cache  Cache
	logger *slog.Logger
}

func NewService(store Store, cache Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Summary returns the aggregated view for one user over [from, to].
//
// Cached entries are keyed per user and range, so two users (or two ranges)
// never share a summary.
func (service *Service) Summary(ctx context.Context, userID int64, from, to time.Time) (*Summary, error) {
	key := cacheKey(userID, from, to)

	if cached, ok := service.cache.Lookup(ctx, key); ok {
		return cached, nil
	}

	summary, err := service.store.Summarize(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	service.cache.Store(ctx, key, summary)

	service.logger.Debug("dashboard_summary_computed",
		slog.Int64("user_id", userID),
		slog.Time("from", from),
		slog.Time("to", to),
	)
	return summary, nil
}

func cacheKey(userID int64, from, to time.Time) string {
	return fmt.Sprintf("%s%d:%s:%s",
		constants.RedisPrefixDashboard, userID,
		from.Format("2006-01-02"), to.Format("2006-01-02"))
}
