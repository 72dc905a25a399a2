// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/quantoapp/quanto/internal/platform/apperr"
	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/internal/platform/validate"
)

const resourceName = "Financial goal"

// Service exposes goal operations scoped to the authenticated user.
type Service struct {
	*crud.Service[*Goal, DTO]

	repository Repository
	logger     *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	svc := &Service{
		repository: repository,
		logger:     logger,
	}

	svc.Service = crud.NewService(crud.ServiceConfig[*Goal, DTO]{
		Resource: resourceName,
		Store:    repository,
		Mapper:   mapper{},
		Scoped:   true,
		Logger:   logger,
		Validate: func(_ context.Context, _ int64, v *validate.Validator, dto DTO) error {
			v.Required(FieldName, dto.Name).
				MaxLen(FieldName, dto.Name, 100).
				Amount(FieldTargetAmount, dto.TargetAmount).
				NonNegativeAmount(FieldCurrentAmount, dto.CurrentAmount)

			if dto.Status != "" {
				v.OneOf(FieldStatus, dto.Status,
					string(StatusActive), string(StatusCompleted), string(StatusCancelled))
			}

			if dto.Deadline != nil {
				v.Custom(FieldDeadline, dto.Deadline.Before(time.Now()), "Must be in the future", dto.Deadline.Format(time.RFC3339))
			}
			return nil
		},
	})

	return svc
}

// AddProgress records a contribution toward the goal and returns the
// updated state. The goal completes automatically once the target amount
// is reached.
func (s *Service) AddProgress(ctx context.Context, ownerID, id int64, req ProgressRequest) (DTO, error) {
	v := &validate.Validator{}
	v.Amount(FieldAmount, req.Amount)
	if err := v.Err(); err != nil {
		return DTO{}, err
	}

	entity, err := s.repository.AddProgress(ctx, id, ownerID, req.Amount)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return DTO{}, apperr.NotFoundID(resourceName, id)
		}
		return DTO{}, err
	}

	s.logger.Info("goal_progress_added",
		slog.Int64("id", id),
		slog.Float64("amount", req.Amount),
		slog.String("status", string(entity.Status)),
	)
	return mapper{}.ToDTO(entity), nil
}
