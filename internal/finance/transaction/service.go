// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package transaction

import (
	"context"
	"log/slog"

	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/internal/platform/validate"
)

// CategoryChecker answers whether a category id is visible to a user. The
// category store satisfies it.
type CategoryChecker interface {
	Exists(ctx context.Context, id, ownerID int64) (bool, error)
}

// Service exposes transaction operations scoped to the authenticated user.
type Service struct {
	*crud.Service[*Transaction, DTO]
}

func NewService(store crud.Store[*Transaction], categories CategoryChecker, logger *slog.Logger) *Service {
	svc := &Service{}

	svc.Service = crud.NewService(crud.ServiceConfig[*Transaction, DTO]{
		Resource: "Transaction",
		Store:    store,
		Mapper:   mapper{},
		Scoped:   true,
		Logger:   logger,
		Validate: func(ctx context.Context, ownerID int64, v *validate.Validator, dto DTO) error {
			v.Amount(FieldAmount, dto.Amount).
				OneOf(FieldType, dto.Type, string(KindIncome), string(KindExpense)).
				Required(FieldDescription, dto.Description).
				MaxLen(FieldDescription, dto.Description, 255)

			v.Custom(FieldOccurredAt, dto.OccurredAt.IsZero(), "Must be provided", nil)

			if dto.CategoryID <= 0 {
				v.Add(FieldCategoryID, "Must reference a category", dto.CategoryID)
			} else {
				exists, err := categories.Exists(ctx, dto.CategoryID, ownerID)
				if err != nil {
					return err
				}
				v.Custom(FieldCategoryID, !exists, "Category does not exist", dto.CategoryID)
			}
			return nil
		},
	})

	return svc
}
