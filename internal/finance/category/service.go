// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package category

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/internal/platform/validate"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Service exposes category operations scoped to the authenticated user.
type Service struct {
	*crud.Service[*Category, DTO]
}

func NewService(store crud.Store[*Category], logger *slog.Logger) *Service {
	svc := &Service{}

	svc.Service = crud.NewService(crud.ServiceConfig[*Category, DTO]{
		Resource: "Transaction category",
		Store:    store,
		Mapper:   mapper{},
		Scoped:   true,
		Logger:   logger,
		Validate: func(ctx context.Context, ownerID int64, v *validate.Validator, dto DTO) error {
			v.Required(FieldName, dto.Name).
				MaxLen(FieldName, dto.Name, 100).
				OneOf(FieldType, dto.Type, string(KindIncome), string(KindExpense))

			if dto.Color != "" {
				v.Custom(FieldColor, !hexColorPattern.MatchString(dto.Color), "Must be a hex color such as #22C55E", dto.Color)
			}

			if dto.ParentID != nil {
				exists, err := store.Exists(ctx, *dto.ParentID, ownerID)
				if err != nil {
					return err
				}
				v.Custom(FieldParentID, !exists, "Parent category does not exist", *dto.ParentID)
			}
			return nil
		},
	})

	return svc
}
