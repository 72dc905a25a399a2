// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package category

import (
	"github.com/quantoapp/quanto/internal/platform/crud"
)

// NewHandler wires the category service into the generic REST handler.
func NewHandler(service *Service) *crud.Handler[*Category, DTO] {
	return crud.NewHandler(service.Service, crud.HandlerConfig{
		Singular: "Transaction category",
		Plural:   "Transaction categories",
		Filters:  []string{"type", "parentId"},
	})
}
