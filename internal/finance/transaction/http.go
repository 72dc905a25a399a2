// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package transaction

import (
	"github.com/quantoapp/quanto/internal/platform/crud"
)

// NewHandler wires the transaction service into the generic REST handler.
func NewHandler(service *Service) *crud.Handler[*Transaction, DTO] {
	return crud.NewHandler(service.Service, crud.HandlerConfig{
		Singular: "Transaction",
		Plural:   "Transactions",
		Filters:  []string{"type", "categoryId"},
	})
}
