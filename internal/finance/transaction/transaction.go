// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

/*
Package transaction implements the ledger of income and expense entries.

Every transaction belongs to one user and references one of that user's
categories. Amounts are stored as positive values; the kind field decides
whether an entry adds to or subtracts from the balance.
*/
package transaction

import (
	"time"

	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/pkg/pointer"
)

// Kind classifies a transaction as income or expense.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Transaction is the persisted entity.
type Transaction struct {
	crud.Auditable

	UserID      int64 `json:"-"`
	CategoryID  int64
	Kind        Kind
	Amount      float64
	Description string
	Notes       string
	OccurredAt  time.Time
}

// OwnerID implements [crud.Owned].
func (t *Transaction) OwnerID() int64 { return t.UserID }

// SetOwnerID implements [crud.Owned].
func (t *Transaction) SetOwnerID(id int64) { t.UserID = id }

// DTO is the unified wire representation for create, update, and response
// payloads.
type DTO struct {
	ID          int64      `json:"id,omitempty"`
	Amount      float64    `json:"amount"`
	Type        string     `json:"type"`
	CategoryID  int64      `json:"categoryId"`
	Description string     `json:"description"`
	Notes       string     `json:"notes,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Global field names for validation
const (
	FieldAmount      = "amount"
	FieldType        = "type"
	FieldCategoryID  = "categoryId"
	FieldDescription = "description"
	FieldOccurredAt  = "occurredAt"
)

// mapper implements [crud.Mapper] for the transaction domain.
type mapper struct{}

func (mapper) ToDTO(entity *Transaction) DTO {
	return DTO{
		ID:          entity.ID,
		Amount:      entity.Amount,
		Type:        string(entity.Kind),
		CategoryID:  entity.CategoryID,
		Description: entity.Description,
		Notes:       entity.Notes,
		OccurredAt:  entity.OccurredAt,
		CreatedAt:   pointer.To(entity.CreatedAt),
		UpdatedAt:   pointer.To(entity.UpdatedAt),
	}
}

func (mapper) NewEntity(dto DTO) *Transaction {
	entity := &Transaction{}
	applyMutable(dto, entity)
	return entity
}

func (mapper) ApplyDTO(dto DTO, entity *Transaction) {
	applyMutable(dto, entity)
}

func applyMutable(dto DTO, entity *Transaction) {
	entity.Amount = dto.Amount
	entity.Kind = Kind(dto.Type)
	entity.CategoryID = dto.CategoryID
	entity.Description = dto.Description
	entity.Notes = dto.Notes
	entity.OccurredAt = dto.OccurredAt
}
