// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

/*
Package category implements transaction categories and their subcategory
hierarchy.

Categories are user-owned classification labels for ledger entries. A
category may reference a parent category, giving each user a two-level
hierarchy (e.g. "Food" → "Restaurants"). Names are unique per user.
*/
package category

import (
	"time"

	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/pkg/pointer"
	"github.com/quantoapp/quanto/pkg/slug"
)

// Kind classifies a category as income or expense.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Presentation defaults applied when the client omits them.
const (
	DefaultColor = "#6366F1"
	DefaultIcon  = "tag"
)

// Category is the persisted entity.
type Category struct {
	crud.Auditable

	UserID   int64 `json:"-"`
	ParentID *int64
	Name     string
	Slug     string
	Kind     Kind
	Color    string
	Icon     string
}

// OwnerID implements [crud.Owned].
func (c *Category) OwnerID() int64 { return c.UserID }

// SetOwnerID implements [crud.Owned].
func (c *Category) SetOwnerID(id int64) { c.UserID = id }

// DTO is the unified wire representation used for create, update, and
// response payloads. Server-assigned fields present in incoming payloads
// (id, slug, timestamps) are discarded by the mapper.
type DTO struct {
	ID        int64      `json:"id,omitempty"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	ParentID  *int64     `json:"parentId,omitempty"`
	Color     string     `json:"color,omitempty"`
	Icon      string     `json:"icon,omitempty"`
	Slug      string     `json:"slug,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Global field names for validation
const (
	FieldName     = "name"
	FieldType     = "type"
	FieldParentID = "parentId"
	FieldColor    = "color"
)

// mapper implements [crud.Mapper] for the category domain.
type mapper struct{}

func (mapper) ToDTO(entity *Category) DTO {
	return DTO{
		ID:        entity.ID,
		Name:      entity.Name,
		Type:      string(entity.Kind),
		ParentID:  entity.ParentID,
		Color:     entity.Color,
		Icon:      entity.Icon,
		Slug:      entity.Slug,
		CreatedAt: pointer.To(entity.CreatedAt),
		UpdatedAt: pointer.To(entity.UpdatedAt),
	}
}

func (mapper) NewEntity(dto DTO) *Category {
	entity := &Category{}
	applyMutable(dto, entity)
	return entity
}

func (mapper) ApplyDTO(dto DTO, entity *Category) {
	applyMutable(dto, entity)
}

// applyMutable copies the client-controlled fields, derives the slug, and
// fills presentation defaults. Identity, audit, and ownership fields are
// deliberately untouched.
func applyMutable(dto DTO, entity *Category) {
	entity.Name = dto.Name
	entity.Kind = Kind(dto.Type)
	entity.ParentID = dto.ParentID
	entity.Slug = slug.From(dto.Name)

	entity.Color = dto.Color
	if entity.Color == "" {
		entity.Color = DefaultColor
	}
	entity.Icon = dto.Icon
	if entity.Icon == "" {
		entity.Icon = DefaultIcon
	}
}
