// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package category_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantoapp/quanto/internal/finance/category"
	"github.com/quantoapp/quanto/internal/platform/apperr"
	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/pkg/pagination"
)

func newMemoryStore() *crud.MemoryStore[*category.Category] {
	return crud.NewMemoryStore(crud.MemoryConfig[*category.Category]{
		Match: func(entity *category.Category, q crud.Query) bool {
			if q.Search != "" && !strings.Contains(strings.ToLower(entity.Name), strings.ToLower(q.Search)) {
				return false
			}
			if kind, ok := q.Filters["type"]; ok && string(entity.Kind) != kind {
				return false
			}
			if parent, ok := q.Filters["parentId"]; ok {
				if entity.ParentID == nil || strconv.FormatInt(*entity.ParentID, 10) != parent {
					return false
				}
			}
			return true
		},
		Less: func(a, b *category.Category, sortBy string) bool {
			if sortBy == "name" {
				return a.Name < b.Name
			}
			return a.ID < b.ID
		},
		Clone: func(entity *category.Category) *category.Category {
			clone := *entity
			if entity.ParentID != nil {
				parent := *entity.ParentID
				clone.ParentID = &parent
			}
			return &clone
		},
		UniqueKey: func(entity *category.Category) string {
			return strconv.FormatInt(entity.UserID, 10) + ":" + strings.ToLower(entity.Name)
		},
	})
}

func newService() *category.Service {
	return category.NewService(newMemoryStore(), nil)
}

/*
TestCreate verifies slug derivation and presentation defaults.
*/
func TestCreate(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, err := service.Create(ctx, 1, category.DTO{Name: "Café & Restaurants", Type: "expense"})
	require.NoError(t, err)

	assert.Equal(t, "cafe-restaurants", created.Slug)
	assert.Equal(t, category.DefaultColor, created.Color)
	assert.Equal(t, category.DefaultIcon, created.Icon)
	assert.NotZero(t, created.ID)
	assert.NotNil(t, created.CreatedAt)
}

/*
TestCreate_DuplicateName verifies the per-user uniqueness rule.
*/
func TestCreate_DuplicateName(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, err := service.Create(ctx, 1, category.DTO{Name: "Food", Type: "expense"})
	require.NoError(t, err)

	_, err = service.Create(ctx, 1, category.DTO{Name: "Food", Type: "expense"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// A different user is free to use the same name.
	_, err = service.Create(ctx, 2, category.DTO{Name: "Food", Type: "expense"})
	assert.NoError(t, err)
}

/*
TestCreate_Validation covers the field rules.
*/
func TestCreate_Validation(t *testing.T) {
	service := newService()
	ctx := context.Background()

	tests := []struct {
		name  string
		dto   category.DTO
		field string
	}{
		{"missing_name", category.DTO{Type: "expense"}, "name"},
		{"bad_type", category.DTO{Name: "Food", Type: "transfer"}, "type"},
		{"bad_color", category.DTO{Name: "Food", Type: "expense", Color: "red"}, "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, 1, tt.dto)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.KindValidation, ae.Kind)
			require.NotEmpty(t, ae.Fields)
			assert.Equal(t, tt.field, ae.Fields[0].Field)
		})
	}
}

/*
TestCreate_ParentMustExist verifies the hierarchy reference check, including
that another user's category can never be a parent.
*/
func TestCreate_ParentMustExist(t *testing.T) {
	store := newMemoryStore()
	service := category.NewService(store, nil)
	ctx := context.Background()

	parent, err := service.Create(ctx, 1, category.DTO{Name: "Food", Type: "expense"})
	require.NoError(t, err)

	// Valid parent for the same user.
	child, err := service.Create(ctx, 1, category.DTO{Name: "Restaurants", Type: "expense", ParentID: &parent.ID})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)

	// Unknown parent id.
	missing := int64(999)
	_, err = service.Create(ctx, 1, category.DTO{Name: "Ghost", Type: "expense", ParentID: &missing})
	require.Error(t, err)
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, apperr.KindValidation, apperr.As(err).Kind)

	// Another user's category is invisible as a parent.
	_, err = service.Create(ctx, 2, category.DTO{Name: "Dining", Type: "expense", ParentID: &parent.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.As(err).Kind)
}

/*
TestUpdate verifies rename refreshes the slug and keeps identity: the id and
createdAt survive the update while updatedAt moves forward.
*/
func TestUpdate(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, err := service.Create(ctx, 1, category.DTO{Name: "Food", Type: "expense"})
	require.NoError(t, err)
	require.NotNil(t, created.CreatedAt)
	require.NotNil(t, created.UpdatedAt)

	updated, err := service.Update(ctx, 1, created.ID, category.DTO{Name: "Eating Out", Type: "expense"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "eating-out", updated.Slug)

	require.NotNil(t, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.CreatedAt.Equal(*created.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(*created.UpdatedAt))
}

/*
TestFindAll_TypeFilter verifies the type filter separates income and expense.
*/
func TestFindAll_TypeFilter(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, err := service.Create(ctx, 1, category.DTO{Name: "Salary", Type: "income"})
	require.NoError(t, err)
	_, err = service.Create(ctx, 1, category.DTO{Name: "Food", Type: "expense"})
	require.NoError(t, err)

	page, err := service.FindAll(ctx, 1, listParams(), crud.Query{Filters: map[string]string{"type": "income"}})
	require.NoError(t, err)

	require.Len(t, page.Content, 1)
	assert.Equal(t, "Salary", page.Content[0].Name)
}

func listParams() pagination.Params {
	return pagination.Params{Page: 0, Size: 20, SortDir: pagination.Ascending}
}
