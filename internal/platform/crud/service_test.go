// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package crud_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantoapp/quanto/internal/platform/apperr"
	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/internal/platform/validate"
	"github.com/quantoapp/quanto/pkg/pagination"
)

// note is a minimal owned entity exercising the full framework contract.
type note struct {
	crud.Auditable

	UserID int64
	Title  string
	Body   string
}

func (n *note) OwnerID() int64      { return n.UserID }
func (n *note) SetOwnerID(id int64) { n.UserID = id }

type noteDTO struct {
	ID    int64  `json:"id,omitempty"`
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

type noteMapper struct{}

func (noteMapper) ToDTO(entity *note) noteDTO {
	return noteDTO{ID: entity.ID, Title: entity.Title, Body: entity.Body}
}

func (noteMapper) NewEntity(dto noteDTO) *note {
	return &note{Title: dto.Title, Body: dto.Body}
}

func (noteMapper) ApplyDTO(dto noteDTO, entity *note) {
	entity.Title = dto.Title
	entity.Body = dto.Body
}

func newNoteStore() *crud.MemoryStore[*note] {
	return crud.NewMemoryStore(crud.MemoryConfig[*note]{
		Match: func(entity *note, q crud.Query) bool {
			if q.Search != "" && !strings.Contains(strings.ToLower(entity.Title), strings.ToLower(q.Search)) {
				return false
			}
			if title, ok := q.Filters["title"]; ok && entity.Title != title {
				return false
			}
			return true
		},
		Less: func(a, b *note, sortBy string) bool {
			if sortBy == "title" {
				return a.Title < b.Title
			}
			return a.ID < b.ID
		},
		Clone: func(entity *note) *note {
			clone := *entity
			return &clone
		},
		UniqueKey: func(entity *note) string {
			return strconv.FormatInt(entity.UserID, 10) + ":" + strings.ToLower(entity.Title)
		},
	})
}

func newNoteService(store crud.Store[*note]) *crud.Service[*note, noteDTO] {
	return crud.NewService(crud.ServiceConfig[*note, noteDTO]{
		Resource: "Note",
		Store:    store,
		Mapper:   noteMapper{},
		Scoped:   true,
		Validate: func(_ context.Context, _ int64, v *validate.Validator, dto noteDTO) error {
			v.Required("title", dto.Title).MaxLen("title", dto.Title, 50)
			return nil
		},
	})
}

func defaultParams() pagination.Params {
	return pagination.Params{Page: 0, Size: 20, SortDir: pagination.Ascending}
}

/*
TestService_Create verifies owner injection and server-assigned fields.
*/
func TestService_Create(t *testing.T) {
	service := newNoteService(newNoteStore())
	ctx := context.Background()

	created, err := service.Create(ctx, 7, noteDTO{Title: "Groceries", Body: "weekly"})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Groceries", created.Title)

	// The record is retrievable by its owner and invisible to anyone else.
	found, err := service.FindByID(ctx, 7, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = service.FindByID(ctx, 8, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

/*
TestService_Create_ValidationFailure verifies the hook blocks persistence.
*/
func TestService_Create_ValidationFailure(t *testing.T) {
	store := newNoteStore()
	service := newNoteService(store)
	ctx := context.Background()

	_, err := service.Create(ctx, 7, noteDTO{Title: "  "})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
	require.Len(t, ae.Fields, 1)
	assert.Equal(t, "title", ae.Fields[0].Field)

	// Nothing was stored.
	page, err := service.FindAll(ctx, 7, defaultParams(), crud.Query{})
	require.NoError(t, err)
	assert.Zero(t, page.TotalElements)
}

/*
TestService_Create_Conflict verifies uniqueness violations surface as CONFLICT.
*/
func TestService_Create_Conflict(t *testing.T) {
	service := newNoteService(newNoteStore())
	ctx := context.Background()

	_, err := service.Create(ctx, 7, noteDTO{Title: "Food"})
	require.NoError(t, err)

	_, err = service.Create(ctx, 7, noteDTO{Title: "Food"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// A different user may reuse the same title.
	_, err = service.Create(ctx, 8, noteDTO{Title: "Food"})
	assert.NoError(t, err)
}

/*
TestService_FindByID_NotFoundMessage verifies the missing id is embedded in
the error message.
*/
func TestService_FindByID_NotFoundMessage(t *testing.T) {
	service := newNoteService(newNoteStore())

	_, err := service.FindByID(context.Background(), 7, 999)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
	assert.Contains(t, ae.Message, "999")
}

/*
TestService_Update verifies mutable-field application and audit preservation.
*/
func TestService_Update(t *testing.T) {
	store := newNoteStore()
	service := newNoteService(store)
	ctx := context.Background()

	created, err := service.Create(ctx, 7, noteDTO{Title: "Draft", Body: "v1"})
	require.NoError(t, err)

	before, err := store.Get(ctx, created.ID, 7)
	require.NoError(t, err)

	updated, err := service.Update(ctx, 7, created.ID, noteDTO{ID: 12345, Title: "Final", Body: "v2"})
	require.NoError(t, err)

	// The id from the payload is discarded.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "v2", updated.Body)

	// The store keeps createdAt and refreshes updatedAt.
	after, err := store.Get(ctx, created.ID, 7)
	require.NoError(t, err)
	assert.True(t, after.Audit().CreatedAt.Equal(before.Audit().CreatedAt))
	assert.False(t, after.Audit().UpdatedAt.Before(before.Audit().UpdatedAt))

	// Updating another user's record answers NOT_FOUND, not FORBIDDEN.
	_, err = service.Update(ctx, 8, created.ID, noteDTO{Title: "Hijack"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

/*
TestService_Delete verifies hard deletion and its non-idempotence.
*/
func TestService_Delete(t *testing.T) {
	service := newNoteService(newNoteStore())
	ctx := context.Background()

	created, err := service.Create(ctx, 7, noteDTO{Title: "Temp"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, 7, created.ID))

	// The second delete of the same id fails.
	err = service.Delete(ctx, 7, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

/*
TestService_FindAll verifies paging metadata, search, filters, and sorting.
*/
func TestService_FindAll(t *testing.T) {
	service := newNoteService(newNoteStore())
	ctx := context.Background()

	titles := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	for _, title := range titles {
		_, err := service.Create(ctx, 7, noteDTO{Title: title})
		require.NoError(t, err)
	}
	// Another user's data never leaks into the page.
	_, err := service.Create(ctx, 8, noteDTO{Title: "Alpha"})
	require.NoError(t, err)

	t.Run("paging_metadata", func(t *testing.T) {
		params := pagination.Params{Page: 0, Size: 2, SortBy: "title", SortDir: pagination.Ascending}
		page, err := service.FindAll(ctx, 7, params, crud.Query{})
		require.NoError(t, err)

		assert.Equal(t, 5, page.TotalElements)
		assert.Equal(t, 3, page.TotalPages)
		assert.True(t, page.First)
		assert.False(t, page.Last)
		assert.Equal(t, 2, page.NumberOfElements)
		assert.Equal(t, "title,asc", page.Pageable.Sort)
		require.Len(t, page.Content, 2)
		assert.Equal(t, "Alpha", page.Content[0].Title)
		assert.Equal(t, "Beta", page.Content[1].Title)
	})

	t.Run("last_page", func(t *testing.T) {
		params := pagination.Params{Page: 2, Size: 2, SortBy: "title", SortDir: pagination.Ascending}
		page, err := service.FindAll(ctx, 7, params, crud.Query{})
		require.NoError(t, err)

		assert.False(t, page.First)
		assert.True(t, page.Last)
		assert.Equal(t, 1, page.NumberOfElements)
	})

	t.Run("descending_sort", func(t *testing.T) {
		params := pagination.Params{Page: 0, Size: 20, SortBy: "title", SortDir: pagination.Descending}
		page, err := service.FindAll(ctx, 7, params, crud.Query{})
		require.NoError(t, err)

		require.NotEmpty(t, page.Content)
		assert.Equal(t, "Gamma", page.Content[0].Title)
	})

	t.Run("search", func(t *testing.T) {
		page, err := service.FindAll(ctx, 7, defaultParams(), crud.Query{Search: "elt"})
		require.NoError(t, err)

		require.Len(t, page.Content, 1)
		assert.Equal(t, "Delta", page.Content[0].Title)
	})

	t.Run("filter", func(t *testing.T) {
		page, err := service.FindAll(ctx, 7, defaultParams(), crud.Query{Filters: map[string]string{"title": "Beta"}})
		require.NoError(t, err)

		require.Len(t, page.Content, 1)
		assert.Equal(t, "Beta", page.Content[0].Title)
	})

	t.Run("empty_result_is_not_an_error", func(t *testing.T) {
		page, err := service.FindAll(ctx, 9, defaultParams(), crud.Query{})
		require.NoError(t, err)

		assert.NotNil(t, page.Content)
		assert.Empty(t, page.Content)
		assert.Zero(t, page.TotalElements)
	})
}

/*
TestNewService_ScopedRequiresOwned verifies the wiring-time panic.
*/
func TestNewService_ScopedRequiresOwned(t *testing.T) {
	assert.Panics(t, func() {
		crud.NewService(crud.ServiceConfig[*unownedRecord, noteDTO]{
			Resource: "Broken",
			Scoped:   true,
			Mapper:   unownedMapper{},
		})
	})
}

type unownedRecord struct {
	crud.Auditable
}

type unownedMapper struct{}

func (unownedMapper) ToDTO(*unownedRecord) noteDTO     { return noteDTO{} }
func (unownedMapper) NewEntity(noteDTO) *unownedRecord { return &unownedRecord{} }
func (unownedMapper) ApplyDTO(noteDTO, *unownedRecord) {}
