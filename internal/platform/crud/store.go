// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package crud

import (
	"context"
	"time"
)

// Query describes one paged retrieval against a [Store].
type Query struct {
	// Search is a free-text term matched against the store's designated
	// searchable fields (implementation-defined substring matching).
	// Empty means no search constraint.
	Search string

	// Filters holds equality constraints keyed by wire field name. The
	// store maps field names onto columns; unknown names are ignored by
	// the handler before they reach the store.
	Filters map[string]string

	// SortBy names the wire field to sort on. Empty or unknown fields fall
	// back to the store's default sort column.
	SortBy string

	// SortDir is "asc" or "desc". The handler guarantees one of the two.
	SortDir string

	// CreatedFrom/CreatedTo bound the createdAt audit field (inclusive).
	CreatedFrom *time.Time
	CreatedTo   *time.Time

	// Limit and Offset implement offset paging.
	Limit  int
	Offset int

	// OwnerID scopes the query to one user's records. Zero means unscoped.
	OwnerID int64
}

// Store is the generic persistence port: a store of entities keyed by
// numeric id.
//
// # Contract
//
//   - Create stamps ID, CreatedAt, and UpdatedAt on the passed entity.
//   - Update refreshes UpdatedAt and never touches ID or CreatedAt.
//   - Get, Update, and Delete surface a NOT_FOUND [apperr.AppError] when the
//     id does not resolve to a record visible under the given owner scope.
//   - Uniqueness violations surface as CONFLICT.
//   - Every mutation executes within a single atomic statement/transaction.
type Store[E Record] interface {
	// List returns one page of entities matching q plus the total number of
	// matches across all pages. An empty result is not an error.
	List(ctx context.Context, q Query) ([]E, int, error)

	// Get returns the entity with the given id, scoped to ownerID when
	// non-zero.
	Get(ctx context.Context, id, ownerID int64) (E, error)

	// Exists reports whether an entity with the given id is visible under
	// the owner scope, without loading it.
	Exists(ctx context.Context, id, ownerID int64) (bool, error)

	// Create persists a new entity and stamps its server-assigned fields.
	Create(ctx context.Context, entity E) error

	// Update persists the mutable fields of an existing entity.
	Update(ctx context.Context, entity E) error

	// Delete removes the entity. Deleting an absent id fails with NOT_FOUND,
	// so a second delete of the same id is an error by design.
	Delete(ctx context.Context, id, ownerID int64) error
}
