// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package crud

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/quantoapp/quanto/internal/platform/apperr"
	"github.com/quantoapp/quanto/pkg/pagination"
)

// MemoryConfig customizes a [MemoryStore] for one entity type.
type MemoryConfig[E Record] struct {
	// Match reports whether an entity satisfies the query's search term and
	// equality filters. When nil, search and filters are ignored.
	Match func(entity E, q Query) bool

	// Less orders two entities for the given sort field. When nil, or when
	// the field is unknown to the domain, entities sort by id.
	Less func(a, b E, sortBy string) bool

	// Clone deep-copies an entity so callers never alias stored state.
	// When nil, entities are shared as-is.
	Clone func(entity E) E

	// UniqueKey derives the uniqueness constraint value for an entity
	// (e.g. owner+name). A duplicate non-empty key fails with CONFLICT.
	// When nil, no uniqueness is enforced.
	UniqueKey func(entity E) string
}

// MemoryStore is a mutex-guarded, in-memory [Store] implementation.
//
// It honors the full port contract — audit stamping, owner scoping,
// NOT_FOUND/CONFLICT classification — and backs the framework's tests as
// well as domain-level tests that do not want a database.
type MemoryStore[E Record] struct {
	mu     sync.RWMutex
	items  map[int64]E
	nextID int64
	cfg    MemoryConfig[E]
}

// NewMemoryStore constructs an empty [MemoryStore].
func NewMemoryStore[E Record](cfg MemoryConfig[E]) *MemoryStore[E] {
	return &MemoryStore[E]{
		items: make(map[int64]E),
		cfg:   cfg,
	}
}

// List implements [Store].
func (store *MemoryStore[E]) List(ctx context.Context, q Query) ([]E, int, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	var matched []E
	for _, entity := range store.items {
		if !visibleTo(entity, q.OwnerID) {
			continue
		}
		if !withinCreatedRange(entity, q.CreatedFrom, q.CreatedTo) {
			continue
		}
		if store.cfg.Match != nil && !store.cfg.Match(entity, q) {
			continue
		}
		matched = append(matched, entity)
	}

	store.sortEntities(matched, q.SortBy, q.SortDir)
	total := len(matched)

	// Apply offset paging to the sorted matches.
	start := q.Offset
	if start > total {
		start = total
	}
	end := total
	if q.Limit > 0 && start+q.Limit < end {
		end = start + q.Limit
	}

	page := make([]E, 0, end-start)
	for _, entity := range matched[start:end] {
		page = append(page, store.clone(entity))
	}

	return page, total, nil
}

// Get implements [Store].
func (store *MemoryStore[E]) Get(ctx context.Context, id, ownerID int64) (E, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	entity, found := store.items[id]
	if !found || !visibleTo(entity, ownerID) {
		var zero E
		return zero, apperr.NotFound("Resource")
	}

	return store.clone(entity), nil
}

// Exists implements [Store].
func (store *MemoryStore[E]) Exists(ctx context.Context, id, ownerID int64) (bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	entity, found := store.items[id]
	return found && visibleTo(entity, ownerID), nil
}

// Create implements [Store]. It stamps the id and both audit timestamps.
func (store *MemoryStore[E]) Create(ctx context.Context, entity E) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.checkUnique(entity, 0); err != nil {
		return err
	}

	store.nextID++
	now := time.Now().UTC()

	audit := entity.Audit()
	audit.ID = store.nextID
	audit.CreatedAt = now
	audit.UpdatedAt = now

	store.items[audit.ID] = store.clone(entity)
	return nil
}

// Update implements [Store]. It refreshes updatedAt and preserves createdAt
// from the stored record, regardless of what the caller passed in.
func (store *MemoryStore[E]) Update(ctx context.Context, entity E) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	audit := entity.Audit()

	stored, found := store.items[audit.ID]
	if !found || !visibleTo(stored, ownerOf(entity)) {
		return apperr.NotFound("Resource")
	}

	if err := store.checkUnique(entity, audit.ID); err != nil {
		return err
	}

	audit.CreatedAt = stored.Audit().CreatedAt
	audit.UpdatedAt = time.Now().UTC()

	store.items[audit.ID] = store.clone(entity)
	return nil
}

// Delete implements [Store]. Hard delete; absent ids fail with NOT_FOUND.
func (store *MemoryStore[E]) Delete(ctx context.Context, id, ownerID int64) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	entity, found := store.items[id]
	if !found || !visibleTo(entity, ownerID) {
		return apperr.NotFound("Resource")
	}

	delete(store.items, id)
	return nil
}

// # Internals

func (store *MemoryStore[E]) clone(entity E) E {
	if store.cfg.Clone == nil {
		return entity
	}
	return store.cfg.Clone(entity)
}

func (store *MemoryStore[E]) checkUnique(entity E, selfID int64) error {
	if store.cfg.UniqueKey == nil {
		return nil
	}

	key := store.cfg.UniqueKey(entity)
	if key == "" {
		return nil
	}

	for id, existing := range store.items {
		if id != selfID && store.cfg.UniqueKey(existing) == key {
			return apperr.Conflict("A record with the same unique value already exists")
		}
	}
	return nil
}

func (store *MemoryStore[E]) sortEntities(entities []E, sortBy, sortDir string) {
	less := func(a, b E) bool { return a.Audit().ID < b.Audit().ID }
	if store.cfg.Less != nil && sortBy != "" {
		domainLess := store.cfg.Less
		less = func(a, b E) bool { return domainLess(a, b, sortBy) }
	}

	sort.SliceStable(entities, func(i, j int) bool {
		if sortDir == pagination.Descending {
			return less(entities[j], entities[i])
		}
		return less(entities[i], entities[j])
	})
}

// visibleTo applies the owner scope: zero owner means unscoped access.
func visibleTo[E Record](entity E, ownerID int64) bool {
	if ownerID == 0 {
		return true
	}
	return ownerOf(entity) == ownerID
}

// ownerOf returns the owner id for [Owned] entities and zero otherwise.
func ownerOf[E Record](entity E) int64 {
	if owned, ok := any(entity).(Owned); ok {
		return owned.OwnerID()
	}
	return 0
}

func withinCreatedRange[E Record](entity E, from, to *time.Time) bool {
	createdAt := entity.Audit().CreatedAt
	if from != nil && createdAt.Before(*from) {
		return false
	}
	if to != nil && createdAt.After(*to) {
		return false
	}
	return true
}
