// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package crud

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quantoapp/quanto/internal/platform/apperr"
	"github.com/quantoapp/quanto/internal/platform/validate"
	"github.com/quantoapp/quanto/pkg/pagination"
	"github.com/quantoapp/quanto/pkg/slice"
)

// ValidateFunc is the per-domain validation hook invoked before persistence
// on both create and update.
//
// Field-level failures are accumulated on the validator; a non-nil return is
// reserved for infrastructure failures during cross-entity checks (e.g., a
// foreign-key existence lookup erroring out) and aborts the operation as-is.
type ValidateFunc[D any] func(ctx context.Context, ownerID int64, v *validate.Validator, dto D) error

// ServiceConfig bundles the per-domain configuration of a generic [Service].
type ServiceConfig[E Record, D any] struct {
	// Resource is the singular display name used in error messages and logs,
	// e.g. "Transaction category".
	Resource string

	// Store is the persistence port implementation.
	Store Store[E]

	// Mapper is the entity-mapping port implementation.
	Mapper Mapper[E, D]

	// Validate is the optional validation hook.
	Validate ValidateFunc[D]

	// Scoped enables per-user ownership scoping. Requires E to implement
	// [Owned].
	Scoped bool

	// Logger receives structured mutation events.
	Logger *slog.Logger
}

// Service is the generic CRUD service: it mediates between the wire DTO
// shape and the persisted entity shape, enforcing validation and (optionally)
// per-user ownership scoping.
//
// Scoped services take the authenticated user's id as an explicit parameter
// on every operation — never from ambient state — and answer NOT_FOUND, not
// FORBIDDEN, when a record exists but belongs to another user.
type Service[E Record, D any] struct {
	resource string
	store    Store[E]
	mapper   Mapper[E, D]
	validate ValidateFunc[D]
	scoped   bool
	logger   *slog.Logger
}

// NewService constructs a [Service] from its configuration.
//
// It panics if a scoped service is configured with an entity type that does
// not implement [Owned]; this is a wiring error, not a runtime condition.
func NewService[E Record, D any](cfg ServiceConfig[E, D]) *Service[E, D] {
	if cfg.Scoped {
		var zero E
		if _, ok := any(zero).(Owned); !ok {
			panic(fmt.Sprintf("crud: scoped service for %q requires an Owned entity", cfg.Resource))
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Service[E, D]{
		resource: cfg.Resource,
		store:    cfg.Store,
		mapper:   cfg.Mapper,
		validate: cfg.Validate,
		scoped:   cfg.Scoped,
		logger:   cfg.Logger,
	}
}

// Scoped reports whether the service applies per-user ownership scoping.
func (s *Service[E, D]) Scoped() bool { return s.scoped }

// FindAll returns one page of DTOs matching the query.
//
// Empty results yield an empty page, never an error.
func (s *Service[E, D]) FindAll(ctx context.Context, ownerID int64, params pagination.Params, q Query) (pagination.Page[D], error) {
	q.SortBy = params.SortBy
	q.SortDir = params.SortDir
	q.Limit = params.Size
	q.Offset = params.Offset()
	q.OwnerID = s.scope(ownerID)

	entities, total, err := s.store.List(ctx, q)
	if err != nil {
		return pagination.Page[D]{}, err
	}

	return pagination.NewPage(slice.Map(entities, s.mapper.ToDTO), params, total), nil
}

// FindByID returns the DTO for the given id, scoped to the owner for
// user-aware services.
func (s *Service[E, D]) FindByID(ctx context.Context, ownerID, id int64) (D, error) {
	entity, err := s.store.Get(ctx, id, s.scope(ownerID))
	if err != nil {
		var zero D
		return zero, s.describeNotFound(err, id)
	}

	return s.mapper.ToDTO(entity), nil
}

// Create validates the DTO, persists a new entity with server-assigned
// id/timestamps, and returns the mapped result.
//
// For scoped services the owner id is injected into the entity regardless of
// any ownership field present in the DTO.
func (s *Service[E, D]) Create(ctx context.Context, ownerID int64, dto D) (D, error) {
	var zero D

	if err := s.runValidation(ctx, ownerID, dto); err != nil {
		return zero, err
	}

	entity := s.mapper.NewEntity(dto)
	if s.scoped {
		any(entity).(Owned).SetOwnerID(ownerID)
	}

	if err := s.store.Create(ctx, entity); err != nil {
		return zero, err
	}

	s.logger.Info("entity_created",
		slog.String("resource", s.resource),
		slog.Int64("id", entity.Audit().ID),
	)
	return s.mapper.ToDTO(entity), nil
}

// Update loads the existing entity, applies the DTO's mutable fields onto it
// (preserving id and createdAt), validates, and persists.
func (s *Service[E, D]) Update(ctx context.Context, ownerID, id int64, dto D) (D, error) {
	var zero D

	existing, err := s.store.Get(ctx, id, s.scope(ownerID))
	if err != nil {
		return zero, s.describeNotFound(err, id)
	}

	if err := s.runValidation(ctx, ownerID, dto); err != nil {
		return zero, err
	}

	s.mapper.ApplyDTO(dto, existing)

	if err := s.store.Update(ctx, existing); err != nil {
		return zero, s.describeNotFound(err, id)
	}

	s.logger.Info("entity_updated",
		slog.String("resource", s.resource),
		slog.Int64("id", id),
	)
	return s.mapper.ToDTO(existing), nil
}

// Delete removes the entity.
//
// Deleting the same id twice fails the second time with NOT_FOUND; this is
// intentional, not a bug.
func (s *Service[E, D]) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.store.Delete(ctx, id, s.scope(ownerID)); err != nil {
		return s.describeNotFound(err, id)
	}

	s.logger.Warn("entity_deleted",
		slog.String("resource", s.resource),
		slog.Int64("id", id),
	)
	return nil
}

// runValidation executes the domain hook and folds its field errors into a
// single VALIDATION error.
func (s *Service[E, D]) runValidation(ctx context.Context, ownerID int64, dto D) error {
	if s.validate == nil {
		return nil
	}

	validator := &validate.Validator{}
	if err := s.validate(ctx, s.scope(ownerID), validator, dto); err != nil {
		return err
	}
	return validator.Err()
}

// scope returns the effective owner id: the caller's id for scoped services,
// zero (unscoped) otherwise.
func (s *Service[E, D]) scope(ownerID int64) int64 {
	if !s.scoped {
		return 0
	}
	return ownerID
}

// describeNotFound rewrites a store-level NOT_FOUND into one naming the
// resource and the missing id. Other errors pass through untouched.
func (s *Service[E, D]) describeNotFound(err error, id int64) error {
	if apperr.IsKind(err, apperr.KindNotFound) {
		return apperr.NotFoundID(s.resource, id)
	}
	return err
}
