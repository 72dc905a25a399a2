// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/quantoapp/quanto/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Classification:
//
//   - pgx.ErrNoRows             → NOT_FOUND
//   - SQLSTATE 23505 (unique)   → CONFLICT
//   - SQLSTATE 23503 (FK)       → VALIDATION
//   - anything else             → INTERNAL (cause retained for logging)
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A record with the same unique value already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.Validation("A referenced record does not exist")
		}
	}

	return apperr.Internal(err)
}
