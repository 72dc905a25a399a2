// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

/*
Package apperr defines the centralized error taxonomy for the Quanto API.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Kind and user-friendly messages.
  - Taxonomy: A closed set of kinds (VALIDATION, NOT_FOUND, CONFLICT, UNAUTHORIZED,
    FORBIDDEN, INTERNAL) that clients can branch on.
  - Mapping: Explicit mapping from AppError to standard HTTP status codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds serialized in the "error" field of API error responses.
const (
	KindValidation   = "VALIDATION"
	KindNotFound     = "NOT_FOUND"
	KindConflict     = "CONFLICT"
	KindUnauthorized = "UNAUTHORIZED"
	KindForbidden    = "FORBIDDEN"
	KindInternal     = "INTERNAL"
)

// AppError is the canonical error type for the Quanto API.
//
// It carries an HTTP status code, a machine-readable kind, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Kind is a machine-readable error identifier (e.g. "NOT_FOUND", "CONFLICT").
	Kind string `json:"error"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Fields holds per-field validation errors for VALIDATION responses.
	Fields []FieldError `json:"validationErrors,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
	// RejectedValue is the offending input value, echoed back to the client.
	RejectedValue any `json:"rejectedValue"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Transaction") // Returns "Transaction not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// NotFoundID creates a 404 [AppError] whose message embeds the missing id.
//
// The id is included so clients (and logs) can correlate the failure with the
// request without parsing the path.
func NotFoundID(resource string, id int64) *AppError {
	return &AppError{
		Kind:       KindNotFound,
		Message:    fmt.Sprintf("%s with id %d not found", resource, id),
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Kind:       KindUnauthorized,
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
//
// Reserved for future role-based checks. The CRUD core deliberately prefers
// [NotFound] over Forbidden so that the existence of another user's record
// is never confirmed.
func Forbidden(msg string) *AppError {
	return &AppError{
		Kind:       KindForbidden,
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// Conflict creates a 409 [AppError] for duplicate or unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Kind:       KindConflict,
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// Validation creates a 400 [AppError] with optional per-field details.
func Validation(msg string, fields ...FieldError) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Kind:       KindInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsKind reports whether err is an [*AppError] of the given kind.
func IsKind(err error, kind string) bool {
	ae := As(err)
	return ae != nil && ae.Kind == kind
}
