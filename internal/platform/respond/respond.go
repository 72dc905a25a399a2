// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// It ensures that every response (success or error) across the entire application
// follows a strict, predictable JSON envelope structure, and it is the single
// boundary where Go errors are translated into wire-level error payloads.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/quantoapp/quanto/internal/platform/apperr"
	"github.com/quantoapp/quanto/internal/platform/ctxutil"
)

// SuccessEnvelope is the JSON envelope for successful responses.
//
// # Invariant
//
// Success is always true and Message is always non-empty. Data may be empty
// only for delete-style operations, which this API answers with 204 instead.
type SuccessEnvelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      *string   `json:"path"`
}

// ErrorEnvelope is the JSON envelope for error responses.
//
// ValidationErrors is populated only for VALIDATION errors and serialized as
// null for every other kind, so clients can branch on the "error" field alone.
type ErrorEnvelope struct {
	Error            string             `json:"error"`
	Message          string             `json:"message"`
	Path             string             `json:"path"`
	Timestamp        time.Time          `json:"timestamp"`
	ValidationErrors []apperr.FieldError `json:"validationErrors"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data any, message string) {
	JSON(writer, http.StatusOK, envelope(data, message))
}

// Created writes a 201 Created response with data wrapped in the standard success envelope.
func Created(writer http.ResponseWriter, data any, message string) {
	JSON(writer, http.StatusCreated, envelope(data, message))
}

// NoContent writes a 204 No Content response.
//
// This is the uniform delete convention for the whole API: no body, ever.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into a standardized JSON API error response.
//
// It is the central error translator: errors of kind [apperr.AppError] keep
// their taxonomy kind and status; anything else is logged with full detail
// server-side and reported as INTERNAL with a generic, non-leaking message.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("kind", appError.Kind),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:            appError.Kind,
		Message:          appError.Message,
		Path:             request.URL.Path,
		Timestamp:        time.Now().UTC(),
		ValidationErrors: appError.Fields,
	})
}

// envelope builds a success envelope with the current timestamp.
func envelope(data any, message string) SuccessEnvelope {
	return SuccessEnvelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Path:      nil,
	}
}
