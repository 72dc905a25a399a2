// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantoapp/quanto/internal/platform/apperr"
)

/*
TestConstructors verifies the kind and HTTP status pairing of each factory.
*/
func TestConstructors(t *testing.T) {
	testCases := []struct {
		name   string
		err    *apperr.AppError
		kind   string
		status int
	}{
		{"not_found", apperr.NotFound("Transaction"), apperr.KindNotFound, http.StatusNotFound},
		{"not_found_id", apperr.NotFoundID("Transaction", 42), apperr.KindNotFound, http.StatusNotFound},
		{"unauthorized", apperr.Unauthorized("Invalid credentials"), apperr.KindUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("Not yours"), apperr.KindForbidden, http.StatusForbidden},
		{"conflict", apperr.Conflict("Already exists"), apperr.KindConflict, http.StatusConflict},
		{"validation", apperr.Validation("Validation failed"), apperr.KindValidation, http.StatusBadRequest},
		{"internal", apperr.Internal(errors.New("boom")), apperr.KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.err.Kind)
			assert.Equal(t, tc.status, tc.err.HTTPStatus)
			assert.NotEmpty(t, tc.err.Message)
		})
	}
}

/*
TestNotFoundID_MessageEmbedsID verifies the missing id appears in the message.
*/
func TestNotFoundID_MessageEmbedsID(t *testing.T) {
	err := apperr.NotFoundID("Financial goal", 999)
	assert.Equal(t, "Financial goal with id 999 not found", err.Message)
}

/*
TestInternal_CauseIsHidden verifies the cause never reaches the client-safe
message but stays reachable for server-side logging via errors.Is.
*/
func TestInternal_CauseIsHidden(t *testing.T) {
	cause := errors.New("pq: connection refused 10.0.0.5")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "10.0.0.5")
	assert.True(t, errors.Is(err, cause))
}

/*
TestAs_TraversesWrapChain verifies extraction through fmt.Errorf wrapping.
*/
func TestAs_TraversesWrapChain(t *testing.T) {
	inner := apperr.Conflict("Duplicate name")
	wrapped := fmt.Errorf("create category: %w", inner)

	extracted := apperr.As(wrapped)
	require.NotNil(t, extracted)
	assert.Equal(t, apperr.KindConflict, extracted.Kind)

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.Nil(t, apperr.As(nil))
}

/*
TestIsKind verifies kind matching on wrapped and foreign errors.
*/
func TestIsKind(t *testing.T) {
	err := fmt.Errorf("lookup: %w", apperr.NotFound("Note"))

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.False(t, apperr.IsKind(err, apperr.KindConflict))
	assert.False(t, apperr.IsKind(errors.New("plain"), apperr.KindNotFound))
	assert.True(t, apperr.IsAppError(err))
	assert.False(t, apperr.IsAppError(errors.New("plain")))
}

/*
TestValidation_CarriesFieldErrors verifies per-field details are preserved.
*/
func TestValidation_CarriesFieldErrors(t *testing.T) {
	err := apperr.Validation("Validation failed",
		apperr.FieldError{Field: "name", Message: "Is required", RejectedValue: ""},
		apperr.FieldError{Field: "amount", Message: "Must be positive", RejectedValue: -5.0},
	)

	require.Len(t, err.Fields, 2)
	assert.Equal(t, "name", err.Fields[0].Field)
	assert.Equal(t, -5.0, err.Fields[1].RejectedValue)
}
