// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package crud_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/internal/platform/ctxutil"
	"github.com/quantoapp/quanto/internal/platform/sec"
)

func newNoteHandler() http.Handler {
	service := newNoteService(newNoteStore())
	handler := crud.NewHandler(service, crud.HandlerConfig{
		Singular: "Note",
		Plural:   "Notes",
		Filters:  []string{"title"},
	})
	return handler.Routes()
}

// doRequest performs an authenticated request against the note router and
// decodes the JSON body into a generic map.
func doRequest(t *testing.T, router http.Handler, userID int64, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != 0 {
		ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: userID})
		request = request.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	payload := map[string]any{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	}
	return recorder, payload
}

/*
TestHandler_Create verifies the 201 success envelope shape.
*/
func TestHandler_Create(t *testing.T) {
	router := newNoteHandler()

	recorder, payload := doRequest(t, router, 7, http.MethodPost, "/", `{"title":"Food"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Note created successfully", payload["message"])
	assert.Contains(t, payload, "timestamp")
	assert.Nil(t, payload["path"])

	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Food", data["title"])
	assert.NotZero(t, data["id"])
}

/*
TestHandler_List verifies the paged envelope and parameter parsing.
*/
func TestHandler_List(t *testing.T) {
	router := newNoteHandler()

	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		recorder, _ := doRequest(t, router, 7, http.MethodPost, "/", fmt.Sprintf(`{"title":%q}`, title))
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	recorder, payload := doRequest(t, router, 7, http.MethodGet, "/?page=0&size=2&sortBy=title&sortDirection=desc", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Notes retrieved successfully", payload["message"])

	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, float64(3), data["totalElements"])
	assert.Equal(t, float64(2), data["totalPages"])
	assert.Equal(t, true, data["first"])
	assert.Equal(t, false, data["last"])
	assert.Equal(t, float64(2), data["numberOfElements"])

	pageable, ok := data["pageable"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(0), pageable["pageNumber"])
	assert.Equal(t, float64(2), pageable["pageSize"])
	assert.Equal(t, "title,desc", pageable["sort"])

	content, ok := data["content"].([]any)
	require.True(t, ok)
	require.Len(t, content, 2)
	first := content[0].(map[string]any)
	assert.Equal(t, "Gamma", first["title"])
}

/*
TestHandler_List_EmptyContent verifies empty pages serialize as [], not null.
*/
func TestHandler_List_EmptyContent(t *testing.T) {
	router := newNoteHandler()

	recorder, _ := doRequest(t, router, 7, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"content":[]`)
}

/*
TestHandler_Get_NotFound verifies the 404 error envelope shape.
*/
func TestHandler_Get_NotFound(t *testing.T) {
	router := newNoteHandler()

	recorder, payload := doRequest(t, router, 7, http.MethodGet, "/999", "")
	require.Equal(t, http.StatusNotFound, recorder.Code)

	assert.Equal(t, "NOT_FOUND", payload["error"])
	assert.Contains(t, payload["message"], "999")
	assert.Contains(t, payload, "timestamp")
	assert.Contains(t, payload, "path")

	// validationErrors is present and null for non-validation failures.
	value, present := payload["validationErrors"]
	assert.True(t, present)
	assert.Nil(t, value)
}

/*
TestHandler_Get_InvalidID verifies non-numeric path ids fail validation.
*/
func TestHandler_Get_InvalidID(t *testing.T) {
	router := newNoteHandler()

	recorder, payload := doRequest(t, router, 7, http.MethodGet, "/abc", "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	assert.Equal(t, "VALIDATION", payload["error"])

	fieldErrors, ok := payload["validationErrors"].([]any)
	require.True(t, ok)
	require.Len(t, fieldErrors, 1)

	failure := fieldErrors[0].(map[string]any)
	assert.Equal(t, "id", failure["field"])
	assert.Equal(t, "abc", failure["rejectedValue"])
}

/*
TestHandler_Create_Validation verifies field errors carry rejected values.
*/
func TestHandler_Create_Validation(t *testing.T) {
	router := newNoteHandler()

	recorder, payload := doRequest(t, router, 7, http.MethodPost, "/", `{"title":""}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	assert.Equal(t, "VALIDATION", payload["error"])
	fieldErrors, ok := payload["validationErrors"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, fieldErrors)

	failure := fieldErrors[0].(map[string]any)
	assert.Equal(t, "title", failure["field"])
}

/*
TestHandler_Create_MissingBody verifies write endpoints require a payload.
*/
func TestHandler_Create_MissingBody(t *testing.T) {
	router := newNoteHandler()

	recorder, payload := doRequest(t, router, 7, http.MethodPost, "/", "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION", payload["error"])
}

/*
TestHandler_Create_Conflict verifies duplicate records answer 409.
*/
func TestHandler_Create_Conflict(t *testing.T) {
	router := newNoteHandler()

	recorder, _ := doRequest(t, router, 7, http.MethodPost, "/", `{"title":"Food"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder, payload := doRequest(t, router, 7, http.MethodPost, "/", `{"title":"Food"}`)
	require.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, "CONFLICT", payload["error"])
}

/*
TestHandler_Delete verifies 204 with an empty body, and 404 on repeat.
*/
func TestHandler_Delete(t *testing.T) {
	router := newNoteHandler()

	recorder, payload := doRequest(t, router, 7, http.MethodPost, "/", `{"title":"Temp"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	id := payload["data"].(map[string]any)["id"].(float64)

	target := fmt.Sprintf("/%d", int64(id))
	recorder, _ = doRequest(t, router, 7, http.MethodDelete, target, "")
	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Zero(t, recorder.Body.Len())

	recorder, _ = doRequest(t, router, 7, http.MethodDelete, target, "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestHandler_OwnershipIsolation verifies records never leak across users.
*/
func TestHandler_OwnershipIsolation(t *testing.T) {
	router := newNoteHandler()

	recorder, payload := doRequest(t, router, 7, http.MethodPost, "/", `{"title":"Private"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	id := payload["data"].(map[string]any)["id"].(float64)

	// Another user sees 404, never 403.
	recorder, payload = doRequest(t, router, 8, http.MethodGet, fmt.Sprintf("/%d", int64(id)), "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "NOT_FOUND", payload["error"])

	recorder, _ = doRequest(t, router, 8, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"totalElements":0`)
}

/*
TestHandler_Unauthenticated verifies scoped resources demand a user.
*/
func TestHandler_Unauthenticated(t *testing.T) {
	router := newNoteHandler()

	recorder, payload := doRequest(t, router, 0, http.MethodGet, "/", "")
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "UNAUTHORIZED", payload["error"])
}

// Guard against the context helper changing behavior underneath the tests.
func TestAuthContextRoundTrip(t *testing.T) {
	ctx := ctxutil.WithAuthUser(context.Background(), &sec.AuthClaims{UserID: 42})
	claims := ctxutil.GetAuthUser(ctx)
	require.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserID)
}
