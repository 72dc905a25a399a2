// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package crud

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/quantoapp/quanto/internal/platform/request"
	"github.com/quantoapp/quanto/internal/platform/respond"
	"github.com/quantoapp/quanto/internal/platform/validate"
	"github.com/quantoapp/quanto/pkg/pagination"
)

// HandlerConfig bundles the per-domain configuration of a generic [Handler].
type HandlerConfig struct {
	// Singular and Plural are the display names used in envelope messages,
	// e.g. "Transaction category" / "Transaction categories".
	Singular string
	Plural   string

	// Filters whitelists the query parameters accepted as equality filters.
	// Anything not listed is ignored, so reserved parameters (page, size,
	// search, ...) can never collide with entity fields.
	Filters []string
}

// Handler is the generic CRUD controller. It parses HTTP query parameters,
// delegates to the generic [Service], and wraps results and errors in the
// standard response envelope. It holds no state across requests and contains
// no business logic.
type Handler[E Record, D any] struct {
	service  *Service[E, D]
	singular string
	plural   string
	filters  []string
}

// NewHandler constructs a [Handler] for one resource.
func NewHandler[E Record, D any](service *Service[E, D], cfg HandlerConfig) *Handler[E, D] {
	return &Handler[E, D]{
		service:  service,
		singular: cfg.Singular,
		plural:   cfg.Plural,
		filters:  cfg.Filters,
	}
}

// Routes returns a [chi.Router] exposing the uniform REST surface:
//
//	GET    /        list (search, sort, page, filters)
//	POST   /        create
//	GET    /{id}    fetch one
//	PUT    /{id}    update
//	DELETE /{id}    delete (204, no body)
func (handler *Handler[E, D]) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

func (handler *Handler[E, D]) list(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := handler.ownerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	query := Query{
		Search:      request.URL.Query().Get("search"),
		Filters:     handler.filterParams(request),
		CreatedFrom: parseTimeParam(request, "createdFrom"),
		CreatedTo:   parseTimeParam(request, "createdTo"),
	}

	page, err := handler.service.FindAll(request.Context(), ownerID, params, query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, page, handler.plural+" retrieved successfully")
}

func (handler *Handler[E, D]) get(writer http.ResponseWriter, request *http.Request) {
	ownerID, id, err := handler.ownerAndID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	dto, err := handler.service.FindByID(request.Context(), ownerID, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dto, handler.singular+" retrieved successfully")
}

func (handler *Handler[E, D]) create(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := handler.ownerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input D
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	dto, err := handler.service.Create(request.Context(), ownerID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, dto, handler.singular+" created successfully")
}

func (handler *Handler[E, D]) update(writer http.ResponseWriter, request *http.Request) {
	ownerID, id, err := handler.ownerAndID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input D
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	dto, err := handler.service.Update(request.Context(), ownerID, id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dto, handler.singular+" updated successfully")
}

func (handler *Handler[E, D]) delete(writer http.ResponseWriter, request *http.Request) {
	ownerID, id, err := handler.ownerAndID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), ownerID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Parameter Helpers

// ownerID resolves the authenticated user's id for scoped services. Unscoped
// services always receive zero.
func (handler *Handler[E, D]) ownerID(request *http.Request) (int64, error) {
	if !handler.service.Scoped() {
		return 0, nil
	}
	return requestutil.RequiredUserID(request)
}

// ownerAndID resolves owner scope plus the {id} path parameter.
func (handler *Handler[E, D]) ownerAndID(request *http.Request) (ownerID, id int64, err error) {
	ownerID, err = handler.ownerID(request)
	if err != nil {
		return 0, 0, err
	}

	raw := requestutil.Param(request, "id")
	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil {
		return 0, 0, validate.FieldFailure("id", "Must be a numeric id", raw)
	}

	return ownerID, id, nil
}

// filterParams collects the whitelisted equality filters present on the
// request.
func (handler *Handler[E, D]) filterParams(request *http.Request) map[string]string {
	values := request.URL.Query()

	var filters map[string]string
	for _, field := range handler.filters {
		if value := values.Get(field); value != "" {
			if filters == nil {
				filters = make(map[string]string, len(handler.filters))
			}
			filters[field] = value
		}
	}

	return filters
}

// parseTimeParam parses an RFC 3339 timestamp or plain date query parameter.
// Malformed values are treated as absent.
func parseTimeParam(request *http.Request, key string) *time.Time {
	raw := request.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return &ts
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return &ts
	}

	return nil
}
