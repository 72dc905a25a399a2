// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package goal

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quantoapp/quanto/internal/platform/crud"
	requestutil "github.com/quantoapp/quanto/internal/platform/request"
	"github.com/quantoapp/quanto/internal/platform/respond"
	"github.com/quantoapp/quanto/internal/platform/validate"
)

// Handler extends the generic REST surface with the contribution endpoint.
type Handler struct {
	crud    *crud.Handler[*Goal, DTO]
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		crud: crud.NewHandler(service.Service, crud.HandlerConfig{
			Singular: "Financial goal",
			Plural:   "Financial goals",
			Filters:  []string{"status"},
		}),
		service: service,
	}
}

// Routes returns the goal router: the uniform CRUD surface plus
// POST /{id}/progress.
func (handler *Handler) Routes() chi.Router {
	router := handler.crud.Routes()
	router.Post("/{id}/progress", handler.addProgress)
	return router
}

func (handler *Handler) addProgress(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	raw := requestutil.Param(request, "id")
	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil {
		respond.Error(writer, request, validate.FieldFailure("id", "Must be a numeric id", raw))
		return
	}

	var input ProgressRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	dto, err := handler.service.AddProgress(request.Context(), ownerID, id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, dto, "Goal progress updated successfully")
}
