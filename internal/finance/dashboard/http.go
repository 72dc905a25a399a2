// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/quantoapp/quanto/internal/platform/request"
	"github.com/quantoapp/quanto/internal/platform/respond"
	"github.com/quantoapp/quanto/internal/platform/validate"
)

// Handler implements the dashboard HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the dashboard router.
//
//	GET /summary?from=YYYY-MM-DD&to=YYYY-MM-DD
//
// Omitted bounds default to the current calendar month.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/summary", handler.summary)
	return router
}

func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	from, to, err := dateRange(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.service.Summary(request.Context(), userID, from, to)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary, "Dashboard summary retrieved successfully")
}

// dateRange parses the optional from/to query parameters, defaulting to the
// current calendar month.
func dateRange(request *http.Request) (from, to time.Time, err error) {
	now := time.Now().UTC()
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to = now

	query := request.URL.Query()
	rawFrom, rawTo := query.Get("from"), query.Get("to")

	if rawFrom != "" {
		from, err = time.Parse("2006-01-02", rawFrom)
		if err != nil {
			return from, to, validate.FieldFailure("from", "Must be a date in YYYY-MM-DD format", rawFrom)
		}
	}

	if rawTo != "" {
		to, err = time.Parse("2006-01-02", rawTo)
		if err != nil {
			return from, to, validate.FieldFailure("to", "Must be a date in YYYY-MM-DD format", rawTo)
		}
		// Include the whole end day.
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	// Blame the bound the client actually sent: with no explicit "to" the
	// range is only inverted because "from" lies in the future.
	if to.Before(from) {
		if rawTo == "" {
			return from, to, validate.FieldFailure("from", "Must not be a future date when to is omitted", rawFrom)
		}
		return from, to, validate.FieldFailure("to", "Must not be before the from date", rawTo)
	}

	return from, to, nil
}
