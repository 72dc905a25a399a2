// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quantoapp/quanto/internal/platform/middleware"
	requestutil "github.com/quantoapp/quanto/internal/platform/request"
	"github.com/quantoapp/quanto/internal/platform/respond"
)

// Handler implements the authentication HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the auth router.
//
//	POST /register  create an account
//	POST /login     authenticate
//	GET  /me        authenticated profile
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/me", handler.me)
	})

	return router
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegisterRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, session, "Account registered successfully")
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session, "Logged in successfully")
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.Me(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile, "Profile retrieved successfully")
}
