// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

/*
Package auth implements account registration, login, and the authenticated
profile endpoint.

Passwords are hashed with bcrypt and sessions are stateless RSA-signed JWTs.
Login failures never reveal whether the email or the password was wrong.
*/
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/quantoapp/quanto/internal/platform/apperr"
	"github.com/quantoapp/quanto/internal/platform/constants"
	"github.com/quantoapp/quanto/internal/platform/sec"
	"github.com/quantoapp/quanto/internal/platform/validate"
)

// TokenProvider defines the contract for issuing access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID int64, email string, timeToLive time.Duration) (string, error)
}

// Service implements the authentication use cases.
type Service struct {
	users  UserRepository
	tokens TokenProvider
	logger *slog.Logger
}

func NewService(users UserRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates an account and returns an authenticated session.
//
// A taken email fails with CONFLICT.
func (service *Service) Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error) {
	v := &validate.Validator{}
	v.Required(FieldEmail, req.Email).
		Email(FieldEmail, req.Email).
		Required(FieldPassword, req.Password).
		MinLen(FieldPassword, req.Password, 8).
		MaxLen(FieldPassword, req.Password, 72).
		Required(FieldDisplayName, req.DisplayName).
		MaxLen(FieldDisplayName, req.DisplayName, 100)
	if err := v.Err(); err != nil {
		return nil, err
	}

	taken, err := service.users.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("An account with this email already exists")
	}

	passwordHash, err := sec.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		DisplayName:  req.DisplayName,
	}
	if err := service.users.Create(ctx, user); err != nil {
		return nil, err
	}

	service.logger.Info("account_registered", slog.Int64("user_id", user.ID))
	return service.newSession(user)
}

// Login authenticates the credentials and returns a session.
//
// Unknown email and wrong password produce the same UNAUTHORIZED response.
func (service *Service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	v := &validate.Validator{}
	v.Required(FieldEmail, req.Email).
		Required(FieldPassword, req.Password)
	if err := v.Err(); err != nil {
		return nil, err
	}

	user, err := service.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized("Invalid email or password")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	service.logger.Info("account_logged_in", slog.Int64("user_id", user.ID))
	return service.newSession(user)
}

// Me returns the profile of the authenticated user.
func (service *Service) Me(ctx context.Context, userID int64) (*UserResponse, error) {
	user, err := service.users.FindByID(ctx, userID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized("Account no longer exists")
		}
		return nil, err
	}

	response := toUserResponse(user)
	return &response, nil
}

func (service *Service) newSession(user *User) (*SessionResponse, error) {
	token, err := service.tokens.GenerateAccessToken(user.ID, user.Email, constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &SessionResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(constants.AccessTokenTTL.Seconds()),
		User:        toUserResponse(user),
	}, nil
}
