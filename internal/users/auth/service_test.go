// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantoapp/quanto/internal/platform/apperr"
	"github.com/quantoapp/quanto/internal/platform/dberr"
	"github.com/quantoapp/quanto/internal/users/auth"
)

// memoryUsers is an in-memory [auth.UserRepository].
type memoryUsers struct {
	users  map[int64]*auth.User
	nextID int64
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[int64]*auth.User)}
}

func (repo *memoryUsers) FindByID(_ context.Context, id int64) (*auth.User, error) {
	user, found := repo.users[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (repo *memoryUsers) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range repo.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryUsers) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := repo.FindByEmail(ctx, email)
	return err == nil, nil
}

func (repo *memoryUsers) Create(_ context.Context, user *auth.User) error {
	repo.nextID++
	user.ID = repo.nextID
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	clone := *user
	repo.users[user.ID] = &clone
	return nil
}

// staticTokens issues a fixed token string.
type staticTokens struct{}

func (staticTokens) GenerateAccessToken(int64, string, time.Duration) (string, error) {
	return "test-token", nil
}

func newService() (*auth.Service, *memoryUsers) {
	repo := newMemoryUsers()
	return auth.NewService(repo, staticTokens{}, nil), repo
}

func registerRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		Email:       "dev@quanto.app",
		Password:    "correct-horse",
		DisplayName: "Dev",
	}
}

/*
TestRegister verifies account creation and the issued session.
*/
func TestRegister(t *testing.T) {
	service, repo := newService()

	session, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "test-token", session.AccessToken)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.Positive(t, session.ExpiresIn)
	assert.Equal(t, "dev@quanto.app", session.User.Email)
	assert.NotZero(t, session.User.ID)

	// The stored account keeps a hash, never the plain password.
	stored := repo.users[session.User.ID]
	assert.NotEqual(t, "correct-horse", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

/*
TestRegister_DuplicateEmail verifies the CONFLICT answer.
*/
func TestRegister_DuplicateEmail(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = service.Register(ctx, registerRequest())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

/*
TestRegister_Validation covers the field rules.
*/
func TestRegister_Validation(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*auth.RegisterRequest)
		field  string
	}{
		{"missing_email", func(req *auth.RegisterRequest) { req.Email = "" }, "email"},
		{"bad_email", func(req *auth.RegisterRequest) { req.Email = "not-an-email" }, "email"},
		{"short_password", func(req *auth.RegisterRequest) { req.Password = "short" }, "password"},
		{"missing_display_name", func(req *auth.RegisterRequest) { req.DisplayName = "" }, "displayName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := registerRequest()
			tt.mutate(&req)

			_, err := service.Register(ctx, req)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.KindValidation, ae.Kind)
			require.NotEmpty(t, ae.Fields)
			assert.Equal(t, tt.field, ae.Fields[0].Field)
		})
	}
}

/*
TestLogin verifies credential checking and its failure modes.
*/
func TestLogin(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	_, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		session, err := service.Login(ctx, auth.LoginRequest{
			Email:    "dev@quanto.app",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, "test-token", session.AccessToken)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(ctx, auth.LoginRequest{
			Email:    "dev@quanto.app",
			Password: "wrong-horse",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := service.Login(ctx, auth.LoginRequest{
			Email:    "nobody@quanto.app",
			Password: "correct-horse",
		})
		require.Error(t, err)
		// Same answer as a wrong password: no account enumeration.
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})
}

/*
TestMe verifies profile retrieval for authenticated users.
*/
func TestMe(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	session, err := service.Register(ctx, registerRequest())
	require.NoError(t, err)

	profile, err := service.Me(ctx, session.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "dev@quanto.app", profile.Email)
	assert.Equal(t, "Dev", profile.DisplayName)

	_, err = service.Me(ctx, 999)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}
