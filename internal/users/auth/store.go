// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package auth

import "context"

// UserRepository defines the data access contract for accounts.
type UserRepository interface {
	// FindByID returns the account with the given id.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail returns the account with the given email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// EmailTaken reports whether an account already uses the email.
	EmailTaken(ctx context.Context, email string) (bool, error)

	// Create persists a new account and stamps id and timestamps.
	Create(ctx context.Context, user *User) error
}
