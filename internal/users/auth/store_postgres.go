// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantoapp/quanto/internal/platform/database/schema"
	"github.com/quantoapp/quanto/internal/platform/dberr"
)

// PostgresRepository implements [UserRepository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*User, error) {
	ref := schema.RefAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(ref.Columns(), ", "), ref.Table, ref.ID)

	return repository.queryOne(context, query, "find_account_by_id", id)
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*User, error) {
	ref := schema.RefAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`,
		strings.Join(ref.Columns(), ", "), ref.Table, ref.Email)

	return repository.queryOne(context, query, "find_account_by_email", email)
}

func (repository *PostgresRepository) EmailTaken(context context.Context, email string) (bool, error) {
	ref := schema.RefAccount
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE LOWER(%s) = LOWER($1))`,
		ref.Table, ref.Email)

	var taken bool
	if err := repository.pool.QueryRow(context, query, email).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, "account_email_taken")
	}

	return taken, nil
}

func (repository *PostgresRepository) Create(context context.Context, user *User) error {
	ref := schema.RefAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		ref.Table,
		ref.Email, ref.PasswordHash, ref.DisplayName, ref.CreatedAt, ref.UpdatedAt,
		ref.ID, ref.CreatedAt, ref.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.Email, user.PasswordHash, user.DisplayName,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_account")
	}

	return nil
}

func (repository *PostgresRepository) queryOne(context context.Context, query, action string, arg any) (*User, error) {
	user := &User{}
	err := repository.pool.QueryRow(context, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return user, nil
}
