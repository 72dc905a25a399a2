// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/internal/platform/database/schema"
	"github.com/quantoapp/quanto/internal/platform/dberr"
	"github.com/quantoapp/quanto/pkg/convert"
)

// PostgresRepository implements [crud.Store] for transactions using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// sortColumn maps a wire sort field onto a column. Unknown fields fall back
// to the creation timestamp.
func sortColumn(sortBy string) string {
	switch sortBy {
	case "amount":
		return schema.RefTransaction.Amount
	case "occurredAt":
		return schema.RefTransaction.OccurredAt
	case "description":
		return schema.RefTransaction.Description
	case "updatedAt":
		return schema.RefTransaction.UpdatedAt
	default:
		return schema.RefTransaction.CreatedAt
	}
}

func (repository *PostgresRepository) List(context context.Context, q crud.Query) ([]*Transaction, int, error) {
	ref := schema.RefTransaction

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(
		`SELECT %s, COUNT(*) OVER() AS total_count FROM %s WHERE %s = $1`,
		strings.Join(ref.Columns(), ", "), ref.Table, ref.UserID))
	args = append(args, q.OwnerID)
	argID++

	if q.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (%s ILIKE $%d OR %s ILIKE $%d)",
			ref.Description, argID, ref.Notes, argID))
		args = append(args, "%"+q.Search+"%")
		argID++
	}

	if kind, ok := q.Filters["type"]; ok {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", ref.Kind, argID))
		args = append(args, kind)
		argID++
	}

	if categoryID, ok := q.Filters["categoryId"]; ok {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", ref.CategoryID, argID))
		args = append(args, convert.ToInt64(categoryID))
		argID++
	}

	if q.CreatedFrom != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s >= $%d", ref.CreatedAt, argID))
		args = append(args, *q.CreatedFrom)
		argID++
	}

	if q.CreatedTo != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s <= $%d", ref.CreatedAt, argID))
		args = append(args, *q.CreatedTo)
		argID++
	}

	sortDir := "ASC"
	if q.SortDir == "desc" {
		sortDir = "DESC"
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s, %s DESC", sortColumn(q.SortBy), sortDir, ref.ID))

	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, q.Limit, q.Offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_transactions")
	}
	defer rows.Close()

	transactions := make([]*Transaction, 0)
	var totalCount int

	for rows.Next() {
		entity := &Transaction{}
		err := rows.Scan(
			&entity.ID, &entity.UserID, &entity.CategoryID,
			&entity.Kind, &entity.Amount, &entity.Description, &entity.Notes,
			&entity.OccurredAt, &entity.CreatedAt, &entity.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_transaction")
		}
		transactions = append(transactions, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_transactions")
	}

	return transactions, totalCount, nil
}

func (repository *PostgresRepository) Get(context context.Context, id, ownerID int64) (*Transaction, error) {
	ref := schema.RefTransaction
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		strings.Join(ref.Columns(), ", "), ref.Table, ref.ID, ref.UserID)

	entity := &Transaction{}
	err := repository.pool.QueryRow(context, query, id, ownerID).Scan(
		&entity.ID, &entity.UserID, &entity.CategoryID,
		&entity.Kind, &entity.Amount, &entity.Description, &entity.Notes,
		&entity.OccurredAt, &entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_transaction")
	}

	return entity, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id, ownerID int64) (bool, error) {
	ref := schema.RefTransaction
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		ref.Table, ref.ID, ref.UserID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, id, ownerID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "transaction_exists")
	}

	return exists, nil
}

func (repository *PostgresRepository) Create(context context.Context, entity *Transaction) error {
	ref := schema.RefTransaction
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		ref.Table,
		ref.UserID, ref.CategoryID, ref.Kind, ref.Amount, ref.Description, ref.Notes, ref.OccurredAt,
		ref.CreatedAt, ref.UpdatedAt,
		ref.ID, ref.CreatedAt, ref.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		entity.UserID, entity.CategoryID, entity.Kind, entity.Amount,
		entity.Description, entity.Notes, entity.OccurredAt,
	).Scan(&entity.ID, &entity.CreatedAt, &entity.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_transaction")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, entity *Transaction) error {
	ref := schema.RefTransaction
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $7 AND %s = $8
		RETURNING %s
	`,
		ref.Table,
		ref.CategoryID, ref.Kind, ref.Amount, ref.Description, ref.Notes, ref.OccurredAt, ref.UpdatedAt,
		ref.ID, ref.UserID,
		ref.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		entity.CategoryID, entity.Kind, entity.Amount,
		entity.Description, entity.Notes, entity.OccurredAt,
		entity.ID, entity.UserID,
	).Scan(&entity.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_transaction")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id, ownerID int64) error {
	ref := schema.RefTransaction
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, ref.Table, ref.ID, ref.UserID)

	tag, err := repository.pool.Exec(context, query, id, ownerID)
	if err != nil {
		return dberr.Wrap(err, "delete_transaction")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
