// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/internal/platform/database/schema"
	"github.com/quantoapp/quanto/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
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
	case "name":
		return schema.RefGoal.Name
	case "targetAmount":
		return schema.RefGoal.TargetAmount
	case "currentAmount":
		return schema.RefGoal.CurrentAmount
	case "deadline":
		return schema.RefGoal.Deadline
	case "updatedAt":
		return schema.RefGoal.UpdatedAt
	default:
		return schema.RefGoal.CreatedAt
	}
}

func (repository *PostgresRepository) List(context context.Context, q crud.Query) ([]*Goal, int, error) {
	ref := schema.RefGoal

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(
		`SELECT %s, COUNT(*) OVER() AS total_count FROM %s WHERE %s = $1`,
		strings.Join(ref.Columns(), ", "), ref.Table, ref.UserID))
	args = append(args, q.OwnerID)
	argID++

	if q.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s ILIKE $%d", ref.Name, argID))
		args = append(args, "%"+q.Search+"%")
		argID++
	}

	if status, ok := q.Filters["status"]; ok {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", ref.Status, argID))
		args = append(args, status)
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
		return nil, 0, dberr.Wrap(err, "list_goals")
	}
	defer rows.Close()

	goals := make([]*Goal, 0)
	var totalCount int

	for rows.Next() {
		entity := &Goal{}
		err := rows.Scan(
			&entity.ID, &entity.UserID, &entity.Name,
			&entity.TargetAmount, &entity.CurrentAmount,
			&entity.Deadline, &entity.Status,
			&entity.CreatedAt, &entity.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_goal")
		}
		goals = append(goals, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_goals")
	}

	return goals, totalCount, nil
}

func (repository *PostgresRepository) Get(context context.Context, id, ownerID int64) (*Goal, error) {
	ref := schema.RefGoal
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		strings.Join(ref.Columns(), ", "), ref.Table, ref.ID, ref.UserID)

	entity := &Goal{}
	err := repository.pool.QueryRow(context, query, id, ownerID).Scan(
		&entity.ID, &entity.UserID, &entity.Name,
		&entity.TargetAmount, &entity.CurrentAmount,
		&entity.Deadline, &entity.Status,
		&entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_goal")
	}

	return entity, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id, ownerID int64) (bool, error) {
	ref := schema.RefGoal
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		ref.Table, ref.ID, ref.UserID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, id, ownerID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "goal_exists")
	}

	return exists, nil
}

func (repository *PostgresRepository) Create(context context.Context, entity *Goal) error {
	ref := schema.RefGoal
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		ref.Table,
		ref.UserID, ref.Name, ref.TargetAmount, ref.CurrentAmount, ref.Deadline, ref.Status,
		ref.CreatedAt, ref.UpdatedAt,
		ref.ID, ref.CreatedAt, ref.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		entity.UserID, entity.Name, entity.TargetAmount,
		entity.CurrentAmount, entity.Deadline, entity.Status,
	).Scan(&entity.ID, &entity.CreatedAt, &entity.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_goal")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, entity *Goal) error {
	ref := schema.RefGoal
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $6 AND %s = $7
		RETURNING %s
	`,
		ref.Table,
		ref.Name, ref.TargetAmount, ref.CurrentAmount, ref.Deadline, ref.Status, ref.UpdatedAt,
		ref.ID, ref.UserID,
		ref.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		entity.Name, entity.TargetAmount, entity.CurrentAmount,
		entity.Deadline, entity.Status,
		entity.ID, entity.UserID,
	).Scan(&entity.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_goal")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id, ownerID int64) error {
	ref := schema.RefGoal
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, ref.Table, ref.ID, ref.UserID)

	tag, err := repository.pool.Exec(context, query, id, ownerID)
	if err != nil {
		return dberr.Wrap(err, "delete_goal")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// AddProgress applies the contribution and the completion transition in a
// single atomic statement.
func (repository *PostgresRepository) AddProgress(context context.Context, id, ownerID int64, amount float64) (*Goal, error) {
	ref := schema.RefGoal
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + $1,
		    %s = CASE
		        WHEN %s = 'active' AND %s + $1 >= %s THEN 'completed'
		        ELSE %s
		    END,
		    %s = NOW()
		WHERE %s = $2 AND %s = $3
		RETURNING %s
	`,
		ref.Table,
		ref.CurrentAmount, ref.CurrentAmount,
		ref.Status,
		ref.Status, ref.CurrentAmount, ref.TargetAmount,
		ref.Status,
		ref.UpdatedAt,
		ref.ID, ref.UserID,
		strings.Join(ref.Columns(), ", "),
	)

	entity := &Goal{}
	err := repository.pool.QueryRow(context, query, amount, id, ownerID).Scan(
		&entity.ID, &entity.UserID, &entity.Name,
		&entity.TargetAmount, &entity.CurrentAmount,
		&entity.Deadline, &entity.Status,
		&entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "add_goal_progress")
	}

	return entity, nil
}
