// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package category

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

// PostgresRepository implements [crud.Store] for categories using pgx.
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
		return schema.RefCategory.Name
	case "type":
		return schema.RefCategory.Kind
	case "updatedAt":
		return schema.RefCategory.UpdatedAt
	default:
		return schema.RefCategory.CreatedAt
	}
}

func (repository *PostgresRepository) List(context context.Context, q crud.Query) ([]*Category, int, error) {
	ref := schema.RefCategory

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	// Window function retrieves total count without a second round-trip.
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

	if kind, ok := q.Filters["type"]; ok {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", ref.Kind, argID))
		args = append(args, kind)
		argID++
	}

	if parentID, ok := q.Filters["parentId"]; ok {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", ref.ParentID, argID))
		args = append(args, convert.ToInt64(parentID))
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
		return nil, 0, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	var totalCount int

	for rows.Next() {
		entity := &Category{}
		err := rows.Scan(
			&entity.ID, &entity.UserID, &entity.ParentID,
			&entity.Name, &entity.Slug, &entity.Kind,
			&entity.Color, &entity.Icon,
			&entity.CreatedAt, &entity.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_categories")
	}

	return categories, totalCount, nil
}

func (repository *PostgresRepository) Get(context context.Context, id, ownerID int64) (*Category, error) {
	ref := schema.RefCategory
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		strings.Join(ref.Columns(), ", "), ref.Table, ref.ID, ref.UserID)

	entity := &Category{}
	err := repository.pool.QueryRow(context, query, id, ownerID).Scan(
		&entity.ID, &entity.UserID, &entity.ParentID,
		&entity.Name, &entity.Slug, &entity.Kind,
		&entity.Color, &entity.Icon,
		&entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_category")
	}

	return entity, nil
}

func (repository *PostgresRepository) Exists(context context.Context, id, ownerID int64) (bool, error) {
	ref := schema.RefCategory
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		ref.Table, ref.ID, ref.UserID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, id, ownerID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "category_exists")
	}

	return exists, nil
}

func (repository *PostgresRepository) Create(context context.Context, entity *Category) error {
	ref := schema.RefCategory
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		ref.Table,
		ref.UserID, ref.ParentID, ref.Name, ref.Slug, ref.Kind, ref.Color, ref.Icon,
		ref.CreatedAt, ref.UpdatedAt,
		ref.ID, ref.CreatedAt, ref.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		entity.UserID, entity.ParentID, entity.Name, entity.Slug,
		entity.Kind, entity.Color, entity.Icon,
	).Scan(&entity.ID, &entity.CreatedAt, &entity.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_category")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, entity *Category) error {
	ref := schema.RefCategory
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $7 AND %s = $8
		RETURNING %s
	`,
		ref.Table,
		ref.ParentID, ref.Name, ref.Slug, ref.Kind, ref.Color, ref.Icon, ref.UpdatedAt,
		ref.ID, ref.UserID,
		ref.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		entity.ParentID, entity.Name, entity.Slug, entity.Kind,
		entity.Color, entity.Icon,
		entity.ID, entity.UserID,
	).Scan(&entity.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_category")
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id, ownerID int64) error {
	ref := schema.RefCategory
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, ref.Table, ref.ID, ref.UserID)

	tag, err := repository.pool.Exec(context, query, id, ownerID)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
