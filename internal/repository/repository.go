// Package repository owns all access to the relational store. A generic
// Repository provides CRUD and a filtered, counted read path for any entity;
// per-entity repositories wrap it with their table's lookups and filters.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"userhub/api/internal/apperr"
)

// ErrNotFound reports that no row matched. Lookups return it instead of
// failing so existence checks stay a controller concern.
var ErrNotFound = errors.New("entity not found")

// Repository is a generic CRUD engine for one table. T's fields map to
// columns through db struct tags.
type Repository[T any] struct {
	pool  *pgxpool.Pool
	table string
}

func New[T any](pool *pgxpool.Pool, table string) *Repository[T] {
	return &Repository[T]{pool: pool, table: table}
}

// Create inserts a row built from attrs and returns it with the
// storage-assigned fields filled in. Timezone-aware timestamps in attrs are
// normalized to UTC first. The insert runs in its own transaction; on failure
// it is rolled back and the storage error surfaces.
func (r *Repository[T]) Create(ctx context.Context, attrs map[string]any) (T, error) {
	var entity T

	columns, placeholders, args := insertParts(normalizeTimes(attrs))
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		r.table, columns, placeholders)

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		entity, err = pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
		return err
	})
	if err != nil {
		var zero T
		return zero, apperr.Storage(err)
	}
	return entity, nil
}

// Update applies only the fields present in attrs to the row with the given
// id and returns the updated row. An empty attrs is a no-op that returns the
// row unchanged. Returns ErrNotFound when the id does not exist.
func (r *Repository[T]) Update(ctx context.Context, id int64, attrs map[string]any) (T, error) {
	if len(attrs) == 0 {
		return r.FindBy(ctx, "id", id)
	}

	var entity T

	set, args := updateParts(normalizeTimes(attrs))
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING *",
		r.table, set, len(args))

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		entity, err = pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
		return err
	})
	if err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, apperr.Storage(err)
	}
	return entity, nil
}

// Delete removes the row with the given id. Deleting an unknown id is
// ErrNotFound, not a silent no-op.
func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.table)

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return apperr.Storage(err)
}

// FindBy returns the single row where column equals value, or ErrNotFound.
func (r *Repository[T]) FindBy(ctx context.Context, column string, value any) (T, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 LIMIT 1", r.table, column)

	rows, err := r.pool.Query(ctx, query, value)
	if err != nil {
		var zero T
		return zero, apperr.Storage(err)
	}

	entity, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		var zero T
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, apperr.Storage(err)
	}
	return entity, nil
}

// FindFiltered returns one page of rows matching f plus the total match
// count. The total is computed over the unpaginated filtered query, so it is
// invariant to limit and offset. Rows come back ordered by creation time
// descending.
func (r *Repository[T]) FindFiltered(ctx context.Context, f Filter) ([]T, int64, error) {
	where, args := whereClause(f.Conds)

	pageQuery := fmt.Sprintf("SELECT * FROM %s%s ORDER BY created DESC LIMIT $%d OFFSET $%d",
		r.table, where, len(args)+1, len(args)+2)
	pageArgs := append(append([]any{}, args...), f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, 0, apperr.Storage(err)
	}
	entities, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, 0, apperr.Storage(err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.table, where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperr.Storage(err)
	}

	return entities, total, nil
}
