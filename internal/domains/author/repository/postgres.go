package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"library-api/internal/domains/author/model"
	"library-api/pkg/database"
	"library-api/pkg/query"
)

const (
	table      = "authors"
	booksTable = "books"

	pgForeignKeyViolation = "23503"
)

var columns = []string{"id", "name", "bio", "birthdate"}

type postgresRepository struct {
	db database.Querier
}

func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresRepository{db: db}
}

// ════════════════════════════════════════════════════════════════
// CREATE
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) Create(ctx context.Context, in model.AuthorInput) (*model.Author, error) {
	sql, args := query.Insert(table).
		Set("name", in.Name).
		Set("bio", in.Bio).
		Set("birthdate", in.Birthdate).
		Returning(columns...).
		ToSQL()

	author, err := r.collectOne(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

// ════════════════════════════════════════════════════════════════
// READ
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	sql, args := query.Select(columns...).From(table).Where("id", id).ToSQL()

	author, err := r.collectOne(ctx, sql, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return author, nil
}

// List returns one page ordered by id, so consecutive pages never overlap.
func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]model.Author, error) {
	sql, args := query.Select(columns...).
		From(table).
		OrderBy("id", query.Asc).
		Limit(limit).
		Offset(offset).
		ToSQL()

	authors, err := r.collect(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	sql, args := query.Count(table).ToSQL()

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	sql, args := query.Select("id").From(table).Where("id", id).ToSQL()

	var found int64
	err := r.db.QueryRow(ctx, sql, args...).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return true, nil
}

func (r *postgresRepository) CountBooks(ctx context.Context, id int64) (int64, error) {
	sql, args := query.Count(booksTable).Where("author_id", id).ToSQL()

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count author books: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) SearchByName(ctx context.Context, pattern string) ([]model.Author, error) {
	sql, args := query.Select(columns...).
		From(table).
		WhereOp("name", query.OpLike, pattern).
		OrderBy("id", query.Asc).
		ToSQL()

	authors, err := r.collect(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("failed to search authors: %w", err)
	}
	return authors, nil
}

// ════════════════════════════════════════════════════════════════
// UPDATE
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) Update(ctx context.Context, id int64, in model.AuthorInput) (*model.Author, error) {
	sql, args := query.Update(table).
		Set("name", in.Name).
		Set("bio", in.Bio).
		Set("birthdate", in.Birthdate).
		Where("id", id).
		Returning(columns...).
		ToSQL()

	author, err := r.collectOne(ctx, sql, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return author, nil
}

// ════════════════════════════════════════════════════════════════
// DELETE
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	sql, args := query.Delete(table).Where("id", id).ToSQL()

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return model.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) collectOne(ctx context.Context, sql string, args []any) (*model.Author, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	author, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Author])
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *postgresRepository) collect(ctx context.Context, sql string, args []any) ([]model.Author, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Author])
}
