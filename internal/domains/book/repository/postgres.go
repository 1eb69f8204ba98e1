package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"library-api/internal/domains/book/model"
	"library-api/pkg/database"
	"library-api/pkg/query"
)

const (
	table        = "books"
	authorsTable = "authors"

	pgForeignKeyViolation = "23503"
)

var columns = []string{"id", "title", "description", "published_date", "author_id"}

// DB is what the repository needs from the pool: plain queries plus transactions.
type DB interface {
	database.Querier
	database.TxBeginner
}

type postgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) RepositoryInterface {
	return &postgresRepository{db: db}
}

// ════════════════════════════════════════════════════════════════
// CREATE
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) Create(ctx context.Context, in model.BookInput) (*model.Book, error) {
	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*model.Book, error) {
		if err := lockAuthor(ctx, tx, in.AuthorID); err != nil {
			return nil, err
		}

		sql, args := query.Insert(table).
			Set("title", in.Title).
			Set("description", in.Description).
			Set("published_date", in.PublishedDate).
			Set("author_id", in.AuthorID).
			Returning(columns...).
			ToSQL()

		book, err := collectOne(ctx, tx, sql, args)
		if err != nil {
			return nil, mapWriteError("create book", err)
		}
		return book, nil
	})
}

// ════════════════════════════════════════════════════════════════
// READ
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	sql, args := query.Select(columns...).From(table).Where("id", id).ToSQL()

	book, err := collectOne(ctx, r.db, sql, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return book, nil
}

// List returns one page ordered by id, so consecutive pages never overlap.
func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]model.Book, error) {
	sql, args := query.Select(columns...).
		From(table).
		OrderBy("id", query.Asc).
		Limit(limit).
		Offset(offset).
		ToSQL()

	books, err := collect(ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	sql, args := query.Count(table).ToSQL()

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	sql, args := query.Select(columns...).
		From(table).
		Where("author_id", authorID).
		OrderBy("id", query.Asc).
		ToSQL()

	books, err := collect(ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) SearchByTitle(ctx context.Context, pattern string) ([]model.Book, error) {
	sql, args := query.Select(columns...).
		From(table).
		WhereOp("title", query.OpLike, pattern).
		OrderBy("id", query.Asc).
		ToSQL()

	books, err := collect(ctx, r.db, sql, args)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return books, nil
}

// ════════════════════════════════════════════════════════════════
// UPDATE
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error) {
	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*model.Book, error) {
		if err := lockAuthor(ctx, tx, in.AuthorID); err != nil {
			return nil, err
		}

		sql, args := query.Update(table).
			Set("title", in.Title).
			Set("description", in.Description).
			Set("published_date", in.PublishedDate).
			Set("author_id", in.AuthorID).
			Where("id", id).
			Returning(columns...).
			ToSQL()

		book, err := collectOne(ctx, tx, sql, args)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrBookNotFound
			}
			return nil, mapWriteError("update book", err)
		}
		return book, nil
	})
}

// ════════════════════════════════════════════════════════════════
// DELETE
// ════════════════════════════════════════════════════════════════

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	sql, args := query.Delete(table).Where("id", id).ToSQL()

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

// lockAuthor takes a share lock on the author row. A concurrent author delete
// blocks until the surrounding transaction ends.
func lockAuthor(ctx context.Context, q database.Querier, authorID int64) error {
	sql, args := query.Select("id").From(authorsTable).Where("id", authorID).ForShare().ToSQL()

	var id int64
	err := q.QueryRow(ctx, sql, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrInvalidAuthor
	}
	if err != nil {
		return fmt.Errorf("failed to lock author: %w", err)
	}
	return nil
}

func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return model.ErrInvalidAuthor
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func collectOne(ctx context.Context, q database.Querier, sql string, args []any) (*model.Book, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func collect(ctx context.Context, q database.Querier, sql string, args []any) ([]model.Book, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
}
