package repository

import (
	"context"

	"library-api/internal/domains/book/model"
)

// RepositoryInterface is the data access surface for books.
type RepositoryInterface interface {
	// Create and Update lock the referenced author for the duration of the
	// write and return model.ErrInvalidAuthor when it does not exist.
	Create(ctx context.Context, in model.BookInput) (*model.Book, error)
	Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error)

	GetByID(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, limit, offset int) ([]model.Book, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)
	SearchByTitle(ctx context.Context, pattern string) ([]model.Book, error)
}
