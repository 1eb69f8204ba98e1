package repository

import (
	"context"

	"library-api/internal/domains/author/model"
)

// RepositoryInterface is the data access surface for authors.
type RepositoryInterface interface {
	Create(ctx context.Context, in model.AuthorInput) (*model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	List(ctx context.Context, limit, offset int) ([]model.Author, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id int64, in model.AuthorInput) (*model.Author, error)
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	CountBooks(ctx context.Context, id int64) (int64, error)
	// SearchByName matches name against a LIKE pattern the caller has already escaped.
	SearchByName(ctx context.Context, pattern string) ([]model.Author, error)
}
