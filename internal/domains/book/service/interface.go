package service

import (
	"context"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared/pagination"
)

type ServiceInterface interface {
	List(ctx context.Context, p pagination.Params) (*model.BookListResponse, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, in model.BookInput) (*model.Book, error)
	Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)
	SearchByTitle(ctx context.Context, term string) ([]model.Book, error)
}
