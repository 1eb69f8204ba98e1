package service

import (
	"context"

	"library-api/internal/domains/author/model"
	"library-api/internal/shared/pagination"
)

type ServiceInterface interface {
	List(ctx context.Context, p pagination.Params) (*model.AuthorListResponse, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, in model.AuthorInput) (*model.Author, error)
	Update(ctx context.Context, id int64, in model.AuthorInput) (*model.Author, error)
	Delete(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, term string) ([]model.Author, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
