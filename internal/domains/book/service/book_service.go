package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/repository"
	"library-api/internal/shared/pagination"
	"library-api/pkg/query"
)

type bookService struct {
	repo repository.RepositoryInterface
}

func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) List(ctx context.Context, p pagination.Params) (*model.BookListResponse, error) {
	var (
		books []model.Book
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = s.repo.List(gctx, p.Limit, p.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.BookListResponse{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Books: model.ToResponses(books),
	}, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Create(ctx context.Context, in model.BookInput) (*model.Book, error) {
	return s.repo.Create(ctx, in)
}

func (s *bookService) Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListByAuthor returns an empty slice, not an error, for an author without books.
func (s *bookService) ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	books, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (s *bookService) SearchByTitle(ctx context.Context, term string) ([]model.Book, error) {
	return s.repo.SearchByTitle(ctx, query.Contains(strings.TrimSpace(term)))
}
