package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/repository"
	"library-api/internal/shared/pagination"
	"library-api/pkg/query"
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

// List fetches the page and the total concurrently. If either query fails the
// other is cancelled through the shared context.
func (s *authorService) List(ctx context.Context, p pagination.Params) (*model.AuthorListResponse, error) {
	var (
		authors []model.Author
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authors, err = s.repo.List(gctx, p.Limit, p.Offset())
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

	return &model.AuthorListResponse{
		Page:    p.Page,
		Limit:   p.Limit,
		Total:   total,
		Authors: model.ToResponses(authors),
	}, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, in model.AuthorInput) (*model.Author, error) {
	return s.repo.Create(ctx, in)
}

func (s *authorService) Update(ctx context.Context, id int64, in model.AuthorInput) (*model.Author, error) {
	return s.repo.Update(ctx, id, in)
}

// Delete refuses to remove an author that still has books.
func (s *authorService) Delete(ctx context.Context, id int64) error {
	books, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if books > 0 {
		return fmt.Errorf("delete author %d: %w", id, model.ErrAuthorHasBooks)
	}

	return s.repo.Delete(ctx, id)
}

// SearchByName returns every author whose name contains term, matched literally.
func (s *authorService) SearchByName(ctx context.Context, term string) ([]model.Author, error) {
	return s.repo.SearchByName(ctx, query.Contains(strings.TrimSpace(term)))
}

func (s *authorService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}
