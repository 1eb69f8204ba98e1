package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"library-api/internal/domains/author/model"
	"library-api/internal/shared/pagination"
)

// MockAuthorRepository mocks author repository.RepositoryInterface.
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) Create(ctx context.Context, in model.AuthorInput) (*model.Author, error) {
	args := m.Called(ctx, in)
	if a, ok := args.Get(0).(*model.Author); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*model.Author); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthorRepository) List(ctx context.Context, limit, offset int) ([]model.Author, error) {
	args := m.Called(ctx, limit, offset)
	if a, ok := args.Get(0).([]model.Author); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthorRepository) Update(ctx context.Context, id int64, in model.AuthorInput) (*model.Author, error) {
	args := m.Called(ctx, id, in)
	if a, ok := args.Get(0).(*model.Author); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthorRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAuthorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthorRepository) CountBooks(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthorRepository) SearchByName(ctx context.Context, pattern string) ([]model.Author, error) {
	args := m.Called(ctx, pattern)
	if a, ok := args.Get(0).([]model.Author); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockAuthorService mocks author service.ServiceInterface.
type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) List(ctx context.Context, p pagination.Params) (*model.AuthorListResponse, error) {
	args := m.Called(ctx, p)
	if r, ok := args.Get(0).(*model.AuthorListResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*model.Author); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthorService) Create(ctx context.Context, in model.AuthorInput) (*model.Author, error) {
	args := m.Called(ctx, in)
	if a, ok := args.Get(0).(*model.Author); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthorService) Update(ctx context.Context, id int64, in model.AuthorInput) (*model.Author, error) {
	args := m.Called(ctx, id, in)
	if a, ok := args.Get(0).(*model.Author); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthorService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAuthorService) SearchByName(ctx context.Context, term string) ([]model.Author, error) {
	args := m.Called(ctx, term)
	if a, ok := args.Get(0).([]model.Author); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthorService) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
