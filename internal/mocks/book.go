package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared/pagination"
)

// MockBookRepository mocks book repository.RepositoryInterface.
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, in model.BookInput) (*model.Book, error) {
	args := m.Called(ctx, in)
	if b, ok := args.Get(0).(*model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookRepository) Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error) {
	args := m.Called(ctx, id, in)
	if b, ok := args.Get(0).(*model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context, limit, offset int) ([]model.Book, error) {
	args := m.Called(ctx, limit, offset)
	if b, ok := args.Get(0).([]model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookRepository) ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	args := m.Called(ctx, authorID)
	if b, ok := args.Get(0).([]model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookRepository) SearchByTitle(ctx context.Context, pattern string) ([]model.Book, error) {
	args := m.Called(ctx, pattern)
	if b, ok := args.Get(0).([]model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockBookService mocks book service.ServiceInterface.
type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) List(ctx context.Context, p pagination.Params) (*model.BookListResponse, error) {
	args := m.Called(ctx, p)
	if r, ok := args.Get(0).(*model.BookListResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookService) Create(ctx context.Context, in model.BookInput) (*model.Book, error) {
	args := m.Called(ctx, in)
	if b, ok := args.Get(0).(*model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookService) Update(ctx context.Context, id int64, in model.BookInput) (*model.Book, error) {
	args := m.Called(ctx, id, in)
	if b, ok := args.Get(0).(*model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookService) ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	args := m.Called(ctx, authorID)
	if b, ok := args.Get(0).([]model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookService) SearchByTitle(ctx context.Context, term string) ([]model.Book, error) {
	args := m.Called(ctx, term)
	if b, ok := args.Get(0).([]model.Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
