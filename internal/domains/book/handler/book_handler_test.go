package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"library-api/internal/domains/book/model"
	"library-api/internal/mocks"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/validation"
)

var testPagination = pagination.Config{DefaultLimit: 10, MaxLimit: 100}

// knownAuthors stands in for the author existence lookup.
func knownAuthors(ids ...int64) validation.ExistsFunc {
	return func(ctx context.Context, id int64) (bool, error) {
		for _, known := range ids {
			if id == known {
				return true, nil
			}
		}
		return false, nil
	}
}

func setupRouter(svc *mocks.MockBookService, exists validation.ExistsFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookHandler(svc, testPagination)

	r.GET("/books", h.List)
	r.GET("/books/search", h.Search)
	r.GET("/books/author/:id", h.ListByAuthor)
	r.GET("/books/:id", h.GetByID)
	r.POST("/books", validation.Chain(model.Fields(exists)...), h.Create)
	r.PUT("/books/:id", validation.Chain(model.Fields(exists)...), h.Update)
	r.DELETE("/books/:id", h.Delete)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func earthsea() *model.Book {
	desc := "A young wizard"
	return &model.Book{
		ID:            1,
		Title:         "A Wizard of Earthsea",
		Description:   &desc,
		PublishedDate: time.Date(1968, 11, 1, 0, 0, 0, 0, time.UTC),
		AuthorID:      7,
	}
}

const earthseaJSON = `{"id":1,"title":"A Wizard of Earthsea","description":"A young wizard","published_date":"1968-11-01","author_id":7}`

func TestBookHandler_List(t *testing.T) {
	svc := new(mocks.MockBookService)
	svc.On("List", mock.Anything, pagination.Params{Page: 1, Limit: 10}).Return(&model.BookListResponse{
		Page: 1, Limit: 10, Total: 1, Books: []model.BookResponse{earthsea().ToResponse()},
	}, nil)

	w := do(setupRouter(svc, knownAuthors()), http.MethodGet, "/books", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"page":1,"limit":10,"total":1,"books":[`+earthseaJSON+`]}`, w.Body.String())
}

func TestBookHandler_List_Failure(t *testing.T) {
	svc := new(mocks.MockBookService)
	svc.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	w := do(setupRouter(svc, knownAuthors()), http.MethodGet, "/books?limit=3", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
}

func TestBookHandler_GetByID(t *testing.T) {
	svc := new(mocks.MockBookService)
	svc.On("GetByID", mock.Anything, int64(1)).Return(earthsea(), nil)
	svc.On("GetByID", mock.Anything, int64(2)).Return(nil, model.ErrBookNotFound)
	r := setupRouter(svc, knownAuthors())

	w := do(r, http.MethodGet, "/books/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, earthseaJSON, w.Body.String())

	w = do(r, http.MethodGet, "/books/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())
}

func TestBookHandler_Create(t *testing.T) {
	svc := new(mocks.MockBookService)
	want := model.BookInput{
		Title:         "A Wizard of Earthsea",
		Description:   earthsea().Description,
		PublishedDate: time.Date(1968, 11, 1, 0, 0, 0, 0, time.UTC),
		AuthorID:      7,
	}
	svc.On("Create", mock.Anything, want).Return(earthsea(), nil)

	w := do(setupRouter(svc, knownAuthors(7)), http.MethodPost, "/books",
		`{"title":"A Wizard of Earthsea","description":"A young wizard","published_date":"1968-11-01","author_id":7}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, earthseaJSON, w.Body.String())
	svc.AssertExpectations(t)
}

func TestBookHandler_Create_UnknownAuthor(t *testing.T) {
	svc := new(mocks.MockBookService)

	w := do(setupRouter(svc, knownAuthors(7)), http.MethodPost, "/books",
		`{"title":"Orphan","published_date":"2001-01-01","author_id":8}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"field":"author_id","message":"Invalid author ID"}]}`, w.Body.String())
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookHandler_Create_AuthorDeletedAfterValidation(t *testing.T) {
	svc := new(mocks.MockBookService)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, model.ErrInvalidAuthor)

	w := do(setupRouter(svc, knownAuthors(7)), http.MethodPost, "/books",
		`{"title":"Race","published_date":"2001-01-01","author_id":7}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"field":"author_id","message":"Invalid author ID"}]}`, w.Body.String())
}

func TestBookHandler_Create_ExistenceLookupFails(t *testing.T) {
	svc := new(mocks.MockBookService)
	failing := func(ctx context.Context, id int64) (bool, error) { return false, errors.New("pool exhausted") }

	w := do(setupRouter(svc, failing), http.MethodPost, "/books",
		`{"title":"Race","published_date":"2001-01-01","author_id":7}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
}

func TestBookHandler_Update(t *testing.T) {
	svc := new(mocks.MockBookService)
	svc.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(in model.BookInput) bool {
		return in.Title == "Earthsea" && in.Description == nil && in.AuthorID == 7
	})).Return(&model.Book{ID: 1, Title: "Earthsea", PublishedDate: time.Date(1968, 11, 1, 0, 0, 0, 0, time.UTC), AuthorID: 7}, nil)
	svc.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil, model.ErrBookNotFound)
	r := setupRouter(svc, knownAuthors(7))

	body := `{"title":"Earthsea","published_date":"1968-11-01","author_id":"7"}`

	w := do(r, http.MethodPut, "/books/1", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"title":"Earthsea","description":null,"published_date":"1968-11-01","author_id":7}`, w.Body.String())

	w = do(r, http.MethodPut, "/books/5", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())

	w = do(r, http.MethodPut, "/books/x", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid ID"}`, w.Body.String())
}

func TestBookHandler_Delete(t *testing.T) {
	svc := new(mocks.MockBookService)
	svc.On("Delete", mock.Anything, int64(1)).Return(nil)
	svc.On("Delete", mock.Anything, int64(2)).Return(model.ErrBookNotFound)
	r := setupRouter(svc, knownAuthors())

	w := do(r, http.MethodDelete, "/books/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodDelete, "/books/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Book not found"}`, w.Body.String())
}

func TestBookHandler_Search(t *testing.T) {
	svc := new(mocks.MockBookService)
	svc.On("SearchByTitle", mock.Anything, "Wizard").Return([]model.Book{*earthsea()}, nil)
	r := setupRouter(svc, knownAuthors())

	w := do(r, http.MethodGet, "/books/search?title=Wizard", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[`+earthseaJSON+`]`, w.Body.String())

	w = do(r, http.MethodGet, "/books/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid or empty title parameter"}`, w.Body.String())
}

func TestBookHandler_ListByAuthor(t *testing.T) {
	svc := new(mocks.MockBookService)
	svc.On("ListByAuthor", mock.Anything, int64(7)).Return([]model.Book{*earthsea()}, nil)
	svc.On("ListByAuthor", mock.Anything, int64(8)).Return([]model.Book{}, nil)
	r := setupRouter(svc, knownAuthors())

	w := do(r, http.MethodGet, "/books/author/7", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[`+earthseaJSON+`]`, w.Body.String())

	w = do(r, http.MethodGet, "/books/author/8", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = do(r, http.MethodGet, "/books/author/seven", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
