package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/service"
	bookmodel "library-api/internal/domains/book/model"
	bookservice "library-api/internal/domains/book/service"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/params"
	"library-api/internal/shared/response"
	"library-api/internal/shared/validation"
)

type AuthorHandler struct {
	service     service.ServiceInterface
	bookService bookservice.ServiceInterface
	pagination  pagination.Config
}

func NewAuthorHandler(svc service.ServiceInterface, bookSvc bookservice.ServiceInterface, pcfg pagination.Config) *AuthorHandler {
	return &AuthorHandler{
		service:     svc,
		bookService: bookSvc,
		pagination:  pcfg,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /authors?page=1&limit=10
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	p, ok := params.Page(c, h.pagination)
	if !ok {
		return
	}

	resp, err := h.service.List(c.Request.Context(), p)
	if model.HandleAuthorError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	author, err := h.service.GetByID(c.Request.Context(), id)
	if model.HandleAuthorError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, author.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}

	author, err := h.service.Create(c.Request.Context(), in)
	if model.HandleAuthorError(c, err) {
		return
	}

	response.JSON(c, http.StatusCreated, author.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	in, ok := bindInput(c)
	if !ok {
		return
	}

	author, err := h.service.Update(c.Request.Context(), id, in)
	if model.HandleAuthorError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, author.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	if model.HandleAuthorError(c, h.service.Delete(c.Request.Context(), id)) {
		return
	}

	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// SEARCH: GET /authors/search?name=
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Search(c *gin.Context) {
	term, ok := params.SearchTerm(c, "name")
	if !ok {
		return
	}

	authors, err := h.service.SearchByName(c.Request.Context(), term)
	if model.HandleAuthorError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.ToResponses(authors))
}

// ════════════════════════════════════════════════════════════════
// BOOKS: GET /authors/:id/books
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) ListBooks(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	books, err := h.bookService.ListByAuthor(c.Request.Context(), id)
	if bookmodel.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, bookmodel.ToResponses(books))
}

// bindInput reads the body validated by the route's chain.
func bindInput(c *gin.Context) (model.AuthorInput, bool) {
	body, ok := validation.FromContext(c)
	if !ok {
		response.InternalServerError(c, fmt.Errorf("author route %s has no validation chain", c.FullPath()))
		return model.AuthorInput{}, false
	}

	in, err := model.InputFromBody(body)
	if err != nil {
		response.InternalServerError(c, fmt.Errorf("build author input: %w", err))
		return model.AuthorInput{}, false
	}
	return in, true
}
