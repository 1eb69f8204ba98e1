package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/service"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/params"
	"library-api/internal/shared/response"
	"library-api/internal/shared/validation"
)

type BookHandler struct {
	service    service.ServiceInterface
	pagination pagination.Config
}

func NewBookHandler(svc service.ServiceInterface, pcfg pagination.Config) *BookHandler {
	return &BookHandler{
		service:    svc,
		pagination: pcfg,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /books?page=1&limit=10
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) List(c *gin.Context) {
	p, ok := params.Page(c, h.pagination)
	if !ok {
		return
	}

	resp, err := h.service.List(c.Request.Context(), p)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, book.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}

	book, err := h.service.Create(c.Request.Context(), in)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusCreated, book.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	in, ok := bindInput(c)
	if !ok {
		return
	}

	book, err := h.service.Update(c.Request.Context(), id, in)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, book.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	if model.HandleBookError(c, h.service.Delete(c.Request.Context(), id)) {
		return
	}

	response.NoContent(c)
}

// ════════════════════════════════════════════════════════════════
// SEARCH: GET /books/search?title=
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Search(c *gin.Context) {
	term, ok := params.SearchTerm(c, "title")
	if !ok {
		return
	}

	books, err := h.service.SearchByTitle(c.Request.Context(), term)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.ToResponses(books))
}

// ════════════════════════════════════════════════════════════════
// BY AUTHOR: GET /books/author/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) ListByAuthor(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		return
	}

	books, err := h.service.ListByAuthor(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.JSON(c, http.StatusOK, model.ToResponses(books))
}

func bindInput(c *gin.Context) (model.BookInput, bool) {
	body, ok := validation.FromContext(c)
	if !ok {
		response.InternalServerError(c, fmt.Errorf("book route %s has no validation chain", c.FullPath()))
		return model.BookInput{}, false
	}

	in, err := model.InputFromBody(body)
	if err != nil {
		response.InternalServerError(c, fmt.Errorf("build book input: %w", err))
		return model.BookInput{}, false
	}
	return in, true
}
