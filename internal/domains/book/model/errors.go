package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/response"
)

var (
	ErrBookNotFound = errors.New("book not found")
	// ErrInvalidAuthor means author_id referenced no author when the write ran,
	// e.g. the author was deleted after the body passed validation.
	ErrInvalidAuthor = errors.New("invalid author id")
)

// ToHTTPStatus maps a service error to its status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidAuthor):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HandleBookError writes the response for err. It returns false when err is nil.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch ToHTTPStatus(err) {
	case http.StatusNotFound:
		response.NotFound(c, "Book not found")
	case http.StatusBadRequest:
		response.ValidationErrors(c, []response.FieldError{{Field: "author_id", Message: InvalidAuthorMessage}})
	default:
		response.InternalServerError(c, err)
	}
	return true
}
