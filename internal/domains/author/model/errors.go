package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/response"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrAuthorHasBooks = errors.New("author has books")
)

var authorErrorMessages = map[int]string{
	http.StatusNotFound: "Author not found",
	http.StatusConflict: "Author has books",
}

// ToHTTPStatus maps a service error to its status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAuthorHasBooks):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleAuthorError writes the response for err. It returns false when err is nil.
func HandleAuthorError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	status := ToHTTPStatus(err)
	if msg, ok := authorErrorMessages[status]; ok {
		response.Message(c, status, msg)
		return true
	}

	response.InternalServerError(c, err)
	return true
}
