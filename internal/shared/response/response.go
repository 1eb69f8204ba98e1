package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// MessageBody is the body of every non-validation error.
type MessageBody struct {
	Message string `json:"message"`
}

// FieldError is one entry of a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationBody struct {
	Errors []FieldError `json:"errors"`
}

const internalErrorMessage = "Internal Server Error"

// JSON writes data as the response body.
func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Message writes {"message": message} and aborts the chain.
func Message(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, MessageBody{Message: message})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ValidationErrors writes {"errors": [...]} with status 400.
func ValidationErrors(c *gin.Context, errs []FieldError) {
	if errs == nil {
		errs = []FieldError{}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationBody{Errors: errs})
}

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Message(c, http.StatusConflict, message)
}

// InternalServerError logs err and answers with a generic 500.
// The cause never reaches the client.
func InternalServerError(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	Message(c, http.StatusInternalServerError, internalErrorMessage)
}
