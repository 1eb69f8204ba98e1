package model

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(ErrAuthorNotFound))
	assert.Equal(t, http.StatusConflict, ToHTTPStatus(fmt.Errorf("delete author 3: %w", ErrAuthorHasBooks)))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(errors.New("boom")))
}

func TestHandleAuthorError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "not found", err: ErrAuthorNotFound, wantCode: http.StatusNotFound, wantBody: `{"message":"Author not found"}`},
		{name: "has books", err: fmt.Errorf("delete author 3: %w", ErrAuthorHasBooks), wantCode: http.StatusConflict, wantBody: `{"message":"Author has books"}`},
		{name: "unexpected", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: `{"message":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			assert.True(t, HandleAuthorError(c, tt.err))
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	assert.False(t, HandleAuthorError(c, nil))
}
