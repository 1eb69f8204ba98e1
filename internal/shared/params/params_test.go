package params

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"library-api/internal/shared/pagination"
)

func contextFor(target string, pathParams gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = pathParams
	return c, w
}

func TestID(t *testing.T) {
	c, _ := contextFor("/authors/42", gin.Params{{Key: "id", Value: "42"}})
	id, ok := ID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-3", "1.5", ""} {
		c, w := contextFor("/authors/x", gin.Params{{Key: "id", Value: raw}})
		_, ok := ID(c)
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid ID"}`, w.Body.String())
	}
}

func TestPage(t *testing.T) {
	cfg := pagination.Config{DefaultLimit: 10, MaxLimit: 100}

	c, _ := contextFor("/books?page=2&limit=5", nil)
	p, ok := Page(c, cfg)
	assert.True(t, ok)
	assert.Equal(t, pagination.Params{Page: 2, Limit: 5}, p)

	c, w := contextFor("/books?page=0", nil)
	_, ok = Page(c, cfg)
	assert.False(t, ok)
	assert.JSONEq(t, `{"message":"Invalid page or limit"}`, w.Body.String())

	for _, target := range []string{"/books?page=9223372036854775807", "/books?page=4611686018427387905&limit=4"} {
		c, w := contextFor(target, nil)
		_, ok := Page(c, cfg)
		assert.False(t, ok, target)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid page or limit"}`, w.Body.String())
	}
}

func TestSearchTerm(t *testing.T) {
	c, _ := contextFor("/authors/search?name=%20tolk%20", nil)
	term, ok := SearchTerm(c, "name")
	assert.True(t, ok)
	assert.Equal(t, " tolk ", term)

	for _, target := range []string{"/authors/search", "/authors/search?name=", "/authors/search?name=%20%20", "/authors/search?name=a&name=b", "/authors/search?name=to%00lk", "/authors/search?name=%FFtolk"} {
		c, w := contextFor(target, nil)
		_, ok := SearchTerm(c, "name")
		assert.False(t, ok, target)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Invalid or empty name parameter"}`, w.Body.String())
	}
}
