// Package params reads path and query parameters, answering 400 itself when
// a value is unusable.
package params

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/pagination"
	"library-api/internal/shared/response"
)

// ID parses the :id path parameter. It writes 400 and returns false when the
// value is not a positive integer.
func ID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

// Page parses ?page= and ?limit=.
func Page(c *gin.Context, cfg pagination.Config) (pagination.Params, bool) {
	p, err := pagination.Parse(c.Query("page"), c.Query("limit"), cfg)
	if err != nil {
		response.BadRequest(c, "Invalid page or limit")
		return pagination.Params{}, false
	}
	return p, true
}

// SearchTerm reads a single non-blank query value. Missing, blank, repeated
// and non-text values are rejected.
func SearchTerm(c *gin.Context, key string) (string, bool) {
	values, ok := c.GetQueryArray(key)
	if !ok || len(values) != 1 || !validTerm(values[0]) {
		response.BadRequest(c, fmt.Sprintf("Invalid or empty %s parameter", key))
		return "", false
	}
	return values[0], true
}

// Postgres text cannot hold NUL or invalid UTF-8.
func validTerm(s string) bool {
	return strings.TrimSpace(s) != "" && utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}
