// Package pagination parses page/limit query parameters.
package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidParams is returned for a page or limit that is not a positive
// integer, or a page whose offset does not fit in an int.
var ErrInvalidParams = errors.New("invalid page or limit")

type Config struct {
	DefaultLimit int
	MaxLimit     int
}

// Params is a validated 1-based page window.
type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Parse reads raw page and limit values. Empty values take the defaults
// (page 1, cfg.DefaultLimit); a limit above cfg.MaxLimit is clamped.
func Parse(pageStr, limitStr string, cfg Config) (Params, error) {
	page, err := parsePositive(pageStr, 1)
	if err != nil {
		return Params{}, err
	}

	limit, err := parsePositive(limitStr, cfg.DefaultLimit)
	if err != nil {
		return Params{}, err
	}
	if cfg.MaxLimit > 0 && limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if page-1 > math.MaxInt/limit {
		return Params{}, ErrInvalidParams
	}

	return Params{Page: page, Limit: limit}, nil
}

func parsePositive(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, ErrInvalidParams
	}
	return n, nil
}
