// Package validation checks raw JSON request bodies against per-field rules
// before they reach a handler.
package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/gin-gonic/gin"
	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/response"
)

const bodyKey = "validated_body"

// Field declares the rules for one body key. Missing is reported when a
// required key is absent from the body.
type Field struct {
	Name     string
	Missing  string
	Optional bool
	Rules    []ozzo.Rule
}

// Body is a decoded JSON object with numbers kept as json.Number.
type Body map[string]any

var errNotObject = errors.New("request body must be a JSON object")

// Decode reads a single JSON object from r.
func Decode(r io.Reader) (Body, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errNotObject
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errNotObject
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return Body(obj), nil
}

// Validate runs fields against body and returns the failures sorted by field.
// A non-nil error means a rule could not run, e.g. the database was unreachable.
func Validate(ctx context.Context, body Body, fields []Field) ([]response.FieldError, error) {
	keys := make([]*ozzo.KeyRules, 0, len(fields))
	missing := make(map[string]string, len(fields))
	for _, f := range fields {
		kr := ozzo.Key(f.Name, f.Rules...)
		if f.Optional {
			kr = kr.Optional()
		}
		keys = append(keys, kr)
		missing[f.Name] = f.Missing
	}

	err := ozzo.ValidateWithContext(ctx, map[string]any(body), ozzo.Map(keys...).AllowExtraKeys())
	if err == nil {
		return nil, nil
	}

	var ie ozzo.InternalError
	if errors.As(err, &ie) {
		return nil, fmt.Errorf("validate request body: %w", ie.InternalError())
	}

	var errs ozzo.Errors
	if !errors.As(err, &errs) {
		return nil, fmt.Errorf("validate request body: %w", err)
	}

	out := make([]response.FieldError, 0, len(errs))
	for field, ferr := range errs {
		out = append(out, response.FieldError{Field: field, Message: message(ferr, missing[field])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })

	return out, nil
}

func message(err error, missing string) string {
	var e ozzo.Error
	if errors.As(err, &e) && e.Code() == ozzo.ErrKeyMissing.Code() && missing != "" {
		return missing
	}
	return err.Error()
}

// Chain returns middleware that rejects the request with 400 and the full
// error list when the body fails fields. On success the decoded body is
// stored on the context for FromContext.
func Chain(fields ...Field) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.InternalServerError(c, fmt.Errorf("read request body: %w", err))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		body, err := Decode(bytes.NewReader(raw))
		if err != nil {
			response.ValidationErrors(c, []response.FieldError{{Field: "body", Message: "Request body must be a JSON object"}})
			return
		}

		errs, err := Validate(c.Request.Context(), body, fields)
		if err != nil {
			response.InternalServerError(c, err)
			return
		}
		if len(errs) > 0 {
			response.ValidationErrors(c, errs)
			return
		}

		c.Set(bodyKey, body)
		c.Next()
	}
}

// FromContext returns the body stored by Chain.
func FromContext(c *gin.Context) (Body, bool) {
	v, ok := c.Get(bodyKey)
	if !ok {
		return nil, false
	}
	body, ok := v.(Body)
	return body, ok
}

// String returns the string at key, or "" when absent.
func (b Body) String(key string) string {
	s, _ := b[key].(string)
	return s
}

// NullableString returns nil for an absent or null key.
func (b Body) NullableString(key string) *string {
	s, ok := b[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func (b Body) Int64(key string) int64 {
	n, _ := ToInt64(b[key])
	return n
}
