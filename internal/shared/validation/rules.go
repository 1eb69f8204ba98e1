package validation

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

// ExistsFunc reports whether a referenced row exists.
type ExistsFunc func(ctx context.Context, id int64) (bool, error)

// String requires a JSON string. json.Number is rejected even though it is string-kinded.
func String(message string) ozzo.Rule {
	return ozzo.By(func(value any) error {
		if _, ok := value.(string); !ok {
			return ozzo.NewError("validation_not_string", message)
		}
		return nil
	})
}

// NullableString accepts a JSON string or null.
func NullableString(message string) ozzo.Rule {
	return ozzo.By(func(value any) error {
		switch value.(type) {
		case nil, string:
			return nil
		default:
			return ozzo.NewError("validation_not_string", message)
		}
	})
}

// NotBlank rejects strings that are empty after trimming.
func NotBlank(message string) ozzo.Rule {
	return ozzo.By(func(value any) error {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return ozzo.NewError("validation_blank", message)
		}
		return nil
	})
}

// NoNullByte rejects strings holding U+0000, which Postgres text cannot store.
func NoNullByte(message string) ozzo.Rule {
	return ozzo.By(func(value any) error {
		if s, ok := value.(string); ok && strings.ContainsRune(s, 0) {
			return ozzo.NewError("validation_null_byte", message)
		}
		return nil
	})
}

// Date requires a YYYY-MM-DD calendar date.
func Date(message string) ozzo.Rule {
	return ozzo.Date(dateLayout).Error(message)
}

// Integer accepts a JSON integer or a string holding one.
func Integer(message string) ozzo.Rule {
	return ozzo.By(func(value any) error {
		if _, ok := ToInt64(value); !ok {
			return ozzo.NewError("validation_not_integer", message)
		}
		return nil
	})
}

// Exists looks the id up with fn. A lookup failure is an internal error,
// not a field error.
func Exists(fn ExistsFunc, message string) ozzo.Rule {
	return ozzo.WithContext(func(ctx context.Context, value any) error {
		id, ok := ToInt64(value)
		if !ok {
			return ozzo.NewError("validation_not_integer", message)
		}

		found, err := fn(ctx, id)
		if err != nil {
			return ozzo.NewInternalError(err)
		}
		if !found {
			return ozzo.NewError("validation_not_found", message)
		}
		return nil
	})
}

// ToInt64 converts a decoded JSON value to an int64.
func ToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 64)
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
