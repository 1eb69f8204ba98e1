package model

import (
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/validation"
)

// Book is one row of the books table.
type Book struct {
	ID            int64     `db:"id"`
	Title         string    `db:"title"`
	Description   *string   `db:"description"`
	PublishedDate time.Time `db:"published_date"`
	AuthorID      int64     `db:"author_id"`
}

// BookInput carries the writable fields of a book. Update replaces all of
// them, so a nil Description clears the stored value.
type BookInput struct {
	Title         string
	Description   *string
	PublishedDate time.Time
	AuthorID      int64
}

const (
	dateLayout = "2006-01-02"

	InvalidAuthorMessage = "Invalid author ID"
)

// Fields are the body rules for POST /books and PUT /books/:id. authorExists
// backs the author_id check with a database lookup.
func Fields(authorExists validation.ExistsFunc) []validation.Field {
	return []validation.Field{
		{
			Name:    "title",
			Missing: "Title is required",
			Rules: []ozzo.Rule{
				ozzo.Required.Error("Title is required"),
				validation.String("Title must be a string"),
				validation.NotBlank("Title must not be empty"),
				validation.NoNullByte("Title must not contain null characters"),
			},
		},
		{
			Name:     "description",
			Optional: true,
			Rules: []ozzo.Rule{
				validation.NullableString("Description must be a string"),
				validation.NoNullByte("Description must not contain null characters"),
			},
		},
		{
			Name:    "published_date",
			Missing: "Published date is required",
			Rules: []ozzo.Rule{
				ozzo.Required.Error("Published date is required"),
				validation.String("Published date must be a valid date (YYYY-MM-DD)"),
				validation.Date("Published date must be a valid date (YYYY-MM-DD)"),
			},
		},
		{
			Name:    "author_id",
			Missing: InvalidAuthorMessage,
			Rules: []ozzo.Rule{
				ozzo.Required.Error(InvalidAuthorMessage),
				validation.Integer(InvalidAuthorMessage),
				validation.Exists(authorExists, InvalidAuthorMessage),
			},
		},
	}
}

// InputFromBody builds a BookInput from a body that already passed Fields.
func InputFromBody(body validation.Body) (BookInput, error) {
	published, err := time.Parse(dateLayout, body.String("published_date"))
	if err != nil {
		return BookInput{}, err
	}

	return BookInput{
		Title:         body.String("title"),
		Description:   body.NullableString("description"),
		PublishedDate: published,
		AuthorID:      body.Int64("author_id"),
	}, nil
}
