package model

import (
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/validation"
)

// Author is one row of the authors table.
type Author struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Bio       *string   `db:"bio"`
	Birthdate time.Time `db:"birthdate"`
}

// AuthorInput carries the writable fields of an author. Update replaces all
// of them, so a nil Bio clears the stored value.
type AuthorInput struct {
	Name      string
	Bio       *string
	Birthdate time.Time
}

const dateLayout = "2006-01-02"

// Fields are the body rules for POST /authors and PUT /authors/:id.
func Fields() []validation.Field {
	return []validation.Field{
		{
			Name:    "name",
			Missing: "Name is required",
			Rules: []ozzo.Rule{
				ozzo.Required.Error("Name is required"),
				validation.String("Name must be a string"),
				validation.NotBlank("Name must not be empty"),
				validation.NoNullByte("Name must not contain null characters"),
			},
		},
		{
			Name:     "bio",
			Optional: true,
			Rules: []ozzo.Rule{
				validation.NullableString("Bio must be a string"),
				validation.NoNullByte("Bio must not contain null characters"),
			},
		},
		{
			Name:    "birthdate",
			Missing: "Birthdate is required",
			Rules: []ozzo.Rule{
				ozzo.Required.Error("Birthdate is required"),
				validation.String("Birthdate must be a valid date (YYYY-MM-DD)"),
				validation.Date("Birthdate must be a valid date (YYYY-MM-DD)"),
			},
		},
	}
}

// InputFromBody builds an AuthorInput from a body that already passed Fields.
func InputFromBody(body validation.Body) (AuthorInput, error) {
	birthdate, err := time.Parse(dateLayout, body.String("birthdate"))
	if err != nil {
		return AuthorInput{}, err
	}

	return AuthorInput{
		Name:      body.String("name"),
		Bio:       body.NullableString("bio"),
		Birthdate: birthdate,
	}, nil
}
