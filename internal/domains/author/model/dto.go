package model

// AuthorResponse is the JSON shape of an author. bio is always present, null when unset.
type AuthorResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Bio       *string `json:"bio"`
	Birthdate string  `json:"birthdate"`
}

type AuthorListResponse struct {
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Total   int64            `json:"total"`
	Authors []AuthorResponse `json:"authors"`
}

func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		Birthdate: a.Birthdate.Format(dateLayout),
	}
}

// ToResponses never returns nil so empty lists render as [].
func ToResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, len(authors))
	for i := range authors {
		out[i] = authors[i].ToResponse()
	}
	return out
}
