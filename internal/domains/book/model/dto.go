package model

type BookResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	PublishedDate string  `json:"published_date"`
	AuthorID      int64   `json:"author_id"`
}

type BookListResponse struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int64          `json:"total"`
	Books []BookResponse `json:"books"`
}

func (b *Book) ToResponse() BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		PublishedDate: b.PublishedDate.Format(dateLayout),
		AuthorID:      b.AuthorID,
	}
}

// ToResponses never returns nil so empty lists render as [].
func ToResponses(books []Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i := range books {
		out[i] = books[i].ToResponse()
	}
	return out
}
