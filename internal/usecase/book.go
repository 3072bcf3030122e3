package usecase

import (
	"context"

	"bookreviews/internal/entity"
)

// ListParams carries the optional catalog filters. Author and Genre are
// case-insensitive substring matches, ANDed together when both are set.
type ListParams struct {
	Author string
	Genre  string
	Limit  int
	Offset int
}

type SearchParams struct {
	Query  string
	Limit  int
	Offset int
}

type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	GetByID(ctx context.Context, id string) (entity.Book, error)
	// List returns one window of books, newest first, plus the total match count.
	List(ctx context.Context, params ListParams) ([]entity.Book, int, error)
	// Search matches books whose title or author contains the query.
	Search(ctx context.Context, params SearchParams) ([]entity.Book, int, error)
}
