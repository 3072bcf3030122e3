package usecase

import (
	"context"

	"bookreviews/internal/entity"
)

type ReviewRepository interface {
	// Create persists a new review. A uniqueness violation on the
	// (book, user) pair from the store is the authoritative conflict
	// signal and comes back as a Conflict error.
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id string) error
	// ListByBook returns one window of a book's reviews, newest first,
	// with the reviewer's username joined, plus the total count.
	ListByBook(ctx context.Context, bookID string, limit, offset int) ([]entity.Review, int, error)
	// AverageRating is recomputed from current rows on every call;
	// a book with no reviews averages to 0.
	AverageRating(ctx context.Context, bookID string) (float64, error)
}
