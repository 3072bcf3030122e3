package http

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookreviews/internal/entity"
	"bookreviews/internal/usecase"
)

// In-memory repositories backing the handler tests. They mirror the store
// contract: not-found and conflict come back as tagged usecase errors, lists
// are newest first.

type fakeUserRepo struct {
	seq   int
	users map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return usecase.Conflict("Email already exists")
		}
		if existing.Username == user.Username {
			return usecase.Conflict("Username already taken")
		}
	}
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.CreatedAt = time.Now()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, usecase.NotFound("User not found")
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return entity.User{}, usecase.NotFound("User not found")
	}
	return user, nil
}

type fakeBookRepo struct {
	seq   int
	books []entity.Book
	base  time.Time
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{base: time.Now()}
}

func (f *fakeBookRepo) Create(_ context.Context, book *entity.Book) error {
	f.seq++
	book.ID = fmt.Sprintf("book-%d", f.seq)
	// Strictly increasing timestamps keep newest-first ordering deterministic.
	book.CreatedAt = f.base.Add(time.Duration(f.seq) * time.Second)
	f.books = append(f.books, *book)
	return nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, id string) (entity.Book, error) {
	for _, book := range f.books {
		if book.ID == id {
			return book, nil
		}
	}
	return entity.Book{}, usecase.NotFound("Book not found")
}

func (f *fakeBookRepo) List(_ context.Context, params usecase.ListParams) ([]entity.Book, int, error) {
	matched := []entity.Book{}
	for i := len(f.books) - 1; i >= 0; i-- {
		book := f.books[i]
		if params.Author != "" && !containsFold(book.Author, params.Author) {
			continue
		}
		if params.Genre != "" && !containsFold(book.Genre, params.Genre) {
			continue
		}
		matched = append(matched, book)
	}
	return window(matched, params.Offset, params.Limit), len(matched), nil
}

func (f *fakeBookRepo) Search(_ context.Context, params usecase.SearchParams) ([]entity.Book, int, error) {
	matched := []entity.Book{}
	for i := len(f.books) - 1; i >= 0; i-- {
		book := f.books[i]
		if containsFold(book.Title, params.Query) || containsFold(book.Author, params.Query) {
			matched = append(matched, book)
		}
	}
	return window(matched, params.Offset, params.Limit), len(matched), nil
}

type fakeReviewRepo struct {
	seq     int
	reviews []entity.Review
	users   *fakeUserRepo
	base    time.Time
}

func newFakeReviewRepo(users *fakeUserRepo) *fakeReviewRepo {
	return &fakeReviewRepo{users: users, base: time.Now()}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	for _, existing := range f.reviews {
		if existing.BookID == review.BookID && existing.UserID == review.UserID {
			return usecase.Conflict("You have already reviewed this book")
		}
	}
	f.seq++
	review.ID = fmt.Sprintf("review-%d", f.seq)
	review.CreatedAt = f.base.Add(time.Duration(f.seq) * time.Second)
	review.UpdatedAt = review.CreatedAt
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (entity.Review, error) {
	for _, review := range f.reviews {
		if review.ID == id {
			return f.joined(review), nil
		}
	}
	return entity.Review{}, usecase.NotFound("Review not found")
}

func (f *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	for i, existing := range f.reviews {
		if existing.ID == review.ID {
			review.UpdatedAt = time.Now()
			f.reviews[i].Rating = review.Rating
			f.reviews[i].Comment = review.Comment
			f.reviews[i].UpdatedAt = review.UpdatedAt
			return nil
		}
	}
	return usecase.NotFound("Review not found")
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	for i, existing := range f.reviews {
		if existing.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return usecase.NotFound("Review not found")
}

func (f *fakeReviewRepo) ListByBook(_ context.Context, bookID string, limit, offset int) ([]entity.Review, int, error) {
	matched := []entity.Review{}
	for i := len(f.reviews) - 1; i >= 0; i-- {
		if f.reviews[i].BookID == bookID {
			matched = append(matched, f.joined(f.reviews[i]))
		}
	}
	return window(matched, offset, limit), len(matched), nil
}

func (f *fakeReviewRepo) AverageRating(_ context.Context, bookID string) (float64, error) {
	sum, count := 0, 0
	for _, review := range f.reviews {
		if review.BookID == bookID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

func (f *fakeReviewRepo) joined(review entity.Review) entity.Review {
	review.User = entity.UserSummary{ID: review.UserID}
	if user, ok := f.users.users[review.UserID]; ok {
		review.User.Username = user.Username
	}
	return review
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
