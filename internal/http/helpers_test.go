package http

import (
	"context"
	"testing"
	"time"

	"bookreviews/internal/auth"
	"bookreviews/internal/entity"
	"bookreviews/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testEnv struct {
	router  *chi.Mux
	users   *fakeUserRepo
	books   *fakeBookRepo
	reviews *fakeReviewRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := newFakeUserRepo()
	books := newFakeBookRepo()
	reviews := newFakeReviewRepo(users)
	router := NewRouter(RouterConfig{
		Users:       users,
		Books:       books,
		Reviews:     reviews,
		JWTSecret:   testSecret,
		TokenTTL:    time.Hour,
		CORSOrigins: []string{"http://localhost:3000"},
	})
	return &testEnv{router: router, users: users, books: books, reviews: reviews}
}

// addUser seeds a user directly and returns it with a valid token.
func (env *testEnv) addUser(t *testing.T, username, email string) (entity.User, string) {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &entity.User{Username: username, Email: email, PasswordHash: hash}
	require.NoError(t, env.users.Create(context.Background(), user))
	return *user, testutil.GenerateTestToken(testSecret, user.ID)
}

func (env *testEnv) addBook(t *testing.T, title, author, genre, ownerID string) entity.Book {
	t.Helper()
	book := &entity.Book{
		Title:       title,
		Author:      author,
		Description: "A description of " + title,
		Genre:       genre,
		CreatedBy:   ownerID,
	}
	require.NoError(t, env.books.Create(context.Background(), book))
	return *book
}

func (env *testEnv) addReview(t *testing.T, bookID, userID string, rating int) entity.Review {
	t.Helper()
	review := &entity.Review{
		Rating:  rating,
		Comment: "seeded comment",
		BookID:  bookID,
		UserID:  userID,
	}
	require.NoError(t, env.reviews.Create(context.Background(), review))
	return *review
}
