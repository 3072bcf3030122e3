package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"bookreviews/internal/entity"
	"bookreviews/internal/httpx"
	"bookreviews/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type BookHandler struct {
	books   usecase.BookRepository
	reviews usecase.ReviewRepository
}

func NewBookHandler(books usecase.BookRepository, reviews usecase.ReviewRepository) *BookHandler {
	return &BookHandler{books: books, reviews: reviews}
}

type createBookReq struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Genre         string `json:"genre" validate:"required"`
	PublishedYear *int   `json:"publishedYear" validate:"omitempty,gte=0"`
	ISBN          string `json:"isbn"`
}

// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Security Bearer
// @Param book body createBookReq true "Book fields"
// @Success 201 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Router /api/books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, r, usecase.Validation("Invalid request body"))
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	req.Description = strings.TrimSpace(req.Description)
	req.Genre = strings.TrimSpace(req.Genre)
	req.ISBN = strings.TrimSpace(req.ISBN)

	if messages := ValidateStruct(req); len(messages) > 0 {
		Error(w, r, usecase.Validation(messages...))
		return
	}

	book := &entity.Book{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Genre:         req.Genre,
		PublishedYear: req.PublishedYear,
		ISBN:          req.ISBN,
		CreatedBy:     httpx.UserIDFrom(r),
	}
	if err := h.books.Create(r.Context(), book); err != nil {
		Error(w, r, err)
		return
	}

	httpx.JSONSuccessCreated(w, book)
}

// @Summary List books
// @Description Books newest first, optionally filtered by author and genre substrings
// @Tags books
// @Produce json
// @Param author query string false "Author filter (case-insensitive substring)"
// @Param genre query string false "Genre filter (case-insensitive substring)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} httpx.Response
// @Router /api/books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	page := usecase.ParsePage(r.URL.Query().Get("page"))
	limit := usecase.ParseLimit(r.URL.Query().Get("limit"))

	params := usecase.ListParams{
		Author: r.URL.Query().Get("author"),
		Genre:  r.URL.Query().Get("genre"),
		Limit:  limit,
		Offset: usecase.Offset(page, limit),
	}

	books, total, err := h.books.List(r.Context(), params)
	if err != nil {
		Error(w, r, err)
		return
	}

	httpx.JSONSuccessPage(w, books, usecase.NewPagination(total, page, limit))
}

type bookDetail struct {
	entity.Book
	AverageRating     float64            `json:"averageRating"`
	Reviews           []entity.Review    `json:"reviews"`
	ReviewsPagination usecase.Pagination `json:"reviewsPagination"`
}

// @Summary Get book detail
// @Description One book plus its paginated reviews and average rating
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Param page query int false "Reviews page" default(1)
// @Param limit query int false "Reviews page size" default(10)
// @Success 200 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /api/books/{id} [get]
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")
	page := usecase.ParsePage(r.URL.Query().Get("page"))
	limit := usecase.ParseLimit(r.URL.Query().Get("limit"))

	book, err := h.books.GetByID(r.Context(), bookID)
	if err != nil {
		Error(w, r, err)
		return
	}

	reviews, total, err := h.reviews.ListByBook(r.Context(), book.ID, limit, usecase.Offset(page, limit))
	if err != nil {
		Error(w, r, err)
		return
	}

	average, err := h.reviews.AverageRating(r.Context(), book.ID)
	if err != nil {
		Error(w, r, err)
		return
	}

	httpx.JSONSuccess(w, bookDetail{
		Book:              book,
		AverageRating:     average,
		Reviews:           reviews,
		ReviewsPagination: usecase.NewPagination(total, page, limit),
	})
}

// @Summary Search books
// @Description Case-insensitive substring match on title or author
// @Tags books
// @Produce json
// @Param query query string true "Search query"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} httpx.Response
// @Failure 400 {object} httpx.Response
// @Router /api/search [get]
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		Error(w, r, usecase.Validation("Please provide a search query"))
		return
	}

	page := usecase.ParsePage(r.URL.Query().Get("page"))
	limit := usecase.ParseLimit(r.URL.Query().Get("limit"))

	books, total, err := h.books.Search(r.Context(), usecase.SearchParams{
		Query:  query,
		Limit:  limit,
		Offset: usecase.Offset(page, limit),
	})
	if err != nil {
		Error(w, r, err)
		return
	}

	httpx.JSONSuccessPage(w, books, usecase.NewPagination(total, page, limit))
}
