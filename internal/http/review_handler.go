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

type ReviewHandler struct {
	reviews usecase.ReviewRepository
	books   usecase.BookRepository
	users   usecase.UserRepository
}

func NewReviewHandler(reviews usecase.ReviewRepository, books usecase.BookRepository, users usecase.UserRepository) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, books: books, users: users}
}

type createReviewReq struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

// @Summary Review a book
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Book id"
// @Param review body createReviewReq true "Review fields"
// @Success 201 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Failure 409 {object} httpx.Response
// @Router /api/books/{id}/reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, r, usecase.Validation("Invalid request body"))
		return
	}
	req.Comment = strings.TrimSpace(req.Comment)

	if messages := ValidateStruct(req); len(messages) > 0 {
		Error(w, r, usecase.Validation(messages...))
		return
	}

	book, err := h.books.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, err)
		return
	}

	userID := httpx.UserIDFrom(r)
	review := &entity.Review{
		Rating:  req.Rating,
		Comment: req.Comment,
		BookID:  book.ID,
		UserID:  userID,
	}
	// No prior-review lookup here: the store's (book, user) uniqueness
	// constraint decides, even under concurrent creates.
	if err := h.reviews.Create(r.Context(), review); err != nil {
		Error(w, r, err)
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		Error(w, r, err)
		return
	}
	review.User = entity.UserSummary{ID: user.ID, Username: user.Username}

	httpx.JSONSuccessCreated(w, review)
}

type updateReviewReq struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// @Summary Update own review
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Review id"
// @Param review body updateReviewReq true "Fields to change"
// @Success 200 {object} httpx.Response
// @Failure 403 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /api/reviews/{id} [put]
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, r, usecase.Validation("Invalid request body"))
		return
	}

	review, err := h.reviews.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, err)
		return
	}
	if review.UserID != httpx.UserIDFrom(r) {
		Error(w, r, usecase.Forbidden("Not authorized to update this review"))
		return
	}

	// Omitted fields keep their stored values.
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			Error(w, r, usecase.Validation("rating must be between 1 and 5"))
			return
		}
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		comment := strings.TrimSpace(*req.Comment)
		if comment == "" {
			Error(w, r, usecase.Validation("comment is required"))
			return
		}
		review.Comment = comment
	}

	if err := h.reviews.Update(r.Context(), &review); err != nil {
		Error(w, r, err)
		return
	}

	httpx.JSONSuccess(w, review)
}

// @Summary Delete own review
// @Tags reviews
// @Produce json
// @Security Bearer
// @Param id path string true "Review id"
// @Success 200 {object} httpx.Response
// @Failure 403 {object} httpx.Response
// @Failure 404 {object} httpx.Response
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviews.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, err)
		return
	}
	if review.UserID != httpx.UserIDFrom(r) {
		Error(w, r, usecase.Forbidden("Not authorized to delete this review"))
		return
	}

	if err := h.reviews.Delete(r.Context(), review.ID); err != nil {
		Error(w, r, err)
		return
	}

	httpx.JSONSuccessMessage(w, "Review removed")
}
