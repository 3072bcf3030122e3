package store

import (
	"context"
	"errors"

	"bookreviews/internal/entity"
	"bookreviews/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewPG struct {
	db *pgxpool.Pool
}

func NewReviewPG(db *pgxpool.Pool) *ReviewPG {
	return &ReviewPG{db: db}
}

func (r *ReviewPG) Create(ctx context.Context, review *entity.Review) error {
	const query = `
	INSERT INTO reviews (id, rating, comment, book_id, user_id)
	VALUES (gen_random_uuid(), $1, $2, $3, $4)
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, review.Rating, review.Comment, review.BookID, review.UserID).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if _, ok := uniqueViolation(err); ok {
		// The (book_id, user_id) unique constraint is the authoritative
		// one-review-per-user-per-book signal under concurrent creates.
		return usecase.Conflict("You have already reviewed this book")
	}
	return err
}

func (r *ReviewPG) GetByID(ctx context.Context, id string) (entity.Review, error) {
	if !validID(id) {
		return entity.Review{}, usecase.NotFound("Review not found")
	}
	const query = `
	SELECT r.id, r.rating, r.comment, r.book_id, r.user_id, r.created_at, r.updated_at, u.username
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	WHERE r.id = $1
	LIMIT 1
	`
	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID, &review.Rating, &review.Comment, &review.BookID, &review.UserID,
		&review.CreatedAt, &review.UpdatedAt, &review.User.Username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Review{}, usecase.NotFound("Review not found")
		}
		return entity.Review{}, err
	}
	review.User.ID = review.UserID
	return review, nil
}

func (r *ReviewPG) Update(ctx context.Context, review *entity.Review) error {
	const query = `
	UPDATE reviews
	SET rating = $2, comment = $3, updated_at = now()
	WHERE id = $1
	RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, review.ID, review.Rating, review.Comment).
		Scan(&review.UpdatedAt)
}

func (r *ReviewPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.NotFound("Review not found")
	}
	return nil
}

func (r *ReviewPG) ListByBook(ctx context.Context, bookID string, limit, offset int) ([]entity.Review, int, error) {
	const query = `
	SELECT r.id, r.rating, r.comment, r.book_id, r.user_id, r.created_at, r.updated_at, u.username
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	WHERE r.book_id = $1
	ORDER BY r.created_at DESC
	LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, bookID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews := []entity.Review{}
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(
			&rv.ID, &rv.Rating, &rv.Comment, &rv.BookID, &rv.UserID,
			&rv.CreatedAt, &rv.UpdatedAt, &rv.User.Username,
		); err != nil {
			return nil, 0, err
		}
		rv.User.ID = rv.UserID
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE book_id = $1`, bookID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewPG) AverageRating(ctx context.Context, bookID string) (float64, error) {
	var average float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE book_id = $1`, bookID,
	).Scan(&average)
	if err != nil {
		return 0, err
	}
	return average, nil
}
