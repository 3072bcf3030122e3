package store

import (
	"context"
	"errors"

	"bookreviews/internal/entity"
	"bookreviews/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) Create(ctx context.Context, book *entity.Book) error {
	const query = `
	INSERT INTO books (id, title, author, description, genre, published_year, isbn, created_by)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		book.Title, book.Author, book.Description, book.Genre,
		book.PublishedYear, book.ISBN, book.CreatedBy,
	).Scan(&book.ID, &book.CreatedAt)
}

func (r *BookPG) GetByID(ctx context.Context, id string) (entity.Book, error) {
	if !validID(id) {
		return entity.Book{}, usecase.NotFound("Book not found")
	}
	const query = `
	SELECT id, title, author, description, genre, published_year, isbn, created_by, created_at
	FROM books
	WHERE id = $1
	LIMIT 1
	`
	var book entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&book.ID, &book.Title, &book.Author, &book.Description, &book.Genre,
		&book.PublishedYear, &book.ISBN, &book.CreatedBy, &book.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.NotFound("Book not found")
		}
		return entity.Book{}, err
	}
	return book, nil
}

func (r *BookPG) List(ctx context.Context, params usecase.ListParams) ([]entity.Book, int, error) {
	const query = `
	SELECT id, title, author, description, genre, published_year, isbn, created_by, created_at
	FROM books
	WHERE ($1 = '' OR author ILIKE '%' || $1 || '%')
	AND ($2 = '' OR genre ILIKE '%' || $2 || '%')
	ORDER BY created_at DESC
	LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, params.Author, params.Genre, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}
	books, err := scanBooks(rows)
	if err != nil {
		return nil, 0, err
	}

	const countQuery = `
	SELECT COUNT(*)
	FROM books
	WHERE ($1 = '' OR author ILIKE '%' || $1 || '%')
	AND ($2 = '' OR genre ILIKE '%' || $2 || '%')
	`
	var total int
	if err := r.db.QueryRow(ctx, countQuery, params.Author, params.Genre).Scan(&total); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookPG) Search(ctx context.Context, params usecase.SearchParams) ([]entity.Book, int, error) {
	const query = `
	SELECT id, title, author, description, genre, published_year, isbn, created_by, created_at
	FROM books
	WHERE title ILIKE '%' || $1 || '%' OR author ILIKE '%' || $1 || '%'
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, params.Query, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}
	books, err := scanBooks(rows)
	if err != nil {
		return nil, 0, err
	}

	const countQuery = `
	SELECT COUNT(*)
	FROM books
	WHERE title ILIKE '%' || $1 || '%' OR author ILIKE '%' || $1 || '%'
	`
	var total int
	if err := r.db.QueryRow(ctx, countQuery, params.Query).Scan(&total); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func scanBooks(rows pgx.Rows) ([]entity.Book, error) {
	defer rows.Close()

	books := []entity.Book{}
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Description, &b.Genre,
			&b.PublishedYear, &b.ISBN, &b.CreatedBy, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}
