package store

import (
	"context"
	"errors"

	"bookreviews/internal/entity"
	"bookreviews/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

func (r *UserPG) Create(ctx context.Context, user *entity.User) error {
	const query = `
	INSERT INTO users (id, username, email, password_hash)
	VALUES (gen_random_uuid(), $1, $2, $3)
	RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if constraint, ok := uniqueViolation(err); ok {
		if constraint == "users_username_key" {
			return usecase.Conflict("Username already taken")
		}
		return usecase.Conflict("Email already exists")
	}
	return err
}

func (r *UserPG) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	const query = `
	SELECT id, username, email, password_hash, created_at
	FROM users
	WHERE email = $1
	LIMIT 1
	`
	var user entity.User
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.NotFound("User not found")
		}
		return entity.User{}, err
	}
	return user, nil
}

func (r *UserPG) GetByID(ctx context.Context, id string) (entity.User, error) {
	if !validID(id) {
		return entity.User{}, usecase.NotFound("User not found")
	}
	const query = `
	SELECT id, username, email, password_hash, created_at
	FROM users
	WHERE id = $1
	LIMIT 1
	`
	var user entity.User
	err := r.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.NotFound("User not found")
		}
		return entity.User{}, err
	}
	return user, nil
}
