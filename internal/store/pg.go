package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation reports whether err is a Postgres duplicate-key error
// (SQLSTATE 23505). The violated constraint name tells us which rule fired.
func uniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// validID reports whether id parses as a UUID. Malformed ids are treated the
// same as absent rows, so callers can map them to not-found without a query.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
