package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation checks if the error is a PostgreSQL unique constraint violation (code 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// IsNoRows checks if the error is pgx's no-rows sentinel. Repositories use it
// to distinguish an absent row from a storage failure.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
