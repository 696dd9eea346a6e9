package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/influencer-marketplace/backend/internal/apperr"
)

// translate maps storage errors to the workflow taxonomy at the repository
// boundary: missing rows become NotFound with the given message, anything
// else is surfaced as an opaque Unavailable.
func translate(err error, notFoundFormat string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(notFoundFormat, args...)
	}
	return apperr.Unavailable(err)
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
