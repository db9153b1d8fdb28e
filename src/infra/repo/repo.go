// Package repo contains PostgreSQL implementations of the repository
// ports defined in src/core/ports.
//
// Genre and read-book-id sets are persisted as comma-joined strings; the
// codec in codec.go is the only place that knows about that format.
// Infrastructure failures are surfaced as domain dependency errors so
// callers can tell them apart from validation and not-found outcomes.
package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"bookrec/src/core/domain"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// wrapErr classifies a raw pgx error. Domain errors pass through
// untouched; anything else becomes a dependency error.
func wrapErr(op string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewDependencyError(op, err)
}
