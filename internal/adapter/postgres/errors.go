package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// SQLSTATE classes the marketplace schema can raise.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// constraintErrors maps named constraints to the domain error they stand
// for. They take precedence over the generic SQLSTATE mapping.
var constraintErrors = map[string]error{
	// CHECK (buyer_id <> seller_id) on orders.
	"orders_check": domain.ErrForbidden,
}

var codeErrors = map[string]error{
	codeUniqueViolation:     domain.ErrAlreadyExists,
	codeForeignKeyViolation: domain.ErrNotFound,
	codeCheckViolation:      domain.ErrValidation,
}

// IsForeignKeyViolation reports whether err is a 23503 raised by a write
// that other rows still reference or that references a missing row.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// MapError converts pgx errors into domain sentinels, prefixed with the
// entity and, when known, its id. Context errors keep their identity.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != uuid.Nil {
		subject = entity + " " + id.String()
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", subject, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%s: %s: %w", subject, pgErr.ConstraintName, mapped)
		}
		if mapped, ok := codeErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s: %s: %w", subject, pgErr.ConstraintName, mapped)
		}
	}

	return fmt.Errorf("%s: %w", subject, err)
}
