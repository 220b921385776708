package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

// PostgreSQL error codes mapped onto domain sentinels.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"

	// Code classes meaning the server is unreachable or refusing work.
	classConnectionException  = "08"
	classInsufficientResource = "53"
	classOperatorIntervention = "57P"
)

// MapError converts pgx/pgconn errors to domain errors.
// ref identifies the row in the message, e.g. "listing 3f2a...".
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// Connection failures and server-side unavailability wrap ErrUpstream.
func MapError(err error, entity string, ref any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, ref, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s %v: %w", entity, ref, domain.ErrValidation)
		}
	}

	if Unavailable(err) {
		return fmt.Errorf("%s %v: %w: %w", entity, ref, domain.ErrUpstream, err)
	}

	return fmt.Errorf("%s %v: %w", entity, ref, err)
}

// Unavailable reports whether err means the database could not be reached
// or refused to serve the statement, as opposed to rejecting it.
func Unavailable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, classConnectionException) ||
			strings.HasPrefix(pgErr.Code, classInsufficientResource) ||
			strings.HasPrefix(pgErr.Code, classOperatorIntervention)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.Timeout(err)
}
