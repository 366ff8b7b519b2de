package errors

// Postgres error classification for the read-only catalog source

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the catalog loader can hit
const (
	pgErrInvalidTextRepresentation = "22P02"
	pgErrUndefinedTable            = "42P01"
	pgErrUndefinedColumn           = "42703"
	pgErrInsufficientPrivilege     = "42501"

	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrQueryCanceled        = "57014"
	pgErrAdminShutdown        = "57P01"
	pgErrCannotConnectNow     = "57P03"
	pgErrTooManyConnections   = "53300"
)

// ExtractPgError returns the *pgconn.PgError at the root of err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsUndefinedTable reports a missing relation, e.g. the movies table was never created
func IsUndefinedTable(err error) bool { return IsSQLState(err, pgErrUndefinedTable) }

// DBErrorCode maps a Postgres error to an ErrorCode; ok is false for non-Postgres errors
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgErrInvalidTextRepresentation:
		return ErrorCodeInvalidArgument, true
	case pgErrUndefinedTable, pgErrUndefinedColumn, pgErrInsufficientPrivilege:
		// schema not what the loader expects; nothing a retry fixes
		return ErrorCodeDB, true
	case pgErrCannotConnectNow, pgErrAdminShutdown, pgErrTooManyConnections, pgErrQueryCanceled:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its mapped code; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	if stderrs.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrorCodeUnavailable, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// IsRetryable reports transient failures worth another attempt.
// Local cancellation is never retryable.
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	root := Root(err)
	var pgErr *pgconn.PgError
	if stderrs.As(root, &pgErr) {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrCannotConnectNow,
			pgErrAdminShutdown, pgErrTooManyConnections:
			return true
		}
		return false
	}
	s := strings.ToLower(root.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "connection reset by peer") ||
		strings.Contains(s, "the database system is starting up")
}
