package dbx

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgError extracts the server-side PostgreSQL error from err's chain.
func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsUniqueViolation reports whether err was caused by a unique constraint,
// e.g. inserting a second user with an existing name or email.
func IsUniqueViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgerrcode.UniqueViolation
}

// IsInvalidValue reports whether the server rejected an input value for its
// column type, which is how an unknown enum label is reported.
func IsInvalidValue(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgerrcode.InvalidTextRepresentation
}

// IsCheckViolation reports whether a CHECK constraint rejected the row.
func IsCheckViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgerrcode.CheckViolation
}

// ConstraintName returns the name of the violated constraint, or "" when err
// is not a PostgreSQL error or carries no constraint.
func ConstraintName(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}
