package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// IsForeignKeyViolation reports whether err is a Postgres foreign-key
// constraint failure, e.g. an insert referencing a missing parent row.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure, e.g. the loser of a concurrent insert race on a unique column.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsConstraintViolation reports whether err is any Postgres integrity
// constraint failure worth distinguishing from a generic store error.
func IsConstraintViolation(err error) bool {
	return IsForeignKeyViolation(err) || IsUniqueViolation(err)
}
