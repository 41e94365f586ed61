package store

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicateEmail is returned when an insert violates the users.email
	// unique constraint.
	ErrDuplicateEmail = errors.New("store: email already registered")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translateUserInsertErr maps driver errors from a user insert to the
// store's sentinels. The unique index on email is the only unique
// constraint on users, so any unique violation is a duplicate email.
func translateUserInsertErr(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrDuplicateEmail
	}
	return err
}

func translateLookupErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// failure, e.g. a quiz save referencing a user id that does not exist.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}
