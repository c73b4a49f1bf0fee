package repository

import (
	"errors"

	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a postgres unique constraint
// violation, optionally scoped to a named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error

	if !errors.As(err, &pqErr) {
		return false
	}

	if pqErr.Code != uniqueViolationCode {
		return false
	}

	return constraint == "" || pqErr.Constraint == constraint
}
