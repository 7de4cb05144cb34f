// internal/repository/repository.go
package repository

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for duplicate keys.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres duplicate-key failure.
// Repositories use it to turn constraint backstops (role codes, supplied ids)
// into domain errors instead of leaking driver details.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
