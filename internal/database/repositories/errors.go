package repositories

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Repository errors surfaced to the API layer
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateSKU      = errors.New("sku already exists")
	ErrDuplicateName     = errors.New("name already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// isUniqueViolation reports whether err comes from a unique-constraint
// failure, for either supported driver. The constraint itself is what closes
// the concurrent check-then-insert race, so callers rely on this rather than
// a prior existence check.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
