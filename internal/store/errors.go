package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when no record exists for the requested key
var ErrNotFound = errors.New("record not found")

// isNoRows reports whether an error is the driver's empty-result sentinel
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
