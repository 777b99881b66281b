package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Common database error types that can be used by consumers of this package.
var (
	// ErrRecordNotFound is returned when a query doesn't find any matching records
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidData is returned when stored data cannot be decoded
	ErrInvalidData = errors.New("invalid data")

	// ErrUndefinedTable is returned when the configured song table does not exist
	ErrUndefinedTable = errors.New("undefined table")
)

// undefinedTableCode is the SQLSTATE for "relation does not exist".
const undefinedTableCode = "42P01"

// TranslateError converts GORM and driver errors into the sentinels above.
// Errors that match none of them are returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrInvalidData):
		return ErrInvalidData
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode {
		return ErrUndefinedTable
	}

	return err
}
