package sqlite

import (
	"context"
	"database/sql"
	"errors"

	apperrors "todo-tracker/internal/errors"
)

// HandleStorageError converts database errors to structured app errors
func HandleStorageError(operation string, key string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(operation+" "+key, nil).WithContext("cause", err.Error())
	}
	return apperrors.NewStorageError(operation, key, err)
}

// ValidateRowsAffected checks if a database operation affected at least one row
func ValidateRowsAffected(result sql.Result, key string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleStorageError("get rows affected", key, err)
	}
	if rows == 0 {
		return apperrors.NewStorageError("write", key, errors.New("no rows affected"))
	}
	return nil
}

// ExecuteWithRowsAffected executes a query and validates that rows were affected
func ExecuteWithRowsAffected(ctx context.Context, db *sql.DB, query string, key string, args ...interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return HandleStorageError("write", key, err)
	}

	return ValidateRowsAffected(result, key)
}

// QuerySingle executes a query that returns a single row and scans it.
// A missing row is reported as a not found error.
func QuerySingle[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Scanner) (*T, error), key string, args ...interface{}) (*T, error) {
	row := db.QueryRowContext(ctx, query, args...)
	result, err := scanFunc(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("key", key)
		}
		return nil, HandleStorageError("read", key, err)
	}
	return result, nil
}
