package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/content-assistant/internal/persistence"
)

// mapSQLiteError translates driver errors into persistence sentinels. The
// modernc driver surfaces constraint failures only through the message text.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}

	message := err.Error()
	switch {
	case strings.Contains(message, "UNIQUE constraint failed"),
		strings.Contains(message, "FOREIGN KEY constraint failed"),
		strings.Contains(message, "CHECK constraint failed"),
		strings.Contains(message, "NOT NULL constraint failed"):
		return persistence.ErrConstraintViolation
	default:
		return fmt.Errorf("sqlite: %w", err)
	}
}

// requireRowAffected converts a zero-row write into ErrNotFound.
func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: rows affected: %w", err)
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}
