// Package sqlite implements the persistence repositories on SQLite via
// database/sql and the modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Storage wraps the SQLite handle and implements every repository interface
// in the persistence package.
type Storage struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn.
func Open(dsn string) (*Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// modernc sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)
	return &Storage{db: db}, nil
}

// Close releases the database handle.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ping verifies the connection.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// WithTransaction runs fn inside a transaction, rolling back on error.
func (s *Storage) WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("sqlite: transaction failed (rollback error: %v): %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit transaction: %w", err)
	}
	return nil
}

// Migrate creates the schema when absent.
func (s *Storage) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS brand_profiles (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL,
			industry TEXT NOT NULL DEFAULT '',
			tone TEXT NOT NULL DEFAULT '',
			target_audience TEXT NOT NULL DEFAULT '',
			key_values TEXT NOT NULL DEFAULT '[]',
			sample_posts TEXT NOT NULL DEFAULT '[]',
			content_themes TEXT NOT NULL DEFAULT '[]',
			posting_frequency TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS generated_content (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			brand_profile_id TEXT,
			description TEXT NOT NULL,
			formal_caption TEXT NOT NULL,
			casual_caption TEXT NOT NULL,
			funny_caption TEXT NOT NULL,
			hashtags TEXT NOT NULL DEFAULT '[]',
			image_url TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS content_plans (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			brand_profile_id TEXT,
			plan_name TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			frequency TEXT NOT NULL DEFAULT '',
			total_posts INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'draft',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS planned_posts (
			id TEXT PRIMARY KEY,
			content_plan_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			suggested_date TEXT NOT NULL,
			suggested_time TEXT NOT NULL,
			rationale TEXT NOT NULL DEFAULT '',
			content_generated INTEGER NOT NULL DEFAULT 0,
			caption TEXT NOT NULL DEFAULT '',
			hashtags TEXT NOT NULL DEFAULT '[]',
			platforms TEXT NOT NULL DEFAULT '[]',
			image_url TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'suggested',
			order_in_plan INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS scheduled_posts (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			brand_profile_id TEXT,
			generated_content_id TEXT,
			title TEXT NOT NULL,
			caption TEXT NOT NULL DEFAULT '',
			hashtags TEXT NOT NULL DEFAULT '[]',
			platforms TEXT NOT NULL DEFAULT '[]',
			image_url TEXT NOT NULL DEFAULT '',
			scheduled_date TEXT NOT NULL,
			scheduled_time TEXT NOT NULL,
			timezone TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'draft',
			notes TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS alarms (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			alarm_datetime TEXT NOT NULL,
			scheduled_post_id TEXT,
			planned_post_id TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			sound_enabled INTEGER NOT NULL DEFAULT 1,
			notification_enabled INTEGER NOT NULL DEFAULT 1,
			notes TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_generated_content_user ON generated_content (user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_planned_posts_plan ON planned_posts (content_plan_id)`,
		`CREATE INDEX IF NOT EXISTS idx_scheduled_posts_user ON scheduled_posts (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_alarms_status ON alarms (status, alarm_datetime)`,
	}

	return s.WithTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("sqlite: migrate: %w", err)
			}
		}
		return nil
	})
}

const (
	timestampLayout = time.RFC3339
	dateLayout      = "2006-01-02"
)

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(timestampLayout, value)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("sqlite: marshal string list: %w", err)
	}
	return string(encoded), nil
}

func unmarshalStrings(encoded string) ([]string, error) {
	if encoded == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return nil, fmt.Errorf("sqlite: unmarshal string list: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

func toNullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func fromNullString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	clone := value.String
	return &clone
}
