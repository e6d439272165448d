package testfixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/content-assistant/internal/persistence/sqlite"
)

// NewSQLiteStorage opens a temporary migrated SQLite storage for
// integration-style persistence tests. Cleanup is registered with tb.
func NewSQLiteStorage(tb testing.TB) *sqlite.Storage {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "assistant.db")
	storage, err := sqlite.Open("file:" + path + "?_foreign_keys=on")
	if err != nil {
		tb.Fatalf("open sqlite storage: %v", err)
	}
	tb.Cleanup(func() {
		if err := storage.Close(); err != nil {
			tb.Errorf("close sqlite storage: %v", err)
		}
	})

	if err := storage.Migrate(context.Background()); err != nil {
		tb.Fatalf("migrate sqlite storage: %v", err)
	}
	return storage
}
