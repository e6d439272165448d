package sqlite_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/example/content-assistant/internal/persistence"
	"github.com/example/content-assistant/internal/testfixtures"
)

func TestGeneratedContentRepository(t *testing.T) {
	ctx := context.Background()
	storage := testfixtures.NewSQLiteStorage(t)

	t.Run("captions and hashtags round trip", func(t *testing.T) {
		content := testfixtures.GeneratedContent("user-1")
		content.Hashtags = []string{"#Nike", "#ProductLaunch", "#NewRelease"}
		if err := storage.CreateGeneratedContent(ctx, content); err != nil {
			t.Fatalf("CreateGeneratedContent returned error: %v", err)
		}

		got, err := storage.GetGeneratedContent(ctx, content.ID)
		if err != nil {
			t.Fatalf("GetGeneratedContent returned error: %v", err)
		}
		if got.FormalCaption != content.FormalCaption ||
			got.CasualCaption != content.CasualCaption ||
			got.FunnyCaption != content.FunnyCaption {
			t.Fatalf("captions diverged: %+v", got)
		}
		if !reflect.DeepEqual(got.Hashtags, content.Hashtags) {
			t.Fatalf("expected hashtags %v, got %v", content.Hashtags, got.Hashtags)
		}
		if got.BrandProfileID != nil {
			t.Fatalf("expected nil brand reference, got %v", *got.BrandProfileID)
		}
	})

	t.Run("history is newest first and honors the limit", func(t *testing.T) {
		base := testfixtures.ReferenceTime()
		var ids []string
		for i := 0; i < 3; i++ {
			content := testfixtures.GeneratedContent("user-2")
			content.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			if err := storage.CreateGeneratedContent(ctx, content); err != nil {
				t.Fatal(err)
			}
			ids = append(ids, content.ID)
		}

		items, err := storage.ListGeneratedContent(ctx, "user-2", 0)
		if err != nil {
			t.Fatalf("ListGeneratedContent returned error: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
		if items[0].ID != ids[2] || items[2].ID != ids[0] {
			t.Fatalf("expected newest first, got %s .. %s", items[0].ID, items[2].ID)
		}

		limited, err := storage.ListGeneratedContent(ctx, "user-2", 2)
		if err != nil {
			t.Fatal(err)
		}
		if len(limited) != 2 || limited[0].ID != ids[2] {
			t.Fatalf("expected the two newest items, got %v", limited)
		}
	})

	t.Run("delete and missing rows map to ErrNotFound", func(t *testing.T) {
		content := testfixtures.GeneratedContent("user-3")
		if err := storage.CreateGeneratedContent(ctx, content); err != nil {
			t.Fatal(err)
		}
		if err := storage.DeleteGeneratedContent(ctx, content.ID); err != nil {
			t.Fatalf("DeleteGeneratedContent returned error: %v", err)
		}
		if _, err := storage.GetGeneratedContent(ctx, content.ID); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
		if err := storage.DeleteGeneratedContent(ctx, content.ID); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for repeated delete, got %v", err)
		}
	})
}
