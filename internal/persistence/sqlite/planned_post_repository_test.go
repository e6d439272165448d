package sqlite_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/content-assistant/internal/persistence"
	"github.com/example/content-assistant/internal/testfixtures"
)

func TestPlannedPostRepository(t *testing.T) {
	ctx := context.Background()
	storage := testfixtures.NewSQLiteStorage(t)

	t.Run("round trips a post with generated content", func(t *testing.T) {
		post := testfixtures.PlannedPost("user-1", "plan-a", 0)
		post.Caption = "Big news! Check out what we just dropped"
		post.Hashtags = []string{"#Coffee", "#Roastery"}
		post.ContentGenerated = true
		post.Status = persistence.PlannedPostStatusGenerated
		if err := storage.CreatePlannedPost(ctx, post); err != nil {
			t.Fatalf("CreatePlannedPost returned error: %v", err)
		}

		got, err := storage.GetPlannedPost(ctx, post.ID)
		if err != nil {
			t.Fatalf("GetPlannedPost returned error: %v", err)
		}
		if got.Title != post.Title || got.Rationale != post.Rationale || got.SuggestedTime != post.SuggestedTime {
			t.Fatalf("scalar columns diverged: %+v", got)
		}
		if !got.ContentGenerated || got.Caption != post.Caption {
			t.Fatalf("expected generated content persisted, got %+v", got)
		}
		if !reflect.DeepEqual(got.Hashtags, post.Hashtags) {
			t.Fatalf("expected hashtags %v, got %v", post.Hashtags, got.Hashtags)
		}
		if got.SuggestedDate.Format("2006-01-02") != post.SuggestedDate.Format("2006-01-02") {
			t.Fatalf("expected suggested date %s, got %s", post.SuggestedDate, got.SuggestedDate)
		}
	})

	t.Run("plan listing follows plan order", func(t *testing.T) {
		second := testfixtures.PlannedPost("user-2", "plan-b", 1)
		first := testfixtures.PlannedPost("user-2", "plan-b", 0)
		for _, post := range []persistence.PlannedPost{second, first} {
			if err := storage.CreatePlannedPost(ctx, post); err != nil {
				t.Fatal(err)
			}
		}

		posts, err := storage.ListPlannedPostsForPlan(ctx, "plan-b")
		if err != nil {
			t.Fatalf("ListPlannedPostsForPlan returned error: %v", err)
		}
		if len(posts) != 2 || posts[0].ID != first.ID || posts[1].ID != second.ID {
			t.Fatalf("expected plan order, got %v", posts)
		}
	})

	t.Run("user listing spans plans", func(t *testing.T) {
		a := testfixtures.PlannedPost("user-3", "plan-c", 0)
		b := testfixtures.PlannedPost("user-3", "plan-d", 0)
		for _, post := range []persistence.PlannedPost{a, b} {
			if err := storage.CreatePlannedPost(ctx, post); err != nil {
				t.Fatal(err)
			}
		}

		posts, err := storage.ListPlannedPostsForUser(ctx, "user-3")
		if err != nil {
			t.Fatalf("ListPlannedPostsForUser returned error: %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("expected 2 posts across plans, got %d", len(posts))
		}
	})

	t.Run("plan-wide delete removes only that plan's posts", func(t *testing.T) {
		doomed := testfixtures.PlannedPost("user-4", "plan-e", 0)
		kept := testfixtures.PlannedPost("user-4", "plan-f", 0)
		for _, post := range []persistence.PlannedPost{doomed, kept} {
			if err := storage.CreatePlannedPost(ctx, post); err != nil {
				t.Fatal(err)
			}
		}

		if err := storage.DeletePlannedPostsForPlan(ctx, "plan-e"); err != nil {
			t.Fatalf("DeletePlannedPostsForPlan returned error: %v", err)
		}
		if _, err := storage.GetPlannedPost(ctx, doomed.ID); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected deleted post gone, got %v", err)
		}
		if _, err := storage.GetPlannedPost(ctx, kept.ID); err != nil {
			t.Fatalf("expected unrelated post kept, got %v", err)
		}
	})

	t.Run("update rewrites status and content", func(t *testing.T) {
		post := testfixtures.PlannedPost("user-5", "plan-g", 0)
		if err := storage.CreatePlannedPost(ctx, post); err != nil {
			t.Fatal(err)
		}

		post.Status = persistence.PlannedPostStatusApproved
		post.Caption = "Approved caption"
		if err := storage.UpdatePlannedPost(ctx, post); err != nil {
			t.Fatalf("UpdatePlannedPost returned error: %v", err)
		}

		got, _ := storage.GetPlannedPost(ctx, post.ID)
		if got.Status != persistence.PlannedPostStatusApproved || got.Caption != "Approved caption" {
			t.Fatalf("expected rewritten post, got %+v", got)
		}
	})
}
