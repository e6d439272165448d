package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/content-assistant/internal/generator"
	"github.com/example/content-assistant/internal/persistence"
	"github.com/example/content-assistant/internal/testfixtures"
)

func newPlanService(store *memStore) *PlanService {
	return NewPlanService(
		store,
		store,
		store,
		store,
		generator.New(testfixtures.NewPicker(0).PickFunc()),
		testfixtures.NewIDGenerator("plan").NextFunc(),
		testfixtures.NewClock(testfixtures.ReferenceTime()).NowFunc(),
		nil,
	)
}

// 2024-01-01 is a Monday.
var planStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestPlanService_CreatePlan(t *testing.T) {
	ctx := context.Background()
	user := UserContext{UserID: "user-1"}

	t.Run("persists plan, posts and alarms in order", func(t *testing.T) {
		store := newMemStore()
		service := newPlanService(store)

		result, err := service.CreatePlan(ctx, user, CreatePlanParams{
			StartDate:    planStart,
			Weeks:        2,
			PostsPerWeek: 3,
			Platforms:    []string{"instagram"},
			CreateAlarms: true,
			AlarmTime:    "08:30",
		})
		if err != nil {
			t.Fatalf("CreatePlan returned error: %v", err)
		}

		if result.Plan.TotalPosts != 6 || len(result.Posts) != 6 {
			t.Fatalf("expected 6 posts, got %d", len(result.Posts))
		}
		if result.Plan.Status != persistence.ContentPlanStatusActive {
			t.Fatalf("expected active plan, got %s", result.Plan.Status)
		}
		if len(result.Insights) == 0 {
			t.Fatalf("expected plan insights")
		}

		posts, err := store.ListPlannedPostsForPlan(ctx, result.Plan.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(posts) != 6 {
			t.Fatalf("expected 6 persisted posts, got %d", len(posts))
		}
		for i, post := range posts {
			if post.OrderInPlan != i {
				t.Fatalf("post %d: expected order %d, got %d", i, i, post.OrderInPlan)
			}
			if post.Status != persistence.PlannedPostStatusSuggested {
				t.Fatalf("post %d: expected suggested status, got %s", i, post.Status)
			}
		}

		alarms, err := store.ListAllActiveAlarms(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(alarms) != 6 {
			t.Fatalf("expected one alarm per post, got %d", len(alarms))
		}
		for _, alarm := range alarms {
			if alarm.PlannedPostID == nil {
				t.Fatalf("expected planned post back-reference: %+v", alarm)
			}
			if alarm.ScheduledPostID != nil {
				t.Fatalf("plan alarms must not reference scheduled posts: %+v", alarm)
			}
			if !strings.HasPrefix(alarm.Title, "Time to post: ") {
				t.Fatalf("unexpected alarm title: %q", alarm.Title)
			}
			if alarm.AlarmAt.Hour() != 8 || alarm.AlarmAt.Minute() != 30 {
				t.Fatalf("expected 08:30 alarm time, got %s", alarm.AlarmAt)
			}
		}
	})

	t.Run("alarms default to 09:00 when no time is chosen", func(t *testing.T) {
		store := newMemStore()
		service := newPlanService(store)

		_, err := service.CreatePlan(ctx, user, CreatePlanParams{
			StartDate:    planStart,
			Weeks:        1,
			PostsPerWeek: 1,
			CreateAlarms: true,
		})
		if err != nil {
			t.Fatalf("CreatePlan returned error: %v", err)
		}

		alarms, _ := store.ListAllActiveAlarms(ctx)
		if len(alarms) != 1 || alarms[0].AlarmAt.Hour() != 9 || alarms[0].AlarmAt.Minute() != 0 {
			t.Fatalf("expected a 09:00 alarm, got %v", alarms)
		}
	})

	t.Run("a failed post write keeps the plan and earlier posts", func(t *testing.T) {
		store := newMemStore()
		store.failPlannedCreateAt = 3
		service := newPlanService(store)

		_, err := service.CreatePlan(ctx, user, CreatePlanParams{
			StartDate:    planStart,
			Weeks:        2,
			PostsPerWeek: 3,
			CreateAlarms: true,
		})
		if err == nil {
			t.Fatalf("expected the injected failure to surface")
		}

		// The sequence has no rollback: the plan row and the two posts
		// written before the failure stay, and no alarm step runs.
		plans, _ := store.ListContentPlans(ctx, user.UserID)
		if len(plans) != 1 {
			t.Fatalf("expected the plan row to remain, got %d", len(plans))
		}
		posts, _ := store.ListPlannedPostsForPlan(ctx, plans[0].ID)
		if len(posts) != 2 {
			t.Fatalf("expected the two earlier posts to remain, got %d", len(posts))
		}
		alarms, _ := store.ListAllActiveAlarms(ctx)
		if len(alarms) != 0 {
			t.Fatalf("expected no alarms after an aborted run, got %d", len(alarms))
		}
	})

	t.Run("a failed alarm write keeps the plan and every post", func(t *testing.T) {
		store := newMemStore()
		store.failAlarmCreateAt = 2
		service := newPlanService(store)

		_, err := service.CreatePlan(ctx, user, CreatePlanParams{
			StartDate:    planStart,
			Weeks:        1,
			PostsPerWeek: 3,
			CreateAlarms: true,
		})
		if err == nil {
			t.Fatalf("expected the injected failure to surface")
		}

		posts, _ := store.ListPlannedPostsForUser(ctx, user.UserID)
		if len(posts) != 3 {
			t.Fatalf("expected all posts to remain, got %d", len(posts))
		}
		alarms, _ := store.ListAllActiveAlarms(ctx)
		if len(alarms) != 1 {
			t.Fatalf("expected the first alarm to remain, got %d", len(alarms))
		}
	})

	t.Run("validates the window and cadence", func(t *testing.T) {
		service := newPlanService(newMemStore())

		_, err := service.CreatePlan(ctx, user, CreatePlanParams{Weeks: 0, PostsPerWeek: 9})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if vErr.FieldErrors["weeks"] == "" || vErr.FieldErrors["posts_per_week"] == "" {
			t.Fatalf("expected both field errors, got %v", vErr.FieldErrors)
		}
	})

	t.Run("rejects a malformed alarm time", func(t *testing.T) {
		service := newPlanService(newMemStore())

		_, err := service.CreatePlan(ctx, user, CreatePlanParams{
			StartDate:    planStart,
			Weeks:        1,
			PostsPerWeek: 1,
			CreateAlarms: true,
			AlarmTime:    "late evening",
		})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if vErr.FieldErrors["alarm_time"] == "" {
			t.Fatalf("expected alarm_time field error, got %v", vErr.FieldErrors)
		}
	})
}

func TestPlanService_DeletePlan(t *testing.T) {
	ctx := context.Background()
	user := UserContext{UserID: "user-1"}

	store := newMemStore()
	service := newPlanService(store)

	result, err := service.CreatePlan(ctx, user, CreatePlanParams{
		StartDate:    planStart,
		Weeks:        1,
		PostsPerWeek: 2,
		CreateAlarms: true,
	})
	if err != nil {
		t.Fatalf("CreatePlan returned error: %v", err)
	}

	// A standalone alarm must survive the plan cascade.
	standalone := testfixtures.Alarm(user.UserID)
	if err := store.CreateAlarm(ctx, standalone); err != nil {
		t.Fatal(err)
	}

	t.Run("other users cannot delete the plan", func(t *testing.T) {
		if err := service.DeletePlan(ctx, UserContext{UserID: "user-2"}, result.Plan.ID); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("cascade removes alarms and posts before the plan", func(t *testing.T) {
		if err := service.DeletePlan(ctx, user, result.Plan.ID); err != nil {
			t.Fatalf("DeletePlan returned error: %v", err)
		}

		if _, err := service.GetPlan(ctx, user, result.Plan.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected plan gone, got %v", err)
		}
		posts, _ := store.ListPlannedPostsForUser(ctx, user.UserID)
		if len(posts) != 0 {
			t.Fatalf("expected planned posts gone, got %d", len(posts))
		}
		alarms, _ := store.ListAllActiveAlarms(ctx)
		if len(alarms) != 1 || alarms[0].ID != standalone.ID {
			t.Fatalf("expected only the standalone alarm to survive, got %v", alarms)
		}
	})
}

func TestPlanService_GenerateContentForPost(t *testing.T) {
	ctx := context.Background()
	user := UserContext{UserID: "user-1"}

	store := newMemStore()
	service := newPlanService(store)

	result, err := service.CreatePlan(ctx, user, CreatePlanParams{
		StartDate:    planStart,
		Weeks:        1,
		PostsPerWeek: 2,
	})
	if err != nil {
		t.Fatalf("CreatePlan returned error: %v", err)
	}
	target := result.Posts[0]

	t.Run("fills caption and hashtags and flips the flags", func(t *testing.T) {
		post, err := service.GenerateContentForPost(ctx, user, result.Plan.ID, target.ID)
		if err != nil {
			t.Fatalf("GenerateContentForPost returned error: %v", err)
		}

		if post.Caption == "" {
			t.Fatalf("expected a generated caption")
		}
		if len(post.Hashtags) == 0 {
			t.Fatalf("expected generated hashtags")
		}
		if !post.ContentGenerated {
			t.Fatalf("expected content_generated flag set")
		}
		if post.Status != persistence.PlannedPostStatusGenerated {
			t.Fatalf("expected generated status, got %s", post.Status)
		}

		stored, err := store.GetPlannedPost(ctx, target.ID)
		if err != nil {
			t.Fatal(err)
		}
		if stored.Caption != post.Caption || !stored.ContentGenerated {
			t.Fatalf("expected the update persisted, got %+v", stored)
		}
	})

	t.Run("a mismatched plan id is not found", func(t *testing.T) {
		if _, err := service.GenerateContentForPost(ctx, user, "plan-other", target.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("other users are forbidden", func(t *testing.T) {
		if _, err := service.GenerateContentForPost(ctx, UserContext{UserID: "user-2"}, result.Plan.ID, target.ID); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestPlanService_UpdatePostStatus(t *testing.T) {
	ctx := context.Background()
	user := UserContext{UserID: "user-1"}

	store := newMemStore()
	service := newPlanService(store)

	result, err := service.CreatePlan(ctx, user, CreatePlanParams{
		StartDate:    planStart,
		Weeks:        1,
		PostsPerWeek: 1,
	})
	if err != nil {
		t.Fatalf("CreatePlan returned error: %v", err)
	}
	target := result.Posts[0]

	post, err := service.UpdatePostStatus(ctx, user, target.ID, persistence.PlannedPostStatusApproved)
	if err != nil {
		t.Fatalf("UpdatePostStatus returned error: %v", err)
	}
	if post.Status != persistence.PlannedPostStatusApproved {
		t.Fatalf("expected approved status, got %s", post.Status)
	}

	if _, err := service.UpdatePostStatus(ctx, user, target.ID, persistence.PlannedPostStatus("bogus")); err == nil {
		t.Fatalf("expected unknown status to be rejected")
	}
}

func TestPlanService_FrequencyRecommendations(t *testing.T) {
	ctx := context.Background()
	user := UserContext{UserID: "user-1"}

	store := newMemStore()
	profile := testfixtures.BrandProfile(user.UserID) // fixture industry is Tech
	if err := store.CreateBrandProfile(ctx, profile); err != nil {
		t.Fatal(err)
	}

	service := newPlanService(store)
	options, err := service.FrequencyRecommendations(ctx, user)
	if err != nil {
		t.Fatalf("FrequencyRecommendations returned error: %v", err)
	}

	for _, option := range options {
		if option.ID == "5x_week" && !option.Recommended {
			t.Fatalf("expected the Tech industry to recommend 5x_week")
		}
	}
}
