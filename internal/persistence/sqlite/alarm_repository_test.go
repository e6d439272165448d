package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/content-assistant/internal/persistence"
	"github.com/example/content-assistant/internal/testfixtures"
)

func TestAlarmRepository(t *testing.T) {
	ctx := context.Background()
	storage := testfixtures.NewSQLiteStorage(t)

	t.Run("round trips a back-referencing alarm", func(t *testing.T) {
		postID := "sched-1"
		record := testfixtures.Alarm("user-1")
		record.ScheduledPostID = &postID
		record.SoundEnabled = false
		if err := storage.CreateAlarm(ctx, record); err != nil {
			t.Fatalf("CreateAlarm returned error: %v", err)
		}

		got, err := storage.GetAlarm(ctx, record.ID)
		if err != nil {
			t.Fatalf("GetAlarm returned error: %v", err)
		}
		if got.Title != record.Title || got.Notes != record.Notes {
			t.Fatalf("scalar columns diverged: %+v", got)
		}
		if got.ScheduledPostID == nil || *got.ScheduledPostID != postID {
			t.Fatalf("expected scheduled post back-reference, got %+v", got)
		}
		if got.PlannedPostID != nil {
			t.Fatalf("expected nil planned post reference, got %v", *got.PlannedPostID)
		}
		if got.SoundEnabled || !got.NotificationEnabled {
			t.Fatalf("effect flags diverged: %+v", got)
		}
		if !got.AlarmAt.Equal(record.AlarmAt) {
			t.Fatalf("expected alarm at %s, got %s", record.AlarmAt, got.AlarmAt)
		}
	})

	t.Run("both back-references violate the constraint", func(t *testing.T) {
		scheduledID, plannedID := "sched-1", "planned-1"
		record := testfixtures.Alarm("user-1")
		record.ScheduledPostID = &scheduledID
		record.PlannedPostID = &plannedID

		if err := storage.CreateAlarm(ctx, record); !errors.Is(err, persistence.ErrConstraintViolation) {
			t.Fatalf("expected ErrConstraintViolation, got %v", err)
		}
	})

	t.Run("active listings exclude triggered and dismissed", func(t *testing.T) {
		active := testfixtures.Alarm("user-2")
		triggered := testfixtures.Alarm("user-2")
		dismissed := testfixtures.Alarm("user-2")
		for _, record := range []persistence.Alarm{active, triggered, dismissed} {
			if err := storage.CreateAlarm(ctx, record); err != nil {
				t.Fatal(err)
			}
		}
		if err := storage.UpdateAlarmStatus(ctx, triggered.ID, persistence.AlarmStatusTriggered); err != nil {
			t.Fatal(err)
		}
		if err := storage.UpdateAlarmStatus(ctx, dismissed.ID, persistence.AlarmStatusDismissed); err != nil {
			t.Fatal(err)
		}

		alarms, err := storage.ListActiveAlarms(ctx, "user-2")
		if err != nil {
			t.Fatalf("ListActiveAlarms returned error: %v", err)
		}
		if len(alarms) != 1 || alarms[0].ID != active.ID {
			t.Fatalf("expected only the active alarm, got %v", alarms)
		}
	})

	t.Run("cross-user listing orders by target time", func(t *testing.T) {
		later := testfixtures.Alarm("user-3")
		later.AlarmAt = later.AlarmAt.Add(2 * time.Hour)
		sooner := testfixtures.Alarm("user-4")
		for _, record := range []persistence.Alarm{later, sooner} {
			if err := storage.CreateAlarm(ctx, record); err != nil {
				t.Fatal(err)
			}
		}

		alarms, err := storage.ListAllActiveAlarms(ctx)
		if err != nil {
			t.Fatalf("ListAllActiveAlarms returned error: %v", err)
		}

		var soonerIdx, laterIdx = -1, -1
		for i, record := range alarms {
			switch record.ID {
			case sooner.ID:
				soonerIdx = i
			case later.ID:
				laterIdx = i
			}
		}
		if soonerIdx == -1 || laterIdx == -1 || soonerIdx > laterIdx {
			t.Fatalf("expected earlier alarm first, got indexes %d and %d", soonerIdx, laterIdx)
		}
	})

	t.Run("planned post sweep removes only referenced alarms", func(t *testing.T) {
		plannedA, plannedB, plannedC := "planned-a", "planned-b", "planned-c"
		first := testfixtures.Alarm("user-5")
		first.PlannedPostID = &plannedA
		second := testfixtures.Alarm("user-5")
		second.PlannedPostID = &plannedB
		survivor := testfixtures.Alarm("user-5")
		survivor.PlannedPostID = &plannedC
		for _, record := range []persistence.Alarm{first, second, survivor} {
			if err := storage.CreateAlarm(ctx, record); err != nil {
				t.Fatal(err)
			}
		}

		if err := storage.DeleteAlarmsForPlannedPosts(ctx, []string{plannedA, plannedB}); err != nil {
			t.Fatalf("DeleteAlarmsForPlannedPosts returned error: %v", err)
		}
		if _, err := storage.GetAlarm(ctx, first.ID); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected first alarm gone, got %v", err)
		}
		if _, err := storage.GetAlarm(ctx, survivor.ID); err != nil {
			t.Fatalf("expected survivor kept, got %v", err)
		}

		// Empty list is a no-op, not an error.
		if err := storage.DeleteAlarmsForPlannedPosts(ctx, nil); err != nil {
			t.Fatalf("expected empty sweep to succeed, got %v", err)
		}
	})

	t.Run("scheduled post sweep tolerates zero matches", func(t *testing.T) {
		scheduledID := "sched-sweep"
		record := testfixtures.Alarm("user-6")
		record.ScheduledPostID = &scheduledID
		if err := storage.CreateAlarm(ctx, record); err != nil {
			t.Fatal(err)
		}

		if err := storage.DeleteAlarmsForScheduledPost(ctx, scheduledID); err != nil {
			t.Fatalf("DeleteAlarmsForScheduledPost returned error: %v", err)
		}
		if _, err := storage.GetAlarm(ctx, record.ID); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected alarm gone, got %v", err)
		}
		if err := storage.DeleteAlarmsForScheduledPost(ctx, scheduledID); err != nil {
			t.Fatalf("expected repeated sweep to succeed, got %v", err)
		}
	})

	t.Run("status update on a missing alarm is not found", func(t *testing.T) {
		if err := storage.UpdateAlarmStatus(ctx, "alarm-missing", persistence.AlarmStatusDismissed); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete removes the row", func(t *testing.T) {
		record := testfixtures.Alarm("user-7")
		if err := storage.CreateAlarm(ctx, record); err != nil {
			t.Fatal(err)
		}
		if err := storage.DeleteAlarm(ctx, record.ID); err != nil {
			t.Fatalf("DeleteAlarm returned error: %v", err)
		}
		if err := storage.DeleteAlarm(ctx, record.ID); !errors.Is(err, persistence.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for repeated delete, got %v", err)
		}
	})
}
