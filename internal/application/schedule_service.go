package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/content-assistant/internal/generator"
	"github.com/example/content-assistant/internal/persistence"
	"github.com/example/content-assistant/internal/schedule"
)

// ScheduleService commits posts to publish slots and maintains the dependent
// reminder alarms.
type ScheduleService struct {
	posts       persistence.ScheduledPostRepository
	alarms      persistence.AlarmRepository
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewScheduleService wires dependencies for scheduling operations.
func NewScheduleService(posts persistence.ScheduledPostRepository, alarms persistence.AlarmRepository, idGenerator func() string, now func() time.Time, logger *slog.Logger) *ScheduleService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &ScheduleService{
		posts:       posts,
		alarms:      alarms,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

// SchedulePost inserts a scheduled post and, when requested, a dependent
// alarm carrying the new post's id. The alarm write depends on the post
// insert having succeeded; the reverse order would leave a dangling
// back-reference.
func (s *ScheduleService) SchedulePost(ctx context.Context, user UserContext, params SchedulePostParams) (persistence.ScheduledPost, error) {
	logger := serviceLogger(ctx, s.logger, "schedule", "schedule_post", "user_id", user.UserID)

	vErr := &ValidationError{}
	user.validate(vErr)
	if strings.TrimSpace(params.Caption) == "" {
		vErr.add("caption", "caption is required")
	}
	if params.ScheduledDate.IsZero() {
		vErr.add("scheduled_date", "scheduled date is required")
	}
	if _, err := time.Parse("15:04", params.ScheduledTime); err != nil {
		vErr.add("scheduled_time", "must be HH:MM")
	}
	if vErr.HasErrors() {
		return persistence.ScheduledPost{}, vErr
	}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		title = generator.DeriveTitle(params.Caption)
	}

	timezone := params.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	now := s.now()
	post := persistence.ScheduledPost{
		ID:                 s.idGenerator(),
		UserID:             user.UserID,
		BrandProfileID:     optionalID(params.BrandProfileID),
		GeneratedContentID: optionalID(params.GeneratedContentID),
		Title:              title,
		Caption:            params.Caption,
		Hashtags:           params.Hashtags,
		Platforms:          params.Platforms,
		ImageURL:           params.ImageURL,
		ScheduledDate:      params.ScheduledDate,
		ScheduledTime:      params.ScheduledTime,
		Timezone:           timezone,
		Status:             persistence.ScheduledPostStatusScheduled,
		Notes:              params.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	s.warnOnConflicts(ctx, logger, user, post)

	if err := s.posts.CreateScheduledPost(ctx, post); err != nil {
		logger.Error("persist scheduled post failed", "error", err)
		return persistence.ScheduledPost{}, fmt.Errorf("persist scheduled post: %w", err)
	}

	if params.CreateAlarm {
		if err := s.createPostAlarm(ctx, post); err != nil {
			logger.Error("persist schedule alarm failed", "error", err, "scheduled_post_id", post.ID)
			return persistence.ScheduledPost{}, fmt.Errorf("persist schedule alarm: %w", err)
		}
	}

	logger.Info("post scheduled", "scheduled_post_id", post.ID, "date", post.ScheduledDate.Format("2006-01-02"), "time", post.ScheduledTime)
	return post, nil
}

// PreviewWeekly projects the requested number of posts onto the priority
// weekday table without persisting anything.
func (s *ScheduleService) PreviewWeekly(user UserContext, start time.Time, numberOfPosts int) ([]schedule.Slot, error) {
	vErr := &ValidationError{}
	user.validate(vErr)
	if vErr.HasErrors() {
		return nil, vErr
	}
	if start.IsZero() {
		start = s.now()
	}
	return schedule.GenerateWeeklySchedule(start, numberOfPosts), nil
}

// CommitWeeklySchedule turns the generated slots into draft scheduled posts,
// each with a dependent alarm written after its post.
func (s *ScheduleService) CommitWeeklySchedule(ctx context.Context, user UserContext, params WeeklyScheduleParams) ([]persistence.ScheduledPost, error) {
	logger := serviceLogger(ctx, s.logger, "schedule", "commit_weekly", "user_id", user.UserID)

	vErr := &ValidationError{}
	user.validate(vErr)
	if strings.TrimSpace(params.Caption) == "" {
		vErr.add("caption", "caption is required")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	start := params.StartDate
	if start.IsZero() {
		start = s.now()
	}
	timezone := params.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	slots := schedule.GenerateWeeklySchedule(start, params.NumberOfPosts)
	now := s.now()

	posts := make([]persistence.ScheduledPost, 0, len(slots))
	for _, slot := range slots {
		post := persistence.ScheduledPost{
			ID:            s.idGenerator(),
			UserID:        user.UserID,
			Title:         generator.DeriveTitle(params.Caption),
			Caption:       params.Caption,
			Hashtags:      params.Hashtags,
			Platforms:     params.Platforms,
			ScheduledDate: slot.Date,
			ScheduledTime: slot.Time,
			Timezone:      timezone,
			Status:        persistence.ScheduledPostStatusDraft,
			Notes:         "Auto-generated weekly schedule for " + schedule.DayName(slot.Day),
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := s.posts.CreateScheduledPost(ctx, post); err != nil {
			logger.Error("persist weekly post failed", "error", err, "date", slot.Date.Format("2006-01-02"))
			return nil, fmt.Errorf("persist weekly post: %w", err)
		}
		if err := s.createPostAlarm(ctx, post); err != nil {
			logger.Error("persist weekly alarm failed", "error", err, "scheduled_post_id", post.ID)
			return nil, fmt.Errorf("persist weekly alarm: %w", err)
		}
		posts = append(posts, post)
	}

	logger.Info("weekly schedule committed", "posts", len(posts))
	return posts, nil
}

// PreviewRecurring renders a recurring date series as human-readable strings.
func (s *ScheduleService) PreviewRecurring(user UserContext, start time.Time, frequency schedule.Frequency, preferredDay time.Weekday, timeOfDay string, numberOfPosts int) ([]string, error) {
	vErr := &ValidationError{}
	user.validate(vErr)
	if numberOfPosts < 1 {
		vErr.add("number_of_posts", "must be at least 1")
	}
	switch frequency {
	case schedule.FrequencyWeekly, schedule.FrequencyBiweekly, schedule.FrequencyMonthly:
	default:
		vErr.add("frequency", "must be weekly, biweekly or monthly")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	if start.IsZero() {
		start = s.now()
	}
	if timeOfDay == "" {
		timeOfDay = defaultAlarmTime
	}

	dates := schedule.GenerateRecurringSchedule(start, frequency, preferredDay, numberOfPosts)
	return schedule.FormatSchedulePreview(dates, timeOfDay), nil
}

// ListScheduledPosts returns the user's scheduled posts ordered by slot.
func (s *ScheduleService) ListScheduledPosts(ctx context.Context, user UserContext) ([]persistence.ScheduledPost, error) {
	posts, err := s.posts.ListScheduledPosts(ctx, user.UserID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return posts, nil
}

// UpdatePostStatus transitions one scheduled post through its lifecycle.
func (s *ScheduleService) UpdatePostStatus(ctx context.Context, user UserContext, id string, status persistence.ScheduledPostStatus) (persistence.ScheduledPost, error) {
	switch status {
	case persistence.ScheduledPostStatusDraft,
		persistence.ScheduledPostStatusScheduled,
		persistence.ScheduledPostStatusPublished,
		persistence.ScheduledPostStatusFailed:
	default:
		vErr := &ValidationError{}
		vErr.add("status", "unknown scheduled post status")
		return persistence.ScheduledPost{}, vErr
	}

	post, err := s.posts.GetScheduledPost(ctx, id)
	if err != nil {
		return persistence.ScheduledPost{}, mapRepoError(err)
	}
	if post.UserID != user.UserID {
		return persistence.ScheduledPost{}, ErrForbidden
	}

	post.Status = status
	post.UpdatedAt = s.now()
	if err := s.posts.UpdateScheduledPost(ctx, post); err != nil {
		return persistence.ScheduledPost{}, mapRepoError(err)
	}
	return post, nil
}

// DeleteScheduledPost removes a scheduled post after its dependent alarms, so
// a failure cannot leave alarms pointing at a deleted post.
func (s *ScheduleService) DeleteScheduledPost(ctx context.Context, user UserContext, id string) error {
	logger := serviceLogger(ctx, s.logger, "schedule", "delete_post", "user_id", user.UserID, "scheduled_post_id", id)

	post, err := s.posts.GetScheduledPost(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if post.UserID != user.UserID {
		return ErrForbidden
	}

	if err := s.alarms.DeleteAlarmsForScheduledPost(ctx, post.ID); err != nil {
		logger.Error("delete post alarms failed", "error", err)
		return fmt.Errorf("delete post alarms: %w", err)
	}
	if err := s.posts.DeleteScheduledPost(ctx, post.ID); err != nil {
		return mapRepoError(err)
	}

	logger.Info("scheduled post deleted")
	return nil
}

// warnOnConflicts logs existing posts occupying the same slot. Scheduling
// proceeds regardless; a double booking is the user's call to make.
func (s *ScheduleService) warnOnConflicts(ctx context.Context, logger *slog.Logger, user UserContext, post persistence.ScheduledPost) {
	existing, err := s.posts.ListScheduledPosts(ctx, user.UserID)
	if err != nil {
		logger.Warn("conflict check skipped", "error", err)
		return
	}

	slots := make([]schedule.PostSlot, 0, len(existing))
	for _, other := range existing {
		slots = append(slots, schedule.PostSlot{
			PostID:    other.ID,
			Date:      other.ScheduledDate,
			Time:      other.ScheduledTime,
			Platforms: other.Platforms,
		})
	}

	conflicts := schedule.DetectConflicts(slots, schedule.PostSlot{
		PostID:    post.ID,
		Date:      post.ScheduledDate,
		Time:      post.ScheduledTime,
		Platforms: post.Platforms,
	})
	for _, conflict := range conflicts {
		logger.Warn("slot already occupied",
			"conflicting_post_id", conflict.WithPostID,
			"platform", conflict.Platform,
		)
	}
}

// createPostAlarm writes the reminder for an already-persisted post at the
// post's own date and time.
func (s *ScheduleService) createPostAlarm(ctx context.Context, post persistence.ScheduledPost) error {
	alarmAt, err := combineDateAndTime(post.ScheduledDate, post.ScheduledTime)
	if err != nil {
		return err
	}

	now := s.now()
	postID := post.ID
	alarm := persistence.Alarm{
		ID:                  s.idGenerator(),
		UserID:              post.UserID,
		Title:               "Time to post: " + post.Title,
		AlarmAt:             alarmAt,
		ScheduledPostID:     &postID,
		Status:              persistence.AlarmStatusActive,
		SoundEnabled:        true,
		NotificationEnabled: true,
		Notes:               post.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return s.alarms.CreateAlarm(ctx, alarm)
}
