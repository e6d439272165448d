package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/content-assistant/internal/alarm"
	"github.com/example/content-assistant/internal/persistence"
)

// CheckInterval is the cadence of the alarm check loop.
const CheckInterval = time.Second

// AlarmService manages posting reminders and drives the trigger loop.
type AlarmService struct {
	alarms      persistence.AlarmRepository
	checker     *alarm.Checker
	sound       alarm.SoundPlayer
	notifier    alarm.Notifier
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewAlarmService wires dependencies for alarm operations. Nil sound or
// notifier capabilities disable the corresponding side effect.
func NewAlarmService(alarms persistence.AlarmRepository, checker *alarm.Checker, sound alarm.SoundPlayer, notifier alarm.Notifier, idGenerator func() string, now func() time.Time, logger *slog.Logger) *AlarmService {
	if checker == nil {
		checker = alarm.NewChecker()
	}
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &AlarmService{
		alarms:      alarms,
		checker:     checker,
		sound:       sound,
		notifier:    notifier,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

// CreateAlarm persists a standalone reminder. At most one of the two post
// back-references may be set.
func (s *AlarmService) CreateAlarm(ctx context.Context, user UserContext, params CreateAlarmParams) (persistence.Alarm, error) {
	logger := serviceLogger(ctx, s.logger, "alarm", "create", "user_id", user.UserID)

	vErr := &ValidationError{}
	user.validate(vErr)
	if strings.TrimSpace(params.Title) == "" {
		vErr.add("title", "title is required")
	}
	if params.AlarmAt.IsZero() {
		vErr.add("alarm_datetime", "alarm time is required")
	}
	if params.ScheduledPostID != "" && params.PlannedPostID != "" {
		vErr.add("post_reference", "at most one of scheduled_post_id and planned_post_id may be set")
	}
	if vErr.HasErrors() {
		return persistence.Alarm{}, vErr
	}

	now := s.now()
	record := persistence.Alarm{
		ID:                  s.idGenerator(),
		UserID:              user.UserID,
		Title:               strings.TrimSpace(params.Title),
		AlarmAt:             params.AlarmAt,
		ScheduledPostID:     optionalID(params.ScheduledPostID),
		PlannedPostID:       optionalID(params.PlannedPostID),
		Status:              persistence.AlarmStatusActive,
		SoundEnabled:        params.SoundEnabled,
		NotificationEnabled: params.NotificationEnabled,
		Notes:               params.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.alarms.CreateAlarm(ctx, record); err != nil {
		logger.Error("persist alarm failed", "error", err)
		return persistence.Alarm{}, fmt.Errorf("persist alarm: %w", err)
	}

	logger.Info("alarm created", "alarm_id", record.ID, "alarm_at", record.AlarmAt)
	return record, nil
}

// ListActive returns the user's active alarms ordered by target time.
func (s *AlarmService) ListActive(ctx context.Context, user UserContext) ([]persistence.Alarm, error) {
	alarms, err := s.alarms.ListActiveAlarms(ctx, user.UserID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return alarms, nil
}

// Dismiss transitions an alarm to dismissed, from either active or triggered,
// and clears it from the checker's handled set.
func (s *AlarmService) Dismiss(ctx context.Context, user UserContext, id string) error {
	logger := serviceLogger(ctx, s.logger, "alarm", "dismiss", "user_id", user.UserID, "alarm_id", id)

	record, err := s.alarms.GetAlarm(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if record.UserID != user.UserID {
		return ErrForbidden
	}
	if record.Status == persistence.AlarmStatusDismissed {
		return nil
	}

	if err := s.alarms.UpdateAlarmStatus(ctx, id, persistence.AlarmStatusDismissed); err != nil {
		return mapRepoError(err)
	}
	s.checker.Forget(id)

	logger.Info("alarm dismissed")
	return nil
}

// Delete removes an alarm owned by the user.
func (s *AlarmService) Delete(ctx context.Context, user UserContext, id string) error {
	record, err := s.alarms.GetAlarm(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if record.UserID != user.UserID {
		return ErrForbidden
	}

	if err := s.alarms.DeleteAlarm(ctx, id); err != nil {
		return mapRepoError(err)
	}
	s.checker.Forget(id)
	return nil
}

// CheckOnce runs one trigger evaluation: it loads every active alarm, asks
// the checker which cross their target time at now, executes the requested
// side effects, and persists the transition to triggered. Side-effect and
// status-write failures are logged and never abort the remaining firings.
func (s *AlarmService) CheckOnce(ctx context.Context, now time.Time) ([]persistence.Alarm, error) {
	active, err := s.alarms.ListAllActiveAlarms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active alarms: %w", err)
	}

	byID := make(map[string]persistence.Alarm, len(active))
	candidates := make([]alarm.Alarm, 0, len(active))
	for _, record := range active {
		byID[record.ID] = record
		candidates = append(candidates, alarm.Alarm{
			ID:                  record.ID,
			Title:               record.Title,
			Notes:               record.Notes,
			At:                  record.AlarmAt,
			Status:              alarm.Status(record.Status),
			SoundEnabled:        record.SoundEnabled,
			NotificationEnabled: record.NotificationEnabled,
		})
	}

	firings := s.checker.Tick(now, candidates)
	if len(firings) == 0 {
		return nil, nil
	}

	logger := serviceLogger(ctx, s.logger, "alarm", "check")
	triggered := make([]persistence.Alarm, 0, len(firings))
	for _, firing := range firings {
		if firing.PlaySound && s.sound != nil {
			s.sound.Play()
		}
		if firing.Notify && s.notifier != nil {
			s.notifier.Notify(firing.Alarm.Title, firing.Alarm.Notes)
		}

		if err := s.alarms.UpdateAlarmStatus(ctx, firing.Alarm.ID, persistence.AlarmStatusTriggered); err != nil {
			logger.Error("persist alarm trigger failed", "error", err, "alarm_id", firing.Alarm.ID)
			continue
		}

		record := byID[firing.Alarm.ID]
		record.Status = persistence.AlarmStatusTriggered
		triggered = append(triggered, record)
		logger.Info("alarm triggered", "alarm_id", record.ID, "title", record.Title)
	}

	return triggered, nil
}

// Run drives CheckOnce on a fixed interval until ctx is cancelled.
func (s *AlarmService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = CheckInterval
	}

	logger := serviceLogger(ctx, s.logger, "alarm", "run", "interval", interval.String())
	logger.Info("alarm check loop started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("alarm check loop stopped")
			return
		case tick := <-ticker.C:
			if _, err := s.CheckOnce(ctx, tick); err != nil {
				logger.Error("alarm check failed", "error", err)
			}
		}
	}
}
