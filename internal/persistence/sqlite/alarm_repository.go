package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/example/content-assistant/internal/persistence"
)

// CreateAlarm inserts a posting reminder.
func (s *Storage) CreateAlarm(ctx context.Context, alarm persistence.Alarm) error {
	if alarm.ID == "" {
		return persistence.ErrConstraintViolation
	}
	if alarm.ScheduledPostID != nil && alarm.PlannedPostID != nil {
		return persistence.ErrConstraintViolation
	}

	query := `
		INSERT INTO alarms (id, user_id, title, alarm_datetime, scheduled_post_id, planned_post_id, status, sound_enabled, notification_enabled, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		alarm.ID,
		alarm.UserID,
		alarm.Title,
		formatTimestamp(alarm.AlarmAt),
		toNullString(alarm.ScheduledPostID),
		toNullString(alarm.PlannedPostID),
		string(alarm.Status),
		boolToInt(alarm.SoundEnabled),
		boolToInt(alarm.NotificationEnabled),
		alarm.Notes,
		formatTimestamp(alarm.CreatedAt),
		formatTimestamp(alarm.UpdatedAt),
	)
	if err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

// GetAlarm retrieves an alarm by id.
func (s *Storage) GetAlarm(ctx context.Context, id string) (persistence.Alarm, error) {
	if id == "" {
		return persistence.Alarm{}, persistence.ErrNotFound
	}

	row := s.db.QueryRowContext(ctx, alarmSelect+" WHERE id = ?", id)
	alarm, err := scanAlarm(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return persistence.Alarm{}, persistence.ErrNotFound
		}
		return persistence.Alarm{}, err
	}
	return alarm, nil
}

// ListActiveAlarms returns a user's active alarms ordered by target time.
func (s *Storage) ListActiveAlarms(ctx context.Context, userID string) ([]persistence.Alarm, error) {
	return s.listAlarms(ctx, alarmSelect+" WHERE user_id = ? AND status = ? ORDER BY alarm_datetime ASC, id ASC",
		userID, string(persistence.AlarmStatusActive))
}

// ListAllActiveAlarms returns every active alarm across users. The check loop
// polls this once per tick.
func (s *Storage) ListAllActiveAlarms(ctx context.Context) ([]persistence.Alarm, error) {
	return s.listAlarms(ctx, alarmSelect+" WHERE status = ? ORDER BY alarm_datetime ASC, id ASC",
		string(persistence.AlarmStatusActive))
}

func (s *Storage) listAlarms(ctx context.Context, query string, args ...any) ([]persistence.Alarm, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer rows.Close()

	var alarms []persistence.Alarm
	for rows.Next() {
		alarm, err := scanAlarm(rows.Scan)
		if err != nil {
			return nil, err
		}
		alarms = append(alarms, alarm)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err)
	}
	return alarms, nil
}

// UpdateAlarmStatus transitions one alarm's status.
func (s *Storage) UpdateAlarmStatus(ctx context.Context, id string, status persistence.AlarmStatus) error {
	if id == "" {
		return persistence.ErrNotFound
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE alarms SET status = ?, updated_at = ? WHERE id = ?",
		string(status), formatTimestamp(time.Now()), id)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

// DeleteAlarm removes one alarm by id.
func (s *Storage) DeleteAlarm(ctx context.Context, id string) error {
	if id == "" {
		return persistence.ErrNotFound
	}
	result, err := s.db.ExecContext(ctx, "DELETE FROM alarms WHERE id = ?", id)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

// DeleteAlarmsForPlannedPosts removes every alarm back-referencing any of the
// given planned posts. An empty id list is a no-op.
func (s *Storage) DeleteAlarmsForPlannedPosts(ctx context.Context, plannedPostIDs []string) error {
	if len(plannedPostIDs) == 0 {
		return nil
	}

	placeholders := make([]string, len(plannedPostIDs))
	args := make([]any, len(plannedPostIDs))
	for i, id := range plannedPostIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf("DELETE FROM alarms WHERE planned_post_id IN (%s)", strings.Join(placeholders, ","))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

// DeleteAlarmsForScheduledPost removes every alarm back-referencing the given
// scheduled post. Zero matches is not an error.
func (s *Storage) DeleteAlarmsForScheduledPost(ctx context.Context, scheduledPostID string) error {
	if scheduledPostID == "" {
		return persistence.ErrNotFound
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM alarms WHERE scheduled_post_id = ?", scheduledPostID); err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

const alarmSelect = `
	SELECT id, user_id, title, alarm_datetime, scheduled_post_id, planned_post_id, status, sound_enabled, notification_enabled, notes, created_at, updated_at
	FROM alarms
`

func scanAlarm(scan func(dest ...any) error) (persistence.Alarm, error) {
	var alarm persistence.Alarm
	var scheduledPostID, plannedPostID sql.NullString
	var alarmAtStr, status, createdAtStr, updatedAtStr string
	var soundEnabled, notificationEnabled int

	err := scan(
		&alarm.ID,
		&alarm.UserID,
		&alarm.Title,
		&alarmAtStr,
		&scheduledPostID,
		&plannedPostID,
		&status,
		&soundEnabled,
		&notificationEnabled,
		&alarm.Notes,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return persistence.Alarm{}, err
	}

	alarm.ScheduledPostID = fromNullString(scheduledPostID)
	alarm.PlannedPostID = fromNullString(plannedPostID)
	alarm.Status = persistence.AlarmStatus(status)
	alarm.SoundEnabled = soundEnabled != 0
	alarm.NotificationEnabled = notificationEnabled != 0

	if alarm.AlarmAt, err = parseTimestamp(alarmAtStr); err != nil {
		return persistence.Alarm{}, fmt.Errorf("sqlite: parse alarm_datetime: %w", err)
	}
	if alarm.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return persistence.Alarm{}, fmt.Errorf("sqlite: parse created_at: %w", err)
	}
	if alarm.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return persistence.Alarm{}, fmt.Errorf("sqlite: parse updated_at: %w", err)
	}
	return alarm, nil
}
