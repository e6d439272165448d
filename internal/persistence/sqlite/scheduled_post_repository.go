package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/content-assistant/internal/persistence"
)

// CreateScheduledPost inserts a post committed to a publish slot.
func (s *Storage) CreateScheduledPost(ctx context.Context, post persistence.ScheduledPost) error {
	if post.ID == "" {
		return persistence.ErrConstraintViolation
	}

	hashtags, err := marshalStrings(post.Hashtags)
	if err != nil {
		return err
	}
	platforms, err := marshalStrings(post.Platforms)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO scheduled_posts (id, user_id, brand_profile_id, generated_content_id, title, caption, hashtags, platforms, image_url, scheduled_date, scheduled_time, timezone, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		post.ID,
		post.UserID,
		toNullString(post.BrandProfileID),
		toNullString(post.GeneratedContentID),
		post.Title,
		post.Caption,
		hashtags,
		platforms,
		post.ImageURL,
		formatDate(post.ScheduledDate),
		post.ScheduledTime,
		post.Timezone,
		string(post.Status),
		post.Notes,
		formatTimestamp(post.CreatedAt),
		formatTimestamp(post.UpdatedAt),
	)
	if err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

// UpdateScheduledPost rewrites the mutable columns of a scheduled post.
func (s *Storage) UpdateScheduledPost(ctx context.Context, post persistence.ScheduledPost) error {
	if post.ID == "" {
		return persistence.ErrNotFound
	}

	hashtags, err := marshalStrings(post.Hashtags)
	if err != nil {
		return err
	}
	platforms, err := marshalStrings(post.Platforms)
	if err != nil {
		return err
	}

	query := `
		UPDATE scheduled_posts
		SET title = ?, caption = ?, hashtags = ?, platforms = ?, image_url = ?, scheduled_date = ?, scheduled_time = ?, timezone = ?, status = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		post.Title,
		post.Caption,
		hashtags,
		platforms,
		post.ImageURL,
		formatDate(post.ScheduledDate),
		post.ScheduledTime,
		post.Timezone,
		string(post.Status),
		post.Notes,
		formatTimestamp(post.UpdatedAt),
		post.ID,
	)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

// GetScheduledPost retrieves a scheduled post by id.
func (s *Storage) GetScheduledPost(ctx context.Context, id string) (persistence.ScheduledPost, error) {
	if id == "" {
		return persistence.ScheduledPost{}, persistence.ErrNotFound
	}

	row := s.db.QueryRowContext(ctx, scheduledPostSelect+" WHERE id = ?", id)
	post, err := scanScheduledPost(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return persistence.ScheduledPost{}, persistence.ErrNotFound
		}
		return persistence.ScheduledPost{}, err
	}
	return post, nil
}

// ListScheduledPosts returns a user's scheduled posts ordered by slot.
func (s *Storage) ListScheduledPosts(ctx context.Context, userID string) ([]persistence.ScheduledPost, error) {
	query := scheduledPostSelect + " WHERE user_id = ? ORDER BY scheduled_date ASC, scheduled_time ASC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer rows.Close()

	var posts []persistence.ScheduledPost
	for rows.Next() {
		post, err := scanScheduledPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err)
	}
	return posts, nil
}

// DeleteScheduledPost removes one scheduled post by id.
func (s *Storage) DeleteScheduledPost(ctx context.Context, id string) error {
	if id == "" {
		return persistence.ErrNotFound
	}
	result, err := s.db.ExecContext(ctx, "DELETE FROM scheduled_posts WHERE id = ?", id)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

const scheduledPostSelect = `
	SELECT id, user_id, brand_profile_id, generated_content_id, title, caption, hashtags, platforms, image_url, scheduled_date, scheduled_time, timezone, status, notes, created_at, updated_at
	FROM scheduled_posts
`

func scanScheduledPost(scan func(dest ...any) error) (persistence.ScheduledPost, error) {
	var post persistence.ScheduledPost
	var brandProfileID, generatedContentID sql.NullString
	var hashtags, platforms string
	var scheduledDateStr, status, createdAtStr, updatedAtStr string

	err := scan(
		&post.ID,
		&post.UserID,
		&brandProfileID,
		&generatedContentID,
		&post.Title,
		&post.Caption,
		&hashtags,
		&platforms,
		&post.ImageURL,
		&scheduledDateStr,
		&post.ScheduledTime,
		&post.Timezone,
		&status,
		&post.Notes,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return persistence.ScheduledPost{}, err
	}

	post.BrandProfileID = fromNullString(brandProfileID)
	post.GeneratedContentID = fromNullString(generatedContentID)
	post.Status = persistence.ScheduledPostStatus(status)
	if post.Hashtags, err = unmarshalStrings(hashtags); err != nil {
		return persistence.ScheduledPost{}, err
	}
	if post.Platforms, err = unmarshalStrings(platforms); err != nil {
		return persistence.ScheduledPost{}, err
	}

	if post.ScheduledDate, err = parseDate(scheduledDateStr); err != nil {
		return persistence.ScheduledPost{}, fmt.Errorf("sqlite: parse scheduled_date: %w", err)
	}
	if post.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return persistence.ScheduledPost{}, fmt.Errorf("sqlite: parse created_at: %w", err)
	}
	if post.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return persistence.ScheduledPost{}, fmt.Errorf("sqlite: parse updated_at: %w", err)
	}
	return post, nil
}
