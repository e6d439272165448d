package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/content-assistant/internal/persistence"
)

// CreatePlannedPost inserts a plan-suggested post.
func (s *Storage) CreatePlannedPost(ctx context.Context, post persistence.PlannedPost) error {
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
		INSERT INTO planned_posts (id, content_plan_id, user_id, title, suggested_date, suggested_time, rationale, content_generated, caption, hashtags, platforms, image_url, status, order_in_plan, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		post.ID,
		post.ContentPlanID,
		post.UserID,
		post.Title,
		formatDate(post.SuggestedDate),
		post.SuggestedTime,
		post.Rationale,
		boolToInt(post.ContentGenerated),
		post.Caption,
		hashtags,
		platforms,
		post.ImageURL,
		string(post.Status),
		post.OrderInPlan,
		formatTimestamp(post.CreatedAt),
		formatTimestamp(post.UpdatedAt),
	)
	if err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

// UpdatePlannedPost rewrites the mutable columns of a planned post.
func (s *Storage) UpdatePlannedPost(ctx context.Context, post persistence.PlannedPost) error {
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
		UPDATE planned_posts
		SET title = ?, suggested_date = ?, suggested_time = ?, rationale = ?, content_generated = ?, caption = ?, hashtags = ?, platforms = ?, image_url = ?, status = ?, order_in_plan = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		post.Title,
		formatDate(post.SuggestedDate),
		post.SuggestedTime,
		post.Rationale,
		boolToInt(post.ContentGenerated),
		post.Caption,
		hashtags,
		platforms,
		post.ImageURL,
		string(post.Status),
		post.OrderInPlan,
		formatTimestamp(post.UpdatedAt),
		post.ID,
	)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

// GetPlannedPost retrieves a planned post by id.
func (s *Storage) GetPlannedPost(ctx context.Context, id string) (persistence.PlannedPost, error) {
	if id == "" {
		return persistence.PlannedPost{}, persistence.ErrNotFound
	}

	row := s.db.QueryRowContext(ctx, plannedPostSelect+" WHERE id = ?", id)
	post, err := scanPlannedPost(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return persistence.PlannedPost{}, persistence.ErrNotFound
		}
		return persistence.PlannedPost{}, err
	}
	return post, nil
}

// ListPlannedPostsForPlan returns the posts of one plan in plan order.
func (s *Storage) ListPlannedPostsForPlan(ctx context.Context, planID string) ([]persistence.PlannedPost, error) {
	return s.listPlannedPosts(ctx, plannedPostSelect+" WHERE content_plan_id = ? ORDER BY order_in_plan ASC, id ASC", planID)
}

// ListPlannedPostsForUser returns all of a user's planned posts ordered by date.
func (s *Storage) ListPlannedPostsForUser(ctx context.Context, userID string) ([]persistence.PlannedPost, error) {
	return s.listPlannedPosts(ctx, plannedPostSelect+" WHERE user_id = ? ORDER BY suggested_date ASC, order_in_plan ASC", userID)
}

func (s *Storage) listPlannedPosts(ctx context.Context, query string, args ...any) ([]persistence.PlannedPost, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer rows.Close()

	var posts []persistence.PlannedPost
	for rows.Next() {
		post, err := scanPlannedPost(rows.Scan)
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

// DeletePlannedPost removes one planned post by id.
func (s *Storage) DeletePlannedPost(ctx context.Context, id string) error {
	if id == "" {
		return persistence.ErrNotFound
	}
	result, err := s.db.ExecContext(ctx, "DELETE FROM planned_posts WHERE id = ?", id)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

// DeletePlannedPostsForPlan removes every post of one plan. Deleting zero rows
// is not an error: an empty plan is legal.
func (s *Storage) DeletePlannedPostsForPlan(ctx context.Context, planID string) error {
	if planID == "" {
		return persistence.ErrNotFound
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM planned_posts WHERE content_plan_id = ?", planID); err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

const plannedPostSelect = `
	SELECT id, content_plan_id, user_id, title, suggested_date, suggested_time, rationale, content_generated, caption, hashtags, platforms, image_url, status, order_in_plan, created_at, updated_at
	FROM planned_posts
`

func scanPlannedPost(scan func(dest ...any) error) (persistence.PlannedPost, error) {
	var post persistence.PlannedPost
	var suggestedDateStr, status, createdAtStr, updatedAtStr string
	var hashtags, platforms string
	var contentGenerated int

	err := scan(
		&post.ID,
		&post.ContentPlanID,
		&post.UserID,
		&post.Title,
		&suggestedDateStr,
		&post.SuggestedTime,
		&post.Rationale,
		&contentGenerated,
		&post.Caption,
		&hashtags,
		&platforms,
		&post.ImageURL,
		&status,
		&post.OrderInPlan,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return persistence.PlannedPost{}, err
	}

	post.ContentGenerated = contentGenerated != 0
	post.Status = persistence.PlannedPostStatus(status)
	if post.Hashtags, err = unmarshalStrings(hashtags); err != nil {
		return persistence.PlannedPost{}, err
	}
	if post.Platforms, err = unmarshalStrings(platforms); err != nil {
		return persistence.PlannedPost{}, err
	}

	if post.SuggestedDate, err = parseDate(suggestedDateStr); err != nil {
		return persistence.PlannedPost{}, fmt.Errorf("sqlite: parse suggested_date: %w", err)
	}
	if post.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return persistence.PlannedPost{}, fmt.Errorf("sqlite: parse created_at: %w", err)
	}
	if post.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return persistence.PlannedPost{}, fmt.Errorf("sqlite: parse updated_at: %w", err)
	}
	return post, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
