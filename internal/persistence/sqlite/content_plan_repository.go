package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/content-assistant/internal/persistence"
)

// CreateContentPlan inserts a content plan.
func (s *Storage) CreateContentPlan(ctx context.Context, plan persistence.ContentPlan) error {
	if plan.ID == "" {
		return persistence.ErrConstraintViolation
	}

	query := `
		INSERT INTO content_plans (id, user_id, brand_profile_id, plan_name, start_date, end_date, frequency, total_posts, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		plan.ID,
		plan.UserID,
		toNullString(plan.BrandProfileID),
		plan.PlanName,
		formatDate(plan.StartDate),
		formatDate(plan.EndDate),
		plan.Frequency,
		plan.TotalPosts,
		string(plan.Status),
		formatTimestamp(plan.CreatedAt),
		formatTimestamp(plan.UpdatedAt),
	)
	if err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

// UpdateContentPlan rewrites the mutable columns of a plan.
func (s *Storage) UpdateContentPlan(ctx context.Context, plan persistence.ContentPlan) error {
	if plan.ID == "" {
		return persistence.ErrNotFound
	}

	query := `
		UPDATE content_plans
		SET plan_name = ?, start_date = ?, end_date = ?, frequency = ?, total_posts = ?, status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		plan.PlanName,
		formatDate(plan.StartDate),
		formatDate(plan.EndDate),
		plan.Frequency,
		plan.TotalPosts,
		string(plan.Status),
		formatTimestamp(plan.UpdatedAt),
		plan.ID,
	)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

// GetContentPlan retrieves a plan by id.
func (s *Storage) GetContentPlan(ctx context.Context, id string) (persistence.ContentPlan, error) {
	if id == "" {
		return persistence.ContentPlan{}, persistence.ErrNotFound
	}

	row := s.db.QueryRowContext(ctx, contentPlanSelect+" WHERE id = ?", id)
	plan, err := scanContentPlan(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return persistence.ContentPlan{}, persistence.ErrNotFound
		}
		return persistence.ContentPlan{}, err
	}
	return plan, nil
}

// ListContentPlans returns a user's plans, newest first.
func (s *Storage) ListContentPlans(ctx context.Context, userID string) ([]persistence.ContentPlan, error) {
	rows, err := s.db.QueryContext(ctx, contentPlanSelect+" WHERE user_id = ? ORDER BY created_at DESC, id DESC", userID)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer rows.Close()

	var plans []persistence.ContentPlan
	for rows.Next() {
		plan, err := scanContentPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err)
	}
	return plans, nil
}

// DeleteContentPlan removes a plan row only. Cascading deletes of planned
// posts and alarms are the application service's responsibility so the order
// (alarms, posts, plan) stays explicit.
func (s *Storage) DeleteContentPlan(ctx context.Context, id string) error {
	if id == "" {
		return persistence.ErrNotFound
	}
	result, err := s.db.ExecContext(ctx, "DELETE FROM content_plans WHERE id = ?", id)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

const contentPlanSelect = `
	SELECT id, user_id, brand_profile_id, plan_name, start_date, end_date, frequency, total_posts, status, created_at, updated_at
	FROM content_plans
`

func scanContentPlan(scan func(dest ...any) error) (persistence.ContentPlan, error) {
	var plan persistence.ContentPlan
	var brandProfileID sql.NullString
	var startDateStr, endDateStr, status, createdAtStr, updatedAtStr string

	err := scan(
		&plan.ID,
		&plan.UserID,
		&brandProfileID,
		&plan.PlanName,
		&startDateStr,
		&endDateStr,
		&plan.Frequency,
		&plan.TotalPosts,
		&status,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return persistence.ContentPlan{}, err
	}

	plan.BrandProfileID = fromNullString(brandProfileID)
	plan.Status = persistence.ContentPlanStatus(status)

	if plan.StartDate, err = parseDate(startDateStr); err != nil {
		return persistence.ContentPlan{}, fmt.Errorf("sqlite: parse start_date: %w", err)
	}
	if plan.EndDate, err = parseDate(endDateStr); err != nil {
		return persistence.ContentPlan{}, fmt.Errorf("sqlite: parse end_date: %w", err)
	}
	if plan.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return persistence.ContentPlan{}, fmt.Errorf("sqlite: parse created_at: %w", err)
	}
	if plan.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return persistence.ContentPlan{}, fmt.Errorf("sqlite: parse updated_at: %w", err)
	}
	return plan, nil
}
