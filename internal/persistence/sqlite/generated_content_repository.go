package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/content-assistant/internal/persistence"
)

// CreateGeneratedContent inserts one caption-generation result.
func (s *Storage) CreateGeneratedContent(ctx context.Context, content persistence.GeneratedContent) error {
	if content.ID == "" {
		return persistence.ErrConstraintViolation
	}

	hashtags, err := marshalStrings(content.Hashtags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO generated_content (id, user_id, brand_profile_id, description, formal_caption, casual_caption, funny_caption, hashtags, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		content.ID,
		content.UserID,
		toNullString(content.BrandProfileID),
		content.Description,
		content.FormalCaption,
		content.CasualCaption,
		content.FunnyCaption,
		hashtags,
		content.ImageURL,
		formatTimestamp(content.CreatedAt),
	)
	if err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

// GetGeneratedContent retrieves one result by id.
func (s *Storage) GetGeneratedContent(ctx context.Context, id string) (persistence.GeneratedContent, error) {
	if id == "" {
		return persistence.GeneratedContent{}, persistence.ErrNotFound
	}

	row := s.db.QueryRowContext(ctx, generatedContentSelect+" WHERE id = ?", id)
	content, err := scanGeneratedContent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.GeneratedContent{}, persistence.ErrNotFound
		}
		return persistence.GeneratedContent{}, err
	}
	return content, nil
}

// ListGeneratedContent returns a user's history, newest first. A limit of zero
// or less means no limit.
func (s *Storage) ListGeneratedContent(ctx context.Context, userID string, limit int) ([]persistence.GeneratedContent, error) {
	query := generatedContentSelect + " WHERE user_id = ? ORDER BY created_at DESC, id DESC"
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer rows.Close()

	var items []persistence.GeneratedContent
	for rows.Next() {
		content, err := scanGeneratedContent(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, content)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err)
	}
	return items, nil
}

// DeleteGeneratedContent removes one result by id.
func (s *Storage) DeleteGeneratedContent(ctx context.Context, id string) error {
	if id == "" {
		return persistence.ErrNotFound
	}
	result, err := s.db.ExecContext(ctx, "DELETE FROM generated_content WHERE id = ?", id)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

const generatedContentSelect = `
	SELECT id, user_id, brand_profile_id, description, formal_caption, casual_caption, funny_caption, hashtags, image_url, created_at
	FROM generated_content
`

func scanGeneratedContent(scan func(dest ...any) error) (persistence.GeneratedContent, error) {
	var content persistence.GeneratedContent
	var brandProfileID sql.NullString
	var hashtags, createdAtStr string

	err := scan(
		&content.ID,
		&content.UserID,
		&brandProfileID,
		&content.Description,
		&content.FormalCaption,
		&content.CasualCaption,
		&content.FunnyCaption,
		&hashtags,
		&content.ImageURL,
		&createdAtStr,
	)
	if err != nil {
		return persistence.GeneratedContent{}, err
	}

	content.BrandProfileID = fromNullString(brandProfileID)
	if content.Hashtags, err = unmarshalStrings(hashtags); err != nil {
		return persistence.GeneratedContent{}, err
	}
	if content.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return persistence.GeneratedContent{}, fmt.Errorf("sqlite: parse created_at: %w", err)
	}
	return content, nil
}
