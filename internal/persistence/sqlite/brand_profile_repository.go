package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/content-assistant/internal/persistence"
)

// CreateBrandProfile inserts a brand profile.
func (s *Storage) CreateBrandProfile(ctx context.Context, profile persistence.BrandProfile) error {
	if profile.ID == "" {
		return persistence.ErrConstraintViolation
	}

	keyValues, err := marshalStrings(profile.KeyValues)
	if err != nil {
		return err
	}
	samplePosts, err := marshalStrings(profile.SamplePosts)
	if err != nil {
		return err
	}
	contentThemes, err := marshalStrings(profile.ContentThemes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO brand_profiles (id, user_id, name, industry, tone, target_audience, key_values, sample_posts, content_themes, posting_frequency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Name,
		profile.Industry,
		profile.Tone,
		profile.TargetAudience,
		keyValues,
		samplePosts,
		contentThemes,
		profile.PostingFrequency,
		formatTimestamp(profile.CreatedAt),
		formatTimestamp(profile.UpdatedAt),
	)
	if err != nil {
		return mapSQLiteError(err)
	}
	return nil
}

// UpdateBrandProfile rewrites every mutable column of a brand profile.
func (s *Storage) UpdateBrandProfile(ctx context.Context, profile persistence.BrandProfile) error {
	if profile.ID == "" {
		return persistence.ErrNotFound
	}

	keyValues, err := marshalStrings(profile.KeyValues)
	if err != nil {
		return err
	}
	samplePosts, err := marshalStrings(profile.SamplePosts)
	if err != nil {
		return err
	}
	contentThemes, err := marshalStrings(profile.ContentThemes)
	if err != nil {
		return err
	}

	query := `
		UPDATE brand_profiles
		SET name = ?, industry = ?, tone = ?, target_audience = ?, key_values = ?, sample_posts = ?, content_themes = ?, posting_frequency = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		profile.Name,
		profile.Industry,
		profile.Tone,
		profile.TargetAudience,
		keyValues,
		samplePosts,
		contentThemes,
		profile.PostingFrequency,
		formatTimestamp(profile.UpdatedAt),
		profile.ID,
	)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

// GetBrandProfile retrieves a brand profile by id.
func (s *Storage) GetBrandProfile(ctx context.Context, id string) (persistence.BrandProfile, error) {
	if id == "" {
		return persistence.BrandProfile{}, persistence.ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, brandProfileSelect+" WHERE id = ?", id)
	return scanBrandProfile(row)
}

// GetBrandProfileForUser retrieves the most recently updated profile of a user.
func (s *Storage) GetBrandProfileForUser(ctx context.Context, userID string) (persistence.BrandProfile, error) {
	if userID == "" {
		return persistence.BrandProfile{}, persistence.ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, brandProfileSelect+" WHERE user_id = ? ORDER BY updated_at DESC LIMIT 1", userID)
	return scanBrandProfile(row)
}

// DeleteBrandProfile removes a brand profile by id.
func (s *Storage) DeleteBrandProfile(ctx context.Context, id string) error {
	if id == "" {
		return persistence.ErrNotFound
	}
	result, err := s.db.ExecContext(ctx, "DELETE FROM brand_profiles WHERE id = ?", id)
	if err != nil {
		return mapSQLiteError(err)
	}
	return requireRowAffected(result)
}

const brandProfileSelect = `
	SELECT id, user_id, name, industry, tone, target_audience, key_values, sample_posts, content_themes, posting_frequency, created_at, updated_at
	FROM brand_profiles
`

func scanBrandProfile(row *sql.Row) (persistence.BrandProfile, error) {
	var profile persistence.BrandProfile
	var keyValues, samplePosts, contentThemes string
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Name,
		&profile.Industry,
		&profile.Tone,
		&profile.TargetAudience,
		&keyValues,
		&samplePosts,
		&contentThemes,
		&profile.PostingFrequency,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.BrandProfile{}, persistence.ErrNotFound
		}
		return persistence.BrandProfile{}, mapSQLiteError(err)
	}

	if profile.KeyValues, err = unmarshalStrings(keyValues); err != nil {
		return persistence.BrandProfile{}, err
	}
	if profile.SamplePosts, err = unmarshalStrings(samplePosts); err != nil {
		return persistence.BrandProfile{}, err
	}
	if profile.ContentThemes, err = unmarshalStrings(contentThemes); err != nil {
		return persistence.BrandProfile{}, err
	}

	if profile.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return persistence.BrandProfile{}, fmt.Errorf("sqlite: parse created_at: %w", err)
	}
	if profile.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return persistence.BrandProfile{}, fmt.Errorf("sqlite: parse updated_at: %w", err)
	}
	return profile, nil
}
