package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/content-assistant/internal/persistence"
)

// BrandService manages the brand profiles generation and planning read from.
type BrandService struct {
	brands      persistence.BrandProfileRepository
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewBrandService wires dependencies for brand profile operations.
func NewBrandService(brands persistence.BrandProfileRepository, idGenerator func() string, now func() time.Time, logger *slog.Logger) *BrandService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &BrandService{
		brands:      brands,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

// CreateProfile persists a new brand profile for the user.
func (s *BrandService) CreateProfile(ctx context.Context, user UserContext, params BrandProfileParams) (persistence.BrandProfile, error) {
	logger := serviceLogger(ctx, s.logger, "brand", "create", "user_id", user.UserID)

	vErr := &ValidationError{}
	user.validate(vErr)
	if strings.TrimSpace(params.Name) == "" {
		vErr.add("name", "brand name is required")
	}
	if vErr.HasErrors() {
		return persistence.BrandProfile{}, vErr
	}

	now := s.now()
	profile := persistence.BrandProfile{
		ID:               s.idGenerator(),
		UserID:           user.UserID,
		Name:             strings.TrimSpace(params.Name),
		Industry:         params.Industry,
		Tone:             params.Tone,
		TargetAudience:   params.TargetAudience,
		KeyValues:        params.KeyValues,
		SamplePosts:      params.SamplePosts,
		ContentThemes:    params.ContentThemes,
		PostingFrequency: params.PostingFrequency,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.brands.CreateBrandProfile(ctx, profile); err != nil {
		logger.Error("persist brand profile failed", "error", err)
		return persistence.BrandProfile{}, fmt.Errorf("persist brand profile: %w", err)
	}

	logger.Info("brand profile created", "brand_profile_id", profile.ID)
	return profile, nil
}

// UpdateProfile rewrites an existing profile's mutable fields.
func (s *BrandService) UpdateProfile(ctx context.Context, user UserContext, id string, params BrandProfileParams) (persistence.BrandProfile, error) {
	vErr := &ValidationError{}
	user.validate(vErr)
	if strings.TrimSpace(params.Name) == "" {
		vErr.add("name", "brand name is required")
	}
	if vErr.HasErrors() {
		return persistence.BrandProfile{}, vErr
	}

	profile, err := s.brands.GetBrandProfile(ctx, id)
	if err != nil {
		return persistence.BrandProfile{}, mapRepoError(err)
	}
	if profile.UserID != user.UserID {
		return persistence.BrandProfile{}, ErrForbidden
	}

	profile.Name = strings.TrimSpace(params.Name)
	profile.Industry = params.Industry
	profile.Tone = params.Tone
	profile.TargetAudience = params.TargetAudience
	profile.KeyValues = params.KeyValues
	profile.SamplePosts = params.SamplePosts
	profile.ContentThemes = params.ContentThemes
	profile.PostingFrequency = params.PostingFrequency
	profile.UpdatedAt = s.now()

	if err := s.brands.UpdateBrandProfile(ctx, profile); err != nil {
		return persistence.BrandProfile{}, mapRepoError(err)
	}
	return profile, nil
}

// GetProfile returns the user's current brand profile.
func (s *BrandService) GetProfile(ctx context.Context, user UserContext) (persistence.BrandProfile, error) {
	profile, err := s.brands.GetBrandProfileForUser(ctx, user.UserID)
	if err != nil {
		return persistence.BrandProfile{}, mapRepoError(err)
	}
	return profile, nil
}

// DeleteProfile removes a profile owned by the user.
func (s *BrandService) DeleteProfile(ctx context.Context, user UserContext, id string) error {
	profile, err := s.brands.GetBrandProfile(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if profile.UserID != user.UserID {
		return ErrForbidden
	}
	return mapRepoError(s.brands.DeleteBrandProfile(ctx, id))
}
