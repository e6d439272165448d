package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/content-assistant/internal/generator"
	"github.com/example/content-assistant/internal/persistence"
)

// defaultHistoryLimit bounds the generation history listing when the caller
// does not ask for a specific size.
const defaultHistoryLimit = 50

// ContentService runs the generation pipeline and persists its results.
type ContentService struct {
	contents    persistence.GeneratedContentRepository
	brands      persistence.BrandProfileRepository
	generator   *generator.Generator
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewContentService wires dependencies for content generation operations.
func NewContentService(contents persistence.GeneratedContentRepository, brands persistence.BrandProfileRepository, gen *generator.Generator, idGenerator func() string, now func() time.Time, logger *slog.Logger) *ContentService {
	if gen == nil {
		gen = generator.New(nil)
	}
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &ContentService{
		contents:    contents,
		brands:      brands,
		generator:   gen,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

// Generate validates the description, runs the pipeline and persists the
// result. The returned value carries CTA variations and visual suggestions
// that are derived per request and not stored.
func (s *ContentService) Generate(ctx context.Context, user UserContext, params GenerateParams) (GeneratedContentResult, error) {
	logger := serviceLogger(ctx, s.logger, "content", "generate", "user_id", user.UserID)

	vErr := &ValidationError{}
	user.validate(vErr)

	description := strings.TrimSpace(params.Description)
	if err := generator.ValidateDescription(description); err != nil {
		vErr.add("description", err.Error())
	}
	if vErr.HasErrors() {
		logger.Info("content generation rejected", "error_kind", ErrorKind(vErr))
		return GeneratedContentResult{}, vErr
	}

	brand, brandID, err := s.loadBrand(ctx, user, params.BrandProfileID)
	if err != nil {
		return GeneratedContentResult{}, err
	}

	var content generator.Content
	if params.CompanyName != "" || params.ProductName != "" {
		content = s.generator.GenerateStructured(generator.Input{
			CompanyName: params.CompanyName,
			ProductName: params.ProductName,
			Description: description,
		}, brand)
	} else {
		content = s.generator.Generate(description, brand)
	}

	record := persistence.GeneratedContent{
		ID:             s.idGenerator(),
		UserID:         user.UserID,
		BrandProfileID: brandID,
		Description:    description,
		FormalCaption:  content.Formal,
		CasualCaption:  content.Casual,
		FunnyCaption:   content.Funny,
		Hashtags:       content.Hashtags,
		ImageURL:       params.ImageURL,
		CreatedAt:      s.now(),
	}

	if err := s.contents.CreateGeneratedContent(ctx, record); err != nil {
		logger.Error("persist generated content failed", "error", err)
		return GeneratedContentResult{}, fmt.Errorf("persist generated content: %w", err)
	}

	logger.Info("content generated", "content_id", record.ID, "hashtags", len(record.Hashtags))
	return GeneratedContentResult{
		Content:           record,
		CTA:               content.CTA,
		VisualSuggestions: generator.VisualSuggestions(description, brand),
	}, nil
}

// GetContent retrieves one generation result owned by the user.
func (s *ContentService) GetContent(ctx context.Context, user UserContext, id string) (persistence.GeneratedContent, error) {
	content, err := s.contents.GetGeneratedContent(ctx, id)
	if err != nil {
		return persistence.GeneratedContent{}, mapRepoError(err)
	}
	if content.UserID != user.UserID {
		return persistence.GeneratedContent{}, ErrForbidden
	}
	return content, nil
}

// ListHistory returns the user's generation history, newest first.
func (s *ContentService) ListHistory(ctx context.Context, user UserContext, limit int) ([]persistence.GeneratedContent, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	items, err := s.contents.ListGeneratedContent(ctx, user.UserID, limit)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return items, nil
}

// DeleteContent removes one history entry owned by the user.
func (s *ContentService) DeleteContent(ctx context.Context, user UserContext, id string) error {
	logger := serviceLogger(ctx, s.logger, "content", "delete", "user_id", user.UserID, "content_id", id)

	content, err := s.contents.GetGeneratedContent(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if content.UserID != user.UserID {
		return ErrForbidden
	}

	if err := s.contents.DeleteGeneratedContent(ctx, id); err != nil {
		return mapRepoError(err)
	}
	logger.Info("content deleted")
	return nil
}

// Outline builds a structured post outline for the description.
func (s *ContentService) Outline(ctx context.Context, user UserContext, description string) (generator.PostOutline, error) {
	vErr := &ValidationError{}
	user.validate(vErr)
	if err := generator.ValidateDescription(strings.TrimSpace(description)); err != nil {
		vErr.add("description", err.Error())
	}
	if vErr.HasErrors() {
		return generator.PostOutline{}, vErr
	}

	brand, _, err := s.loadBrand(ctx, user, "")
	if err != nil {
		return generator.PostOutline{}, err
	}

	// The outline hook and timing tables are keyed by brand tone, not by the
	// tone detected in the description.
	tone := "casual"
	if brand != nil && brand.Tone != "" {
		tone = brand.Tone
	}
	return s.generator.Outline(description, tone, brand), nil
}

// loadBrand resolves the brand profile used for generation: an explicit id
// must exist and belong to the user; with no id, the user's latest profile is
// used when present.
func (s *ContentService) loadBrand(ctx context.Context, user UserContext, brandProfileID string) (*generator.Brand, *string, error) {
	if s.brands == nil {
		return nil, nil, nil
	}

	if brandProfileID != "" {
		profile, err := s.brands.GetBrandProfile(ctx, brandProfileID)
		if err != nil {
			return nil, nil, mapRepoError(err)
		}
		if profile.UserID != user.UserID {
			return nil, nil, ErrForbidden
		}
		return brandToGenerator(&profile), optionalID(profile.ID), nil
	}

	profile, err := s.brands.GetBrandProfileForUser(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, mapRepoError(err)
	}
	return brandToGenerator(&profile), optionalID(profile.ID), nil
}

// mapRepoError translates persistence sentinels into application sentinels.
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, persistence.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
