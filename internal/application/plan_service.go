package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/content-assistant/internal/generator"
	"github.com/example/content-assistant/internal/persistence"
	"github.com/example/content-assistant/internal/planner"
)

// defaultAlarmTime is the reminder time attached to plan posts when the
// caller enables alarms without choosing one.
const defaultAlarmTime = "09:00"

// PlanService builds content plans and owns their three-step persistence
// sequence: plan, posts, alarms. The sequence is deliberately non-atomic; a
// failed step aborts later steps but never rolls back earlier ones.
type PlanService struct {
	plans       persistence.ContentPlanRepository
	posts       persistence.PlannedPostRepository
	alarms      persistence.AlarmRepository
	brands      persistence.BrandProfileRepository
	generator   *generator.Generator
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewPlanService wires dependencies for content plan operations.
func NewPlanService(plans persistence.ContentPlanRepository, posts persistence.PlannedPostRepository, alarms persistence.AlarmRepository, brands persistence.BrandProfileRepository, gen *generator.Generator, idGenerator func() string, now func() time.Time, logger *slog.Logger) *PlanService {
	if gen == nil {
		gen = generator.New(nil)
	}
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &PlanService{
		plans:       plans,
		posts:       posts,
		alarms:      alarms,
		brands:      brands,
		generator:   gen,
		idGenerator: idGenerator,
		now:         now,
		logger:      defaultLogger(logger),
	}
}

// CreatePlan builds a plan with the planner and persists it in three steps:
// the plan row, then every planned post, then one alarm per post when alarms
// are requested. Later steps abort on failure with earlier writes kept.
func (s *PlanService) CreatePlan(ctx context.Context, user UserContext, params CreatePlanParams) (PlanResult, error) {
	logger := serviceLogger(ctx, s.logger, "plan", "create", "user_id", user.UserID)

	vErr := &ValidationError{}
	user.validate(vErr)
	if params.Weeks < 1 {
		vErr.add("weeks", "must be at least 1")
	}
	if params.PostsPerWeek < 1 || params.PostsPerWeek > 7 {
		vErr.add("posts_per_week", "must be between 1 and 7")
	}
	if vErr.HasErrors() {
		return PlanResult{}, vErr
	}

	start := params.StartDate
	if start.IsZero() {
		start = s.now()
	}

	profile, brandID, err := s.loadBrand(ctx, user, params.BrandProfileID)
	if err != nil {
		return PlanResult{}, err
	}

	built := planner.GenerateContentPlan(start, params.Weeks, params.PostsPerWeek, params.Platforms, plannerBrand(profile))

	now := s.now()
	plan := persistence.ContentPlan{
		ID:             s.idGenerator(),
		UserID:         user.UserID,
		BrandProfileID: brandID,
		PlanName:       built.PlanName,
		StartDate:      built.StartDate,
		EndDate:        built.EndDate,
		Frequency:      built.Frequency,
		TotalPosts:     built.TotalPosts,
		Status:         persistence.ContentPlanStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.plans.CreateContentPlan(ctx, plan); err != nil {
		logger.Error("persist plan failed", "error", err)
		return PlanResult{}, fmt.Errorf("persist content plan: %w", err)
	}

	posts := make([]persistence.PlannedPost, 0, len(built.Posts))
	for _, suggested := range built.Posts {
		post := persistence.PlannedPost{
			ID:            s.idGenerator(),
			ContentPlanID: plan.ID,
			UserID:        user.UserID,
			Title:         suggested.Title,
			SuggestedDate: suggested.Date,
			SuggestedTime: suggested.Time,
			Rationale:     suggested.Rationale,
			Platforms:     suggested.Platforms,
			Status:        persistence.PlannedPostStatusSuggested,
			OrderInPlan:   suggested.OrderInPlan,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.posts.CreatePlannedPost(ctx, post); err != nil {
			logger.Error("persist planned post failed", "error", err, "plan_id", plan.ID, "order", post.OrderInPlan)
			return PlanResult{}, fmt.Errorf("persist planned post: %w", err)
		}
		posts = append(posts, post)
	}

	if params.CreateAlarms {
		alarmTime := params.AlarmTime
		if alarmTime == "" {
			alarmTime = defaultAlarmTime
		}
		for _, post := range posts {
			alarmAt, err := combineDateAndTime(post.SuggestedDate, alarmTime)
			if err != nil {
				timeErr := &ValidationError{}
				timeErr.add("alarm_time", "must be HH:MM")
				return PlanResult{}, timeErr
			}

			postID := post.ID
			alarm := persistence.Alarm{
				ID:                  s.idGenerator(),
				UserID:              user.UserID,
				Title:               "Time to post: " + post.Title,
				AlarmAt:             alarmAt,
				PlannedPostID:       &postID,
				Status:              persistence.AlarmStatusActive,
				SoundEnabled:        true,
				NotificationEnabled: true,
				Notes:               post.Rationale,
				CreatedAt:           now,
				UpdatedAt:           now,
			}
			if err := s.alarms.CreateAlarm(ctx, alarm); err != nil {
				logger.Error("persist plan alarm failed", "error", err, "plan_id", plan.ID, "planned_post_id", post.ID)
				return PlanResult{}, fmt.Errorf("persist plan alarm: %w", err)
			}
		}
	}

	logger.Info("plan created", "plan_id", plan.ID, "posts", len(posts), "alarms", params.CreateAlarms)
	return PlanResult{Plan: plan, Posts: posts, Insights: built.Insights}, nil
}

// GetPlan retrieves a plan and its posts in plan order.
func (s *PlanService) GetPlan(ctx context.Context, user UserContext, id string) (PlanResult, error) {
	plan, err := s.plans.GetContentPlan(ctx, id)
	if err != nil {
		return PlanResult{}, mapRepoError(err)
	}
	if plan.UserID != user.UserID {
		return PlanResult{}, ErrForbidden
	}

	posts, err := s.posts.ListPlannedPostsForPlan(ctx, plan.ID)
	if err != nil {
		return PlanResult{}, mapRepoError(err)
	}
	return PlanResult{Plan: plan, Posts: posts}, nil
}

// ListPlans returns the user's plans, newest first.
func (s *PlanService) ListPlans(ctx context.Context, user UserContext) ([]persistence.ContentPlan, error) {
	plans, err := s.plans.ListContentPlans(ctx, user.UserID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return plans, nil
}

// DeletePlan removes a plan and everything hanging off it: alarms referencing
// its posts first, then the posts, then the plan row. The order keeps no
// dangling back-references if a later step fails.
func (s *PlanService) DeletePlan(ctx context.Context, user UserContext, id string) error {
	logger := serviceLogger(ctx, s.logger, "plan", "delete", "user_id", user.UserID, "plan_id", id)

	plan, err := s.plans.GetContentPlan(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if plan.UserID != user.UserID {
		return ErrForbidden
	}

	posts, err := s.posts.ListPlannedPostsForPlan(ctx, plan.ID)
	if err != nil {
		return mapRepoError(err)
	}

	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	if err := s.alarms.DeleteAlarmsForPlannedPosts(ctx, postIDs); err != nil {
		logger.Error("delete plan alarms failed", "error", err)
		return fmt.Errorf("delete plan alarms: %w", err)
	}
	if err := s.posts.DeletePlannedPostsForPlan(ctx, plan.ID); err != nil {
		logger.Error("delete planned posts failed", "error", err)
		return fmt.Errorf("delete planned posts: %w", err)
	}
	if err := s.plans.DeleteContentPlan(ctx, plan.ID); err != nil {
		return mapRepoError(err)
	}

	logger.Info("plan deleted", "posts", len(posts))
	return nil
}

// GenerateContentForPost runs the generator over "<title>. <rationale>" and
// patches the planned post with the casual caption and hashtags.
func (s *PlanService) GenerateContentForPost(ctx context.Context, user UserContext, planID, postID string) (persistence.PlannedPost, error) {
	logger := serviceLogger(ctx, s.logger, "plan", "generate_post_content", "user_id", user.UserID, "planned_post_id", postID)

	post, err := s.posts.GetPlannedPost(ctx, postID)
	if err != nil {
		return persistence.PlannedPost{}, mapRepoError(err)
	}
	if post.UserID != user.UserID {
		return persistence.PlannedPost{}, ErrForbidden
	}
	if planID != "" && post.ContentPlanID != planID {
		return persistence.PlannedPost{}, ErrNotFound
	}

	profile, _, err := s.loadBrand(ctx, user, "")
	if err != nil {
		return persistence.PlannedPost{}, err
	}
	brand := brandToGenerator(profile)

	description := post.Title
	if strings.TrimSpace(post.Rationale) != "" {
		description += ". " + post.Rationale
	}
	content := s.generator.Generate(description, brand)

	post.Caption = content.Casual
	post.Hashtags = content.Hashtags
	post.ContentGenerated = true
	post.Status = persistence.PlannedPostStatusGenerated
	post.UpdatedAt = s.now()

	if err := s.posts.UpdatePlannedPost(ctx, post); err != nil {
		return persistence.PlannedPost{}, mapRepoError(err)
	}

	logger.Info("planned post content generated", "hashtags", len(post.Hashtags))
	return post, nil
}

// UpdatePostStatus transitions one planned post through its lifecycle.
func (s *PlanService) UpdatePostStatus(ctx context.Context, user UserContext, postID string, status persistence.PlannedPostStatus) (persistence.PlannedPost, error) {
	switch status {
	case persistence.PlannedPostStatusSuggested,
		persistence.PlannedPostStatusApproved,
		persistence.PlannedPostStatusGenerated,
		persistence.PlannedPostStatusScheduled,
		persistence.PlannedPostStatusPosted:
	default:
		vErr := &ValidationError{}
		vErr.add("status", "unknown planned post status")
		return persistence.PlannedPost{}, vErr
	}

	post, err := s.posts.GetPlannedPost(ctx, postID)
	if err != nil {
		return persistence.PlannedPost{}, mapRepoError(err)
	}
	if post.UserID != user.UserID {
		return persistence.PlannedPost{}, ErrForbidden
	}

	post.Status = status
	post.UpdatedAt = s.now()
	if err := s.posts.UpdatePlannedPost(ctx, post); err != nil {
		return persistence.PlannedPost{}, mapRepoError(err)
	}
	return post, nil
}

// FrequencyRecommendations returns cadence options tuned to the user's brand
// industry when a profile exists.
func (s *PlanService) FrequencyRecommendations(ctx context.Context, user UserContext) ([]planner.FrequencyOption, error) {
	industry := ""
	if profile, _, err := s.loadBrand(ctx, user, ""); err == nil && profile != nil {
		industry = profile.Industry
	}
	return planner.FrequencyRecommendations(industry), nil
}

func (s *PlanService) loadBrand(ctx context.Context, user UserContext, brandProfileID string) (*persistence.BrandProfile, *string, error) {
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
		return &profile, optionalID(profile.ID), nil
	}

	profile, err := s.brands.GetBrandProfileForUser(ctx, user.UserID)
	if err != nil {
		return nil, nil, nil
	}
	return &profile, optionalID(profile.ID), nil
}

func plannerBrand(profile *persistence.BrandProfile) *planner.Brand {
	if profile == nil {
		return nil
	}
	return &planner.Brand{
		ContentThemes:  profile.ContentThemes,
		TargetAudience: profile.TargetAudience,
	}
}

// combineDateAndTime merges a date with an "HH:MM" clock value in the date's
// location.
func combineDateAndTime(date time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time of day %q: %w", clock, err)
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}
