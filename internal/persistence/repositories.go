package persistence

import "context"

// BrandProfileRepository exposes CRUD operations for brand profiles.
type BrandProfileRepository interface {
	CreateBrandProfile(ctx context.Context, profile BrandProfile) error
	UpdateBrandProfile(ctx context.Context, profile BrandProfile) error
	GetBrandProfile(ctx context.Context, id string) (BrandProfile, error)
	GetBrandProfileForUser(ctx context.Context, userID string) (BrandProfile, error)
	DeleteBrandProfile(ctx context.Context, id string) error
}

// GeneratedContentRepository stores caption-generation results.
type GeneratedContentRepository interface {
	CreateGeneratedContent(ctx context.Context, content GeneratedContent) error
	GetGeneratedContent(ctx context.Context, id string) (GeneratedContent, error)
	ListGeneratedContent(ctx context.Context, userID string, limit int) ([]GeneratedContent, error)
	DeleteGeneratedContent(ctx context.Context, id string) error
}

// ScheduledPostRepository stores posts committed to a publish slot.
type ScheduledPostRepository interface {
	CreateScheduledPost(ctx context.Context, post ScheduledPost) error
	UpdateScheduledPost(ctx context.Context, post ScheduledPost) error
	GetScheduledPost(ctx context.Context, id string) (ScheduledPost, error)
	ListScheduledPosts(ctx context.Context, userID string) ([]ScheduledPost, error)
	DeleteScheduledPost(ctx context.Context, id string) error
}

// PlannedPostRepository stores plan-suggested posts.
type PlannedPostRepository interface {
	CreatePlannedPost(ctx context.Context, post PlannedPost) error
	UpdatePlannedPost(ctx context.Context, post PlannedPost) error
	GetPlannedPost(ctx context.Context, id string) (PlannedPost, error)
	ListPlannedPostsForPlan(ctx context.Context, planID string) ([]PlannedPost, error)
	ListPlannedPostsForUser(ctx context.Context, userID string) ([]PlannedPost, error)
	DeletePlannedPost(ctx context.Context, id string) error
	DeletePlannedPostsForPlan(ctx context.Context, planID string) error
}

// ContentPlanRepository stores content plans that own planned posts.
type ContentPlanRepository interface {
	CreateContentPlan(ctx context.Context, plan ContentPlan) error
	UpdateContentPlan(ctx context.Context, plan ContentPlan) error
	GetContentPlan(ctx context.Context, id string) (ContentPlan, error)
	ListContentPlans(ctx context.Context, userID string) ([]ContentPlan, error)
	DeleteContentPlan(ctx context.Context, id string) error
}

// AlarmRepository stores posting reminders and their status transitions.
type AlarmRepository interface {
	CreateAlarm(ctx context.Context, alarm Alarm) error
	GetAlarm(ctx context.Context, id string) (Alarm, error)
	ListActiveAlarms(ctx context.Context, userID string) ([]Alarm, error)
	ListAllActiveAlarms(ctx context.Context) ([]Alarm, error)
	UpdateAlarmStatus(ctx context.Context, id string, status AlarmStatus) error
	DeleteAlarm(ctx context.Context, id string) error
	DeleteAlarmsForPlannedPosts(ctx context.Context, plannedPostIDs []string) error
	DeleteAlarmsForScheduledPost(ctx context.Context, scheduledPostID string) error
}
