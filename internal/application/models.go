package application

import (
	"strings"
	"time"

	"github.com/example/content-assistant/internal/generator"
	"github.com/example/content-assistant/internal/persistence"
)

// UserContext identifies the acting user. The id is an opaque client-supplied
// token; there is no authentication behind it.
type UserContext struct {
	UserID string
}

func (u UserContext) validate(vErr *ValidationError) {
	if strings.TrimSpace(u.UserID) == "" {
		vErr.add("user_id", "user id is required")
	}
}

// GenerateParams is one caption-generation request.
type GenerateParams struct {
	Description    string
	CompanyName    string
	ProductName    string
	BrandProfileID string
	ImageURL       string
}

// GeneratedContentResult pairs the persisted row with derived extras that are
// computed per request and never stored.
type GeneratedContentResult struct {
	Content           persistence.GeneratedContent
	CTA               generator.CTAVariations
	VisualSuggestions []generator.VisualSuggestion
}

// CreatePlanParams is one content-plan build request.
type CreatePlanParams struct {
	StartDate      time.Time
	Weeks          int
	PostsPerWeek   int
	Platforms      []string
	BrandProfileID string
	CreateAlarms   bool
	AlarmTime      string
}

// PlanResult bundles a plan with its posts and derived insights.
type PlanResult struct {
	Plan     persistence.ContentPlan
	Posts    []persistence.PlannedPost
	Insights []string
}

// SchedulePostParams is one direct scheduling request.
type SchedulePostParams struct {
	Title              string
	Caption            string
	Hashtags           []string
	Platforms          []string
	ImageURL           string
	ScheduledDate      time.Time
	ScheduledTime      string
	Timezone           string
	Notes              string
	BrandProfileID     string
	GeneratedContentID string
	CreateAlarm        bool
}

// WeeklyScheduleParams drives the weekly slot generator.
type WeeklyScheduleParams struct {
	StartDate     time.Time
	NumberOfPosts int
	Caption       string
	Hashtags      []string
	Platforms     []string
	Timezone      string
}

// CreateAlarmParams is one standalone alarm request. At most one of
// ScheduledPostID / PlannedPostID may be set.
type CreateAlarmParams struct {
	Title               string
	AlarmAt             time.Time
	ScheduledPostID     string
	PlannedPostID       string
	SoundEnabled        bool
	NotificationEnabled bool
	Notes               string
}

// BrandProfileParams carries the mutable fields of a brand profile.
type BrandProfileParams struct {
	Name             string
	Industry         string
	Tone             string
	TargetAudience   string
	KeyValues        []string
	SamplePosts      []string
	ContentThemes    []string
	PostingFrequency string
}

func optionalID(id string) *string {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &id
}

func brandToGenerator(profile *persistence.BrandProfile) *generator.Brand {
	if profile == nil {
		return nil
	}
	return &generator.Brand{
		Name:           profile.Name,
		Industry:       profile.Industry,
		Tone:           profile.Tone,
		TargetAudience: profile.TargetAudience,
		KeyValues:      profile.KeyValues,
		ContentThemes:  profile.ContentThemes,
	}
}
