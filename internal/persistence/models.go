package persistence

import "time"

// BrandProfile captures the voice and preferences content is generated against.
type BrandProfile struct {
	ID               string
	UserID           string
	Name             string
	Industry         string
	Tone             string
	TargetAudience   string
	KeyValues        []string
	SamplePosts      []string
	ContentThemes    []string
	PostingFrequency string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// GeneratedContent is one caption-generation result persisted verbatim.
type GeneratedContent struct {
	ID             string
	UserID         string
	BrandProfileID *string
	Description    string
	FormalCaption  string
	CasualCaption  string
	FunnyCaption   string
	Hashtags       []string
	ImageURL       string
	CreatedAt      time.Time
}

// ScheduledPostStatus describes the lifecycle of a committed post.
type ScheduledPostStatus string

const (
	ScheduledPostStatusDraft     ScheduledPostStatus = "draft"
	ScheduledPostStatusScheduled ScheduledPostStatus = "scheduled"
	ScheduledPostStatusPublished ScheduledPostStatus = "published"
	ScheduledPostStatusFailed    ScheduledPostStatus = "failed"
)

// ScheduledPost is a post committed to a specific publish date and time,
// independent of the planning flow.
type ScheduledPost struct {
	ID                 string
	UserID             string
	BrandProfileID     *string
	GeneratedContentID *string
	Title              string
	Caption            string
	Hashtags           []string
	Platforms          []string
	ImageURL           string
	ScheduledDate      time.Time
	ScheduledTime      string
	Timezone           string
	Status             ScheduledPostStatus
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PlannedPostStatus describes the lifecycle of a plan-suggested post.
type PlannedPostStatus string

const (
	PlannedPostStatusSuggested PlannedPostStatus = "suggested"
	PlannedPostStatusApproved  PlannedPostStatus = "approved"
	PlannedPostStatusGenerated PlannedPostStatus = "generated"
	PlannedPostStatusScheduled PlannedPostStatus = "scheduled"
	PlannedPostStatusPosted    PlannedPostStatus = "posted"
)

// PlannedPost is a post suggested by the content plan builder. It may later
// gain generated caption and hashtags without changing identity.
type PlannedPost struct {
	ID               string
	ContentPlanID    string
	UserID           string
	Title            string
	SuggestedDate    time.Time
	SuggestedTime    string
	Rationale        string
	ContentGenerated bool
	Caption          string
	Hashtags         []string
	Platforms        []string
	ImageURL         string
	Status           PlannedPostStatus
	OrderInPlan      int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ContentPlanStatus describes the lifecycle of a content plan.
type ContentPlanStatus string

const (
	ContentPlanStatusDraft     ContentPlanStatus = "draft"
	ContentPlanStatusActive    ContentPlanStatus = "active"
	ContentPlanStatusCompleted ContentPlanStatus = "completed"
	ContentPlanStatusArchived  ContentPlanStatus = "archived"
)

// ContentPlan groups the planned posts generated for one planning run.
type ContentPlan struct {
	ID             string
	UserID         string
	BrandProfileID *string
	PlanName       string
	StartDate      time.Time
	EndDate        time.Time
	Frequency      string
	TotalPosts     int
	Status         ContentPlanStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AlarmStatus describes the alarm state machine: active -> triggered ->
// dismissed, with active -> dismissed also allowed via direct user dismissal.
type AlarmStatus string

const (
	AlarmStatusActive    AlarmStatus = "active"
	AlarmStatusTriggered AlarmStatus = "triggered"
	AlarmStatusDismissed AlarmStatus = "dismissed"
)

// Alarm is a posting reminder, optionally back-referencing the post it was
// created for. At most one of ScheduledPostID / PlannedPostID is set.
type Alarm struct {
	ID                  string
	UserID              string
	Title               string
	AlarmAt             time.Time
	ScheduledPostID     *string
	PlannedPostID       *string
	Status              AlarmStatus
	SoundEnabled        bool
	NotificationEnabled bool
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
