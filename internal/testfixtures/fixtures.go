package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/content-assistant/internal/persistence"
)

var (
	brandCounter     uint64
	contentCounter   uint64
	planCounter      uint64
	plannedCounter   uint64
	scheduledCounter uint64
	alarmCounter     uint64
)

var referenceTime = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// BrandProfile materialises a deterministic brand profile row.
func BrandProfile(userID string) persistence.BrandProfile {
	n := atomic.AddUint64(&brandCounter, 1)
	return persistence.BrandProfile{
		ID:               fmt.Sprintf("brand-%d", n),
		UserID:           userID,
		Name:             fmt.Sprintf("Brand %d", n),
		Industry:         "Tech",
		Tone:             "casual",
		TargetAudience:   "young professionals",
		KeyValues:        []string{"innovation", "sustainability"},
		ContentThemes:    []string{"Product Deep Dive"},
		PostingFrequency: "3x_week",
		CreatedAt:        referenceTime,
		UpdatedAt:        referenceTime,
	}
}

// GeneratedContent materialises a deterministic generation result row.
func GeneratedContent(userID string) persistence.GeneratedContent {
	n := atomic.AddUint64(&contentCounter, 1)
	return persistence.GeneratedContent{
		ID:            fmt.Sprintf("content-%d", n),
		UserID:        userID,
		Description:   fmt.Sprintf("Launching product number %d", n),
		FormalCaption: "We are pleased to announce our latest offering.",
		CasualCaption: "Big news! Check out what we just dropped ✨",
		FunnyCaption:  "We made a thing. It is good. Trust us.",
		Hashtags:      []string{"#Launch", "#NewBeginnings"},
		CreatedAt:     referenceTime,
	}
}

// ContentPlan materialises a deterministic plan row.
func ContentPlan(userID string) persistence.ContentPlan {
	n := atomic.AddUint64(&planCounter, 1)
	start := referenceTime.Truncate(24 * time.Hour)
	return persistence.ContentPlan{
		ID:         fmt.Sprintf("plan-%d", n),
		UserID:     userID,
		PlanName:   "Content Plan",
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 14),
		Frequency:  "3x per week",
		TotalPosts: 6,
		Status:     persistence.ContentPlanStatusActive,
		CreatedAt:  referenceTime,
		UpdatedAt:  referenceTime,
	}
}

// PlannedPost materialises a deterministic planned post row for a plan.
func PlannedPost(userID, planID string, order int) persistence.PlannedPost {
	n := atomic.AddUint64(&plannedCounter, 1)
	return persistence.PlannedPost{
		ID:            fmt.Sprintf("planned-%d", n),
		ContentPlanID: planID,
		UserID:        userID,
		Title:         "Educational Post",
		SuggestedDate: referenceTime.AddDate(0, 0, order),
		SuggestedTime: "11:00",
		Rationale:     "Wednesday: Peak engagement time - users check during lunch break",
		Platforms:     []string{"instagram"},
		Status:        persistence.PlannedPostStatusSuggested,
		OrderInPlan:   order,
		CreatedAt:     referenceTime,
		UpdatedAt:     referenceTime,
	}
}

// ScheduledPost materialises a deterministic scheduled post row.
func ScheduledPost(userID string) persistence.ScheduledPost {
	n := atomic.AddUint64(&scheduledCounter, 1)
	return persistence.ScheduledPost{
		ID:            fmt.Sprintf("scheduled-%d", n),
		UserID:        userID,
		Title:         fmt.Sprintf("Scheduled post %d", n),
		Caption:       "Big news! Check out what we just dropped ✨",
		Hashtags:      []string{"#Launch"},
		Platforms:     []string{"instagram", "twitter"},
		ScheduledDate: referenceTime.AddDate(0, 0, 3),
		ScheduledTime: "18:00",
		Timezone:      "UTC",
		Status:        persistence.ScheduledPostStatusScheduled,
		CreatedAt:     referenceTime,
		UpdatedAt:     referenceTime,
	}
}

// Alarm materialises a deterministic active alarm row.
func Alarm(userID string) persistence.Alarm {
	n := atomic.AddUint64(&alarmCounter, 1)
	return persistence.Alarm{
		ID:                  fmt.Sprintf("alarm-%d", n),
		UserID:              userID,
		Title:               fmt.Sprintf("Time to post: Scheduled post %d", n),
		AlarmAt:             referenceTime.Add(time.Hour),
		Status:              persistence.AlarmStatusActive,
		SoundEnabled:        true,
		NotificationEnabled: true,
		CreatedAt:           referenceTime,
		UpdatedAt:           referenceTime,
	}
}
