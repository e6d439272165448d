// Package planner builds multi-week content plans: it distributes posts
// across fixed optimal days, assigns platform-specific times and themes, and
// derives plan-level insights.
package planner

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Brand is the slice of a brand profile the planner reads.
type Brand struct {
	ContentThemes  []string
	TargetAudience string
}

// PlannedPost is one suggested post inside a plan.
type PlannedPost struct {
	Title       string
	Date        time.Time
	Time        string
	Rationale   string
	Platforms   []string
	OrderInPlan int
}

// Plan is the full output of one planning run.
type Plan struct {
	PlanName   string
	StartDate  time.Time
	EndDate    time.Time
	Frequency  string
	Posts      []PlannedPost
	TotalPosts int
	Insights   []string
}

// optimalDayOffsets maps a per-week post count to day offsets from the week
// start (0 = week start). The spread keeps posts off back-to-back days where
// the count allows.
var optimalDayOffsets = map[int][]int{
	1: {2},
	2: {1, 4},
	3: {1, 3, 5},
	4: {1, 2, 4, 5},
	5: {1, 2, 3, 4, 5},
	6: {1, 2, 3, 4, 5, 6},
	7: {0, 1, 2, 3, 4, 5, 6},
}

var baseThemes = []string{
	"Educational",
	"Behind the Scenes",
	"Product Showcase",
	"Customer Story",
	"Industry Insight",
	"Tip & Trick",
	"Inspiration",
	"Company Update",
	"User-Generated Content",
	"Trending Topic",
}

// GenerateContentPlan distributes weeks*postsPerWeek posts over the window
// starting at start. Each week draws its day offsets from the lookup table,
// its times from the primary platform's timing table (cyclic), and its themes
// from the brand's custom themes followed by the baseline set (cyclic).
func GenerateContentPlan(start time.Time, weeks, postsPerWeek int, platforms []string, brand *Brand) Plan {
	startDay := truncateToDate(start)
	endDate := startDay.AddDate(0, 0, weeks*7)

	totalPlanned := weeks * postsPerWeek
	posts := make([]PlannedPost, 0, totalPlanned)

	weekStart := startDay
	for week := 0; week < weeks; week++ {
		postsThisWeek := postsPerWeek
		if remaining := totalPlanned - len(posts); postsThisWeek > remaining {
			postsThisWeek = remaining
		}

		for _, post := range distributePostsInWeek(weekStart, postsThisWeek, platforms, brand) {
			post.OrderInPlan = len(posts)
			posts = append(posts, post)
		}

		weekStart = weekStart.AddDate(0, 0, 7)
	}

	return Plan{
		PlanName:   "Content Plan",
		StartDate:  startDay,
		EndDate:    endDate,
		Frequency:  fmt.Sprintf("%dx per week", postsPerWeek),
		Posts:      posts,
		TotalPosts: len(posts),
		Insights:   planInsights(posts, postsPerWeek, platforms, brand),
	}
}

func distributePostsInWeek(weekStart time.Time, postsCount int, platforms []string, brand *Brand) []PlannedPost {
	primaryPlatform := "instagram"
	if len(platforms) > 0 && platforms[0] != "" {
		primaryPlatform = platforms[0]
	}
	timings := platformTimings(primaryPlatform)
	themes := contentThemes(brand)

	offsets, ok := optimalDayOffsets[postsCount]
	if !ok {
		offsets = optimalDayOffsets[3]
	}

	posts := make([]PlannedPost, 0, len(offsets))
	for index, dayOffset := range offsets {
		postDate := weekStart.AddDate(0, 0, dayOffset)
		timing := timings[index%len(timings)]
		theme := themes[index%len(themes)]

		posts = append(posts, PlannedPost{
			Title:     theme + " Post",
			Date:      postDate,
			Time:      timing.Time,
			Rationale: fmt.Sprintf("%s: %s", postDate.Weekday(), timing.Reason),
			Platforms: platforms,
		})
	}
	return posts
}

func contentThemes(brand *Brand) []string {
	if brand != nil && len(brand.ContentThemes) > 0 {
		return append(append([]string(nil), brand.ContentThemes...), baseThemes...)
	}
	return baseThemes
}

func planInsights(posts []PlannedPost, postsPerWeek int, platforms []string, brand *Brand) []string {
	insights := make([]string, 0, 6)

	weeks := int(math.Ceil(float64(len(posts)) / float64(postsPerWeek)))
	insights = append(insights, fmt.Sprintf("📅 %d posts planned across %d weeks", len(posts), weeks))

	if day, count, ok := mostFrequentWeekday(posts); ok {
		insights = append(insights, fmt.Sprintf("📊 Most posts scheduled on %ss (%d posts)", day, count))
	}

	if len(platforms) > 1 {
		insights = append(insights, fmt.Sprintf("🎯 Cross-posting to %d platforms for maximum reach", len(platforms)))
	}

	insights = append(insights, fmt.Sprintf("⏰ Average %s between posts for consistent engagement", averageGap(posts)))

	if postsPerWeek >= 3 {
		insights = append(insights, "✅ Optimal frequency for algorithm favor and audience engagement")
	}

	if brand != nil && brand.TargetAudience != "" {
		insights = append(insights, "🎯 Timing optimized for your target audience behavior patterns")
	}

	return insights
}

func mostFrequentWeekday(posts []PlannedPost) (time.Weekday, int, bool) {
	if len(posts) == 0 {
		return time.Sunday, 0, false
	}

	counts := make(map[time.Weekday]int)
	for _, post := range posts {
		counts[post.Date.Weekday()]++
	}

	// Walk the posts rather than the map so ties resolve to the
	// first-encountered day.
	best := posts[0].Date.Weekday()
	for _, post := range posts {
		if day := post.Date.Weekday(); counts[day] > counts[best] {
			best = day
		}
	}
	return best, counts[best], true
}

// averageGap reports the rounded mean of consecutive date-sorted differences.
func averageGap(posts []PlannedPost) string {
	if len(posts) < 2 {
		return "0 days"
	}

	sorted := append([]PlannedPost(nil), posts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	totalDays := 0
	for i := 1; i < len(sorted); i++ {
		totalDays += int(sorted[i].Date.Sub(sorted[i-1].Date).Hours() / 24)
	}

	avgDays := int(math.Round(float64(totalDays) / float64(len(sorted)-1)))
	switch avgDays {
	case 0:
		return "same day"
	case 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", avgDays)
	}
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
