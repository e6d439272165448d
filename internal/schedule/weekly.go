// Package schedule computes posting slots: the fixed-priority weekly
// schedule, recurring date series, and next-occurrence weekday arithmetic.
package schedule

import (
	"sort"
	"strings"
	"time"
)

// Slot is a (weekday, time-of-day) pairing projected onto a concrete date.
type Slot struct {
	Date time.Time
	Day  time.Weekday
	Time string
}

// bestPostingSchedule is the priority-ordered weekday/time table. The first K
// entries govern a K-post week; the order encodes engagement priority, not
// calendar order.
var bestPostingSchedule = []struct {
	day  time.Weekday
	time string
}{
	{time.Friday, "18:00"},
	{time.Wednesday, "12:00"},
	{time.Tuesday, "10:00"},
	{time.Thursday, "15:00"},
	{time.Saturday, "11:00"},
	{time.Monday, "09:00"},
	{time.Sunday, "19:00"},
}

// GenerateWeeklySchedule selects the first numberOfPosts entries of the
// priority table (clamped to 1..7) and projects each onto the next occurrence
// of its weekday on or after start. Same-day counts as occurring; a slot is
// never pushed a full week forward unnecessarily. Slots are returned sorted
// ascending by date.
func GenerateWeeklySchedule(start time.Time, numberOfPosts int) []Slot {
	if numberOfPosts < 1 {
		numberOfPosts = 1
	}
	if numberOfPosts > len(bestPostingSchedule) {
		numberOfPosts = len(bestPostingSchedule)
	}

	startDay := truncateToDate(start)
	slots := make([]Slot, 0, numberOfPosts)

	for _, entry := range bestPostingSchedule[:numberOfPosts] {
		daysUntil := int(entry.day) - int(startDay.Weekday())
		if daysUntil < 0 {
			daysUntil += 7
		}
		slots = append(slots, Slot{
			Date: startDay.AddDate(0, 0, daysUntil),
			Day:  entry.day,
			Time: entry.time,
		})
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Date.Before(slots[j].Date) })
	return slots
}

// Frequency selects the step between recurring posting dates.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// GenerateRecurringSchedule produces numberOfPosts dates on the preferred
// weekday, starting from its first occurrence on or after start and stepping
// by the frequency. Monthly steps clamp to the last day of shorter months.
func GenerateRecurringSchedule(start time.Time, frequency Frequency, preferredDay time.Weekday, numberOfPosts int) []time.Time {
	current := truncateToDate(start)
	if daysToAdd := (int(preferredDay) - int(current.Weekday()) + 7) % 7; daysToAdd > 0 {
		current = current.AddDate(0, 0, daysToAdd)
	}

	dates := make([]time.Time, 0, numberOfPosts)
	for i := 0; i < numberOfPosts; i++ {
		dates = append(dates, current)

		switch frequency {
		case FrequencyBiweekly:
			current = current.AddDate(0, 0, 14)
		case FrequencyMonthly:
			current = addMonthClamped(current)
		default:
			current = current.AddDate(0, 0, 7)
		}
	}
	return dates
}

// addMonthClamped advances one calendar month, clamping day-of-month to the
// target month's length (Jan 31 -> Feb 28, not Mar 3).
func addMonthClamped(date time.Time) time.Time {
	year, month, day := date.Date()
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, date.Location())
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, date.Location())
}

// NextOccurrence returns the next date falling on the given weekday strictly
// after from: when from is already that weekday, the result is a week later.
func NextOccurrence(day time.Weekday, from time.Time) time.Time {
	daysUntil := (int(day) - int(from.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return from.AddDate(0, 0, daysUntil)
}

// FormatSchedulePreview renders dates as "Mon, Jan 2, 2006 at 15:04" strings.
func FormatSchedulePreview(dates []time.Time, timeOfDay string) []string {
	preview := make([]string, 0, len(dates))
	for _, date := range dates {
		preview = append(preview, date.Format("Mon, Jan 2, 2006")+" at "+timeOfDay)
	}
	return preview
}

// DayName returns the lower-case weekday name used in rationale and notes
// strings ("friday", not "Friday").
func DayName(day time.Weekday) string {
	return strings.ToLower(day.String())
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
