package schedule

import "time"

// PostSlot is the slice of a scheduled post that matters for collision
// checks: which calendar slot it occupies and where it publishes.
type PostSlot struct {
	PostID    string
	Date      time.Time
	Time      string
	Platforms []string
}

// Conflict records that the candidate collides with an existing post.
// Platform is empty when either side declares no platforms, in which case the
// slot itself is considered contested.
type Conflict struct {
	WithPostID string
	Platform   string
}

// DetectConflicts reports every existing post occupying the candidate's date
// and time. When both sides list platforms, only shared platforms conflict;
// a post without platforms contests the whole slot.
func DetectConflicts(existing []PostSlot, candidate PostSlot) []Conflict {
	var conflicts []Conflict

	candidateDate := truncateToDate(candidate.Date)
	for _, other := range existing {
		if other.PostID == candidate.PostID {
			continue
		}
		if other.Time != candidate.Time || !truncateToDate(other.Date).Equal(candidateDate) {
			continue
		}

		if len(other.Platforms) == 0 || len(candidate.Platforms) == 0 {
			conflicts = append(conflicts, Conflict{WithPostID: other.PostID})
			continue
		}
		for _, platform := range sharedPlatforms(other.Platforms, candidate.Platforms) {
			conflicts = append(conflicts, Conflict{WithPostID: other.PostID, Platform: platform})
		}
	}

	return conflicts
}

func sharedPlatforms(a, b []string) []string {
	set := make(map[string]struct{}, len(a))
	for _, platform := range a {
		set[platform] = struct{}{}
	}

	var shared []string
	for _, platform := range b {
		if _, ok := set[platform]; ok {
			shared = append(shared, platform)
		}
	}
	return shared
}
