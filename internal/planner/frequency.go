package planner

// FrequencyOption describes one posting-cadence recommendation.
type FrequencyOption struct {
	ID           string
	Label        string
	PostsPerWeek int
	Description  string
	Recommended  bool
	Reasons      []string
}

// FrequencyRecommendations returns the five cadence options. 3x per week is
// always recommended; 5x additionally for B2B and Tech industries.
func FrequencyRecommendations(industry string) []FrequencyOption {
	return []FrequencyOption{
		{
			ID:           "daily",
			Label:        "Daily (7x per week)",
			PostsPerWeek: 7,
			Description:  "Post every day to maintain maximum visibility and engagement",
			Reasons: []string{
				"Best for brands with large content teams",
				"Requires significant time investment",
				"Risk of audience fatigue if quality drops",
			},
		},
		{
			ID:           "5x_week",
			Label:        "5x per week (Weekdays)",
			PostsPerWeek: 5,
			Description:  "Post Monday through Friday for consistent presence",
			Recommended:  industry == "B2B" || industry == "Tech",
			Reasons: []string{
				"Ideal for B2B and professional audiences",
				"Aligns with business week patterns",
				"Sustainable for most teams",
			},
		},
		{
			ID:           "3x_week",
			Label:        "3x per week",
			PostsPerWeek: 3,
			Description:  "Post 3 times weekly for consistent engagement without overwhelming",
			Recommended:  true,
			Reasons: []string{
				"Sweet spot for most businesses",
				"Maintains presence without overwhelming",
				"Allows time for quality content creation",
				"Proven to drive engagement growth",
			},
		},
		{
			ID:           "2x_week",
			Label:        "2x per week",
			PostsPerWeek: 2,
			Description:  "Post twice weekly for steady brand awareness",
			Reasons: []string{
				"Good starting point for new brands",
				"Manageable for small teams",
				"May miss engagement opportunities",
			},
		},
		{
			ID:           "weekly",
			Label:        "Weekly (1x per week)",
			PostsPerWeek: 1,
			Description:  "Post once weekly to maintain minimal presence",
			Reasons: []string{
				"Minimum to stay visible",
				"Risk of being forgotten by audience",
				"Limited growth potential",
			},
		},
	}
}

// TimingSlot is one recommended posting time for a platform.
type TimingSlot struct {
	Time   string
	Day    string
	Reason string
}

var platformTimingTable = map[string][]TimingSlot{
	"instagram": {
		{Time: "11:00", Day: "wednesday", Reason: "Peak engagement time - users check during lunch break"},
		{Time: "14:00", Day: "friday", Reason: "High activity as weekend approaches"},
		{Time: "10:00", Day: "monday", Reason: "Strong start-of-week engagement"},
	},
	"twitter": {
		{Time: "09:00", Day: "wednesday", Reason: "Morning commute browsing peak"},
		{Time: "12:00", Day: "thursday", Reason: "Lunch break activity surge"},
		{Time: "17:00", Day: "tuesday", Reason: "End-of-workday engagement"},
	},
	"linkedin": {
		{Time: "08:00", Day: "tuesday", Reason: "Business professionals check before meetings"},
		{Time: "12:00", Day: "wednesday", Reason: "Mid-week lunch break browsing"},
		{Time: "10:00", Day: "thursday", Reason: "Morning professional networking time"},
	},
	"facebook": {
		{Time: "13:00", Day: "wednesday", Reason: "Afternoon engagement peak"},
		{Time: "19:00", Day: "friday", Reason: "Evening leisure time"},
		{Time: "11:00", Day: "saturday", Reason: "Weekend casual browsing"},
	},
}

// OptimalPostingTimes exposes the per-platform timing table.
func OptimalPostingTimes() map[string][]TimingSlot {
	return platformTimingTable
}

func platformTimings(platform string) []TimingSlot {
	if timings, ok := platformTimingTable[platform]; ok {
		return timings
	}
	return platformTimingTable["instagram"]
}
