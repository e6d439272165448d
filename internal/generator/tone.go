package generator

import "strings"

// Tone is the coarse emotional register detected in a description. It steers
// caption synthesis and is distinct from the formal/casual/funny style axis.
type Tone string

const (
	ToneNeutral       Tone = "neutral"
	ToneEnthusiastic  Tone = "enthusiastic"
	ToneProfessional  Tone = "professional"
	ToneUrgent        Tone = "urgent"
	ToneInspirational Tone = "inspirational"
	ToneCelebratory   Tone = "celebratory"
)

// ToneResult carries the winning tone, its emotion label, and every keyword
// category that matched along the way.
type ToneResult struct {
	Tone     Tone
	Emotion  string
	Keywords []string
}

var toneCategories = []struct {
	words   []string
	tone    Tone
	emotion string
	keyword string
}{
	{[]string{"excited", "amazing", "awesome", "incredible", "fantastic", "thrilled", "launch", "new", "announce"}, ToneEnthusiastic, "excited", "exciting"},
	{[]string{"professional", "business", "corporate", "enterprise", "industry", "solution", "service"}, ToneProfessional, "confident", "professional"},
	{[]string{"urgent", "limited", "hurry", "now", "today", "sale", "deal", "discount"}, ToneUrgent, "compelling", "urgent"},
	{[]string{"inspire", "motivate", "empower", "transform", "change", "dream", "achieve"}, ToneInspirational, "uplifting", "inspiring"},
	{[]string{"celebrate", "milestone", "achievement", "success", "proud", "congratulations"}, ToneCelebratory, "joyful", "celebration"},
}

// DetectTone tests the five keyword categories in their fixed order. Each
// match overwrites the tone and emotion and appends its category keyword, so
// the last matching category wins even when an earlier one also matched.
// Callers relying on compatible behavior must not reorder the categories.
func DetectTone(description string) ToneResult {
	lower := strings.ToLower(description)

	result := ToneResult{Tone: ToneNeutral, Emotion: "informative"}

	for _, category := range toneCategories {
		if containsAny(lower, category.words) {
			result.Tone = category.tone
			result.Emotion = category.emotion
			result.Keywords = append(result.Keywords, category.keyword)
		}
	}

	return result
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
