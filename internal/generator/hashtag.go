package generator

import (
	"regexp"
	"strings"
)

var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "our": {}, "new": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {}, "might": {}, "can": {},
	"this": {}, "that": {}, "these": {}, "those": {},
}

// genericTags is the blocklist of low-signal hashtags, matched
// case-insensitively against candidates.
var genericTags = map[string]struct{}{
	"#fun": {}, "#nice": {}, "#amazing": {}, "#good": {}, "#great": {},
	"#cool": {}, "#awesome": {}, "#best": {},
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// ExtractKeywords tokenizes a description into up to 8 unique lower-cased
// words longer than 3 characters, with stopwords removed.
func ExtractKeywords(description string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(description), " ")

	seen := make(map[string]struct{})
	keywords := make([]string, 0, 8)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
		if len(keywords) == 8 {
			break
		}
	}
	return keywords
}

// domainCategories pair context hashtags with their trigger keywords. Unlike
// the tone classifier, the first matching category wins; the order is part of
// the contract.
var domainCategories = []struct {
	triggers []string
	tags     [2]string
}{
	{[]string{"launch", "introducing"}, [2]string{"#ProductLaunch", "#NewRelease"}},
	{[]string{"eco", "sustainable", "environment"}, [2]string{"#Sustainability", "#EcoFriendly"}},
	{[]string{"tech", "innovation", "digital"}, [2]string{"#Innovation", "#Technology"}},
	{[]string{"health", "wellness", "fitness"}, [2]string{"#HealthyLiving", "#Wellness"}},
	{[]string{"food", "recipe", "cooking"}, [2]string{"#Foodie", "#Culinary"}},
	{[]string{"travel", "adventure", "explore"}, [2]string{"#TravelGoals", "#Wanderlust"}},
	{[]string{"art", "design", "creative"}, [2]string{"#CreativeDesign", "#ArtisticVision"}},
	{[]string{"business", "entrepreneur"}, [2]string{"#BusinessGrowth", "#Entrepreneurship"}},
}

// DeriveHashtags builds the capped tag list: entity tags, keyword tags,
// brand context tags, and at most one domain-category pair; then dedupes
// case-sensitively, drops blocklisted tags, and truncates to 10 in insertion
// order.
func DeriveHashtags(keywords []string, description string, brand *Brand, info ParsedPromptInfo) []string {
	candidates := make([]string, 0, 16)

	for _, name := range []string{info.BrandName, info.ProductName, info.EventName} {
		if name == "" {
			continue
		}
		tag := strings.Join(strings.Fields(name), "")
		if len(tag) > 2 {
			candidates = append(candidates, "#"+tag)
		}
	}

	for _, word := range keywords {
		if len(word) > 3 {
			candidates = append(candidates, "#"+capitalize(word))
		}
	}

	if brand != nil {
		if tag := strings.Join(strings.Fields(brand.Industry), ""); len(tag) > 3 {
			candidates = append(candidates, "#"+capitalize(tag))
		}
		values := brand.KeyValues
		if len(values) > 2 {
			values = values[:2]
		}
		for _, value := range values {
			if tag := strings.Join(strings.Fields(value), ""); len(tag) > 3 {
				candidates = append(candidates, "#"+capitalize(tag))
			}
		}
	}

	lower := strings.ToLower(description)
	for _, category := range domainCategories {
		if containsAny(lower, category.triggers) {
			candidates = append(candidates, category.tags[0], category.tags[1])
			break
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	hashtags := make([]string, 0, 10)
	for _, tag := range candidates {
		if _, blocked := genericTags[strings.ToLower(tag)]; blocked {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		hashtags = append(hashtags, tag)
		if len(hashtags) == 10 {
			break
		}
	}
	return hashtags
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
