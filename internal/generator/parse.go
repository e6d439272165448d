package generator

import (
	"regexp"
	"strings"
)

// ParsedPromptInfo holds entities extracted from a free-text description.
// Absent fields stay empty; downstream templates branch on presence.
type ParsedPromptInfo struct {
	BrandName   string
	ProductName string
	EventName   string
	Location    string
	Date        string
	Price       string
	Percentage  string
	Features    []string
	Benefits    []string
}

var (
	brandPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)brand\s+(?:name\s+)?(?:is\s+)?:?\s*([A-Z][a-zA-Z0-9\s&'-]+?)(?:\s+(?:is|has|offers|provides|announces|launches|presents)|[,.]|$)`),
		regexp.MustCompile(`(?:for|by|from|at)\s+([A-Z][a-zA-Z0-9\s&'-]{2,}?)(?:\s+(?:is|has|offers|provides|announces|launches|presents)|[,.]|$)`),
		regexp.MustCompile(`^([A-Z][a-zA-Z0-9\s&'-]{2,}?)\s+(?:is|has|offers|provides|announces|launches|presents)`),
	}

	productPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)product\s+(?:name\s+)?(?:is\s+)?:?\s*([A-Z][a-zA-Z0-9\s-]+?)(?:\s+(?:is|has|offers|provides)|[,.]|$)`),
		regexp.MustCompile(`(?i)(?:new|latest|introducing)\s+([A-Z][a-zA-Z0-9\s-]{2,}?)(?:\s+(?:is|has|offers|provides)|[,.]|$)`),
		regexp.MustCompile(`(?i)(?:called|named)\s+([A-Z][a-zA-Z0-9\s-]+?)(?:\s+(?:is|has|offers|provides)|[,.]|$)`),
	}

	eventPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)event\s+(?:name\s+)?(?:is\s+)?:?\s*([A-Z][a-zA-Z0-9\s-]+?)(?:\s+(?:on|at|is)|[,.]|$)`),
		regexp.MustCompile(`(?i)(?:hosting|organizing|presenting)\s+([A-Z][a-zA-Z0-9\s-]{3,}?)(?:\s+(?:on|at|is)|[,.]|$)`),
	}

	locationPattern = regexp.MustCompile(`(?i)(?:location|at|in)\s+(?:is\s+)?:?\s*([A-Z][a-zA-Z\s,]+?)(?:\s+on|[,.]|$)`)

	datePattern = regexp.MustCompile(`(?i)(?:on|date)\s+(?:is\s+)?:?\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?|\d{1,2}/\d{1,2}/\d{2,4})`)

	pricePattern = regexp.MustCompile(`(?i)(?:price|costs?|priced at)\s+(?:is\s+)?:?\s*\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`)

	percentPattern = regexp.MustCompile(`(?i)(\d+)%\s*(?:off|discount|savings?)`)

	featurePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)features?\s+(?:include|are|is)?:?\s*([^.]+)`),
		regexp.MustCompile(`(?i)(?:includes?|comes with|equipped with)\s+([^.]+)`),
	}

	benefitPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)benefits?\s+(?:include|are)?:?\s*([^.]+)`),
		regexp.MustCompile(`(?i)(?:helps?|allows?|enables?)\s+(?:you\s+)?(?:to\s+)?([^.]+)`),
	}

	listSeparator = regexp.MustCompile(`,|and`)
)

// ParsePrompt applies the per-field pattern lists to a description. The first
// matching pattern in each field's list wins. Extraction is best-effort
// pattern matching, not language understanding.
func ParsePrompt(description string) ParsedPromptInfo {
	info := ParsedPromptInfo{}

	info.BrandName = firstMatch(brandPatterns, description)
	info.ProductName = firstMatch(productPatterns, description)
	info.EventName = firstMatch(eventPatterns, description)

	if m := locationPattern.FindStringSubmatch(description); m != nil {
		info.Location = strings.TrimSpace(m[1])
	}
	if m := datePattern.FindStringSubmatch(description); m != nil {
		info.Date = strings.TrimSpace(m[1])
	}
	if m := pricePattern.FindStringSubmatch(description); m != nil {
		info.Price = m[1]
	}
	if m := percentPattern.FindStringSubmatch(description); m != nil {
		info.Percentage = m[1]
	}

	info.Features = firstList(featurePatterns, description)
	info.Benefits = firstList(benefitPatterns, description)

	return info
}

func firstMatch(patterns []*regexp.Regexp, description string) string {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(description); m != nil && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// firstList splits the first matching capture on commas and "and", trimming
// entries and keeping at most three.
func firstList(patterns []*regexp.Regexp, description string) []string {
	for _, pattern := range patterns {
		m := pattern.FindStringSubmatch(description)
		if m == nil || m[1] == "" {
			continue
		}
		parts := listSeparator.Split(m[1], -1)
		items := make([]string, 0, 3)
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			items = append(items, trimmed)
			if len(items) == 3 {
				break
			}
		}
		return items
	}
	return nil
}
