// Package generator implements the deterministic text pipeline: entity
// extraction, tone classification, caption and CTA synthesis, and hashtag
// derivation. All randomness flows through an injected picker so callers can
// pin template selection in tests.
package generator

import (
	"math/rand"
	"strings"
)

// Brand is the slice of a brand profile the pipeline reads. A nil *Brand is
// treated as an empty profile everywhere.
type Brand struct {
	Name           string
	Industry       string
	Tone           string
	TargetAudience string
	KeyValues      []string
	ContentThemes  []string
}

// Input is a structured generation request. When CompanyName or ProductName
// are set they override the values extracted from the description.
type Input struct {
	CompanyName string
	ProductName string
	Description string
}

// CTAVariations carries one call-to-action per caption style.
type CTAVariations struct {
	Formal string
	Casual string
	Funny  string
}

// Content is one assembled generation result. It is immutable once returned
// and persisted verbatim.
type Content struct {
	Formal   string
	Casual   string
	Funny    string
	Hashtags []string
	CTA      CTAVariations
}

const defaultKeyValue = "excellence and innovation"

// Generator runs the synthesis pipeline with an injectable random source.
type Generator struct {
	pick func(n int) int
}

// New constructs a Generator. pick must return a value in [0, n); when nil,
// a math/rand based picker is used.
func New(pick func(n int) int) *Generator {
	if pick == nil {
		pick = rand.Intn
	}
	return &Generator{pick: pick}
}

// Generate runs the pipeline over a free-text description. The company name
// falls back from the extracted brand name to the brand profile name to "We".
func (g *Generator) Generate(description string, brand *Brand) Content {
	info := ParsePrompt(description)

	companyName := info.BrandName
	if companyName == "" && brand != nil {
		companyName = brand.Name
	}
	if companyName == "" {
		companyName = "We"
	}

	return g.generate(companyName, info.ProductName, description, brand, info)
}

// GenerateStructured runs the pipeline over a structured request. Explicit
// company and product names override the extracted ones.
func (g *Generator) GenerateStructured(input Input, brand *Brand) Content {
	companyName := input.CompanyName
	if companyName == "" && brand != nil {
		companyName = brand.Name
	}
	if companyName == "" {
		companyName = "We"
	}

	info := ParsePrompt(input.Description)
	info.BrandName = companyName
	info.ProductName = input.ProductName

	return g.generate(companyName, input.ProductName, input.Description, brand, info)
}

func (g *Generator) generate(companyName, productName, description string, brand *Brand, info ParsedPromptInfo) Content {
	tone := DetectTone(description)
	keywords := ExtractKeywords(description)

	return Content{
		Formal:   g.FormalCaption(companyName, productName, description, brand, tone, info),
		Casual:   g.CasualCaption(companyName, productName, description, brand, tone, info),
		Funny:    g.FunnyCaption(companyName, productName, description, brand, tone, info),
		Hashtags: DeriveHashtags(keywords, description, brand, info),
		CTA:      g.CTAs(companyName, description),
	}
}

func brandKeyValue(brand *Brand) string {
	if brand != nil && len(brand.KeyValues) > 0 && brand.KeyValues[0] != "" {
		return brand.KeyValues[0]
	}
	return defaultKeyValue
}

// DeriveTitle turns a description into a short post title: the first sentence,
// capped at 50 characters with a trailing ellipsis when truncated.
func DeriveTitle(description string) string {
	title := description
	if idx := strings.IndexByte(title, '.'); idx >= 0 {
		title = title[:idx]
	}
	title = strings.TrimSpace(title)

	runes := []rune(title)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return title
}
