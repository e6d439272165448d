package generator

import (
	"fmt"
	"strings"
)

// VisualSuggestion describes one image concept to produce alongside a post.
type VisualSuggestion struct {
	ID                   string
	Title                string
	Description          string
	Prompt               string
	Style                string
	AspectRatio          string
	RecommendedPlatforms []string
}

// PostOutline is a structural writing guide for one post.
type PostOutline struct {
	Hook           string
	MainMessage    string
	CallToAction   string
	Structure      []string
	BestTimeToPost string
}

var visualStyles = map[string]string{
	"professional":  "clean, minimalist, corporate aesthetic with professional lighting",
	"casual":        "warm, approachable, lifestyle-oriented with natural lighting",
	"playful":       "vibrant, colorful, dynamic with energetic composition",
	"inspirational": "dramatic, aspirational, cinematic with golden hour lighting",
	"educational":   "clear, informative, diagram-friendly with neutral background",
}

// VisualSuggestions derives image concepts from the description and brand
// profile. Launch, eco, tech, and promo triggers add targeted concepts on top
// of the always-present brand story, typography, and carousel suggestions.
func VisualSuggestions(description string, brand *Brand) []VisualSuggestion {
	lower := strings.ToLower(description)

	tone := "casual"
	brandName := "your brand"
	if brand != nil {
		if brand.Tone != "" {
			tone = brand.Tone
		}
		if brand.Name != "" {
			brandName = brand.Name
		}
	}

	baseStyle, ok := visualStyles[tone]
	if !ok {
		baseStyle = visualStyles["casual"]
	}

	suggestions := make([]VisualSuggestion, 0, 7)

	if containsAny(lower, []string{"launch", "new", "announce"}) {
		suggestions = append(suggestions,
			VisualSuggestion{
				ID:                   "launch-hero",
				Title:                "Product Hero Shot",
				Description:          "Eye-catching hero image showcasing the new product",
				Prompt:               fmt.Sprintf("Professional product photography of %s, %s, studio lighting, high resolution, product centered, brand colors, marketing material quality", description, baseStyle),
				Style:                "Product Photography",
				AspectRatio:          "1:1 (Instagram), 16:9 (Twitter/LinkedIn)",
				RecommendedPlatforms: []string{"Instagram", "Twitter", "LinkedIn"},
			},
			VisualSuggestion{
				ID:                   "launch-lifestyle",
				Title:                "Lifestyle Context",
				Description:          "Product shown in real-world usage scenario",
				Prompt:               fmt.Sprintf("Lifestyle photography showing %s being used in everyday context, %s, natural environment, authentic moment, relatable scene", description, baseStyle),
				Style:                "Lifestyle Photography",
				AspectRatio:          "4:5 (Instagram), 16:9 (Others)",
				RecommendedPlatforms: []string{"Instagram", "Facebook"},
			})
	}

	if containsAny(lower, []string{"eco", "sustainable", "green"}) {
		suggestions = append(suggestions, VisualSuggestion{
			ID:                   "eco-nature",
			Title:                "Nature Integration",
			Description:          "Eco-friendly visuals with natural elements",
			Prompt:               fmt.Sprintf("%s surrounded by natural elements, lush greenery, eco-conscious aesthetic, sustainable lifestyle, earth tones, organic textures, environmental harmony", description),
			Style:                "Nature & Sustainability",
			AspectRatio:          "1:1 or 4:5",
			RecommendedPlatforms: []string{"Instagram", "Pinterest"},
		})
	}

	if containsAny(lower, []string{"tech", "innovation", "ai"}) {
		suggestions = append(suggestions, VisualSuggestion{
			ID:                   "tech-modern",
			Title:                "Modern Tech Aesthetic",
			Description:          "Sleek, futuristic technology visualization",
			Prompt:               fmt.Sprintf("Futuristic visualization of %s, modern tech aesthetic, glowing interfaces, blue and cyan tones, digital innovation, sleek design, cutting-edge technology", description),
			Style:                "Tech & Innovation",
			AspectRatio:          "16:9 (LinkedIn), 1:1 (Instagram)",
			RecommendedPlatforms: []string{"LinkedIn", "Twitter"},
		})
	}

	suggestions = append(suggestions,
		VisualSuggestion{
			ID:                   "brand-story",
			Title:                "Brand Story Visual",
			Description:          "Behind-the-scenes or brand narrative image",
			Prompt:               fmt.Sprintf("Behind the scenes of %s creating %s, authentic brand story, team collaboration, creative process, brand values in action, %s", brandName, description, baseStyle),
			Style:                "Brand Storytelling",
			AspectRatio:          "4:5 (Instagram Stories)",
			RecommendedPlatforms: []string{"Instagram", "Facebook", "LinkedIn"},
		},
		VisualSuggestion{
			ID:                   "text-overlay",
			Title:                "Text-Based Graphic",
			Description:          "Bold typography with key message",
			Prompt:               fmt.Sprintf("Bold typography design featuring key message from %s, %s, strong visual hierarchy, brand colors, minimal background, quote card style, social media optimized", description, baseStyle),
			Style:                "Typography & Graphics",
			AspectRatio:          "1:1 (All platforms)",
			RecommendedPlatforms: []string{"Instagram", "Twitter", "LinkedIn", "Facebook"},
		})

	if containsAny(lower, []string{"sale", "discount", "offer"}) {
		suggestions = append(suggestions, VisualSuggestion{
			ID:                   "promo-urgency",
			Title:                "Promotional Banner",
			Description:          "Attention-grabbing promotional visual",
			Prompt:               fmt.Sprintf("Promotional banner for %s, attention-grabbing design, bold colors, clear pricing or offer display, urgency indicators, sale graphics, marketing appeal", description),
			Style:                "Promotional Design",
			AspectRatio:          "16:9 or 1:1",
			RecommendedPlatforms: []string{"Twitter", "Facebook", "Instagram"},
		})
	}

	suggestions = append(suggestions, VisualSuggestion{
		ID:                   "carousel-series",
		Title:                "Carousel Series",
		Description:          "Multi-image storytelling sequence",
		Prompt:               fmt.Sprintf("Series of 3-5 images telling the story of %s, cohesive visual theme, progressive narrative, %s, unified color palette, carousel-optimized", description, baseStyle),
		Style:                "Multi-Image Series",
		AspectRatio:          "1:1 (Instagram Carousel)",
		RecommendedPlatforms: []string{"Instagram", "LinkedIn"},
	})

	return suggestions
}

var outlineHooks = map[string][]string{
	"professional": {
		"Industry insight: %s",
		"Announcing a significant milestone...",
		"What if you could transform the way you...",
	},
	"casual": {
		"You know what's exciting? %s",
		"We've got news that'll make your day...",
		"Real talk: %s",
	},
	"playful": {
		"Hold up! 🛑 %s",
		"Plot twist incoming...",
		"*Drumroll please* 🥁",
	},
	"inspirational": {
		"Imagine a world where...",
		"Success isn't about perfection, it's about...",
		"Every great achievement starts with...",
	},
	"educational": {
		"Here's what you need to know about...",
		"3 things everyone should understand about...",
		"The complete guide to...",
	},
}

var outlineCTAs = []string{
	"Learn more in our bio link",
	"Drop a 💙 if you agree",
	"Tag someone who needs to see this",
	"Share your thoughts in the comments",
	"Follow for more updates",
	"Visit our website to discover more",
	"DM us to get started",
}

var outlineTimes = map[string]string{
	"professional":  "Tuesday-Thursday, 9 AM - 11 AM or 1 PM - 3 PM",
	"casual":        "Wednesday-Friday, 11 AM - 1 PM or 7 PM - 9 PM",
	"playful":       "Any day, 12 PM - 3 PM or 7 PM - 10 PM",
	"inspirational": "Monday or Sunday, 6 AM - 9 AM",
	"educational":   "Tuesday-Thursday, 10 AM - 12 PM",
}

// Outline builds a post structure guide for the given brand tone. Hook and
// CTA selection use the generator's random picker.
func (g *Generator) Outline(description, tone string, brand *Brand) PostOutline {
	brandName := "We"
	audience := "our audience"
	if brand != nil {
		if brand.Name != "" {
			brandName = brand.Name
		}
		if brand.TargetAudience != "" {
			audience = brand.TargetAudience
		}
	}

	hooks, ok := outlineHooks[tone]
	if !ok {
		hooks = outlineHooks["casual"]
	}
	hook := hooks[g.pick(len(hooks))]
	if strings.Contains(hook, "%s") {
		hook = fmt.Sprintf(hook, description)
	}

	bestTime, ok := outlineTimes[tone]
	if !ok {
		bestTime = outlineTimes["casual"]
	}

	return PostOutline{
		Hook:         hook,
		MainMessage:  fmt.Sprintf("%s is %s. This represents our commitment to %s.", brandName, description, audience),
		CallToAction: outlineCTAs[g.pick(len(outlineCTAs))],
		Structure: []string{
			"1. Attention-grabbing hook",
			"2. Context or problem statement",
			"3. Main announcement or solution",
			"4. Key benefits or features (2-3 points)",
			"5. Social proof or credibility marker",
			"6. Clear call-to-action",
			"7. Relevant hashtags (8-10)",
		},
		BestTimeToPost: bestTime,
	}
}

var imagePromptStyles = []string{
	"photorealistic, high quality, detailed",
	"minimalist, clean design, modern aesthetic",
	"vibrant colors, energetic, dynamic composition",
	"soft lighting, dreamy atmosphere, ethereal",
	"bold contrast, dramatic lighting, cinematic",
	"flat design, vector art, illustrated style",
	"warm tones, cozy atmosphere, inviting",
	"futuristic, sci-fi aesthetic, tech-forward",
}

var imagePromptPerspectives = []string{
	"from above (flat lay)",
	"eye-level perspective",
	"slightly elevated angle",
	"close-up detail shot",
	"wide environmental shot",
	"macro photography style",
}

// ImagePromptVariations cycles style and perspective tables to produce count
// prompt variants for the same base description.
func ImagePromptVariations(baseDescription string, count int) []string {
	if count <= 0 {
		count = 4
	}
	variations := make([]string, 0, count)
	for i := 0; i < count; i++ {
		style := imagePromptStyles[i%len(imagePromptStyles)]
		perspective := imagePromptPerspectives[i%len(imagePromptPerspectives)]
		variations = append(variations, fmt.Sprintf("%s, %s, %s, professional photography", baseDescription, style, perspective))
	}
	return variations
}

var videoTips = map[string][]string{
	"instagram": {
		"Square (1:1) or Vertical (4:5) format performs best",
		"First 3 seconds are crucial - start with impact",
		"Keep videos under 60 seconds for feed posts",
		"Add captions - 85% watch without sound",
		"Use Stories for behind-the-scenes content (9:16)",
		"Reels should be 15-30 seconds for maximum engagement",
	},
	"twitter": {
		"Landscape (16:9) or Square (1:1) format recommended",
		"Maximum length: 2 minutes 20 seconds",
		"First frame should be compelling thumbnail",
		"Add captions for accessibility",
		"Keep file size under 512MB",
		"Native uploads perform better than YouTube links",
	},
	"linkedin": {
		"Landscape (16:9) format is standard",
		"Keep videos between 30 seconds and 3 minutes",
		"Add professional captions",
		"Start with text overlay introducing topic",
		"Include your brand logo/watermark",
		"Best performing: educational or thought leadership content",
	},
	"facebook": {
		"Square (1:1) format gets more engagement",
		"First 3 seconds determine if viewers continue",
		"Maximum recommended: 2-3 minutes",
		"Always add captions",
		"Upload natively (don't share from other platforms)",
		"Live videos get 6x more engagement",
	},
}

// VideoOptimizationTips returns per-platform video guidance, defaulting to
// the instagram set for unknown platforms.
func VideoOptimizationTips(platform string) []string {
	if tips, ok := videoTips[strings.ToLower(platform)]; ok {
		return tips
	}
	return videoTips["instagram"]
}
