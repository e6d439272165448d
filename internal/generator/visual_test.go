package generator

import (
	"strings"
	"testing"

	"github.com/example/content-assistant/internal/testfixtures"
)

func TestVisualSuggestions(t *testing.T) {
	t.Parallel()

	t.Run("base concepts always present", func(t *testing.T) {
		t.Parallel()

		suggestions := VisualSuggestions("quarterly report summary", nil)

		ids := suggestionIDs(suggestions)
		want := []string{"brand-story", "text-overlay", "carousel-series"}
		if len(ids) != len(want) {
			t.Fatalf("expected %v, got %v", want, ids)
		}
		for i, id := range ids {
			if id != want[i] {
				t.Fatalf("expected %v, got %v", want, ids)
			}
		}
	})

	t.Run("launch and eco triggers add targeted concepts", func(t *testing.T) {
		t.Parallel()

		suggestions := VisualSuggestions("launch of our eco bottle", nil)

		ids := suggestionIDs(suggestions)
		for _, id := range []string{"launch-hero", "launch-lifestyle", "eco-nature"} {
			found := false
			for _, got := range ids {
				if got == id {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("expected %s concept, got %v", id, ids)
			}
		}
	})

	t.Run("brand tone selects the prompt style", func(t *testing.T) {
		t.Parallel()

		brand := &Brand{Name: "Acme", Tone: "professional"}
		suggestions := VisualSuggestions("quarterly report summary", brand)

		for _, suggestion := range suggestions {
			if suggestion.ID == "brand-story" {
				if !strings.Contains(suggestion.Prompt, "Acme") {
					t.Fatalf("expected brand name in prompt: %q", suggestion.Prompt)
				}
				if !strings.Contains(suggestion.Prompt, visualStyles["professional"]) {
					t.Fatalf("expected professional style in prompt: %q", suggestion.Prompt)
				}
				return
			}
		}
		t.Fatalf("brand-story concept missing")
	})
}

func TestOutline(t *testing.T) {
	t.Parallel()

	g := New(testfixtures.NewPicker(0).PickFunc())
	outline := g.Outline("our new product", "professional", &Brand{Name: "Acme", TargetAudience: "developers"})

	if outline.Hook != "Industry insight: our new product" {
		t.Fatalf("unexpected hook: %q", outline.Hook)
	}
	if outline.MainMessage != "Acme is our new product. This represents our commitment to developers." {
		t.Fatalf("unexpected main message: %q", outline.MainMessage)
	}
	if outline.CallToAction != "Learn more in our bio link" {
		t.Fatalf("unexpected CTA: %q", outline.CallToAction)
	}
	if len(outline.Structure) != 7 {
		t.Fatalf("expected 7 structure steps, got %d", len(outline.Structure))
	}
	if outline.BestTimeToPost != outlineTimes["professional"] {
		t.Fatalf("unexpected best time: %q", outline.BestTimeToPost)
	}
}

func TestOutline_UnknownToneFallsBackToCasual(t *testing.T) {
	t.Parallel()

	g := New(testfixtures.NewPicker(0).PickFunc())
	outline := g.Outline("our new product", "brooding", nil)

	if outline.Hook != "You know what's exciting? our new product" {
		t.Fatalf("expected casual hook fallback, got %q", outline.Hook)
	}
	if outline.BestTimeToPost != outlineTimes["casual"] {
		t.Fatalf("expected casual best time, got %q", outline.BestTimeToPost)
	}
}

func TestImagePromptVariations(t *testing.T) {
	t.Parallel()

	variations := ImagePromptVariations("roast notes", 0)
	if len(variations) != 4 {
		t.Fatalf("expected default of 4 variations, got %d", len(variations))
	}
	if variations[0] == variations[1] {
		t.Fatalf("expected distinct variations, got %q twice", variations[0])
	}
	for _, variation := range variations {
		if !strings.HasPrefix(variation, "roast notes, ") {
			t.Fatalf("expected base description prefix: %q", variation)
		}
	}
}

func TestVideoOptimizationTips(t *testing.T) {
	t.Parallel()

	if tips := VideoOptimizationTips("LinkedIn"); len(tips) == 0 || !strings.Contains(tips[0], "16:9") {
		t.Fatalf("unexpected linkedin tips: %v", tips)
	}
	// Unknown platforms fall back to the instagram set.
	unknown := VideoOptimizationTips("myspace")
	instagram := VideoOptimizationTips("instagram")
	if len(unknown) != len(instagram) || unknown[0] != instagram[0] {
		t.Fatalf("expected instagram fallback, got %v", unknown)
	}
}

func suggestionIDs(suggestions []VisualSuggestion) []string {
	ids := make([]string, 0, len(suggestions))
	for _, suggestion := range suggestions {
		ids = append(ids, suggestion.ID)
	}
	return ids
}
