package generator

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnclearInput is returned for descriptions rejected before generation.
// The message is shown to users verbatim.
var ErrUnclearInput = errors.New("Your input seems unclear or invalid. Please provide a meaningful topic, idea, or sentence.")

var spamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[^a-zA-Z0-9\s]{20,}$`),
	regexp.MustCompile(`(?i)^(test|asdf|qwerty|12345)+$`),
}

// repeatedRun reports whether the input is a single character repeated at
// least 11 times (regexp cannot express the backreference form of this check).
func repeatedRun(text string) bool {
	runes := []rune(text)
	if len(runes) < 11 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}

var meaningfulWord = regexp.MustCompile(`[a-zA-Z0-9]`)

// ValidateDescription rejects empty, too-short, or spam-patterned input.
// Valid input returns nil; everything else returns ErrUnclearInput.
func ValidateDescription(description string) error {
	trimmed := strings.TrimSpace(description)

	if len(trimmed) < 5 {
		return ErrUnclearInput
	}

	if repeatedRun(trimmed) {
		return ErrUnclearInput
	}
	for _, pattern := range spamPatterns {
		if pattern.MatchString(trimmed) {
			return ErrUnclearInput
		}
	}

	words := strings.Fields(trimmed)
	if len(words) == 0 {
		return ErrUnclearInput
	}

	meaningful := 0
	for _, word := range words {
		if meaningfulWord.MatchString(word) {
			meaningful++
		}
	}
	if meaningful == 0 {
		return ErrUnclearInput
	}

	if len(words) == 1 && len(words[0]) < 3 {
		return ErrUnclearInput
	}

	return nil
}
