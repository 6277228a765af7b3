package importer

import (
	"regexp"
	"strings"
)

// A hashtag is "#" followed by one or more characters that are neither
// whitespace nor another "#".
var hashtagPattern = regexp.MustCompile(`#([^\s#]+)`)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// ExtractHashtags returns the hashtag bodies in text in first-occurrence
// order. Matches are non-overlapping, left to right.
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(text, -1)

	tags := make([]string, 0, len(matches))
	for _, match := range matches {
		tags = append(tags, match[1])
	}

	return tags
}

// RemoveHashtags returns the text with all hashtag occurrences removed,
// whitespace runs collapsed to single spaces and the result trimmed.
func RemoveHashtags(text string) string {
	cleaned := hashtagPattern.ReplaceAllString(text, "")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
