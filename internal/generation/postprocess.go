package generation

import (
	"unicode"
	"unicode/utf8"
)

// Description length policy. The prompt asks the model for at most
// MaxDescriptionLength characters; longer output is cut back here.
const (
	MaxDescriptionLength = 400

	truncateLength  = 380
	minWordBoundary = 300
	ellipsis        = "..."
)

// EnforceDescriptionLimit applies the description length policy and returns
// the resulting content with its length in characters.
//
// Content of at most MaxDescriptionLength characters is returned unchanged.
// Longer content is cut to its first 380 characters, then back to the last
// whitespace in that slice when that whitespace lies beyond character 300, and
// "..." is appended.
func EnforceDescriptionLimit(content string) (string, int) {
	runes := []rune(content)
	if len(runes) <= MaxDescriptionLength {
		return content, len(runes)
	}

	head := runes[:truncateLength]
	cut := len(head)
	if i := lastSpace(head); i > minWordBoundary {
		cut = i
	}

	truncated := string(head[:cut]) + ellipsis
	return truncated, utf8.RuneCountInString(truncated)
}

// lastSpace returns the index of the last whitespace rune in s, or -1.
func lastSpace(s []rune) int {
	for i := len(s) - 1; i >= 0; i-- {
		if unicode.IsSpace(s[i]) {
			return i
		}
	}
	return -1
}
