package item

import (
	"strings"
	"unicode/utf8"
)

// maxTags bounds how many tags a single item contributes to the index.
const maxTags = 10

// minTagLen filters out short filler words ("the", "a", "in").
const minTagLen = 3

// ExtractTags derives keyword tags from free text for the search index.
// Tokens are lowercased, whitespace-delimited, kept only when longer than
// three characters, and truncated to the first ten in encounter order.
// Duplicates are preserved; the index layer stores tags as sets anyway.
// Tags are never used for match scoring.
func ExtractTags(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tags := make([]string, 0, maxTags)
	for _, f := range fields {
		// Length is counted in runes, not bytes; "süß" is a three-letter
		// word even though it is five bytes of UTF-8.
		if utf8.RuneCountInString(f) <= minTagLen {
			continue
		}
		tags = append(tags, f)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}
