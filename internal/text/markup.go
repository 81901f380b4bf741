package text

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	tagPolicy = bluemonday.StrictPolicy()

	// Footnote spans carry reference apparatus, not translation text, so the
	// whole element including its content has to go before generic stripping.
	footnoteRegex = regexp.MustCompile(`(?s)<sup\s+foot_note=[^>]*>.*?</sup>`)
)

// StripMarkup removes footnote spans in their entirety, strips any remaining
// tags while keeping their inner text, and trims surrounding whitespace.
func StripMarkup(input string) string {
	input = footnoteRegex.ReplaceAllString(input, "")
	// The policy entity-escapes the text it keeps; undo that so plain
	// translation text passes through byte-identical.
	input = html.UnescapeString(tagPolicy.Sanitize(input))
	return strings.TrimSpace(input)
}
