package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every tag: submitted text is rendered on the public site.
var textPolicy = bluemonday.StrictPolicy()

// cleanText removes markup and surrounding whitespace from user-supplied text.
// Entities are decoded before sanitizing so encoded tags are stripped too, and
// the pass repeats until nested encodings are exhausted.
func cleanText(s string) string {
	for i := 0; i < 4; i++ {
		next := html.UnescapeString(textPolicy.Sanitize(html.UnescapeString(s)))
		if next == s {
			break
		}
		s = next
	}
	return strings.TrimSpace(s)
}

// normalizeEmail makes the email uniqueness invariant case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
