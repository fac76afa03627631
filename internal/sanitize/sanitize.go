// Package sanitize strips markup from user-written text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every element and attribute. Policies are safe for
// concurrent use once built.
var strict = bluemonday.StrictPolicy()

// maxPasses bounds the decode and sanitize rounds for nested entities such
// as "&amp;lt;".
const maxPasses = 4

// Text returns s with all HTML removed. Entities are decoded before the
// policy runs, so markup spelled as entities is stripped like literal
// markup, and "Tables & chairs" survives unchanged. Clients render the
// result as plain text.
func Text(s string) string {
	if !strings.ContainsAny(s, "<>&") {
		return s
	}
	for range maxPasses {
		next := html.UnescapeString(strict.Sanitize(html.UnescapeString(s)))
		if next == s {
			break
		}
		s = next
	}
	// Whatever still looks like a tag after the last pass is dropped.
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	return strings.TrimSpace(s)
}
