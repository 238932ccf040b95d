// Package slugify derives URL-safe slugs from free-text tag names.
package slugify

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Matches any character that is not a letter, digit, underscore,
	// hyphen, or whitespace in any script.
	invalidChars = regexp.MustCompile(`[^\p{L}\p{N}\s_-]+`)
	// Matches runs of hyphens and whitespace.
	separatorRuns = regexp.MustCompile(`[-\s]+`)
)

// Make converts a tag name to a URL-safe slug.
// "Camp Fire" -> "camp-fire".
// "Sci-Fi/Fantasy" -> "sci-fifantasy".
// "한국 캠핑" -> "한국-캠핑".
//
// Make is a pure function of its input and is idempotent: applying it to
// an already-derived slug returns the slug unchanged. Non-ASCII letters
// and digits are preserved rather than transliterated.
func Make(name string) string {
	// Normalize unicode (fold compatibility equivalents).
	s := norm.NFKC.String(name)

	// Lowercase.
	s = strings.ToLower(s)

	// Drop everything that is not a word character, hyphen, or space.
	s = invalidChars.ReplaceAllString(s, "")

	// Collapse separator runs into a single hyphen.
	s = separatorRuns.ReplaceAllString(s, "-")

	// Trim leading/trailing separators.
	return strings.Trim(s, "-_")
}
