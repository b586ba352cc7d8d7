package toc

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// FallbackAnchor is used when a heading's text has no slug-safe characters.
const FallbackAnchor = "heading"

// Slugify converts heading text to a URL-friendly anchor.
//
// Text is compatibility-decomposed first so accented Latin letters keep
// their base letter. Everything except ASCII letters, digits, hyphens and
// whitespace is then dropped, the result is trimmed and lower-cased, and
// each whitespace run becomes a single hyphen. Existing hyphens are kept
// as-is, so "a - b" becomes "a---b".
func Slugify(text string) string {
	var buf strings.Builder
	for _, r := range norm.NFKD.String(text) {
		switch {
		case r < unicode.MaxASCII && isSlugRune(byte(r)):
			buf.WriteRune(r)
		case unicode.IsSpace(r):
			buf.WriteRune(r)
		}
	}

	slug := strings.Join(strings.Fields(strings.ToLower(buf.String())), "-")
	if slug == "" {
		return FallbackAnchor
	}
	return slug
}

func isSlugRune(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') || c == '-'
}
