// Package highlight marks occurrences of a search query in markup.
//
// Matching is literal and case-insensitive and runs over the raw markup, so
// text inside tags and attribute values can match too. Highlighting output
// again with a query that matches the marker itself wraps the marker.
package highlight

import (
	"regexp"
	"strings"
)

// Marker tags wrapped around every match.
const (
	OpenMark  = "<mark>"
	CloseMark = "</mark>"
)

// Highlight wraps every case-insensitive occurrence of query in markup with
// <mark> tags, keeping the matched text's original case. An empty query
// returns markup unchanged.
func Highlight(markup, query string) string {
	re := compile(query)
	if re == nil {
		return markup
	}
	return re.ReplaceAllStringFunc(markup, func(m string) string {
		return OpenMark + m + CloseMark
	})
}

// Count returns the number of non-overlapping matches of query in markup.
func Count(markup, query string) int {
	re := compile(query)
	if re == nil {
		return 0
	}
	return len(re.FindAllStringIndex(markup, -1))
}

func compile(query string) *regexp.Regexp {
	if query == "" {
		return nil
	}
	// regexp rejects invalid UTF-8 in patterns.
	query = strings.ToValidUTF8(query, "\uFFFD")
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
}
