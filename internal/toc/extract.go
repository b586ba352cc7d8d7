package toc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dgallion1/mdview/internal/doctree"
)

// MaxTagLevel is the deepest heading element HTML defines. Deeper headings
// keep their real level in the heading list but render as h6.
const MaxTagLevel = 6

// headingLine matches an ATX-style heading anchored at column 0: a run of
// '#', at least one whitespace character, then anything.
var headingLine = regexp.MustCompile(`^(#+)[\s\v\p{Z}]+(.*)$`)

// Option configures an Extractor.
type Option func(*Extractor)

// WithUniqueAnchors makes repeated anchors unique by appending -1, -2, ...
// in document order. Without it, identical titles share one anchor.
func WithUniqueAnchors() Option {
	return func(e *Extractor) { e.uniqueAnchors = true }
}

// WithMaxTagLevel sets the deepest hN element emitted. Values outside 1..6
// are ignored.
func WithMaxTagLevel(n int) Option {
	return func(e *Extractor) {
		if n >= 1 && n <= MaxTagLevel {
			e.maxTagLevel = n
		}
	}
}

// Extractor scans Markdown text for headings.
type Extractor struct {
	uniqueAnchors bool
	maxTagLevel   int
}

// NewExtractor returns an Extractor with the given options applied.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{maxTagLevel: MaxTagLevel}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = NewExtractor()

// Extract returns the headings of text in document order, and the lines of
// text with every heading line replaced by an HTML heading element carrying
// its anchor as id. Other lines are returned unchanged.
func Extract(text string) ([]doctree.Heading, []string) {
	return defaultExtractor.Extract(text)
}

// Extract is like the package-level Extract but honours the Extractor's options.
func (e *Extractor) Extract(text string) ([]doctree.Heading, []string) {
	lines := splitLines(text)
	out := make([]string, len(lines))
	var headings []doctree.Heading
	var seen anchorSet
	if e.uniqueAnchors {
		seen = anchorSet{}
	}

	for i, line := range lines {
		m := headingLine.FindStringSubmatch(line)
		if m == nil {
			out[i] = line
			continue
		}
		level := len(m[1])
		title := strings.TrimSpace(m[2])
		anchor := Slugify(title)
		if seen != nil {
			anchor = seen.claim(anchor)
		}
		headings = append(headings, doctree.Heading{Title: title, Level: level, Anchor: anchor})
		out[i] = e.headingTag(level, anchor, title)
	}
	return headings, out
}

func (e *Extractor) headingTag(level int, anchor, title string) string {
	tag := min(level, e.maxTagLevel)
	return fmt.Sprintf(`<h%d id="%s">%s</h%d>`, tag, anchor, title, tag)
}

// anchorSet hands out unique anchors. For each base anchor it remembers
// the next suffix to try.
type anchorSet map[string]int

func (s anchorSet) claim(base string) string {
	if _, taken := s[base]; !taken {
		s[base] = 1
		return base
	}
	for i := s[base]; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, taken := s[candidate]; !taken {
			s[base] = i + 1
			s[candidate] = 1
			return candidate
		}
	}
}

// splitLines splits text on \n, \r\n and \r. A trailing line break does
// not produce a trailing empty line, and empty text yields no lines.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
