package viewer

import (
	"strings"
	"testing"

	"github.com/dgallion1/mdview/internal/doctree"
	"github.com/google/go-cmp/cmp"
)

const guide = `# Guide

Welcome to the guide.

## Install

Run the installer.

## Usage

### Flags

Use --help for flags.

# FAQ
`

func TestView_HeadingsTreeAndContent(t *testing.T) {
	v := New(Options{})
	page, err := v.View(guide, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var anchors []string
	for _, h := range page.Headings {
		anchors = append(anchors, h.Anchor)
	}
	if diff := cmp.Diff([]string{"guide", "install", "usage", "flags", "faq"}, anchors); diff != "" {
		t.Errorf("anchors mismatch (-want +got):\n%s", diff)
	}

	if len(page.Tree) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(page.Tree))
	}
	if doctree.Count(page.Tree) != len(page.Headings) {
		t.Errorf("expected tree to hold every heading")
	}

	if !strings.Contains(page.Content, `<h1 id="guide">Guide</h1>`) {
		t.Errorf("expected anchored heading in content, got %q", page.Content)
	}
	if !strings.Contains(page.Content, "<p>Welcome to the guide.</p>") {
		t.Errorf("expected paragraph rendered, got %q", page.Content)
	}
	if !strings.HasPrefix(page.TOC, "<details style='margin-left:10px;'><summary><a href='#guide'>Guide</a></summary>") {
		t.Errorf("unexpected TOC start: %q", page.TOC)
	}
	if page.Summary != "Welcome to the guide." {
		t.Errorf("expected summary from first paragraph, got %q", page.Summary)
	}
	if page.Matches != 0 {
		t.Errorf("expected 0 matches without query, got %d", page.Matches)
	}
}

func TestView_Highlight(t *testing.T) {
	v := New(Options{})
	page, err := v.View(guide, "GUIDE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "guide" appears in the id, the heading text and the paragraph.
	if page.Matches != 3 {
		t.Errorf("expected 3 matches, got %d", page.Matches)
	}
	if !strings.Contains(page.Content, "Welcome to the <mark>guide</mark>.") {
		t.Errorf("expected highlighted paragraph, got %q", page.Content)
	}
	if strings.Contains(page.TOC, "<mark>") {
		t.Errorf("expected table of contents left unhighlighted, got %q", page.TOC)
	}
}

func TestView_Options(t *testing.T) {
	v := New(Options{IndentPx: 24, UniqueAnchors: true})
	page, err := v.View("# Notes\n## Notes\n", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Headings[1].Anchor != "notes-1" {
		t.Errorf("expected unique anchor, got %q", page.Headings[1].Anchor)
	}
	if !strings.Contains(page.TOC, "margin-left:48px;") {
		t.Errorf("expected second level at 48px, got %q", page.TOC)
	}
}

func TestView_Sanitize(t *testing.T) {
	src := "# Title\n\n<script>alert(1)</script>\n\ntext\n"

	raw, err := New(Options{}).View(src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(raw.Content, "<script>") {
		t.Errorf("expected raw HTML kept without sanitizing, got %q", raw.Content)
	}

	clean, err := New(Options{Sanitize: true}).View(src, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(clean.Content, "<script>") {
		t.Errorf("expected script removed, got %q", clean.Content)
	}
	if !strings.Contains(clean.Content, `<h1 id="title">Title</h1>`) {
		t.Errorf("expected heading kept, got %q", clean.Content)
	}
}

func TestView_EmptyDocument(t *testing.T) {
	page, err := New(Options{}).View("", "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Headings) != 0 || page.TOC != "" || page.Content != "" {
		t.Errorf("expected empty page, got %+v", page)
	}
}

func TestOutline(t *testing.T) {
	headings, forest := New(Options{}).Outline(guide)
	if len(headings) != 5 {
		t.Fatalf("expected 5 headings, got %d", len(headings))
	}
	usage := forest[0].Children[1]
	if usage.Title != "Usage" || len(usage.Children) != 1 || usage.Children[0].Title != "Flags" {
		t.Errorf("unexpected Usage subtree: %+v", usage)
	}
}
