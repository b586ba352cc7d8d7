// Package viewer turns Markdown text and an optional search query into the
// two outputs of the viewer page: the table of contents and the rendered
// document content.
package viewer

import (
	"strings"

	"github.com/dgallion1/mdview/internal/doctree"
	"github.com/dgallion1/mdview/internal/highlight"
	"github.com/dgallion1/mdview/internal/markdown"
	"github.com/dgallion1/mdview/internal/sanitizer"
	"github.com/dgallion1/mdview/internal/toc"
)

const summaryRunes = 160

// Options controls how documents are rendered.
type Options struct {
	IndentPx      int  // Left margin added per table-of-contents level
	UniqueAnchors bool // Suffix repeated anchors instead of sharing them
	Sanitize      bool // Run rendered content through the allow-list sanitizer
	Markdown      markdown.Options
}

// Page is one rendered view of a document.
type Page struct {
	Headings []doctree.Heading `json:"headings"`
	Tree     []*doctree.Node   `json:"toc"`
	TOC      string            `json:"toc_html"`
	Content  string            `json:"content_html"`
	Matches  int               `json:"matches"`
	Summary  string            `json:"summary"`
}

// Viewer renders documents. It holds no per-document state and is safe
// for concurrent use.
type Viewer struct {
	extractor *toc.Extractor
	renderer  *markdown.Renderer
	indent    int
	sanitize  bool
}

func New(opts Options) *Viewer {
	var extractOpts []toc.Option
	if opts.UniqueAnchors {
		extractOpts = append(extractOpts, toc.WithUniqueAnchors())
	}
	indent := opts.IndentPx
	if indent <= 0 {
		indent = toc.DefaultIndent
	}
	return &Viewer{
		extractor: toc.NewExtractor(extractOpts...),
		renderer:  markdown.NewRenderer(opts.Markdown),
		indent:    indent,
		sanitize:  opts.Sanitize,
	}
}

// Outline returns the document's headings and their nested forest without
// rendering any content.
func (v *Viewer) Outline(text string) ([]doctree.Heading, []*doctree.Node) {
	headings, _ := v.extractor.Extract(text)
	return headings, toc.BuildTree(headings)
}

// View renders text with every case-insensitive occurrence of query
// marked. An empty query renders without highlighting.
func (v *Viewer) View(text, query string) (*Page, error) {
	headings, lines := v.extractor.Extract(text)
	content := strings.Join(lines, "\n")

	matches := highlight.Count(content, query)
	content = highlight.Highlight(content, query)

	out, err := v.renderer.Render([]byte(content))
	if err != nil {
		return nil, err
	}
	if v.sanitize {
		out = sanitizer.Sanitize(out)
	}

	forest := toc.BuildTree(headings)
	return &Page{
		Headings: headings,
		Tree:     forest,
		TOC:      toc.Render(forest, v.indent),
		Content:  string(out),
		Matches:  matches,
		Summary:  v.renderer.Summary([]byte(text), summaryRunes),
	}, nil
}
