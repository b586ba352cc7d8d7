// Package markdown renders the heading-transformed document to HTML.
//
// Heading lines arrive as raw <hN> elements and search matches as <mark>
// elements, so raw HTML must pass through the renderer untouched.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Options controls rendering.
type Options struct {
	HighlightStyle string // Chroma style for fenced code; empty disables highlighting
	HardWraps      bool   // Render soft line breaks as <br>
}

// Renderer wraps a configured goldmark instance. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer(opts Options) *Renderer {
	exts := []goldmark.Extender{extension.GFM}
	if opts.HighlightStyle != "" {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(opts.HighlightStyle),
		))
	}

	rendererOpts := []renderer.Option{html.WithUnsafe()}
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithRendererOptions(rendererOpts...),
		),
	}
}

// Render converts Markdown source to HTML.
func (r *Renderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// Summary returns the text of the first paragraph in src, trimmed to at
// most limit runes. It is used for the page description.
func (r *Renderer) Summary(src []byte, limit int) string {
	doc := r.md.Parser().Parse(text.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() != ast.KindParagraph {
			continue
		}
		s := []rune(plainText(n, src))
		if len(s) > limit {
			return string(s[:limit]) + "…"
		}
		return string(s)
	}
	return ""
}

// plainText gets the inline text content of a goldmark AST node.
func plainText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(plainText(c, src))
		}
	}
	return string(bytes.TrimSpace(buf.Bytes()))
}
