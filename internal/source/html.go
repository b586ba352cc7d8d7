package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLDecoder converts HTML files to Markdown, keeping headings, paragraphs,
// list items, quotes and preformatted blocks.
type HTMLDecoder struct{}

func (d *HTMLDecoder) Decode(r io.Reader, filename string) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	out := &Document{Title: titleFromFilename(filename)}

	// Extract title from <title> tag if present.
	if title := findTitle(doc); title != "" {
		out.Title = title
	}

	var blocks []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				blocks = append(blocks, atxHeading(level, textContent(n)))
				return
			}

			// Skip non-content elements.
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "pre":
				blocks = append(blocks, "```\n"+strings.Trim(rawText(n), "\n")+"\n```")
				return
			case "li":
				if t := textContent(n); t != "" {
					blocks = append(blocks, "- "+t)
				}
				return
			case "blockquote":
				if t := textContent(n); t != "" {
					blocks = append(blocks, "> "+t)
				}
				return
			case "p", "td":
				if t := textContent(n); t != "" {
					blocks = append(blocks, t)
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Find <body> or use whole document.
	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	out.Markdown = joinBlocks(blocks)
	return out, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// textContent returns the node's text with whitespace runs collapsed.
func textContent(n *html.Node) string {
	return strings.Join(strings.Fields(rawText(n)), " ")
}

func rawText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
