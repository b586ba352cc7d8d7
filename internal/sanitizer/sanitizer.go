// Package sanitizer strips rendered document HTML down to the elements and
// attributes a Markdown document legitimately produces.
package sanitizer

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Sanitize returns a sanitized copy of b. Elements outside the allow list
// are removed together with their children; disallowed attributes are
// dropped. Links get rel="nofollow".
func Sanitize(b []byte) []byte {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(b), body)
	if err != nil {
		return []byte{}
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		if sanitize(n) {
			html.Render(&buf, n)
		}
	}
	return buf.Bytes()
}

// sanitize cleans n in place and reports whether it should be kept.
func sanitize(n *html.Node) bool {
	switch n.Type {
	case html.TextNode:
		return true
	case html.ElementNode:
		if n.Namespace != "" {
			return false
		}
		n.Data = strings.ToLower(n.Data)
		if !allowElems[n.Data] {
			return false
		}

		keep := n.Attr[:0]
		for _, attr := range n.Attr {
			if attr.Namespace != "" {
				continue
			}
			if allowed(n.Data, attr) {
				keep = append(keep, attr)
			}
		}
		if n.Data == "a" {
			keep = append(keep, html.Attribute{Key: "rel", Val: "nofollow"})
		}
		n.Attr = keep

		var remove []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !sanitize(c) {
				remove = append(remove, c)
			}
		}
		for _, c := range remove {
			n.RemoveChild(c)
		}
		return true
	default:
		return false
	}
}

func allowed(elem string, attr html.Attribute) bool {
	switch attr.Key {
	case "id", "class", "title":
		return true
	case "href":
		return elem == "a" && safeURL(attr.Val)
	case "src":
		return elem == "img" && safeURL(attr.Val)
	case "alt", "width", "height":
		return elem == "img"
	case "style":
		// Code highlighting and the table of contents use inline styles.
		return elem == "pre" || elem == "span" || elem == "code" || elem == "div" || elem == "details"
	case "align":
		return elem == "td" || elem == "th"
	case "start":
		return elem == "ol"
	case "type", "checked", "disabled":
		return elem == "input"
	case "open":
		return elem == "details"
	}
	return false
}

func safeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return true
	}
	return false
}

var allowElems = map[string]bool{
	"a": true, "abbr": true, "b": true, "blockquote": true, "br": true,
	"code": true, "dd": true, "del": true, "details": true, "div": true,
	"dl": true, "dt": true, "em": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "hr": true, "i": true, "img": true,
	"input": true, "ins": true, "kbd": true, "li": true, "mark": true,
	"ol": true, "p": true, "pre": true, "q": true, "s": true, "span": true,
	"strong": true, "sub": true, "summary": true, "sup": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}
