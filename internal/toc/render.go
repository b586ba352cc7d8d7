package toc

import (
	"fmt"
	"strings"

	"github.com/dgallion1/mdview/internal/doctree"
)

// DefaultIndent is the per-level left margin of the table of contents, in pixels.
const DefaultIndent = 10

// Render writes the forest as nested navigation markup. A node with
// children becomes a <details> element whose summary links to the node's
// anchor; a leaf becomes a plain linked <div>. Each level is indented by
// indentUnit pixels more than its parent, roots by one unit.
func Render(forest []*doctree.Node, indentUnit int) string {
	return renderLevel(forest, indentUnit, indentUnit)
}

func renderLevel(nodes []*doctree.Node, unit, indent int) string {
	frags := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if len(n.Children) > 0 {
			frags = append(frags,
				fmt.Sprintf("<details style='margin-left:%dpx;'><summary><a href='#%s'>%s</a></summary>", indent, n.Anchor, n.Title),
				renderLevel(n.Children, unit, indent+unit),
				"</details>",
			)
			continue
		}
		frags = append(frags, fmt.Sprintf("<div style='margin-left:%dpx;'><a href='#%s'>%s</a></div>", indent, n.Anchor, n.Title))
	}
	return strings.Join(frags, "\n")
}
