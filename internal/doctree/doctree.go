package doctree

// Heading is one heading line recognised in a document.
type Heading struct {
	Title  string `json:"title"`  // Heading text, trimmed (may be empty)
	Level  int    `json:"level"`  // Number of leading '#' markers, >= 1
	Anchor string `json:"anchor"` // Slug used as the element id
}

// Node is a heading placed in the document hierarchy.
type Node struct {
	Heading
	Children []*Node `json:"children,omitempty"` // Subsections, in document order
}

// Count returns the total number of nodes in a forest.
func Count(forest []*Node) int {
	n := 0
	Walk(forest, func(*Node, int) bool {
		n++
		return true
	})
	return n
}

// Walk visits every node of the forest in document order. depth is 1 for
// roots. Returning false from fn skips the node's children.
func Walk(forest []*Node, fn func(n *Node, depth int) bool) {
	type frame struct {
		node  *Node
		depth int
	}
	stack := make([]frame, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, frame{forest[i], 1})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top.node, top.depth) {
			continue
		}
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{top.node.Children[i], top.depth + 1})
		}
	}
}

// Flatten returns the headings of a forest in document order.
func Flatten(forest []*Node) []Heading {
	var out []Heading
	Walk(forest, func(n *Node, _ int) bool {
		out = append(out, n.Heading)
		return true
	})
	return out
}
