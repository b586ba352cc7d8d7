package toc

import "github.com/dgallion1/mdview/internal/doctree"

// BuildTree nests a flat heading list into a forest. Each heading becomes a
// child of the closest preceding heading with a strictly smaller level, or
// a root when there is none. Skipped levels are not filled in.
func BuildTree(headings []doctree.Heading) []*doctree.Node {
	// Root is level 0, so every real heading nests under it.
	root := &doctree.Node{}
	stack := []*doctree.Node{root}

	for _, h := range headings {
		for len(stack) > 1 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}

		node := &doctree.Node{Heading: h}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}

	return root.Children
}
