package domain

// BuildCommentTree organizes a flat comment list into a tree using the
// ReplyTo relation. A comment whose parent is not present in the list is
// promoted to a top-level node, so partial or out-of-order data still
// renders. Replies deeper than maxDepth levels below a root are omitted
// from the tree, not from the underlying list; re-querying at a greater
// depth reuses the same flat data.
func BuildCommentTree(flat []Post, maxDepth int) []CommentNode {
	if maxDepth < 1 {
		maxDepth = 1
	}

	present := make(map[string]bool, len(flat))
	for _, p := range flat {
		present[p.ID] = true
	}

	children := make(map[string][]Post, len(flat))
	var roots []Post
	for _, p := range flat {
		if p.ReplyTo == "" || !present[p.ReplyTo] {
			roots = append(roots, p)
			continue
		}
		children[p.ReplyTo] = append(children[p.ReplyTo], p)
	}

	nodes := make([]CommentNode, 0, len(roots))
	for _, r := range roots {
		nodes = append(nodes, buildNode(r, children, 0, maxDepth))
	}
	return nodes
}

func buildNode(p Post, children map[string][]Post, depth, maxDepth int) CommentNode {
	node := CommentNode{Post: p}
	if depth+1 > maxDepth {
		return node
	}
	for _, c := range children[p.ID] {
		node.Children = append(node.Children, buildNode(c, children, depth+1, maxDepth))
	}
	return node
}
