package tree

// Node is one entry in the hierarchical input data. Children is nil for
// leaves. Fields keeps every decoded attribute of the source record so custom
// renderers can reach values beyond the id/label pair.
type Node struct {
	ID       string
	Label    string
	Children []*Node
	Fields   map[string]any
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n == nil || len(n.Children) == 0
}

// FindNode locates the first node whose id matches, walking the forest in
// depth-first pre-order. Input must be acyclic; a cyclic graph recurses
// without bound.
func FindNode(nodes []*Node, id string) (*Node, bool) {
	if id == "" {
		return nil, false
	}
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if node.ID == id {
			return node, true
		}
		if found, ok := FindNode(node.Children, id); ok {
			return found, true
		}
	}
	return nil, false
}

// FindChildren returns the ordered children of the node with the given id, or
// an empty slice when the node is absent or a leaf.
func FindChildren(nodes []*Node, id string) []*Node {
	node, ok := FindNode(nodes, id)
	if !ok || node.Children == nil {
		return nil
	}
	return node.Children
}

// PathTo returns the ancestor chain ending at the node with the given id,
// from root to the node itself. Returns nil when the id is absent.
func PathTo(nodes []*Node, id string) []*Node {
	if id == "" {
		return nil
	}
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if node.ID == id {
			return []*Node{node}
		}
		if chain := PathTo(node.Children, id); chain != nil {
			return append([]*Node{node}, chain...)
		}
	}
	return nil
}
