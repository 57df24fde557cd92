package dom

// NodeList is a static snapshot of nodes.
type NodeList struct {
	nodes []*Node
}

func NewNodeList(nodes ...*Node) *NodeList {
	return &NodeList{nodes: append([]*Node(nil), nodes...)}
}

func (nl *NodeList) Length() int {
	return len(nl.nodes)
}

// Item returns the node at i or nil when i is out of range.
func (nl *NodeList) Item(i int) *Node {
	if i < 0 || i >= len(nl.nodes) {
		return nil
	}
	return nl.nodes[i]
}

func (nl *NodeList) Nodes() []*Node {
	return append([]*Node(nil), nl.nodes...)
}
