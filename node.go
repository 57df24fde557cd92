package minimal

import "github.com/psilva261/minimal/dom"

type Node struct {
	*dom.Node
}

func (n *Node) ToEl() (*Element, error) {
	el, ok := n.AsElement()
	if !ok {
		return nil, narrowError("Node.ToEl", KindNode, KindElement, n.NodeName())
	}
	return &Element{Element: el}, nil
}

func (n *Node) ToHTML() (*HTMLElement, error) {
	el, ok := n.AsElement()
	if !ok {
		return nil, narrowError("Node.ToHTML", KindNode, KindHTMLElement, n.NodeName())
	}
	return toHTML("Node.ToHTML", el)
}
