package dom

import (
	"strings"

	"golang.org/x/net/html"
)

type NodeType int

const (
	ElementNode  NodeType = 1
	TextNode     NodeType = 3
	CommentNode  NodeType = 8
	DocumentNode NodeType = 9
	DoctypeNode  NodeType = 10
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case DocumentNode:
		return "Document"
	case DoctypeNode:
		return "DocumentType"
	}
	return "Unknown"
}

// Node is a handle to a node of a Document. Handles are cached per
// underlying html.Node, so the same node always yields the same *Node.
type Node struct {
	d *Document
	n *html.Node
}

// Raw returns the underlying parser node.
func (nd *Node) Raw() *html.Node {
	return nd.n
}

func (nd *Node) OwnerDocument() *Document {
	return nd.d
}

func (nd *Node) NodeType() NodeType {
	switch nd.n.Type {
	case html.ElementNode:
		return ElementNode
	case html.TextNode:
		return TextNode
	case html.CommentNode:
		return CommentNode
	case html.DocumentNode:
		return DocumentNode
	case html.DoctypeNode:
		return DoctypeNode
	}
	return 0
}

func (nd *Node) NodeName() string {
	switch nd.n.Type {
	case html.CommentNode:
		return "#comment"
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return nd.n.Data
	}
	if nd.n.Namespace == "" && !nd.d.nullNS[nd.n] {
		return strings.ToUpper(nd.n.Data)
	}
	if p, ok := nd.d.prefixes[nd.n]; ok {
		return p + ":" + nd.n.Data
	}
	return nd.n.Data
}

func (nd *Node) IsSameNode(o *Node) bool {
	return o != nil && nd.n == o.n
}

// Contains reports whether o is nd or one of its descendants.
func (nd *Node) Contains(o *Node) bool {
	if o == nil {
		return false
	}
	for p := o.n; p != nil; p = p.Parent {
		if p == nd.n {
			return true
		}
	}
	return false
}

func (nd *Node) ParentNode() *Node {
	return nd.d.node(nd.n.Parent)
}

func (nd *Node) ParentElement() *Element {
	p := nd.n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return nd.d.element(p)
}

func (nd *Node) FirstChild() *Node {
	return nd.d.node(nd.n.FirstChild)
}

func (nd *Node) LastChild() *Node {
	return nd.d.node(nd.n.LastChild)
}

func (nd *Node) PreviousSibling() *Node {
	return nd.d.node(nd.n.PrevSibling)
}

func (nd *Node) NextSibling() *Node {
	return nd.d.node(nd.n.NextSibling)
}

func (nd *Node) HasChildNodes() bool {
	return nd.n.FirstChild != nil
}

func (nd *Node) ChildNodes() *NodeList {
	nl := &NodeList{}
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		nl.nodes = append(nl.nodes, nd.d.node(c))
	}
	return nl
}

func (nd *Node) TextContent() string {
	switch nd.n.Type {
	case html.TextNode, html.CommentNode:
		return nd.n.Data
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(nd.n)
	return b.String()
}

// AsElement narrows the node to an Element.
func (nd *Node) AsElement() (*Element, bool) {
	if nd.n.Type != html.ElementNode {
		return nil, false
	}
	return &Element{Node: nd}, true
}

// AsHTMLElement narrows the node to an element of the HTML namespace.
func (nd *Node) AsHTMLElement() (*HTMLElement, bool) {
	el, ok := nd.AsElement()
	if !ok {
		return nil, false
	}
	return el.AsHTMLElement()
}

// AppendChild moves c to the end of nd's children.
func (nd *Node) AppendChild(c *Node) (*Node, error) {
	return nd.InsertBefore(c, nil)
}

// InsertBefore moves c in front of ref, or to the end when ref is nil.
func (nd *Node) InsertBefore(c, ref *Node) (*Node, error) {
	if c == nil {
		return nil, ErrHierarchyRequest("nil node")
	}
	if c.n.Type == html.DocumentNode {
		return nil, ErrHierarchyRequest("a document cannot be inserted")
	}
	if c.Contains(nd) {
		return nil, ErrHierarchyRequest("the new child contains the parent")
	}
	switch nd.n.Type {
	case html.ElementNode:
	case html.DocumentNode:
		if c.n.Type == html.ElementNode && nd.documentElementOtherThan(c.n) {
			return nil, ErrHierarchyRequest("document already has a document element")
		}
		if c.n.Type == html.TextNode {
			return nil, ErrHierarchyRequest("text cannot be a child of a document")
		}
	default:
		return nil, ErrHierarchyRequest(nd.NodeName() + " cannot have children")
	}
	var r *html.Node
	if ref != nil {
		if ref.n.Parent != nd.n {
			return nil, ErrNotFound("reference node is not a child")
		}
		r = ref.n
		if r == c.n {
			r = r.NextSibling
		}
	}
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	nd.n.InsertBefore(c.n, r)
	nd.d.addMutation(Insert, c.n)
	return c, nil
}

func (nd *Node) RemoveChild(c *Node) (*Node, error) {
	if c == nil || c.n.Parent != nd.n {
		return nil, ErrNotFound("node is not a child")
	}
	nd.n.RemoveChild(c.n)
	nd.d.addMutation(Rm, nd.n)
	return c, nil
}

func (nd *Node) documentElementOtherThan(n *html.Node) bool {
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c != n {
			return true
		}
	}
	return false
}
