package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/psilva261/minimal/dom/sel"
	"github.com/psilva261/minimal/logger"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Document struct {
	doc    *html.Node
	window *Window
	url    string

	refs     map[*html.Node]*Node
	nullNS   map[*html.Node]bool
	prefixes map[*html.Node]string

	mutations chan Mutation
}

func NewDocument(doc *html.Node) (d *Document) {
	d = &Document{
		doc: doc,
		url: "about:blank",
	}
	d.refs = make(map[*html.Node]*Node)
	d.nullNS = make(map[*html.Node]bool)
	d.prefixes = make(map[*html.Node]string)
	d.mutations = make(chan Mutation, 1024)
	return
}

func Parse(r io.Reader) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return NewDocument(doc), nil
}

func ParseString(htm string) (*Document, error) {
	return Parse(strings.NewReader(htm))
}

// node returns the cached handle for n.
func (d *Document) node(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	nd, ok := d.refs[n]
	if ok {
		return nd
	}
	nd = &Node{d: d, n: n}
	d.refs[n] = nd
	return nd
}

func (d *Document) element(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{Node: d.node(n)}
}

func (d *Document) Node() *Node {
	return d.node(d.doc)
}

func (d *Document) Doc() *html.Node {
	return d.doc
}

func (d *Document) DefaultView() *Window {
	return d.window
}

func (d *Document) URL() string {
	return d.url
}

// Location is nil for documents without a window.
func (d *Document) Location() *Location {
	if d.window == nil {
		return nil
	}
	return d.window.loc
}

func (d *Document) DocumentElement() *Element {
	for c := d.doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.element(c)
		}
	}
	return nil
}

func (d *Document) child(tags ...string) *HTMLElement {
	de := d.DocumentElement()
	if de == nil {
		return nil
	}
	for c := de.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Namespace != "" {
			continue
		}
		for _, t := range tags {
			if c.Data == t {
				h, _ := d.element(c).AsHTMLElement()
				return h
			}
		}
	}
	return nil
}

func (d *Document) Body() *HTMLElement {
	return d.child("body", "frameset")
}

func (d *Document) Head() *HTMLElement {
	return d.child("head")
}

// SetBody replaces the body element with b, or appends b to the root
// element when there is no body yet.
func (d *Document) SetBody(b *HTMLElement) error {
	if b == nil || (b.n.Data != "body" && b.n.Data != "frameset") {
		return ErrHierarchyRequest("the new body must be a body or frameset element")
	}
	old := d.Body()
	if old != nil && old.n == b.n {
		return nil
	}
	de := d.DocumentElement()
	if de == nil {
		return ErrHierarchyRequest("document has no document element")
	}
	if old == nil {
		_, err := de.AppendChild(b.Node)
		return err
	}
	if _, err := de.InsertBefore(b.Node, old.Node); err != nil {
		return err
	}
	_, err := de.RemoveChild(old.Node)
	return err
}

func (d *Document) GetElementById(id string) *Element {
	return d.element(grepById(d.doc, id))
}

func (d *Document) QuerySelector(s string) (*Element, error) {
	nl, err := d.QuerySelectorAll(s)
	if err != nil || nl.Length() == 0 {
		return nil, err
	}
	e, _ := nl.Item(0).AsElement()
	return e, nil
}

func (d *Document) QuerySelectorAll(s string) (*NodeList, error) {
	return d.selectAll(s, d.doc)
}

// selectAll returns the descendants of root matching s in document
// order. Compound parts of s may match ancestors of root.
func (d *Document) selectAll(s string, root *html.Node) (*NodeList, error) {
	res, err := sel.SelectScoped(s, root)
	if err != nil {
		log.Printf("select %s: %v", s, err)
		return nil, ErrSyntax(fmt.Sprintf("'%v' is not a valid selector: %v", s, err))
	}
	matched := make(map[*html.Node]bool, len(res))
	for _, n := range res {
		matched[n] = true
	}
	nl := &NodeList{nodes: make([]*Node, 0, len(res))}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if matched[c] {
				nl.nodes = append(nl.nodes, d.node(c))
			}
			walk(c)
		}
	}
	walk(root)
	return nl, nil
}

func (d *Document) CreateElement(tag string) *Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     strings.ToLower(tag),
		DataAtom: atom.Lookup([]byte(strings.ToLower(tag))),
	}
	return d.element(n)
}

// CreateElementNS creates an element of namespace ns. An empty ns
// creates an element without namespace.
func (d *Document) CreateElementNS(ns, qname string) *Element {
	local := qname
	prefix := ""
	if i := strings.Index(qname, ":"); i >= 0 {
		prefix, local = qname[:i], qname[i+1:]
	}
	n := &html.Node{
		Type: html.ElementNode,
		Data: local,
	}
	switch ns {
	case HTMLNamespace:
		n.DataAtom = atom.Lookup([]byte(local))
	case "":
		d.nullNS[n] = true
	default:
		n.Namespace = shortNamespace(ns)
	}
	if prefix != "" {
		d.prefixes[n] = prefix
	}
	return d.element(n)
}

func (d *Document) CreateTextNode(data string) *Node {
	return d.node(&html.Node{Type: html.TextNode, Data: data})
}

func (d *Document) CreateComment(data string) *Node {
	return d.node(&html.Node{Type: html.CommentNode, Data: data})
}

func (d *Document) setAttr(n *html.Node, ns, key, val string) {
	newAttr := html.Attribute{
		Namespace: ns,
		Key:       key,
		Val:       val,
	}
	for i, a := range n.Attr {
		if a.Namespace == ns && a.Key == key {
			n.Attr[i] = newAttr
			d.addMutation(ChAttr, n)
			return
		}
	}
	n.Attr = append(n.Attr, newAttr)
	d.addMutation(ChAttr, n)
}

func (d *Document) rmAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key || a.Namespace != "" && a.Namespace+":"+a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			d.addMutation(RmAttr, n)
			return
		}
	}
}

func grepById(n *html.Node, id string) *html.Node {
	if id == "" {
		return nil
	}
	if n.Type == html.ElementNode {
		if attr(*n, "id") == id {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := grepById(c, id); res != nil {
			return res
		}
	}
	return nil
}

func attr(n html.Node, key string) (val string) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return
}
