package dom

import (
	"bytes"
	"strings"

	"github.com/psilva261/minimal/dom/sel"
	"github.com/psilva261/minimal/logger"
	"golang.org/x/net/html"
)

const (
	HTMLNamespace   = "http://www.w3.org/1999/xhtml"
	SVGNamespace    = "http://www.w3.org/2000/svg"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
	XLinkNamespace  = "http://www.w3.org/1999/xlink"
	XMLNamespace    = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace  = "http://www.w3.org/2000/xmlns/"
)

// the parser stores foreign namespaces by their short names
var shortNS = map[string]string{
	SVGNamespace:    "svg",
	MathMLNamespace: "math",
	XLinkNamespace:  "xlink",
	XMLNamespace:    "xml",
	XMLNSNamespace:  "xmlns",
}

func namespaceURI(short string) string {
	for uri, s := range shortNS {
		if s == short {
			return uri
		}
	}
	return short
}

func shortNamespace(uri string) string {
	if s, ok := shortNS[uri]; ok {
		return s
	}
	return uri
}

type Element struct {
	*Node
}

// HTMLElement is an Element of the HTML namespace.
type HTMLElement struct {
	*Element
}

func (el *Element) isHTML() bool {
	return el.n.Namespace == "" && !el.d.nullNS[el.n]
}

// AsHTMLElement narrows el; elements of the SVG, MathML or other
// namespaces are not HTML elements.
func (el *Element) AsHTMLElement() (*HTMLElement, bool) {
	if !el.isHTML() {
		return nil, false
	}
	return &HTMLElement{Element: el}, true
}

func (el *Element) TagName() string {
	return el.NodeName()
}

func (el *Element) LocalName() string {
	return el.n.Data
}

// NamespaceURI returns the element's namespace, ok is false for
// elements created without one.
func (el *Element) NamespaceURI() (uri string, ok bool) {
	if el.d.nullNS[el.n] {
		return "", false
	}
	if el.n.Namespace == "" {
		return HTMLNamespace, true
	}
	return namespaceURI(el.n.Namespace), true
}

func (el *Element) Prefix() (p string, ok bool) {
	p, ok = el.d.prefixes[el.n]
	return
}

func (el *Element) Id() string {
	return attr(*el.n, "id")
}

func (el *Element) ClassName() string {
	return attr(*el.n, "class")
}

func (el *Element) SetClassName(s string) {
	el.d.setAttr(el.n, "", "class", s)
}

func (el *Element) normalize(name string) string {
	if el.isHTML() {
		return strings.ToLower(name)
	}
	return name
}

func (el *Element) findAttr(name string) int {
	name = el.normalize(name)
	for i, a := range el.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return i
		}
		if a.Namespace != "" && a.Namespace+":"+a.Key == name {
			return i
		}
	}
	return -1
}

func (el *Element) GetAttribute(name string) (string, bool) {
	i := el.findAttr(name)
	if i < 0 {
		return "", false
	}
	return el.n.Attr[i].Val, true
}

func (el *Element) HasAttribute(name string) bool {
	return el.findAttr(name) >= 0
}

func (el *Element) GetAttributeNode(name string) *Attr {
	i := el.findAttr(name)
	if i < 0 {
		return nil
	}
	return &Attr{owner: el, a: el.n.Attr[i]}
}

// GetAttributeNS looks the attribute up by namespace URI and local name.
func (el *Element) GetAttributeNS(ns, local string) (string, bool) {
	short := shortNamespace(ns)
	for _, a := range el.n.Attr {
		if a.Namespace == short && a.Key == local {
			return a.Val, true
		}
	}
	return "", false
}

func (el *Element) SetAttribute(name, value string) error {
	if !IsValidAttributeName(name) {
		return ErrInvalidCharacter("invalid attribute name " + name)
	}
	el.d.setAttr(el.n, "", el.normalize(name), value)
	return nil
}

func (el *Element) SetAttributeNS(ns, qname, value string) error {
	local := qname
	if i := strings.Index(qname, ":"); i >= 0 {
		local = qname[i+1:]
	}
	if !IsValidAttributeName(local) {
		return ErrInvalidCharacter("invalid attribute name " + qname)
	}
	el.d.setAttr(el.n, shortNamespace(ns), local, value)
	return nil
}

// ToggleAttribute removes name if present and adds it otherwise. The
// result reports whether the attribute is present afterwards.
func (el *Element) ToggleAttribute(name string) (bool, error) {
	if !IsValidAttributeName(name) {
		return false, ErrInvalidCharacter("invalid attribute name " + name)
	}
	if el.HasAttribute(name) {
		el.d.rmAttr(el.n, el.normalize(name))
		return false, nil
	}
	el.d.setAttr(el.n, "", el.normalize(name), "")
	return true, nil
}

// RemoveAttribute removes name. Removing an absent attribute is not an
// error, an invalid name is.
func (el *Element) RemoveAttribute(name string) error {
	if !IsValidAttributeName(name) {
		return ErrInvalidCharacter("invalid attribute name " + name)
	}
	el.d.rmAttr(el.n, el.normalize(name))
	return nil
}

func IsValidAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= 0x20, r == 0x7f:
			return false
		case strings.ContainsRune(`"'>/=`, r):
			return false
		}
	}
	return true
}

func (el *Element) FirstElementChild() *Element {
	for c := el.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return el.d.element(c)
		}
	}
	return nil
}

func (el *Element) LastElementChild() *Element {
	for c := el.n.LastChild; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return el.d.element(c)
		}
	}
	return nil
}

func (el *Element) PreviousElementSibling() *Element {
	for s := el.n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return el.d.element(s)
		}
	}
	return nil
}

func (el *Element) NextElementSibling() *Element {
	for s := el.n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return el.d.element(s)
		}
	}
	return nil
}

func (el *Element) Children() *NodeList {
	nl := &NodeList{}
	for c := el.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			nl.nodes = append(nl.nodes, el.d.node(c))
		}
	}
	return nl
}

// InsertAdjacentElement inserts other relative to el. Position is one of
// beforebegin, afterbegin, beforeend and afterend. The result is nil
// when el has no parent and the position needs one.
func (el *Element) InsertAdjacentElement(position string, other *Element) (*Element, error) {
	if other == nil {
		return nil, ErrHierarchyRequest("nil element")
	}
	var err error
	switch strings.ToLower(position) {
	case "beforebegin":
		p := el.ParentNode()
		if p == nil {
			return nil, nil
		}
		_, err = p.InsertBefore(other.Node, el.Node)
	case "afterbegin":
		_, err = el.InsertBefore(other.Node, el.FirstChild())
	case "beforeend":
		_, err = el.AppendChild(other.Node)
	case "afterend":
		p := el.ParentNode()
		if p == nil {
			return nil, nil
		}
		_, err = p.InsertBefore(other.Node, el.NextSibling())
	default:
		return nil, ErrSyntax("'" + position + "' is not one of 'beforebegin', 'afterbegin', 'beforeend', or 'afterend'")
	}
	if err != nil {
		return nil, err
	}
	return other, nil
}

func (el *Element) root() *html.Node {
	r := el.n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

func (el *Element) Matches(s string) (bool, error) {
	res, err := sel.Select(s, el.root(), false, false)
	if err != nil {
		return false, ErrSyntax(err.Error())
	}
	for _, n := range res {
		if n == el.n {
			return true, nil
		}
	}
	return false, nil
}

// Closest returns the nearest inclusive ancestor matching s.
func (el *Element) Closest(s string) (*Element, error) {
	res, err := sel.Select(s, el.root(), false, false)
	if err != nil {
		return nil, ErrSyntax(err.Error())
	}
	matched := make(map[*html.Node]bool, len(res))
	for _, n := range res {
		matched[n] = true
	}
	for a := el.n; a != nil && a.Type == html.ElementNode; a = a.Parent {
		if matched[a] {
			return el.d.element(a), nil
		}
	}
	return nil, nil
}

func (el *Element) QuerySelector(s string) (*Element, error) {
	nl, err := el.QuerySelectorAll(s)
	if err != nil || nl.Length() == 0 {
		return nil, err
	}
	e, _ := nl.Item(0).AsElement()
	return e, nil
}

func (el *Element) QuerySelectorAll(s string) (*NodeList, error) {
	return el.d.selectAll(s, el.n)
}

func (el *Element) OuterHTML() string {
	buf := bytes.NewBufferString("")
	if err := html.Render(buf, el.n); err != nil {
		log.Errorf("render: %v", err)
		return ""
	}
	return buf.String()
}

func (h *HTMLElement) Style() *Style {
	return &Style{d: h.d, n: h.n}
}

// OffsetParent returns the nearest positioned ancestor, or a table cell
// or table, or the body. Detached elements, the body and the root element
// have none.
func (h *HTMLElement) OffsetParent() *Element {
	if h.n.Data == "body" || h.n.Data == "html" {
		return nil
	}
	if !h.d.node(h.d.doc).Contains(h.Node) {
		return nil
	}
	for a := h.n.Parent; a != nil && a.Type == html.ElementNode; a = a.Parent {
		if a.Data == "body" {
			return h.d.element(a)
		}
		if p := (&Style{d: h.d, n: a}).GetPropertyValue("position"); p != "" && p != "static" {
			return h.d.element(a)
		}
		if a.Namespace == "" && (a.Data == "td" || a.Data == "th" || a.Data == "table") {
			return h.d.element(a)
		}
	}
	return nil
}
