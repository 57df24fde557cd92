package minimal

import (
	"strconv"

	"github.com/psilva261/minimal/dom"
)

// Element carries the accessors shared by every element. HTMLElement
// embeds it, so both kinds expose the same surface.
type Element struct {
	*dom.Element
}

// HTMLElement is an Element of the HTML namespace.
type HTMLElement struct {
	Element
	html *dom.HTMLElement
}

func wrapHTML(h *dom.HTMLElement) *HTMLElement {
	return &HTMLElement{Element: Element{Element: h.Element}, html: h}
}

func toHTML(op string, el *dom.Element) (*HTMLElement, error) {
	h, ok := el.AsHTMLElement()
	if !ok {
		return nil, narrowError(op, KindElement, KindHTMLElement, el.TagName())
	}
	return wrapHTML(h), nil
}

func (el *Element) ToHTML() (*HTMLElement, error) {
	return toHTML("Element.ToHTML", el.Element)
}

func (el *Element) HasClass(name string) bool {
	return hasClass(el.ClassName(), name)
}

// AddClass appends name without checking for duplicates.
func (el *Element) AddClass(name string) {
	el.SetClassName(addClass(el.ClassName(), name))
}

func (el *Element) RemoveClass(name string) {
	el.SetClassName(removeClass(el.ClassName(), name))
}

// ToggleClass removes name if HasClass reports it, otherwise adds it.
// A class matched by HasClass but not preceded by a space survives.
func (el *Element) ToggleClass(name string) {
	if el.HasClass(name) {
		el.RemoveClass(name)
	} else {
		el.AddClass(name)
	}
}

func (el *Element) GetNamespaceURI() (string, error) {
	ns, ok := el.NamespaceURI()
	if !ok {
		return "", newError("Element.GetNamespaceURI", el.LocalName(), ErrMissing, nil)
	}
	return ns, nil
}

func (el *Element) GetPrefix() (string, error) {
	p, ok := el.Prefix()
	if !ok {
		return "", newError("Element.GetPrefix", el.LocalName(), ErrMissing, nil)
	}
	return p, nil
}

func (el *Element) GetParentNode() (*Node, error) {
	return node("Element.GetParentNode", el.ParentNode())
}

func (el *Element) GetFirstChild() (*Node, error) {
	return node("Element.GetFirstChild", el.FirstChild())
}

func (el *Element) GetLastChild() (*Node, error) {
	return node("Element.GetLastChild", el.LastChild())
}

func (el *Element) GetPrevSibling() (*Node, error) {
	return node("Element.GetPrevSibling", el.PreviousSibling())
}

func (el *Element) GetNextSibling() (*Node, error) {
	return node("Element.GetNextSibling", el.NextSibling())
}

func (el *Element) ParentElementEl() (*Element, error) {
	return element("Element.ParentElementEl", el.ParentElement())
}

func (el *Element) FirstElementChildEl() (*Element, error) {
	return element("Element.FirstElementChildEl", el.FirstElementChild())
}

func (el *Element) LastElementChildEl() (*Element, error) {
	return element("Element.LastElementChildEl", el.LastElementChild())
}

func (el *Element) PrevElementSiblingEl() (*Element, error) {
	return element("Element.PrevElementSiblingEl", el.PreviousElementSibling())
}

func (el *Element) NextElementSiblingEl() (*Element, error) {
	return element("Element.NextElementSiblingEl", el.NextElementSibling())
}

func (el *Element) ParentElementHTML() (*HTMLElement, error) {
	return htmlElement("Element.ParentElementHTML", el.ParentElement())
}

func (el *Element) FirstElementChildHTML() (*HTMLElement, error) {
	return htmlElement("Element.FirstElementChildHTML", el.FirstElementChild())
}

func (el *Element) LastElementChildHTML() (*HTMLElement, error) {
	return htmlElement("Element.LastElementChildHTML", el.LastElementChild())
}

func (el *Element) PrevElementSiblingHTML() (*HTMLElement, error) {
	return htmlElement("Element.PrevElementSiblingHTML", el.PreviousElementSibling())
}

func (el *Element) NextElementSiblingHTML() (*HTMLElement, error) {
	return htmlElement("Element.NextElementSiblingHTML", el.NextElementSibling())
}

func (el *Element) GetAttr(name string) (string, error) {
	v, ok := el.GetAttribute(name)
	if !ok {
		return "", newError("Element.GetAttr", strconv.Quote(name), ErrMissing, nil)
	}
	return v, nil
}

func (el *Element) GetAttrNode(name string) (*dom.Attr, error) {
	a := el.GetAttributeNode(name)
	if a == nil {
		return nil, newError("Element.GetAttrNode", strconv.Quote(name), ErrMissing, nil)
	}
	return a, nil
}

func (el *Element) GetAttrNS(ns, local string) (string, error) {
	v, ok := el.GetAttributeNS(ns, local)
	if !ok {
		return "", newError("Element.GetAttrNS", strconv.Quote(ns)+", "+strconv.Quote(local), ErrMissing, nil)
	}
	return v, nil
}

// ToggleAttr reports whether name is present afterwards.
func (el *Element) ToggleAttr(name string) (bool, error) {
	on, err := el.ToggleAttribute(name)
	if err != nil {
		return false, newError("Element.ToggleAttr", strconv.Quote(name), ErrRejected, err)
	}
	return on, nil
}

// RemoveAttr fails only when the DOM rejects the call, not when name
// is absent.
func (el *Element) RemoveAttr(name string) error {
	if err := el.RemoveAttribute(name); err != nil {
		return newError("Element.RemoveAttr", strconv.Quote(name), ErrRejected, err)
	}
	return nil
}

// InsertAdjElement inserts other at position (beforebegin, afterbegin,
// beforeend or afterend) and returns it.
func (el *Element) InsertAdjElement(position string, other *Element) (*Element, error) {
	const op = "Element.InsertAdjElement"
	if other == nil {
		return nil, newError(op, strconv.Quote(position), ErrMissing, nil)
	}
	res, err := el.InsertAdjacentElement(position, other.Element)
	if err != nil {
		return nil, newError(op, strconv.Quote(position), ErrRejected, err)
	}
	if res == nil {
		return nil, newError(op, strconv.Quote(position), ErrMissing, nil)
	}
	return &Element{Element: res}, nil
}

// ClosestEl returns the nearest inclusive ancestor matching s.
func (el *Element) ClosestEl(s string) (*Element, error) {
	return querySelectorEl("Element.ClosestEl", el.Closest, s)
}

func (el *Element) ClosestHTML(s string) (*HTMLElement, error) {
	return querySelectorHTML("Element.ClosestHTML", el.Closest, s)
}

func (el *Element) QuerySelectorEl(s string) (*Element, error) {
	return querySelectorEl("Element.QuerySelectorEl", el.QuerySelector, s)
}

func (el *Element) QuerySelectorHTML(s string) (*HTMLElement, error) {
	return querySelectorHTML("Element.QuerySelectorHTML", el.QuerySelector, s)
}

func (el *Element) QuerySelectorList(s string) (*NodeList, error) {
	return querySelectorList("Element.QuerySelectorList", el.QuerySelectorAll, s)
}

// DOM returns the wrapped handle.
func (h *HTMLElement) DOM() *dom.HTMLElement {
	if h == nil {
		return nil
	}
	return h.html
}

func (h *HTMLElement) ToEl() (*Element, error) {
	if !h.valid() {
		return nil, narrowError("HTMLElement.ToEl", KindHTMLElement, KindElement, "")
	}
	return &Element{Element: h.html.Element}, nil
}

// valid is false for an HTMLElement not built from a DOM handle.
func (h *HTMLElement) valid() bool {
	return h != nil && h.html != nil
}

// GetStyleProperty is empty when the inline style does not set name.
func (h *HTMLElement) GetStyleProperty(name string) string {
	if !h.valid() {
		return ""
	}
	return h.html.Style().GetPropertyValue(name)
}

func (h *HTMLElement) SetStyleProperty(name, value string) error {
	if !h.valid() {
		return newError("HTMLElement.SetStyleProperty", strconv.Quote(name), ErrMissing, nil)
	}
	if err := h.html.Style().SetProperty(name, value); err != nil {
		return newError("HTMLElement.SetStyleProperty", strconv.Quote(name), ErrRejected, err)
	}
	return nil
}

func (h *HTMLElement) OffsetParentEl() (*Element, error) {
	if !h.valid() {
		return nil, newError("HTMLElement.OffsetParentEl", "", ErrMissing, nil)
	}
	return element("HTMLElement.OffsetParentEl", h.html.OffsetParent())
}

func (h *HTMLElement) OffsetParentHTML() (*HTMLElement, error) {
	if !h.valid() {
		return nil, newError("HTMLElement.OffsetParentHTML", "", ErrMissing, nil)
	}
	return htmlElement("HTMLElement.OffsetParentHTML", h.html.OffsetParent())
}

func node(op string, n *dom.Node) (*Node, error) {
	if n == nil {
		return nil, newError(op, "", ErrMissing, nil)
	}
	return &Node{Node: n}, nil
}

func element(op string, el *dom.Element) (*Element, error) {
	if el == nil {
		return nil, newError(op, "", ErrMissing, nil)
	}
	return &Element{Element: el}, nil
}

func htmlElement(op string, el *dom.Element) (*HTMLElement, error) {
	if el == nil {
		return nil, newError(op, "", ErrMissing, nil)
	}
	return toHTML(op, el)
}
