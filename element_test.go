package minimal

import (
	"errors"
	"testing"

	"github.com/psilva261/minimal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrowingRoundTrip(t *testing.T) {
	d := load(t)
	h := htm(t, d, "title")
	e, err := h.ToEl()
	require.NoError(t, err)
	back, err := e.ToHTML()
	require.NoError(t, err)
	assert.True(t, back.IsSameNode(h.Node))
	assert.Same(t, h.Node, back.Node)
}

func TestNarrowingFails(t *testing.T) {
	d := load(t)
	_, err := el(t, d, "pic").ToHTML()
	require.ErrorIs(t, err, ErrNarrow)
	var ne *NarrowError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, KindElement, ne.From)
	assert.Equal(t, KindHTMLElement, ne.To)
	assert.Equal(t, "svg", ne.Name)

	_, err = d.GetElementByIDHTML("dot")
	assert.ErrorIs(t, err, ErrNarrow)

	txt, err := el(t, d, "inner").GetFirstChild()
	require.NoError(t, err)
	_, err = txt.ToEl()
	assert.ErrorIs(t, err, ErrNarrow)
	_, err = txt.ToHTML()
	assert.ErrorIs(t, err, ErrNarrow)

	assert.Panics(t, func() { Must(el(t, d, "dot").ToHTML()) })
}

func TestNavigation(t *testing.T) {
	d := load(t)
	list := el(t, d, "list")

	first, err := list.FirstElementChildEl()
	require.NoError(t, err)
	assert.Equal(t, "l0", first.Id())
	last, err := list.LastElementChildHTML()
	require.NoError(t, err)
	assert.Equal(t, "l2", last.Id())

	next, err := first.NextElementSiblingHTML()
	require.NoError(t, err)
	assert.Equal(t, "l1", next.Id())
	prev, err := next.PrevElementSiblingEl()
	require.NoError(t, err)
	assert.Equal(t, "l0", prev.Id())

	parent, err := first.ParentElementHTML()
	require.NoError(t, err)
	assert.Equal(t, "list", parent.Id())

	// any node variants see the whitespace between the items
	n, err := first.GetNextSibling()
	require.NoError(t, err)
	assert.Equal(t, dom.TextNode, n.NodeType())
	n, err = list.GetFirstChild()
	require.NoError(t, err)
	assert.Equal(t, dom.TextNode, n.NodeType())
	n, err = list.GetParentNode()
	require.NoError(t, err)
	assert.Equal(t, "BODY", n.NodeName())

	_, err = prev.PrevElementSiblingEl()
	assert.ErrorIs(t, err, ErrMissing)
	_, err = last.NextElementSiblingHTML()
	assert.ErrorIs(t, err, ErrMissing)
	_, err = el(t, d, "l1").FirstElementChildEl()
	assert.ErrorIs(t, err, ErrMissing)
}

func TestNavigationEnds(t *testing.T) {
	d := load(t)
	root, err := d.DocumentElementEl()
	require.NoError(t, err)
	_, err = root.ParentElementEl()
	assert.ErrorIs(t, err, ErrMissing)
	p, err := root.GetParentNode()
	require.NoError(t, err)
	assert.Equal(t, dom.DocumentNode, p.NodeType())

	free := &Element{Element: d.CreateElement("p")}
	_, err = free.GetParentNode()
	assert.ErrorIs(t, err, ErrMissing)
	_, err = free.GetFirstChild()
	assert.ErrorIs(t, err, ErrMissing)
	_, err = free.GetLastChild()
	assert.ErrorIs(t, err, ErrMissing)
	_, err = free.GetPrevSibling()
	assert.ErrorIs(t, err, ErrMissing)
}

func TestAttributes(t *testing.T) {
	d := load(t)
	e := el(t, d, "title")

	v, err := e.GetAttr("class")
	require.NoError(t, err)
	assert.Equal(t, "a b c", v)
	_, err = e.GetAttr("href")
	assert.ErrorIs(t, err, ErrMissing)
	assert.Contains(t, err.Error(), `"href"`)

	a, err := e.GetAttrNode("id")
	require.NoError(t, err)
	assert.Equal(t, "title", a.Value())
	_, err = e.GetAttrNode("nope")
	assert.ErrorIs(t, err, ErrMissing)

	_, err = e.GetAttrNS(dom.XLinkNamespace, "href")
	assert.ErrorIs(t, err, ErrMissing)

	on, err := e.ToggleAttr("hidden")
	require.NoError(t, err)
	assert.True(t, on)
	on, err = e.ToggleAttr("hidden")
	require.NoError(t, err)
	assert.False(t, on)
	_, err = e.ToggleAttr("a b")
	assert.ErrorIs(t, err, ErrRejected)

	require.NoError(t, e.RemoveAttr("not-there"))
	require.NoError(t, e.RemoveAttr("class"))
	assert.False(t, e.HasAttribute("class"))
	err = e.RemoveAttr("x=y")
	require.ErrorIs(t, err, ErrRejected)
	var de *dom.DOMError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "InvalidCharacterError", de.Name)
}

func TestAttrNS(t *testing.T) {
	d := load(t)
	dot := el(t, d, "dot")
	require.NoError(t, dot.SetAttributeNS(dom.XLinkNamespace, "xlink:href", "#a"))
	v, err := dot.GetAttrNS(dom.XLinkNamespace, "href")
	require.NoError(t, err)
	assert.Equal(t, "#a", v)
}

func TestNamespaceAndPrefix(t *testing.T) {
	d := load(t)
	ns, err := el(t, d, "title").GetNamespaceURI()
	require.NoError(t, err)
	assert.Equal(t, dom.HTMLNamespace, ns)
	ns, err = el(t, d, "pic").GetNamespaceURI()
	require.NoError(t, err)
	assert.Equal(t, dom.SVGNamespace, ns)

	_, err = el(t, d, "title").GetPrefix()
	assert.ErrorIs(t, err, ErrMissing)

	prefixed := &Element{Element: d.CreateElementNS(dom.SVGNamespace, "svg:g")}
	p, err := prefixed.GetPrefix()
	require.NoError(t, err)
	assert.Equal(t, "svg", p)

	bare := &Element{Element: d.CreateElementNS("", "x")}
	_, err = bare.GetNamespaceURI()
	assert.ErrorIs(t, err, ErrMissing)
}

func TestInsertAdjElement(t *testing.T) {
	d := load(t)
	l1 := el(t, d, "l1")
	li := &Element{Element: d.CreateElement("li")}
	require.NoError(t, li.SetAttribute("id", "new"))

	res, err := l1.InsertAdjElement("afterend", li)
	require.NoError(t, err)
	assert.True(t, res.IsSameNode(li.Node))
	next, err := l1.NextElementSiblingEl()
	require.NoError(t, err)
	assert.Equal(t, "new", next.Id())

	_, err = l1.InsertAdjElement("sideways", li)
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "sideways")

	free := &Element{Element: d.CreateElement("p")}
	_, err = free.InsertAdjElement("beforebegin", li)
	assert.ErrorIs(t, err, ErrMissing)

	_, err = l1.InsertAdjElement("beforeend", nil)
	assert.ErrorIs(t, err, ErrMissing)
}

func TestClosest(t *testing.T) {
	d := load(t)
	inner := htm(t, d, "inner")

	c, err := inner.ClosestEl("div")
	require.NoError(t, err)
	assert.Equal(t, "pos", c.Id())
	h, err := inner.ClosestHTML("p")
	require.NoError(t, err)
	assert.True(t, h.IsSameNode(inner.Node))

	_, err = inner.ClosestEl("table")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = el(t, d, "dot").ClosestHTML("svg")
	assert.ErrorIs(t, err, ErrNarrow)
	_, err = inner.ClosestEl("div[")
	assert.ErrorIs(t, err, ErrRejected)
}

func TestElementQuerySelector(t *testing.T) {
	d := load(t)
	list := htm(t, d, "list")

	li, err := list.QuerySelectorHTML(".x")
	require.NoError(t, err)
	assert.Equal(t, "l2", li.Id())
	first, err := list.QuerySelectorEl("li")
	require.NoError(t, err)
	assert.Equal(t, "l0", first.Id())

	nl, err := list.QuerySelectorList("li.t")
	require.NoError(t, err)
	assert.Equal(t, 2, nl.Len())
	nl, err = list.QuerySelectorList("p")
	require.NoError(t, err)
	assert.Equal(t, 0, nl.Len())

	_, err = list.QuerySelectorEl("p")
	assert.ErrorIs(t, err, ErrNotFound)

	// leading compounds may match ancestors of the receiver
	for _, s := range []string{"ul li", "body li", "body > ul > li", ":scope > li"} {
		nl, err = list.QuerySelectorList(s)
		require.NoError(t, err, s)
		assert.Equal(t, 3, nl.Len(), s)
	}
	first, err = list.QuerySelectorEl("body .t")
	require.NoError(t, err)
	assert.Equal(t, "l0", first.Id(), "span#s is outside the receiver")
	_, err = list.QuerySelectorEl("div li")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStyleProperty(t *testing.T) {
	d := load(t)
	h := htm(t, d, "inner")
	assert.Equal(t, "", h.GetStyleProperty("color"))
	require.NoError(t, h.SetStyleProperty("color", "red"))
	assert.Equal(t, "red", h.GetStyleProperty("color"))
	assert.Equal(t, "red", h.DOM().Style().GetPropertyValue("color"))

	err := h.SetStyleProperty("colour", "red")
	require.ErrorIs(t, err, ErrRejected)
	var de *dom.DOMError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "SyntaxError", de.Name)
}

func TestOffsetParent(t *testing.T) {
	d := load(t)
	op, err := htm(t, d, "inner").OffsetParentHTML()
	require.NoError(t, err)
	assert.Equal(t, "pos", op.Id())

	op2, err := htm(t, d, "l0").OffsetParentEl()
	require.NoError(t, err)
	assert.Equal(t, "body", op2.LocalName())

	body := wrapHTML(d.Body())
	_, err = body.OffsetParentEl()
	assert.ErrorIs(t, err, ErrMissing)
}

func TestZeroHTMLElement(t *testing.T) {
	var h HTMLElement
	assert.Nil(t, h.DOM())
	assert.Equal(t, "", h.GetStyleProperty("color"))
	assert.ErrorIs(t, h.SetStyleProperty("color", "red"), ErrMissing)
	_, err := h.OffsetParentEl()
	assert.ErrorIs(t, err, ErrMissing)
	_, err = h.OffsetParentHTML()
	assert.ErrorIs(t, err, ErrMissing)
	_, err = h.ToEl()
	assert.ErrorIs(t, err, ErrNarrow)
}
