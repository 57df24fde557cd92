package minimal

import (
	"strconv"

	"github.com/psilva261/minimal/dom"
)

type Document struct {
	*dom.Document
}

func (d *Document) GetElementByIDEl(id string) (*Element, error) {
	el := d.GetElementById(id)
	if el == nil {
		return nil, newError("Document.GetElementByIDEl", strconv.Quote(id), ErrNotFound, nil)
	}
	return &Element{Element: el}, nil
}

func (d *Document) GetElementByIDHTML(id string) (*HTMLElement, error) {
	el := d.GetElementById(id)
	if el == nil {
		return nil, newError("Document.GetElementByIDHTML", strconv.Quote(id), ErrNotFound, nil)
	}
	return toHTML("Document.GetElementByIDHTML", el)
}

func (d *Document) QuerySelectorEl(s string) (*Element, error) {
	return querySelectorEl("Document.QuerySelectorEl", d.QuerySelector, s)
}

func (d *Document) QuerySelectorHTML(s string) (*HTMLElement, error) {
	return querySelectorHTML("Document.QuerySelectorHTML", d.QuerySelector, s)
}

// QuerySelectorList is empty, not an error, when nothing matches.
func (d *Document) QuerySelectorList(s string) (*NodeList, error) {
	return querySelectorList("Document.QuerySelectorList", d.QuerySelectorAll, s)
}

func (d *Document) DocumentElementEl() (*Element, error) {
	de := d.DocumentElement()
	if de == nil {
		return nil, newError("Document.DocumentElementEl", "", ErrMissing, nil)
	}
	return &Element{Element: de}, nil
}

func (d *Document) DocumentElementHTML() (*HTMLElement, error) {
	de := d.DocumentElement()
	if de == nil {
		return nil, newError("Document.DocumentElementHTML", "", ErrMissing, nil)
	}
	return toHTML("Document.DocumentElementHTML", de)
}

func (d *Document) GetURL() (string, error) {
	u := d.URL()
	if u == "" {
		return "", newError("Document.GetURL", "", ErrMissing, nil)
	}
	return u, nil
}

func (d *Document) GetLocation() (*dom.Location, error) {
	l := d.Location()
	if l == nil {
		return nil, newError("Document.GetLocation", "", ErrMissing, nil)
	}
	return l, nil
}

func (d *Document) GetHash() (string, error) {
	l, err := d.GetLocation()
	if err != nil {
		return "", err
	}
	return l.Hash, nil
}

func (d *Document) GetHost() (string, error) {
	l, err := d.GetLocation()
	if err != nil {
		return "", err
	}
	return l.Host, nil
}

func (d *Document) GetHostname() (string, error) {
	l, err := d.GetLocation()
	if err != nil {
		return "", err
	}
	return l.Hostname, nil
}

func (d *Document) GetHref() (string, error) {
	l, err := d.GetLocation()
	if err != nil {
		return "", err
	}
	return l.Href, nil
}

// SetNewBody replaces the body with b.
func (d *Document) SetNewBody(b *HTMLElement) error {
	if b == nil {
		return newError("Document.SetNewBody", "", ErrMissing, nil)
	}
	if err := d.SetBody(b.html); err != nil {
		return newError("Document.SetNewBody", b.LocalName(), ErrRejected, err)
	}
	return nil
}

func (d *Document) GetDefaultView() (*Window, error) {
	w := d.DefaultView()
	if w == nil {
		return nil, newError("Document.GetDefaultView", "", ErrMissing, nil)
	}
	return &Window{Window: w}, nil
}

// query helpers shared by documents and elements

func querySelectorEl(op string, q func(string) (*dom.Element, error), s string) (*Element, error) {
	el, err := q(s)
	if err != nil {
		return nil, newError(op, strconv.Quote(s), ErrRejected, err)
	}
	if el == nil {
		return nil, newError(op, strconv.Quote(s), ErrNotFound, nil)
	}
	return &Element{Element: el}, nil
}

func querySelectorHTML(op string, q func(string) (*dom.Element, error), s string) (*HTMLElement, error) {
	el, err := querySelectorEl(op, q, s)
	if err != nil {
		return nil, err
	}
	return toHTML(op, el.Element)
}

func querySelectorList(op string, q func(string) (*dom.NodeList, error), s string) (*NodeList, error) {
	nl, err := q(s)
	if err != nil {
		return nil, newError(op, strconv.Quote(s), ErrRejected, err)
	}
	return &NodeList{NodeList: nl}, nil
}
