package dom

import "golang.org/x/net/html"

type Attr struct {
	owner *Element
	a     html.Attribute
}

func (a *Attr) Name() string {
	if a.a.Namespace != "" {
		return a.a.Namespace + ":" + a.a.Key
	}
	return a.a.Key
}

func (a *Attr) LocalName() string {
	return a.a.Key
}

// NamespaceURI is empty for attributes without namespace.
func (a *Attr) NamespaceURI() string {
	if a.a.Namespace == "" {
		return ""
	}
	return namespaceURI(a.a.Namespace)
}

// Value reads through to the owner element while the attribute is
// still set there.
func (a *Attr) Value() string {
	for _, x := range a.owner.n.Attr {
		if x.Namespace == a.a.Namespace && x.Key == a.a.Key {
			return x.Val
		}
	}
	return a.a.Val
}

func (a *Attr) OwnerElement() *Element {
	return a.owner
}

func (a *Attr) String() string {
	return a.Name() + `="` + a.Value() + `"`
}
