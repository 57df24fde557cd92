package dom

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

type MutationType int

const (
	ChAttr MutationType = 2
	RmAttr MutationType = 3
	Rm     MutationType = 4
	Insert MutationType = 6
)

func (t MutationType) String() string {
	switch t {
	case ChAttr:
		return "Attr"
	case RmAttr:
		return "RmAttr"
	case Rm:
		return "Rm"
	case Insert:
		return "Insert"
	}
	return ""
}

type Mutation struct {
	Time time.Time
	Type MutationType
	Path string
	Tag  string
	Node map[string]string
}

// Mutations returns the document's mutation records. Records are dropped
// while the buffer is full.
func (d *Document) Mutations() <-chan Mutation {
	return d.mutations
}

// addMutation can be called after changing the node tree
func (d *Document) addMutation(t MutationType, n *html.Node) {
	m := Mutation{
		Time: time.Now(),
		Type: t,
		Node: map[string]string{},
	}
	if n != nil {
		if n.Type == html.ElementNode {
			m.Tag = n.Data
		}
		for _, a := range n.Attr {
			m.Node[a.Key] = a.Val
		}
		m.Path, _ = path(n)
	}
	select {
	case d.mutations <- m:
	default:
	}
}

// path locates n by child indexes starting below body, e.g. /0/2.
// Only elements and non blank text nodes are counted.
func path(n *html.Node) (pth string, ok bool) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode && n.Data == "body" && n.Namespace == "" {
		return "/0", true
	}
	p := n.Parent
	if p == nil {
		return
	}
	i := 0
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if c == n {
			pre, ok := path(p)
			if ok {
				return pre + "/" + strconv.Itoa(i), true
			}
			return "", false
		}
		if c.Type == html.ElementNode || (c.Type == html.TextNode && strings.TrimSpace(c.Data) != "") {
			i++
		}
	}
	return
}
