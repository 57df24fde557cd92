package minimal

import (
	"strconv"

	"github.com/psilva261/minimal/dom"
)

type NodeList struct {
	*dom.NodeList
}

func (nl *NodeList) Len() int {
	return nl.Length()
}

func (nl *NodeList) GetNode(i int) (*Node, error) {
	n := nl.Item(i)
	if n == nil {
		return nil, newError("NodeList.GetNode", strconv.Itoa(i), ErrIndex, nil)
	}
	return &Node{Node: n}, nil
}

func (nl *NodeList) GetEl(i int) (*Element, error) {
	n, err := nl.GetNode(i)
	if err != nil {
		return nil, err
	}
	return n.ToEl()
}

func (nl *NodeList) GetHTML(i int) (*HTMLElement, error) {
	n, err := nl.GetNode(i)
	if err != nil {
		return nil, err
	}
	return n.ToHTML()
}

// AddListClass adds name to every member lacking it, in index order.
// It stops at the first member that is not an HTML element; members
// before it keep the class.
func (nl *NodeList) AddListClass(name string) error {
	for i := 0; i < nl.Length(); i++ {
		h, err := nl.GetHTML(i)
		if err != nil {
			return err
		}
		if !h.HasClass(name) {
			h.AddClass(name)
		}
	}
	return nil
}

// RemoveListClass is the counterpart of AddListClass.
func (nl *NodeList) RemoveListClass(name string) error {
	for i := 0; i < nl.Length(); i++ {
		h, err := nl.GetHTML(i)
		if err != nil {
			return err
		}
		if h.HasClass(name) {
			h.RemoveClass(name)
		}
	}
	return nil
}
