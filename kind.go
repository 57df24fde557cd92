package minimal

// Kind is the closed set of handle kinds accessors narrow between.
type Kind int

const (
	KindWindow Kind = iota
	KindDocument
	KindNode
	KindElement
	KindHTMLElement
	KindNodeList
	KindAttr
	KindLocation
)

func (k Kind) String() string {
	switch k {
	case KindWindow:
		return "Window"
	case KindDocument:
		return "Document"
	case KindNode:
		return "Node"
	case KindElement:
		return "Element"
	case KindHTMLElement:
		return "HTMLElement"
	case KindNodeList:
		return "NodeList"
	case KindAttr:
		return "Attr"
	case KindLocation:
		return "Location"
	}
	return "Unknown"
}
