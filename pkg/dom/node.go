package dom

// NodeKind is the snapshot node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <div>, <span>, etc.
	KindRaw                     // Raw inner HTML (unescaped)
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is an immutable copy of an element subtree.
type Node struct {
	Kind     NodeKind
	Tag      string            // Element tag name (e.g., "div")
	Attrs    map[string]string // Plain attributes, excluding class and style
	Class    string            // Space separated class list
	Style    string            // Serialized inline style
	Children []*Node
	Text     string // For KindRaw
}

// HasClass reports whether the snapshot carries the given class.
func (n *Node) HasClass(class string) bool {
	if n == nil || n.Kind != KindElement {
		return false
	}
	for _, c := range splitClasses(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// Walk calls fn for n and each descendant in document order.
// Returning false from fn stops descent into that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
