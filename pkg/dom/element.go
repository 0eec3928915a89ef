package dom

import (
	"sort"
	"strings"
)

// Element is a mutable node in a Document.
type Element struct {
	doc       *Document
	tag       string
	attrs     map[string]string
	classes   []string
	styleKeys []string
	styleVals map[string]string
	innerHTML string
	children  []*Element
	parent    *Element
	listeners map[string][]*listener
}

// Tag returns the lowercase tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Document returns the owning document.
func (e *Element) Document() *Document {
	return e.doc
}

// Attr returns the value of a plain attribute.
func (e *Element) Attr(name string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets a plain attribute. Use ClassList and Style for class and style.
func (e *Element) SetAttr(name, value string) {
	e.doc.mu.Lock()
	e.attrs[name] = value
	e.doc.mu.Unlock()
}

// SetData sets a data-* attribute.
func (e *Element) SetData(key, value string) {
	e.SetAttr("data-"+key, value)
}

// InnerHTML returns the raw markup content of the element.
func (e *Element) InnerHTML() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.innerHTML
}

// SetInnerHTML replaces the element content with raw markup.
// Child elements are dropped.
func (e *Element) SetInnerHTML(markup string) {
	e.doc.mu.Lock()
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.innerHTML = markup
	e.doc.mu.Unlock()
}

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// IsConnected reports whether the element is attached to the document body.
func (e *Element) IsConnected() bool {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.connectedLocked()
}

func (e *Element) connectedLocked() bool {
	for n := e; n != nil; n = n.parent {
		if n == e.doc.body {
			return true
		}
	}
	return false
}

// AppendChild attaches child as the last child of e, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}

	e.doc.mu.Lock()
	var muts []Mutation
	if old := child.parent; old != nil {
		old.removeChildLocked(child)
		muts = append(muts, Mutation{Kind: MutationRemove, Target: child, Parent: old})
	}
	child.parent = e
	e.children = append(e.children, child)
	muts = append(muts, Mutation{Kind: MutationAppend, Target: child, Parent: e})
	observers := e.doc.observersLocked()
	e.doc.mu.Unlock()

	publish(observers, muts...)
}

// RemoveChild detaches child from e. It reports false when child is not a
// child of e.
func (e *Element) RemoveChild(child *Element) bool {
	e.doc.mu.Lock()
	if child == nil || child.parent != e {
		e.doc.mu.Unlock()
		return false
	}
	e.removeChildLocked(child)
	observers := e.doc.observersLocked()
	e.doc.mu.Unlock()

	publish(observers, Mutation{Kind: MutationRemove, Target: child, Parent: e})
	return true
}

// Remove detaches e from its parent, if any.
func (e *Element) Remove() bool {
	parent := e.Parent()
	if parent == nil {
		return false
	}
	return parent.RemoveChild(e)
}

func (e *Element) removeChildLocked(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// find walks the subtree depth-first. Caller holds the document lock.
func (e *Element) find(match func(*Element) bool) *Element {
	if match(e) {
		return e
	}
	for _, c := range e.children {
		if found := c.find(match); found != nil {
			return found
		}
	}
	return nil
}

// each visits the subtree depth-first. Caller holds the document lock.
func (e *Element) each(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.each(fn)
	}
}

// Snapshot returns an immutable copy of the element subtree.
func (e *Element) Snapshot() *Node {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Element) snapshotLocked() *Node {
	n := &Node{
		Kind:  KindElement,
		Tag:   e.tag,
		Attrs: make(map[string]string, len(e.attrs)),
		Class: strings.Join(e.classes, " "),
		Style: e.cssTextLocked(),
	}
	for k, v := range e.attrs {
		n.Attrs[k] = v
	}
	if e.innerHTML != "" {
		n.Children = append(n.Children, &Node{Kind: KindRaw, Text: e.innerHTML})
	}
	for _, c := range e.children {
		n.Children = append(n.Children, c.snapshotLocked())
	}
	return n
}

// ClassList returns the class list view of the element.
func (e *Element) ClassList() ClassList {
	return ClassList{el: e}
}

// Style returns the inline style view of the element.
func (e *Element) Style() Style {
	return Style{el: e}
}

func (e *Element) hasClassLocked(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// ClassList manipulates the class attribute of an element.
type ClassList struct {
	el *Element
}

// Add adds classes that are not already present.
func (cl ClassList) Add(classes ...string) {
	e := cl.el
	e.doc.mu.Lock()
	var muts []Mutation
	for _, class := range classes {
		for _, c := range splitClasses(class) {
			if e.hasClassLocked(c) {
				continue
			}
			e.classes = append(e.classes, c)
			muts = append(muts, Mutation{Kind: MutationClassAdd, Target: e, Class: c})
		}
	}
	observers := e.doc.observersLocked()
	e.doc.mu.Unlock()

	publish(observers, muts...)
}

// Remove removes classes that are present.
func (cl ClassList) Remove(classes ...string) {
	e := cl.el
	e.doc.mu.Lock()
	var muts []Mutation
	for _, class := range classes {
		for i, c := range e.classes {
			if c == class {
				e.classes = append(e.classes[:i], e.classes[i+1:]...)
				muts = append(muts, Mutation{Kind: MutationClassRemove, Target: e, Class: c})
				break
			}
		}
	}
	observers := e.doc.observersLocked()
	e.doc.mu.Unlock()

	publish(observers, muts...)
}

// Contains reports whether the class is present.
func (cl ClassList) Contains(class string) bool {
	e := cl.el
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.hasClassLocked(class)
}

// String returns the space separated class attribute value.
func (cl ClassList) String() string {
	e := cl.el
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return strings.Join(e.classes, " ")
}

// Style manipulates the inline style of an element.
// Properties keep insertion order.
type Style struct {
	el *Element
}

// Set sets a CSS property. An empty value removes it.
func (s Style) Set(property, value string) {
	e := s.el
	property = strings.TrimSpace(property)
	if property == "" {
		return
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if value == "" {
		e.removeStyleLocked(property)
		return
	}
	if _, ok := e.styleVals[property]; !ok {
		e.styleKeys = append(e.styleKeys, property)
	}
	e.styleVals[property] = value
}

// SetAll applies every property of m in sorted key order.
func (s Style) SetAll(m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.Set(k, m[k])
	}
}

// Get returns the value of a CSS property, or "".
func (s Style) Get(property string) string {
	e := s.el
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.styleVals[property]
}

// Len returns the number of set properties.
func (s Style) Len() int {
	e := s.el
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return len(e.styleKeys)
}

// CSSText serializes the inline style ("a: b; c: d").
func (s Style) CSSText() string {
	e := s.el
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.cssTextLocked()
}

func (e *Element) cssTextLocked() string {
	if len(e.styleKeys) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.styleKeys))
	for _, k := range e.styleKeys {
		parts = append(parts, k+": "+e.styleVals[k])
	}
	return strings.Join(parts, "; ")
}

func (e *Element) removeStyleLocked(property string) {
	if _, ok := e.styleVals[property]; !ok {
		return
	}
	delete(e.styleVals, property)
	for i, k := range e.styleKeys {
		if k == property {
			e.styleKeys = append(e.styleKeys[:i], e.styleKeys[i+1:]...)
			break
		}
	}
}

func splitClasses(s string) []string {
	return strings.Fields(s)
}
