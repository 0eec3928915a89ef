package dom

import (
	"strings"
	"sync"
)

// MutationKind identifies a structural change to the document.
type MutationKind uint8

const (
	MutationAppend      MutationKind = iota // Child attached to a parent
	MutationRemove                          // Child detached from its parent
	MutationClassAdd                        // Class added to an element
	MutationClassRemove                     // Class removed from an element
)

// String returns the string representation of the MutationKind.
func (k MutationKind) String() string {
	switch k {
	case MutationAppend:
		return "append"
	case MutationRemove:
		return "remove"
	case MutationClassAdd:
		return "class-add"
	case MutationClassRemove:
		return "class-remove"
	default:
		return "unknown"
	}
}

// Mutation describes a change published to document observers.
type Mutation struct {
	Kind   MutationKind
	Target *Element
	Parent *Element // Set for append and remove
	Class  string   // Set for class changes
}

// Observer receives document mutations.
type Observer func(Mutation)

// Document is a tree of elements rooted at a body element.
type Document struct {
	mu        sync.Mutex
	body      *Element
	observers map[int]Observer
	nextObs   int
}

// NewDocument creates an empty document with a body element.
func NewDocument() *Document {
	d := &Document{
		observers: make(map[int]Observer),
	}
	d.body = d.newElement("body")
	return d
}

var (
	globalDoc     *Document
	globalDocOnce sync.Once
)

// Global returns the process-wide document.
// It is created on first use and lives for the lifetime of the process.
func Global() *Document {
	globalDocOnce.Do(func() {
		globalDoc = NewDocument()
	})
	return globalDoc
}

// Body returns the document body.
func (d *Document) Body() *Element {
	return d.body
}

// CreateElement creates a detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	return d.newElement(strings.ToLower(tag))
}

func (d *Document) newElement(tag string) *Element {
	return &Element{
		doc:       d,
		tag:       tag,
		attrs:     make(map[string]string),
		styleVals: make(map[string]string),
		listeners: make(map[string][]*listener),
	}
}

// QueryClass returns the first connected element carrying class, in
// document order, or nil.
func (d *Document) QueryClass(class string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.body.find(func(e *Element) bool {
		return e.hasClassLocked(class)
	})
}

// QueryAllClass returns every connected element carrying class, in
// document order.
func (d *Document) QueryAllClass(class string) []*Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []*Element
	d.body.each(func(e *Element) {
		if e.hasClassLocked(class) {
			out = append(out, e)
		}
	})
	return out
}

// ByData returns the first connected element whose data-key attribute
// equals value, or nil.
func (d *Document) ByData(key, value string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	name := "data-" + key
	return d.body.find(func(e *Element) bool {
		v, ok := e.attrs[name]
		return ok && v == value
	})
}

// Observe registers an observer for document mutations.
// The returned function unregisters it.
func (d *Document) Observe(fn Observer) func() {
	d.mu.Lock()
	id := d.nextObs
	d.nextObs++
	d.observers[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.observers, id)
		d.mu.Unlock()
	}
}

// Snapshot returns an immutable copy of the whole document body.
func (d *Document) Snapshot() *Node {
	return d.body.Snapshot()
}

// observersLocked copies the observer set. Caller holds d.mu.
func (d *Document) observersLocked() []Observer {
	if len(d.observers) == 0 {
		return nil
	}
	out := make([]Observer, 0, len(d.observers))
	for i := 0; i < d.nextObs; i++ {
		if fn, ok := d.observers[i]; ok {
			out = append(out, fn)
		}
	}
	return out
}

// publish delivers mutations to observers. Must be called without d.mu held.
func publish(observers []Observer, muts ...Mutation) {
	for _, m := range muts {
		for _, fn := range observers {
			fn(m)
		}
	}
}
